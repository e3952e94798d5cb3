package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/modules/repo"
	"github.com/nightclaw/mission-control/internal/pkg/dates"
	"github.com/nightclaw/mission-control/internal/pkg/utils"
)

type IncomeService interface {
	List() []model.IncomeEntry
	Create(ctx context.Context, in CreateIncomeInput) (*model.IncomeEntry, error)
	Delete(ctx context.Context, id string) error
	Stats() IncomeStats
}

type CreateIncomeInput struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
	Notes  string  `json:"notes"`
}

// IncomeStats are the derived monthly aggregates. History is the
// trailing six months (current month last), zero-filled for months
// without entries.
type IncomeStats struct {
	ThisMonth float64      `json:"this_month"`
	BestMonth float64      `json:"best_month"`
	History   []MonthTotal `json:"history"`
}

type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type incomeService struct {
	r   repo.IncomeRepo
	now func() time.Time
}

func NewIncomeService(r repo.IncomeRepo) IncomeService {
	return &incomeService{r: r, now: time.Now}
}

func (s *incomeService) List() []model.IncomeEntry { return s.r.List() }

func (s *incomeService) Create(ctx context.Context, in CreateIncomeInput) (*model.IncomeEntry, error) {
	source := strings.TrimSpace(in.Source)
	if source == "" {
		return nil, invalidf("income source is required")
	}
	if in.Amount <= 0 {
		return nil, invalidf("amount must be positive")
	}
	entryType := in.Type
	if entryType == "" {
		entryType = model.IncomeOther
	}
	if !model.ValidIncomeType(entryType) {
		return nil, invalidf("unknown income type %q", in.Type)
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	e := model.IncomeEntry{
		ID:     id,
		Source: source,
		Amount: in.Amount,
		Type:   entryType,
		Notes:  strings.TrimSpace(in.Notes),
		Date:   dates.Day(s.now()),
	}
	if err := s.r.Insert(ctx, e); err != nil {
		return nil, fmt.Errorf("persist income entry: %w", err)
	}
	return &e, nil
}

func (s *incomeService) Delete(ctx context.Context, id string) error {
	removed, err := s.r.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (s *incomeService) Stats() IncomeStats {
	byMonth := make(map[string]float64)
	for _, e := range s.r.List() {
		if mk := dates.MonthKey(e.Date); mk != "" {
			byMonth[mk] += e.Amount
		}
	}

	now := s.now()
	stats := IncomeStats{ThisMonth: byMonth[dates.Month(now)]}
	for _, total := range byMonth {
		if total > stats.BestMonth {
			stats.BestMonth = total
		}
	}

	// Anchor on the first of the month so month arithmetic never
	// overflows into a neighboring month.
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	stats.History = make([]MonthTotal, 0, 6)
	for i := 5; i >= 0; i-- {
		m := dates.Month(first.AddDate(0, -i, 0))
		stats.History = append(stats.History, MonthTotal{Month: m, Total: byMonth[m]})
	}
	return stats
}
