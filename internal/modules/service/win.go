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

type WinService interface {
	List() []model.Win
	Create(ctx context.Context, in CreateWinInput) (*model.Win, error)
	Delete(ctx context.Context, id string) error
	Streak() int
}

type CreateWinInput struct {
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	Size     string `json:"size"`
}

type winService struct {
	r   repo.WinRepo
	now func() time.Time
}

func NewWinService(r repo.WinRepo) WinService {
	return &winService{r: r, now: time.Now}
}

func (s *winService) List() []model.Win { return s.r.List() }

func (s *winService) Create(ctx context.Context, in CreateWinInput) (*model.Win, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalidf("win title is required")
	}
	category := in.Category
	if category == "" {
		category = model.WinCatBuild
	}
	if !model.ValidWinCategory(category) {
		return nil, invalidf("unknown win category %q", in.Category)
	}
	size := in.Size
	if size == "" {
		size = model.WinSizeSmall
	}
	if !model.ValidWinSize(size) {
		return nil, invalidf("unknown win size %q", in.Size)
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	w := model.Win{
		ID:       id,
		Title:    title,
		Desc:     strings.TrimSpace(in.Desc),
		Category: category,
		Size:     size,
		Date:     dates.Day(s.now()),
	}
	if err := s.r.Insert(ctx, w); err != nil {
		return nil, fmt.Errorf("persist win: %w", err)
	}
	return &w, nil
}

func (s *winService) Delete(ctx context.Context, id string) error {
	removed, err := s.r.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// Streak counts consecutive calendar days with at least one win,
// anchored at today or yesterday.
func (s *winService) Streak() int {
	wins := s.r.List()
	days := make([]string, 0, len(wins))
	for _, w := range wins {
		days = append(days, w.Date)
	}
	return dates.Streak(days, s.now())
}
