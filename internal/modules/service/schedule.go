package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/modules/repo"
	"github.com/nightclaw/mission-control/internal/pkg/dates"
	"github.com/nightclaw/mission-control/internal/pkg/utils"
)

type ScheduleService interface {
	All() map[string][]model.ScheduleTask
	AddTask(ctx context.Context, in AddTaskInput) (*model.ScheduleTask, error)
	Toggle(ctx context.Context, date, id string) error
	Remove(ctx context.Context, date, id string) error
}

type AddTaskInput struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

type scheduleService struct{ r repo.ScheduleRepo }

func NewScheduleService(r repo.ScheduleRepo) ScheduleService {
	return &scheduleService{r: r}
}

// All returns the whole date-keyed map; consumers must not rely on any
// key ordering.
func (s *scheduleService) All() map[string][]model.ScheduleTask { return s.r.All() }

func (s *scheduleService) AddTask(ctx context.Context, in AddTaskInput) (*model.ScheduleTask, error) {
	parsed, ok := dates.ParseDay(in.Date)
	if !ok {
		return nil, invalidf("bad schedule date %q", in.Date)
	}
	day := dates.Day(parsed)
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, invalidf("task text is required")
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	t := model.ScheduleTask{ID: id, Text: text}
	if err := s.r.Append(ctx, day, t); err != nil {
		return nil, fmt.Errorf("persist schedule task: %w", err)
	}
	return &t, nil
}

func (s *scheduleService) Toggle(ctx context.Context, date, id string) error {
	found, err := s.r.Toggle(ctx, date, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *scheduleService) Remove(ctx context.Context, date, id string) error {
	removed, err := s.r.Remove(ctx, date, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
