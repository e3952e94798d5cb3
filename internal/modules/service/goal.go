package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/modules/repo"
	"github.com/nightclaw/mission-control/internal/pkg/utils"
)

type GoalService interface {
	List() []model.Goal
	Create(ctx context.Context, in CreateGoalInput) (*model.Goal, error)
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type CreateGoalInput struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type goalService struct{ r repo.GoalRepo }

func NewGoalService(r repo.GoalRepo) GoalService {
	return &goalService{r: r}
}

func (s *goalService) List() []model.Goal { return s.r.List() }

func (s *goalService) Create(ctx context.Context, in CreateGoalInput) (*model.Goal, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, invalidf("goal text is required")
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "General"
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	g := model.Goal{ID: id, Text: text, Category: category}
	if err := s.r.Insert(ctx, g); err != nil {
		return nil, fmt.Errorf("persist goal: %w", err)
	}
	return &g, nil
}

func (s *goalService) Toggle(ctx context.Context, id string) error {
	found, err := s.r.Update(ctx, id, func(g *model.Goal) { g.Done = !g.Done })
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	removed, err := s.r.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
