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

type IdeaService interface {
	List() []model.Idea
	Create(ctx context.Context, in CreateIdeaInput) (*model.Idea, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type CreateIdeaInput struct {
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Proposer string `json:"proposer"`
}

type ideaService struct {
	r   repo.IdeaRepo
	now func() time.Time
}

func NewIdeaService(r repo.IdeaRepo) IdeaService {
	return &ideaService{r: r, now: time.Now}
}

func (s *ideaService) List() []model.Idea { return s.r.List() }

func (s *ideaService) Create(ctx context.Context, in CreateIdeaInput) (*model.Idea, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalidf("idea title is required")
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	idea := model.Idea{
		ID:       id,
		Title:    title,
		Desc:     strings.TrimSpace(in.Desc),
		Status:   model.IdeaPending,
		Proposer: strings.TrimSpace(in.Proposer),
		Date:     dates.Day(s.now()),
	}
	if err := s.r.Insert(ctx, idea); err != nil {
		return nil, fmt.Errorf("persist idea: %w", err)
	}
	return &idea, nil
}

// SetStatus moves an idea to any status; transitions are unconstrained.
func (s *ideaService) SetStatus(ctx context.Context, id, status string) error {
	if !model.ValidIdeaStatus(status) {
		return invalidf("unknown idea status %q", status)
	}
	found, err := s.r.Update(ctx, id, func(i *model.Idea) { i.Status = status })
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *ideaService) Delete(ctx context.Context, id string) error {
	removed, err := s.r.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
