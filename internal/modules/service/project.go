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

type ProjectService interface {
	List() []model.Project
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type CreateProjectInput struct {
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	GitHub string `json:"github"`
	URL    string `json:"url"`
	Status string `json:"status"`
}

type projectService struct {
	r   repo.ProjectRepo
	now func() time.Time
}

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r, now: time.Now}
}

func (s *projectService) List() []model.Project { return s.r.List() }

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalidf("project name is required")
	}
	status := in.Status
	if status == "" {
		status = model.ProjectStatusIdea
	}
	if !model.ValidProjectStatus(status) {
		return nil, invalidf("unknown project status %q", in.Status)
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	p := model.Project{
		ID:     id,
		Name:   name,
		Desc:   strings.TrimSpace(in.Desc),
		GitHub: strings.TrimSpace(in.GitHub),
		URL:    strings.TrimSpace(in.URL),
		Status: status,
		Date:   dates.Day(s.now()),
	}
	if err := s.r.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("persist project: %w", err)
	}
	return &p, nil
}

func (s *projectService) SetStatus(ctx context.Context, id, status string) error {
	if !model.ValidProjectStatus(status) {
		return invalidf("unknown project status %q", status)
	}
	found, err := s.r.Update(ctx, id, func(p *model.Project) { p.Status = status })
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	removed, err := s.r.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
