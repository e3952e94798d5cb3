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

type CRMService interface {
	List() []model.Client
	Create(ctx context.Context, in CreateClientInput) (*model.Client, error)
	SetStage(ctx context.Context, id, stage string) error
	Delete(ctx context.Context, id string) error
	Summary() PipelineSummary
}

type CreateClientInput struct {
	Name    string  `json:"name"`
	Service string  `json:"service"`
	Value   float64 `json:"value"`
	Note    string  `json:"note"`
}

// PipelineSummary aggregates the board. PipelineValue excludes clients
// in the terminal closed stage; Leads counts lead and contacted.
type PipelineSummary struct {
	PipelineValue float64 `json:"pipeline_value"`
	Leads         int     `json:"leads"`
	Active        int     `json:"active"`
}

type crmService struct {
	r   repo.ClientRepo
	now func() time.Time
}

func NewCRMService(r repo.ClientRepo) CRMService {
	return &crmService{r: r, now: time.Now}
}

func (s *crmService) List() []model.Client { return s.r.List() }

func (s *crmService) Create(ctx context.Context, in CreateClientInput) (*model.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalidf("client name is required")
	}
	if in.Value < 0 {
		return nil, invalidf("deal value cannot be negative")
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	c := model.Client{
		ID:      id,
		Name:    name,
		Service: strings.TrimSpace(in.Service),
		Value:   in.Value,
		Note:    strings.TrimSpace(in.Note),
		Stage:   model.StageLead,
		Date:    dates.Day(s.now()),
	}
	if err := s.r.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("persist client: %w", err)
	}
	return &c, nil
}

func (s *crmService) SetStage(ctx context.Context, id, stage string) error {
	if !model.ValidStage(stage) {
		return invalidf("unknown pipeline stage %q", stage)
	}
	found, err := s.r.Update(ctx, id, func(c *model.Client) { c.Stage = stage })
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *crmService) Delete(ctx context.Context, id string) error {
	removed, err := s.r.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (s *crmService) Summary() PipelineSummary {
	var out PipelineSummary
	for _, c := range s.r.List() {
		switch c.Stage {
		case model.StageLead, model.StageContacted:
			out.Leads++
		case model.StageActive:
			out.Active++
		}
		if c.Stage != model.StageClosed {
			out.PipelineValue += c.Value
		}
	}
	return out
}
