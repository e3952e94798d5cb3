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

type DevLogService interface {
	List() []model.DevLogEntry
	Create(ctx context.Context, in CreateLogInput) (*model.DevLogEntry, error)
	Delete(ctx context.Context, id string) error
}

type CreateLogInput struct {
	Project string `json:"project"`
	Type    string `json:"type"`
	Text    string `json:"text"`
}

type devLogService struct {
	r   repo.DevLogRepo
	now func() time.Time
}

func NewDevLogService(r repo.DevLogRepo) DevLogService {
	return &devLogService{r: r, now: time.Now}
}

// List returns entries newest first.
func (s *devLogService) List() []model.DevLogEntry {
	entries := s.r.List()
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

func (s *devLogService) Create(ctx context.Context, in CreateLogInput) (*model.DevLogEntry, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, invalidf("log text is required")
	}
	project := strings.TrimSpace(in.Project)
	if project == "" {
		project = "General"
	}
	logType := in.Type
	if logType == "" {
		logType = model.LogTypeBuild
	}
	if !model.ValidLogType(logType) {
		return nil, invalidf("unknown log type %q", in.Type)
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	e := model.DevLogEntry{
		ID:      id,
		Project: project,
		Type:    logType,
		Text:    text,
		Date:    dates.Stamp(s.now()),
	}
	if err := s.r.Insert(ctx, e); err != nil {
		return nil, fmt.Errorf("persist log entry: %w", err)
	}
	return &e, nil
}

func (s *devLogService) Delete(ctx context.Context, id string) error {
	removed, err := s.r.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
