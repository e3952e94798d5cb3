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

type NoteService interface {
	List() []model.Note
	Create(ctx context.Context, in CreateNoteInput) (*model.Note, error)
	EditBody(ctx context.Context, id, body string) error
	Delete(ctx context.Context, id string) error
}

type CreateNoteInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type noteService struct {
	r   repo.NoteRepo
	now func() time.Time
}

func NewNoteService(r repo.NoteRepo) NoteService {
	return &noteService{r: r, now: time.Now}
}

func (s *noteService) List() []model.Note { return s.r.List() }

func (s *noteService) Create(ctx context.Context, in CreateNoteInput) (*model.Note, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalidf("note title is required")
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	n := model.Note{
		ID:    id,
		Title: title,
		Body:  strings.TrimSpace(in.Body),
		Date:  dates.Stamp(s.now()),
	}
	if err := s.r.Insert(ctx, n); err != nil {
		return nil, fmt.Errorf("persist note: %w", err)
	}
	return &n, nil
}

// EditBody overwrites the note body and re-stamps its date. An empty
// body is rejected; removal is only the explicit Delete.
func (s *noteService) EditBody(ctx context.Context, id, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return invalidf("note body is required")
	}
	found, err := s.r.Update(ctx, id, func(n *model.Note) {
		n.Body = body
		n.Date = dates.Stamp(s.now())
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	removed, err := s.r.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
