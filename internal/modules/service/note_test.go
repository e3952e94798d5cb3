package service

import (
	"context"
	"testing"
	"time"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/repo"
	"github.com/stretchr/testify/assert"
)

func newNoteFixture(t *testing.T) (NoteService, repo.NoteRepo) {
	t.Helper()
	r, err := repo.NewNoteRepo(context.Background(), kv.NewMemoryStore())
	assert.NoError(t, err)
	svc := NewNoteService(r).(*noteService)
	svc.now = func() time.Time { return time.Date(2026, 2, 19, 10, 30, 0, 0, time.UTC) }
	return svc, r
}

func TestNoteService_Create(t *testing.T) {
	svc, r := newNoteFixture(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateNoteInput{Title: "  ideas  ", Body: " first draft "})
	assert.NoError(t, err)
	assert.Equal(t, "ideas", n.Title)
	assert.Equal(t, "first draft", n.Body)
	assert.Equal(t, "2026-02-19 10:30", n.Date)

	_, err = svc.Create(ctx, CreateNoteInput{Title: "  "})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Len(t, r.List(), 1)
}

func TestNoteService_EditBody(t *testing.T) {
	svc, r := newNoteFixture(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateNoteInput{Title: "ideas", Body: "old"})
	assert.NoError(t, err)

	assert.NoError(t, svc.EditBody(ctx, n.ID, "new body"))
	got, _ := r.Get(n.ID)
	assert.Equal(t, "new body", got.Body)

	// Blanking the body is not a delete; it is rejected.
	err = svc.EditBody(ctx, n.ID, "   ")
	assert.ErrorIs(t, err, ErrInvalid)
	got, _ = r.Get(n.ID)
	assert.Equal(t, "new body", got.Body)

	assert.ErrorIs(t, svc.EditBody(ctx, "missing", "x"), ErrNotFound)
}

func TestNoteService_Delete(t *testing.T) {
	svc, r := newNoteFixture(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateNoteInput{Title: "ideas"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, n.ID))
	assert.Empty(t, r.List())
	assert.ErrorIs(t, svc.Delete(ctx, n.ID), ErrNotFound)
}
