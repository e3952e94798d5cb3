package repo

import (
	"context"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/pkg/records"
)

const keyNotes = "notes"

type NoteRepo interface {
	List() []model.Note
	Get(id string) (model.Note, bool)
	Insert(ctx context.Context, n model.Note) error
	Remove(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, mutate func(*model.Note)) (bool, error)
}

type noteRepo struct{ c *records.Collection[model.Note] }

func NewNoteRepo(ctx context.Context, store kv.Store) (NoteRepo, error) {
	c, err := records.Open(ctx, store, keyNotes,
		func(n model.Note) string { return n.ID }, nil)
	if err != nil {
		return nil, err
	}
	return &noteRepo{c: c}, nil
}

func (r *noteRepo) List() []model.Note               { return r.c.List() }
func (r *noteRepo) Get(id string) (model.Note, bool) { return r.c.Get(id) }

func (r *noteRepo) Insert(ctx context.Context, n model.Note) error {
	return r.c.Insert(ctx, n)
}

func (r *noteRepo) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.Remove(ctx, id)
}

func (r *noteRepo) Update(ctx context.Context, id string, mutate func(*model.Note)) (bool, error) {
	return r.c.Update(ctx, id, mutate)
}
