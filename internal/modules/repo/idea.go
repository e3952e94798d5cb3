package repo

import (
	"context"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/pkg/records"
)

const keyIdeas = "ideas"

type IdeaRepo interface {
	List() []model.Idea
	Insert(ctx context.Context, i model.Idea) error
	Remove(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, mutate func(*model.Idea)) (bool, error)
}

type ideaRepo struct{ c *records.Collection[model.Idea] }

func NewIdeaRepo(ctx context.Context, store kv.Store) (IdeaRepo, error) {
	c, err := records.Open(ctx, store, keyIdeas,
		func(i model.Idea) string { return i.ID }, nil)
	if err != nil {
		return nil, err
	}
	return &ideaRepo{c: c}, nil
}

func (r *ideaRepo) List() []model.Idea { return r.c.List() }

func (r *ideaRepo) Insert(ctx context.Context, i model.Idea) error {
	return r.c.Insert(ctx, i)
}

func (r *ideaRepo) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.Remove(ctx, id)
}

func (r *ideaRepo) Update(ctx context.Context, id string, mutate func(*model.Idea)) (bool, error) {
	return r.c.Update(ctx, id, mutate)
}
