package repo

import (
	"context"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/pkg/records"
)

const keyWins = "wins"

type WinRepo interface {
	List() []model.Win
	Insert(ctx context.Context, w model.Win) error
	Remove(ctx context.Context, id string) (bool, error)
}

type winRepo struct{ c *records.Collection[model.Win] }

func NewWinRepo(ctx context.Context, store kv.Store) (WinRepo, error) {
	c, err := records.Open(ctx, store, keyWins,
		func(w model.Win) string { return w.ID }, nil)
	if err != nil {
		return nil, err
	}
	return &winRepo{c: c}, nil
}

func (r *winRepo) List() []model.Win { return r.c.List() }

func (r *winRepo) Insert(ctx context.Context, w model.Win) error {
	return r.c.Insert(ctx, w)
}

func (r *winRepo) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.Remove(ctx, id)
}
