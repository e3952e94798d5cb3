package repo

import (
	"context"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/pkg/records"
)

const keyGoals = "goals"

type GoalRepo interface {
	List() []model.Goal
	Insert(ctx context.Context, g model.Goal) error
	Remove(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, mutate func(*model.Goal)) (bool, error)
}

type goalRepo struct{ c *records.Collection[model.Goal] }

func NewGoalRepo(ctx context.Context, store kv.Store) (GoalRepo, error) {
	c, err := records.Open(ctx, store, keyGoals,
		func(g model.Goal) string { return g.ID }, defaultGoals())
	if err != nil {
		return nil, err
	}
	return &goalRepo{c: c}, nil
}

func (r *goalRepo) List() []model.Goal { return r.c.List() }

func (r *goalRepo) Insert(ctx context.Context, g model.Goal) error {
	return r.c.Insert(ctx, g)
}

func (r *goalRepo) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.Remove(ctx, id)
}

func (r *goalRepo) Update(ctx context.Context, id string, mutate func(*model.Goal)) (bool, error) {
	return r.c.Update(ctx, id, mutate)
}
