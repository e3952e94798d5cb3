package repo

import (
	"context"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/pkg/records"
)

const keyIncome = "income"

type IncomeRepo interface {
	List() []model.IncomeEntry
	Insert(ctx context.Context, e model.IncomeEntry) error
	Remove(ctx context.Context, id string) (bool, error)
}

type incomeRepo struct{ c *records.Collection[model.IncomeEntry] }

func NewIncomeRepo(ctx context.Context, store kv.Store) (IncomeRepo, error) {
	c, err := records.Open(ctx, store, keyIncome,
		func(e model.IncomeEntry) string { return e.ID }, nil)
	if err != nil {
		return nil, err
	}
	return &incomeRepo{c: c}, nil
}

func (r *incomeRepo) List() []model.IncomeEntry { return r.c.List() }

func (r *incomeRepo) Insert(ctx context.Context, e model.IncomeEntry) error {
	return r.c.Insert(ctx, e)
}

func (r *incomeRepo) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.Remove(ctx, id)
}
