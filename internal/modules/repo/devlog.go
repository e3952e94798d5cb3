package repo

import (
	"context"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/pkg/records"
)

const keyDevLog = "devlog"

type DevLogRepo interface {
	List() []model.DevLogEntry
	Len() int
	Insert(ctx context.Context, e model.DevLogEntry) error
	Remove(ctx context.Context, id string) (bool, error)
}

type devLogRepo struct{ c *records.Collection[model.DevLogEntry] }

func NewDevLogRepo(ctx context.Context, store kv.Store) (DevLogRepo, error) {
	c, err := records.Open(ctx, store, keyDevLog,
		func(e model.DevLogEntry) string { return e.ID }, defaultDevLog())
	if err != nil {
		return nil, err
	}
	return &devLogRepo{c: c}, nil
}

func (r *devLogRepo) List() []model.DevLogEntry { return r.c.List() }
func (r *devLogRepo) Len() int                  { return r.c.Len() }

func (r *devLogRepo) Insert(ctx context.Context, e model.DevLogEntry) error {
	return r.c.Insert(ctx, e)
}

func (r *devLogRepo) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.Remove(ctx, id)
}
