package repo

import (
	"context"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/pkg/records"
)

const keyMonitors = "monitors"

type MonitorRepo interface {
	List() []model.Monitor
	Get(id string) (model.Monitor, bool)
	Insert(ctx context.Context, m model.Monitor) error
	Remove(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, mutate func(*model.Monitor)) (bool, error)
}

type monitorRepo struct{ c *records.Collection[model.Monitor] }

func NewMonitorRepo(ctx context.Context, store kv.Store) (MonitorRepo, error) {
	c, err := records.Open(ctx, store, keyMonitors,
		func(m model.Monitor) string { return m.ID }, nil)
	if err != nil {
		return nil, err
	}
	return &monitorRepo{c: c}, nil
}

func (r *monitorRepo) List() []model.Monitor               { return r.c.List() }
func (r *monitorRepo) Get(id string) (model.Monitor, bool) { return r.c.Get(id) }

func (r *monitorRepo) Insert(ctx context.Context, m model.Monitor) error {
	return r.c.Insert(ctx, m)
}

func (r *monitorRepo) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.Remove(ctx, id)
}

func (r *monitorRepo) Update(ctx context.Context, id string, mutate func(*model.Monitor)) (bool, error) {
	return r.c.Update(ctx, id, mutate)
}
