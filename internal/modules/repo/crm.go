package repo

import (
	"context"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/pkg/records"
)

const keyClients = "crm_clients"

type ClientRepo interface {
	List() []model.Client
	Insert(ctx context.Context, c model.Client) error
	Remove(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, mutate func(*model.Client)) (bool, error)
}

type clientRepo struct{ c *records.Collection[model.Client] }

func NewClientRepo(ctx context.Context, store kv.Store) (ClientRepo, error) {
	c, err := records.Open(ctx, store, keyClients,
		func(cl model.Client) string { return cl.ID }, nil)
	if err != nil {
		return nil, err
	}
	return &clientRepo{c: c}, nil
}

func (r *clientRepo) List() []model.Client { return r.c.List() }

func (r *clientRepo) Insert(ctx context.Context, c model.Client) error {
	return r.c.Insert(ctx, c)
}

func (r *clientRepo) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.Remove(ctx, id)
}

func (r *clientRepo) Update(ctx context.Context, id string, mutate func(*model.Client)) (bool, error) {
	return r.c.Update(ctx, id, mutate)
}
