package repo

import (
	"context"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/nightclaw/mission-control/internal/pkg/records"
)

const keyProjects = "projects"

type ProjectRepo interface {
	List() []model.Project
	Len() int
	Get(id string) (model.Project, bool)
	Insert(ctx context.Context, p model.Project) error
	Remove(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, mutate func(*model.Project)) (bool, error)
}

type projectRepo struct{ c *records.Collection[model.Project] }

func NewProjectRepo(ctx context.Context, store kv.Store) (ProjectRepo, error) {
	c, err := records.Open(ctx, store, keyProjects,
		func(p model.Project) string { return p.ID }, defaultProjects())
	if err != nil {
		return nil, err
	}
	return &projectRepo{c: c}, nil
}

func (r *projectRepo) List() []model.Project               { return r.c.List() }
func (r *projectRepo) Len() int                            { return r.c.Len() }
func (r *projectRepo) Get(id string) (model.Project, bool) { return r.c.Get(id) }

func (r *projectRepo) Insert(ctx context.Context, p model.Project) error {
	return r.c.Insert(ctx, p)
}

func (r *projectRepo) Remove(ctx context.Context, id string) (bool, error) {
	return r.c.Remove(ctx, id)
}

func (r *projectRepo) Update(ctx context.Context, id string, mutate func(*model.Project)) (bool, error) {
	return r.c.Update(ctx, id, mutate)
}
