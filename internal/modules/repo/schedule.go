package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
)

const keySchedule = "schedule"

// ScheduleRepo owns the date-keyed schedule map. Unlike the other
// collections this is not a flat array, so it sits directly on the
// store instead of going through records.Collection.
type ScheduleRepo interface {
	All() map[string][]model.ScheduleTask
	Day(date string) []model.ScheduleTask
	Append(ctx context.Context, date string, t model.ScheduleTask) error
	Toggle(ctx context.Context, date, id string) (bool, error)
	Remove(ctx context.Context, date, id string) (bool, error)
}

type scheduleRepo struct {
	mu    sync.RWMutex
	store kv.Store
	days  map[string][]model.ScheduleTask
}

func NewScheduleRepo(ctx context.Context, store kv.Store) ScheduleRepo {
	r := &scheduleRepo{store: store, days: make(map[string][]model.ScheduleTask)}
	if raw, ok := store.Get(ctx, keySchedule); ok {
		// A corrupt value is treated as absence, never surfaced.
		_ = sonic.Unmarshal(raw, &r.days)
		if r.days == nil {
			r.days = make(map[string][]model.ScheduleTask)
		}
	}
	return r
}

func (r *scheduleRepo) All() map[string][]model.ScheduleTask {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]model.ScheduleTask, len(r.days))
	for d, tasks := range r.days {
		out[d] = append([]model.ScheduleTask(nil), tasks...)
	}
	return out
}

func (r *scheduleRepo) Day(date string) []model.ScheduleTask {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.ScheduleTask(nil), r.days[date]...)
}

func (r *scheduleRepo) Append(ctx context.Context, date string, t model.ScheduleTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.days[date] = append(r.days[date], t)
	if err := r.persist(ctx); err != nil {
		r.days[date] = r.days[date][:len(r.days[date])-1]
		return err
	}
	return nil
}

func (r *scheduleRepo) Toggle(ctx context.Context, date, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasks := r.days[date]
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Done = !tasks[i].Done
		if err := r.persist(ctx); err != nil {
			tasks[i].Done = !tasks[i].Done
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (r *scheduleRepo) Remove(ctx context.Context, date, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasks := r.days[date]
	kept := make([]model.ScheduleTask, 0, len(tasks))
	removed := false
	for _, t := range tasks {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return false, nil
	}
	prev := tasks
	if len(kept) == 0 {
		delete(r.days, date)
	} else {
		r.days[date] = kept
	}
	if err := r.persist(ctx); err != nil {
		r.days[date] = prev
		return false, err
	}
	return true, nil
}

func (r *scheduleRepo) persist(ctx context.Context) error {
	raw, err := sonic.Marshal(r.days)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", keySchedule, err)
	}
	return r.store.Set(ctx, keySchedule, raw)
}
