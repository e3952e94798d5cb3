package repo

import (
	"context"
	"testing"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/modules/model"
	"github.com/stretchr/testify/assert"
)

func TestScheduleRepo_AppendToggleRemove(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	r := NewScheduleRepo(ctx, store)

	assert.Empty(t, r.All())

	assert.NoError(t, r.Append(ctx, "2026-02-19", model.ScheduleTask{ID: "t1", Text: "ship it"}))
	assert.NoError(t, r.Append(ctx, "2026-02-19", model.ScheduleTask{ID: "t2", Text: "write tests"}))
	assert.NoError(t, r.Append(ctx, "2026-02-20", model.ScheduleTask{ID: "t3", Text: "rest"}))

	assert.Len(t, r.Day("2026-02-19"), 2)
	assert.Len(t, r.All(), 2)

	found, err := r.Toggle(ctx, "2026-02-19", "t1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.True(t, r.Day("2026-02-19")[0].Done)

	found, err = r.Toggle(ctx, "2026-02-19", "missing")
	assert.NoError(t, err)
	assert.False(t, found)

	removed, err := r.Remove(ctx, "2026-02-20", "t3")
	assert.NoError(t, err)
	assert.True(t, removed)

	// Removing the last task drops the whole day bucket.
	_, ok := r.All()["2026-02-20"]
	assert.False(t, ok)

	// State survives a reload from the same store.
	reloaded := NewScheduleRepo(ctx, store)
	assert.Len(t, reloaded.Day("2026-02-19"), 2)
	assert.True(t, reloaded.Day("2026-02-19")[0].Done)
}

func TestScheduleRepo_CorruptValueFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	assert.NoError(t, store.Set(ctx, "schedule", []byte("[not a map]")))

	r := NewScheduleRepo(ctx, store)
	assert.Empty(t, r.All())
}
