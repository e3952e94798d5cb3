package repo

import (
	"context"
	"testing"

	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/stretchr/testify/assert"
)

func TestSeedOnFirstRun(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	projects, err := NewProjectRepo(ctx, store)
	assert.NoError(t, err)
	assert.Equal(t, 1, projects.Len())
	assert.Equal(t, "WatchParty", projects.List()[0].Name)

	devlog, err := NewDevLogRepo(ctx, store)
	assert.NoError(t, err)
	assert.Equal(t, 4, devlog.Len())

	goals, err := NewGoalRepo(ctx, store)
	assert.NoError(t, err)
	assert.Len(t, goals.List(), 5)

	// Unseeded collections start empty.
	notes, err := NewNoteRepo(ctx, store)
	assert.NoError(t, err)
	assert.Empty(t, notes.List())

	monitors, err := NewMonitorRepo(ctx, store)
	assert.NoError(t, err)
	assert.Empty(t, monitors.List())
}

func TestSeedReappliedWhenEmptied(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	projects, err := NewProjectRepo(ctx, store)
	assert.NoError(t, err)
	seeded := projects.List()
	assert.Len(t, seeded, 1)

	removed, err := projects.Remove(ctx, seeded[0].ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	// The stored collection is now empty, which is indistinguishable from
	// a first run, so reopening seeds it again.
	reopened, err := NewProjectRepo(ctx, store)
	assert.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
	assert.Equal(t, "WatchParty", reopened.List()[0].Name)
}

func TestSeedNotReappliedWhileRecordsRemain(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	goals, err := NewGoalRepo(ctx, store)
	assert.NoError(t, err)
	seeded := goals.List()
	assert.Len(t, seeded, 5)

	removed, err := goals.Remove(ctx, seeded[0].ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	reopened, err := NewGoalRepo(ctx, store)
	assert.NoError(t, err)
	assert.Len(t, reopened.List(), 4)
	for _, g := range reopened.List() {
		assert.NotEqual(t, seeded[0].ID, g.ID)
	}
}
