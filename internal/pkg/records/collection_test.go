package records

import (
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/stretchr/testify/assert"
)

type rec struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func recID(r rec) string { return r.ID }

// failStore rejects every write after the cutoff, for rollback tests.
type failStore struct {
	inner   kv.Store
	failing bool
}

func (s *failStore) Get(ctx context.Context, key string) ([]byte, bool) {
	return s.inner.Get(ctx, key)
}

func (s *failStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failing {
		return errors.New("store unavailable")
	}
	return s.inner.Set(ctx, key, value)
}

func TestOpen_SeedsOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	seed := []rec{{ID: "a", Name: "first"}, {ID: "b", Name: "second"}}

	c, err := Open(ctx, store, "recs", recID, seed)
	assert.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	// The seed must be persisted so a reopen sees it.
	raw, ok := store.Get(ctx, "recs")
	assert.True(t, ok)
	var stored []rec
	assert.NoError(t, sonic.Unmarshal(raw, &stored))
	assert.Equal(t, seed, stored)

	// Reopening must not seed again, even after the collection shrank.
	_, err = c.Remove(ctx, "a")
	assert.NoError(t, err)
	reopened, err := Open(ctx, store, "recs", recID, seed)
	assert.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
}

func TestOpen_CorruptValueFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	assert.NoError(t, store.Set(ctx, "recs", []byte("{not json")))

	c, err := Open(ctx, store, "recs", recID, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestCollection_InsertGetRemove(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	c, err := Open(ctx, store, "recs", recID, nil)
	assert.NoError(t, err)

	assert.NoError(t, c.Insert(ctx, rec{ID: "x", Name: "one"}))
	assert.NoError(t, c.Insert(ctx, rec{ID: "y", Name: "two"}))

	got, ok := c.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "one", got.Name)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	removed, err := c.Remove(ctx, "x")
	assert.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 1, c.Len())

	removed, err = c.Remove(ctx, "x")
	assert.NoError(t, err)
	assert.False(t, removed)

	// Every mutation writes through.
	raw, ok := store.Get(ctx, "recs")
	assert.True(t, ok)
	var stored []rec
	assert.NoError(t, sonic.Unmarshal(raw, &stored))
	assert.Equal(t, []rec{{ID: "y", Name: "two"}}, stored)
}

func TestCollection_Update(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	c, err := Open(ctx, store, "recs", recID, []rec{{ID: "x", Name: "one"}})
	assert.NoError(t, err)

	found, err := c.Update(ctx, "x", func(r *rec) { r.Name = "renamed" })
	assert.NoError(t, err)
	assert.True(t, found)

	got, _ := c.Get("x")
	assert.Equal(t, "renamed", got.Name)

	found, err = c.Update(ctx, "missing", func(r *rec) { r.Name = "nope" })
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestCollection_RollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	store := &failStore{inner: kv.NewMemoryStore()}
	c, err := Open(ctx, store, "recs", recID, []rec{{ID: "x", Name: "one"}})
	assert.NoError(t, err)

	store.failing = true

	assert.Error(t, c.Insert(ctx, rec{ID: "y", Name: "two"}))
	assert.Equal(t, 1, c.Len())

	_, err = c.Remove(ctx, "x")
	assert.Error(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = c.Update(ctx, "x", func(r *rec) { r.Name = "changed" })
	assert.Error(t, err)
	got, _ := c.Get("x")
	assert.Equal(t, "one", got.Name)
}

func TestCollection_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c, err := Open(ctx, kv.NewMemoryStore(), "recs", recID, []rec{{ID: "x", Name: "one"}})
	assert.NoError(t, err)

	list := c.List()
	list[0].Name = "mutated"

	got, _ := c.Get("x")
	assert.Equal(t, "one", got.Name)
}
