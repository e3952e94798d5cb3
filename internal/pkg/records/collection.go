// Package records implements the shared record-collection lifecycle:
// load once from the store, seed on first run, then mutate in memory
// with a synchronous write-through persist after every change.
package records

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/nightclaw/mission-control/internal/infra/kv"
)

// Collection owns the in-memory copy of one persisted collection and is
// its sole writer. The mutex is the write fence between HTTP handlers
// and probe goroutines touching the same collection.
type Collection[T any] struct {
	mu    sync.RWMutex
	store kv.Store
	key   string
	idOf  func(T) string
	items []T
}

// Open loads the collection from the store; an absent or unreadable
// value falls back to empty. When the loaded collection is empty and a
// seed is given, the seed is persisted immediately, so a later Open
// sees a non-empty collection and skips it.
func Open[T any](ctx context.Context, store kv.Store, key string, idOf func(T) string, seed []T) (*Collection[T], error) {
	c := &Collection[T]{store: store, key: key, idOf: idOf}
	if raw, ok := store.Get(ctx, key); ok {
		// A corrupt value is treated as absence, never surfaced.
		_ = sonic.Unmarshal(raw, &c.items)
	}
	if len(c.items) == 0 && len(seed) > 0 {
		c.items = append([]T(nil), seed...)
		if err := c.persist(ctx); err != nil {
			return nil, fmt.Errorf("seed %s: %w", key, err)
		}
	}
	return c, nil
}

// List returns a copy of the current records.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if c.idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Insert appends one record and persists.
func (c *Collection[T]) Insert(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	if err := c.persist(ctx); err != nil {
		c.items = c.items[:len(c.items)-1]
		return err
	}
	return nil
}

// Remove filters out the record with the given id and persists,
// reporting whether a record was removed.
func (c *Collection[T]) Remove(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := make([]T, 0, len(c.items))
	removed := false
	for _, it := range c.items {
		if c.idOf(it) == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return false, nil
	}
	prev := c.items
	c.items = kept
	if err := c.persist(ctx); err != nil {
		c.items = prev
		return false, err
	}
	return true, nil
}

// Update applies mutate to the record with the given id and persists,
// reporting whether the record was found.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(*T)) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) != id {
			continue
		}
		prev := c.items[i]
		mutate(&c.items[i])
		if err := c.persist(ctx); err != nil {
			c.items[i] = prev
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (c *Collection[T]) persist(ctx context.Context) error {
	raw, err := sonic.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.key, err)
	}
	return c.store.Set(ctx, c.key, raw)
}
