// Package store implements the in-memory entity store. Each entity type
// lives in its own Collection, which exclusively owns its records: every
// read returns a detached copy, so callers can only change stored state
// through a write operation.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"pulse/internal/observability"
)

// ErrNotFound is returned when no record has the requested identifier.
// Repositories translate it into a resource-specific AppError.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned by InsertIf when the conflict predicate matches
// an existing record.
var ErrConflict = errors.New("record conflicts with an existing record")

// Record is implemented by every entity held in a Collection. WithID and
// Clone use value semantics so stored records never share memory with
// caller-held values.
type Record[T any] interface {
	RecordID() uint
	WithID(id uint) T
	Clone() T
}

// Collection holds all live records of one entity type.
//
// Identifier assignment follows the max+1 rule: a new record gets
// 1 + the highest identifier ever seen, so identifiers are never reused
// after deletion. All operations are atomic under the collection's lock.
type Collection[T Record[T]] struct {
	name    string
	latency *Latency

	mu    sync.RWMutex
	items []T
	maxID uint
}

// NewCollection creates an empty collection with the given name. The
// latency gate is applied before every operation; a nil gate resolves
// immediately.
func NewCollection[T Record[T]](name string, latency *Latency) *Collection[T] {
	return &Collection[T]{name: name, latency: latency}
}

// Name returns the collection name used for logging and metrics.
func (c *Collection[T]) Name() string { return c.name }

// Seed replaces the collection contents with the given records. It bypasses
// the latency gate; it is meant for fixture loading at startup and in tests.
func (c *Collection[T]) Seed(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, 0, len(items))
	c.maxID = 0
	for _, item := range items {
		if id := item.RecordID(); id > c.maxID {
			c.maxID = id
		}
		c.items = append(c.items, item.Clone())
	}
}

// All returns detached copies of every record in insertion order.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	defer c.observe("all", time.Now())
	if err := c.latency.Wait(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item.Clone())
	}
	return out, nil
}

// Get returns a detached copy of the record with the given identifier.
func (c *Collection[T]) Get(ctx context.Context, id uint) (T, error) {
	defer c.observe("get", time.Now())
	var zero T
	if err := c.latency.Wait(ctx); err != nil {
		return zero, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.index(id)
	if i < 0 {
		return zero, ErrNotFound
	}
	return c.items[i].Clone(), nil
}

// Find returns detached copies of every record matching the predicate, in
// insertion order.
func (c *Collection[T]) Find(ctx context.Context, match func(T) bool) ([]T, error) {
	defer c.observe("find", time.Now())
	if err := c.latency.Wait(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for _, item := range c.items {
		if match(item) {
			out = append(out, item.Clone())
		}
	}
	return out, nil
}

// FindOne returns a detached copy of the first record matching the
// predicate, or ErrNotFound.
func (c *Collection[T]) FindOne(ctx context.Context, match func(T) bool) (T, error) {
	defer c.observe("find_one", time.Now())
	var zero T
	if err := c.latency.Wait(ctx); err != nil {
		return zero, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if match(item) {
			return item.Clone(), nil
		}
	}
	return zero, ErrNotFound
}

// Insert stores the record under a freshly assigned identifier and returns
// a detached copy of the stored record.
func (c *Collection[T]) Insert(ctx context.Context, item T) (T, error) {
	return c.InsertIf(ctx, item, nil)
}

// InsertIf stores the record unless the conflict predicate matches an
// existing record, in which case it returns ErrConflict. The uniqueness
// check and the insert run under one lock acquisition.
func (c *Collection[T]) InsertIf(ctx context.Context, item T, conflict func(T) bool) (T, error) {
	defer c.observe("insert", time.Now())
	var zero T
	if err := c.latency.Wait(ctx); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if conflict != nil {
		for _, existing := range c.items {
			if conflict(existing) {
				return zero, ErrConflict
			}
		}
	}

	c.maxID++
	stored := item.WithID(c.maxID).Clone()
	c.items = append(c.items, stored)
	return stored.Clone(), nil
}

// Update applies mutate to a copy of the record with the given identifier
// and stores the result. The identifier is immutable: any change mutate
// makes to it is silently discarded. Returns a detached copy of the
// updated record.
func (c *Collection[T]) Update(ctx context.Context, id uint, mutate func(*T)) (T, error) {
	defer c.observe("update", time.Now())
	var zero T
	if err := c.latency.Wait(ctx); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return zero, ErrNotFound
	}

	updated := c.items[i].Clone()
	mutate(&updated)
	updated = updated.WithID(id)
	c.items[i] = updated.Clone()
	return updated.Clone(), nil
}

// UpdateWhere applies mutate to a copy of every record matching the
// predicate and stores the results. Identifiers stay immutable as in
// Update. Returns the number of records changed.
func (c *Collection[T]) UpdateWhere(ctx context.Context, match func(T) bool, mutate func(*T)) (int, error) {
	defer c.observe("update", time.Now())
	if err := c.latency.Wait(ctx); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for i, item := range c.items {
		if !match(item) {
			continue
		}
		updated := item.Clone()
		mutate(&updated)
		c.items[i] = updated.WithID(item.RecordID()).Clone()
		n++
	}
	return n, nil
}

// Delete removes the record with the given identifier and returns a
// detached copy of what was removed.
func (c *Collection[T]) Delete(ctx context.Context, id uint) (T, error) {
	defer c.observe("delete", time.Now())
	var zero T
	if err := c.latency.Wait(ctx); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.index(id)
	if i < 0 {
		return zero, ErrNotFound
	}
	return c.removeAt(i), nil
}

// DeleteWhere removes the first record matching the predicate and returns
// a detached copy of it, or ErrNotFound when nothing matches.
func (c *Collection[T]) DeleteWhere(ctx context.Context, match func(T) bool) (T, error) {
	defer c.observe("delete", time.Now())
	var zero T
	if err := c.latency.Wait(ctx); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if match(item) {
			return c.removeAt(i), nil
		}
	}
	return zero, ErrNotFound
}

// Len reports the number of live records. It does not pass through the
// latency gate; it exists for invariant checks and tests.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) index(id uint) int {
	for i, item := range c.items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) removeAt(i int) T {
	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	return removed.Clone()
}

func (c *Collection[T]) observe(op string, start time.Time) {
	observability.ObserveStoreOperation(op, c.name, start)
}
