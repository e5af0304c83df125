// Package viewstate provides the optimistic-update primitive used by
// presentation code: apply a local value ahead of the authoritative
// result, then commit the result on success or restore the snapshot on
// failure.
package viewstate

import "context"

// Mutation tracks one optimistic state transition. The transition order
// is fixed: snapshot the current value, apply the optimistic value, await
// the authoritative result, then Commit or Rollback.
type Mutation[T any] struct {
	snapshot T
	value    T
	settled  bool
}

// Begin snapshots the current value and applies the optimistic one.
func Begin[T any](current, optimistic T) *Mutation[T] {
	return &Mutation[T]{snapshot: current, value: optimistic}
}

// Value returns the value the view should currently display.
func (m *Mutation[T]) Value() T { return m.value }

// Settled reports whether the mutation has been committed or rolled back.
func (m *Mutation[T]) Settled() bool { return m.settled }

// Commit adopts the authoritative value and returns it. Committing a
// settled mutation is a no-op that returns the settled value.
func (m *Mutation[T]) Commit(authoritative T) T {
	if m.settled {
		return m.value
	}
	m.value = authoritative
	m.settled = true
	return m.value
}

// Rollback restores the snapshot taken at Begin and returns it.
func (m *Mutation[T]) Rollback() T {
	if m.settled {
		return m.value
	}
	m.value = m.snapshot
	m.settled = true
	return m.value
}

// Do runs one full optimistic transition: it begins a mutation with the
// optimistic value, invokes op for the authoritative result, and commits
// on success or rolls back on failure. The returned value is what the
// view should display; the error, if any, is op's.
func Do[T any](ctx context.Context, current, optimistic T, op func(context.Context) (T, error)) (T, error) {
	m := Begin(current, optimistic)
	authoritative, err := op(ctx)
	if err != nil {
		return m.Rollback(), err
	}
	return m.Commit(authoritative), nil
}
