package store

import (
	"context"
	"time"
)

// Latency simulates network delay in front of store operations. It exists
// to exercise asynchronous UI states in demos; it carries no scheduling
// semantics and a zero duration disables it entirely.
type Latency struct {
	d time.Duration
}

// NewLatency returns a latency gate with the given delay. A zero or
// negative delay produces a no-op gate.
func NewLatency(d time.Duration) *Latency {
	if d <= 0 {
		return nil
	}
	return &Latency{d: d}
}

// Wait blocks for the configured delay or until the context is cancelled.
// A nil gate returns immediately.
func (l *Latency) Wait(ctx context.Context) error {
	if l == nil || l.d <= 0 {
		return nil
	}

	t := time.NewTimer(l.d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
