package api

import (
	"context"
	"sync/atomic"
)

// WorkerPool bounds the number of simulation runs executing at once.
// Game actions are serialized by the session lock and never queue here.
type WorkerPool struct {
	sem    chan struct{}
	queued int64
	active int64
	total  int64
}

// NewWorkerPool creates a pool with room for max concurrent runs (default 2).
func NewWorkerPool(max int) *WorkerPool {
	if max <= 0 {
		max = 2
	}
	return &WorkerPool{sem: make(chan struct{}, max)}
}

// Acquire waits for a slot. It returns ctx.Err() if the context is done first.
func (p *WorkerPool) Acquire(ctx context.Context) error {
	atomic.AddInt64(&p.queued, 1)
	defer atomic.AddInt64(&p.queued, -1)

	select {
	case p.sem <- struct{}{}:
		atomic.AddInt64(&p.active, 1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire takes a slot without blocking.
func (p *WorkerPool) TryAcquire() bool {
	select {
	case p.sem <- struct{}{}:
		atomic.AddInt64(&p.active, 1)
		return true
	default:
		return false
	}
}

// Release frees a slot taken by Acquire or TryAcquire.
func (p *WorkerPool) Release() {
	atomic.AddInt64(&p.active, -1)
	atomic.AddInt64(&p.total, 1)
	<-p.sem
}

// PoolStats is a snapshot of pool usage.
type PoolStats struct {
	Active int64 `json:"active"`
	Queued int64 `json:"queued"`
	Total  int64 `json:"total"`
	Max    int   `json:"max"`
}

// Stats returns current pool usage.
func (p *WorkerPool) Stats() PoolStats {
	return PoolStats{
		Active: atomic.LoadInt64(&p.active),
		Queued: atomic.LoadInt64(&p.queued),
		Total:  atomic.LoadInt64(&p.total),
		Max:    cap(p.sem),
	}
}
