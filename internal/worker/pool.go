// Package worker runs background jobs on a fixed set of goroutines.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/northshoreshop/storefront/internal/logger"
)

var (
	// ErrQueueFull is returned by Enqueue when the job queue has no room
	ErrQueueFull = errors.New("worker queue is full")
	// ErrPoolStopped is returned by Enqueue after Stop has been called
	ErrPoolStopped = errors.New("worker pool is stopped")
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobTimeout time.Duration
	jobQueue   chan Job
	wg         sync.WaitGroup

	mu      sync.RWMutex
	started bool
	stopped bool
}

// NewPool creates a new worker pool. Each job runs with its own context bounded
// by jobTimeout; a zero timeout leaves jobs unbounded.
func NewPool(workers, queueSize int, jobTimeout time.Duration) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:    workers,
		jobTimeout: jobTimeout,
		jobQueue:   make(chan Job, queueSize),
	}
}

// Start starts the workers. Calling Start more than once has no effect.
func (p *Pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.stopped {
		return
	}
	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for job := range p.jobQueue {
		p.run(id, job)
	}
}

func (p *Pool) run(id int, job Job) {
	ctx := context.Background()
	if p.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.jobTimeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobPanicked, "worker", id, "panic", fmt.Sprint(r))
		}
	}()

	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "worker", id, "error", err)
	}
}

// Enqueue adds a job to the queue without blocking
func (p *Pool) Enqueue(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop stops accepting jobs, lets the workers drain the queue and waits for
// them to finish or for ctx to end.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.jobQueue)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.FromContext(ctx).Debug(LogMsgWorkerPoolStopped, "workers", p.workers)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker pool stop: %w", ctx.Err())
	}
}
