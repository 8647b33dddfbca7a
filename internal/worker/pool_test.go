package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northshoreshop/storefront/internal/testing/leaktest"
)

const (
	testWorkerCount = 2
	testQueueSize   = 10
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(testWorkerCount, testQueueSize, time.Second)
	pool.Start()

	job := &testJob{executed: &executed}
	require.NoError(t, pool.Enqueue(job))
	require.NoError(t, pool.Enqueue(job))

	require.NoError(t, pool.Stop(context.Background()))

	assert.Equal(t, int32(2), atomic.LoadInt32(&executed), "Stop drains queued jobs")
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1, 0)
	pool.Start()
	require.NoError(t, pool.Stop(context.Background()))

	err := pool.Enqueue(JobFunc(func(context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrPoolStopped)

	assert.NoError(t, pool.Stop(context.Background()), "Stop is idempotent")
}

func TestPool_QueueFull(t *testing.T) {
	// Not started, so nothing consumes the queue
	pool := NewPool(1, 1, 0)

	noop := JobFunc(func(context.Context) error { return nil })
	require.NoError(t, pool.Enqueue(noop))
	assert.ErrorIs(t, pool.Enqueue(noop), ErrQueueFull)
}

func TestPool_FailingAndPanickingJobsDoNotKillWorkers(t *testing.T) {
	var executed int32
	pool := NewPool(1, testQueueSize, 0)
	pool.Start()

	require.NoError(t, pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") })))
	require.NoError(t, pool.Enqueue(JobFunc(func(context.Context) error { panic("bad job") })))
	require.NoError(t, pool.Enqueue(&testJob{executed: &executed}))

	require.NoError(t, pool.Stop(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&executed))
}

func TestPool_JobTimeout(t *testing.T) {
	deadlineSet := make(chan bool, 1)
	pool := NewPool(1, 1, 50*time.Millisecond)
	pool.Start()

	require.NoError(t, pool.Enqueue(JobFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		deadlineSet <- ok
		<-ctx.Done()
		return ctx.Err()
	})))

	require.NoError(t, pool.Stop(context.Background()))
	assert.True(t, <-deadlineSet)
}

func TestPool_StopHonorsContext(t *testing.T) {
	release := make(chan struct{})
	pool := NewPool(1, 1, 0)
	pool.Start()

	require.NoError(t, pool.Enqueue(JobFunc(func(context.Context) error {
		<-release
		return nil
	})))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := pool.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(4, testQueueSize, 0)
		pool.Start()
		for i := 0; i < 5; i++ {
			_ = pool.Enqueue(JobFunc(func(context.Context) error { return nil }))
		}
		_ = pool.Stop(context.Background())
	})
}
