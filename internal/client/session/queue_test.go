package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteQueue_RunsInOrder(t *testing.T) {
	q := newWriteQueue()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu   sync.Mutex
		seen []int
		errs []error
	)
	go q.run(ctx, func(_ writeTask, err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	})

	boom := errors.New("boom")
	for i := 0; i < 5; i++ {
		i := i
		q.submit(writeTask{kind: writePersist, run: func(context.Context) error {
			mu.Lock()
			seen = append(seen, i)
			mu.Unlock()
			if i == 2 {
				return boom
			}
			return nil
		}})
	}

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer waitCancel()
	require.NoError(t, q.wait(waitCtx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.ErrorIs(t, errs[2], boom)
	assert.Zero(t, q.len())
}

func TestWriteQueue_WaitRespectsContext(t *testing.T) {
	q := newWriteQueue()
	q.submit(writeTask{run: func(context.Context) error { return nil }})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, q.wait(ctx), context.DeadlineExceeded)
	assert.Equal(t, 1, q.len())
}

func TestWriteQueue_CloseDropsQueued(t *testing.T) {
	q := newWriteQueue()
	q.submit(writeTask{run: func(context.Context) error { return nil }})
	q.submit(writeTask{run: func(context.Context) error { return nil }})

	q.close()

	assert.Zero(t, q.len())
	assert.NoError(t, q.wait(context.Background()))
	assert.False(t, q.submit(writeTask{run: func(context.Context) error { return nil }}))
}

func TestDebouncer_Coalesces(t *testing.T) {
	var calls atomic.Int32
	d := newDebouncer(20*time.Millisecond, func() { calls.Add(1) })
	defer d.stop()

	for i := 0; i < 10; i++ {
		d.trigger()
	}
	assert.True(t, d.pending())

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.EqualValues(t, 1, calls.Load())
	assert.False(t, d.pending())
}

func TestDebouncer_FlushAndStop(t *testing.T) {
	var calls atomic.Int32
	d := newDebouncer(time.Hour, func() { calls.Add(1) })

	assert.False(t, d.flush())
	d.trigger()
	assert.True(t, d.flush())
	assert.EqualValues(t, 1, calls.Load())
	assert.False(t, d.pending())

	d.trigger()
	d.stop()
	assert.False(t, d.pending())
	d.trigger()
	assert.False(t, d.flush())
	assert.EqualValues(t, 1, calls.Load())
}

func TestDebouncer_FlushWaitsForFiringCall(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var done atomic.Bool
	d := newDebouncer(time.Hour, func() {
		close(entered)
		<-release
		done.Store(true)
	})
	defer d.stop()

	d.trigger()
	d.mu.Lock()
	gen := d.gen
	d.mu.Unlock()
	go d.fire(gen)
	<-entered

	flushed := make(chan bool)
	go func() { flushed <- d.flush() }()

	select {
	case <-flushed:
		t.Fatal("flush returned while the timer call was still running")
	case <-time.After(30 * time.Millisecond):
	}

	close(release)
	assert.False(t, <-flushed, "the timer already took the pending call")
	assert.True(t, done.Load())
}
