package session

import (
	"context"
	"sync"
	"time"
)

type writeKind string

const (
	writePersist writeKind = "persist"
	writeMirror  writeKind = "mirror"
	writeDeliver writeKind = "deliver"
)

type writeTask struct {
	kind writeKind
	run  func(ctx context.Context) error
}

// writeQueue runs remote writes one at a time in submission order.
type writeQueue struct {
	mu      sync.Mutex
	tasks   []writeTask
	pending int
	idle    chan struct{}
	wake    chan struct{}
	closed  bool
}

func newWriteQueue() *writeQueue {
	q := &writeQueue{
		idle: make(chan struct{}),
		wake: make(chan struct{}, 1),
	}
	close(q.idle)
	return q
}

func (q *writeQueue) submit(t writeTask) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	if q.pending == 0 {
		q.idle = make(chan struct{})
	}
	q.pending++
	q.tasks = append(q.tasks, t)

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// run executes tasks until ctx ends; tasks still queued at that point are
// dropped.
func (q *writeQueue) run(ctx context.Context, done func(writeTask, error)) {
	for {
		if ctx.Err() != nil {
			q.close()
			return
		}

		t, ok := q.next()
		if !ok {
			select {
			case <-ctx.Done():
				q.close()
				return
			case <-q.wake:
			}
			continue
		}

		err := t.run(ctx)
		done(t, err)
		q.finish()
	}
}

func (q *writeQueue) next() (writeTask, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.tasks) == 0 {
		return writeTask{}, false
	}
	t := q.tasks[0]
	q.tasks[0] = writeTask{}
	q.tasks = q.tasks[1:]
	return t, true
}

func (q *writeQueue) finish() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending--
	if q.pending == 0 {
		close(q.idle)
	}
}

func (q *writeQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	dropped := len(q.tasks)
	q.tasks = nil
	if dropped > 0 {
		q.pending -= dropped
		if q.pending == 0 {
			close(q.idle)
		}
	}
}

// wait blocks until every submitted task has finished.
func (q *writeQueue) wait(ctx context.Context) error {
	q.mu.Lock()
	idle := q.idle
	q.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *writeQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending
}

// debouncer calls fn once interval has passed without another trigger. fn
// runs with the debouncer locked, so once pending reports false the call has
// completed. It must not call back into the debouncer.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	timer    *time.Timer
	gen      uint64
	stopped  bool
}

func newDebouncer(interval time.Duration, fn func()) *debouncer {
	return &debouncer{interval: interval, fn: fn}
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.interval, func() { d.fire(gen) })
}

func (d *debouncer) fire(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || d.timer == nil || gen != d.gen {
		return
	}
	d.timer = nil
	d.fn()
}

// flush runs a pending call now. It reports whether one was pending.
func (d *debouncer) flush() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	d.fn()
	return true
}

func (d *debouncer) pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
