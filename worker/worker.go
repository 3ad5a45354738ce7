package worker

import (
	"sync"

	"github.com/getsentry/sentry-go"
)

// Queue runs submitted jobs in order on a single background goroutine. It is used for work that must
// stay off the frame loop, such as writing telemetry and recordings to disk.
type Queue struct {
	jobs chan func()

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// New starts a queue that buffers up to size pending jobs.
func New(size int) *Queue {
	if size <= 0 {
		size = 1
	}
	q := &Queue{jobs: make(chan func(), size)}
	q.wg.Add(1)
	go q.work()
	return q
}

func (q *Queue) work() {
	defer q.wg.Done()
	for f := range q.jobs {
		run(f)
	}
}

// run executes a single job. A panicking job is reported and does not stop the queue.
func run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to run. It blocks while the queue is full and returns false if the queue was closed.
func (q *Queue) Submit(f func()) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return false
	}
	q.jobs <- f
	return true
}

// TrySubmit queues f to run without blocking. It returns false if the queue is full or closed.
func (q *Queue) TrySubmit(f func()) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return false
	}
	select {
	case q.jobs <- f:
		return true
	default:
		return false
	}
}

// Close stops accepting jobs and waits for the pending ones to finish.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()
}
