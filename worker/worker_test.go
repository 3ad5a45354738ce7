package worker

import (
	"sync/atomic"
	"testing"
)

func TestQueueRunsJobsInOrder(t *testing.T) {
	q := New(4)
	var order []int
	for i := range 10 {
		if !q.Submit(func() { order = append(order, i) }) {
			t.Fatalf("submit %d rejected", i)
		}
	}
	q.Close()

	if len(order) != 10 {
		t.Fatalf("expected 10 jobs to run, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("job %d ran out of order: %v", i, order)
		}
	}
}

func TestQueueSurvivesPanics(t *testing.T) {
	q := New(2)
	var ran atomic.Bool
	q.Submit(func() { panic("boom") })
	q.Submit(func() { ran.Store(true) })
	q.Close()

	if !ran.Load() {
		t.Fatalf("job after a panicking job did not run")
	}
}

func TestQueueRejectsAfterClose(t *testing.T) {
	q := New(1)
	q.Close()
	q.Close()
	if q.Submit(func() {}) || q.TrySubmit(func() {}) {
		t.Fatalf("closed queue accepted a job")
	}
}
