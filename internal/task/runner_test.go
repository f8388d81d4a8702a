package task

import (
	"context"
	"sync/atomic"
	"testing"
)

func TestSubmitRunsTask(t *testing.T) {
	r := NewRunner()

	var ran atomic.Bool
	r.Submit("test", func(ctx context.Context) {
		ran.Store(true)
	})
	r.Wait()

	if !ran.Load() {
		t.Error("submitted task did not run")
	}
}

func TestSubmitIsolatesPanic(t *testing.T) {
	r := NewRunner()

	var after atomic.Bool
	r.Submit("panics", func(ctx context.Context) {
		panic("boom")
	})
	r.Submit("survives", func(ctx context.Context) {
		after.Store(true)
	})
	r.Wait()

	if !after.Load() {
		t.Error("task submitted after a panicking task did not run")
	}
}

func TestWaitDrainsAllTasks(t *testing.T) {
	r := NewRunner()

	var count atomic.Int32
	for i := 0; i < 20; i++ {
		r.Submit("n", func(ctx context.Context) {
			count.Add(1)
		})
	}
	r.Wait()

	if count.Load() != 20 {
		t.Errorf("completed tasks = %d, want 20", count.Load())
	}
}

func TestTaskContextNotCancelled(t *testing.T) {
	r := NewRunner()

	var cancelled atomic.Bool
	r.Submit("ctx", func(ctx context.Context) {
		select {
		case <-ctx.Done():
			cancelled.Store(true)
		default:
		}
	})
	r.Wait()

	if cancelled.Load() {
		t.Error("background task context was cancelled")
	}
}
