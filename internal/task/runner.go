// Package task runs fire-and-forget background work detached from the
// request path.
package task

import (
	"context"
	"log"
	"sync"
)

// Runner executes submitted functions on their own goroutines. There is no
// result channel, retry policy or cancellation: a task runs to completion
// and reports only through logs. Panics are isolated so a failing task
// cannot take down the serving process.
type Runner struct {
	wg sync.WaitGroup
}

// NewRunner creates a background runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Submit schedules fn to run in the background. The context passed to fn is
// never cancelled; a slow task stalls only itself.
func (r *Runner) Submit(name string, fn func(ctx context.Context)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("Warning: background task %s panicked: %v", name, rec)
			}
		}()
		fn(context.Background())
	}()
}

// Wait blocks until all submitted tasks have finished. Used on shutdown to
// drain in-flight matching runs.
func (r *Runner) Wait() {
	r.wg.Wait()
}
