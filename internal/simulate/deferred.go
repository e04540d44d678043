// Package simulate models the storefront's pretend network latency. Signup,
// login and checkout complete only after a delay; a completion is an
// explicit task that can be cancelled when the user navigates away, instead
// of a fire-and-forget timer whose outcome is lost.
package simulate

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Task is one pending deferred completion.
type Task struct {
	ID     string
	cancel context.CancelFunc
	done   chan bool
}

// Cancel abandons the pending completion if it has not run yet.
func (t *Task) Cancel() {
	t.cancel()
}

// Wait blocks until the task settles and reports whether the completion ran.
func (t *Task) Wait() bool {
	return <-t.done
}

// Scheduler issues deferred completions with a fixed delay.
type Scheduler struct {
	delay time.Duration
}

func NewScheduler(delay time.Duration) *Scheduler {
	return &Scheduler{delay: delay}
}

// Delay returns the configured completion delay.
func (s *Scheduler) Delay() time.Duration {
	return s.delay
}

// Schedule runs fn after the configured delay unless ctx is cancelled or
// Cancel is called first. The returned task settles exactly once.
func (s *Scheduler) Schedule(ctx context.Context, fn func()) *Task {
	ctx, cancel := context.WithCancel(ctx)
	task := &Task{
		ID:     uuid.NewString(),
		cancel: cancel,
		done:   make(chan bool, 1),
	}

	timer := time.NewTimer(s.delay)
	go func() {
		defer cancel()
		defer timer.Stop()

		select {
		case <-timer.C:
			fn()
			task.done <- true
		case <-ctx.Done():
			task.done <- false
		}
	}()

	return task
}
