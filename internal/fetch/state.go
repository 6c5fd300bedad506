// Package fetch models the lifecycle of one screen-level aggregate
// fetch: Idle -> Loading -> Success or Failure. Failure is always
// recoverable; re-invoking the fetch restarts from scratch. There is no
// partial-success state: if any required sub-request fails, the whole
// fetch fails.
package fetch

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Phase is the current position in a fetch lifecycle.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailure Phase = "failure"
)

// Status describes the recent health of a screen's fetches.
type Status struct {
	Phase       Phase     `json:"phase"`
	Reason      string    `json:"reason,omitempty"`
	LastAttempt time.Time `json:"last_attempt,omitempty"`
	LastSuccess time.Time `json:"last_success,omitempty"`
}

// IsReady reports whether at least one fetch has succeeded and the last
// one did not fail.
func (s Status) IsReady() bool {
	return s.Phase == PhaseSuccess && !s.LastSuccess.IsZero()
}

// Tracker guards one screen's fetch lifecycle. The zero value is Idle.
type Tracker struct {
	mu     sync.RWMutex
	status Status
	now    func() time.Time
}

// NewTracker constructs an Idle tracker.
func NewTracker() *Tracker {
	return &Tracker{status: Status{Phase: PhaseIdle}, now: time.Now}
}

// Begin marks the start of a fetch.
func (t *Tracker) Begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Phase = PhaseLoading
	t.status.Reason = ""
	t.status.LastAttempt = t.clock()
}

// Succeed records a completed fetch.
func (t *Tracker) Succeed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Phase = PhaseSuccess
	t.status.Reason = ""
	t.status.LastSuccess = t.clock()
}

// Fail records a failed fetch with its user-facing reason.
func (t *Tracker) Fail(reason string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Phase = PhaseFailure
	t.status.Reason = reason
}

// Reset returns to Idle, as after a cancelled fetch: nothing observable
// happened.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status.Phase = PhaseIdle
	t.status.Reason = ""
}

// Status returns a copy of the current status.
func (t *Tracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

func (t *Tracker) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

// Run executes fn as one tracked fetch. Cancellation resets to Idle and
// discards the partial result; any other error records a Failure.
func Run[T any](ctx context.Context, t *Tracker, reason func(error) string, fn func(context.Context) (T, error)) (T, error) {
	if t != nil {
		t.Begin()
	}
	result, err := fn(ctx)
	if t == nil {
		return result, err
	}
	switch {
	case err == nil:
		t.Succeed()
	case errors.Is(err, context.Canceled):
		t.Reset()
	default:
		t.Fail(reason(err))
	}
	return result, err
}
