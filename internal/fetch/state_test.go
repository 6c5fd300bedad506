package fetch

import (
	"context"
	"errors"
	"testing"
)

func TestTrackerLifecycle(t *testing.T) {
	tr := NewTracker()
	if got := tr.Status().Phase; got != PhaseIdle {
		t.Fatalf("expected idle, got %s", got)
	}

	tr.Begin()
	if got := tr.Status().Phase; got != PhaseLoading {
		t.Fatalf("expected loading, got %s", got)
	}

	tr.Fail("Check your connection and try again.")
	st := tr.Status()
	if st.Phase != PhaseFailure || st.Reason == "" {
		t.Fatalf("expected failure with reason, got %+v", st)
	}
	if st.IsReady() {
		t.Fatal("failure must not report ready")
	}

	// Failure is recoverable: a new fetch restarts cleanly.
	tr.Begin()
	if st := tr.Status(); st.Phase != PhaseLoading || st.Reason != "" {
		t.Fatalf("expected clean loading state, got %+v", st)
	}
	tr.Succeed()
	if st := tr.Status(); !st.IsReady() {
		t.Fatalf("expected ready after success, got %+v", st)
	}
}

func TestRunRecordsSuccess(t *testing.T) {
	tr := NewTracker()
	got, err := Run(context.Background(), tr, func(error) string { return "nope" }, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	if err != nil || got != 7 {
		t.Fatalf("unexpected result %d err=%v", got, err)
	}
	if st := tr.Status(); st.Phase != PhaseSuccess {
		t.Fatalf("expected success, got %+v", st)
	}
}

func TestRunRecordsFailureReason(t *testing.T) {
	tr := NewTracker()
	boom := errors.New("boom")
	_, err := Run(context.Background(), tr, func(error) string { return "friendly reason" }, func(ctx context.Context) (int, error) {
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error back, got %v", err)
	}
	st := tr.Status()
	if st.Phase != PhaseFailure || st.Reason != "friendly reason" {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestRunCancellationResetsToIdle(t *testing.T) {
	tr := NewTracker()
	ctx, cancel := context.WithCancel(context.Background())

	_, err := Run(ctx, tr, func(error) string { return "x" }, func(ctx context.Context) (int, error) {
		cancel()
		return 0, ctx.Err()
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
	if st := tr.Status(); st.Phase != PhaseIdle || st.Reason != "" {
		t.Fatalf("expected idle after cancellation, got %+v", st)
	}
}

func TestAsAggregateError(t *testing.T) {
	inner := errors.New("events fetch blew up")
	err := &AggregateError{Screen: "dashboard", Err: inner}

	ae, ok := AsAggregateError(err)
	if !ok || ae.Screen != "dashboard" {
		t.Fatalf("expected aggregate error, got %v ok=%v", ae, ok)
	}
	if !errors.Is(err, inner) {
		t.Fatal("expected unwrap to reach inner error")
	}
}
