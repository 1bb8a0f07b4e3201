package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mlb-scores-service/internal/testutil"
)

type fakeRunner struct {
	mu         sync.Mutex
	refreshes  int
	polls      int
	tracked    int
	refreshErr error
	pollErr    error
	refreshed  chan struct{}
	polled     chan struct{}
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		refreshed: make(chan struct{}, 16),
		polled:    make(chan struct{}, 16),
	}
}

func (r *fakeRunner) RefreshSchedule(context.Context) error {
	r.mu.Lock()
	r.refreshes++
	err := r.refreshErr
	r.mu.Unlock()
	select {
	case r.refreshed <- struct{}{}:
	default:
	}
	return err
}

func (r *fakeRunner) PollGames(context.Context) error {
	r.mu.Lock()
	r.polls++
	err := r.pollErr
	r.mu.Unlock()
	select {
	case r.polled <- struct{}{}:
	default:
	}
	return err
}

func (r *fakeRunner) TrackedGames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracked
}

func (r *fakeRunner) setTracked(n int) {
	r.mu.Lock()
	r.tracked = n
	r.mu.Unlock()
}

func waitSignal(t *testing.T, ch chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func newTestScheduler(runner Runner) *Scheduler {
	logger, _ := testutil.NewBufferLogger()
	intervals := NewIntervals(5*time.Millisecond, 50*time.Millisecond, 5*time.Millisecond)
	return New(runner, intervals, logger, nil)
}

func TestSchedulerWarmsScheduleOnStart(t *testing.T) {
	runner := newFakeRunner()
	s := newTestScheduler(runner)

	s.Start(context.Background())
	defer s.Stop(context.Background())

	waitSignal(t, runner.refreshed, "initial refresh")
	waitSignal(t, runner.polled, "first poll")
}

func TestSchedulerStartIsIdempotent(t *testing.T) {
	runner := newFakeRunner()
	s := newTestScheduler(runner)

	s.Start(context.Background())
	s.Start(context.Background())
	defer s.Stop(context.Background())

	if !s.Status().Running {
		t.Fatalf("expected scheduler running")
	}
}

func TestSchedulerStopWaitsAndIsIdempotent(t *testing.T) {
	runner := newFakeRunner()
	s := newTestScheduler(runner)

	s.Start(context.Background())
	waitSignal(t, runner.refreshed, "initial refresh")

	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("expected second stop to be a no-op, got %v", err)
	}
	if s.Status().Running {
		t.Fatalf("expected scheduler stopped")
	}
}

func TestSchedulerCancelDoesNotWait(t *testing.T) {
	runner := newFakeRunner()
	s := newTestScheduler(runner)

	s.Start(context.Background())
	waitSignal(t, runner.refreshed, "initial refresh")
	s.Cancel()

	if s.Status().Running {
		t.Fatalf("expected scheduler not running after cancel")
	}
	// The loop still winds down cleanly.
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected stop error after cancel: %v", err)
	}
}

func TestSchedulerRestartRunsAgain(t *testing.T) {
	runner := newFakeRunner()
	s := newTestScheduler(runner)

	s.Start(context.Background())
	waitSignal(t, runner.refreshed, "initial refresh")

	if err := s.Restart(context.Background()); err != nil {
		t.Fatalf("unexpected restart error: %v", err)
	}
	defer s.Stop(context.Background())

	waitSignal(t, runner.refreshed, "refresh after restart")
	if !s.Status().Running {
		t.Fatalf("expected scheduler running after restart")
	}
}

func TestSchedulerBacksOffWhileIdle(t *testing.T) {
	runner := newFakeRunner()
	s := newTestScheduler(runner)

	s.Start(context.Background())
	defer s.Stop(context.Background())

	waitSignal(t, runner.polled, "first poll")
	waitSignal(t, runner.polled, "second poll")

	deadline := time.After(2 * time.Second)
	for s.Status().Interval <= 5*time.Millisecond {
		select {
		case <-deadline:
			t.Fatalf("expected interval to grow past the minimum, got %v", s.Status().Interval)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSchedulerRecordsFailures(t *testing.T) {
	runner := newFakeRunner()
	runner.refreshErr = errors.New("upstream down")
	runner.pollErr = errors.New("upstream down")
	s := newTestScheduler(runner)

	s.Start(context.Background())
	defer s.Stop(context.Background())

	deadline := time.After(2 * time.Second)
	for s.Status().ConsecutiveFailures < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected failures to accumulate, got %+v", s.Status())
		case <-time.After(5 * time.Millisecond):
		}
	}

	st := s.Status()
	if st.LastError != "upstream down" {
		t.Fatalf("expected last error recorded, got %q", st.LastError)
	}
	if st.IsReady() {
		t.Fatalf("expected failing scheduler to be unready")
	}
}

func TestStatusIsReady(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		status Status
		want   bool
	}{
		{"running and healthy", Status{Running: true, LastSuccess: now}, true},
		{"not running", Status{LastSuccess: now}, false},
		{"no success yet", Status{Running: true}, false},
		{"two failures still ready", Status{Running: true, LastSuccess: now, ConsecutiveFailures: 2}, true},
		{"three failures unready", Status{Running: true, LastSuccess: now, ConsecutiveFailures: 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.status.IsReady(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
