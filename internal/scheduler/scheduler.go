package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
)

// Runner is the work the scheduler drives each cycle. RefreshSchedule owns
// date-rollover detection; PollGames runs one differ pass plus pending
// start/end dispatch.
type Runner interface {
	RefreshSchedule(ctx context.Context) error
	PollGames(ctx context.Context) error
	TrackedGames() int
}

// Scheduler runs the schedule-refresh and game-polling timers from a single
// goroutine, backing off while no games are tracked and snapping back to the
// minimum interval the moment games appear. No error from a cycle terminates
// the loop.
type Scheduler struct {
	runner  Runner
	logger  *slog.Logger
	metrics *metrics.Recorder

	mu        sync.Mutex
	intervals Intervals
	running   bool
	cancel    context.CancelFunc
	done      chan struct{}

	statusMu sync.RWMutex
	status   Status

	now func() time.Time
}

// Status describes the recent health of the scheduler loop.
type Status struct {
	Running             bool
	Interval            time.Duration
	ConsecutiveFailures int
	LastError           string
	LastCycle           time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop is running and not failing repeatedly.
func (s Status) IsReady() bool {
	if !s.Running || s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Scheduler with the given interval bounds.
func New(runner Runner, intervals Intervals, logger *slog.Logger, recorder *metrics.Recorder) *Scheduler {
	return &Scheduler{
		runner:    runner,
		logger:    logger,
		metrics:   recorder,
		intervals: intervals,
		now:       time.Now,
	}
}

// Start launches the loop. Re-arms at the minimum interval; a second Start
// while running is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.intervals = s.intervals.Reset()
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	done := s.done
	interval := s.intervals.Current
	s.mu.Unlock()

	s.setRunning(true, interval)
	logging.Info(s.logger, "scheduler started",
		slog.Int64(logging.FieldDurationMS, interval.Milliseconds()))

	go s.loop(loopCtx, done)
}

// Stop halts the loop and waits for the in-flight cycle to finish. Safe to
// call mid-cycle and when already stopped.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.halt()
	if done == nil {
		return nil
	}
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// Cancel halts the loop without waiting for the in-flight cycle; the cycle is
// allowed to complete but no new one is scheduled.
func (s *Scheduler) Cancel() {
	s.halt()
}

// Restart stops the loop and starts it again at the minimum interval.
func (s *Scheduler) Restart(ctx context.Context) error {
	if err := s.Stop(ctx); err != nil {
		return err
	}
	s.Start(ctx)
	return nil
}

func (s *Scheduler) halt() chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	s.running = false
	s.cancel()
	s.setRunning(false, s.intervals.Current)
	return s.done
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	// Warm the schedule on boot so tracked games exist before the first poll.
	s.runRefresh(ctx)

	dateTimer := time.NewTimer(s.currentInterval())
	gameTimer := time.NewTimer(s.currentInterval())
	defer dateTimer.Stop()
	defer gameTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info(s.logger, "scheduler stopped")
			return
		case <-dateTimer.C:
			s.runRefresh(ctx)
			dateTimer.Reset(s.currentInterval())
		case <-gameTimer.C:
			s.runPoll(ctx)
			s.adjustIntervals()
			gameTimer.Reset(s.currentInterval())
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	start := s.now()
	err := s.runner.RefreshSchedule(ctx)
	s.metrics.RecordCycle(metrics.CycleSchedule, time.Since(start), err)
	if err != nil {
		logging.Error(s.logger, "schedule refresh failed", err)
	}
	s.recordCycle(start, err)
}

func (s *Scheduler) runPoll(ctx context.Context) {
	start := s.now()
	err := s.runner.PollGames(ctx)
	s.metrics.RecordCycle(metrics.CycleGames, time.Since(start), err)
	if err != nil {
		logging.Error(s.logger, "game poll failed", err)
	}
	s.recordCycle(start, err)
}

// adjustIntervals applies the backoff transition after a poll cycle and keeps
// both timers on the shared interval.
func (s *Scheduler) adjustIntervals() {
	tracked := s.runner.TrackedGames()

	s.mu.Lock()
	old := s.intervals.Current
	s.intervals = s.intervals.Next(tracked)
	current := s.intervals.Current
	s.mu.Unlock()

	if current != old {
		if tracked == 0 {
			logging.Debug(s.logger, "no games, backing off timers",
				slog.Int64("old_ms", old.Milliseconds()),
				slog.Int64("new_ms", current.Milliseconds()),
			)
		} else {
			logging.Debug(s.logger, "games tracked, resetting timers",
				slog.Int64("new_ms", current.Milliseconds()),
			)
		}
		s.setInterval(current)
	}
}

func (s *Scheduler) currentInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intervals.Current
}

// Status returns a snapshot of the scheduler's recent health.
func (s *Scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

func (s *Scheduler) recordCycle(at time.Time, err error) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastCycle = at
	if err != nil {
		s.status.ConsecutiveFailures++
		s.status.LastError = err.Error()
		return
	}
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
}

func (s *Scheduler) setRunning(running bool, interval time.Duration) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.Running = running
	s.status.Interval = interval
}

func (s *Scheduler) setInterval(interval time.Duration) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.Interval = interval
}
