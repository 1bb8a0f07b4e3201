package scores

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mlb-scores-service/internal/diff"
	"mlb-scores-service/internal/ingest"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/notify"
	"mlb-scores-service/internal/store"
	"mlb-scores-service/internal/timeutil"
)

// Service ties ingestion, diffing, and dispatch into the two cycle bodies the
// scheduler drives. It owns the tracked date and the set of game starts
// awaiting a feed document.
type Service struct {
	ingester   *ingest.Ingester
	differ     *diff.Differ
	games      *store.GameStore
	dispatcher *notify.Dispatcher
	logger     *slog.Logger
	loc        *time.Location
	now        func() time.Time

	mu            sync.Mutex
	date          string
	pendingStarts map[string]struct{}
}

// NewService constructs the scores service. tz names the reference timezone
// whose calendar day drives schedule rollover.
func NewService(ingester *ingest.Ingester, differ *diff.Differ, games *store.GameStore, dispatcher *notify.Dispatcher, tz string, logger *slog.Logger) *Service {
	loc := timeutil.ResolveLocation(tz)
	now := time.Now
	return &Service{
		ingester:      ingester,
		differ:        differ,
		games:         games,
		dispatcher:    dispatcher,
		logger:        logger,
		loc:           loc,
		now:           now,
		date:          timeutil.DateIn(now(), loc),
		pendingStarts: make(map[string]struct{}),
	}
}

// RefreshSchedule re-ingests the day's schedule, rolling the tracked date
// forward when the reference-timezone day has changed. End-of-game
// notifications go out immediately; start notifications wait for a feed.
func (s *Service) RefreshSchedule(ctx context.Context) error {
	s.rolloverDate()

	transitions, err := s.ingester.Refresh(ctx, s.Date())
	if err != nil {
		return err
	}

	s.mu.Lock()
	for _, id := range transitions.Started {
		s.pendingStarts[id] = struct{}{}
	}
	s.mu.Unlock()

	for _, ended := range transitions.Ended {
		s.dispatcher.DispatchEnd(ctx, ended.ID, ended.Feed)
	}
	if len(transitions.Postponed) > 0 {
		logging.Info(s.logger, "suppressed end notifications for postponed games",
			slog.Int(logging.FieldCount, len(transitions.Postponed)))
	}
	return nil
}

// PollGames runs one differ pass: announce starts whose feed arrived, then
// dispatch any newly-detected scoring plays.
func (s *Service) PollGames(ctx context.Context) error {
	s.flushStarts(ctx)

	for _, ev := range s.differ.Run(ctx) {
		s.dispatcher.DispatchScore(ctx, ev)
	}
	return nil
}

// TrackedGames reports the tracked-game count for scheduler backoff.
func (s *Service) TrackedGames() int {
	return s.games.Len()
}

// Date returns the YYYY-MM-DD day currently being tracked.
func (s *Service) Date() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

func (s *Service) rolloverDate() {
	today := timeutil.DateIn(s.now(), s.loc)

	s.mu.Lock()
	defer s.mu.Unlock()
	if today == s.date {
		return
	}
	logging.Info(s.logger, "day change detected",
		slog.String(logging.FieldDate, today),
		slog.String("previous", s.date),
	)
	s.date = today
}

// flushStarts dispatches start notifications for pending games whose feed has
// arrived. Games that vanished from tracking are dropped silently.
func (s *Service) flushStarts(ctx context.Context) {
	s.mu.Lock()
	pending := make([]string, 0, len(s.pendingStarts))
	for id := range s.pendingStarts {
		pending = append(pending, id)
	}
	s.mu.Unlock()

	for _, id := range pending {
		game, ok := s.games.Get(id)
		if ok && game.Feed == nil {
			// Feed fetch failed at ingestion; try again next refresh.
			continue
		}
		if ok {
			s.dispatcher.DispatchStart(ctx, id, game.Feed)
		}
		s.mu.Lock()
		delete(s.pendingStarts, id)
		s.mu.Unlock()
	}
}
