package ingest

import (
	"context"
	"log/slog"

	"mlb-scores-service/internal/domain"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/store"
)

// ArchiveWriter persists schedule snapshots for ops debugging. Optional.
type ArchiveWriter interface {
	WriteScheduleSnapshot(date string, snap domain.ScheduleSnapshot) error
}

// Transitions reports what changed during one ingestion pass. The lists are
// return values, not persistent state, so they cannot drift from the store.
type Transitions struct {
	// Started holds ids newly placed under tracking this pass.
	Started []string
	// Ended holds previously-tracked games that went final, with their last
	// known feed for rendering the end-of-game notification.
	Ended []EndedGame
	// Postponed holds previously-tracked ids removed as postponed; their
	// end-of-game notifications are suppressed.
	Postponed []string
}

// EndedGame pairs a finished game id with the feed snapshot captured while it
// was tracked.
type EndedGame struct {
	ID   string
	Feed *domain.GameFeed
}

// Ingester fetches the day's schedule, classifies each game, and applies the
// resulting state transitions to the game store.
type Ingester struct {
	schedule providers.ScheduleProvider
	feeds    providers.FeedProvider
	store    *store.GameStore
	archive  ArchiveWriter
	logger   *slog.Logger
}

// New constructs an Ingester. The archive writer may be nil.
func New(schedule providers.ScheduleProvider, feeds providers.FeedProvider, games *store.GameStore, archive ArchiveWriter, logger *slog.Logger) *Ingester {
	return &Ingester{
		schedule: schedule,
		feeds:    feeds,
		store:    games,
		archive:  archive,
		logger:   logger,
	}
}

// Refresh ingests the schedule for date. On fetch failure the store is left
// untouched and the error is returned for the caller to log; the next cycle
// retries naturally.
func (i *Ingester) Refresh(ctx context.Context, date string) (Transitions, error) {
	snap, err := i.schedule.FetchSchedule(ctx, date)
	if err != nil {
		return Transitions{}, err
	}

	if i.archive != nil {
		if archiveErr := i.archive.WriteScheduleSnapshot(date, snap); archiveErr != nil {
			logging.Warn(i.logger, "schedule archive write failed", "error", archiveErr)
		}
	}

	var result Transitions
	for _, game := range snap.Games {
		switch Classify(game.Flags) {
		case domain.ClassLive:
			result.Started = append(result.Started, i.trackLive(ctx, game.ID)...)
		case domain.ClassPostponed:
			if _, removed := i.store.Remove(game.ID); removed {
				result.Postponed = append(result.Postponed, game.ID)
				logging.Info(i.logger, "game postponed", slog.String(logging.FieldGameID, game.ID))
			}
		case domain.ClassDelayed:
			i.trackDelayed(game.ID)
		case domain.ClassFinal:
			if g, removed := i.store.Remove(game.ID); removed {
				result.Ended = append(result.Ended, EndedGame{ID: game.ID, Feed: g.Feed})
			}
		default:
			i.store.Remove(game.ID)
		}
	}

	i.removeStale(snap)
	return result, nil
}

// trackLive ensures a TrackedGame exists with polling enabled and refreshes its
// feed document. Returns the id as a one-element slice when newly created.
func (i *Ingester) trackLive(ctx context.Context, id string) []string {
	var started []string
	game, ok := i.store.Get(id)
	if !ok {
		game = &domain.TrackedGame{ID: id, Check: true}
		i.store.Upsert(game)
		started = []string{id}
		logging.Info(i.logger, "tracking game", slog.String(logging.FieldGameID, id))
	} else {
		i.store.SetCheck(id, true)
	}

	// Refresh, not just on creation; records and pitch counts move during play.
	feed, err := i.feeds.FetchFeed(ctx, id)
	if err != nil {
		logging.Warn(i.logger, "feed fetch failed", slog.String(logging.FieldGameID, id), "error", err)
		return started
	}
	game.Feed = feed
	return started
}

func (i *Ingester) trackDelayed(id string) {
	game, ok := i.store.Get(id)
	if !ok {
		game = &domain.TrackedGame{ID: id}
		i.store.Upsert(game)
	} else {
		i.store.SetCheck(id, false)
	}
	game.Delayed = true
}

// removeStale garbage-collects tracked ids that vanished from the schedule.
func (i *Ingester) removeStale(snap domain.ScheduleSnapshot) {
	current := snap.IDs()
	for _, id := range i.store.IDs() {
		if _, ok := current[id]; !ok {
			i.store.Remove(id)
			logging.Info(i.logger, "removed stale game", slog.String(logging.FieldGameID, id))
		}
	}
}
