package diff

import (
	"context"
	"log/slog"

	"mlb-scores-service/internal/domain"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/providers"
	"mlb-scores-service/internal/store"
)

// Differ fetches play-by-play for actively tracked games and extracts
// newly-occurred scoring plays by diffing against the last-seen snapshot.
type Differ struct {
	plays  providers.PlayByPlayProvider
	store  *store.GameStore
	logger *slog.Logger
}

// New constructs a Differ.
func New(plays providers.PlayByPlayProvider, games *store.GameStore, logger *slog.Logger) *Differ {
	return &Differ{
		plays:  plays,
		store:  games,
		logger: logger,
	}
}

// Run performs one pass over all checked games and returns the scoring events
// detected this cycle. A fetch failure skips that game only; per-game the
// order is fetch, diff, snapshot swap, never interleaved with another pass
// over the same game.
func (d *Differ) Run(ctx context.Context) []domain.ScoringEvent {
	var events []domain.ScoringEvent
	for _, id := range d.store.AllChecked() {
		// The schedule may flip the flag mid-cycle (e.g. newly postponed);
		// honor it at fetch time, not once per pass.
		if !d.store.Checked(id) {
			continue
		}
		events = append(events, d.diffGame(ctx, id)...)
	}
	return events
}

func (d *Differ) diffGame(ctx context.Context, id string) []domain.ScoringEvent {
	game, ok := d.store.Get(id)
	if !ok {
		return nil
	}

	logging.Debug(d.logger, "fetching play-by-play", slog.String(logging.FieldGameID, id))
	current, err := d.plays.FetchPlayByPlay(ctx, id)
	if err != nil {
		logging.Warn(d.logger, "play-by-play fetch failed", slog.String(logging.FieldGameID, id), "error", err)
		return nil
	}
	game.Current = current

	// First successful fetch seeds the baseline. Plays that occurred before
	// tracking began are history, not news.
	if game.Last == nil {
		game.Last = current
		return nil
	}

	newIndices := symmetricDiff(game.Last.ScoringPlays, current.ScoringPlays)
	events := make([]domain.ScoringEvent, 0, len(newIndices))
	for _, idx := range newIndices {
		if idx < 0 || idx >= len(current.Plays) {
			logging.Warn(d.logger, "scoring play index out of range",
				slog.String(logging.FieldGameID, id),
				slog.Int("index", idx),
			)
			continue
		}
		events = append(events, buildEvent(game, current.Plays[idx]))
	}

	// Swap only after a comparison ran, so a failed or seeding cycle never
	// clobbers the baseline.
	game.Last = current
	return events
}

// symmetricDiff returns indices present in exactly one of the two lists. The
// scoring-play list grows monotonically in the common case, but the upstream
// feed occasionally re-orders or corrects entries.
func symmetricDiff(old, current []int) []int {
	counts := make(map[int]int, len(old)+len(current))
	for _, idx := range old {
		counts[idx]++
	}
	for _, idx := range current {
		counts[idx]++
	}

	var out []int
	for _, idx := range append(append([]int(nil), old...), current...) {
		if counts[idx] == 1 {
			out = append(out, idx)
		}
	}
	return out
}

func buildEvent(game *domain.TrackedGame, play domain.Play) domain.ScoringEvent {
	event := domain.ScoringEvent{
		GameID: game.ID,
		Play:   play,
	}
	if game.Feed != nil {
		event.AwayAbbrev = game.Feed.Away.Abbreviation
		event.HomeAbbrev = game.Feed.Home.Abbreviation
		event.PitchCount = game.Feed.PitchCounts[play.Pitcher.ID]
	}
	return event
}
