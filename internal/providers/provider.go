package providers

import (
	"context"

	"mlb-scores-service/internal/domain"
)

// ScheduleProvider fetches the daily scoreboard document. The date parameter
// is a YYYY-MM-DD string for the reference-timezone calendar day.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) (domain.ScheduleSnapshot, error)
}

// FeedProvider fetches the richer feed/live document for one game.
type FeedProvider interface {
	FetchFeed(ctx context.Context, gameID string) (*domain.GameFeed, error)
}

// PlayByPlayProvider fetches the play-by-play document for one game.
type PlayByPlayProvider interface {
	FetchPlayByPlay(ctx context.Context, gameID string) (*domain.PlaySnapshot, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScheduleProvider
	FeedProvider
	PlayByPlayProvider
}
