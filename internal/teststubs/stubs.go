// Package teststubs provides shared test doubles for the provider, gateway,
// and archive seams.
package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"mlb-scores-service/internal/domain"
)

// StubProvider is a test double for providers.DataProvider. Each fetch kind
// can be configured independently; per-game maps take precedence over the
// shared error.
type StubProvider struct {
	Schedule    domain.ScheduleSnapshot
	ScheduleErr error

	Feeds   map[string]*domain.GameFeed
	FeedErr error

	Plays       map[string]*domain.PlaySnapshot
	PlayErrs    map[string]error
	PlayByPlays []string // fetch order, appended under mu

	ScheduleCalls atomic.Int32
	FeedCalls     atomic.Int32
	PlayCalls     atomic.Int32

	mu sync.Mutex
}

// FetchSchedule returns the configured schedule snapshot.
func (s *StubProvider) FetchSchedule(ctx context.Context, date string) (domain.ScheduleSnapshot, error) {
	_ = ctx
	_ = date
	s.ScheduleCalls.Add(1)
	if s.ScheduleErr != nil {
		return domain.ScheduleSnapshot{}, s.ScheduleErr
	}
	return s.Schedule, nil
}

// FetchFeed returns the configured feed for the game id.
func (s *StubProvider) FetchFeed(ctx context.Context, gameID string) (*domain.GameFeed, error) {
	_ = ctx
	s.FeedCalls.Add(1)
	if s.FeedErr != nil {
		return nil, s.FeedErr
	}
	if feed, ok := s.Feeds[gameID]; ok {
		return feed, nil
	}
	return &domain.GameFeed{}, nil
}

// FetchPlayByPlay returns the configured snapshot for the game id and records
// the fetch order.
func (s *StubProvider) FetchPlayByPlay(ctx context.Context, gameID string) (*domain.PlaySnapshot, error) {
	_ = ctx
	s.PlayCalls.Add(1)
	s.mu.Lock()
	s.PlayByPlays = append(s.PlayByPlays, gameID)
	s.mu.Unlock()
	if err, ok := s.PlayErrs[gameID]; ok {
		return nil, err
	}
	if snap, ok := s.Plays[gameID]; ok {
		return snap, nil
	}
	return &domain.PlaySnapshot{}, nil
}

// SentMessage records one delivery through the stub gateway.
type SentMessage struct {
	Channel string
	Message string
}

// StubGateway is a test double for gateway.Gateway that records sends and can
// fail selected channels.
type StubGateway struct {
	mu       sync.Mutex
	Sent     []SentMessage
	FailFor  map[string]error
	GateName string
}

// Send records the message, failing when the channel is configured to fail.
func (g *StubGateway) Send(ctx context.Context, channel, message string) error {
	_ = ctx
	g.mu.Lock()
	defer g.mu.Unlock()
	if err, ok := g.FailFor[channel]; ok {
		return err
	}
	g.Sent = append(g.Sent, SentMessage{Channel: channel, Message: message})
	return nil
}

// Name identifies the stub in logs and metrics.
func (g *StubGateway) Name() string {
	if g.GateName != "" {
		return g.GateName
	}
	return "stub"
}

// Messages returns a copy of the recorded sends.
func (g *StubGateway) Messages() []SentMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]SentMessage, len(g.Sent))
	copy(out, g.Sent)
	return out
}

// StubArchive is a test double for ingest.ArchiveWriter.
type StubArchive struct {
	mu      sync.Mutex
	Written map[string]domain.ScheduleSnapshot
	Err     error
}

// WriteScheduleSnapshot records the snapshot keyed by date.
func (a *StubArchive) WriteScheduleSnapshot(date string, snap domain.ScheduleSnapshot) error {
	if a.Err != nil {
		return a.Err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Written == nil {
		a.Written = make(map[string]domain.ScheduleSnapshot)
	}
	a.Written[date] = snap
	return nil
}
