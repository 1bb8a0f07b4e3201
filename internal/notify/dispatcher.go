package notify

import (
	"context"
	"log/slog"

	"mlb-scores-service/internal/domain"
	"mlb-scores-service/internal/gateway"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/metrics"
	"mlb-scores-service/internal/subscriptions"
)

// Dispatcher renders events into messages and fans them out to every
// subscribed channel, suppressing duplicates by (game id, rendered message).
type Dispatcher struct {
	gateway gateway.Gateway
	subs    subscriptions.Store
	dupes   *DedupeSet
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewDispatcher constructs a Dispatcher. A nil dupes gets a fresh DedupeSet.
func NewDispatcher(gw gateway.Gateway, subs subscriptions.Store, dupes *DedupeSet, logger *slog.Logger, recorder *metrics.Recorder) *Dispatcher {
	if dupes == nil {
		dupes = NewDedupeSet(nil)
	}
	return &Dispatcher{
		gateway: gw,
		subs:    subs,
		dupes:   dupes,
		logger:  logger,
		metrics: recorder,
	}
}

// DispatchStart announces a game start.
func (d *Dispatcher) DispatchStart(ctx context.Context, gameID string, feed *domain.GameFeed) {
	if feed == nil {
		return
	}
	d.deliver(ctx, gameID, RenderStart(feed))
}

// DispatchEnd announces a final score.
func (d *Dispatcher) DispatchEnd(ctx context.Context, gameID string, feed *domain.GameFeed) {
	if feed == nil {
		return
	}
	d.deliver(ctx, gameID, RenderEnd(feed))
}

// DispatchScore announces a scoring play.
func (d *Dispatcher) DispatchScore(ctx context.Context, ev domain.ScoringEvent) {
	d.deliver(ctx, ev.GameID, RenderScore(ev))
}

// deliver sends message to every subscribed channel, best-effort: one
// channel's failure never blocks the rest. The dedupe hash is recorded once
// delivery was attempted across all channels, even on partial failure, so a
// flaky channel cannot trigger a re-delivery storm.
func (d *Dispatcher) deliver(ctx context.Context, gameID, message string) {
	key := gameID + message
	if d.dupes.Seen(key) {
		d.metrics.RecordSuppressed()
		return
	}

	channels, err := d.subs.List(ctx)
	if err != nil {
		logging.Error(d.logger, "subscription list failed", err)
		return
	}

	for _, channel := range channels {
		sendErr := d.gateway.Send(ctx, channel, message)
		d.metrics.RecordDispatch(d.gateway.Name(), sendErr)
		if sendErr != nil {
			logging.Error(d.logger, "notification send failed", sendErr,
				slog.String(logging.FieldGameID, gameID),
				slog.String(logging.FieldChannel, channel),
			)
		}
	}

	d.dupes.Record(key)
	logging.Debug(d.logger, "notification dispatched",
		slog.String(logging.FieldGameID, gameID),
		slog.Int(logging.FieldCount, len(channels)),
	)
}
