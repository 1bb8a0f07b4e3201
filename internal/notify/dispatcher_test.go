package notify

import (
	"context"
	"errors"
	"testing"

	"mlb-scores-service/internal/domain"
	"mlb-scores-service/internal/subscriptions"
	"mlb-scores-service/internal/teststubs"
	"mlb-scores-service/internal/testutil"
)

type failingSubs struct{}

func (failingSubs) Add(context.Context, string) (bool, error)    { return false, errors.New("down") }
func (failingSubs) Remove(context.Context, string) (bool, error) { return false, errors.New("down") }
func (failingSubs) List(context.Context) ([]string, error)       { return nil, errors.New("down") }

func newDispatcher(gw *teststubs.StubGateway, subs subscriptions.Store) *Dispatcher {
	logger, _ := testutil.NewBufferLogger()
	return NewDispatcher(gw, subs, NewDedupeSet(nil), logger, nil)
}

func TestDispatchScoreFansOutToAllChannels(t *testing.T) {
	gw := &teststubs.StubGateway{}
	d := newDispatcher(gw, subscriptions.NewMemoryStore("alpha", "beta"))

	d.DispatchScore(context.Background(), domain.ScoringEvent{
		GameID: "g1", Play: testutil.ScoringPlay("Single", "single"),
	})

	sent := gw.Messages()
	if len(sent) != 2 {
		t.Fatalf("expected two deliveries, got %d", len(sent))
	}
	if sent[0].Channel != "alpha" || sent[1].Channel != "beta" {
		t.Fatalf("expected deliveries to both channels, got %v", sent)
	}
	if sent[0].Message != sent[1].Message {
		t.Fatalf("expected identical message per channel")
	}
}

func TestDispatchScoreSuppressesDuplicates(t *testing.T) {
	gw := &teststubs.StubGateway{}
	d := newDispatcher(gw, subscriptions.NewMemoryStore("alpha"))
	ev := domain.ScoringEvent{GameID: "g1", Play: testutil.ScoringPlay("Single", "single")}

	d.DispatchScore(context.Background(), ev)
	d.DispatchScore(context.Background(), ev)

	if got := len(gw.Messages()); got != 1 {
		t.Fatalf("expected duplicate suppressed, got %d deliveries", got)
	}
}

func TestDispatchContinuesPastChannelFailure(t *testing.T) {
	gw := &teststubs.StubGateway{FailFor: map[string]error{"alpha": errors.New("webhook 500")}}
	d := newDispatcher(gw, subscriptions.NewMemoryStore("alpha", "beta"))
	ev := domain.ScoringEvent{GameID: "g1", Play: testutil.ScoringPlay("Single", "single")}

	d.DispatchScore(context.Background(), ev)

	sent := gw.Messages()
	if len(sent) != 1 || sent[0].Channel != "beta" {
		t.Fatalf("expected delivery to the healthy channel, got %v", sent)
	}

	// Partial failure still marks the event dispatched; no retry storm.
	d.DispatchScore(context.Background(), ev)
	if got := len(gw.Messages()); got != 1 {
		t.Fatalf("expected no re-delivery after partial failure, got %d", got)
	}
}

func TestDispatchListFailureDoesNotRecordHash(t *testing.T) {
	gw := &teststubs.StubGateway{}
	dupes := NewDedupeSet(nil)
	logger, _ := testutil.NewBufferLogger()
	d := NewDispatcher(gw, failingSubs{}, dupes, logger, nil)

	d.DispatchScore(context.Background(), domain.ScoringEvent{
		GameID: "g1", Play: testutil.ScoringPlay("Single", "single"),
	})

	if dupes.Len() != 0 {
		t.Fatalf("expected no dedupe entry when channels could not be listed")
	}
}

func TestDispatchStartAndEndRequireFeed(t *testing.T) {
	gw := &teststubs.StubGateway{}
	d := newDispatcher(gw, subscriptions.NewMemoryStore("alpha"))

	d.DispatchStart(context.Background(), "g1", nil)
	d.DispatchEnd(context.Background(), "g1", nil)
	if got := len(gw.Messages()); got != 0 {
		t.Fatalf("expected nil feed to suppress dispatch, got %d", got)
	}

	d.DispatchStart(context.Background(), "g1", testutil.SampleFeed())
	d.DispatchEnd(context.Background(), "g1", testutil.SampleFeed())
	if got := len(gw.Messages()); got != 2 {
		t.Fatalf("expected start and end delivered, got %d", got)
	}
}

func TestDispatchSameMessageDifferentGameIsNotDuplicate(t *testing.T) {
	gw := &teststubs.StubGateway{}
	d := newDispatcher(gw, subscriptions.NewMemoryStore("alpha"))
	play := testutil.ScoringPlay("Single", "single")

	d.DispatchScore(context.Background(), domain.ScoringEvent{GameID: "g1", Play: play})
	d.DispatchScore(context.Background(), domain.ScoringEvent{GameID: "g2", Play: play})

	if got := len(gw.Messages()); got != 2 {
		t.Fatalf("expected per-game dedupe keys, got %d deliveries", got)
	}
}
