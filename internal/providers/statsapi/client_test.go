package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mlb-scores-service/internal/providers"
)

const scoreboardFixture = `{
  "dates": [
    {
      "games": [
        {"gamePk": 745000, "gameUtils": {"isLive": true}},
        {"gamePk": 745001, "gameUtils": {"isFinal": true}},
        {"gamePk": 745002, "gameUtils": {"isPostponed": true, "isDelayed": true}}
      ]
    }
  ]
}`

const playByPlayFixture = `{
  "scoringPlays": [2],
  "allPlays": [
    {"result": {"event": "Groundout", "eventType": "field_out", "description": "grounds out."}},
    {"result": {"event": "Single", "eventType": "single", "description": "singles."}},
    {
      "result": {"event": "Home Run", "eventType": "home_run", "description": "homers (25).", "awayScore": 3, "homeScore": 2},
      "about": {"halfInning": "top", "inning": 7},
      "matchup": {
        "batter": {"id": 624413, "fullName": "Pete Alonso"},
        "pitcher": {"id": 660271, "fullName": "Spencer Strider"}
      },
      "playEvents": [
        {},
        {"hitData": {"launchSpeed": 108.3, "launchAngle": 27, "totalDistance": 441}}
      ]
    }
  ]
}`

const feedFixture = `{
  "gameData": {
    "teams": {
      "away": {"teamName": "Mets", "abbreviation": "NYM", "record": {"wins": 50, "losses": 40, "winningPercentage": ".556"}},
      "home": {"teamName": "Braves", "abbreviation": "ATL", "record": {"wins": 55, "losses": 35}}
    },
    "venue": {"name": "Truist Park", "location": {"city": "Atlanta", "stateAbbrev": "GA"}},
    "probablePitchers": {"home": {"id": 660271, "fullName": "Spencer Strider"}}
  },
  "liveData": {
    "linescore": {"currentInning": 7, "teams": {"away": {"runs": 3}, "home": {"runs": 2}}},
    "boxscore": {
      "teams": {
        "away": {
          "battingOrder": [624413, 596019],
          "players": {
            "ID624413": {"person": {"id": 624413, "fullName": "Pete Alonso"}, "position": {"abbreviation": "1B"}},
            "ID596019": {"person": {"id": 596019, "fullName": "Francisco Lindor"}, "position": {"abbreviation": "SS"}}
          }
        },
        "home": {
          "battingOrder": [660670],
          "players": {
            "ID660670": {"person": {"id": 660670, "fullName": "Ronald Acuna Jr."}, "position": {"abbreviation": "RF"}},
            "ID660271": {
              "person": {"id": 660271, "fullName": "Spencer Strider"},
              "position": {"abbreviation": "P"},
              "seasonStats": {"pitching": {"era": "3.42"}},
              "stats": {"pitching": {"numberOfPitches": 42}}
            }
          }
        }
      }
    }
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{
		BaseURL:         srv.URL,
		ScheduleBaseURL: srv.URL + "/bdfed/transform-mlb-scoreboard",
		HTTPClient:      srv.Client(),
	})
	return client, srv
}

func TestFetchScheduleMapsFlags(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(scoreboardFixture))
	})

	snap, err := client.FetchSchedule(context.Background(), "2024-07-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Date != "2024-07-04" || len(snap.Games) != 3 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Games[0].ID != "745000" || !snap.Games[0].Flags.Live {
		t.Fatalf("expected live game mapped, got %+v", snap.Games[0])
	}
	if !snap.Games[1].Flags.Final {
		t.Fatalf("expected final flag mapped, got %+v", snap.Games[1])
	}
	if !snap.Games[2].Flags.Postponed || !snap.Games[2].Flags.Delayed {
		t.Fatalf("expected combined flags preserved, got %+v", snap.Games[2])
	}

	if got := gotQuery["startDate"]; len(got) != 1 || got[0] != "2024-07-04" {
		t.Fatalf("expected startDate query, got %v", gotQuery)
	}
	if got := gotQuery["gameType"]; len(got) != 8 {
		t.Fatalf("expected all game types requested, got %v", got)
	}
	if got := gotQuery["leagueId"]; len(got) != 2 {
		t.Fatalf("expected both league ids requested, got %v", got)
	}
}

func TestFetchScheduleEmptyDates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"dates": []}`))
	})

	snap, err := client.FetchSchedule(context.Background(), "2024-12-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Games) != 0 {
		t.Fatalf("expected no games on an off day, got %v", snap.Games)
	}
}

func TestFetchFeedMapsDocument(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(feedFixture))
	})

	feed, err := client.FetchFeed(context.Background(), "745000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/v1.1/game/745000/feed/live" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if feed.Away.Abbreviation != "NYM" || feed.Away.Pct != ".556" {
		t.Fatalf("unexpected away team: %+v", feed.Away)
	}
	if feed.Home.Pct != ".000" {
		t.Fatalf("expected missing percentage to default, got %q", feed.Home.Pct)
	}
	if feed.AwayRuns != 3 || feed.HomeRuns != 2 || feed.Inning != 7 {
		t.Fatalf("unexpected linescore: %+v", feed)
	}
	if feed.Venue != "Truist Park, Atlanta GA" {
		t.Fatalf("unexpected venue %q", feed.Venue)
	}
	wantAway := []string{"1. Pete Alonso (1B)", "2. Francisco Lindor (SS)"}
	if len(feed.AwayLineup) != 2 || feed.AwayLineup[0] != wantAway[0] || feed.AwayLineup[1] != wantAway[1] {
		t.Fatalf("unexpected away lineup %v", feed.AwayLineup)
	}
	wantHome := []string{"1. Ronald Acuna Jr. (RF)", "SP: Spencer Strider (3.42)"}
	if len(feed.HomeLineup) != 2 || feed.HomeLineup[1] != wantHome[1] {
		t.Fatalf("unexpected home lineup %v", feed.HomeLineup)
	}
	if feed.PitchCounts[660271] != 42 {
		t.Fatalf("expected pitch count mapped, got %v", feed.PitchCounts)
	}
}

func TestFetchPlayByPlayMapsDocument(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(playByPlayFixture))
	})

	snap, err := client.FetchPlayByPlay(context.Background(), "745000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/v1/game/745000/playByPlay" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if len(snap.ScoringPlays) != 1 || snap.ScoringPlays[0] != 2 {
		t.Fatalf("unexpected scoring plays %v", snap.ScoringPlays)
	}
	if len(snap.Plays) != 3 {
		t.Fatalf("expected three plays, got %d", len(snap.Plays))
	}

	homer := snap.Plays[2]
	if homer.EventType != "home_run" || homer.Batter.FullName != "Pete Alonso" {
		t.Fatalf("unexpected play %+v", homer)
	}
	if homer.Hit == nil || homer.Hit.TotalDistance != 441 {
		t.Fatalf("expected hit data from the first carrying event, got %+v", homer.Hit)
	}
	if snap.Plays[0].Hit != nil {
		t.Fatalf("expected no hit data for a groundout")
	}
}

func TestGetJSONWrapsErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchSchedule(context.Background(), "2024-07-04")
	fetchErr, ok := providers.AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", fetchErr.StatusCode)
	}
}

func TestGetJSONMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.FetchPlayByPlay(context.Background(), "745000")
	if _, ok := providers.AsFetchError(err); !ok {
		t.Fatalf("expected FetchError for malformed body, got %v", err)
	}
}

func TestNormalizeBaseURLTrimsSlash(t *testing.T) {
	if got := normalizeBaseURL("https://example.com/", "fallback"); got != "https://example.com" {
		t.Fatalf("expected trailing slash trimmed, got %s", got)
	}
	if got := normalizeBaseURL("", "https://fallback"); got != "https://fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}
