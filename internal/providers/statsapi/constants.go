package statsapi

import "time"

const (
	defaultBaseURL         = "https://statsapi.mlb.com"
	defaultScheduleBaseURL = "https://bdfed.stitch.mlbinfra.com/bdfed/transform-mlb-scoreboard"
	defaultHTTPTimeout     = 10 * time.Second

	feedPathFormat       = "/api/v1.1/game/%s/feed/live"
	playByPlayPathFormat = "/api/v1/game/%s/playByPlay"
)

// gameTypes enumerated on every scoreboard request (exhibition through
// all-star), matching the upstream transform endpoint's contract.
var gameTypes = []string{"E", "S", "R", "F", "D", "L", "W", "A"}

// leagueIDs covers both the American and National leagues.
var leagueIDs = []string{"104", "103"}
