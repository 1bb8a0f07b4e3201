package domain

// Classification buckets a schedule entry after flag precedence is applied.
type Classification string

const (
	ClassLive      Classification = "LIVE"
	ClassPostponed Classification = "POSTPONED"
	ClassDelayed   Classification = "DELAYED"
	ClassFinal     Classification = "FINAL"
	ClassScheduled Classification = "SCHEDULED"
)

// GameFlags mirrors the provider's per-game state booleans. A game may carry
// several at once; classification precedence resolves ties.
type GameFlags struct {
	Live        bool
	Warmup      bool
	Cancelled   bool
	Postponed   bool
	Suspended   bool
	Delayed     bool
	InGameDelay bool
	Final       bool
}

// AnyLive reports whether the game is live or warming up.
func (f GameFlags) AnyLive() bool { return f.Live || f.Warmup }

// AnyPostponed reports whether the game is cancelled, postponed, or suspended.
func (f GameFlags) AnyPostponed() bool { return f.Cancelled || f.Postponed || f.Suspended }

// AnyDelayed reports whether the game is in any delay state.
func (f GameFlags) AnyDelayed() bool { return f.Delayed || f.InGameDelay }

// ScheduleGame is one entry of the daily scoreboard document.
type ScheduleGame struct {
	ID    string
	Flags GameFlags
}

// ScheduleSnapshot is the day's schedule, replaced wholesale on each refresh.
type ScheduleSnapshot struct {
	Date  string
	Games []ScheduleGame
}

// IDs returns the set of game ids present in the snapshot.
func (s ScheduleSnapshot) IDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(s.Games))
	for _, g := range s.Games {
		ids[g.ID] = struct{}{}
	}
	return ids
}

// Person identifies a player referenced by a play.
type Person struct {
	ID       int
	FullName string
}

// HitData carries statcast detail attached to a batted ball.
type HitData struct {
	LaunchSpeed   float64
	LaunchAngle   float64
	TotalDistance float64
}

// Play is one normalized entry of a game's chronological play list.
type Play struct {
	Event       string
	EventType   string
	Description string
	AwayScore   int
	HomeScore   int
	HalfInning  string
	Inning      int
	Batter      Person
	Pitcher     Person
	Hit         *HitData
}

// PlaySnapshot is a normalized play-by-play document. ScoringPlays holds
// provider-assigned ordinals indexing into Plays.
type PlaySnapshot struct {
	ScoringPlays []int
	Plays        []Play
}

// TeamInfo summarizes one side of a game for rendering.
type TeamInfo struct {
	Name         string
	Abbreviation string
	Wins         int
	Losses       int
	Pct          string
}

// GameFeed is the richer feed/live document, fetched at game start and
// refreshed on every ingestion pass; used for rosters and metadata.
type GameFeed struct {
	Away        TeamInfo
	Home        TeamInfo
	AwayRuns    int
	HomeRuns    int
	Inning      int
	Venue       string
	AwayLineup  []string
	HomeLineup  []string
	PitchCounts map[int]int
}

// TrackedGame represents one game under active monitoring. Exclusively owned
// by the GameStore; Check gates play-by-play polling for the cycle.
type TrackedGame struct {
	ID      string
	Check   bool
	Delayed bool
	Last    *PlaySnapshot
	Current *PlaySnapshot
	Feed    *GameFeed
}

// ScoringEvent is a newly-occurred scoring play resolved against the current
// snapshot plus feed context for rendering.
type ScoringEvent struct {
	GameID     string
	Play       Play
	AwayAbbrev string
	HomeAbbrev string
	PitchCount int
}

// HomeRun reports whether the event is the notable home-run type.
func (e ScoringEvent) HomeRun() bool { return e.Play.EventType == "home_run" }
