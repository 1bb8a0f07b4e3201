package testutil

import "mlb-scores-service/internal/domain"

// LiveGame returns a schedule entry flagged live.
func LiveGame(id string) domain.ScheduleGame {
	return domain.ScheduleGame{ID: id, Flags: domain.GameFlags{Live: true}}
}

// FinalGame returns a schedule entry flagged final.
func FinalGame(id string) domain.ScheduleGame {
	return domain.ScheduleGame{ID: id, Flags: domain.GameFlags{Final: true}}
}

// PostponedGame returns a schedule entry flagged postponed.
func PostponedGame(id string) domain.ScheduleGame {
	return domain.ScheduleGame{ID: id, Flags: domain.GameFlags{Postponed: true}}
}

// DelayedGame returns a schedule entry flagged delayed.
func DelayedGame(id string) domain.ScheduleGame {
	return domain.ScheduleGame{ID: id, Flags: domain.GameFlags{Delayed: true}}
}

// Snapshot builds a schedule snapshot for the given date.
func Snapshot(date string, games ...domain.ScheduleGame) domain.ScheduleSnapshot {
	return domain.ScheduleSnapshot{Date: date, Games: games}
}

// SampleFeed returns a feed fixture with populated team metadata.
func SampleFeed() *domain.GameFeed {
	return &domain.GameFeed{
		Away:     domain.TeamInfo{Name: "New York Mets", Abbreviation: "NYM", Wins: 50, Losses: 40, Pct: ".556"},
		Home:     domain.TeamInfo{Name: "Atlanta Braves", Abbreviation: "ATL", Wins: 55, Losses: 35, Pct: ".611"},
		AwayRuns: 2,
		HomeRuns: 3,
		Inning:   9,
		Venue:    "Truist Park",
		AwayLineup: []string{
			"1. Brandon Nimmo (CF)",
			"2. Francisco Lindor (SS)",
		},
		HomeLineup: []string{
			"1. Ronald Acuna Jr. (RF)",
			"2. Ozzie Albies (2B)",
		},
		PitchCounts: map[int]int{660271: 42},
	}
}

// ScoringPlay returns a play fixture for a scoring event.
func ScoringPlay(event, eventType string) domain.Play {
	return domain.Play{
		Event:       event,
		EventType:   eventType,
		Description: "Pete Alonso homers (25) on a fly ball to left field.",
		AwayScore:   3,
		HomeScore:   3,
		HalfInning:  "top",
		Inning:      7,
		Batter:      domain.Person{ID: 624413, FullName: "Pete Alonso"},
		Pitcher:     domain.Person{ID: 660271, FullName: "Spencer Strider"},
	}
}

// PlaysWithScoring builds a play snapshot where every index in scoring refers
// to an entry of plays.
func PlaysWithScoring(scoring []int, plays ...domain.Play) *domain.PlaySnapshot {
	return &domain.PlaySnapshot{ScoringPlays: scoring, Plays: plays}
}
