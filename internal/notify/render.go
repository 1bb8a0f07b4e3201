package notify

import (
	"fmt"
	"strings"

	"mlb-scores-service/internal/domain"
	"mlb-scores-service/internal/timeutil"
)

const (
	topArrow    = "⬆"
	bottomArrow = "⬇"
)

func halfArrow(half string) string {
	switch half {
	case "top":
		return topArrow
	case "bottom":
		return bottomArrow
	}
	return ""
}

func recordLine(t domain.TeamInfo) string {
	return fmt.Sprintf("%d-%d %s", t.Wins, t.Losses, t.Pct)
}

// RenderStart formats a game-start notification with records, venue, and
// lineups when the boxscore has them.
func RenderStart(feed *domain.GameFeed) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) @ %s (%s) is starting soon",
		feed.Away.Name, recordLine(feed.Away),
		feed.Home.Name, recordLine(feed.Home),
	)
	if feed.Venue != "" {
		fmt.Fprintf(&b, "\n%s", feed.Venue)
	}
	if len(feed.AwayLineup) > 0 {
		fmt.Fprintf(&b, "\n%s Lineup: %s", feed.Away.Abbreviation, strings.Join(feed.AwayLineup, " "))
	}
	if len(feed.HomeLineup) > 0 {
		fmt.Fprintf(&b, "\n%s Lineup: %s", feed.Home.Abbreviation, strings.Join(feed.HomeLineup, " "))
	}
	return b.String()
}

// RenderEnd formats a final-score notification with winner emphasis and the
// inning count.
func RenderEnd(feed *domain.GameFeed) string {
	away := feed.Away.Name
	home := feed.Home.Name
	awayScore := fmt.Sprintf("%d", feed.AwayRuns)
	homeScore := fmt.Sprintf("%d", feed.HomeRuns)
	if feed.AwayRuns > feed.HomeRuns {
		away = "**" + away
		awayScore = awayScore + "**"
	} else if feed.HomeRuns > feed.AwayRuns {
		home = "**" + home
		homeScore = homeScore + "**"
	}
	return fmt.Sprintf("%s %s @ %s %s is final! %d/F", away, awayScore, home, homeScore, feed.Inning)
}

// RenderScore formats a scoring-play notification: score line with the
// batting side emphasized, half-inning marker, play description, and statcast
// detail on home runs.
func RenderScore(ev domain.ScoringEvent) string {
	play := ev.Play

	event := ""
	if play.Event != "" {
		event = strings.ToUpper(play.Event) + " · "
	}

	hit := ""
	if ev.HomeRun() && play.Hit != nil {
		hit = fmt.Sprintf(" **%.1f mph** · ∡%.0f° · **%.0f ft**",
			play.Hit.LaunchSpeed, play.Hit.LaunchAngle, play.Hit.TotalDistance)
	}

	detail := fmt.Sprintf("%s %s - %s%s%s",
		halfArrow(play.HalfInning),
		timeutil.Ordinal(play.Inning),
		event,
		play.Description,
		hit,
	)

	if ev.AwayAbbrev == "" || ev.HomeAbbrev == "" {
		return detail
	}

	awayTag, homeTag := "**", ""
	if play.HalfInning == "bottom" {
		awayTag, homeTag = "", "**"
	}
	line := fmt.Sprintf("%s%s %d%s @ %s%s %d%s - %s",
		awayTag, ev.AwayAbbrev, play.AwayScore, awayTag,
		homeTag, ev.HomeAbbrev, play.HomeScore, homeTag,
		detail,
	)
	if play.Pitcher.FullName != "" {
		line += fmt.Sprintf("\nvs %s (pitch #%d)", play.Pitcher.FullName, ev.PitchCount)
	}
	return line
}
