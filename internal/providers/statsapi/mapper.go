package statsapi

import (
	"fmt"
	"strconv"

	"mlb-scores-service/internal/domain"
)

func mapSchedule(date string, payload scoreboardResponse) domain.ScheduleSnapshot {
	snap := domain.ScheduleSnapshot{Date: date}
	if len(payload.Dates) == 0 {
		return snap
	}
	for _, g := range payload.Dates[0].Games {
		snap.Games = append(snap.Games, domain.ScheduleGame{
			ID: strconv.FormatInt(g.GamePk, 10),
			Flags: domain.GameFlags{
				Live:        g.GameUtils.IsLive,
				Warmup:      g.GameUtils.IsWarmup,
				Cancelled:   g.GameUtils.IsCancelled,
				Postponed:   g.GameUtils.IsPostponed,
				Suspended:   g.GameUtils.IsSuspended,
				Delayed:     g.GameUtils.IsDelayed,
				InGameDelay: g.GameUtils.IsInGameDelay,
				Final:       g.GameUtils.IsFinal,
			},
		})
	}
	return snap
}

func mapFeed(payload feedResponse) *domain.GameFeed {
	box := payload.LiveData.Boxscore.Teams
	feed := &domain.GameFeed{
		Away:        mapTeam(payload.GameData.Teams.Away),
		Home:        mapTeam(payload.GameData.Teams.Home),
		AwayRuns:    payload.LiveData.Linescore.Teams.Away.Runs,
		HomeRuns:    payload.LiveData.Linescore.Teams.Home.Runs,
		Inning:      payload.LiveData.Linescore.CurrentInning,
		Venue:       mapVenue(payload.GameData.Venue),
		AwayLineup:  mapLineup(box.Away, payload.GameData.ProbablePitchers.Away.ID),
		HomeLineup:  mapLineup(box.Home, payload.GameData.ProbablePitchers.Home.ID),
		PitchCounts: mapPitchCounts(box.Away, box.Home),
	}
	return feed
}

func mapTeam(t feedTeam) domain.TeamInfo {
	pct := t.Record.WinningPercentage
	if pct == "" {
		pct = ".000"
	}
	return domain.TeamInfo{
		Name:         t.TeamName,
		Abbreviation: t.Abbreviation,
		Wins:         t.Record.Wins,
		Losses:       t.Record.Losses,
		Pct:          pct,
	}
}

func mapVenue(v feedVenue) string {
	if v.Name == "" {
		return ""
	}
	if v.Location.City == "" {
		return v.Name
	}
	return fmt.Sprintf("%s, %s %s", v.Name, v.Location.City, v.Location.StateAbbrev)
}

// mapLineup renders the batting order plus the probable starter. Entries with
// missing player records are skipped rather than guessed at.
func mapLineup(team boxscoreTeam, starterID int) []string {
	lineup := make([]string, 0, len(team.BattingOrder)+1)
	for idx, playerID := range team.BattingOrder {
		player, ok := team.Players[playerKey(playerID)]
		if !ok {
			continue
		}
		lineup = append(lineup, fmt.Sprintf("%d. %s (%s)", idx+1, player.Person.FullName, player.Position.Abbreviation))
	}
	if starter, ok := team.Players[playerKey(starterID)]; ok {
		era := starter.SeasonStats.Pitching.ERA
		if era == "" {
			era = "-"
		}
		lineup = append(lineup, fmt.Sprintf("SP: %s (%s)", starter.Person.FullName, era))
	}
	return lineup
}

func mapPitchCounts(away, home boxscoreTeam) map[int]int {
	counts := make(map[int]int)
	for _, team := range []boxscoreTeam{away, home} {
		for _, player := range team.Players {
			if n := player.Stats.Pitching.NumberOfPitches; n > 0 {
				counts[player.Person.ID] = n
			}
		}
	}
	return counts
}

func mapPlayByPlay(payload playByPlayResponse) *domain.PlaySnapshot {
	snap := &domain.PlaySnapshot{
		ScoringPlays: append([]int(nil), payload.ScoringPlays...),
		Plays:        make([]domain.Play, 0, len(payload.AllPlays)),
	}
	for _, p := range payload.AllPlays {
		snap.Plays = append(snap.Plays, mapPlay(p))
	}
	return snap
}

func mapPlay(p wirePlay) domain.Play {
	play := domain.Play{
		Event:       p.Result.Event,
		EventType:   p.Result.EventType,
		Description: p.Result.Description,
		AwayScore:   p.Result.AwayScore,
		HomeScore:   p.Result.HomeScore,
		HalfInning:  p.About.HalfInning,
		Inning:      p.About.Inning,
		Batter:      domain.Person{ID: p.Matchup.Batter.ID, FullName: p.Matchup.Batter.FullName},
		Pitcher:     domain.Person{ID: p.Matchup.Pitcher.ID, FullName: p.Matchup.Pitcher.FullName},
	}
	for _, ev := range p.PlayEvents {
		if ev.HitData != nil {
			play.Hit = &domain.HitData{
				LaunchSpeed:   ev.HitData.LaunchSpeed,
				LaunchAngle:   ev.HitData.LaunchAngle,
				TotalDistance: ev.HitData.TotalDistance,
			}
			break
		}
	}
	return play
}

func playerKey(id int) string {
	return fmt.Sprintf("ID%d", id)
}
