package statsapi

// scoreboardResponse is the wire shape of the daily scoreboard document.
type scoreboardResponse struct {
	Dates []scoreboardDate `json:"dates"`
}

type scoreboardDate struct {
	Games []scoreboardGame `json:"games"`
}

type scoreboardGame struct {
	GamePk    int64     `json:"gamePk"`
	GameUtils gameUtils `json:"gameUtils"`
}

// gameUtils bundles the provider's per-game state booleans.
type gameUtils struct {
	IsLive        bool `json:"isLive"`
	IsWarmup      bool `json:"isWarmup"`
	IsCancelled   bool `json:"isCancelled"`
	IsPostponed   bool `json:"isPostponed"`
	IsSuspended   bool `json:"isSuspended"`
	IsDelayed     bool `json:"isDelayed"`
	IsInGameDelay bool `json:"isInGameDelay"`
	IsFinal       bool `json:"isFinal"`
}

// feedResponse is the wire shape of the feed/live document, trimmed to the
// fields we render.
type feedResponse struct {
	GameData feedGameData `json:"gameData"`
	LiveData feedLiveData `json:"liveData"`
}

type feedGameData struct {
	Teams            feedTeams        `json:"teams"`
	Venue            feedVenue        `json:"venue"`
	ProbablePitchers probablePitchers `json:"probablePitchers"`
}

type feedTeams struct {
	Away feedTeam `json:"away"`
	Home feedTeam `json:"home"`
}

type feedTeam struct {
	TeamName     string     `json:"teamName"`
	Abbreviation string     `json:"abbreviation"`
	Record       teamRecord `json:"record"`
}

type teamRecord struct {
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	WinningPercentage string `json:"winningPercentage"`
}

type feedVenue struct {
	Name     string        `json:"name"`
	Location venueLocation `json:"location"`
}

type venueLocation struct {
	City        string `json:"city"`
	StateAbbrev string `json:"stateAbbrev"`
}

type probablePitchers struct {
	Away personRef `json:"away"`
	Home personRef `json:"home"`
}

type personRef struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type feedLiveData struct {
	Linescore linescore `json:"linescore"`
	Boxscore  boxscore  `json:"boxscore"`
}

type linescore struct {
	CurrentInning int            `json:"currentInning"`
	Teams         linescoreTeams `json:"teams"`
}

type linescoreTeams struct {
	Away linescoreTeam `json:"away"`
	Home linescoreTeam `json:"home"`
}

type linescoreTeam struct {
	Runs int `json:"runs"`
}

type boxscore struct {
	Teams boxscoreTeams `json:"teams"`
}

type boxscoreTeams struct {
	Away boxscoreTeam `json:"away"`
	Home boxscoreTeam `json:"home"`
}

type boxscoreTeam struct {
	BattingOrder []int                     `json:"battingOrder"`
	Players      map[string]boxscorePlayer `json:"players"`
}

type boxscorePlayer struct {
	Person      personRef   `json:"person"`
	Position    position    `json:"position"`
	SeasonStats playerStats `json:"seasonStats"`
	Stats       playerStats `json:"stats"`
}

type position struct {
	Abbreviation string `json:"abbreviation"`
}

type playerStats struct {
	Pitching pitchingStats `json:"pitching"`
}

type pitchingStats struct {
	ERA             string `json:"era"`
	NumberOfPitches int    `json:"numberOfPitches"`
}

// playByPlayResponse is the wire shape of the playByPlay document.
type playByPlayResponse struct {
	ScoringPlays []int      `json:"scoringPlays"`
	AllPlays     []wirePlay `json:"allPlays"`
}

type wirePlay struct {
	Result     playResult  `json:"result"`
	About      playAbout   `json:"about"`
	Matchup    playMatchup `json:"matchup"`
	PlayEvents []playEvent `json:"playEvents"`
}

type playResult struct {
	Event       string `json:"event"`
	EventType   string `json:"eventType"`
	Description string `json:"description"`
	AwayScore   int    `json:"awayScore"`
	HomeScore   int    `json:"homeScore"`
}

type playAbout struct {
	HalfInning string `json:"halfInning"`
	Inning     int    `json:"inning"`
}

type playMatchup struct {
	Batter  personRef `json:"batter"`
	Pitcher personRef `json:"pitcher"`
}

type playEvent struct {
	HitData *wireHitData `json:"hitData"`
}

type wireHitData struct {
	LaunchSpeed   float64 `json:"launchSpeed"`
	LaunchAngle   float64 `json:"launchAngle"`
	TotalDistance float64 `json:"totalDistance"`
}
