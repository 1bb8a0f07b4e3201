package config

// StatsAPIConfig controls how we talk to the MLB Stats API endpoints.
type StatsAPIConfig struct {
	// BaseURL serves the per-game feed/live and playByPlay endpoints.
	BaseURL string
	// ScheduleBaseURL serves the daily scoreboard document.
	ScheduleBaseURL string
	HTTPTimeout     Duration
}

const (
	defaultStatsBaseURL    = "https://statsapi.mlb.com"
	defaultScheduleBaseURL = "https://bdfed.stitch.mlbinfra.com/bdfed/transform-mlb-scoreboard"
)

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL:         envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		ScheduleBaseURL: envOrDefault(envScheduleURL, defaultScheduleBaseURL),
		HTTPTimeout:     durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
	}
}
