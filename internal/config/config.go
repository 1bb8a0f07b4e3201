package config

// Config holds runtime configuration for the service.
type Config struct {
	Port          string
	AdminToken    string
	Timezone      string
	Poll          PollConfig
	StatsAPI      StatsAPIConfig
	Gateway       GatewayConfig
	Subscriptions SubscriptionsConfig
	Archive       ArchiveConfig
	Metrics       MetricsConfig
}

// PollConfig bounds the adaptive scheduler intervals.
type PollConfig struct {
	MinInterval Duration
	MaxInterval Duration
	BackoffStep Duration
}

// GatewayConfig selects and configures the messaging gateway.
type GatewayConfig struct {
	Kind       string
	SlackToken string
	MaxRetries int
}

// SubscriptionsConfig selects the subscription store backend.
type SubscriptionsConfig struct {
	Backend       string
	Seed          []string
	RedisAddr     string
	RedisPassword string
	RedisKey      string
}

// ArchiveConfig controls the optional on-disk schedule snapshot archive.
type ArchiveConfig struct {
	Enabled       bool
	Path          string
	RetentionDays int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		AdminToken: envOrDefault(envAdminToken, ""),
		Timezone:   envOrDefault(envTimezone, defaultTimezone),
		Poll: PollConfig{
			MinInterval: durationEnvOrDefault(envPollMin, defaultPollMin),
			MaxInterval: durationEnvOrDefault(envPollMax, defaultPollMax),
			BackoffStep: durationEnvOrDefault(envPollStep, defaultPollStep),
		},
		StatsAPI: loadStatsAPI(),
		Gateway: GatewayConfig{
			Kind:       envOrDefault(envGatewayKind, defaultGatewayKind),
			SlackToken: envOrDefault(envSlackToken, ""),
			MaxRetries: intEnvOrDefault(envWebhookRetry, defaultWebhookRetry),
		},
		Subscriptions: SubscriptionsConfig{
			Backend:       envOrDefault(envSubsBackend, defaultSubsBackend),
			Seed:          listEnvOrDefault(envSubsSeed, nil),
			RedisAddr:     envOrDefault(envRedisAddr, defaultRedisAddr),
			RedisPassword: envOrDefault(envRedisPassword, ""),
			RedisKey:      envOrDefault(envRedisKey, defaultRedisKey),
		},
		Archive: ArchiveConfig{
			Enabled:       boolEnvOrDefault(envArchiveOn, false),
			Path:          envOrDefault(envArchivePath, defaultArchivePath),
			RetentionDays: intEnvOrDefault(envArchiveDays, defaultArchiveDays),
		},
		Metrics: loadMetrics(),
	}
}
