package config

import "time"

const (
	envPort          = "PORT"
	envAdminToken    = "ADMIN_TOKEN"
	envTimezone      = "REFERENCE_TIMEZONE"
	envPollMin       = "POLL_MIN_INTERVAL"
	envPollMax       = "POLL_MAX_INTERVAL"
	envPollStep      = "POLL_BACKOFF_STEP"
	envStatsBaseURL  = "STATSAPI_BASE_URL"
	envScheduleURL   = "SCHEDULE_BASE_URL"
	envHTTPTimeout   = "HTTP_TIMEOUT"
	envGatewayKind   = "GATEWAY"
	envSlackToken    = "SLACK_TOKEN"
	envWebhookRetry  = "WEBHOOK_MAX_RETRIES"
	envSubsBackend   = "SUBSCRIPTIONS_BACKEND"
	envSubsSeed      = "SUBSCRIPTIONS"
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisKey      = "REDIS_SUBSCRIPTIONS_KEY"
	envArchiveOn     = "ARCHIVE_ENABLED"
	envArchivePath   = "ARCHIVE_PATH"
	envArchiveDays   = "ARCHIVE_RETENTION_DAYS"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Schedule rollovers and game feeds key off the US eastern calendar day.
	defaultTimezone = "America/New_York"
	// Polling cadence floor/ceiling per the adaptive backoff policy.
	defaultPollMin  = 10 * Duration(time.Second)
	defaultPollMax  = 5 * Duration(time.Minute)
	defaultPollStep = 10 * Duration(time.Second)
	// Finite bound so an unresponsive upstream cannot stall the cycle.
	defaultHTTPTimeout  = 10 * Duration(time.Second)
	defaultGatewayKind  = "log"
	defaultWebhookRetry = 3
	defaultSubsBackend  = "memory"
	defaultRedisAddr    = "localhost:6379"
	defaultRedisKey     = "scores:subscriptions"
	defaultArchivePath  = "data/schedule"
	defaultArchiveDays  = 7
	defaultMetricsPort  = "9090"
)
