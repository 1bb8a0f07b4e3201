package gateway

import (
	"context"
	"log/slog"

	"mlb-scores-service/internal/logging"
)

// LogGateway writes messages to the log instead of a chat backend. Default
// when no gateway is configured; useful for dry runs.
type LogGateway struct {
	logger *slog.Logger
}

// NewLogGateway constructs a LogGateway.
func NewLogGateway(logger *slog.Logger) *LogGateway {
	return &LogGateway{logger: logger}
}

func (g *LogGateway) Send(_ context.Context, channel, message string) error {
	logging.Info(g.logger, "notification",
		slog.String(logging.FieldChannel, channel),
		slog.String("message", message),
	)
	return nil
}

func (g *LogGateway) Name() string { return "log" }
