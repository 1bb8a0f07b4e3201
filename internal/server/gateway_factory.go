package server

import (
	"log/slog"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/gateway"
	"mlb-scores-service/internal/logging"
)

const (
	gatewayLog     = "log"
	gatewaySlack   = "slack"
	gatewayWebhook = "webhook"
)

// buildGateway selects the outbound message gateway from configuration.
// Unknown kinds and a slack selection without a token fall back to the log
// gateway so the service still runs end to end.
func buildGateway(cfg config.Config, logger *slog.Logger) gateway.Gateway {
	switch cfg.Gateway.Kind {
	case gatewaySlack:
		if cfg.Gateway.SlackToken == "" {
			logging.Warn(logger, "slack gateway selected without token, using log gateway")
			return gateway.NewLogGateway(logger)
		}
		return gateway.NewSlackGateway(cfg.Gateway.SlackToken)
	case gatewayWebhook:
		return gateway.NewWebhookGateway(nil, cfg.Gateway.MaxRetries)
	case gatewayLog, "":
		return gateway.NewLogGateway(logger)
	default:
		logging.Warn(logger, "unknown gateway kind, using log gateway",
			slog.String(logging.FieldGateway, cfg.Gateway.Kind))
		return gateway.NewLogGateway(logger)
	}
}
