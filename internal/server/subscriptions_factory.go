package server

import (
	"context"
	"log/slog"

	"mlb-scores-service/internal/config"
	"mlb-scores-service/internal/logging"
	"mlb-scores-service/internal/subscriptions"
)

const (
	subsMemory = "memory"
	subsRedis  = "redis"
)

// buildSubscriptions selects the subscription store backend. A redis backend
// that cannot be reached falls back to an in-memory store so startup never
// blocks on an optional dependency; the seed channels apply either way.
func buildSubscriptions(ctx context.Context, cfg config.Config, logger *slog.Logger) subscriptions.Store {
	switch cfg.Subscriptions.Backend {
	case subsRedis:
		store, err := subscriptions.NewRedisStore(ctx, cfg.Subscriptions.RedisAddr, cfg.Subscriptions.RedisPassword, cfg.Subscriptions.RedisKey)
		if err != nil {
			logging.Warn(logger, "redis subscriptions unavailable, using memory store", "error", err)
			return subscriptions.NewMemoryStore(cfg.Subscriptions.Seed...)
		}
		seedSubscriptions(ctx, store, cfg.Subscriptions.Seed, logger)
		return store
	case subsMemory, "":
		return subscriptions.NewMemoryStore(cfg.Subscriptions.Seed...)
	default:
		logging.Warn(logger, "unknown subscriptions backend, using memory store",
			slog.String("backend", cfg.Subscriptions.Backend))
		return subscriptions.NewMemoryStore(cfg.Subscriptions.Seed...)
	}
}

func seedSubscriptions(ctx context.Context, store subscriptions.Store, seed []string, logger *slog.Logger) {
	for _, channel := range seed {
		if _, err := store.Add(ctx, channel); err != nil {
			logging.Warn(logger, "failed to seed subscription",
				slog.String(logging.FieldChannel, channel), "error", err)
		}
	}
}
