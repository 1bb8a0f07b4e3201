// Package subscriptions tracks the channels receiving notifications. The core
// needs only in-memory state; the Redis backend persists the set across
// restarts for deployments that want it.
package subscriptions

import "context"

// Store is the subscription set. Add/Remove report whether the set changed so
// callers can respond idempotently.
type Store interface {
	Add(ctx context.Context, channel string) (bool, error)
	Remove(ctx context.Context, channel string) (bool, error)
	List(ctx context.Context) ([]string, error)
}
