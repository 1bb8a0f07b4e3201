package subscriptions

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the subscription set in a Redis set so subscriptions
// survive restarts.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore constructs a RedisStore and verifies connectivity.
func NewRedisStore(ctx context.Context, addr, password, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}
	return &RedisStore{client: client, key: key}, nil
}

// Add inserts the channel, reporting whether it was newly added.
func (s *RedisStore) Add(ctx context.Context, channel string) (bool, error) {
	added, err := s.client.SAdd(ctx, s.key, channel).Result()
	if err != nil {
		return false, fmt.Errorf("subscription add: %w", err)
	}
	return added > 0, nil
}

// Remove deletes the channel, reporting whether it was present.
func (s *RedisStore) Remove(ctx context.Context, channel string) (bool, error) {
	removed, err := s.client.SRem(ctx, s.key, channel).Result()
	if err != nil {
		return false, fmt.Errorf("subscription remove: %w", err)
	}
	return removed > 0, nil
}

// List returns the subscribed channels in sorted order.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	channels, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("subscription list: %w", err)
	}
	sort.Strings(channels)
	return channels, nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
