package subscriptions

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps the subscription set in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	channels map[string]struct{}
}

// NewMemoryStore constructs a MemoryStore seeded with the given channels.
func NewMemoryStore(seed ...string) *MemoryStore {
	channels := make(map[string]struct{}, len(seed))
	for _, ch := range seed {
		channels[ch] = struct{}{}
	}
	return &MemoryStore{channels: channels}
}

// Add inserts the channel, reporting whether it was newly added.
func (s *MemoryStore) Add(_ context.Context, channel string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.channels[channel]; ok {
		return false, nil
	}
	s.channels[channel] = struct{}{}
	return true, nil
}

// Remove deletes the channel, reporting whether it was present.
func (s *MemoryStore) Remove(_ context.Context, channel string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.channels[channel]; !ok {
		return false, nil
	}
	delete(s.channels, channel)
	return true, nil
}

// List returns the subscribed channels in sorted order.
func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.channels))
	for ch := range s.channels {
		out = append(out, ch)
	}
	sort.Strings(out)
	return out, nil
}
