package notify

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Hasher derives a dedupe key from game id + rendered message. Pluggable so
// tests can use a transparent function.
type Hasher func(string) uint64

// DedupeSet is a growing set of hashes for already-dispatched notifications.
// Entries are never evicted within a process lifetime; unbounded growth over
// one session of games is an accepted tradeoff.
type DedupeSet struct {
	mu   sync.Mutex
	seen map[uint64]struct{}
	hash Hasher
}

// NewDedupeSet constructs a DedupeSet. A nil hasher defaults to xxhash.
func NewDedupeSet(hash Hasher) *DedupeSet {
	if hash == nil {
		hash = xxhash.Sum64String
	}
	return &DedupeSet{
		seen: make(map[uint64]struct{}),
		hash: hash,
	}
}

// Seen reports whether the key has already been recorded.
func (s *DedupeSet) Seen(key string) bool {
	h := s.hash(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[h]
	return ok
}

// Record marks the key as dispatched.
func (s *DedupeSet) Record(key string) {
	h := s.hash(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[h] = struct{}{}
}

// Len returns the number of recorded keys.
func (s *DedupeSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}
