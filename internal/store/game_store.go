package store

import (
	"sync"

	"mlb-scores-service/internal/domain"
)

// GameStore keeps a thread-safe map of games under active monitoring. It is
// the sole owner of TrackedGame entries; callers mutate through its API only.
type GameStore struct {
	mu    sync.RWMutex
	games map[string]*domain.TrackedGame
}

// NewGameStore constructs an empty GameStore.
func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[string]*domain.TrackedGame),
	}
}

// Upsert creates or replaces the entry for game.ID and reports whether a new
// entry was created.
func (s *GameStore) Upsert(game *domain.TrackedGame) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, existed := s.games[game.ID]
	s.games[game.ID] = game
	return !existed
}

// Get retrieves a tracked game by id.
func (s *GameStore) Get(id string) (*domain.TrackedGame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// Remove deletes the entry for id, returning the removed game if present.
func (s *GameStore) Remove(id string) (*domain.TrackedGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if ok {
		delete(s.games, id)
	}
	return g, ok
}

// SetCheck flips the polling flag for id when tracked.
func (s *GameStore) SetCheck(id string, check bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.games[id]; ok {
		g.Check = check
	}
}

// Checked reports whether id is tracked with polling enabled. Callers consult
// this immediately before a fetch so a mid-cycle flag flip is honored.
func (s *GameStore) Checked(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return ok && g.Check
}

// AllChecked returns the ids of games with polling enabled.
func (s *GameStore) AllChecked() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.games))
	for id, g := range s.games {
		if g.Check {
			ids = append(ids, id)
		}
	}
	return ids
}

// IDs returns all tracked game ids.
func (s *GameStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of tracked games.
func (s *GameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
