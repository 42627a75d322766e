package memory

import (
	"sync"

	"kverse-gamification-service/internal/app"
	"kverse-gamification-service/internal/domain"
)

// ProfileStore is an in-memory implementation of app.ProfileRepository.
type ProfileStore struct {
	seed   domain.ProfileSeed
	levels domain.LevelTable

	mu       sync.RWMutex
	sessions map[string]*app.ProfileSession
}

func NewProfileStore(seed domain.ProfileSeed, levels domain.LevelTable) *ProfileStore {
	return &ProfileStore{
		seed:     seed,
		levels:   levels,
		sessions: make(map[string]*app.ProfileSession),
	}
}

func (s *ProfileStore) GetOrCreate(userID string) *app.ProfileSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[userID]; ok {
		return session
	}
	session := app.NewProfileSession(userID, s.seed, s.levels)
	s.sessions[userID] = session
	return session
}

func (s *ProfileStore) Get(userID string) (*app.ProfileSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	return session, ok
}

func (s *ProfileStore) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
