package redis

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"kverse-gamification-service/internal/app"
	"kverse-gamification-service/internal/domain"
)

// ProfileStore is a Redis-aware implementation of app.ProfileRepository.
// Notes:
//   - Profile sessions stay in a local in-memory map so the in-process
//     mutation and fanout logic is reused as-is.
//   - Redis marks session liveness (and could be extended to share snapshots
//     or route cross-instance pub/sub).
type ProfileStore struct {
	client *redis.Client
	ttl    time.Duration
	seed   domain.ProfileSeed
	levels domain.LevelTable

	mu       sync.RWMutex
	sessions map[string]*app.ProfileSession
}

func NewProfileStore(client *redis.Client, ttl time.Duration, seed domain.ProfileSeed, levels domain.LevelTable) *ProfileStore {
	return &ProfileStore{
		client:   client,
		ttl:      ttl,
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
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(userID), "1", s.ttl).Err()
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
	if _, ok := s.sessions[userID]; !ok {
		return
	}
	delete(s.sessions, userID)
	_ = s.client.Del(context.Background(), s.key(userID)).Err()
}

func (s *ProfileStore) key(userID string) string {
	return "profile:session:" + userID
}
