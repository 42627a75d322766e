package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"kverse-gamification-service/internal/domain"
)

// CatalogLoader fetches catalog content from a backing store (e.g., Postgres).
type CatalogLoader interface {
	LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
	LoadReward(ctx context.Context, rewardID string) (domain.Reward, error)
	LoadChallenge(ctx context.Context, challengeID string) (domain.Challenge, error)
}

// CatalogRepository caches catalog entries with TTL to avoid repeated store hits.
type CatalogRepository struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedEntry
}

type cachedEntry struct {
	value     any
	expiresAt time.Time
}

func NewCatalogRepository(loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedEntry),
	}
}

func (r *CatalogRepository) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	value, err := r.get(ctx, "quiz:"+quizID, func(ctx context.Context) (any, error) {
		return r.loader.LoadQuiz(ctx, quizID)
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return value.(domain.Quiz), nil
}

func (r *CatalogRepository) GetReward(ctx context.Context, rewardID string) (domain.Reward, error) {
	value, err := r.get(ctx, "reward:"+rewardID, func(ctx context.Context) (any, error) {
		return r.loader.LoadReward(ctx, rewardID)
	})
	if err != nil {
		return domain.Reward{}, err
	}
	return value.(domain.Reward), nil
}

func (r *CatalogRepository) GetChallenge(ctx context.Context, challengeID string) (domain.Challenge, error) {
	value, err := r.get(ctx, "challenge:"+challengeID, func(ctx context.Context) (any, error) {
		return r.loader.LoadChallenge(ctx, challengeID)
	})
	if err != nil {
		return domain.Challenge{}, err
	}
	return value.(domain.Challenge), nil
}

func (r *CatalogRepository) get(ctx context.Context, key string, load func(ctx context.Context) (any, error)) (any, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[key]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.value, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[key]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.value, nil
		}
		r.mu.RUnlock()

		value, err := load(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[key] = cachedEntry{
			value:     value,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticCatalogLoader is a simple loader backed by in-memory maps (useful for
// tests and for running without a database). Entries are validated once here.
type StaticCatalogLoader struct {
	quizzes    map[string]domain.Quiz
	rewards    map[string]domain.Reward
	challenges map[string]domain.Challenge
}

func NewStaticCatalogLoader(quizzes map[string]domain.Quiz, rewards map[string]domain.Reward, challenges map[string]domain.Challenge) (*StaticCatalogLoader, error) {
	for _, quiz := range quizzes {
		if err := quiz.Validate(); err != nil {
			return nil, err
		}
	}
	for _, reward := range rewards {
		if err := reward.Validate(); err != nil {
			return nil, err
		}
	}
	for _, challenge := range challenges {
		if err := challenge.Validate(); err != nil {
			return nil, err
		}
	}
	return &StaticCatalogLoader{quizzes: quizzes, rewards: rewards, challenges: challenges}, nil
}

func (l *StaticCatalogLoader) LoadQuiz(_ context.Context, quizID string) (domain.Quiz, error) {
	if quiz, ok := l.quizzes[quizID]; ok {
		return quiz, nil
	}
	return domain.Quiz{}, domain.ErrQuizNotFound
}

func (l *StaticCatalogLoader) LoadReward(_ context.Context, rewardID string) (domain.Reward, error) {
	if reward, ok := l.rewards[rewardID]; ok {
		return reward, nil
	}
	return domain.Reward{}, domain.ErrRewardNotFound
}

func (l *StaticCatalogLoader) LoadChallenge(_ context.Context, challengeID string) (domain.Challenge, error) {
	if challenge, ok := l.challenges[challengeID]; ok {
		return challenge, nil
	}
	return domain.Challenge{}, domain.ErrChallengeNotFound
}
