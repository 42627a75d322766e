package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"kverse-gamification-service/internal/domain"
	"kverse-gamification-service/internal/infra/memory"
)

// CatalogRepository caches catalog entries as JSON values in Redis and falls
// back to a loader on cache miss.
// Entries are stored as: SET catalog:{kind}:{id} {json} EX {ttl}
type CatalogRepository struct {
	client *redis.Client
	loader memory.CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewCatalogRepository(client *redis.Client, loader memory.CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	var quiz domain.Quiz
	err := r.get(ctx, r.key("quiz", quizID), &quiz, func(ctx context.Context) (any, error) {
		return r.loader.LoadQuiz(ctx, quizID)
	})
	return quiz, err
}

func (r *CatalogRepository) GetReward(ctx context.Context, rewardID string) (domain.Reward, error) {
	var reward domain.Reward
	err := r.get(ctx, r.key("reward", rewardID), &reward, func(ctx context.Context) (any, error) {
		return r.loader.LoadReward(ctx, rewardID)
	})
	return reward, err
}

func (r *CatalogRepository) GetChallenge(ctx context.Context, challengeID string) (domain.Challenge, error) {
	var challenge domain.Challenge
	err := r.get(ctx, r.key("challenge", challengeID), &challenge, func(ctx context.Context) (any, error) {
		return r.loader.LoadChallenge(ctx, challengeID)
	})
	return challenge, err
}

func (r *CatalogRepository) get(ctx context.Context, key string, out any, load func(ctx context.Context) (any, error)) error {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err == nil && len(raw) > 0 {
		return json.Unmarshal(raw, out)
	}

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		raw, err := r.client.Get(ctx, key).Bytes()
		if err == nil && len(raw) > 0 {
			return raw, nil
		}

		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		_ = r.client.Set(ctx, key, encoded, r.ttlWithJitter()).Err()
		return encoded, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(result.([]byte), out)
}

func (r *CatalogRepository) key(kind, id string) string {
	return "catalog:" + kind + ":" + id
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
