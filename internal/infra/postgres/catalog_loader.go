package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"kverse-gamification-service/internal/domain"
)

// CatalogLoader loads catalog JSONB from Postgres. Rows are validated once at
// load time so cached copies can be trusted.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	var quiz domain.Quiz
	if err := l.load(ctx, `SELECT data FROM quizzes WHERE id=$1`, quizID, &quiz, domain.ErrQuizNotFound); err != nil {
		return domain.Quiz{}, err
	}
	if err := quiz.Validate(); err != nil {
		return domain.Quiz{}, fmt.Errorf("quiz %s: %w", quizID, err)
	}
	return quiz, nil
}

func (l *CatalogLoader) LoadReward(ctx context.Context, rewardID string) (domain.Reward, error) {
	var reward domain.Reward
	if err := l.load(ctx, `SELECT data FROM rewards WHERE id=$1`, rewardID, &reward, domain.ErrRewardNotFound); err != nil {
		return domain.Reward{}, err
	}
	if err := reward.Validate(); err != nil {
		return domain.Reward{}, fmt.Errorf("reward %s: %w", rewardID, err)
	}
	return reward, nil
}

func (l *CatalogLoader) LoadChallenge(ctx context.Context, challengeID string) (domain.Challenge, error) {
	var challenge domain.Challenge
	if err := l.load(ctx, `SELECT data FROM challenges WHERE id=$1`, challengeID, &challenge, domain.ErrChallengeNotFound); err != nil {
		return domain.Challenge{}, err
	}
	if err := challenge.Validate(); err != nil {
		return domain.Challenge{}, fmt.Errorf("challenge %s: %w", challengeID, err)
	}
	return challenge, nil
}

func (l *CatalogLoader) load(ctx context.Context, query, id string, out any, notFound error) error {
	var raw []byte
	err := l.pool.QueryRow(ctx, query, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	if err != nil {
		return fmt.Errorf("load catalog entry: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal catalog entry: %w", err)
	}
	return nil
}
