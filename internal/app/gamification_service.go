package app

import (
	"context"

	"kverse-gamification-service/internal/domain"
)

// ProfileRepository abstracts how profile sessions are stored (in-memory, Redis, etc).
type ProfileRepository interface {
	GetOrCreate(userID string) *ProfileSession
	Get(userID string) (*ProfileSession, bool)
	Delete(userID string)
}

// CatalogRepository loads catalog content (from cache/backing store).
type CatalogRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
	GetReward(ctx context.Context, rewardID string) (domain.Reward, error)
	GetChallenge(ctx context.Context, challengeID string) (domain.Challenge, error)
}

// GamificationService contains the gamification economy use cases. It is the
// explicit session context the UI layer calls into; there is no global state.
type GamificationService struct {
	profiles ProfileRepository
	catalog  CatalogRepository
	points   domain.ActionPoints
}

func NewGamificationService(profiles ProfileRepository, catalog CatalogRepository, points domain.ActionPoints) *GamificationService {
	return &GamificationService{profiles: profiles, catalog: catalog, points: points}
}

// Login registers or refreshes a user's profile session.
func (s *GamificationService) Login(_ context.Context, userID string) domain.ProfileSnapshot {
	return s.profiles.GetOrCreate(userID).Snapshot()
}

// Logout resets the profile to its seed record and drops the session.
func (s *GamificationService) Logout(_ context.Context, userID string) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return
	}
	session.reset()
	s.profiles.Delete(userID)
}

// Profile returns the current snapshot for a logged-in user.
func (s *GamificationService) Profile(_ context.Context, userID string) (domain.ProfileSnapshot, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return domain.ProfileSnapshot{}, domain.ErrProfileNotFound
	}
	return session.Snapshot(), nil
}

// UpdateProfile applies a metadata update; empty fields are left unchanged.
func (s *GamificationService) UpdateProfile(_ context.Context, userID string, update domain.ProfileMeta) (domain.ProfileSnapshot, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return domain.ProfileSnapshot{}, domain.ErrProfileNotFound
	}
	return session.updateMeta(update), nil
}

// ApplyPointDelta credits positive deltas and debits negative ones, surfacing
// ErrInsufficientBalance unchanged.
func (s *GamificationService) ApplyPointDelta(_ context.Context, userID string, delta int) (int, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return 0, domain.ErrProfileNotFound
	}
	return session.applyPointDelta(delta)
}

// GrantBadge awards a badge directly. Re-awards report BadgeAlreadyOwned.
func (s *GamificationService) GrantBadge(_ context.Context, userID, badgeID string) (domain.AwardResult, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return "", domain.ErrProfileNotFound
	}
	return session.grantBadge(badgeID), nil
}

// BumpCounter increments one of the fixed achievement counters.
func (s *GamificationService) BumpCounter(_ context.Context, userID string, name domain.Counter) error {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return domain.ErrProfileNotFound
	}
	return session.bumpCounter(name)
}

// RecordPost credits the post action and bumps the posts counter.
func (s *GamificationService) RecordPost(_ context.Context, userID string, withMedia bool) (int, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return 0, domain.ErrProfileNotFound
	}
	amount := s.points.CreatePost
	if withMedia {
		amount = s.points.CreatePostWithMedia
	}
	return session.creditAction(amount, domain.CounterPosts)
}

// RecordLike credits the like action.
func (s *GamificationService) RecordLike(_ context.Context, userID string) (int, error) {
	return s.creditSimple(userID, s.points.LikePost)
}

// RecordComment credits the comment action.
func (s *GamificationService) RecordComment(_ context.Context, userID string) (int, error) {
	return s.creditSimple(userID, s.points.Comment)
}

// RecordDailyLogin credits the daily login bonus.
func (s *GamificationService) RecordDailyLogin(_ context.Context, userID string) (int, error) {
	return s.creditSimple(userID, s.points.DailyLogin)
}

// RecordInvite credits the friend invite bonus.
func (s *GamificationService) RecordInvite(_ context.Context, userID string) (int, error) {
	return s.creditSimple(userID, s.points.InviteFriend)
}

func (s *GamificationService) creditSimple(userID string, amount int) (int, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return 0, domain.ErrProfileNotFound
	}
	return session.creditAction(amount, "")
}

// StartQuiz begins a fresh quiz session over a validated catalog quiz.
func (s *GamificationService) StartQuiz(ctx context.Context, userID, quizID string) (domain.QuizSnapshot, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return domain.QuizSnapshot{}, domain.ErrProfileNotFound
	}
	quiz, err := s.catalog.GetQuiz(ctx, quizID)
	if err != nil {
		return domain.QuizSnapshot{}, err
	}
	return session.startQuiz(quiz), nil
}

// SelectAnswer locks an answer for the current question; a correct answer
// credits the question's fixed point value in the same operation.
func (s *GamificationService) SelectAnswer(_ context.Context, userID string, option int) (domain.AnswerOutcome, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return domain.AnswerOutcome{}, domain.ErrProfileNotFound
	}
	return session.selectAnswer(option)
}

// AdvanceQuiz moves past a locked question or completes the session.
func (s *GamificationService) AdvanceQuiz(_ context.Context, userID string) (domain.QuizSnapshot, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return domain.QuizSnapshot{}, domain.ErrProfileNotFound
	}
	return session.advanceQuiz()
}

// QuizState reports the active quiz snapshot without mutating anything.
func (s *GamificationService) QuizState(_ context.Context, userID string) (domain.QuizSnapshot, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return domain.QuizSnapshot{}, domain.ErrProfileNotFound
	}
	snap, active := session.QuizSnapshot()
	if !active {
		return domain.QuizSnapshot{}, domain.ErrNoActiveQuiz
	}
	return snap, nil
}

// RedeemReward debits the reward's cost and grants the badge token for
// badge-type rewards, atomically from the caller's point of view.
func (s *GamificationService) RedeemReward(ctx context.Context, userID, rewardID string) (domain.RedeemOutcome, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return domain.RedeemOutcome{}, domain.ErrProfileNotFound
	}
	reward, err := s.catalog.GetReward(ctx, rewardID)
	if err != nil {
		return domain.RedeemOutcome{}, err
	}
	return session.redeem(reward)
}

// SubmitChallenge credits the flat submission reward. Submission is rewarded
// regardless of outcome and bumps no counter.
func (s *GamificationService) SubmitChallenge(ctx context.Context, userID, challengeID string) (int, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return 0, domain.ErrProfileNotFound
	}
	if _, err := s.catalog.GetChallenge(ctx, challengeID); err != nil {
		return 0, err
	}
	return session.creditAction(s.points.ChallengeSubmission, "")
}

// CompleteChallengeWin credits the challenge's prize and bumps challengesWon.
// Nothing invokes this automatically; adjudication lives outside the core.
func (s *GamificationService) CompleteChallengeWin(ctx context.Context, userID, challengeID string) (int, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return 0, domain.ErrProfileNotFound
	}
	challenge, err := s.catalog.GetChallenge(ctx, challengeID)
	if err != nil {
		return 0, err
	}
	return session.creditAction(challenge.Prize, domain.CounterChallengesWon)
}

// CompleteGameWin credits the configured game-win value and bumps gamesWon.
func (s *GamificationService) CompleteGameWin(_ context.Context, userID string) (int, error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return 0, domain.ErrProfileNotFound
	}
	return session.creditAction(s.points.GameWin, domain.CounterGamesWon)
}

// Subscribe returns a channel that receives profile snapshots after every
// mutation. The caller must invoke the returned cancel function to avoid leaks.
func (s *GamificationService) Subscribe(_ context.Context, userID string) (<-chan domain.ProfileSnapshot, func(), error) {
	session, ok := s.profiles.Get(userID)
	if !ok {
		return nil, nil, domain.ErrProfileNotFound
	}
	ch, cancel := session.subscribe()
	return ch, cancel, nil
}
