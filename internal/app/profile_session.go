package app

import (
	"sync"
	"time"

	"kverse-gamification-service/internal/domain"
)

// ProfileSession owns one user's in-process gamification state: the profile
// record, the active quiz (at most one), and the snapshot fanout to
// subscribers. Every mutating operation takes the session mutex for its whole
// duration, so each operation is atomic from the caller's point of view.
type ProfileSession struct {
	userID    string
	createdAt time.Time
	now       func() time.Time

	mu          sync.Mutex
	profile     *domain.Profile
	seed        domain.ProfileSeed
	levels      domain.LevelTable
	quiz        *quizSession
	subscribers map[chan domain.ProfileSnapshot]struct{}
}

// NewProfileSession is exported for infrastructure layers that need to seed sessions.
func NewProfileSession(userID string, seed domain.ProfileSeed, levels domain.LevelTable) *ProfileSession {
	return newProfileSessionWithClock(userID, seed, levels, time.Now)
}

// NewProfileSessionWithClock is test-only for deterministic timestamps.
func NewProfileSessionWithClock(userID string, seed domain.ProfileSeed, levels domain.LevelTable, now func() time.Time) *ProfileSession {
	return newProfileSessionWithClock(userID, seed, levels, now)
}

func newProfileSessionWithClock(userID string, seed domain.ProfileSeed, levels domain.LevelTable, now func() time.Time) *ProfileSession {
	seed.ID = userID
	return &ProfileSession{
		userID:      userID,
		createdAt:   now(),
		now:         now,
		profile:     domain.NewProfile(seed, levels),
		seed:        seed,
		levels:      levels,
		subscribers: make(map[chan domain.ProfileSnapshot]struct{}),
	}
}

// Snapshot returns the current profile view.
func (s *ProfileSession) Snapshot() domain.ProfileSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Snapshot()
}

// reset discards all accumulated state and restores the seed record.
func (s *ProfileSession) reset() domain.ProfileSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = domain.NewProfile(s.seed, s.levels)
	s.quiz = nil
	return s.broadcastLocked()
}

func (s *ProfileSession) updateMeta(update domain.ProfileMeta) domain.ProfileSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.UpdateMeta(update)
	return s.broadcastLocked()
}

// creditAction grants an action's point value, optionally bumping a counter.
// A zero-valued action skips the ledger so counters still advance.
func (s *ProfileSession) creditAction(amount int, counter domain.Counter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.profile.Balance()
	if amount > 0 {
		var err error
		balance, err = s.profile.Credit(amount)
		if err != nil {
			return s.profile.Balance(), err
		}
	}
	if counter != "" {
		if err := s.profile.BumpCounter(counter); err != nil {
			return balance, err
		}
	}
	s.broadcastLocked()
	return balance, nil
}

func (s *ProfileSession) applyPointDelta(delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err := s.profile.ApplyPointDelta(delta)
	if err != nil {
		return balance, err
	}
	s.broadcastLocked()
	return balance, nil
}

func (s *ProfileSession) grantBadge(badgeID string) domain.AwardResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := s.profile.GrantBadge(badgeID)
	if result == domain.BadgeAwarded {
		s.broadcastLocked()
	}
	return result
}

func (s *ProfileSession) bumpCounter(name domain.Counter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.profile.BumpCounter(name); err != nil {
		return err
	}
	s.broadcastLocked()
	return nil
}

// startQuiz replaces any running quiz with a fresh session over the given catalog quiz.
func (s *ProfileSession) startQuiz(quiz domain.Quiz) domain.QuizSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz = newQuizSession(quiz)
	return s.quiz.snapshot()
}

// selectAnswer locks an answer and, when correct, credits the question's point
// value in the same critical section.
func (s *ProfileSession) selectAnswer(option int) (domain.AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quiz == nil {
		return domain.AnswerOutcome{}, domain.ErrNoActiveQuiz
	}
	index := s.quiz.index
	correct, points, err := s.quiz.selectAnswer(option)
	if err != nil {
		return domain.AnswerOutcome{}, err
	}

	outcome := domain.AnswerOutcome{
		QuestionIndex: index,
		OptionIndex:   option,
		Correct:       correct,
		Score:         s.quiz.score,
		Balance:       s.profile.Balance(),
	}
	if correct {
		balance, err := s.profile.Credit(points)
		if err != nil {
			return domain.AnswerOutcome{}, err
		}
		outcome.Awarded = points
		outcome.Balance = balance
		s.broadcastLocked()
	}
	return outcome, nil
}

// advanceQuiz moves to the next question or completes the session. Completion
// credits nothing on its own; per-question credits already happened at lock
// time, and the game-win bonus is a separate operation the caller invokes.
func (s *ProfileSession) advanceQuiz() (domain.QuizSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.quiz == nil {
		return domain.QuizSnapshot{}, domain.ErrNoActiveQuiz
	}
	if _, err := s.quiz.advance(); err != nil {
		return s.quiz.snapshot(), err
	}
	return s.quiz.snapshot(), nil
}

// QuizSnapshot reports the active quiz state, if any.
func (s *ProfileSession) QuizSnapshot() (domain.QuizSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quiz == nil {
		return domain.QuizSnapshot{}, false
	}
	return s.quiz.snapshot(), true
}

// redeem debits the reward's cost and, for badge rewards, grants the token.
// Both effects happen inside one critical section or not at all. Free rewards
// skip the ledger; any balance satisfies a zero cost.
func (s *ProfileSession) redeem(reward domain.Reward) (domain.RedeemOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.profile.Balance()
	if reward.Cost > 0 {
		var err error
		balance, err = s.profile.Debit(reward.Cost)
		if err != nil {
			return domain.RedeemOutcome{}, err
		}
	}

	outcome := domain.RedeemOutcome{
		RewardID: reward.ID,
		Cost:     reward.Cost,
		Balance:  balance,
	}
	if reward.Type == domain.RewardTypeBadge {
		outcome.BadgeToken = reward.BadgeToken
		outcome.BadgeResult = s.profile.GrantBadge(reward.BadgeToken)
	}
	s.broadcastLocked()
	return outcome, nil
}

func (s *ProfileSession) subscribe() (<-chan domain.ProfileSnapshot, func()) {
	ch := make(chan domain.ProfileSnapshot, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := s.profile.Snapshot()
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *ProfileSession) broadcastLocked() domain.ProfileSnapshot {
	snap := s.profile.Snapshot()
	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// Drop the stale snapshot so a slow subscriber never blocks a mutation.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	return snap
}
