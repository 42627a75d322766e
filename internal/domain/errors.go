package domain

import "errors"

var (
	// ErrInsufficientBalance is returned when a debit or redemption exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient point balance")
	// ErrNonPositiveAmount is returned when a credit or debit amount is not positive.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrUnknownCounter is returned for counter names outside the fixed set.
	ErrUnknownCounter = errors.New("unknown achievement counter")
	// ErrAnswerAlreadyLocked is returned when SelectAnswer is called twice for one question.
	ErrAnswerAlreadyLocked = errors.New("answer already locked")
	// ErrAnswerNotLocked is returned when Advance is called before an answer was locked.
	ErrAnswerNotLocked = errors.New("answer not locked yet")
	// ErrSessionCompleted is returned for any transition after the quiz reached its terminal state.
	ErrSessionCompleted = errors.New("quiz session completed")
	// ErrNoActiveQuiz is returned when a quiz transition arrives with no session running.
	ErrNoActiveQuiz = errors.New("no active quiz session")
	// ErrOptionOutOfRange is returned when a selected option index is invalid for the question.
	ErrOptionOutOfRange = errors.New("option index out of range")
	// ErrProfileNotFound is returned when a user acts before a session profile exists.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrQuizNotFound indicates the quiz catalog entry could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrRewardNotFound indicates the reward catalog entry could not be loaded.
	ErrRewardNotFound = errors.New("reward not found")
	// ErrChallengeNotFound indicates the challenge catalog entry could not be loaded.
	ErrChallengeNotFound = errors.New("challenge not found")
)
