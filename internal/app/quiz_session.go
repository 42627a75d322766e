package app

import "kverse-gamification-service/internal/domain"

const noSelection = -1

// quizSession is the sequential multiple-choice state machine: a cursor over a
// fixed ordered question set with locked answers and a terminal completed
// state. It holds no lock of its own; the owning ProfileSession serializes
// access, and scoring side effects stay with the caller.
type quizSession struct {
	quiz     domain.Quiz
	index    int
	score    int
	awarded  int
	selected int
	status   domain.QuizStatus
}

func newQuizSession(quiz domain.Quiz) *quizSession {
	return &quizSession{
		quiz:     quiz,
		selected: noSelection,
		status:   domain.QuizInProgress,
	}
}

// selectAnswer locks the given option for the current question. Correctness is
// fixed at this moment by comparing against the catalog's correct index; it is
// never re-evaluated later.
func (q *quizSession) selectAnswer(option int) (bool, int, error) {
	if q.status == domain.QuizCompleted {
		return false, 0, domain.ErrSessionCompleted
	}
	if q.selected != noSelection {
		return false, 0, domain.ErrAnswerAlreadyLocked
	}
	question := q.quiz.Questions[q.index]
	if option < 0 || option >= len(question.Options) {
		return false, 0, domain.ErrOptionOutOfRange
	}

	q.selected = option
	if option != question.CorrectIndex {
		return false, 0, nil
	}

	points := question.Points
	if points == 0 {
		points = 1
	}
	q.score++
	q.awarded += points
	return true, points, nil
}

// advance moves the cursor past a locked question, or completes the session on
// the last one. Completion is terminal.
func (q *quizSession) advance() (domain.QuizStatus, error) {
	if q.status == domain.QuizCompleted {
		return q.status, domain.ErrSessionCompleted
	}
	if q.selected == noSelection {
		return q.status, domain.ErrAnswerNotLocked
	}

	if q.index+1 < len(q.quiz.Questions) {
		q.index++
		q.selected = noSelection
		return q.status, nil
	}
	q.status = domain.QuizCompleted
	return q.status, nil
}

func (q *quizSession) snapshot() domain.QuizSnapshot {
	snap := domain.QuizSnapshot{
		QuizID:        q.quiz.ID,
		Status:        q.status,
		QuestionIndex: q.index,
		QuestionCount: len(q.quiz.Questions),
		Score:         q.score,
		PointsAwarded: q.awarded,
	}
	if q.selected != noSelection {
		selected := q.selected
		snap.SelectedOption = &selected
	}
	if q.status == domain.QuizCompleted {
		snap.FinalScore = q.score
	}
	return snap
}
