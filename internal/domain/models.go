package domain

import "fmt"

// Question is a single multiple-choice catalog entry. Options are ordered and
// exactly one index is correct; Points is the fixed credit for a correct answer.
type Question struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Difficulty   string   `json:"difficulty"`
	Points       int      `json:"points"` // defaults to 1 if zero
}

// Quiz is an ordered, immutable set of questions.
type Quiz struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Reward is a redeemable store entry. Type "badge" grants BadgeToken on redemption.
type Reward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	BadgeToken  string `json:"badgeToken,omitempty"`
	Cost        int    `json:"cost"`
}

// RewardTypeBadge marks rewards that grant a permanent badge.
const RewardTypeBadge = "badge"

// Challenge is a community challenge catalog entry. Prize is paid only on an
// adjudicated win; submission pays the flat configured submission reward.
type Challenge struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Emoji    string `json:"emoji"`
	Prize    int    `json:"prize"`
}

// Validate checks a quiz once at load time so per-access code can trust it.
func (q Quiz) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("quiz: missing id")
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz %s: no questions", q.ID)
	}
	for i, question := range q.Questions {
		if len(question.Options) < 2 {
			return fmt.Errorf("quiz %s question %d: needs at least two options", q.ID, i)
		}
		if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Options) {
			return fmt.Errorf("quiz %s question %d: correct index %d out of range", q.ID, i, question.CorrectIndex)
		}
		if question.Points < 0 {
			return fmt.Errorf("quiz %s question %d: negative points", q.ID, i)
		}
	}
	return nil
}

// Validate checks a reward entry at load time.
func (r Reward) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("reward: missing id")
	}
	if r.Cost < 0 {
		return fmt.Errorf("reward %s: negative cost", r.ID)
	}
	if r.Type == RewardTypeBadge && r.BadgeToken == "" {
		return fmt.Errorf("reward %s: badge reward without token", r.ID)
	}
	return nil
}

// Validate checks a challenge entry at load time.
func (c Challenge) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("challenge: missing id")
	}
	if c.Prize < 0 {
		return fmt.Errorf("challenge %s: negative prize", c.ID)
	}
	return nil
}

// ActionPoints are the fixed credits per user action. They are configuration
// data, injected at startup, never hardcoded by operations.
type ActionPoints struct {
	CreatePost          int
	CreatePostWithMedia int
	LikePost            int
	Comment             int
	ChallengeSubmission int
	ChallengeWin        int
	GameWin             int
	DailyLogin          int
	InviteFriend        int
}

// DefaultActionPoints mirrors the reference configuration.
func DefaultActionPoints() ActionPoints {
	return ActionPoints{
		CreatePost:          10,
		CreatePostWithMedia: 15,
		LikePost:            2,
		Comment:             2,
		ChallengeSubmission: 20,
		ChallengeWin:        150,
		GameWin:             30,
		DailyLogin:          5,
		InviteFriend:        50,
	}
}

// ProfileSnapshot is the read-only view handed to the UI layer.
type ProfileSnapshot struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	DisplayName   string   `json:"displayName"`
	Bio           string   `json:"bio"`
	FavoriteGroup string   `json:"favoriteGroup"`
	JoinedDate    string   `json:"joinedDate"`
	Points        int      `json:"points"`
	Level         int      `json:"level"`
	Badges        []string `json:"badges"`
	PostsCount    int      `json:"postsCount"`
	ChallengesWon int      `json:"challengesWon"`
	GamesWon      int      `json:"gamesWon"`
}

// QuizStatus is the state label of a quiz session.
type QuizStatus string

const (
	QuizInProgress QuizStatus = "in_progress"
	QuizCompleted  QuizStatus = "completed"
)

// QuizSnapshot is a point-in-time view of a quiz session.
type QuizSnapshot struct {
	QuizID        string     `json:"quizId"`
	Status        QuizStatus `json:"status"`
	QuestionIndex int        `json:"questionIndex"`
	QuestionCount int        `json:"questionCount"`
	Score         int        `json:"score"`
	// SelectedOption is nil while the current question is unanswered.
	SelectedOption *int `json:"selectedOption,omitempty"`
	PointsAwarded  int  `json:"pointsAwarded"`
	// FinalScore is meaningful only once Status is completed. It is always
	// serialized so a zero-score completion still carries the field.
	FinalScore int `json:"finalScore"`
}

// AnswerOutcome summarizes a single SelectAnswer transition.
type AnswerOutcome struct {
	QuestionIndex int  `json:"questionIndex"`
	OptionIndex   int  `json:"optionIndex"`
	Correct       bool `json:"correct"`
	Awarded       int  `json:"awarded"`
	Score         int  `json:"score"`
	Balance       int  `json:"balance"`
}

// RedeemOutcome summarizes a successful redemption.
type RedeemOutcome struct {
	RewardID    string      `json:"rewardId"`
	Cost        int         `json:"cost"`
	Balance     int         `json:"balance"`
	BadgeToken  string      `json:"badgeToken,omitempty"`
	BadgeResult AwardResult `json:"badgeResult,omitempty"`
}
