package domain

import "time"

// QuestionType enumerates the supported question formats.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
)

// QuizQuestion is one generated multiple-choice question. The ID equals the
// source CandidateWord's ID and Options[CorrectIndex] is the word's true
// translation. Created once per generation call; immutable thereafter.
type QuizQuestion struct {
	ID           int64        `json:"id"`
	Prompt       string       `json:"prompt"`
	Options      []string     `json:"options"`
	CorrectIndex int          `json:"correct_index"`
	Type         QuestionType `json:"type"`
}

// AnswerResult records a single submitted answer. Appended to the session's
// results sequence; never mutated.
type AnswerResult struct {
	QuestionID    int64 `json:"question_id"`
	SelectedIndex int   `json:"selected_index"`
	IsCorrect     bool  `json:"is_correct"`
	TimeSpentMs   int64 `json:"time_spent_ms"`
}

// QuizSummary aggregates a session's results.
type QuizSummary struct {
	Correct         int `json:"correct"`
	Total           int `json:"total"`
	AccuracyPercent int `json:"accuracy_percent"`
}

// QuizSession is the request-local state of one running quiz. It is created
// at generation time, grows as answers arrive and is discarded once the
// outcome has been reported.
type QuizSession struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Tier      SourceTier     `json:"source_tier"`
	Questions []QuizQuestion `json:"questions"`
	Results   []AnswerResult `json:"results"`
	CreatedAt time.Time      `json:"created_at"`
}

// QuestionByID returns the session question with the given ID, or nil.
func (s *QuizSession) QuestionByID(questionID int64) *QuizQuestion {
	for i := range s.Questions {
		if s.Questions[i].ID == questionID {
			return &s.Questions[i]
		}
	}
	return nil
}

// HasResult reports whether the question has already been answered.
func (s *QuizSession) HasResult(questionID int64) bool {
	for _, r := range s.Results {
		if r.QuestionID == questionID {
			return true
		}
	}
	return false
}

// Completed reports whether every question has a recorded result.
func (s *QuizSession) Completed() bool {
	return len(s.Results) >= len(s.Questions)
}

// QuizAttempt is the durable record of a completed session, persisted by the
// attempt repository.
type QuizAttempt struct {
	ID              string
	UserID          string
	Tier            SourceTier
	Correct         int
	Total           int
	AccuracyPercent int
	Results         []AnswerResult
	AttemptedAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// Validate validates the attempt before persistence.
func (a *QuizAttempt) Validate() error {
	if a.UserID == "" {
		return NewValidationError("user ID is required")
	}
	if !a.Tier.IsValid() {
		return NewValidationError("source tier is invalid")
	}
	if a.Correct > a.Total {
		return NewValidationError("correct count exceeds total")
	}
	return nil
}
