package domain

import "context"

// WordRepository is the word source: it supplies candidate entries through the
// escalating selection tiers. Each method may return fewer entries than
// requested; escalation across tiers is the quiz service's concern.
type WordRepository interface {
	// GetReviewDueWords returns words whose next review is due for the user.
	GetReviewDueWords(ctx context.Context, userID string, limit int) ([]CandidateWord, error)

	// GetLearningWords returns words the user has started but not learned.
	GetLearningWords(ctx context.Context, userID string, limit int) ([]CandidateWord, error)

	// GetLearnedWords returns words the user has already learned.
	GetLearnedWords(ctx context.Context, userID string, limit int) ([]CandidateWord, error)

	// GetRandomWords returns random words regardless of the user's progress.
	GetRandomWords(ctx context.Context, limit int) ([]CandidateWord, error)

	// ListWords returns a page of the full vocabulary plus the total count.
	ListWords(ctx context.Context, offset, limit int) ([]CandidateWord, int, error)

	// SaveWord persists a new vocabulary entry.
	SaveWord(ctx context.Context, word CandidateWord) error

	// RecordOutcome updates the user's learning progress for a word after an
	// answer has been recorded.
	RecordOutcome(ctx context.Context, userID string, wordID int64, correct bool) error
}

// AttemptRepository is the result reporter: it persists completed quiz
// outcomes and serves attempt history.
type AttemptRepository interface {
	SaveAttempt(ctx context.Context, attempt *QuizAttempt) error
	ListAttempts(ctx context.Context, userID string, offset, limit int) ([]*QuizAttempt, int, error)

	// GetTierAccuracy returns the per-tier average accuracy for a user.
	GetTierAccuracy(ctx context.Context, userID string) (map[SourceTier]float64, error)
}

// SessionStore keeps running quiz sessions between the start and complete
// calls. Sessions are ephemeral; a store may expire them at any time.
type SessionStore interface {
	Save(ctx context.Context, session *QuizSession) error

	// Get returns the session or a SESSION_NOT_FOUND domain error.
	Get(ctx context.Context, sessionID string) (*QuizSession, error)

	Delete(ctx context.Context, sessionID string) error
}

// HintGenerator produces an example sentence for a word, used as feedback
// after a wrong answer. Implementations may call an external model.
type HintGenerator interface {
	ExampleSentence(ctx context.Context, word CandidateWord) (string, error)
}
