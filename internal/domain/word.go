package domain

// SourceTier identifies the selection strategy that supplied a quiz's word pool.
type SourceTier string

const (
	TierReview   SourceTier = "review"
	TierLearning SourceTier = "learning"
	TierLearned  SourceTier = "learned"
	TierRandom   SourceTier = "random"
	// TierMixed marks sessions whose pool was accumulated across more than one tier.
	TierMixed SourceTier = "mixed"
)

// IsValid reports whether the tier is one of the known selection strategies.
func (t SourceTier) IsValid() bool {
	switch t {
	case TierReview, TierLearning, TierLearned, TierRandom, TierMixed:
		return true
	}
	return false
}

// CandidateWord is a vocabulary entry eligible to appear in a quiz.
// Immutable once fetched from the word source.
type CandidateWord struct {
	ID          int64
	KazakhWord  string
	Translation string
}

// Validate validates the candidate word
func (w CandidateWord) Validate() error {
	if w.KazakhWord == "" {
		return NewValidationError("kazakh_word is required")
	}
	if w.Translation == "" {
		return NewValidationError("translation is required")
	}
	return nil
}
