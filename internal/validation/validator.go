package validation

import (
	"regexp"
	"strings"

	"kazvocab/internal/domain"
)

// DefaultMaxQuestionCount caps a single quiz start request when no limit is
// configured.
const DefaultMaxQuestionCount = 50

var validTiers = map[string]bool{
	string(domain.TierReview):   true,
	string(domain.TierLearning): true,
	string(domain.TierLearned):  true,
	string(domain.TierRandom):   true,
}

// Validator provides request validation functionality
type Validator struct {
	maxQuestionCount int
}

// NewValidator creates a new validator instance. The question count bound
// should match quiz.max_question_count so requests the service would clamp are
// rejected up front; a non-positive value falls back to the default.
func NewValidator(maxQuestionCount int) *Validator {
	if maxQuestionCount <= 0 {
		maxQuestionCount = DefaultMaxQuestionCount
	}
	return &Validator{maxQuestionCount: maxQuestionCount}
}

// ValidateStartQuizRequest validates a quiz start request. A zero count is
// allowed and means "use the server default".
func (v *Validator) ValidateStartQuizRequest(count int, tier string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if count < 0 || count > v.maxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("count", count, 0, v.maxQuestionCount))
	}
	if tier != "" && !validTiers[tier] {
		errors = append(errors, domain.NewInvalidFormatError("tier", tier))
	}

	return errors
}

// ValidateSubmitAnswerRequest validates an answer submission.
func (v *Validator) ValidateSubmitAnswerRequest(sessionID string, questionID int64, selectedIndex int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = append(errors, v.validateSessionID(sessionID)...)
	if questionID <= 0 {
		errors = append(errors, domain.NewInvalidFormatError("question_id", "must be a positive word id"))
	}
	if selectedIndex < 0 {
		errors = append(errors, domain.NewOutOfRangeError("selected_index", selectedIndex, 0, 3))
	}

	return errors
}

// ValidateCompleteQuizRequest validates a quiz completion request.
func (v *Validator) ValidateCompleteQuizRequest(sessionID string) domain.ValidationErrors {
	return v.validateSessionID(sessionID)
}

func (v *Validator) validateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !isValidULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
