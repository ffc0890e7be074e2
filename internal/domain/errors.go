package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Quiz specific errors
	CodeInsufficientWords  ErrorCode = "INSUFFICIENT_WORDS"
	CodeInvalidAnswerIndex ErrorCode = "INVALID_ANSWER_INDEX"
	CodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"
	CodeDuplicateAnswer    ErrorCode = "DUPLICATE_ANSWER"
	CodeHintServiceError   ErrorCode = "HINT_SERVICE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"details,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is/As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Details: e.Context,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

// NewInsufficientWordsError is returned when the deduplicated candidate pool
// is smaller than the minimum needed to build one well-formed question.
func NewInsufficientWordsError(poolSize, minimum int) *DomainError {
	err := NewError(CodeInsufficientWords,
		fmt.Sprintf("word pool has %d unique entries, need at least %d", poolSize, minimum), nil)
	err.Context = map[string]interface{}{"pool_size": poolSize, "minimum": minimum}
	return err
}

// NewInvalidAnswerIndexError indicates a caller bug: the selected option
// index is outside the question's option range.
func NewInvalidAnswerIndexError(index, optionCount int) *DomainError {
	err := NewError(CodeInvalidAnswerIndex,
		fmt.Sprintf("selected index %d is out of range [0, %d)", index, optionCount), nil)
	err.Context = map[string]interface{}{"selected_index": index, "option_count": optionCount}
	return err
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("quiz session not found: %s", sessionID), nil)
}

func NewDuplicateAnswerError(questionID int64) *DomainError {
	return NewError(CodeDuplicateAnswer,
		fmt.Sprintf("question %d has already been answered in this session", questionID), nil)
}

func NewHintServiceError(cause error) *DomainError {
	return NewError(CodeHintServiceError, "Failed to generate hint", cause)
}

// ValidationError represents a single failed request-level check.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates request validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d, got %d", min, max, value)}
}
