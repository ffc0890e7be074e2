package dto

import "kazvocab/internal/domain"

// WordResponse represents a vocabulary entry in the API response
// @Description Vocabulary entry
type WordResponse struct {
	ID          int64  `json:"id"`
	KazakhWord  string `json:"kazakh_word"`
	Translation string `json:"translation"`
}

// WordListResponse represents a page of the vocabulary.
type WordListResponse struct {
	Words          []WordResponse `json:"words"`
	PaginationInfo PaginationInfo `json:"pagination_info"`
}

// StartQuizRequest represents the body of a quiz start request
// @Description Request body for starting a quiz session
type StartQuizRequest struct {
	Count int    `json:"count"`          // Number of questions; 0 uses the server default
	Tier  string `json:"tier,omitempty"` // Preferred selection tier: review, learning, learned, random
}

// QuestionResponse represents one question as presented to the client. The
// correct index is withheld until the answer is submitted.
type QuestionResponse struct {
	ID      int64    `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Type    string   `json:"type"`
}

// StartQuizResponse represents a freshly created quiz session
// @Description Response body for a started quiz session
type StartQuizResponse struct {
	SessionID string             `json:"session_id"`
	Tier      string             `json:"source_tier"`
	Questions []QuestionResponse `json:"questions"`
}

// SubmitAnswerRequest represents a single answer submission
// @Description Request body for answering one question
type SubmitAnswerRequest struct {
	SessionID     string `json:"session_id" validate:"required"`
	QuestionID    int64  `json:"question_id"`
	SelectedIndex int    `json:"selected_index"`
	TimeSpentMs   int64  `json:"time_spent_ms"`
}

// SubmitAnswerResponse represents the outcome of one answer
type SubmitAnswerResponse struct {
	QuestionID    int64  `json:"question_id"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectIndex  int    `json:"correct_index"`
	CorrectAnswer string `json:"correct_answer"`
	Hint          string `json:"hint,omitempty"` // Example sentence shown after a wrong answer
}

// CompleteQuizRequest represents the body of a quiz completion request
type CompleteQuizRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// CompleteQuizResponse represents the final score of a finished session
// @Description Response body for a completed quiz session
type CompleteQuizResponse struct {
	SessionID       string `json:"session_id"`
	Correct         int    `json:"correct"`
	Total           int    `json:"total"`
	AccuracyPercent int    `json:"accuracy_percent"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewQuestionResponse converts a domain question for presentation.
func NewQuestionResponse(q domain.QuizQuestion) QuestionResponse {
	return QuestionResponse{
		ID:      q.ID,
		Prompt:  q.Prompt,
		Options: q.Options,
		Type:    string(q.Type),
	}
}

// NewWordResponse converts a domain candidate word for presentation.
func NewWordResponse(w domain.CandidateWord) WordResponse {
	return WordResponse{
		ID:          w.ID,
		KazakhWord:  w.KazakhWord,
		Translation: w.Translation,
	}
}
