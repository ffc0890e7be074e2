package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AnswerResultRecord is the serialized form of one answered question inside a
// quiz attempt row.
type AnswerResultRecord struct {
	QuestionID    int64 `json:"question_id"`
	SelectedIndex int   `json:"selected_index"`
	IsCorrect     bool  `json:"is_correct"`
	TimeSpentMs   int64 `json:"time_spent_ms"`
}

// AnswerResultSlice stores a slice of answer results as a JSON CLOB column.
type AnswerResultSlice []AnswerResultRecord

// Value implements the driver.Valuer interface
func (s AnswerResultSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *AnswerResultSlice) Scan(value interface{}) error {
	if value == nil {
		*s = AnswerResultSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("AnswerResultSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = AnswerResultSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// QuizAttempt is the durable record of a completed quiz session.
type QuizAttempt struct {
	ID              string            `db:"ID"` // ULID
	UserID          string            `db:"USER_ID"`
	SourceTier      string            `db:"SOURCE_TIER"`
	CorrectCount    int               `db:"CORRECT_COUNT"`
	TotalCount      int               `db:"TOTAL_COUNT"`
	AccuracyPercent int               `db:"ACCURACY_PERCENT"`
	Results         AnswerResultSlice `db:"RESULTS"`
	AttemptedAt     time.Time         `db:"ATTEMPTED_AT"`
	CreatedAt       time.Time         `db:"CREATED_AT"`
	UpdatedAt       time.Time         `db:"UPDATED_AT"`
	DeletedAt       sql.NullTime      `db:"DELETED_AT"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
