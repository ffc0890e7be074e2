package models

import (
	"database/sql"
	"time"
)

// Word is a vocabulary entry row.
type Word struct {
	ID          int64        `db:"ID"`
	KazakhWord  string       `db:"KAZAKH_WORD"`
	Translation string       `db:"TRANSLATION"`
	CreatedAt   time.Time    `db:"CREATED_AT"`
	UpdatedAt   time.Time    `db:"UPDATED_AT"`
	DeletedAt   sql.NullTime `db:"DELETED_AT"`
}

func (Word) TableName() string {
	return "words"
}

// Word learning states tracked per user.
const (
	ProgressStatusLearning = "learning"
	ProgressStatusLearned  = "learned"
)

// WordProgress tracks one user's learning state for one word.
type WordProgress struct {
	ID           string       `db:"ID"` // ULID
	UserID       string       `db:"USER_ID"`
	WordID       int64        `db:"WORD_ID"`
	Status       string       `db:"STATUS"`
	CorrectCount int          `db:"CORRECT_COUNT"`
	WrongCount   int          `db:"WRONG_COUNT"`
	NextReviewAt sql.NullTime `db:"NEXT_REVIEW_AT"`
	CreatedAt    time.Time    `db:"CREATED_AT"`
	UpdatedAt    time.Time    `db:"UPDATED_AT"`
}

func (WordProgress) TableName() string {
	return "word_progress"
}
