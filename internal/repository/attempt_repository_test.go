package repository

import (
	"context"
	"testing"
	"time"

	"kazvocab/internal/domain"
	"kazvocab/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainAttempt(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	model := &models.QuizAttempt{
		ID:              "01HXATTEMPT000000000000001",
		UserID:          "user1",
		SourceTier:      string(domain.TierReview),
		CorrectCount:    2,
		TotalCount:      3,
		AccuracyPercent: 67,
		Results: models.AnswerResultSlice{
			{QuestionID: 1, SelectedIndex: 0, IsCorrect: true, TimeSpentMs: 1500},
			{QuestionID: 2, SelectedIndex: 3, IsCorrect: false, TimeSpentMs: 4200},
		},
		AttemptedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	attempt := toDomainAttempt(model)

	require.NotNil(t, attempt)
	assert.Equal(t, model.ID, attempt.ID)
	assert.Equal(t, domain.TierReview, attempt.Tier)
	assert.Equal(t, 2, attempt.Correct)
	assert.Equal(t, 3, attempt.Total)
	assert.Equal(t, 67, attempt.AccuracyPercent)
	require.Len(t, attempt.Results, 2)
	assert.Equal(t, int64(1), attempt.Results[0].QuestionID)
	assert.True(t, attempt.Results[0].IsCorrect)
	assert.Equal(t, int64(4200), attempt.Results[1].TimeSpentMs)
	assert.Nil(t, attempt.DeletedAt)

	assert.Nil(t, toDomainAttempt(nil))
}

func TestSaveAttempt(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)

	mock.ExpectExec(`INSERT INTO quiz_attempts`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	attempt := &domain.QuizAttempt{
		UserID:          "user1",
		Tier:            domain.TierRandom,
		Correct:         3,
		Total:           4,
		AccuracyPercent: 75,
		Results: []domain.AnswerResult{
			{QuestionID: 1, SelectedIndex: 1, IsCorrect: true, TimeSpentMs: 900},
		},
	}

	err := repo.SaveAttempt(context.Background(), attempt)

	assert.NoError(t, err)
	assert.NotEmpty(t, attempt.ID, "a missing ID should be assigned on save")
	assert.False(t, attempt.AttemptedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAttemptRejectsInvalid(t *testing.T) {
	db, _ := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)

	err := repo.SaveAttempt(context.Background(), &domain.QuizAttempt{
		UserID:  "",
		Tier:    domain.TierRandom,
		Correct: 1,
		Total:   4,
	})

	assert.Error(t, err)
}

func TestListAttempts(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"ID", "USER_ID", "SOURCE_TIER", "CORRECT_COUNT", "TOTAL_COUNT", "ACCURACY_PERCENT", "RESULTS", "ATTEMPTED_AT", "CREATED_AT", "UPDATED_AT", "DELETED_AT"}).
		AddRow("01HXATTEMPT000000000000001", "user1", string(domain.TierLearning), 4, 5, 80,
			[]byte(`[{"question_id":1,"selected_index":2,"is_correct":true,"time_spent_ms":1100}]`),
			now, now, now, nil)

	mock.ExpectPrepare(`SELECT COUNT\(\*\) FROM quiz_attempts`).
		ExpectQuery().
		WithArgs("user1").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))
	mock.ExpectPrepare(`ORDER BY ATTEMPTED_AT DESC`).
		ExpectQuery().
		WithArgs("user1", 0, 10).
		WillReturnRows(rows)

	attempts, total, err := repo.ListAttempts(context.Background(), "user1", 0, 10)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, attempts, 1)
	assert.Equal(t, domain.TierLearning, attempts[0].Tier)
	require.Len(t, attempts[0].Results, 1)
	assert.Equal(t, int64(1), attempts[0].Results[0].QuestionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTierAccuracy(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)

	mock.ExpectPrepare(`GROUP BY SOURCE_TIER`).
		ExpectQuery().
		WithArgs("user1").
		WillReturnRows(sqlmock.NewRows([]string{"SOURCE_TIER", "AVG_ACCURACY"}).
			AddRow(string(domain.TierReview), 72.5).
			AddRow(string(domain.TierRandom), 90.0))

	accuracy, err := repo.GetTierAccuracy(context.Background(), "user1")

	assert.NoError(t, err)
	require.Len(t, accuracy, 2)
	assert.InDelta(t, 72.5, accuracy[domain.TierReview], 0.001)
	assert.InDelta(t, 90.0, accuracy[domain.TierRandom], 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}
