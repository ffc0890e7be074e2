package repository

import (
	"context"
	"fmt"
	"time"

	"kazvocab/internal/domain"
	"kazvocab/internal/repository/models"
	"kazvocab/internal/util"

	"github.com/jmoiron/sqlx"
)

// AttemptDatabaseAdapter implements domain.AttemptRepository using sqlx.
type AttemptDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAttemptDatabaseAdapter creates a new instance of AttemptDatabaseAdapter.
func NewAttemptDatabaseAdapter(db *sqlx.DB) domain.AttemptRepository {
	return &AttemptDatabaseAdapter{db: db}
}

func toModelResults(results []domain.AnswerResult) models.AnswerResultSlice {
	out := make(models.AnswerResultSlice, 0, len(results))
	for _, r := range results {
		out = append(out, models.AnswerResultRecord{
			QuestionID:    r.QuestionID,
			SelectedIndex: r.SelectedIndex,
			IsCorrect:     r.IsCorrect,
			TimeSpentMs:   r.TimeSpentMs,
		})
	}
	return out
}

func toDomainAttempt(m *models.QuizAttempt) *domain.QuizAttempt {
	if m == nil {
		return nil
	}

	results := make([]domain.AnswerResult, 0, len(m.Results))
	for _, r := range m.Results {
		results = append(results, domain.AnswerResult{
			QuestionID:    r.QuestionID,
			SelectedIndex: r.SelectedIndex,
			IsCorrect:     r.IsCorrect,
			TimeSpentMs:   r.TimeSpentMs,
		})
	}

	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &domain.QuizAttempt{
		ID:              m.ID,
		UserID:          m.UserID,
		Tier:            domain.SourceTier(m.SourceTier),
		Correct:         m.CorrectCount,
		Total:           m.TotalCount,
		AccuracyPercent: m.AccuracyPercent,
		Results:         results,
		AttemptedAt:     m.AttemptedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}

// SaveAttempt implements domain.AttemptRepository.
func (a *AttemptDatabaseAdapter) SaveAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if err := attempt.Validate(); err != nil {
		return err
	}

	now := time.Now()
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	if attempt.AttemptedAt.IsZero() {
		attempt.AttemptedAt = now
	}

	row := &models.QuizAttempt{
		ID:              attempt.ID,
		UserID:          attempt.UserID,
		SourceTier:      string(attempt.Tier),
		CorrectCount:    attempt.Correct,
		TotalCount:      attempt.Total,
		AccuracyPercent: attempt.AccuracyPercent,
		Results:         toModelResults(attempt.Results),
		AttemptedAt:     attempt.AttemptedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	query := `INSERT INTO quiz_attempts (ID, USER_ID, SOURCE_TIER, CORRECT_COUNT, TOTAL_COUNT, ACCURACY_PERCENT, RESULTS, ATTEMPTED_AT, CREATED_AT, UPDATED_AT)
	          VALUES (:ID, :USER_ID, :SOURCE_TIER, :CORRECT_COUNT, :TOTAL_COUNT, :ACCURACY_PERCENT, :RESULTS, :ATTEMPTED_AT, :CREATED_AT, :UPDATED_AT)`

	if _, err := a.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save quiz attempt: %w", err)
	}
	return nil
}

// ListAttempts implements domain.AttemptRepository.
func (a *AttemptDatabaseAdapter) ListAttempts(ctx context.Context, userID string, offset, limit int) ([]*domain.QuizAttempt, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM quiz_attempts WHERE USER_ID = :user_id AND DELETED_AT IS NULL`
	countStmt, err := a.db.PrepareNamedContext(ctx, countQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to prepare attempt count: %w", err)
	}
	defer countStmt.Close()
	if err := countStmt.GetContext(ctx, &total, map[string]interface{}{"user_id": userID}); err != nil {
		return nil, 0, fmt.Errorf("failed to count attempts: %w", err)
	}

	query := `SELECT ID, USER_ID, SOURCE_TIER, CORRECT_COUNT, TOTAL_COUNT, ACCURACY_PERCENT, RESULTS, ATTEMPTED_AT, CREATED_AT, UPDATED_AT, DELETED_AT
	FROM quiz_attempts
	WHERE USER_ID = :user_id AND DELETED_AT IS NULL
	ORDER BY ATTEMPTED_AT DESC
	OFFSET :off ROWS FETCH NEXT :lim ROWS ONLY`

	stmt, err := a.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to prepare attempt query: %w", err)
	}
	defer stmt.Close()

	var rows []models.QuizAttempt
	if err := stmt.SelectContext(ctx, &rows, map[string]interface{}{
		"user_id": userID,
		"off":     offset,
		"lim":     limit,
	}); err != nil {
		return nil, 0, fmt.Errorf("failed to query attempts: %w", err)
	}

	attempts := make([]*domain.QuizAttempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainAttempt(&rows[i]))
	}
	return attempts, total, nil
}

// GetTierAccuracy implements domain.AttemptRepository.
func (a *AttemptDatabaseAdapter) GetTierAccuracy(ctx context.Context, userID string) (map[domain.SourceTier]float64, error) {
	query := `SELECT SOURCE_TIER, AVG(ACCURACY_PERCENT) AVG_ACCURACY
	FROM quiz_attempts
	WHERE USER_ID = :user_id AND DELETED_AT IS NULL
	GROUP BY SOURCE_TIER`

	stmt, err := a.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare tier accuracy query: %w", err)
	}
	defer stmt.Close()

	var rows []struct {
		SourceTier  string  `db:"SOURCE_TIER"`
		AvgAccuracy float64 `db:"AVG_ACCURACY"`
	}
	if err := stmt.SelectContext(ctx, &rows, map[string]interface{}{"user_id": userID}); err != nil {
		return nil, fmt.Errorf("failed to query tier accuracy: %w", err)
	}

	out := make(map[domain.SourceTier]float64, len(rows))
	for _, r := range rows {
		out[domain.SourceTier(r.SourceTier)] = r.AvgAccuracy
	}
	return out, nil
}
