package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"kazvocab/internal/domain"
	"kazvocab/internal/repository/models"
	"kazvocab/internal/util"

	"github.com/jmoiron/sqlx"
)

const wordColumns = `ID, KAZAKH_WORD, TRANSLATION, CREATED_AT, UPDATED_AT, DELETED_AT`

// maxReviewIntervalDays caps the doubling review schedule.
const maxReviewIntervalDays = 64

// learnedThreshold is the correct-answer count after which a word counts as learned.
const learnedThreshold = 5

// WordDatabaseAdapter implements domain.WordRepository using sqlx.
type WordDatabaseAdapter struct {
	db *sqlx.DB
}

// NewWordDatabaseAdapter creates a new instance of WordDatabaseAdapter.
func NewWordDatabaseAdapter(db *sqlx.DB) domain.WordRepository {
	return &WordDatabaseAdapter{db: db}
}

func toDomainWord(m *models.Word) domain.CandidateWord {
	return domain.CandidateWord{
		ID:          m.ID,
		KazakhWord:  m.KazakhWord,
		Translation: m.Translation,
	}
}

func toDomainWords(ms []models.Word) []domain.CandidateWord {
	out := make([]domain.CandidateWord, 0, len(ms))
	for i := range ms {
		out = append(out, toDomainWord(&ms[i]))
	}
	return out
}

// GetReviewDueWords implements domain.WordRepository.
func (a *WordDatabaseAdapter) GetReviewDueWords(ctx context.Context, userID string, limit int) ([]domain.CandidateWord, error) {
	query := fmt.Sprintf(`SELECT w.%s
	FROM words w
	JOIN word_progress p ON p.WORD_ID = w.ID
	WHERE p.USER_ID = :user_id
	  AND p.NEXT_REVIEW_AT IS NOT NULL
	  AND p.NEXT_REVIEW_AT <= :now
	  AND w.DELETED_AT IS NULL
	ORDER BY p.NEXT_REVIEW_AT
	FETCH FIRST :lim ROWS ONLY`, wordColumns)

	return a.queryWords(ctx, query, map[string]interface{}{
		"user_id": userID,
		"now":     time.Now(),
		"lim":     limit,
	})
}

// GetLearningWords implements domain.WordRepository.
func (a *WordDatabaseAdapter) GetLearningWords(ctx context.Context, userID string, limit int) ([]domain.CandidateWord, error) {
	return a.getWordsByStatus(ctx, userID, models.ProgressStatusLearning, limit)
}

// GetLearnedWords implements domain.WordRepository.
func (a *WordDatabaseAdapter) GetLearnedWords(ctx context.Context, userID string, limit int) ([]domain.CandidateWord, error) {
	return a.getWordsByStatus(ctx, userID, models.ProgressStatusLearned, limit)
}

func (a *WordDatabaseAdapter) getWordsByStatus(ctx context.Context, userID, status string, limit int) ([]domain.CandidateWord, error) {
	query := fmt.Sprintf(`SELECT w.%s
	FROM words w
	JOIN word_progress p ON p.WORD_ID = w.ID
	WHERE p.USER_ID = :user_id
	  AND p.STATUS = :status
	  AND w.DELETED_AT IS NULL
	ORDER BY p.UPDATED_AT DESC
	FETCH FIRST :lim ROWS ONLY`, wordColumns)

	return a.queryWords(ctx, query, map[string]interface{}{
		"user_id": userID,
		"status":  status,
		"lim":     limit,
	})
}

// GetRandomWords implements domain.WordRepository.
func (a *WordDatabaseAdapter) GetRandomWords(ctx context.Context, limit int) ([]domain.CandidateWord, error) {
	query := fmt.Sprintf(`SELECT %s
	FROM words
	WHERE DELETED_AT IS NULL
	ORDER BY DBMS_RANDOM.VALUE
	FETCH FIRST :lim ROWS ONLY`, wordColumns)

	return a.queryWords(ctx, query, map[string]interface{}{"lim": limit})
}

// ListWords implements domain.WordRepository.
func (a *WordDatabaseAdapter) ListWords(ctx context.Context, offset, limit int) ([]domain.CandidateWord, int, error) {
	var total int
	if err := a.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM words WHERE DELETED_AT IS NULL`); err != nil {
		return nil, 0, fmt.Errorf("failed to count words: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s
	FROM words
	WHERE DELETED_AT IS NULL
	ORDER BY ID
	OFFSET :off ROWS FETCH NEXT :lim ROWS ONLY`, wordColumns)

	words, err := a.queryWords(ctx, query, map[string]interface{}{"off": offset, "lim": limit})
	if err != nil {
		return nil, 0, err
	}
	return words, total, nil
}

// SaveWord implements domain.WordRepository.
func (a *WordDatabaseAdapter) SaveWord(ctx context.Context, word domain.CandidateWord) error {
	if err := word.Validate(); err != nil {
		return err
	}

	now := time.Now()
	query := `INSERT INTO words (ID, KAZAKH_WORD, TRANSLATION, CREATED_AT, UPDATED_AT)
	          VALUES (:id, :kazakh_word, :translation, :created_at, :updated_at)`

	_, err := a.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":          word.ID,
		"kazakh_word": word.KazakhWord,
		"translation": word.Translation,
		"created_at":  now,
		"updated_at":  now,
	})
	if err != nil {
		return fmt.Errorf("failed to save word %d: %w", word.ID, err)
	}
	return nil
}

// RecordOutcome implements domain.WordRepository. It upserts the user's
// progress row: correct answers double the review interval and eventually
// promote the word to learned; wrong answers schedule a next-day review.
func (a *WordDatabaseAdapter) RecordOutcome(ctx context.Context, userID string, wordID int64, correct bool) error {
	var progress models.WordProgress
	selectQuery := `SELECT ID, USER_ID, WORD_ID, STATUS, CORRECT_COUNT, WRONG_COUNT, NEXT_REVIEW_AT, CREATED_AT, UPDATED_AT
	FROM word_progress WHERE USER_ID = :user_id AND WORD_ID = :word_id`

	stmt, err := a.db.PrepareNamedContext(ctx, selectQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare progress lookup: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &progress, map[string]interface{}{"user_id": userID, "word_id": wordID})
	now := time.Now()
	switch {
	case errors.Is(err, sql.ErrNoRows):
		progress = models.WordProgress{
			ID:        util.NewULID(),
			UserID:    userID,
			WordID:    wordID,
			Status:    models.ProgressStatusLearning,
			CreatedAt: now,
		}
		applyOutcome(&progress, correct, now)
		insertQuery := `INSERT INTO word_progress (ID, USER_ID, WORD_ID, STATUS, CORRECT_COUNT, WRONG_COUNT, NEXT_REVIEW_AT, CREATED_AT, UPDATED_AT)
		VALUES (:ID, :USER_ID, :WORD_ID, :STATUS, :CORRECT_COUNT, :WRONG_COUNT, :NEXT_REVIEW_AT, :CREATED_AT, :UPDATED_AT)`
		if _, err := a.db.NamedExecContext(ctx, insertQuery, &progress); err != nil {
			return fmt.Errorf("failed to insert word progress: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to load word progress: %w", err)
	}

	applyOutcome(&progress, correct, now)
	updateQuery := `UPDATE word_progress SET
		STATUS = :STATUS,
		CORRECT_COUNT = :CORRECT_COUNT,
		WRONG_COUNT = :WRONG_COUNT,
		NEXT_REVIEW_AT = :NEXT_REVIEW_AT,
		UPDATED_AT = :UPDATED_AT
	WHERE ID = :ID`
	if _, err := a.db.NamedExecContext(ctx, updateQuery, &progress); err != nil {
		return fmt.Errorf("failed to update word progress: %w", err)
	}
	return nil
}

func applyOutcome(p *models.WordProgress, correct bool, now time.Time) {
	if correct {
		p.CorrectCount++
		interval := 1 << uint(p.CorrectCount)
		if interval > maxReviewIntervalDays {
			interval = maxReviewIntervalDays
		}
		p.NextReviewAt = util.TimeToNullTime(now.AddDate(0, 0, interval))
		if p.CorrectCount >= learnedThreshold {
			p.Status = models.ProgressStatusLearned
		}
	} else {
		p.WrongCount++
		p.Status = models.ProgressStatusLearning
		p.NextReviewAt = util.TimeToNullTime(now.AddDate(0, 0, 1))
	}
	p.UpdatedAt = now
}

func (a *WordDatabaseAdapter) queryWords(ctx context.Context, query string, args map[string]interface{}) ([]domain.CandidateWord, error) {
	stmt, err := a.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare word query: %w", err)
	}
	defer stmt.Close()

	var rows []models.Word
	if err := stmt.SelectContext(ctx, &rows, args); err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	return toDomainWords(rows), nil
}
