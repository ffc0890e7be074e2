package service

import (
	"context"
	"time"

	"kazvocab/internal/domain"
	"kazvocab/internal/repository/models"

	"github.com/stretchr/testify/mock"
)

// --- MockWordRepository ---
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) GetReviewDueWords(ctx context.Context, userID string, limit int) ([]domain.CandidateWord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateWord), args.Error(1)
}

func (m *MockWordRepository) GetLearningWords(ctx context.Context, userID string, limit int) ([]domain.CandidateWord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateWord), args.Error(1)
}

func (m *MockWordRepository) GetLearnedWords(ctx context.Context, userID string, limit int) ([]domain.CandidateWord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateWord), args.Error(1)
}

func (m *MockWordRepository) GetRandomWords(ctx context.Context, limit int) ([]domain.CandidateWord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateWord), args.Error(1)
}

func (m *MockWordRepository) ListWords(ctx context.Context, offset, limit int) ([]domain.CandidateWord, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CandidateWord), args.Int(1), args.Error(2)
}

func (m *MockWordRepository) SaveWord(ctx context.Context, word domain.CandidateWord) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *MockWordRepository) RecordOutcome(ctx context.Context, userID string, wordID int64, correct bool) error {
	args := m.Called(ctx, userID, wordID, correct)
	return args.Error(0)
}

// --- MockAttemptRepository ---
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) SaveAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) ListAttempts(ctx context.Context, userID string, offset, limit int) ([]*domain.QuizAttempt, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.QuizAttempt), args.Int(1), args.Error(2)
}

func (m *MockAttemptRepository) GetTierAccuracy(ctx context.Context, userID string) (map[domain.SourceTier]float64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.SourceTier]float64), args.Error(1)
}

// --- MockSessionStore ---
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, session *domain.QuizSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizSession), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// --- MockHintGenerator ---
type MockHintGenerator struct {
	mock.Mock
}

func (m *MockHintGenerator) ExampleSentence(ctx context.Context, word domain.CandidateWord) (string, error) {
	args := m.Called(ctx, word)
	return args.String(0), args.Error(1)
}

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	args := m.Called(ctx, key, expiration)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
