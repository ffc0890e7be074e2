package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kazvocab/internal/cache"
	"kazvocab/internal/domain"
	"kazvocab/internal/logger"

	"go.uber.org/zap"
)

// cacheSessionStore keeps quiz sessions as JSON values in the shared cache.
// Sessions expire after the configured TTL; an expired session surfaces as
// SESSION_NOT_FOUND to the caller.
type cacheSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewCacheSessionStore creates a SessionStore backed by the given cache.
func NewCacheSessionStore(c domain.Cache, ttl time.Duration) domain.SessionStore {
	return &cacheSessionStore{cache: c, ttl: ttl}
}

func sessionCacheKey(sessionID string) string {
	return cache.GenerateCacheKey("quiz", "session", sessionID)
}

func (s *cacheSessionStore) Save(ctx context.Context, session *domain.QuizSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal quiz session %s: %w", session.ID, err)
	}
	if err := s.cache.Set(ctx, sessionCacheKey(session.ID), string(payload), s.ttl); err != nil {
		return fmt.Errorf("failed to store quiz session %s: %w", session.ID, err)
	}
	return nil
}

func (s *cacheSessionStore) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	raw, err := s.cache.Get(ctx, sessionCacheKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		return nil, fmt.Errorf("failed to load quiz session %s: %w", sessionID, err)
	}

	var session domain.QuizSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		// A corrupt entry is unrecoverable; drop it so the client can restart.
		logger.Get().Warn("Discarding corrupt quiz session",
			zap.String("sessionID", sessionID), zap.Error(err))
		_ = s.cache.Delete(ctx, sessionCacheKey(sessionID))
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return &session, nil
}

func (s *cacheSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, sessionCacheKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete quiz session %s: %w", sessionID, err)
	}
	return nil
}
