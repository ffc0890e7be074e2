package service

import (
	"context"
	"fmt"
	"time"

	"kazvocab/internal/config"
	"kazvocab/internal/domain"
	"kazvocab/internal/dto"
	"kazvocab/internal/logger"
	"kazvocab/internal/quizgen"
	"kazvocab/internal/util"

	"go.uber.org/zap"
)

// QuizService drives the quiz lifecycle: start a session, collect answers,
// and close it out with a score.
type QuizService interface {
	StartQuiz(ctx context.Context, userID string, req dto.StartQuizRequest) (*dto.StartQuizResponse, error)
	SubmitAnswer(ctx context.Context, userID string, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	CompleteQuiz(ctx context.Context, userID string, sessionID string) (*dto.CompleteQuizResponse, error)
}

type quizServiceImpl struct {
	generator *quizgen.Generator
	wordRepo  domain.WordRepository
	attempts  domain.AttemptRepository
	sessions  domain.SessionStore
	hints     domain.HintGenerator // may be nil when hints are disabled
	cfg       *config.Config
}

// NewQuizService creates a new instance of QuizService.
func NewQuizService(
	generator *quizgen.Generator,
	wordRepo domain.WordRepository,
	attempts domain.AttemptRepository,
	sessions domain.SessionStore,
	hints domain.HintGenerator,
	cfg *config.Config,
) QuizService {
	return &quizServiceImpl{
		generator: generator,
		wordRepo:  wordRepo,
		attempts:  attempts,
		sessions:  sessions,
		hints:     hints,
		cfg:       cfg,
	}
}

// tierFetch pairs a tier label with the repository call that serves it.
type tierFetch struct {
	tier  domain.SourceTier
	fetch func(ctx context.Context, limit int) ([]domain.CandidateWord, error)
}

// StartQuiz assembles a word pool, generates questions and stores a new
// session. The pool is accumulated tier by tier until it can support the
// requested question count.
func (s *quizServiceImpl) StartQuiz(ctx context.Context, userID string, req dto.StartQuizRequest) (*dto.StartQuizResponse, error) {
	count := req.Count
	if count <= 0 {
		count = s.cfg.Quiz.DefaultQuestionCount
	}
	if count > s.cfg.Quiz.MaxQuestionCount {
		count = s.cfg.Quiz.MaxQuestionCount
	}

	pool, tier, err := s.buildPool(ctx, userID, req.Tier, count)
	if err != nil {
		return nil, err
	}

	questions, err := s.generator.Generate(pool, count)
	if err != nil {
		return nil, err
	}

	session := &domain.QuizSession{
		ID:        util.NewULID(),
		UserID:    userID,
		Tier:      tier,
		Questions: questions,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz session started",
		zap.String("sessionID", session.ID),
		zap.String("userID", userID),
		zap.String("tier", string(tier)),
		zap.Int("questions", len(questions)))

	resp := &dto.StartQuizResponse{
		SessionID: session.ID,
		Tier:      string(tier),
		Questions: make([]dto.QuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, dto.NewQuestionResponse(q))
	}
	return resp, nil
}

// buildPool accumulates candidate words across selection tiers until the pool
// can support the requested count. Anonymous users only draw from the random
// tier since they have no progress rows. The returned tier is the single
// contributing tier, or TierMixed when more than one tier supplied words.
func (s *quizServiceImpl) buildPool(ctx context.Context, userID string, preferredTier string, count int) ([]domain.CandidateWord, domain.SourceTier, error) {
	target := count
	if target < quizgen.MinPoolSize {
		target = quizgen.MinPoolSize
	}
	limit := s.cfg.Quiz.PoolFetchLimit
	if limit < target {
		limit = target
	}

	order := s.tierOrder(userID, domain.SourceTier(preferredTier))

	var (
		pool  []domain.CandidateWord
		seen  = make(map[int64]bool)
		tiers []domain.SourceTier
	)
	for _, tf := range order {
		words, err := tf.fetch(ctx, limit)
		if err != nil {
			return nil, "", fmt.Errorf("failed to fetch %s tier words: %w", tf.tier, err)
		}
		added := false
		for _, w := range words {
			if seen[w.ID] {
				continue
			}
			seen[w.ID] = true
			pool = append(pool, w)
			added = true
		}
		if added {
			tiers = append(tiers, tf.tier)
		}
		if len(pool) >= target {
			break
		}
	}

	if len(pool) < quizgen.MinPoolSize {
		return nil, "", domain.NewInsufficientWordsError(len(pool), quizgen.MinPoolSize)
	}

	tier := domain.TierMixed
	if len(tiers) == 1 {
		tier = tiers[0]
	}
	return pool, tier, nil
}

// tierOrder returns the escalation order, honoring a valid preferred tier by
// moving it to the front.
func (s *quizServiceImpl) tierOrder(userID string, preferred domain.SourceTier) []tierFetch {
	random := tierFetch{domain.TierRandom, func(ctx context.Context, limit int) ([]domain.CandidateWord, error) {
		return s.wordRepo.GetRandomWords(ctx, limit)
	}}
	if userID == "" {
		return []tierFetch{random}
	}

	order := []tierFetch{
		{domain.TierReview, func(ctx context.Context, limit int) ([]domain.CandidateWord, error) {
			return s.wordRepo.GetReviewDueWords(ctx, userID, limit)
		}},
		{domain.TierLearning, func(ctx context.Context, limit int) ([]domain.CandidateWord, error) {
			return s.wordRepo.GetLearningWords(ctx, userID, limit)
		}},
		{domain.TierLearned, func(ctx context.Context, limit int) ([]domain.CandidateWord, error) {
			return s.wordRepo.GetLearnedWords(ctx, userID, limit)
		}},
		random,
	}

	if preferred == "" || preferred == domain.TierMixed || !preferred.IsValid() {
		return order
	}
	reordered := make([]tierFetch, 0, len(order))
	for _, tf := range order {
		if tf.tier == preferred {
			reordered = append([]tierFetch{tf}, reordered...)
			continue
		}
		reordered = append(reordered, tf)
	}
	return reordered
}

// SubmitAnswer records one answer against a running session. Answering the
// same question twice is rejected. Wrong answers may carry an example
// sentence as a hint when the hint generator is available.
func (s *quizServiceImpl) SubmitAnswer(ctx context.Context, userID string, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	session, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, domain.NewUnauthorizedError("session belongs to another user")
	}

	question := session.QuestionByID(req.QuestionID)
	if question == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("question %d is not part of session %s", req.QuestionID, session.ID))
	}
	if session.HasResult(req.QuestionID) {
		return nil, domain.NewDuplicateAnswerError(req.QuestionID)
	}

	result, err := quizgen.RecordAnswer(*question, req.SelectedIndex, req.TimeSpentMs)
	if err != nil {
		return nil, err
	}

	session.Results = append(session.Results, result)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	resp := &dto.SubmitAnswerResponse{
		QuestionID:    question.ID,
		IsCorrect:     result.IsCorrect,
		CorrectIndex:  question.CorrectIndex,
		CorrectAnswer: question.Options[question.CorrectIndex],
	}
	if !result.IsCorrect && s.hints != nil {
		resp.Hint = s.exampleSentence(ctx, question)
	}
	return resp, nil
}

// exampleSentence asks the hint generator for a usage example. Hint failures
// never fail the answer; the hint is simply omitted.
func (s *quizServiceImpl) exampleSentence(ctx context.Context, question *domain.QuizQuestion) string {
	word := domain.CandidateWord{
		ID:          question.ID,
		KazakhWord:  question.Prompt,
		Translation: question.Options[question.CorrectIndex],
	}
	hint, err := s.hints.ExampleSentence(ctx, word)
	if err != nil {
		logger.Get().Warn("Hint generation failed",
			zap.Int64("wordID", word.ID), zap.Error(err))
		return ""
	}
	return hint
}

// CompleteQuiz scores the session, persists the attempt and the per-word
// learning outcomes, and drops the session from the store.
func (s *quizServiceImpl) CompleteQuiz(ctx context.Context, userID string, sessionID string) (*dto.CompleteQuizResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, domain.NewUnauthorizedError("session belongs to another user")
	}

	if !session.Completed() {
		logger.Get().Warn("Quiz session closed with unanswered questions",
			zap.String("sessionID", sessionID),
			zap.String("userID", userID),
			zap.Int("answered", len(session.Results)),
			zap.Int("questions", len(session.Questions)))
	}

	summary := quizgen.Score(session.Results)

	if userID != "" {
		attempt := &domain.QuizAttempt{
			UserID:          userID,
			Tier:            session.Tier,
			Correct:         summary.Correct,
			Total:           summary.Total,
			AccuracyPercent: summary.AccuracyPercent,
			Results:         session.Results,
			AttemptedAt:     time.Now(),
		}
		if err := s.attempts.SaveAttempt(ctx, attempt); err != nil {
			return nil, err
		}
		for _, r := range session.Results {
			if err := s.wordRepo.RecordOutcome(ctx, userID, r.QuestionID, r.IsCorrect); err != nil {
				// Progress updates are best effort; the attempt is already saved.
				logger.Get().Error("Failed to record word outcome",
					zap.String("userID", userID),
					zap.Int64("wordID", r.QuestionID),
					zap.Error(err))
			}
		}
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		logger.Get().Warn("Failed to delete completed session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	logger.Get().Info("Quiz session completed",
		zap.String("sessionID", sessionID),
		zap.String("userID", userID),
		zap.Int("correct", summary.Correct),
		zap.Int("total", summary.Total),
		zap.Int("accuracy", summary.AccuracyPercent))

	return &dto.CompleteQuizResponse{
		SessionID:       sessionID,
		Correct:         summary.Correct,
		Total:           summary.Total,
		AccuracyPercent: summary.AccuracyPercent,
	}, nil
}
