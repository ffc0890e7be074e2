package service

import (
	"context"
	"fmt"

	"kazvocab/internal/domain"
	"kazvocab/internal/dto"
	"kazvocab/internal/repository"

	"golang.org/x/sync/errgroup"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	GetUserAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.AttemptListResponse, error)
	GetUserStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error)
}

type userServiceImpl struct {
	userRepo    repository.UserRepository
	attemptRepo domain.AttemptRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo repository.UserRepository, attemptRepo domain.AttemptRepository) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
	}
}

// GetUserProfile retrieves a user's profile information.
func (s *userServiceImpl) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id from repository: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("user %s not found", userID))
	}

	return &dto.UserProfileResponse{
		ID:                user.ID,
		Email:             user.Email,
		Name:              user.Name.String,
		ProfilePictureURL: user.ProfilePictureURL.String,
	}, nil
}

// GetUserAttempts retrieves a page of the user's quiz attempt history.
func (s *userServiceImpl) GetUserAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.AttemptListResponse, error) {
	limit := pagination.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := pagination.Offset
	if offset < 0 {
		offset = 0
	}

	attempts, total, err := s.attemptRepo.ListAttempts(ctx, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	items := make([]dto.AttemptItem, 0, len(attempts))
	for _, a := range attempts {
		items = append(items, dto.AttemptItem{
			ID:              a.ID,
			SourceTier:      string(a.Tier),
			Correct:         a.Correct,
			Total:           a.Total,
			AccuracyPercent: a.AccuracyPercent,
			AttemptedAt:     a.AttemptedAt,
		})
	}

	totalPages := (total + limit - 1) / limit
	return &dto.AttemptListResponse{
		Attempts: items,
		PaginationInfo: dto.PaginationInfo{
			TotalItems:  int64(total),
			Limit:       limit,
			Offset:      offset,
			CurrentPage: offset/limit + 1,
			TotalPages:  totalPages,
		},
	}, nil
}

// GetUserStats summarizes the user's performance. The per-tier accuracy and
// the attempt total are independent queries, so they run concurrently.
func (s *userServiceImpl) GetUserStats(ctx context.Context, userID string) (*dto.UserStatsResponse, error) {
	var (
		tierAccuracy map[domain.SourceTier]float64
		total        int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tierAccuracy, err = s.attemptRepo.GetTierAccuracy(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		_, total, err = s.attemptRepo.ListAttempts(gctx, userID, 0, 1)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}

	accuracy := make(map[string]float64, len(tierAccuracy))
	for tier, avg := range tierAccuracy {
		accuracy[string(tier)] = avg
	}
	return &dto.UserStatsResponse{
		TierAccuracy:  accuracy,
		TotalAttempts: total,
	}, nil
}
