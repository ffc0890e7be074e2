package service

import (
	"context"
	"fmt"

	"kazvocab/internal/domain"
	"kazvocab/internal/dto"
)

// WordService exposes the vocabulary itself, outside of any quiz session.
type WordService interface {
	ListWords(ctx context.Context, pagination dto.Pagination) (*dto.WordListResponse, error)
	AddWord(ctx context.Context, word domain.CandidateWord) error
}

type wordServiceImpl struct {
	wordRepo domain.WordRepository
}

// NewWordService creates a new instance of WordService.
func NewWordService(wordRepo domain.WordRepository) WordService {
	return &wordServiceImpl{wordRepo: wordRepo}
}

// ListWords returns a page of the vocabulary.
func (s *wordServiceImpl) ListWords(ctx context.Context, pagination dto.Pagination) (*dto.WordListResponse, error) {
	limit := pagination.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := pagination.Offset
	if offset < 0 {
		offset = 0
	}

	words, total, err := s.wordRepo.ListWords(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	items := make([]dto.WordResponse, 0, len(words))
	for _, w := range words {
		items = append(items, dto.NewWordResponse(w))
	}
	return &dto.WordListResponse{
		Words: items,
		PaginationInfo: dto.PaginationInfo{
			TotalItems:  int64(total),
			Limit:       limit,
			Offset:      offset,
			CurrentPage: offset/limit + 1,
			TotalPages:  (total + limit - 1) / limit,
		},
	}, nil
}

// AddWord persists a new vocabulary entry after validation.
func (s *wordServiceImpl) AddWord(ctx context.Context, word domain.CandidateWord) error {
	if err := word.Validate(); err != nil {
		return err
	}
	return s.wordRepo.SaveWord(ctx, word)
}
