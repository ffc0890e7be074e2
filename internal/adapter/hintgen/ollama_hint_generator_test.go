package hintgen

import (
	"context"
	"errors"
	"testing"
	"time"

	"kazvocab/internal/config"
	"kazvocab/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type mockPromptCaller struct {
	mock.Mock
}

func (m *mockPromptCaller) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockCache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	args := m.Called(ctx, key, expiration)
	return args.Error(0)
}

func (m *mockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var testWord = domain.CandidateWord{ID: 1, KazakhWord: "су", Translation: "water"}

func testHintConfig() config.HintConfig {
	return config.HintConfig{
		Enabled:  true,
		Model:    "llama3",
		Timeout:  5 * time.Second,
		CacheTTL: time.Hour,
	}
}

func TestExampleSentenceCallsModel(t *testing.T) {
	llm := new(mockPromptCaller)
	gen := NewOllamaHintGenerator(llm, nil, testHintConfig())

	llm.On("Call", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return true
	})).Return("Мен су ішемін.", nil)

	sentence, err := gen.ExampleSentence(context.Background(), testWord)

	require.NoError(t, err)
	assert.Equal(t, "Мен су ішемін.", sentence)
	llm.AssertExpectations(t)
}

func TestExampleSentenceTrimsModelPadding(t *testing.T) {
	llm := new(mockPromptCaller)
	gen := NewOllamaHintGenerator(llm, nil, testHintConfig())

	llm.On("Call", mock.Anything, mock.Anything).Return("\n\n  Мен су ішемін.  \nHere is a sentence.", nil)

	sentence, err := gen.ExampleSentence(context.Background(), testWord)

	require.NoError(t, err)
	assert.Equal(t, "Мен су ішемін.", sentence)
}

func TestExampleSentenceUsesCache(t *testing.T) {
	llm := new(mockPromptCaller)
	c := new(mockCache)
	gen := NewOllamaHintGenerator(llm, c, testHintConfig())

	c.On("Get", mock.Anything, hintCacheKey(1)).Return("Мен су ішемін.", nil)

	sentence, err := gen.ExampleSentence(context.Background(), testWord)

	require.NoError(t, err)
	assert.Equal(t, "Мен су ішемін.", sentence)
	llm.AssertNotCalled(t, "Call", mock.Anything, mock.Anything)
}

func TestExampleSentencePopulatesCacheOnMiss(t *testing.T) {
	llm := new(mockPromptCaller)
	c := new(mockCache)
	gen := NewOllamaHintGenerator(llm, c, testHintConfig())

	c.On("Get", mock.Anything, hintCacheKey(1)).Return("", domain.ErrCacheMiss)
	llm.On("Call", mock.Anything, mock.Anything).Return("Мен су ішемін.", nil)
	c.On("Set", mock.Anything, hintCacheKey(1), "Мен су ішемін.", time.Hour).Return(nil)

	sentence, err := gen.ExampleSentence(context.Background(), testWord)

	require.NoError(t, err)
	assert.Equal(t, "Мен су ішемін.", sentence)
	c.AssertExpectations(t)
}

func TestExampleSentenceModelFailure(t *testing.T) {
	llm := new(mockPromptCaller)
	gen := NewOllamaHintGenerator(llm, nil, testHintConfig())

	llm.On("Call", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))

	_, err := gen.ExampleSentence(context.Background(), testWord)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeHintServiceError, domainErr.Code)
}

func TestExampleSentenceEmptyResponse(t *testing.T) {
	llm := new(mockPromptCaller)
	gen := NewOllamaHintGenerator(llm, nil, testHintConfig())

	llm.On("Call", mock.Anything, mock.Anything).Return("\n\n", nil)

	_, err := gen.ExampleSentence(context.Background(), testWord)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeHintServiceError, domainErr.Code)
}

func TestNewOllamaLLMValidatesConfig(t *testing.T) {
	_, err := NewOllamaLLM(config.HintConfig{Model: "llama3"})
	assert.Error(t, err)

	_, err = NewOllamaLLM(config.HintConfig{ServerURL: "http://localhost:11434"})
	assert.Error(t, err)
}
