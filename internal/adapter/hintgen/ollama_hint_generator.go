package hintgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kazvocab/internal/cache"
	"kazvocab/internal/config"
	"kazvocab/internal/domain"
	"kazvocab/internal/logger"

	"github.com/tmc/langchaingo/llms"
	ollamaLLM "github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// PromptCaller is the slice of the LLM client the hint generator needs.
// *ollama.LLM satisfies it.
type PromptCaller interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// OllamaHintGenerator produces example sentences for vocabulary words with a
// local Ollama model. Generated sentences are cached per word, and concurrent
// requests for the same word are collapsed into one model call.
type OllamaHintGenerator struct {
	llm     PromptCaller
	cache   domain.Cache // optional
	cfg     config.HintConfig
	sfGroup singleflight.Group
}

// NewOllamaLLM builds the Ollama client from the hint configuration.
func NewOllamaLLM(cfg config.HintConfig) (*ollamaLLM.LLM, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}
	llm, err := ollamaLLM.New(
		ollamaLLM.WithModel(cfg.Model),
		ollamaLLM.WithServerURL(cfg.ServerURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}
	return llm, nil
}

// NewOllamaHintGenerator creates a HintGenerator backed by the given client.
// The cache may be nil, in which case every request hits the model.
func NewOllamaHintGenerator(llm PromptCaller, c domain.Cache, cfg config.HintConfig) domain.HintGenerator {
	return &OllamaHintGenerator{llm: llm, cache: c, cfg: cfg}
}

func hintCacheKey(wordID int64) string {
	return cache.GenerateCacheKey("hint", "sentence", fmt.Sprintf("%d", wordID))
}

// ExampleSentence implements domain.HintGenerator.
func (g *OllamaHintGenerator) ExampleSentence(ctx context.Context, word domain.CandidateWord) (string, error) {
	key := hintCacheKey(word.ID)

	if g.cache != nil {
		cached, err := g.cache.Get(ctx, key)
		if err == nil && cached != "" {
			return cached, nil
		}
		if err != nil && err != domain.ErrCacheMiss {
			logger.Get().Warn("Hint cache lookup failed", zap.String("key", key), zap.Error(err))
		}
	}

	res, err, _ := g.sfGroup.Do(key, func() (interface{}, error) {
		sentence, fetchErr := g.generate(ctx, word)
		if fetchErr != nil {
			return nil, fetchErr
		}
		if g.cache != nil {
			if cacheErr := g.cache.Set(ctx, key, sentence, g.cfg.CacheTTL); cacheErr != nil {
				logger.Get().Warn("Failed to cache hint", zap.String("key", key), zap.Error(cacheErr))
			}
		}
		return sentence, nil
	})
	if err != nil {
		return "", err
	}

	sentence, ok := res.(string)
	if !ok {
		return "", domain.NewHintServiceError(fmt.Errorf("unexpected type from singleflight: %T", res))
	}
	return sentence, nil
}

func (g *OllamaHintGenerator) generate(ctx context.Context, word domain.CandidateWord) (string, error) {
	timeout := g.cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	prompt := fmt.Sprintf(`You are a Kazakh language tutor. Write ONE short, simple Kazakh sentence that uses the word "%s" (meaning "%s" in English). Respond with only the sentence, nothing else.`,
		word.KazakhWord, word.Translation)

	response, err := g.llm.Call(callCtx, prompt, llms.WithTemperature(0.3))
	if err != nil {
		return "", domain.NewHintServiceError(fmt.Errorf("ollama call failed: %w", err))
	}

	sentence := firstLine(response)
	if sentence == "" {
		return "", domain.NewHintServiceError(fmt.Errorf("empty response for word %d", word.ID))
	}
	return sentence, nil
}

// firstLine trims the response down to the first non-empty line. Small models
// occasionally pad the answer with blank lines or commentary.
func firstLine(response string) string {
	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
