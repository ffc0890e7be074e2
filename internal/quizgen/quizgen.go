// Package quizgen builds multiple-choice vocabulary quizzes from a pool of
// candidate words and scores the submitted answers. It is purely
// computational: no I/O, deterministic under a seeded random source, and a
// Generator is safe to share across goroutines.
package quizgen

import (
	"math"
	"math/rand"
	"strings"
	"sync"

	"kazvocab/internal/domain"
)

const (
	// MinPoolSize is the minimum number of unique-id words needed to build one
	// well-formed question: the correct answer plus three distractors.
	MinPoolSize = 4

	// OptionsPerQuestion is the number of options every question carries.
	OptionsPerQuestion = 4

	// DistractorsPerQuestion is the number of wrong options per question.
	DistractorsPerQuestion = OptionsPerQuestion - 1
)

// Rand supplies uniform random integers. Tests inject a seeded source so
// generation is reproducible; *math/rand.Rand satisfies the interface.
type Rand interface {
	Intn(n int) int
}

// lockedRand serializes access to an underlying source. *math/rand.Rand is
// not safe for concurrent use, and one Generator is shared across requests.
type lockedRand struct {
	mu  sync.Mutex
	src Rand
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

// Generator produces quiz questions from candidate word pools. A Generator
// built by New or NewSeeded is safe for concurrent use.
type Generator struct {
	rng Rand
}

// New creates a Generator using the given random source. The source is
// wrapped with a mutex, so callers may pass a bare *math/rand.Rand.
func New(rng Rand) *Generator {
	return &Generator{rng: &lockedRand{src: rng}}
}

// NewSeeded creates a Generator backed by math/rand with the given seed.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// SelectWords dedupes the pool by word ID (first occurrence wins), shuffles it
// and takes the first min(requiredCount, pool size) entries. It returns an
// INSUFFICIENT_WORDS error when the deduplicated pool is smaller than
// MinPoolSize; callers are expected to have escalated through selection tiers
// before invoking this with a final pool.
func (g *Generator) SelectWords(pool []domain.CandidateWord, requiredCount int) ([]domain.CandidateWord, error) {
	if requiredCount < 1 {
		return nil, domain.NewInvalidInputError("required question count must be positive")
	}

	deduped := dedupeByID(pool)
	if len(deduped) < MinPoolSize {
		return nil, domain.NewInsufficientWordsError(len(deduped), MinPoolSize)
	}

	g.shuffleWords(deduped)

	n := requiredCount
	if n > len(deduped) {
		n = len(deduped)
	}
	return deduped[:n], nil
}

// BuildQuestion assembles one multiple-choice question for word. The
// distractor pool must exclude word by ID; entries whose translation matches
// the correct one (case-insensitive) are filtered out, remaining translations
// are deduplicated by text and three are drawn without replacement. When the
// pool cannot supply three distinct distractors the static fallback
// vocabulary pads the remainder, so the question is always well-formed.
func (g *Generator) BuildQuestion(word domain.CandidateWord, distractorPool []domain.CandidateWord) domain.QuizQuestion {
	distractors := g.pickDistractors(word, distractorPool)

	options := make([]string, 0, OptionsPerQuestion)
	options = append(options, word.Translation)
	options = append(options, distractors...)
	g.shuffleStrings(options)

	return domain.QuizQuestion{
		ID:           word.ID,
		Prompt:       word.KazakhWord,
		Options:      options,
		CorrectIndex: indexOf(options, word.Translation),
		Type:         domain.QuestionTypeMultipleChoice,
	}
}

// Generate builds a full quiz: it selects the question subjects via
// SelectWords, then builds one question per selected word. Distractors are
// drawn from the entire original pool rather than the selected subset, so
// distractor variety does not shrink as more questions are built. Selection
// order is the presentation order. The only error condition is an
// insufficient pool; there is no partial mode.
func (g *Generator) Generate(pool []domain.CandidateWord, requiredCount int) ([]domain.QuizQuestion, error) {
	selected, err := g.SelectWords(pool, requiredCount)
	if err != nil {
		return nil, err
	}

	questions := make([]domain.QuizQuestion, 0, len(selected))
	for _, word := range selected {
		questions = append(questions, g.BuildQuestion(word, withoutID(pool, word.ID)))
	}
	return questions, nil
}

// RecordAnswer constructs the result for a submitted answer. It returns an
// INVALID_ANSWER_INDEX error when selectedIndex is out of bounds; an
// out-of-range index indicates a caller bug and is never silently clamped.
// Appending the result to the session is the caller's responsibility.
func RecordAnswer(question domain.QuizQuestion, selectedIndex int, timeSpentMs int64) (domain.AnswerResult, error) {
	if selectedIndex < 0 || selectedIndex >= len(question.Options) {
		return domain.AnswerResult{}, domain.NewInvalidAnswerIndexError(selectedIndex, len(question.Options))
	}
	if timeSpentMs < 0 {
		timeSpentMs = 0
	}
	return domain.AnswerResult{
		QuestionID:    question.ID,
		SelectedIndex: selectedIndex,
		IsCorrect:     selectedIndex == question.CorrectIndex,
		TimeSpentMs:   timeSpentMs,
	}, nil
}

// Score summarizes a sequence of answer results. Accuracy is rounded half-up;
// an empty sequence scores zero across the board.
func Score(results []domain.AnswerResult) domain.QuizSummary {
	summary := domain.QuizSummary{Total: len(results)}
	for _, r := range results {
		if r.IsCorrect {
			summary.Correct++
		}
	}
	if summary.Total > 0 {
		summary.AccuracyPercent = int(math.Floor(float64(summary.Correct)/float64(summary.Total)*100 + 0.5))
	}
	return summary
}

// pickDistractors returns exactly DistractorsPerQuestion translations, all
// distinct from each other and from the correct translation.
func (g *Generator) pickDistractors(word domain.CandidateWord, distractorPool []domain.CandidateWord) []string {
	seen := make(map[string]struct{}, len(distractorPool))
	candidates := make([]string, 0, len(distractorPool))
	for _, w := range distractorPool {
		if w.ID == word.ID {
			continue
		}
		if strings.EqualFold(w.Translation, word.Translation) {
			continue
		}
		if _, ok := seen[w.Translation]; ok {
			continue
		}
		seen[w.Translation] = struct{}{}
		candidates = append(candidates, w.Translation)
	}

	g.shuffleStrings(candidates)
	if len(candidates) > DistractorsPerQuestion {
		candidates = candidates[:DistractorsPerQuestion]
	}

	// Degenerate pool: pad deterministically from the fallback vocabulary,
	// skipping anything that collides with the correct answer or an
	// already-chosen distractor.
	for _, fb := range fallbackTranslations {
		if len(candidates) == DistractorsPerQuestion {
			break
		}
		if strings.EqualFold(fb, word.Translation) {
			continue
		}
		if containsFold(candidates, fb) {
			continue
		}
		candidates = append(candidates, fb)
	}
	return candidates
}

// shuffleWords performs a uniform Fisher-Yates shuffle in place.
func (g *Generator) shuffleWords(words []domain.CandidateWord) {
	for i := len(words) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		words[i], words[j] = words[j], words[i]
	}
}

func (g *Generator) shuffleStrings(values []string) {
	for i := len(values) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}

// dedupeByID keeps the first occurrence of every word ID.
func dedupeByID(pool []domain.CandidateWord) []domain.CandidateWord {
	seen := make(map[int64]struct{}, len(pool))
	out := make([]domain.CandidateWord, 0, len(pool))
	for _, w := range pool {
		if _, ok := seen[w.ID]; ok {
			continue
		}
		seen[w.ID] = struct{}{}
		out = append(out, w)
	}
	return out
}

func withoutID(pool []domain.CandidateWord, id int64) []domain.CandidateWord {
	out := make([]domain.CandidateWord, 0, len(pool))
	for _, w := range pool {
		if w.ID != id {
			out = append(out, w)
		}
	}
	return out
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
