// Package quizgen generates multiple-choice quiz questions for a competency
// from retrieved learning content, using the LLM provider abstraction.
package quizgen

import (
	"context"

	"github.com/ritwika/edurag/internal/competency"
	"github.com/ritwika/edurag/internal/mastery"
	"github.com/ritwika/edurag/internal/quiz"
)

// GenerateInput holds all context needed to generate one quiz question.
type GenerateInput struct {
	// Competency is the target competency for the question.
	Competency competency.Competency

	// Level is the difficulty label selected from the learner's mastery.
	Level mastery.Level

	// Context is retrieved learning content the question should draw on.
	// May be empty, in which case the question relies on the objectives.
	Context string
}

// Config holds generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// Generator produces quiz questions for a competency.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*quiz.Question, error)
}
