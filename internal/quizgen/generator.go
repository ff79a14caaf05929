package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ritwika/edurag/internal/llm"
	"github.com/ritwika/edurag/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Rationale   string   `json:"rationale"`
}

// Generate produces a single quiz question for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuizQuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &quiz.Question{
		Question:    raw.Question,
		Options:     raw.Options,
		AnswerIndex: raw.AnswerIndex,
	}
	if err := validateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

// validateQuestion checks structural constraints the schema alone cannot
// guarantee across providers.
func validateQuestion(q *quiz.Question) error {
	if q.Question == "" {
		return fmt.Errorf("generated question: empty question text")
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("generated question: expected 4 options, got %d", len(q.Options))
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("generated question: option %d is empty", i)
		}
	}
	if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
		return fmt.Errorf("generated question: answer_index %d out of range", q.AnswerIndex)
	}
	return nil
}
