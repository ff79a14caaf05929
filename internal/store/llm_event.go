package store

import (
	"context"
	"fmt"
	"time"
)

// LLMEvent is one stored LLM request event.
type LLMEvent struct {
	ID           int64     `db:"id"`
	Provider     string    `db:"provider"`
	Model        string    `db:"model"`
	Purpose      string    `db:"purpose"`
	InputTokens  int       `db:"input_tokens"`
	OutputTokens int       `db:"output_tokens"`
	LatencyMs    int64     `db:"latency_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	Timestamp    time.Time `db:"timestamp"`
}

// LLMUsage aggregates token usage for one purpose.
type LLMUsage struct {
	Purpose      string `db:"purpose"`
	Calls        int    `db:"calls"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	AvgLatencyMs int64  `db:"avg_latency_ms"`
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s}
}

type eventRepo struct {
	db *Store
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := r.db.db.ExecContext(ctx,
		`INSERT INTO llm_events (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		success, data.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

// QueryLLMEvents returns the most recent events, newest first. A limit of
// zero or less defaults to 20.
func (r *eventRepo) QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	var events []LLMEvent
	err := r.db.db.SelectContext(ctx, &events,
		`SELECT id, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, timestamp
		   FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	return events, nil
}

// LLMUsageByPurpose aggregates token usage and latency per purpose.
func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	var usage []LLMUsage
	err := r.db.db.SelectContext(ctx, &usage,
		`SELECT purpose,
		        COUNT(*) AS calls,
		        SUM(input_tokens) AS input_tokens,
		        SUM(output_tokens) AS output_tokens,
		        CAST(AVG(latency_ms) AS INTEGER) AS avg_latency_ms
		   FROM llm_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	return usage, nil
}
