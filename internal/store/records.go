package store

import (
	"context"
	"time"
)

// ProgressStatus is the lifecycle status of a topic for a learner.
type ProgressStatus string

const (
	StatusStarted    ProgressStatus = "started"
	StatusInProgress ProgressStatus = "in-progress"
	StatusCompleted  ProgressStatus = "completed"
)

// ProgressRecord is one append-only topic progress entry.
type ProgressRecord struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Topic     string         `db:"topic"`
	Status    ProgressStatus `db:"status"`
	Score     float64        `db:"score"`
	Timestamp time.Time      `db:"timestamp"`
}

// InteractionRecord is one append-only graded attempt entry.
type InteractionRecord struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Competency string    `db:"competency"`
	Score      float64   `db:"score"`
	Difficulty float64   `db:"difficulty"`
	TimeSpent  float64   `db:"time_spent"`
	Timestamp  time.Time `db:"timestamp"`
}

// History is a learner's full record history, borrowed read-only by the
// engine for a single computation. Both slices are ordered by non-decreasing
// timestamp, ties broken by insertion order; the mastery fold depends on
// this contract.
type History struct {
	Progress     []ProgressRecord
	Interactions []InteractionRecord
}

// Empty reports whether the history contains no records.
func (h History) Empty() bool {
	return len(h.Progress) == 0 && len(h.Interactions) == 0
}

// HistoryRepo provides append and read access to the per-user record log.
// Each append is independently atomic. History returns records in
// non-decreasing timestamp order.
type HistoryRepo interface {
	AppendInteraction(ctx context.Context, userID, competency string, score, difficulty, timeSpent float64) error
	AppendProgress(ctx context.Context, userID, topic string, status ProgressStatus, score float64) error
	History(ctx context.Context, userID string) (History, error)
}

// ProfileRepo provides read/write access to learner profiles.
type ProfileRepo interface {
	// GetProfile returns the stored profile, or a default profile for an
	// unknown user (never an error for absence).
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	SetProfile(ctx context.Context, userID string, p *Profile) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and read access to operational events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns the most recent events, newest first.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
