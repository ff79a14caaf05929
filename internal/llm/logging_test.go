package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ritwika/edurag/internal/store"
)

type captureEventRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *captureEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func (r *captureEventRepo) QueryLLMEvents(context.Context, int) ([]store.LLMEvent, error) {
	return nil, nil
}

func (r *captureEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"ok":true}`),
			Usage:   Usage{InputTokens: 120, OutputTokens: 40},
		},
	)
	repo := &captureEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "quiz-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Error("event not marked successful")
	}
	if ev.Purpose != "quiz-gen" {
		t.Errorf("got purpose %q, want quiz-gen", ev.Purpose)
	}
	if ev.InputTokens != 120 || ev.OutputTokens != 40 {
		t.Errorf("token counts not carried: %+v", ev)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	repo := &captureEventRepo{}
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected provider error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("got %d events, want 1", len(repo.events))
	}
	if repo.events[0].Success {
		t.Error("failed request marked successful")
	}
	if repo.events[0].ErrorMessage == "" {
		t.Error("error message not recorded")
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	repo := &captureEventRepo{err: errors.New("disk full")}
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("logging failure leaked into request: %v", err)
	}
}

func TestLogging_NilRepoDisablesLogging(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithLogging(mock, nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "" {
		t.Errorf("got %q, want empty for bare context", got)
	}
	ctx := WithPurpose(context.Background(), "remediation")
	if got := PurposeFrom(ctx); got != "remediation" {
		t.Errorf("got %q, want remediation", got)
	}
}
