package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHistory_EmptyForNewUser(t *testing.T) {
	s := openTestStore(t)

	h, err := s.HistoryRepo().History(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !h.Empty() {
		t.Errorf("got %d progress and %d interactions, want empty", len(h.Progress), len(h.Interactions))
	}
}

func TestHistory_AppendAndReadBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.HistoryRepo()

	if err := repo.AppendInteraction(ctx, "u1", "arrays", 0.8, 0.5, 34); err != nil {
		t.Fatalf("append interaction: %v", err)
	}
	if err := repo.AppendProgress(ctx, "u1", "trees", StatusInProgress, 0.6); err != nil {
		t.Fatalf("append progress: %v", err)
	}
	if err := repo.AppendInteraction(ctx, "u2", "arrays", 0.1, 0.5, 10); err != nil {
		t.Fatalf("append interaction: %v", err)
	}

	h, err := repo.History(ctx, "u1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(h.Interactions) != 1 {
		t.Fatalf("got %d interactions, want 1 (no cross-user leakage)", len(h.Interactions))
	}
	rec := h.Interactions[0]
	if rec.Competency != "arrays" || rec.Score != 0.8 || rec.Difficulty != 0.5 || rec.TimeSpent != 34 {
		t.Errorf("interaction round-trip mismatch: %+v", rec)
	}
	if rec.ID == "" {
		t.Error("interaction missing generated id")
	}
	if len(h.Progress) != 1 {
		t.Fatalf("got %d progress records, want 1", len(h.Progress))
	}
	if h.Progress[0].Status != StatusInProgress {
		t.Errorf("got status %q, want %q", h.Progress[0].Status, StatusInProgress)
	}
}

func TestHistory_InsertionOrderPreserved(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.HistoryRepo()

	scores := []float64{0.1, 0.2, 0.3, 0.4}
	for _, sc := range scores {
		if err := repo.AppendInteraction(ctx, "u1", "arrays", sc, 0.5, 0); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	h, err := repo.History(ctx, "u1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(h.Interactions) != len(scores) {
		t.Fatalf("got %d interactions, want %d", len(h.Interactions), len(scores))
	}
	for i, rec := range h.Interactions {
		if rec.Score != scores[i] {
			t.Errorf("position %d: got score %v, want %v", i, rec.Score, scores[i])
		}
	}
	for i := 1; i < len(h.Interactions); i++ {
		if h.Interactions[i].Timestamp.Before(h.Interactions[i-1].Timestamp) {
			t.Error("timestamps not non-decreasing")
		}
	}
}

func TestProfile_DefaultForUnknownUser(t *testing.T) {
	s := openTestStore(t)

	p, err := s.ProfileRepo().GetProfile(context.Background(), "newbie")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.UserID != "newbie" {
		t.Errorf("got user %q, want newbie", p.UserID)
	}
	if len(p.Ratings) != 0 || len(p.VARK) != 0 {
		t.Errorf("default profile not empty: %+v", p)
	}
}

func TestProfile_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProfileRepo()

	p := DefaultProfile("u1")
	p.Name = "Ada"
	p.VARK = map[string]float64{"visual": 0.7, "auditory": 0.3}
	p.Goals = []string{"trees", "graphs"}
	p.Ratings = map[string]float64{"arrays": 1080}

	if err := repo.SetProfile(ctx, "u1", p); err != nil {
		t.Fatalf("set profile: %v", err)
	}

	got, err := repo.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.Name != "Ada" {
		t.Errorf("got name %q, want Ada", got.Name)
	}
	if got.Ratings["arrays"] != 1080 {
		t.Errorf("got rating %v, want 1080", got.Ratings["arrays"])
	}
	if got.PreferredStyle() != "visual" {
		t.Errorf("got style %q, want visual", got.PreferredStyle())
	}

	// Upsert overwrites.
	p.Ratings["arrays"] = 1120
	if err := repo.SetProfile(ctx, "u1", p); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	got, err = repo.GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.Ratings["arrays"] != 1120 {
		t.Errorf("got rating %v after upsert, want 1120", got.Ratings["arrays"])
	}
}

func TestLLMEvents_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-gen", InputTokens: 200, OutputTokens: 80, LatencyMs: 500, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append event: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, 10)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	// Newest first.
	if got[0].Success || !got[1].Success {
		t.Errorf("events not in reverse insertion order: %+v", got)
	}
	if got[0].ErrorMessage != "rate limited" {
		t.Errorf("got error message %q, want rate limited", got[0].ErrorMessage)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("got %d usage rows, want 1", len(usage))
	}
	u := usage[0]
	if u.Purpose != "quiz-gen" || u.Calls != 2 || u.InputTokens != 300 || u.OutputTokens != 130 {
		t.Errorf("usage aggregation mismatch: %+v", u)
	}
}

func TestPreferredStyle_Empty(t *testing.T) {
	p := DefaultProfile("u1")
	if got := p.PreferredStyle(); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
