package engine

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ritwika/edurag/internal/competency"
	"github.com/ritwika/edurag/internal/rating"
	"github.com/ritwika/edurag/internal/store"
)

func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "engine.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return New(st, nil, nil, nil), st
}

func TestRecordAttempt_UnknownCompetency(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	err := e.RecordAttempt(ctx, "u1", "quantum-chromodynamics", 0.9, 0.5, 30)
	if err == nil {
		t.Fatal("expected error for unknown competency")
	}

	h, err := st.HistoryRepo().History(ctx, "u1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !h.Empty() {
		t.Error("rejected attempt still wrote history")
	}
}

func TestRecordAttempt_AppendsAndRates(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	if err := e.RecordAttempt(ctx, "u1", "arrays", 0.9, 0.5, 42); err != nil {
		t.Fatalf("record attempt: %v", err)
	}

	h, err := st.HistoryRepo().History(ctx, "u1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(h.Interactions) != 1 {
		t.Fatalf("got %d interactions, want 1", len(h.Interactions))
	}

	p, err := st.ProfileRepo().GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	r, ok := p.Ratings["arrays"]
	if !ok {
		t.Fatal("no rating stored for arrays")
	}
	if r <= rating.InitialRating {
		t.Errorf("correct attempt should raise the rating: got %v", r)
	}
}

func TestRecordAttempt_LowScoreLowersRating(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	if err := e.RecordAttempt(ctx, "u1", "trees", 0.2, 0.5, 60); err != nil {
		t.Fatalf("record attempt: %v", err)
	}

	p, err := st.ProfileRepo().GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if r := p.Ratings["trees"]; r >= rating.InitialRating {
		t.Errorf("failed attempt should lower the rating: got %v", r)
	}
}

func TestMasteryFor_NewUserIsNeutral(t *testing.T) {
	e, _ := newTestEngine(t)

	snap, err := e.MasteryFor(context.Background(), "fresh")
	if err != nil {
		t.Fatalf("mastery: %v", err)
	}
	for _, id := range competency.AllIDs() {
		if got := snap.Get(id); got != 0.5 {
			t.Errorf("%s: got %v, want neutral 0.5", id, got)
		}
	}
}

func TestMasteryFor_ReflectsAttempts(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	for range 4 {
		if err := e.RecordAttempt(ctx, "u1", "arrays", 0.95, 0.5, 20); err != nil {
			t.Fatalf("record attempt: %v", err)
		}
	}

	snap, err := e.MasteryFor(ctx, "u1")
	if err != nil {
		t.Fatalf("mastery: %v", err)
	}
	if got := snap.Get("arrays"); got <= 0.5 {
		t.Errorf("mastery after strong attempts: got %v, want above 0.5", got)
	}
	if got := snap.Get("trees"); got != 0.5 {
		t.Errorf("untouched competency drifted: got %v", got)
	}
}

func TestGapsFor_NewUserHasAllGaps(t *testing.T) {
	e, _ := newTestEngine(t)

	gaps, err := e.GapsFor(context.Background(), "fresh")
	if err != nil {
		t.Fatalf("gaps: %v", err)
	}
	if len(gaps) != len(competency.AllIDs()) {
		t.Errorf("got %d gaps, want %d (all neutral scores are below threshold)",
			len(gaps), len(competency.AllIDs()))
	}
}

func TestPredictFor_NeutralIsEven(t *testing.T) {
	e, _ := newTestEngine(t)

	p, err := e.PredictFor(context.Background(), "fresh", "arrays", 0.5)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if p != 0.5 {
		t.Errorf("got %v, want 0.5 when mastery equals difficulty", p)
	}
}

func TestPlanFor_InvalidHorizon(t *testing.T) {
	e, _ := newTestEngine(t)

	if _, err := e.PlanFor(context.Background(), "u1", 0); err == nil {
		t.Fatal("expected error for zero-day horizon")
	}
}

func TestPlanFor_DegradesWithoutCollaborators(t *testing.T) {
	e, _ := newTestEngine(t)

	path, err := e.PlanFor(context.Background(), "fresh", 3)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(path) == 0 {
		t.Fatal("expected a non-empty path for a fresh user")
	}
	if len(path) > 3 {
		t.Errorf("got %d days, want at most 3", len(path))
	}
	for _, day := range path {
		if len(day.Competencies) == 0 {
			t.Error("day with no competencies")
		}
		if len(day.Resources) != 0 || len(day.Quizzes) != 0 {
			t.Error("nil collaborators should yield no resources or quizzes")
		}
	}
}

func TestPlanFor_UsesRatingView(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	// Push the arrays rating high enough that its Elo-backed mastery clears
	// the gap threshold. It should then trail the remediation candidates
	// instead of leading them.
	p, err := st.ProfileRepo().GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	p.Ratings["arrays"] = 1400
	if err := st.ProfileRepo().SetProfile(ctx, "u1", p); err != nil {
		t.Fatalf("set profile: %v", err)
	}

	path, err := e.PlanFor(ctx, "u1", 1)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(path) != 1 {
		t.Fatalf("got %d days, want 1", len(path))
	}
	ids := path[0].Competencies
	if len(ids) == 0 {
		t.Fatal("empty day")
	}
	if ids[0] == "arrays" {
		t.Error("mastered competency should not lead the remediation queue")
	}
	if ids[len(ids)-1] != "arrays" {
		t.Errorf("mastered but unlocked competency should come after the gaps, got order %v", ids)
	}
}

func TestRecommendFor_ProfileGoalsApply(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	p, err := st.ProfileRepo().GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	p.Goals = []string{"trees"}
	if err := st.ProfileRepo().SetProfile(ctx, "u1", p); err != nil {
		t.Fatalf("set profile: %v", err)
	}

	bundles, err := e.RecommendFor(ctx, "u1", nil)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(bundles) != 1 {
		t.Fatalf("got %d bundles, want 1", len(bundles))
	}
	if _, ok := bundles["trees"]; !ok {
		t.Error("bundle for goal competency missing")
	}
}

func TestRecommendFor_ExplicitGoalsOverrideProfile(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	p, err := st.ProfileRepo().GetProfile(ctx, "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	p.Goals = []string{"trees"}
	if err := st.ProfileRepo().SetProfile(ctx, "u1", p); err != nil {
		t.Fatalf("set profile: %v", err)
	}

	bundles, err := e.RecommendFor(ctx, "u1", []string{"graphs"})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if _, ok := bundles["graphs"]; !ok {
		t.Error("explicit goal missing from bundles")
	}
	if _, ok := bundles["trees"]; ok {
		t.Error("profile goal leaked past explicit goals")
	}
}

func TestRecordProgress_RoundTrip(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	if err := e.RecordProgress(ctx, "u1", "recursion", store.StatusCompleted, 0.85); err != nil {
		t.Fatalf("record progress: %v", err)
	}

	h, err := st.HistoryRepo().History(ctx, "u1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(h.Progress) != 1 || h.Progress[0].Status != store.StatusCompleted {
		t.Errorf("progress round-trip mismatch: %+v", h.Progress)
	}
}
