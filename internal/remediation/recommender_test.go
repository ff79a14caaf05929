package remediation

import (
	"context"
	"errors"
	"testing"

	"github.com/ritwika/edurag/internal/mastery"
	"github.com/ritwika/edurag/internal/retrieval"
	"github.com/ritwika/edurag/internal/store"
)

type stubMastery struct {
	snap *mastery.Snapshot
	err  error
}

func (s *stubMastery) Mastery(context.Context, string) (*mastery.Snapshot, error) {
	return s.snap, s.err
}

type stubProfiles struct {
	profile *store.Profile
	err     error
}

func (s *stubProfiles) GetProfile(_ context.Context, userID string) (*store.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.profile != nil {
		return s.profile, nil
	}
	return store.DefaultProfile(userID), nil
}

func (s *stubProfiles) SetProfile(context.Context, string, *store.Profile) error { return nil }

type stubRetriever struct {
	byQuery map[string][]retrieval.Hit
	err     error
	queries []string
}

func (s *stubRetriever) Query(_ context.Context, text string, k int) ([]retrieval.Hit, error) {
	s.queries = append(s.queries, text)
	if s.err != nil {
		return nil, s.err
	}
	hits := s.byQuery[text]
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

func gapSnapshot() *mastery.Snapshot {
	snap := mastery.NewSnapshot()
	snap.Set("trees", 0.3)
	snap.Set("arrays", 0.9)
	return snap
}

func TestRecommend_TaggedHitsKept(t *testing.T) {
	text := &stubRetriever{byQuery: map[string][]retrieval.Hit{
		"trees fundamentals examples": {
			{ID: "t1", Meta: map[string]string{"competencies": "trees,graphs"}},
			{ID: "x1", Meta: map[string]string{"competencies": "arrays"}},
		},
	}}
	r := &Recommender{Mastery: &stubMastery{snap: gapSnapshot()}, Text: text}

	recs, err := r.Recommend(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bundle, ok := recs["trees"]
	if !ok {
		t.Fatalf("no bundle for trees, got %v", recs)
	}
	if len(bundle.Text) != 1 || bundle.Text[0].ID != "t1" {
		t.Errorf("got text hits %v, want only the trees-tagged hit", bundle.Text)
	}
	if _, ok := recs["arrays"]; ok {
		t.Error("arrays is not a gap yet got a bundle")
	}
}

func TestRecommend_FallbackQueryWhenNothingTagged(t *testing.T) {
	text := &stubRetriever{byQuery: map[string][]retrieval.Hit{
		"trees fundamentals examples": {
			{ID: "x1", Meta: map[string]string{"competencies": "arrays"}},
		},
		"explain trees step by step": {
			{ID: "f1", Meta: map[string]string{"competencies": "arrays"}},
		},
	}}
	r := &Recommender{Mastery: &stubMastery{snap: gapSnapshot()}, Text: text}

	recs, err := r.Recommend(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bundle := recs["trees"]
	if len(bundle.Text) != 1 || bundle.Text[0].ID != "f1" {
		t.Errorf("got %v, want the unfiltered fallback hit f1", bundle.Text)
	}

	wantQueries := []string{"trees fundamentals examples", "explain trees step by step"}
	if len(text.queries) != 2 || text.queries[0] != wantQueries[0] || text.queries[1] != wantQueries[1] {
		t.Errorf("got queries %v, want %v", text.queries, wantQueries)
	}
}

func TestRecommend_MediaQueryByStyle(t *testing.T) {
	media := &stubRetriever{byQuery: map[string][]retrieval.Hit{}}
	visual := &store.Profile{UserID: "u1", VARK: map[string]float64{"visual": 0.8, "auditory": 0.2}}
	r := &Recommender{
		Mastery:  &stubMastery{snap: gapSnapshot()},
		Profiles: &stubProfiles{profile: visual},
		Media:    media,
	}

	if _, err := r.Recommend(context.Background(), "u1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(media.queries) != 1 || media.queries[0] != "trees diagram" {
		t.Errorf("got media queries %v, want [trees diagram]", media.queries)
	}

	media = &stubRetriever{byQuery: map[string][]retrieval.Hit{}}
	r.Media = media
	r.Profiles = &stubProfiles{profile: &store.Profile{
		UserID: "u1", VARK: map[string]float64{"kinesthetic": 0.9},
	}}
	if _, err := r.Recommend(context.Background(), "u1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(media.queries) != 1 || media.queries[0] != "trees concept" {
		t.Errorf("got media queries %v, want [trees concept]", media.queries)
	}
}

func TestRecommend_GoalsFilterGaps(t *testing.T) {
	snap := mastery.NewSnapshot()
	snap.Set("trees", 0.3)
	snap.Set("graphs", 0.2)
	r := &Recommender{Mastery: &stubMastery{snap: snap}}

	recs, err := r.Recommend(context.Background(), "u1", []string{"graphs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d bundles, want 1", len(recs))
	}
	if _, ok := recs["graphs"]; !ok {
		t.Errorf("got %v, want a bundle for graphs only", recs)
	}
}

func TestRecommend_RetrieverFailuresNeverFatal(t *testing.T) {
	r := &Recommender{
		Mastery: &stubMastery{snap: gapSnapshot()},
		Text:    &stubRetriever{err: errors.New("text index down")},
		Media:   &stubRetriever{err: errors.New("media index down")},
	}

	recs, err := r.Recommend(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bundle := recs["trees"]
	if len(bundle.Text) != 0 || len(bundle.Media) != 0 {
		t.Errorf("got %v, want empty bundle from failing retrievers", bundle)
	}
}

func TestRecommend_MasteryFailurePropagates(t *testing.T) {
	r := &Recommender{Mastery: &stubMastery{err: errors.New("estimate failed")}}
	if _, err := r.Recommend(context.Background(), "u1", nil); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRecommend_ProfileFailureDegradesStyle(t *testing.T) {
	media := &stubRetriever{byQuery: map[string][]retrieval.Hit{}}
	r := &Recommender{
		Mastery:  &stubMastery{snap: gapSnapshot()},
		Profiles: &stubProfiles{err: errors.New("profile read failed")},
		Media:    media,
	}

	if _, err := r.Recommend(context.Background(), "u1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(media.queries) != 1 || media.queries[0] != "trees concept" {
		t.Errorf("got media queries %v, want the no-preference phrasing", media.queries)
	}
}
