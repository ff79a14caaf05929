// Package remediation recommends targeted study content for a learner's
// weakest competencies. For each gap it queries the text retriever with a
// competency-tuned phrase and the media retriever with a phrasing matched to
// the learner's preferred modality.
package remediation

import (
	"context"
	"fmt"
	"strings"

	"github.com/ritwika/edurag/internal/mastery"
	"github.com/ritwika/edurag/internal/retrieval"
	"github.com/ritwika/edurag/internal/store"
)

// Default result counts per modality.
const (
	DefaultTextK  = 3
	DefaultMediaK = 6
)

// Bundle holds the recommended content for one gap competency.
type Bundle struct {
	Text  []retrieval.Hit
	Media []retrieval.Hit
}

// Recommender maps a learner's mastery gaps to remediation bundles.
// Retriever failures yield an empty list for that modality, never an error;
// only a failed mastery estimate fails the whole recommendation.
type Recommender struct {
	Mastery  mastery.Provider
	Profiles store.ProfileRepo
	Text     retrieval.Retriever
	Media    retrieval.Retriever

	// TextK and MediaK override the per-gap result counts when positive.
	TextK  int
	MediaK int
}

// Recommend returns a bundle per gap competency. When goals are supplied,
// only gaps among the goals are considered.
func (r *Recommender) Recommend(ctx context.Context, userID string, goals []string) (map[string]Bundle, error) {
	snap, err := r.Mastery.Mastery(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("estimate mastery for %s: %w", userID, err)
	}

	gaps := mastery.Gaps(snap, mastery.GapThreshold)
	if len(goals) > 0 {
		wanted := make(map[string]bool, len(goals))
		for _, g := range goals {
			wanted[g] = true
		}
		kept := gaps[:0]
		for _, g := range gaps {
			if wanted[g] {
				kept = append(kept, g)
			}
		}
		gaps = kept
	}

	style := r.preferredStyle(ctx, userID)

	out := make(map[string]Bundle, len(gaps))
	for _, comp := range gaps {
		out[comp] = Bundle{
			Text:  r.textHits(ctx, comp),
			Media: r.mediaHits(ctx, comp, style),
		}
	}
	return out, nil
}

// textHits queries for competency-tagged content, falling back to a broader
// unfiltered query when nothing matches the tag.
func (r *Recommender) textHits(ctx context.Context, comp string) []retrieval.Hit {
	if r.Text == nil {
		return nil
	}
	k := r.TextK
	if k <= 0 {
		k = DefaultTextK
	}

	hits, err := r.Text.Query(ctx, comp+" fundamentals examples", k)
	if err != nil {
		return nil
	}
	tagged := hits[:0:0]
	for _, h := range hits {
		if strings.Contains(h.Competencies(), comp) {
			tagged = append(tagged, h)
		}
	}
	if len(tagged) > 0 {
		return tagged
	}

	hits, err = r.Text.Query(ctx, "explain "+comp+" step by step", k)
	if err != nil {
		return nil
	}
	return hits
}

// mediaHits queries the media retriever with a phrasing suited to the
// learner's style: visual learners get diagram-oriented queries.
func (r *Recommender) mediaHits(ctx context.Context, comp, style string) []retrieval.Hit {
	if r.Media == nil {
		return nil
	}
	k := r.MediaK
	if k <= 0 {
		k = DefaultMediaK
	}

	query := comp + " concept"
	if style == "visual" {
		query = comp + " diagram"
	}
	hits, err := r.Media.Query(ctx, query, k)
	if err != nil {
		return nil
	}
	return hits
}

// preferredStyle reads the learner's dominant VARK style, degrading to no
// preference when the profile cannot be read.
func (r *Recommender) preferredStyle(ctx context.Context, userID string) string {
	if r.Profiles == nil {
		return ""
	}
	profile, err := r.Profiles.GetProfile(ctx, userID)
	if err != nil {
		return ""
	}
	return profile.PreferredStyle()
}
