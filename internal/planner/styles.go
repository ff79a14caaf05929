package planner

import (
	"sort"

	"github.com/ritwika/edurag/internal/retrieval"
)

// styleModalities maps each VARK learning style to the resource modalities
// that suit it.
var styleModalities = map[string][]string{
	"visual":      {"diagrams", "videos", "interactive"},
	"auditory":    {"podcasts", "explanations", "audio"},
	"read/write":  {"text", "notes", "exercises"},
	"kinesthetic": {"coding", "practice", "projects"},
}

// closeStyleMargin is the score gap under which the second-strongest VARK
// style is kept alongside the strongest.
const closeStyleMargin = 0.2

// styleBoost multiplies the relevance of resources in a preferred modality.
const styleBoost = 1.5

// LearningStyles ranks VARK scores and returns the dominant style, plus the
// runner-up when its score is within closeStyleMargin of the top. Ties break
// alphabetically so the result is deterministic.
func LearningStyles(vark map[string]float64) []string {
	if len(vark) == 0 {
		return nil
	}

	styles := make([]string, 0, len(vark))
	for s := range vark {
		styles = append(styles, s)
	}
	sort.Slice(styles, func(i, j int) bool {
		if vark[styles[i]] != vark[styles[j]] {
			return vark[styles[i]] > vark[styles[j]]
		}
		return styles[i] < styles[j]
	})

	if len(styles) > 1 && vark[styles[0]]-vark[styles[1]] < closeStyleMargin {
		return styles[:2]
	}
	return styles[:1]
}

// FilterByStyle re-ranks hits so that resources matching the learner's
// preferred modalities come first. Hit relevance is derived from distance,
// boosted by styleBoost when the hit's modality is preferred. With no styles
// the hits are returned unchanged.
func FilterByStyle(hits []retrieval.Hit, styles []string) []retrieval.Hit {
	if len(styles) == 0 || len(hits) == 0 {
		return hits
	}

	preferred := make(map[string]bool)
	for _, s := range styles {
		for _, m := range styleModalities[s] {
			preferred[m] = true
		}
	}

	type scored struct {
		hit   retrieval.Hit
		score float64
	}
	ranked := make([]scored, len(hits))
	for i, h := range hits {
		score := 1 / (1 + h.Distance)
		if preferred[h.Modality()] {
			score *= styleBoost
		}
		ranked[i] = scored{hit: h, score: score}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]retrieval.Hit, len(ranked))
	for i, r := range ranked {
		out[i] = r.hit
	}
	return out
}
