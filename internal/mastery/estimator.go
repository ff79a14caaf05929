package mastery

import (
	"sort"
	"time"

	"github.com/ritwika/edurag/internal/store"
)

// Alpha is the EWMA smoothing factor: the weight given to the most recent
// observation when folding a record into a competency's mastery.
const Alpha = 0.6

// observation is a single history record normalized for the EWMA fold.
type observation struct {
	competency string
	value      float64
	timestamp  time.Time
}

// Estimate folds a learner's full history into a mastery snapshot.
//
// Every competency starts at 0 and is updated per record in non-decreasing
// timestamp order: m = m*(1-Alpha) + value*Alpha. Progress records contribute
// their raw score; interaction records contribute a difficulty-adjusted score
// clamp(score - (difficulty-0.5)*0.2, 0, 1), so a score earned on a hard
// attempt counts for more than the same score on an easy one. Competencies in
// the reference set that never received an update default to DefaultMastery.
//
// All folded values lie in [0,1], so the resulting mastery does too.
func Estimate(h store.History, reference []string) *Snapshot {
	obs := make([]observation, 0, len(h.Progress)+len(h.Interactions))

	for _, p := range h.Progress {
		obs = append(obs, observation{
			competency: p.Topic,
			value:      p.Score,
			timestamp:  p.Timestamp,
		})
	}
	for _, rec := range h.Interactions {
		obs = append(obs, observation{
			competency: rec.Competency,
			value:      adjustedScore(rec.Score, rec.Difficulty),
			timestamp:  rec.Timestamp,
		})
	}

	// The store already returns each record stream in timestamp order; the
	// merge across streams is sorted here so the fold is time-ordered rather
	// than dependent on which table was read first. Equal timestamps keep
	// progress-before-interaction order (stable sort).
	sort.SliceStable(obs, func(i, j int) bool {
		return obs[i].timestamp.Before(obs[j].timestamp)
	})

	snap := NewSnapshot()
	for _, o := range obs {
		m, _ := snap.Lookup(o.competency)
		snap.Set(o.competency, m*(1-Alpha)+o.value*Alpha)
	}

	for _, id := range reference {
		if _, ok := snap.Lookup(id); !ok {
			snap.Set(id, DefaultMastery)
		}
	}

	return snap
}

// adjustedScore penalizes scores achieved on easy attempts and rewards
// scores achieved on hard ones, clamped to [0,1].
func adjustedScore(score, difficulty float64) float64 {
	return clamp(score-(difficulty-0.5)*0.2, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
