package mastery

import "sort"

// GapThreshold is the default mastery cutoff below which a competency
// counts as a knowledge gap.
const GapThreshold = 0.6

// Gaps returns every competency in the snapshot with mastery strictly below
// threshold, weakest first. Equal mastery values keep the snapshot's
// insertion order (stable sort).
func Gaps(snap *Snapshot, threshold float64) []string {
	var gaps []string
	for _, id := range snap.IDs() {
		if v, _ := snap.Lookup(id); v < threshold {
			gaps = append(gaps, id)
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		vi, _ := snap.Lookup(gaps[i])
		vj, _ := snap.Lookup(gaps[j])
		return vi < vj
	})
	return gaps
}
