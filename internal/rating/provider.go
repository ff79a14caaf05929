package rating

import (
	"context"
	"fmt"
	"os"

	"github.com/ritwika/edurag/internal/mastery"
	"github.com/ritwika/edurag/internal/store"
)

// Provider derives a mastery snapshot from the per-skill Elo ratings stored
// in the learner's profile. This is the rating-backed mastery strategy used
// by the path-planning flow; see mastery.Provider.
type Provider struct {
	Profiles  store.ProfileRepo
	Reference []string
}

// Mastery converts each stored rating through ToMastery. Skills without a
// rating fall back to the neutral default. A profile read failure degrades
// to the default profile and is logged, never returned as an error.
func (p *Provider) Mastery(ctx context.Context, userID string) (*mastery.Snapshot, error) {
	prof, err := p.Profiles.GetProfile(ctx, userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: profile read for %q failed, using defaults: %v\n", userID, err)
		prof = store.DefaultProfile(userID)
	}

	snap := mastery.NewSnapshot()
	for _, id := range p.Reference {
		if r, ok := prof.Ratings[id]; ok {
			snap.Set(id, ToMastery(r))
		} else {
			snap.Set(id, mastery.DefaultMastery)
		}
	}
	return snap, nil
}
