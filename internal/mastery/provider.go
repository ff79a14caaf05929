package mastery

import (
	"context"
	"fmt"
	"os"

	"github.com/ritwika/edurag/internal/store"
)

// Provider supplies a mastery snapshot for a user. Two strategies implement
// it: the EWMA history fold in this package and the Elo rating view in the
// rating package. They are distinct models and are not expected to agree
// numerically; callers pick which one backs a given flow.
type Provider interface {
	Mastery(ctx context.Context, userID string) (*Snapshot, error)
}

// HistoryProvider computes mastery by folding the user's full record history
// on every call (stateless, idempotent).
type HistoryProvider struct {
	Repo      store.HistoryRepo
	Reference []string
}

// Mastery loads the user's history and estimates mastery. A read failure
// degrades to an empty history — a new or unreachable user still gets the
// neutral default snapshot — and is logged as a degradation, never returned
// as an error.
func (p *HistoryProvider) Mastery(ctx context.Context, userID string) (*Snapshot, error) {
	h, err := p.Repo.History(ctx, userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history read for %q failed, using empty history: %v\n", userID, err)
		h = store.History{}
	}
	return Estimate(h, p.Reference), nil
}
