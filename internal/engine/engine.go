// Package engine is the composition root: it wires the store, the two
// mastery strategies, the planner, and the remediation recommender behind
// one API. The engine is stateless per request; mastery is recomputed from
// the full history on every call.
package engine

import (
	"context"
	"fmt"

	"github.com/ritwika/edurag/internal/competency"
	"github.com/ritwika/edurag/internal/mastery"
	"github.com/ritwika/edurag/internal/planner"
	"github.com/ritwika/edurag/internal/quizgen"
	"github.com/ritwika/edurag/internal/rating"
	"github.com/ritwika/edurag/internal/remediation"
	"github.com/ritwika/edurag/internal/retrieval"
	"github.com/ritwika/edurag/internal/store"
)

// Engine exposes the tutoring operations. The EWMA history fold backs
// mastery estimation, gap detection, and remediation; the Elo rating view
// backs path planning. The two models are independent and not expected to
// agree.
type Engine struct {
	history     store.HistoryRepo
	profiles    store.ProfileRepo
	estimator   mastery.Provider
	planMastery mastery.Provider
	planner     *planner.Planner
	recommender *remediation.Recommender
}

// New wires an engine over the given store. The text and media retrievers
// and the quiz generator are optional; a nil collaborator degrades the
// affected operation rather than disabling the engine.
func New(st *store.Store, text, media retrieval.Retriever, gen quizgen.Generator) *Engine {
	history := st.HistoryRepo()
	profiles := st.ProfileRepo()
	reference := competency.AllIDs()

	estimator := &mastery.HistoryProvider{Repo: history, Reference: reference}
	planMastery := &rating.Provider{Profiles: profiles, Reference: reference}

	return &Engine{
		history:     history,
		profiles:    profiles,
		estimator:   estimator,
		planMastery: planMastery,
		planner:     &planner.Planner{Resources: text, Quizzes: gen},
		recommender: &remediation.Recommender{
			Mastery:  estimator,
			Profiles: profiles,
			Text:     text,
			Media:    media,
		},
	}
}

// RecordAttempt appends a graded attempt to the history and updates the
// learner's Elo rating for the competency. score and difficulty are in
// [0,1]; a score of at least 0.5 counts as a success for the rating update.
// Write failures propagate to the caller.
func (e *Engine) RecordAttempt(ctx context.Context, userID, comp string, score, difficulty, timeSpent float64) error {
	if _, err := competency.Get(comp); err != nil {
		return err
	}
	if err := e.history.AppendInteraction(ctx, userID, comp, score, difficulty, timeSpent); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}

	profile, err := e.profiles.GetProfile(ctx, userID)
	if err != nil {
		return fmt.Errorf("record attempt: load profile: %w", err)
	}
	current, ok := profile.Ratings[comp]
	if !ok {
		current = rating.InitialRating
	}
	outcome := 0
	if score >= 0.5 {
		outcome = 1
	}
	profile.Ratings[comp] = rating.Update(current, rating.TaskDifficulty(difficulty), outcome, rating.DefaultK)

	if err := e.profiles.SetProfile(ctx, userID, profile); err != nil {
		return fmt.Errorf("record attempt: save profile: %w", err)
	}
	return nil
}

// RecordProgress appends a progress record for a topic. Write failures
// propagate to the caller.
func (e *Engine) RecordProgress(ctx context.Context, userID, topic string, status store.ProgressStatus, score float64) error {
	if err := e.history.AppendProgress(ctx, userID, topic, status, score); err != nil {
		return fmt.Errorf("record progress: %w", err)
	}
	return nil
}

// MasteryFor returns the EWMA mastery snapshot for a user.
func (e *Engine) MasteryFor(ctx context.Context, userID string) (*mastery.Snapshot, error) {
	return e.estimator.Mastery(ctx, userID)
}

// RatingMasteryFor returns the Elo-backed mastery snapshot for a user.
func (e *Engine) RatingMasteryFor(ctx context.Context, userID string) (*mastery.Snapshot, error) {
	return e.planMastery.Mastery(ctx, userID)
}

// GapsFor returns the user's gap competencies, weakest first.
func (e *Engine) GapsFor(ctx context.Context, userID string) ([]string, error) {
	snap, err := e.estimator.Mastery(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mastery.Gaps(snap, mastery.GapThreshold), nil
}

// PredictFor estimates the probability that the user answers a question of
// the given normalized difficulty correctly for a competency.
func (e *Engine) PredictFor(ctx context.Context, userID, comp string, difficulty float64) (float64, error) {
	snap, err := e.estimator.Mastery(ctx, userID)
	if err != nil {
		return 0, err
	}
	return mastery.PredictPerformance(snap.Get(comp), difficulty), nil
}

// PlanFor builds a learning path of at most horizonDays days, using the
// rating-backed mastery view and the learner's VARK preferences.
func (e *Engine) PlanFor(ctx context.Context, userID string, horizonDays int) (planner.Path, error) {
	snap, err := e.planMastery.Mastery(ctx, userID)
	if err != nil {
		return nil, err
	}

	var vark map[string]float64
	if profile, perr := e.profiles.GetProfile(ctx, userID); perr == nil {
		vark = profile.VARK
	}
	return e.planner.Plan(ctx, planner.State{Mastery: snap, VARK: vark}, horizonDays)
}

// RecommendFor returns remediation bundles for the user's gaps, filtered by
// goals when supplied. With no explicit goals, the profile's stored goals
// apply.
func (e *Engine) RecommendFor(ctx context.Context, userID string, goals []string) (map[string]remediation.Bundle, error) {
	if len(goals) == 0 {
		if profile, err := e.profiles.GetProfile(ctx, userID); err == nil {
			goals = profile.Goals
		}
	}
	return e.recommender.Recommend(ctx, userID, goals)
}
