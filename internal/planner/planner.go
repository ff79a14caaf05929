// Package planner turns a mastery snapshot into a day-by-day learning path.
// Weak competencies come first for remediation, then unlocked competencies in
// rising order of level and difficulty, bucketed across the requested horizon.
package planner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ritwika/edurag/internal/competency"
	"github.com/ritwika/edurag/internal/mastery"
	"github.com/ritwika/edurag/internal/quiz"
	"github.com/ritwika/edurag/internal/quizgen"
	"github.com/ritwika/edurag/internal/retrieval"
)

// resourcesPerCompetency caps how many retrieved resources one competency
// contributes to a day.
const resourcesPerCompetency = 2

// retrievalK is how many candidate hits to pull before style filtering.
const retrievalK = 3

// Day is one day of a learning path.
type Day struct {
	Competencies []string
	Resources    []retrieval.Hit
	Quizzes      []quiz.Pack
}

// Path is an ordered sequence of learning days, never longer than the
// requested horizon.
type Path []Day

// State is the learner context a plan is computed from.
type State struct {
	Mastery *mastery.Snapshot
	VARK    map[string]float64
}

// Planner builds learning paths. Resources and Quizzes are optional
// collaborators; a nil or failing collaborator degrades the plan but never
// fails it.
type Planner struct {
	Resources retrieval.Retriever
	Quizzes   quizgen.Generator
}

// Plan builds a learning path of at most horizonDays days.
//
// Candidates are the snapshot's weak competencies in snapshot order, followed
// by competencies whose prerequisites are all at or above the gap threshold,
// sorted ascending by level then difficulty. Prerequisites absent from the
// snapshot count as unmastered, but a competency with no prerequisites is
// always unlocked. No competency is assigned to more than one day, and an
// empty candidate list yields an empty path.
func (p *Planner) Plan(ctx context.Context, state State, horizonDays int) (Path, error) {
	if horizonDays < 1 {
		return nil, fmt.Errorf("plan horizon must be at least 1 day, got %d", horizonDays)
	}

	snap := state.Mastery
	if snap == nil {
		snap = mastery.NewSnapshot()
	}
	styles := LearningStyles(state.VARK)

	candidates := candidateOrder(snap)
	if len(candidates) == 0 {
		return Path{}, nil
	}

	perDay := len(candidates) / horizonDays
	if perDay < 1 {
		perDay = 1
	}

	var path Path
	for day := 0; day < horizonDays; day++ {
		lo := day * perDay
		if lo >= len(candidates) {
			break
		}
		hi := lo + perDay
		if hi > len(candidates) {
			hi = len(candidates)
		}
		path = append(path, p.buildDay(ctx, candidates[lo:hi], snap, styles))
	}
	return path, nil
}

// candidateOrder returns the deduplicated candidate list: remediation first,
// then unlocked competencies by (level, difficulty).
func candidateOrder(snap *mastery.Snapshot) []string {
	seen := make(map[string]bool)
	var out []string

	for _, id := range snap.IDs() {
		v, _ := snap.Lookup(id)
		if v >= mastery.GapThreshold {
			continue
		}
		if _, err := competency.Get(id); err != nil {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	var ready []competency.Competency
	for _, c := range competency.All() {
		if seen[c.ID] || !unlocked(c, snap) {
			continue
		}
		ready = append(ready, c)
	}
	sort.SliceStable(ready, func(i, j int) bool {
		if ready[i].Level != ready[j].Level {
			return ready[i].Level < ready[j].Level
		}
		return ready[i].Difficulty < ready[j].Difficulty
	})
	for _, c := range ready {
		out = append(out, c.ID)
	}
	return out
}

// unlocked reports whether every prerequisite of c is at or above the gap
// threshold in the snapshot. Absent prerequisites count as zero mastery.
func unlocked(c competency.Competency, snap *mastery.Snapshot) bool {
	for _, pre := range c.Prerequisites {
		v, ok := snap.Lookup(pre)
		if !ok || v < mastery.GapThreshold {
			return false
		}
	}
	return true
}

// buildDay assembles one day's competencies, resources, and quizzes.
// Collaborator failures skip that competency's extras rather than failing
// the day.
func (p *Planner) buildDay(ctx context.Context, ids []string, snap *mastery.Snapshot, styles []string) Day {
	d := Day{Competencies: append([]string(nil), ids...)}

	for _, id := range ids {
		c, err := competency.Get(id)
		if err != nil {
			continue
		}

		hits := p.resourcesFor(ctx, c, styles)
		d.Resources = append(d.Resources, hits...)

		if p.Quizzes == nil {
			continue
		}
		level := mastery.SelectDifficulty(snap.Get(id))
		q, err := p.Quizzes.Generate(ctx, quizgen.GenerateInput{
			Competency: c,
			Level:      level,
			Context:    hitContext(hits),
		})
		if err != nil {
			continue
		}
		d.Quizzes = append(d.Quizzes, quiz.Pack{
			Title:      c.Name + " check",
			Competency: c.ID,
			Level:      string(level),
			Questions:  []quiz.Question{*q},
		})
	}
	return d
}

// resourcesFor retrieves up to resourcesPerCompetency hits for a competency,
// keeping only hits tagged with it and re-ranking by learning style.
func (p *Planner) resourcesFor(ctx context.Context, c competency.Competency, styles []string) []retrieval.Hit {
	if p.Resources == nil {
		return nil
	}
	hits, err := p.Resources.Query(ctx, c.Description, retrievalK)
	if err != nil {
		return nil
	}

	tagged := hits[:0:0]
	for _, h := range hits {
		if strings.Contains(h.Competencies(), c.ID) {
			tagged = append(tagged, h)
		}
	}
	tagged = FilterByStyle(tagged, styles)
	if len(tagged) > resourcesPerCompetency {
		tagged = tagged[:resourcesPerCompetency]
	}
	return tagged
}

// hitContext joins hit contents into a reference blob for quiz generation.
func hitContext(hits []retrieval.Hit) string {
	var parts []string
	for _, h := range hits {
		if h.Content != "" {
			parts = append(parts, h.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}
