package competency

import (
	"fmt"
	"slices"
	"sort"
)

// graph holds the competency DAG with precomputed indices.
type graph struct {
	competencies []Competency
	byID         map[string]*Competency
	roots        []Competency
	dependents   map[string][]string
	topoOrder    []Competency
	topoIndex    map[string]int
}

// g is the package-level graph singleton, set by init() in seed.go.
var g *graph

// buildGraph constructs the graph from a slice of competencies.
// It builds all indices including topological order (Kahn's algorithm).
func buildGraph(competencies []Competency) *graph {
	gr := &graph{
		competencies: competencies,
		byID:         make(map[string]*Competency, len(competencies)),
		dependents:   make(map[string][]string),
		topoIndex:    make(map[string]int, len(competencies)),
	}

	// Build ID index
	for i := range gr.competencies {
		gr.byID[gr.competencies[i].ID] = &gr.competencies[i]
	}

	// Build reverse edges (dependents)
	for i := range gr.competencies {
		for _, prereqID := range gr.competencies[i].Prerequisites {
			gr.dependents[prereqID] = append(gr.dependents[prereqID], gr.competencies[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm)
	inDegree := make(map[string]int, len(competencies))
	for i := range competencies {
		inDegree[competencies[i].ID] = len(competencies[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering
	sort.Strings(queue)

	var topoOrder []Competency
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		c := gr.byID[id]
		topoOrder = append(topoOrder, *c)

		deps := gr.dependents[id]
		sorted := make([]string, len(deps))
		copy(sorted, deps)
		sort.Strings(sorted)
		for _, depID := range sorted {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	gr.topoOrder = topoOrder
	for i, c := range gr.topoOrder {
		gr.topoIndex[c.ID] = i
	}

	// Identify roots
	for i := range gr.competencies {
		if len(gr.competencies[i].Prerequisites) == 0 {
			gr.roots = append(gr.roots, gr.competencies[i])
		}
	}

	return gr
}

// Get returns a competency by ID, or an error if not found.
func Get(id string) (Competency, error) {
	c, ok := g.byID[id]
	if !ok {
		return Competency{}, fmt.Errorf("competency not found: %q", id)
	}
	return *c, nil
}

// All returns all competencies in the graph.
func All() []Competency {
	return slices.Clone(g.competencies)
}

// AllIDs returns the IDs of all competencies. This is the reference set used
// by the mastery estimator for neutral defaults.
func AllIDs() []string {
	ids := make([]string, len(g.competencies))
	for i := range g.competencies {
		ids[i] = g.competencies[i].ID
	}
	return ids
}

// Roots returns all competencies with no prerequisites.
func Roots() []Competency {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite IDs for a competency.
// Unknown IDs yield an empty list, never an error.
func Prerequisites(id string) []string {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(c.Prerequisites)
}

// Objectives returns the learning objectives for a competency.
// Unknown IDs yield an empty list, never an error.
func Objectives(id string) []string {
	c, ok := g.byID[id]
	if !ok {
		return nil
	}
	return slices.Clone(c.Objectives)
}

// Dependents returns competencies that directly depend on the given ID.
func Dependents(id string) []Competency {
	depIDs := g.dependents[id]
	result := make([]Competency, 0, len(depIDs))
	for _, depID := range depIDs {
		if c, ok := g.byID[depID]; ok {
			result = append(result, *c)
		}
	}
	return result
}

// TopologicalOrder returns all competencies in a valid topological order.
func TopologicalOrder() []Competency {
	return slices.Clone(g.topoOrder)
}

// Sequence returns a study order for the given goals: the transitive
// prerequisite closure of the goals plus the goals themselves, with every
// prerequisite strictly before its dependents and no duplicates. The order is
// deterministic given the goal order and each node's prerequisite list order.
// Goals not present in the graph are treated as having no prerequisites and
// appear in the output as-is.
func Sequence(goals []string) ([]string, error) {
	return g.sequence(goals)
}

// ObjectivesForGoals returns the objectives for every competency in the
// study sequence of the given goals.
func ObjectivesForGoals(goals []string) (map[string][]string, error) {
	seq, err := Sequence(goals)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(seq))
	for _, id := range seq {
		out[id] = Objectives(id)
	}
	return out, nil
}

// Validate checks the graph for structural issues.
func Validate() error {
	return validateCompetencies(g.competencies)
}

// visit states for the iterative depth-first traversal in sequence.
const (
	unvisited = iota
	visiting
	done
)

// sequence runs an iterative depth-first traversal from each goal, descending
// into prerequisites before emitting a node. An explicit "visiting" marker,
// distinct from the "done" set, catches back-edges so a cyclic configuration
// fails fast instead of recursing without bound.
func (gr *graph) sequence(goals []string) ([]string, error) {
	state := make(map[string]int, len(gr.competencies))
	var order []string

	type frame struct {
		id   string
		next int
	}

	for _, goal := range goals {
		if state[goal] == done {
			continue
		}
		stack := []frame{{id: goal}}
		state[goal] = visiting

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			prereqs := gr.prereqIDs(f.id)

			if f.next < len(prereqs) {
				next := prereqs[f.next]
				f.next++
				switch state[next] {
				case visiting:
					start := 0
					for i := range stack {
						if stack[i].id == next {
							start = i
							break
						}
					}
					nodes := make([]string, 0, len(stack)-start+1)
					for _, sf := range stack[start:] {
						nodes = append(nodes, sf.id)
					}
					nodes = append(nodes, next)
					return nil, &CycleError{Nodes: nodes}
				case unvisited:
					state[next] = visiting
					stack = append(stack, frame{id: next})
				}
				continue
			}

			state[f.id] = done
			order = append(order, f.id)
			stack = stack[:len(stack)-1]
		}
	}
	return order, nil
}

func (gr *graph) prereqIDs(id string) []string {
	if c, ok := gr.byID[id]; ok {
		return c.Prerequisites
	}
	return nil
}
