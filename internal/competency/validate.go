package competency

import (
	"fmt"
	"strings"
)

// validateCompetencies performs all structural checks on the given curriculum.
// Returns a combined error describing all problems found, or nil if valid.
func validateCompetencies(competencies []Competency) error {
	var errs []string

	idSet := make(map[string]bool, len(competencies))

	// Check for duplicate IDs
	for _, c := range competencies {
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate competency ID: %q", c.ID))
		}
		idSet[c.ID] = true
	}

	// Check for dangling prerequisites
	for _, c := range competencies {
		for _, prereqID := range c.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("competency %q references nonexistent prerequisite %q", c.ID, prereqID))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(competencies))
	adjList := make(map[string][]string)
	for _, c := range competencies {
		inDegree[c.ID] = len(c.Prerequisites)
		for _, prereqID := range c.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], c.ID)
		}
	}

	var queue []string
	for _, c := range competencies {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(competencies) {
		var cycleNodes []string
		for _, c := range competencies {
			if inDegree[c.ID] > 0 {
				cycleNodes = append(cycleNodes, c.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving competencies: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check at least one root
	hasRoot := false
	for _, c := range competencies {
		if len(c.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root competencies found (at least one must have no prerequisites)")
	}

	// Check level and difficulty ranges
	for _, c := range competencies {
		if c.Level < 1 || c.Level > 3 {
			errs = append(errs, fmt.Sprintf("competency %q: Level must be in [1, 3], got %d", c.ID, c.Level))
		}
		if c.Difficulty < 1 || c.Difficulty > 5 {
			errs = append(errs, fmt.Sprintf("competency %q: Difficulty must be in [1, 5], got %d", c.ID, c.Difficulty))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("competency graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
