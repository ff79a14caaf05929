package competency

import (
	"fmt"
	"strings"
)

// CycleError indicates the prerequisite relation contains a cycle.
// Nodes lists the cycle in traversal order, with the re-entered node
// repeated at the end (e.g. ["trees", "graphs", "trees"]).
type CycleError struct {
	Nodes []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic prerequisites: %s", strings.Join(e.Nodes, " -> "))
}
