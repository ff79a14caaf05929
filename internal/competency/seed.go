package competency

import "fmt"

func init() {
	g = buildGraph(seedCurriculum())
	if err := Validate(); err != nil {
		panic(fmt.Sprintf("competency seed curriculum invalid: %v", err))
	}
}

// seedCurriculum returns the built-in data structures & algorithms curriculum.
func seedCurriculum() []Competency {
	return []Competency{
		{
			ID:            "arrays",
			Name:          "Arrays",
			Description:   "Contiguous storage, traversal, and core array operations",
			Level:         1,
			Difficulty:    1,
			EstimatedMins: 120,
			Keywords:      []string{"array", "index", "traversal", "contiguous"},
			Prerequisites: []string{},
			Objectives: []string{
				"Define arrays and their memory layout",
				"Perform traversal and element access",
				"Analyze time/space complexity for core operations",
			},
		},
		{
			ID:            "strings",
			Name:          "Strings",
			Description:   "String representation, immutability, and common manipulations",
			Level:         1,
			Difficulty:    1,
			EstimatedMins: 90,
			Keywords:      []string{"string", "substring", "character"},
			Prerequisites: []string{"arrays"},
			Objectives: []string{
				"Explain string storage and immutability trade-offs",
				"Apply substring, split, and join operations",
				"Solve two-pointer string problems",
			},
		},
		{
			ID:            "recursion",
			Name:          "Recursion",
			Description:   "Self-referential problem decomposition and base cases",
			Level:         1,
			Difficulty:    2,
			EstimatedMins: 150,
			Keywords:      []string{"recursion", "base case", "call stack"},
			Prerequisites: []string{},
			Objectives: []string{
				"Identify base and recursive cases",
				"Trace recursive calls on the call stack",
				"Convert simple recursion to iteration",
			},
		},
		{
			ID:            "linked-lists",
			Name:          "Linked Lists",
			Description:   "Node-and-pointer storage and pointer manipulation",
			Level:         1,
			Difficulty:    2,
			EstimatedMins: 150,
			Keywords:      []string{"node", "pointer", "head", "tail"},
			Prerequisites: []string{"arrays"},
			Objectives: []string{
				"Explain node structure and pointers",
				"Implement insertion/deletion at head/tail",
				"Compare linked lists vs arrays",
			},
		},
		{
			ID:            "stacks",
			Name:          "Stacks",
			Description:   "LIFO collections and their applications",
			Level:         1,
			Difficulty:    2,
			EstimatedMins: 90,
			Keywords:      []string{"stack", "LIFO", "push", "pop"},
			Prerequisites: []string{"arrays"},
			Objectives: []string{
				"Explain LIFO behavior",
				"Use stacks for expression evaluation",
				"Implement stack using arrays or linked lists",
			},
		},
		{
			ID:            "queues",
			Name:          "Queues",
			Description:   "FIFO collections, circular buffers, and BFS support",
			Level:         1,
			Difficulty:    2,
			EstimatedMins: 90,
			Keywords:      []string{"queue", "FIFO", "enqueue", "dequeue"},
			Prerequisites: []string{"arrays"},
			Objectives: []string{
				"Explain FIFO behavior",
				"Implement queue and circular queue",
				"Apply queues in BFS",
			},
		},
		{
			ID:            "hashing",
			Name:          "Hash Tables",
			Description:   "Hash functions, collision handling, and constant-time lookup",
			Level:         2,
			Difficulty:    3,
			EstimatedMins: 150,
			Keywords:      []string{"hash", "bucket", "collision", "map"},
			Prerequisites: []string{"arrays"},
			Objectives: []string{
				"Explain hash functions and collisions",
				"Choose chaining vs open addressing",
				"Use maps to trade space for time",
			},
		},
		{
			ID:            "searching",
			Name:          "Searching",
			Description:   "Linear and binary search over ordered data",
			Level:         2,
			Difficulty:    2,
			EstimatedMins: 120,
			Keywords:      []string{"search", "binary search", "sorted"},
			Prerequisites: []string{"arrays"},
			Objectives: []string{
				"Implement linear and binary search",
				"Reason about invariants in binary search",
				"Apply search on answer-space problems",
			},
		},
		{
			ID:            "sorting",
			Name:          "Sorting",
			Description:   "Comparison sorts and their complexity trade-offs",
			Level:         2,
			Difficulty:    3,
			EstimatedMins: 180,
			Keywords:      []string{"sort", "merge sort", "quicksort", "stability"},
			Prerequisites: []string{"arrays", "recursion"},
			Objectives: []string{
				"Compare elementary and divide-and-conquer sorts",
				"Analyze best/average/worst cases",
				"Explain stability and in-place properties",
			},
		},
		{
			ID:            "trees",
			Name:          "Trees",
			Description:   "Hierarchical structures, traversals, and binary search trees",
			Level:         2,
			Difficulty:    3,
			EstimatedMins: 240,
			Keywords:      []string{"tree", "BST", "traversal", "root", "leaf"},
			Prerequisites: []string{"arrays", "linked-lists"},
			Objectives: []string{
				"Define tree terminology (root, leaf, depth)",
				"Traverse trees (pre/in/post/level)",
				"Explain BST properties",
			},
		},
		{
			ID:            "graphs",
			Name:          "Graphs",
			Description:   "Graph models, traversal, and shortest paths",
			Level:         3,
			Difficulty:    4,
			EstimatedMins: 300,
			Keywords:      []string{"graph", "DFS", "BFS", "shortest path"},
			Prerequisites: []string{"arrays", "trees"},
			Objectives: []string{
				"Define graphs (directed/undirected, weighted)",
				"Traverse with DFS/BFS",
				"Compute shortest paths (Dijkstra/Bellman-Ford)",
			},
		},
		{
			ID:            "dp",
			Name:          "Dynamic Programming",
			Description:   "Overlapping subproblems, memoization, and tabulation",
			Level:         3,
			Difficulty:    5,
			EstimatedMins: 360,
			Keywords:      []string{"dp", "memoization", "tabulation", "subproblem"},
			Prerequisites: []string{"arrays", "graphs"},
			Objectives: []string{
				"Explain overlapping subproblems and optimal substructure",
				"Formulate state and transitions",
				"Implement memoization and tabulation",
			},
		},
	}
}
