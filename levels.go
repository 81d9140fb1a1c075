package citegraph

// Levels assigns a dependency level to every node: nodes with no
// incoming edges are level 0, and every other node sits one level
// below its deepest predecessor. Equivalently, a node's level is the
// length of the longest edge path reaching it from any root.
//
// Levels are computed by relaxing depths along a topological order, so
// a cyclic graph fails with the same *ErrCycle as Sort.
func (g *Graph) Levels(opts ...Option) ([]int, error) {
	order, err := g.Sort(opts...)
	if err != nil {
		return nil, err
	}

	// Walk the order; by the time u is visited its level is final,
	// so each successor only needs a single comparison.
	levels := make([]int, len(g.adj))
	for _, u := range order {
		for _, v := range g.adj[u] {
			if levels[v] < levels[u]+1 {
				levels[v] = levels[u] + 1
			}
		}
	}

	return levels, nil
}

// LevelGroups groups node indices by their level. Nodes within a group
// are in ascending index order.
func LevelGroups(levels []int) map[int][]int {
	groups := make(map[int][]int)
	for n, level := range levels {
		groups[level] = append(groups[level], n)
	}

	return groups
}
