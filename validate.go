package citegraph

import "fmt"

// CheckOrder reports whether order is a valid topological ordering of
// the graph: every node exactly once, and for every edge (u, v) the
// position of u precedes the position of v. It returns nil for a valid
// order and a descriptive error naming the first violation otherwise.
func (g *Graph) CheckOrder(order []int) error {
	if len(order) != len(g.adj) {
		return fmt.Errorf("order has %d nodes, graph has %d", len(order), len(g.adj))
	}

	pos := make([]int, len(g.adj))
	seen := make([]bool, len(g.adj))
	for i, n := range order {
		if n < 0 || n >= len(g.adj) {
			return fmt.Errorf("order[%d]: node %d out of range [0, %d)", i, n, len(g.adj))
		}
		if seen[n] {
			return fmt.Errorf("node %d appears more than once", n)
		}

		seen[n] = true
		pos[n] = i
	}

	for u, targets := range g.adj {
		for _, v := range targets {
			if pos[u] >= pos[v] {
				return fmt.Errorf(
					"edge (%d, %d) violated: %d at position %d, %d at position %d",
					u, v, u, pos[u], v, pos[v])
			}
		}
	}

	return nil
}
