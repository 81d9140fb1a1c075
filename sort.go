package citegraph

import (
	"time"

	"github.com/hashicorp/go-citegraph/internal/dag"
)

// Sort returns a topological ordering of the graph: a sequence
// containing each node index exactly once, where for every edge (u, v)
// u appears before v. When the graph contains a cycle, Sort returns a
// nil ordering and an *ErrCycle — never a partial ordering.
//
// The ordering is deterministic. Nodes with no incoming edges are
// emitted in ascending index order; nodes that become ready while
// another node's edges are processed follow in discovery order, FIFO.
// Sorting the same graph always yields the same sequence.
//
// Sort does not mutate the graph and allocates all working state per
// call, so it is safe to call concurrently on a shared graph.
func (g *Graph) Sort(opts ...Option) ([]int, error) {
	cfg, err := newSortConfig(opts...)
	if err != nil {
		return nil, err
	}
	log := cfg.logger

	log.Trace("sorting graph", "nodes", len(g.adj), "edges", g.edges)
	order, ok := dag.Sort(g.adj)
	if !ok {
		log.Trace("cycle detected", "ordered", len(order), "total", len(g.adj))
		return nil, g.cycleError(order)
	}

	return order, nil
}

// Metrics reports the measured cost of a single sort invocation.
type Metrics struct {
	// Vertices and Edges describe the input graph.
	Vertices int
	Edges    int

	// Operations is the number of node and edge visits the sort
	// performed. For an acyclic graph this is exactly V+E.
	Operations int

	// Duration is the wall-clock time of the invocation.
	Duration time.Duration
}

// SortMetrics is Sort plus a Metrics describing the invocation. The
// ordering and error semantics are identical to Sort.
func (g *Graph) SortMetrics(opts ...Option) ([]int, Metrics, error) {
	m := Metrics{
		Vertices: len(g.adj),
		Edges:    g.edges,
	}

	start := time.Now()
	order, err := g.Sort(opts...)
	m.Duration = time.Since(start)

	if err == nil {
		m.Operations = m.Vertices + m.Edges
	}

	return order, m, err
}

// cycleError builds the *ErrCycle for a sort that emitted only the
// nodes in ordered.
func (g *Graph) cycleError(ordered []int) *ErrCycle {
	done := make([]bool, len(g.adj))
	for _, u := range ordered {
		done[u] = true
	}

	e := &ErrCycle{}
	for u := range g.adj {
		if done[u] {
			continue
		}

		e.Remaining = append(e.Remaining, u)
		for _, v := range g.adj[u] {
			if !done[v] {
				e.Edges = append(e.Edges, [2]int{u, v})
			}
		}
	}

	return e
}
