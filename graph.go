package citegraph

import (
	"bytes"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Graph is a directed graph over the dense node set 0..N-1. Edges are
// kept in insertion order, which is what makes Sort deterministic.
//
// The zero value is an empty graph with no nodes. Graph is not safe for
// concurrent mutation, but once built it may be read (and sorted) from
// any number of goroutines.
type Graph struct {
	adj   [][]int
	edges int
}

// New returns a graph with the given number of nodes and no edges.
func New(nodes int) *Graph {
	return &Graph{adj: make([][]int, nodes)}
}

// FromAdjacency builds a graph from an adjacency list where adj[u] is
// the list of nodes u has edges to. The slice is copied; later changes
// to adj do not affect the graph.
//
// Every edge endpoint must be a valid node index. All offending edges
// are reported, not just the first.
func FromAdjacency(adj [][]int) (*Graph, error) {
	g := New(len(adj))

	var err error
	for u, targets := range adj {
		for _, v := range targets {
			if aerr := g.AddEdge(u, v); aerr != nil {
				err = multierror.Append(err, aerr)
			}
		}
	}
	if err != nil {
		return nil, err
	}

	return g, nil
}

// AddEdge adds the directed edge (u, v). Duplicate edges and self-loops
// are allowed and treated as ordinary edges. Endpoints outside the node
// range are rejected.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= len(g.adj) {
		return fmt.Errorf("edge (%d, %d): node %d out of range [0, %d)", u, v, u, len(g.adj))
	}
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("edge (%d, %d): node %d out of range [0, %d)", u, v, v, len(g.adj))
	}

	g.adj[u] = append(g.adj[u], v)
	g.edges++
	return nil
}

// Nodes returns the number of nodes in the graph.
func (g *Graph) Nodes() int { return len(g.adj) }

// Edges returns the number of edges in the graph, counting duplicates.
func (g *Graph) Edges() int { return g.edges }

// Successors returns the targets of u's outgoing edges in insertion
// order. The returned slice is shared with the graph and must not be
// modified.
func (g *Graph) Successors(u int) []int {
	if u < 0 || u >= len(g.adj) {
		return nil
	}
	return g.adj[u]
}

// String outputs some human-friendly output for the graph structure:
// each node on its own line followed by its indented successors.
func (g *Graph) String() string {
	var buf bytes.Buffer
	for u, targets := range g.adj {
		buf.WriteString(fmt.Sprintf("%d\n", u))
		for _, v := range targets {
			buf.WriteString(fmt.Sprintf("  %d\n", v))
		}
	}

	return buf.String()
}
