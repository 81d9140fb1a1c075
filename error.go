// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package citegraph

import (
	"bytes"
	"fmt"
	"strings"
)

// ErrCycle is the value returned when a graph contains at least one
// cycle and therefore has no topological ordering. It is an expected
// outcome for cyclic input, not a fault: callers are expected to check
// for it explicitly.
type ErrCycle struct {
	// Remaining are the nodes that could not be ordered. Every node
	// listed here is part of a cycle or only reachable through one.
	Remaining []int

	// Edges are the edges among the remaining nodes, as (from, to)
	// pairs. They delimit the subgraph the cycle lives in.
	Edges [][2]int
}

func (e *ErrCycle) Error() string {
	nodes := new(bytes.Buffer)
	for _, n := range e.Remaining {
		fmt.Fprintf(nodes, "    - %d\n", n)
	}

	edges := new(bytes.Buffer)
	if len(e.Edges) == 0 {
		fmt.Fprintf(edges, "    No edges recorded.\n")
	}
	for _, edge := range e.Edges {
		fmt.Fprintf(edges, "    - %d -> %d\n", edge[0], edge[1])
	}

	return fmt.Sprintf(`
Graph contains a cycle and cannot be topologically sorted!

A topological order only exists for acyclic graphs. The nodes below
could not be emitted because each of them still had unprocessed
incoming edges when the ready queue drained.

==> Unordered nodes
    These nodes are on a cycle or only reachable through one.

%s

==> Edges among the unordered nodes
    The cycle is contained in this subgraph.

%s
`,
		strings.TrimSuffix(nodes.String(), "\n"),
		strings.TrimSuffix(edges.String(), "\n"),
	)
}

var _ error = (*ErrCycle)(nil)
