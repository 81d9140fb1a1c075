// Package dag implements topological sorting of directed graphs given
// as dense adjacency lists.
package dag

// Sort computes a topological ordering of the graph described by adj
// using Kahn's algorithm. adj maps each node index to the list of nodes
// it has edges to; every node 0..len(adj)-1 is a node of the graph.
//
// The ordering is deterministic: the ready queue is seeded with the
// zero-in-degree nodes in ascending index order, and nodes that become
// ready are appended FIFO in the order their incoming edges are
// relaxed. Duplicate edges and self-loops are ordinary edges; a
// self-loop keeps its node out of the ready queue and therefore shows
// up as a cycle.
//
// Sort never modifies adj. The in-degree table, queue, and output are
// allocated per call, so a single graph may be sorted from many
// goroutines at once.
//
// ok is false when the graph has at least one cycle. In that case order
// holds the nodes that were sorted before the algorithm stalled; the
// missing nodes are on, or only reachable through, a cycle.
func Sort(adj [][]int) (order []int, ok bool) {
	/*
	   L ← Empty list that will contain the sorted elements
	   S ← Queue of all nodes with no incoming edge

	   while S is non-empty do
	       remove the node n at the front of S
	       add n to tail of L
	       for each node m with an edge e from n to m do
	           decrement the in-degree of m
	           if m now has in-degree zero then
	               append m to the tail of S

	   if fewer than |V| nodes were emitted then
	       the graph has at least one cycle
	   else
	       L is a topological order
	*/

	n := len(adj)

	inDegree := make([]int, n)
	for _, targets := range adj {
		for _, v := range targets {
			inDegree[v]++
		}
	}

	// S ← all nodes with no incoming edge, ascending so output is
	// reproducible across runs.
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if inDegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	// The queue only ever grows, so a head cursor gives FIFO order
	// without shifting elements.
	order = make([]int, 0, n)
	for head := 0; head < len(queue); head++ {
		u := queue[head]

		// add n to tail of L
		order = append(order, u)

		// for each node m with an edge from u to m do
		for _, v := range adj[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return order, len(order) == n
}
