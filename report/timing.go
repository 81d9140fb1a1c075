package report

import (
	"fmt"
	"time"

	citegraph "github.com/hashicorp/go-citegraph"
)

// Timing is the result of repeatedly sorting one graph.
type Timing struct {
	Vertices   int
	Edges      int
	Iterations int
	Total      time.Duration
	Average    time.Duration
}

// Measure sorts g the given number of times and reports the total and
// average wall-clock duration. The sort keeps no state between calls,
// so repetition measures steady-state cost.
//
// A graph that cannot be sorted (cycle) fails on the first iteration.
func Measure(g *citegraph.Graph, iterations int) (Timing, error) {
	t := Timing{
		Vertices:   g.Nodes(),
		Edges:      g.Edges(),
		Iterations: iterations,
	}
	if iterations <= 0 {
		return t, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := g.Sort(); err != nil {
			return t, err
		}
	}
	t.Total = time.Since(start)
	t.Average = t.Total / time.Duration(iterations)

	return t, nil
}
