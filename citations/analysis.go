package citations

import "sort"

// Stats summarizes the citation dataset.
type Stats struct {
	// Papers is the number of publications in the collection.
	Papers int

	// Citations is the number of citation edges.
	Citations int

	// Foundational is the number of papers that cite nothing.
	Foundational int

	// MostCited is the highest citation count any single paper
	// received.
	MostCited int

	// SpanYears is the difference between the newest and oldest
	// publication years.
	SpanYears int
}

// Summary computes dataset statistics.
func Summary() Stats {
	s := Stats{
		Papers:    len(papers),
		Citations: len(edges),
	}

	minYear, maxYear := papers[0].Year, papers[0].Year
	for _, p := range papers {
		if p.Year < minYear {
			minYear = p.Year
		}
		if p.Year > maxYear {
			maxYear = p.Year
		}
	}
	s.SpanYears = maxYear - minYear

	s.Foundational = len(Foundational())

	for _, c := range CitedCounts() {
		if c > s.MostCited {
			s.MostCited = c
		}
	}

	return s
}

// CitedCounts returns, per paper, the number of papers citing it.
func CitedCounts() []int {
	counts := make([]int, len(papers))
	for _, e := range edges {
		counts[e[1]]++
	}

	return counts
}

// MostCited returns the k papers with the highest citation counts,
// most cited first. Ties break toward the lower node index. If k
// exceeds the number of cited papers, only cited papers are returned.
func MostCited(k int) []int {
	counts := CitedCounts()

	cited := make([]int, 0, len(counts))
	for n, c := range counts {
		if c > 0 {
			cited = append(cited, n)
		}
	}
	sort.SliceStable(cited, func(i, j int) bool {
		return counts[cited[i]] > counts[cited[j]]
	})

	if k > len(cited) {
		k = len(cited)
	}
	return cited[:k]
}

// Foundational returns the papers that cite nothing, in index order.
// These are the roots of the research lineage.
func Foundational() []int {
	g := Graph()

	var out []int
	for n := 0; n < g.Nodes(); n++ {
		if len(g.Successors(n)) == 0 {
			out = append(out, n)
		}
	}

	return out
}

// Uncited returns the papers no other paper cites, in index order.
// These are the newest leaves of the lineage.
func Uncited() []int {
	counts := CitedCounts()

	var out []int
	for n, c := range counts {
		if c == 0 {
			out = append(out, n)
		}
	}

	return out
}
