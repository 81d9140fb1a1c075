// Package report renders citation-graph orderings into human-readable
// reports and machine-readable CSV summaries. It is a consumer of the
// citegraph core, not part of it: everything here is formatting and
// file I/O over an already-computed ordering.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp/go-citegraph/citations"
)

// WriteSchedule writes a reading schedule: the papers in the given
// order, one numbered entry per paper with its key metadata. order is
// expected to be reading order (foundational papers first).
func WriteSchedule(w io.Writer, papers []citations.Paper, order []int) error {
	if _, err := fmt.Fprintf(w, "READING SCHEDULE\n\n"); err != nil {
		return err
	}

	for i, n := range order {
		p := papers[n]
		_, err := fmt.Fprintf(w, "%2d. [%d] %s\n    %s (%d)\n    %s\n\n",
			i+1, p.Year, p.Title, p.Venue, p.Year, p.DOI)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteLevels writes a dependency analysis grouping papers by their
// dependency level. Level 0 holds the most recent reviews (nothing in
// the collection cites them); the deepest level holds the foundational
// work everything builds on.
func WriteLevels(w io.Writer, papers []citations.Paper, levels []int) error {
	if _, err := fmt.Fprintf(w, "DEPENDENCY ANALYSIS\n\n"); err != nil {
		return err
	}

	groups := make(map[int][]int)
	for n, level := range levels {
		groups[level] = append(groups[level], n)
	}

	keys := make([]int, 0, len(groups))
	for level := range groups {
		keys = append(keys, level)
	}
	sort.Ints(keys)

	for _, level := range keys {
		nodes := groups[level]
		if _, err := fmt.Fprintf(w, "LEVEL %d (%d papers)\n", level, len(nodes)); err != nil {
			return err
		}
		for _, n := range nodes {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", papers[n].Key, papers[n].Title); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// WriteTimingCSV writes one CSV row per Timing, with a header row.
func WriteTimingCSV(w io.Writer, timings []Timing) error {
	cw := csv.NewWriter(w)

	header := []string{"vertices", "edges", "iterations", "total_us", "avg_us"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, t := range timings {
		row := []string{
			strconv.Itoa(t.Vertices),
			strconv.Itoa(t.Edges),
			strconv.Itoa(t.Iterations),
			strconv.FormatInt(t.Total.Microseconds(), 10),
			strconv.FormatFloat(float64(t.Total.Microseconds())/float64(t.Iterations), 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFiles writes the full report set for the citation dataset into
// dir: reading_schedule.txt, dependency_analysis.txt, and timing.csv.
// The directory is created if missing. Each file is attempted even if
// an earlier one fails; all failures are returned together.
func WriteFiles(dir string, papers []citations.Paper, order, levels []int, timings []Timing) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var errs error

	write := func(name string, fn func(io.Writer) error) {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			errs = multierror.Append(errs, err)
			return
		}
		if err := fn(f); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
		}
		if err := f.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	write("reading_schedule.txt", func(w io.Writer) error {
		return WriteSchedule(w, papers, order)
	})
	write("dependency_analysis.txt", func(w io.Writer) error {
		return WriteLevels(w, papers, levels)
	})
	write("timing.csv", func(w io.Writer) error {
		return WriteTimingCSV(w, timings)
	})

	return errs
}
