package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	citegraph "github.com/hashicorp/go-citegraph"
	"github.com/hashicorp/go-citegraph/citations"
)

func TestMeasure(t *testing.T) {
	require := require.New(t)

	timing, err := Measure(citations.Graph(), 100)
	require.NoError(err)
	require.Equal(10, timing.Vertices)
	require.Equal(11, timing.Edges)
	require.Equal(100, timing.Iterations)
	require.True(timing.Total > 0)
	require.Equal(timing.Total/100, timing.Average)
}

func TestMeasure_badIterations(t *testing.T) {
	require := require.New(t)

	_, err := Measure(citations.Graph(), 0)
	require.Error(err)
}

func TestMeasure_cycle(t *testing.T) {
	require := require.New(t)

	g := citegraph.New(2)
	require.NoError(g.AddEdge(0, 1))
	require.NoError(g.AddEdge(1, 0))

	_, err := Measure(g, 10)
	require.Error(err)
}

func TestWriteSchedule(t *testing.T) {
	require := require.New(t)

	order, err := citations.ReadingOrder()
	require.NoError(err)

	var buf bytes.Buffer
	require.NoError(WriteSchedule(&buf, citations.Papers(), order))

	out := buf.String()
	require.Contains(out, "READING SCHEDULE")
	require.Contains(out, " 1. [2017]")
	require.Contains(out, "10. [2024]")
	require.Contains(out, "Nano-enabled strategies")
}

func TestWriteLevels(t *testing.T) {
	require := require.New(t)

	levels, err := citations.Graph().Levels()
	require.NoError(err)

	var buf bytes.Buffer
	require.NoError(WriteLevels(&buf, citations.Papers(), levels))

	out := buf.String()
	require.Contains(out, "DEPENDENCY ANALYSIS")
	require.Contains(out, "LEVEL 0 (1 papers)")
	require.Contains(out, "climate_review_2024")
	require.Contains(out, "LEVEL 6 (1 papers)")
	require.Contains(out, "microbiome_study_2017")
}

func TestWriteTimingCSV(t *testing.T) {
	require := require.New(t)

	timings := []Timing{
		{
			Vertices:   10,
			Edges:      11,
			Iterations: 10000,
			Total:      25 * time.Millisecond,
			Average:    2500 * time.Nanosecond,
		},
	}

	var buf bytes.Buffer
	require.NoError(WriteTimingCSV(&buf, timings))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(err)
	require.Len(rows, 2)
	require.Equal([]string{"vertices", "edges", "iterations", "total_us", "avg_us"}, rows[0])
	require.Equal([]string{"10", "11", "10000", "25000", "2.500"}, rows[1])
}

func TestWriteFiles(t *testing.T) {
	require := require.New(t)

	g := citations.Graph()
	order, err := citations.ReadingOrder()
	require.NoError(err)
	levels, err := g.Levels()
	require.NoError(err)
	timing, err := Measure(g, 10)
	require.NoError(err)

	dir := filepath.Join(t.TempDir(), "results")
	err = WriteFiles(dir, citations.Papers(), order, levels, []Timing{timing})
	require.NoError(err)

	for _, name := range []string{"reading_schedule.txt", "dependency_analysis.txt", "timing.csv"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(err)
		require.True(info.Size() > 0)
	}
}
