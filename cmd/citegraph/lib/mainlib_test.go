package mainlib

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, exitcode int) {
	t.Helper()

	var out, errOut bytes.Buffer
	code := Main(append([]string{"citegraph"}, args...), strings.NewReader(""), &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestMain_order(t *testing.T) {
	require := require.New(t)

	stdout, stderr, code := run(t, "order")
	require.Equal(0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(lines, 10)
	require.Contains(lines[0], "(2017)")
	require.Contains(lines[9], "(2024)")
}

func TestMain_stats(t *testing.T) {
	require := require.New(t)

	stdout, stderr, code := run(t, "stats")
	require.Equal(0, code, stderr)
	require.Contains(stdout, "papers:       10")
	require.Contains(stdout, "citations:    11")
}

func TestMain_levels(t *testing.T) {
	require := require.New(t)

	stdout, stderr, code := run(t, "levels")
	require.Equal(0, code, stderr)
	require.Contains(stdout, "LEVEL 0")
	require.Contains(stdout, "microbiome_study_2017")
}

func TestMain_bench(t *testing.T) {
	require := require.New(t)

	stdout, stderr, code := run(t, "bench", "-n", "10")
	require.Equal(0, code, stderr)
	require.Contains(stdout, "10 iterations over 10 nodes / 11 edges")
}

func TestMain_report(t *testing.T) {
	require := require.New(t)

	dir := filepath.Join(t.TempDir(), "results")
	stdout, stderr, code := run(t, "report", "-o", dir, "-n", "10")
	require.Equal(0, code, stderr)
	require.Contains(stdout, "wrote")

	_, err := os.Stat(filepath.Join(dir, "reading_schedule.txt"))
	require.NoError(err)
}
