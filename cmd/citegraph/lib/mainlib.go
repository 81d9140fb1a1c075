package mainlib

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	cli "github.com/jawher/mow.cli"

	"github.com/hashicorp/go-citegraph/citations"
	"github.com/hashicorp/go-citegraph/report"
)

// Main runs the complete citegraph CLI exactly as if the full program.
// It returns the process exit code instead of calling os.Exit, so
// tests can drive it with in-memory buffers.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) (exitcode int) {
	app := cli.App("citegraph", "Analyze the research-paper citation graph")
	app.Spec = "[-v]"

	verbose := app.BoolOpt("v verbose", false, "enable debug logging")
	app.Before = func() {
		if *verbose {
			hclog.L().SetLevel(hclog.Debug)
		}
	}

	fail := func(err error) {
		fmt.Fprintln(stderr, err)
		exitcode = 1
	}

	app.Command("order", "Print the papers in reading order", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			order, err := citations.ReadingOrder()
			if err != nil {
				fail(err)
				return
			}

			papers := citations.Papers()
			for i, n := range order {
				fmt.Fprintf(stdout, "%2d. %s (%d)\n", i+1, papers[n].Title, papers[n].Year)
			}
		}
	})

	app.Command("levels", "Print papers grouped by dependency level", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			levels, err := citations.Graph().Levels()
			if err != nil {
				fail(err)
				return
			}

			if err := report.WriteLevels(stdout, citations.Papers(), levels); err != nil {
				fail(err)
			}
		}
	})

	app.Command("stats", "Print dataset statistics", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			s := citations.Summary()
			fmt.Fprintf(stdout, "papers:       %d\n", s.Papers)
			fmt.Fprintf(stdout, "citations:    %d\n", s.Citations)
			fmt.Fprintf(stdout, "foundational: %d\n", s.Foundational)
			fmt.Fprintf(stdout, "most cited:   %d\n", s.MostCited)
			fmt.Fprintf(stdout, "span (years): %d\n", s.SpanYears)
		}
	})

	app.Command("bench", "Time the topological sort", func(cmd *cli.Cmd) {
		iterations := cmd.IntOpt("n iterations", 10000, "number of sort invocations")

		cmd.Action = func() {
			t, err := report.Measure(citations.Graph(), *iterations)
			if err != nil {
				fail(err)
				return
			}

			fmt.Fprintf(stdout, "%d iterations over %d nodes / %d edges: total %s, avg %s\n",
				t.Iterations, t.Vertices, t.Edges, t.Total, t.Average)
		}
	})

	app.Command("report", "Write report files", func(cmd *cli.Cmd) {
		dir := cmd.StringOpt("o out", "results", "output directory")
		iterations := cmd.IntOpt("n iterations", 10000, "number of sort invocations to time")

		cmd.Action = func() {
			g := citations.Graph()

			order, err := citations.ReadingOrder()
			if err != nil {
				fail(err)
				return
			}
			levels, err := g.Levels()
			if err != nil {
				fail(err)
				return
			}
			timing, err := report.Measure(g, *iterations)
			if err != nil {
				fail(err)
				return
			}

			err = report.WriteFiles(*dir, citations.Papers(), order, levels, []report.Timing{timing})
			if err != nil {
				fail(err)
				return
			}

			fmt.Fprintf(stdout, "wrote reading_schedule.txt, dependency_analysis.txt, timing.csv to %s\n", *dir)
		}
	})

	if err := app.Run(args); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	return exitcode
}
