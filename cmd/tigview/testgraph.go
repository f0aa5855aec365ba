package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yourusername/tigview/internal/graph"
)

func newTestGraphCmd() *cobra.Command {
	var ascii bool
	var useV1 bool

	cmd := &cobra.Command{
		Use:   "test-graph",
		Short: "Render a commit stream as graph rows (conformance harness)",
		Long: `test-graph reads a commit stream from stdin in the format

  commit [-]<id> [<parent-id> ...]
      <title>

(an optional leading "-" marks a boundary commit; title lines are
indented by four spaces) and writes one line per commit: the rendered
graph row followed by its title. It mirrors tig's own test-graph tool,
which exists to compare graph.c's output against known-good fixtures.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy := graph.V2
			if useV1 {
				strategy = graph.V1
			}
			return runTestGraph(os.Stdin, os.Stdout, strategy, ascii)
		},
	}

	cmd.Flags().BoolVar(&ascii, "ascii", false, "render with the ASCII encoding instead of UTF-8")
	cmd.Flags().BoolVar(&useV1, "v1", false, "use the legacy v1 rendering strategy instead of v2")

	return cmd
}

type pendingCommit struct {
	id       string
	parents  []string
	boundary bool
}

// runTestGraph drives a single engine across the whole stream, exactly as
// tig's test-graph.c keeps one struct graph alive for the process lifetime:
// the row state carried between commits is the entire point of the test.
func runTestGraph(r io.Reader, w io.Writer, strategy graph.Strategy, ascii bool) error {
	engine := graph.NewEngine(strategy)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pending *pendingCommit

	flush := func(title string) {
		if pending == nil {
			return
		}
		canvas := &graph.Canvas{}
		engine.AddCommit(canvas, pending.id, pending.parents, pending.boundary)
		engine.RenderParents(canvas)
		engine.DoneRendering()
		fmt.Fprintf(w, "%s %s\n", renderRow(canvas, ascii), title)
		pending = nil
	}

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "commit "):
			rest := strings.TrimPrefix(line, "commit ")
			boundary := strings.HasPrefix(rest, "-")
			if boundary {
				rest = rest[1:]
			}
			fields := strings.Fields(rest)
			if len(fields) == 0 {
				continue
			}
			pending = &pendingCommit{
				id:       fields[0],
				parents:  fields[1:],
				boundary: boundary,
			}

		case strings.HasPrefix(line, "    "):
			flush(strings.TrimPrefix(line, "    "))
		}
	}

	return scanner.Err()
}

// renderRow mirrors print_symbol/print_commit from test-graph.c: every
// glyph normally contributes two characters, but the row's first glyph
// contributes only its second character since nothing sits to its left.
func renderRow(canvas *graph.Canvas, ascii bool) string {
	var sb strings.Builder
	graph.ForeachSymbol(canvas, func(g graph.Glyph, colorID int, first bool) bool {
		var text string
		if ascii {
			text = g.ASCII()
		} else {
			text = g.UTF8()
		}
		runes := []rune(text)
		if first && len(runes) > 0 {
			runes = runes[1:]
		}
		sb.WriteString(string(runes))
		return false
	})
	return sb.String()
}
