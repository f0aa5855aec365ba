package main

import (
	"strings"
	"testing"

	"github.com/yourusername/tigview/internal/graph"
)

func TestRunTestGraph_LinearHistory(t *testing.T) {
	input := `commit c
    third
commit b c
    second
commit -a b
    first
`
	var out strings.Builder
	if err := runTestGraph(strings.NewReader(input), &out, graph.V2, false); err != nil {
		t.Fatalf("runTestGraph: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d output lines, want 3:\n%s", len(lines), out.String())
	}
	for i, want := range []string{"third", "second", "first"} {
		if !strings.HasSuffix(lines[i], " "+want) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], want)
		}
	}
}

func TestRunTestGraph_IgnoresUnrecognizedLines(t *testing.T) {
	input := "\ngarbage line\ncommit x\n    only\n"
	var out strings.Builder
	if err := runTestGraph(strings.NewReader(input), &out, graph.V2, false); err != nil {
		t.Fatalf("runTestGraph: %v", err)
	}
	got := strings.TrimSpace(out.String())
	if !strings.HasSuffix(got, " only") {
		t.Fatalf("output = %q, want suffix %q", got, " only")
	}
}

func TestRenderRow_FirstGlyphLosesLeadingChar(t *testing.T) {
	eng := graph.NewEngine(graph.V2)
	canvas := &graph.Canvas{}
	eng.AddCommit(canvas, "a", nil, false)
	eng.RenderParents(canvas)
	eng.DoneRendering()

	row := renderRow(canvas, false)
	full := canvas.Glyphs[0].UTF8()
	if len(row) >= len(full) {
		t.Fatalf("renderRow(%q) should drop the first glyph's leading rune, got %q", full, row)
	}
}

func TestRenderRow_ASCIIEncoding(t *testing.T) {
	eng := graph.NewEngine(graph.V2)
	canvas := &graph.Canvas{}
	eng.AddCommit(canvas, "a", nil, false)
	eng.RenderParents(canvas)
	eng.DoneRendering()

	row := renderRow(canvas, true)
	for _, r := range row {
		if r > 127 {
			t.Fatalf("renderRow with ascii=true produced non-ASCII rune %q in %q", r, row)
		}
	}
}
