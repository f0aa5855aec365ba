// Package graph implements the commit-graph rendering engine: a streaming
// state machine that turns a topologically-ordered stream of commits (id,
// parents, boundary flag) into, for each commit, a fixed-width row of
// drawing glyphs forming the familiar branch/merge/fork "railroad" diagram.
//
// Two strategies are implemented side by side, selected at construction
// time: V1, a simpler legacy algorithm that looks only at the current row
// and the parent list, and V2, a richer algorithm that considers the
// previous row, current row, next row, and parents simultaneously. Both
// satisfy the same Engine interface.
package graph

// Strategy selects which rendering algorithm an Engine uses.
type Strategy int

const (
	// V1 is the legacy strategy: current row + parents only.
	V1 Strategy = iota
	// V2 is the richer strategy: previous/current/next row + parents.
	V2
)

// Canvas is the caller-owned, append-only sequence of glyphs produced for a
// single commit. The engine appends to it during RenderParents and never
// mutates it afterward.
type Canvas struct {
	Glyphs []Glyph
}

func (c *Canvas) append(g Glyph) {
	c.Glyphs = append(c.Glyphs, g)
}

// Engine is the public contract both rendering strategies implement.
//
// Per-commit control flow: the caller invokes AddCommit, then
// RenderParents, which appends one Glyph per column into canvas. Within one
// commit, AddCommit must precede RenderParents; re-invoking AddCommit
// without an intervening RenderParents produces undefined output.
type Engine interface {
	// AddCommit records the current commit's id, parents, and boundary
	// flag, and locates its column. It returns false only on allocation
	// failure; the caller must then treat the engine as poisoned.
	AddCommit(canvas *Canvas, id string, parents []string, isBoundary bool) bool

	// AddParent is a fine-grained alternative to passing all parents via
	// AddCommit. It is a no-op when AddCommit already recorded parents for
	// the current commit; otherwise each call appends one parent.
	AddParent(parentID string) bool

	// RenderParents emits one Glyph per column of the current row into
	// canvas and advances the engine's state to the next commit.
	RenderParents(canvas *Canvas) bool

	// DoneRendering releases per-canvas scratch state. It has no effect
	// on canvases already emitted.
	DoneRendering()
}

// IsMerge reports whether canvas's first glyph belongs to a merge commit.
func IsMerge(canvas *Canvas) bool {
	if len(canvas.Glyphs) == 0 {
		return false
	}
	return canvas.Glyphs[0].Merge()
}

// ForeachSymbol iterates canvas's glyphs in column order, calling visit
// with each glyph's color id (CommitColor for the commit dot) and whether
// it is the first glyph in the canvas. Iteration stops early if visit
// returns true.
func ForeachSymbol(canvas *Canvas, visit func(g Glyph, colorID int, first bool) bool) {
	for i, g := range canvas.Glyphs {
		colorID := g.Color()
		if g.IsCommit() {
			colorID = CommitColor
		}
		if visit(g, colorID, i == 0) {
			return
		}
	}
}

// NewEngine constructs a fresh, empty engine for the given strategy.
func NewEngine(strategy Strategy) Engine {
	switch strategy {
	case V1:
		return newEngineV1()
	default:
		return newEngineV2()
	}
}
