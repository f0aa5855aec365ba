package graph

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/tigview/internal/config"
	"github.com/yourusername/tigview/internal/git"
	enginegraph "github.com/yourusername/tigview/internal/graph"
	"github.com/yourusername/tigview/internal/ui/styles"
)

const (
	CommitSymbol   = "●"
	LineVertical   = "│"
	LineHorizontal = "─"

	// LaneSpacing is the number of padding characters after each lane glyph.
	// This controls the horizontal gap between branch lines.
	LaneSpacing = 1
)

// commitRow is the fully-rendered railroad row for one commit: the engine's
// Canvas (one Glyph per lane) plus the flags RenderCommitLine needs without
// re-deriving them from the canvas on every View() call.
type commitRow struct {
	canvas  *enginegraph.Canvas
	isMerge bool
}

// GraphRenderer drives a commit-graph rendering engine over a commit list
// once (in InitGraph) and renders its output on demand. The engine itself
// never touches color or display concerns — colors, UTF-8/ASCII/line-drawing
// selection, and layout all happen here.
type GraphRenderer struct {
	theme    styles.Theme
	colors   []lipgloss.Color
	strategy enginegraph.Strategy
	encoding config.Encoding

	rows     []commitRow
	maxLanes int
}

func NewGraphRenderer(theme styles.Theme, strategy enginegraph.Strategy, encoding config.Encoding) *GraphRenderer {
	palette := theme.GraphPalette
	if len(palette) == 0 {
		palette = []lipgloss.Color{theme.CommitHash}
	}
	return &GraphRenderer{
		theme:    theme,
		colors:   palette,
		strategy: strategy,
		encoding: encoding,
	}
}

// InitGraph feeds commits through a fresh engine, one commit at a time, and
// keeps each commit's rendered Canvas for later lookup by index. commits
// must already be in the topological order the engine expects (parents
// after children), the same order Repository.Log produces.
//
// commits is adapted into a graph.CommitIterator (the engine's sole input
// contract, shared with cmd/tigview's conformance harness) rather than read
// field-by-field, so the engine never depends on the git.Commit shape.
func (g *GraphRenderer) InitGraph(commits []*git.Commit) {
	records := make([]enginegraph.CommitRecord, len(commits))
	for i, c := range commits {
		records[i] = enginegraph.CommitRecord{
			ID:       c.Hash,
			Parents:  c.Parents,
			Boundary: c.Boundary,
			Title:    c.Subject,
		}
	}
	it := enginegraph.NewSliceIterator(records)

	engine := enginegraph.NewEngine(g.strategy)

	rows := make([]commitRow, len(commits))
	maxLanes := 0

	i := 0
	for rec, ok := it.Next(); ok; rec, ok = it.Next() {
		canvas := &enginegraph.Canvas{}
		engine.AddCommit(canvas, rec.ID, rec.Parents, rec.Boundary)
		engine.RenderParents(canvas)
		engine.DoneRendering()

		rows[i] = commitRow{
			canvas:  canvas,
			isMerge: enginegraph.IsMerge(canvas),
		}
		if len(canvas.Glyphs) > maxLanes {
			maxLanes = len(canvas.Glyphs)
		}
		i++
	}

	g.rows = rows
	g.maxLanes = maxLanes
}

// glyphText renders a single glyph according to the configured encoding.
func (g *GraphRenderer) glyphText(gl enginegraph.Glyph) string {
	switch g.encoding {
	case config.EncodingASCII:
		return gl.ASCII()
	case config.EncodingLine:
		lc := gl.LineDrawing()
		return string(lc.First) + string(lc.Second)
	default:
		return gl.UTF8()
	}
}

func (g *GraphRenderer) laneColor(gl enginegraph.Glyph) lipgloss.Color {
	id := gl.Color()
	if id < 0 {
		id = 0
	}
	return g.colors[id%len(g.colors)]
}

// RenderCommitLine renders a single commit line. maxWidth is the available
// character width so the line can be truncated to prevent wrapping.
// bg is the background color to use for all text in this line (allows the
// caller to pass Selection for highlighted rows, BackgroundPanel for expanded
// headers, etc.).
func (g *GraphRenderer) RenderCommitLine(commit *git.Commit, index int, maxWidth int, bg lipgloss.Color) string {
	if index >= len(g.rows) {
		return g.renderSimple(commit, index, bg)
	}

	isUncommitted := commit.Hash == git.UncommittedHash
	row := g.rows[index]

	numLanes := g.maxLanes
	if numLanes == 0 {
		numLanes = 1
	}

	graphParts := make([]string, numLanes)
	for lane := 0; lane < numLanes; lane++ {
		if lane >= len(row.canvas.Glyphs) {
			graphParts[lane] = blankCell(bg)
			continue
		}
		gl := row.canvas.Glyphs[lane]

		if gl.IsCommit() && isUncommitted {
			uncommittedColor := g.theme.CommitHash
			graphParts[lane] = laneCell("◌", bg, uncommittedColor)
			continue
		}

		graphParts[lane] = laneCell(g.glyphText(gl), bg, g.laneColor(gl))
	}

	graphStr := strings.Join(graphParts, "")

	var refStr string
	if len(commit.Refs) > 0 {
		refStr = g.renderRefs(commit.Refs, bg)
	}

	hashStyle := lipgloss.NewStyle().Foreground(g.theme.CommitHash).Background(bg)
	dateStyle := lipgloss.NewStyle().Foreground(g.theme.Subtext).Background(bg)
	subjectStyle := lipgloss.NewStyle().Foreground(g.theme.Foreground).Background(bg)
	spacer := lipgloss.NewStyle().Background(bg).Render(" ")

	// Uncommitted changes get a distinct hash and subject color.
	if isUncommitted {
		uncommittedColor := g.theme.CommitHash
		hashStyle = lipgloss.NewStyle().Foreground(uncommittedColor).Background(bg).Bold(true)
		subjectStyle = lipgloss.NewStyle().Foreground(uncommittedColor).Background(bg).Italic(true)
	}

	// Build the line: graph | hash | (refs) | subject | relative-time
	relTime := formatRelativeTime(commit.Date)

	// Calculate how much space the prefix (graph + hash + refs) and time consume
	// so we can truncate the subject to fit within maxWidth.
	prefix := graphStr + spacer + hashStyle.Render(commit.ShortHash)
	if refStr != "" {
		prefix = prefix + spacer + refStr
	}
	prefixWidth := lipgloss.Width(prefix)

	timeStr := dateStyle.Render(relTime)
	timeWidth := lipgloss.Width(timeStr)

	// Available width for subject = maxWidth - prefix - time - gaps (2 spacers + 1 gap before time)
	subjectAvail := maxWidth - prefixWidth - timeWidth - 3 // 1 spacer before subject + min 2 for time gap
	if subjectAvail < 4 {
		subjectAvail = 4
	}

	subject := commit.Subject
	subjectRunes := []rune(subject)
	if len(subjectRunes) > subjectAvail {
		subject = string(subjectRunes[:subjectAvail-1]) + "…"
	}

	line := prefix + spacer + subjectStyle.Render(subject)

	// Append the relative timestamp right-aligned if there's room.
	lineWidth := lipgloss.Width(line)
	gap := maxWidth - lineWidth - timeWidth - 1
	if gap > 1 {
		line = line + lipgloss.NewStyle().Background(bg).Width(gap).Render("") + timeStr
	}

	_ = row.isMerge // retained for future merge-aware styling hooks

	return line
}

func (g *GraphRenderer) renderRefs(refs []git.Ref, bg lipgloss.Color) string {
	var parts []string

	decoBg := g.theme.BackgroundPanel

	for _, ref := range refs {
		var style lipgloss.Style
		var icon string

		switch ref.RefType {
		case git.RefTypeTag:
			style = lipgloss.NewStyle().
				Foreground(g.theme.Tag).
				Background(decoBg).
				Bold(true).
				Padding(0, 1)
			icon = "t:"
		case git.RefTypeBranch:
			if ref.IsHead {
				style = lipgloss.NewStyle().
					Foreground(g.theme.Head).
					Background(decoBg).
					Bold(true).
					Padding(0, 1)
				icon = "* "
			} else if ref.IsRemote {
				style = lipgloss.NewStyle().
					Foreground(g.theme.BranchFeature).
					Background(decoBg).
					Padding(0, 1)
				icon = ""
			} else {
				style = lipgloss.NewStyle().
					Foreground(g.theme.BranchMain).
					Background(decoBg).
					Bold(true).
					Padding(0, 1)
				icon = ""
			}
		}

		parts = append(parts, style.Render(icon+ref.Name))
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, lipgloss.NewStyle().Background(bg).Render(" "))
}

func (g *GraphRenderer) renderSimple(commit *git.Commit, index int, bg lipgloss.Color) string {
	colorIndex := index % len(g.colors)
	color := g.colors[colorIndex]

	commitStyle := lipgloss.NewStyle().Foreground(color).Background(bg)
	hashStyle := lipgloss.NewStyle().Foreground(g.theme.CommitHash).Background(bg)
	subjectStyle := lipgloss.NewStyle().Foreground(g.theme.Foreground).Background(bg)
	spacer := lipgloss.NewStyle().Background(bg).Render(" ")

	graphSymbol := commitStyle.Render(CommitSymbol)

	return graphSymbol + spacer + hashStyle.Render(commit.ShortHash) + spacer + subjectStyle.Render(commit.Subject)
}

func (g *GraphRenderer) MaxLanes() int {
	n := g.maxLanes
	if n == 0 {
		n = 1
	}
	// Each lane occupies 1 glyph + LaneSpacing padding characters.
	return n * (1 + LaneSpacing)
}

// laneCell renders a single lane cell: glyph followed by LaneSpacing spaces,
// all styled with the given background and foreground.
func laneCell(glyph string, bg lipgloss.Color, fg lipgloss.Color) string {
	style := lipgloss.NewStyle().Foreground(fg).Background(bg)
	pad := strings.Repeat(" ", LaneSpacing)
	return style.Render(glyph) + style.Render(pad)
}

// blankCell renders an empty lane cell (spaces only) with the given background.
func blankCell(bg lipgloss.Color) string {
	return lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", 1+LaneSpacing))
}

// RenderLaneGutter renders the lane gutter (vertical continuation lines) for
// display alongside expanded content rows, reusing the same commit's glyphs
// so the flow lines continue through the expanded section. The returned
// string is exactly the width of the lane columns (one character per lane).
func (g *GraphRenderer) RenderLaneGutter(index int, bg lipgloss.Color) string {
	if index >= len(g.rows) {
		return ""
	}

	row := g.rows[index]
	numLanes := g.maxLanes
	if numLanes == 0 {
		numLanes = 1
	}

	parts := make([]string, numLanes)
	for lane := 0; lane < numLanes; lane++ {
		if lane >= len(row.canvas.Glyphs) {
			parts[lane] = blankCell(bg)
			continue
		}
		gl := row.canvas.Glyphs[lane]
		if gl.IsCommit() {
			parts[lane] = blankCell(bg)
			continue
		}
		parts[lane] = laneCell(LineVertical, bg, g.laneColor(gl))
	}
	return strings.Join(parts, "")
}

// ---------------------------------------------------------------------------
// Side-by-side diff rendering
// ---------------------------------------------------------------------------

// diffLine represents one line from a unified diff with its type.
type diffLine struct {
	kind    byte // ' ' context, '+' add, '-' remove, '@' hunk header
	content string
	oldNum  int // 0 means blank
	newNum  int // 0 means blank
}

// parseDiffLines parses raw unified diff text into structured diffLines,
// skipping file-level headers (diff --git, index, ---, +++).
func parseDiffLines(raw string) []diffLine {
	lines := strings.Split(raw, "\n")
	var result []diffLine
	var oldLine, newLine int

	for _, line := range lines {
		if strings.HasPrefix(line, "diff --git") ||
			strings.HasPrefix(line, "index ") ||
			strings.HasPrefix(line, "---") ||
			strings.HasPrefix(line, "+++") ||
			strings.HasPrefix(line, "new file") ||
			strings.HasPrefix(line, "deleted file") {
			continue
		}

		if strings.HasPrefix(line, "@@") {
			oldLine, newLine = parseHunkHeader(line)
			result = append(result, diffLine{kind: '@', content: line})
			continue
		}

		if strings.HasPrefix(line, "-") {
			result = append(result, diffLine{kind: '-', content: line[1:], oldNum: oldLine})
			oldLine++
		} else if strings.HasPrefix(line, "+") {
			result = append(result, diffLine{kind: '+', content: line[1:], newNum: newLine})
			newLine++
		} else if strings.HasPrefix(line, "\\") {
			result = append(result, diffLine{kind: '\\', content: line})
		} else {
			result = append(result, diffLine{kind: ' ', content: strings.TrimPrefix(line, " "), oldNum: oldLine, newNum: newLine})
			oldLine++
			newLine++
		}
	}
	return result
}

func parseHunkHeader(line string) (oldStart, newStart int) {
	var oldCount, newCount int
	fmt.Sscanf(line, "@@ -%d,%d +%d,%d @@", &oldStart, &oldCount, &newStart, &newCount)
	if oldStart == 0 && newStart == 0 {
		fmt.Sscanf(line, "@@ -%d +%d @@", &oldStart, &newStart)
	}
	if oldStart == 0 && newStart == 0 {
		fmt.Sscanf(line, "@@ -%d,%d +%d @@", &oldStart, &oldCount, &newStart)
	}
	if oldStart == 0 && newStart == 0 {
		fmt.Sscanf(line, "@@ -%d +%d,%d @@", &oldStart, &newStart, &newCount)
	}
	return
}

// sideBySidePair represents one rendered row of the side-by-side view.
type sideBySidePair struct {
	leftNum   int    // 0 = blank
	leftText  string // raw text (no prefix)
	leftKind  byte   // ' ', '-', or '@'
	rightNum  int
	rightText string
	rightKind byte // ' ', '+', or '@'
}

// buildSideBySidePairs converts parsed diff lines into paired left/right rows.
// Adjacent remove/add blocks are zipped together; context appears on both sides.
func buildSideBySidePairs(dlines []diffLine) []sideBySidePair {
	var pairs []sideBySidePair
	i := 0
	for i < len(dlines) {
		dl := dlines[i]

		switch dl.kind {
		case '@':
			pairs = append(pairs, sideBySidePair{
				leftKind:  '@',
				leftText:  dl.content,
				rightKind: '@',
				rightText: dl.content,
			})
			i++

		case ' ':
			pairs = append(pairs, sideBySidePair{
				leftNum:   dl.oldNum,
				leftText:  dl.content,
				leftKind:  ' ',
				rightNum:  dl.newNum,
				rightText: dl.content,
				rightKind: ' ',
			})
			i++

		case '-':
			// Collect consecutive removes.
			var removes []diffLine
			for i < len(dlines) && dlines[i].kind == '-' {
				removes = append(removes, dlines[i])
				i++
			}
			// Collect immediately following adds.
			var adds []diffLine
			for i < len(dlines) && dlines[i].kind == '+' {
				adds = append(adds, dlines[i])
				i++
			}
			// Zip them together.
			maxLen := len(removes)
			if len(adds) > maxLen {
				maxLen = len(adds)
			}
			for j := 0; j < maxLen; j++ {
				p := sideBySidePair{}
				if j < len(removes) {
					p.leftNum = removes[j].oldNum
					p.leftText = removes[j].content
					p.leftKind = '-'
				}
				if j < len(adds) {
					p.rightNum = adds[j].newNum
					p.rightText = adds[j].content
					p.rightKind = '+'
				}
				pairs = append(pairs, p)
			}

		case '+':
			// Orphan add (no preceding remove).
			pairs = append(pairs, sideBySidePair{
				rightNum:  dl.newNum,
				rightText: dl.content,
				rightKind: '+',
			})
			i++

		case '\\':
			// "\ No newline at end of file" — show on both sides.
			pairs = append(pairs, sideBySidePair{
				leftText:  dl.content,
				leftKind:  '\\',
				rightText: dl.content,
				rightKind: '\\',
			})
			i++

		default:
			i++
		}
	}
	return pairs
}

// FormatDiffLines takes a raw diff string and returns styled side-by-side lines.
// maxWidth is the total available character width for the diff area.
func (g *GraphRenderer) FormatDiffLines(diff string, maxWidth int) []string {
	if diff == "" {
		return nil
	}

	parsed := parseDiffLines(diff)
	pairs := buildSideBySidePairs(parsed)

	// Layout: [left half] [separator 1ch "│"] [right half]
	// Each half: [lineNum 5ch] [content]
	// We use lipgloss.Width on each half block to guarantee fixed column alignment.
	const sepWidth = 1 // "│"
	const numWidth = 5 // e.g. " 142 "
	halfWidth := (maxWidth - sepWidth) / 2
	if halfWidth < 10 {
		halfWidth = 10
	}
	contentWidth := halfWidth - numWidth
	if contentWidth < 4 {
		contentWidth = 4
	}

	removeBg := g.theme.DiffRemoveBg
	addBg := g.theme.DiffAddBg

	// Styles for the line number column — fixed width via lipgloss.
	numStyleOld := lipgloss.NewStyle().
		Foreground(g.theme.DiffRemove).
		Background(removeBg).
		Width(numWidth).
		Align(lipgloss.Right)
	numStyleNew := lipgloss.NewStyle().
		Foreground(g.theme.DiffAdd).
		Background(addBg).
		Width(numWidth).
		Align(lipgloss.Right)
	numStyleCtx := lipgloss.NewStyle().
		Foreground(g.theme.DiffContext).
		Background(g.theme.Background).
		Width(numWidth).
		Align(lipgloss.Right)
	numStyleBlank := lipgloss.NewStyle().
		Background(g.theme.Background).
		Width(numWidth)

	removeContentStyle := lipgloss.NewStyle().
		Foreground(g.theme.DiffRemove).
		Background(removeBg).
		Width(contentWidth)
	addContentStyle := lipgloss.NewStyle().
		Foreground(g.theme.DiffAdd).
		Background(addBg).
		Width(contentWidth)
	contextContentStyle := lipgloss.NewStyle().
		Foreground(g.theme.Foreground).
		Background(g.theme.Background).
		Width(contentWidth)
	blankContentStyle := lipgloss.NewStyle().
		Background(g.theme.Background).
		Width(contentWidth)

	hunkStyle := lipgloss.NewStyle().
		Foreground(g.theme.BranchFeature).
		Background(g.theme.BackgroundPanel).
		Width(maxWidth)
	sepStyle := lipgloss.NewStyle().
		Foreground(g.theme.DiffContext).
		Background(g.theme.Background)
	headerStyle := lipgloss.NewStyle().
		Foreground(g.theme.Subtext).
		Background(g.theme.Background).
		Italic(true).
		Width(maxWidth)

	sep := sepStyle.Render("│")

	var result []string

	for _, p := range pairs {
		if p.leftKind == '@' {
			result = append(result, hunkStyle.Render(truncate(p.leftText, maxWidth)))
			continue
		}

		if p.leftKind == '\\' || p.rightKind == '\\' {
			result = append(result, headerStyle.Render(truncate(p.leftText, maxWidth)))
			continue
		}

		// Build left half.
		var leftNum, leftContent string
		switch p.leftKind {
		case '-':
			leftNum = numStyleOld.Render(fmt.Sprintf("%d", p.leftNum))
			leftContent = removeContentStyle.Render(truncate(p.leftText, contentWidth))
		case ' ':
			leftNum = numStyleCtx.Render(fmt.Sprintf("%d", p.leftNum))
			leftContent = contextContentStyle.Render(truncate(p.leftText, contentWidth))
		default:
			leftNum = numStyleBlank.Render("")
			leftContent = blankContentStyle.Render("")
		}

		// Build right half.
		var rightNum, rightContent string
		switch p.rightKind {
		case '+':
			rightNum = numStyleNew.Render(fmt.Sprintf("%d", p.rightNum))
			rightContent = addContentStyle.Render(truncate(p.rightText, contentWidth))
		case ' ':
			rightNum = numStyleCtx.Render(fmt.Sprintf("%d", p.rightNum))
			rightContent = contextContentStyle.Render(truncate(p.rightText, contentWidth))
		default:
			rightNum = numStyleBlank.Render("")
			rightContent = blankContentStyle.Render("")
		}

		line := leftNum + leftContent + sep + rightNum + rightContent
		result = append(result, line)
	}

	// Limit to a reasonable number of lines for inline display.
	const maxDiffLines = 300
	if len(result) > maxDiffLines {
		result = result[:maxDiffLines]
		result = append(result, headerStyle.Render(
			fmt.Sprintf("  ... %d more lines (truncated)", len(pairs)-maxDiffLines)))
	}

	return result
}

func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > maxWidth {
		return string(runes[:maxWidth])
	}
	return s
}

func formatRelativeTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 min ago"
		}
		return fmt.Sprintf("%d mins ago", mins)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	} else if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "yesterday"
		}
		return fmt.Sprintf("%d days ago", days)
	} else if diff < 30*24*time.Hour {
		weeks := int(diff.Hours() / 24 / 7)
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	} else if diff < 365*24*time.Hour {
		months := int(diff.Hours() / 24 / 30)
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	} else {
		years := int(diff.Hours() / 24 / 365)
		if years == 1 {
			return "1 year ago"
		}
		return fmt.Sprintf("%d years ago", years)
	}
}
