package graph

// The functions in this file are the pure boolean predicates the v2
// symbol synthesizer composes per column, ported line-for-line from the
// static helpers in graph-v2.c: continued_down, shift_left, new_column,
// continued_right, continued_left, parent_down, parent_right, flanked,
// and below_commit.

// continuedDownV2 reports whether rowA and rowB hold the same id at pos,
// unless rowA's own column there is already marked shift_left.
func continuedDownV2(rowA, rowB *rowV2, pos int) bool {
	if rowA.cols[pos].id != rowB.cols[pos].id {
		return false
	}
	return !rowA.cols[pos].sym.shiftLeft
}

// shiftLeftV2 reports whether row's id at pos also occupies some earlier
// column i in row, where that earlier occurrence does not continue down
// from prevRow — meaning the lane has shifted left into pos.
func shiftLeftV2(row, prevRow *rowV2, pos int) bool {
	if !row.cols[pos].hasCommit() {
		return false
	}
	for i := pos - 1; i >= 0; i-- {
		if !row.cols[i].hasCommit() {
			continue
		}
		if row.cols[i].id != row.cols[pos].id {
			continue
		}
		if !continuedDownV2(prevRow, row, i) {
			return true
		}
		break
	}
	return false
}

// newColumnV2 reports whether the lane at pos is new: prevRow had nothing
// there, or row's id at pos doesn't reappear anywhere at or right of pos
// in prevRow.
func newColumnV2(row, prevRow *rowV2, pos int) bool {
	if !prevRow.cols[pos].hasCommit() {
		return true
	}
	for i := pos; i < row.size(); i++ {
		if row.cols[pos].id == prevRow.cols[i].id {
			return false
		}
	}
	return true
}

// continuedRightV2 reports whether row's id at pos reappears to the right
// of pos, bounded by commitPos when pos precedes it.
func continuedRightV2(row *rowV2, pos, commitPos int) bool {
	end := row.size()
	if pos < commitPos {
		end = commitPos
	}
	for i := pos + 1; i < end; i++ {
		if row.cols[pos].id == row.cols[i].id {
			return true
		}
	}
	return false
}

// continuedLeftV2 reports whether row's id at pos reappears in some
// earlier occupied column, bounded by commitPos when pos is at or past it.
func continuedLeftV2(row *rowV2, pos, commitPos int) bool {
	start := 0
	if pos >= commitPos {
		start = commitPos
	}
	for i := start; i < pos; i++ {
		if !row.cols[i].hasCommit() {
			continue
		}
		if row.cols[pos].id == row.cols[i].id {
			return true
		}
	}
	return false
}

// parentDownV2 reports whether any of the current commit's parents
// matches nextRow's id at pos.
func parentDownV2(parents, nextRow *rowV2, pos int) bool {
	for i := range parents.cols {
		if !parents.cols[i].hasCommit() {
			continue
		}
		if parents.cols[i].id == nextRow.cols[pos].id {
			return true
		}
	}
	return false
}

// parentRightV2 reports whether a parent lands in nextRow at some column
// right of pos without already sitting there in row — a parent moving
// rightward into a new lane.
func parentRightV2(parents, row, nextRow *rowV2, pos int) bool {
	for p := range parents.cols {
		if !parents.cols[p].hasCommit() {
			continue
		}
		id := parents.cols[p].id
		for i := pos + 1; i < nextRow.size(); i++ {
			if id != nextRow.cols[i].id {
				continue
			}
			if id != row.cols[i].id {
				return true
			}
		}
	}
	return false
}

// flankedV2 reports whether the commit's own id appears on the far side of
// pos from the commit column: to its left when pos precedes the commit
// column, to its right otherwise.
func flankedV2(row *rowV2, pos, commitPos int, commitID *string) bool {
	var start, end int
	if pos < commitPos {
		start, end = 0, pos
	} else {
		start, end = pos+1, row.size()
	}
	for i := start; i < end; i++ {
		if row.cols[i].id == commitID {
			return true
		}
	}
	return false
}

// belowCommitV2 reports whether pos is the previous commit's column and
// still holds the same id it held on the previous row.
func belowCommitV2(g *engineV2, pos int) bool {
	if pos != g.prevPosition {
		return false
	}
	return g.row.cols[pos].id == g.prevRow.cols[pos].id
}
