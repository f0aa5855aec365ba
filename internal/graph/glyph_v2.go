package graph

// The classifiers below are ported from graph-v2.c's graph_symbol_*
// functions. Each tests the synthesized boolean predicates on a symbolV2
// and is evaluated in a fixed priority order (see glyphV2's rendering
// methods); exactly one should match for any non-commit column.

func (s *symbolV2) forks() bool {
	return s.continuedDown && s.continuedRight && s.continuedUp
}

func (s *symbolV2) crossMerge() bool {
	if s.empty {
		return false
	}
	if !s.continuedUp && !s.newColumn && !s.belowCommit {
		return false
	}
	if s.shiftLeft && s.continuedUpLeft {
		return false
	}
	if s.nextRight {
		return false
	}
	return s.merge && s.continuedUp && s.continuedRight && s.continuedLeft && s.parentDown && !s.nextRight
}

func (s *symbolV2) verticalMerge() bool {
	if s.empty {
		return false
	}
	if !s.continuedUp && !s.newColumn && !s.belowCommit {
		return false
	}
	if s.shiftLeft && s.continuedUpLeft {
		return false
	}
	if s.nextRight {
		return false
	}
	if !s.matchesCommit {
		return false
	}
	return s.merge && s.continuedUp && s.continuedLeft && s.parentDown && !s.continuedRight
}

func (s *symbolV2) crossOver() bool {
	if s.empty {
		return false
	}
	if !s.continuedDown {
		return false
	}
	if !s.continuedUp && !s.newColumn && !s.belowCommit {
		return false
	}
	if s.shiftLeft {
		return false
	}
	if s.parentRight && s.merge {
		return true
	}
	return s.flanked
}

func (s *symbolV2) turnLeft() bool {
	if s.matchesCommit && s.continuedRight && !s.continuedDown {
		return false
	}
	if s.continueShift {
		return false
	}
	if s.continuedUp || s.newColumn || s.belowCommit {
		if s.matchesCommit {
			return true
		}
		if s.shiftLeft {
			return true
		}
	}
	return false
}

func (s *symbolV2) turnDownCrossOver() bool {
	if !s.continuedDown {
		return false
	}
	if !s.continuedRight {
		return false
	}
	if !s.parentRight && !s.flanked {
		return false
	}
	if s.flanked {
		return true
	}
	return s.merge
}

func (s *symbolV2) turnDown() bool {
	return s.continuedDown && s.continuedRight
}

func (s *symbolV2) symbolMerge() bool {
	if s.continuedDown {
		return false
	}
	if !s.parentDown {
		return false
	}
	if s.parentRight {
		return false
	}
	return !s.continuedRight
}

func (s *symbolV2) multiMerge() bool {
	if !s.parentDown {
		return false
	}
	return s.parentRight || s.continuedRight
}

func (s *symbolV2) verticalBar() bool {
	if s.empty || s.shiftLeft {
		return false
	}
	if !s.continuedDown {
		return false
	}
	if s.continuedUp {
		return true
	}
	if s.parentRight {
		return false
	}
	if s.flanked {
		return false
	}
	return !s.continuedRight
}

func (s *symbolV2) horizontalBar() bool {
	if !s.nextRight {
		return false
	}
	if s.shiftLeft {
		return true
	}
	if s.continuedDown {
		return false
	}
	if !s.parentRight && !s.continuedRight {
		return false
	}
	if s.continuedUp && !s.continuedUpLeft {
		return false
	}
	return !s.belowCommit
}

func (s *symbolV2) multiBranch() bool {
	if s.continuedDown {
		return false
	}
	if !s.continuedRight {
		return false
	}
	if s.belowShift {
		return false
	}
	if s.continuedUp || s.newColumn || s.belowCommit {
		if s.matchesCommit {
			return true
		}
		if s.shiftLeft {
			return true
		}
	}
	return false
}

func (g glyphV2) UTF8() string {
	s := &g.sym
	switch {
	case s.commit:
		switch {
		case s.boundary:
			return " ◯"
		case s.initial:
			return " ◎"
		case s.merge:
			return " ●"
		default:
			return " ∙"
		}
	case s.crossMerge():
		return "─┼"
	case s.verticalMerge():
		return "─┤"
	case s.crossOver():
		return "─│"
	case s.verticalBar():
		return " │"
	case s.turnLeft():
		return "─╯"
	case s.multiBranch():
		return "─┴"
	case s.horizontalBar():
		return "──"
	case s.forks():
		return " ├"
	case s.turnDownCrossOver():
		return "─╭"
	case s.turnDown():
		return " ╭"
	case s.symbolMerge():
		return "─╮"
	case s.multiMerge():
		return "─┬"
	default:
		return "  "
	}
}

func (g glyphV2) ASCII() string {
	s := &g.sym
	switch {
	case s.commit:
		switch {
		case s.boundary:
			return " o"
		case s.initial:
			return " I"
		case s.merge:
			return " M"
		default:
			return " *"
		}
	case s.crossMerge():
		return "-+"
	case s.verticalMerge():
		return "-|"
	case s.crossOver():
		return "-|"
	case s.verticalBar():
		return " |"
	case s.turnLeft():
		return "-'"
	case s.multiBranch():
		return "-+"
	case s.horizontalBar():
		return "--"
	case s.forks():
		return " +"
	case s.turnDownCrossOver():
		return "-."
	case s.turnDown():
		return " ."
	case s.symbolMerge():
		return "-."
	case s.multiMerge():
		return "-+"
	default:
		return "  "
	}
}

func (g glyphV2) LineDrawing() LineCells {
	s := &g.sym
	switch {
	case s.commit:
		switch {
		case s.boundary:
			return LineCells{First: ' ', Second: 'o'}
		case s.initial:
			return LineCells{First: ' ', Second: 'I'}
		case s.merge:
			return LineCells{First: ' ', Second: 'M'}
		default:
			return LineCells{First: ' ', Second: 'o'}
		}
	case s.crossMerge():
		return LineCells{acsHLine, acsPlus, true, true}
	case s.verticalMerge():
		return LineCells{acsHLine, acsRTee, true, true}
	case s.crossOver():
		return LineCells{acsHLine, acsVLine, true, true}
	case s.verticalBar():
		return LineCells{' ', acsVLine, false, true}
	case s.turnLeft():
		return LineCells{acsHLine, acsLRCorner, true, true}
	case s.multiBranch():
		return LineCells{acsHLine, acsBTee, true, true}
	case s.horizontalBar():
		return LineCells{acsHLine, acsHLine, true, true}
	case s.forks():
		return LineCells{' ', acsLTee, false, true}
	case s.turnDownCrossOver():
		return LineCells{acsHLine, acsULCorner, true, true}
	case s.turnDown():
		return LineCells{' ', acsULCorner, false, true}
	case s.symbolMerge():
		return LineCells{acsHLine, acsURCorner, true, true}
	case s.multiMerge():
		return LineCells{acsHLine, acsTTee, true, true}
	default:
		return LineCells{First: ' ', Second: ' '}
	}
}
