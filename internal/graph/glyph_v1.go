package graph

// UTF8 ports graph-v1.c's graph_symbol_to_utf8.
func (g glyphV1) UTF8() string {
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
	case s.merge:
		switch {
		case s.branch:
			return "━┪"
		case s.vbranch:
			return "━┯"
		default:
			return "━┑"
		}
	case s.branch:
		switch {
		case s.branched:
			if s.vbranch {
				return "─┴"
			}
			return "─┘"
		case s.vbranch:
			return "─│"
		default:
			return " │"
		}
	case s.vbranch:
		return "──"
	default:
		return "  "
	}
}

// ASCII ports graph-v1.c's graph_symbol_to_ascii.
func (g glyphV1) ASCII() string {
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
	case s.merge:
		if s.branch {
			return "-+"
		}
		return "-."
	case s.branch:
		switch {
		case s.branched:
			if s.vbranch {
				return "-+"
			}
			return "-'"
		case s.vbranch:
			return "-|"
		default:
			return " |"
		}
	case s.vbranch:
		return "--"
	default:
		return "  "
	}
}

// LineDrawing ports graph-v1.c's graph_symbol_to_chtype.
func (g glyphV1) LineDrawing() LineCells {
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
	case s.merge:
		if s.branch {
			return LineCells{acsHLine, acsRTee, true, true}
		}
		return LineCells{acsHLine, acsURCorner, true, true}
	case s.branch:
		if s.branched {
			if s.vbranch {
				return LineCells{acsHLine, acsBTee, true, true}
			}
			return LineCells{acsHLine, acsLRCorner, true, true}
		}
		if s.vbranch {
			return LineCells{acsHLine, acsVLine, true, true}
		}
		return LineCells{' ', acsVLine, false, true}
	case s.vbranch:
		return LineCells{acsHLine, acsHLine, true, true}
	default:
		return LineCells{First: ' ', Second: ' '}
	}
}
