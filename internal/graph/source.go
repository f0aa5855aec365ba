package graph

// CommitRecord is the engine's external input record: an identifier, its
// parent identifiers, and whether it is a boundary commit (a commit at the
// walk's frontier; its own parents were not explored and are not part of
// the stream). Title is not consumed by the engine — it rides alongside
// the record so a caller can print "<glyph-row> <title>" once RenderParents
// has produced the row, as the conformance harness in cmd/tigview does.
type CommitRecord struct {
	ID       string
	Parents  []string
	Boundary bool
	Title    string
}

// CommitIterator produces CommitRecords in the order the caller wants them
// drawn (topological order). It is the one point of contact between the
// engine and whatever upstream produces commits — a repository walk, a
// subprocess, or a conformance-test stdin parser — all of which the engine
// itself never looks at directly; it only consumes them through this
// interface.
type CommitIterator interface {
	// Next returns the next record and true, or a zero CommitRecord and
	// false once the stream is exhausted.
	Next() (CommitRecord, bool)
}

// SliceIterator adapts a pre-built slice of CommitRecords into a
// CommitIterator.
type SliceIterator struct {
	records []CommitRecord
	pos     int
}

// NewSliceIterator wraps records for sequential delivery.
func NewSliceIterator(records []CommitRecord) *SliceIterator {
	return &SliceIterator{records: records}
}

// Next implements CommitIterator.
func (s *SliceIterator) Next() (CommitRecord, bool) {
	if s.pos >= len(s.records) {
		return CommitRecord{}, false
	}
	r := s.records[s.pos]
	s.pos++
	return r, true
}
