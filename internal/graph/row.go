package graph

// columnChunk is the growth granularity rows allocate in. graph-v1.c and
// graph-v2.c both realloc their column arrays 32 entries at a time
// (DEFINE_ALLOCATOR(..., 32)); Go slices already amortize growth on their
// own, but growColumn still seeds new backing arrays in the same 32-column
// chunks rather than relying on whatever growth factor append picks.
const columnChunk = 32

// growColumn appends one zero-valued column to cols at the end, pre-sizing
// the backing array in columnChunk-sized steps when it needs to grow.
func growColumn[T any](cols []T) []T {
	if len(cols) == cap(cols) {
		grown := make([]T, len(cols), len(cols)+columnChunk)
		copy(grown, cols)
		cols = grown
	}
	var zero T
	return append(cols, zero)
}

// insertColumn inserts a zero-valued column at pos, shifting [pos, end)
// one slot to the right, and returns the grown slice together with a
// pointer to the newly inserted (still zero) element for the caller to
// populate.
func insertColumn[T any](cols []T, pos int) ([]T, *T) {
	cols = growColumn(cols)
	copy(cols[pos+1:], cols[pos:len(cols)-1])
	var zero T
	cols[pos] = zero
	return cols, &cols[pos]
}
