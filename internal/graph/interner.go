package graph

import "sync"

// Interner deduplicates identifier strings into shared handles so that
// equality between two interned ids can be tested by pointer comparison
// instead of a byte-by-byte string compare. It is safe for concurrent use;
// the table is append-mostly, so a single RWMutex is sufficient.
type Interner struct {
	mu    sync.RWMutex
	table map[string]*string
}

// NewInterner returns an empty interner.
func NewInterner() *Interner {
	return &Interner{table: make(map[string]*string, 500)}
}

// Intern returns the shared handle for s, creating one on first use.
func (in *Interner) Intern(s string) *string {
	in.mu.RLock()
	if p, ok := in.table[s]; ok {
		in.mu.RUnlock()
		return p
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	if p, ok := in.table[s]; ok {
		return p
	}
	p := new(string)
	*p = s
	in.table[s] = p
	return p
}
