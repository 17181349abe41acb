// Package index implements the narrow lookup contract multibyte
// codecs consume (spec §3 "Index table", §4 component C). The core
// never knows how a table is stored; it only calls Forward/Backward.
// Generating or compressing the tables themselves is explicitly out
// of scope (spec §1) — the tables below are small, hand-written
// cross-sections sufficient to exercise every codec path and the
// documented end-to-end scenarios, not full WHATWG table compilations.
package index

import "sort"

// Table is a read-only mapping between a compact integer domain (e.g.
// 0..94² for JIS X 0208) and a Unicode codepoint, plus its inverse.
type Table struct {
	forward  map[int]rune
	backward map[rune]int
	// pairs holds Big5-HKSCS-style one-index-to-two-codepoints entries.
	pairs map[int][2]rune
}

// New builds a Table from a forward mapping. The inverse is derived
// automatically; where multiple indices map to the same codepoint the
// smallest index wins, matching the WHATWG "pick the first in table
// order" tie-break used for encoder round-tripping.
func New(forward map[int]rune) *Table {
	t := &Table{forward: forward, backward: make(map[rune]int, len(forward))}
	keys := make([]int, 0, len(forward))
	for k := range forward {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	for _, k := range keys {
		t.backward[forward[k]] = k
	}
	return t
}

// WithPairs attaches HKSCS-style dual-codepoint entries to t and
// returns t for chaining.
func (t *Table) WithPairs(pairs map[int][2]rune) *Table {
	t.pairs = pairs
	return t
}

// Forward maps an index to its codepoint. ok is false if the index is
// unassigned in this table.
func (t *Table) Forward(i int) (r rune, ok bool) {
	r, ok = t.forward[i]
	return
}

// ForwardPair maps an index to two codepoints for the rare entries
// (Big5-HKSCS) that require it. ok is false for every other index.
func (t *Table) ForwardPair(i int) (pair [2]rune, ok bool) {
	pair, ok = t.pairs[i]
	return
}

// Backward maps a codepoint to its index. ok is false if the codepoint
// is not representable in this table.
func (t *Table) Backward(r rune) (i int, ok bool) {
	i, ok = t.backward[r]
	return
}

// Len reports the number of forward entries, for diagnostics and
// tests only.
func (t *Table) Len() int { return len(t.forward) }
