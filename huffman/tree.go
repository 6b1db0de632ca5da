package huffman

import (
	"cmp"
	"fmt"
	"slices"
)

// BuildTree builds a Huffman tree by repeatedly merging the two nodes with
// the lowest frequencies until a single root remains.
//
// Nodes are ordered by frequency only. Leaves are seeded in ascending symbol
// order and the working list is re-sorted stably, so the same table always
// produces the same tree. A table with one symbol yields a lone *Leaf.
func BuildTree(freqs FrequencyTable) (Node, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}

	work := make([]Node, 0, len(freqs))
	for _, sym := range freqs.Symbols() {
		f := freqs[sym]
		if f == 0 {
			return nil, fmt.Errorf("%w: symbol %q has zero frequency", ErrMalformedTree, sym)
		}
		work = append(work, &Leaf{Symbol: sym, Frequency: f})
	}
	sortDescending(work)

	for len(work) > 1 {
		// The tail holds the two lowest frequencies; the lowest goes left.
		n := len(work)
		merged := Merge(work[n-1], work[n-2])
		work[n-1] = nil
		work = append(work[:n-2], merged)
		sortDescending(work)
	}

	return work[0], nil
}

func sortDescending(work []Node) {
	slices.SortStableFunc(work, func(a, b Node) int {
		return cmp.Compare(b.Freq(), a.Freq())
	})
}
