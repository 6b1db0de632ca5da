package huffman

import (
	"fmt"
	"unicode/utf8"
)

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.
type Node interface {
	// Freq returns the total frequency of the symbols below the node.
	Freq() uint64

	node()
}

// Leaf holds one symbol and how often it occurs.
type Leaf struct {
	Symbol    rune
	Frequency uint64
}

// Internal joins two subtrees. It owns both children.
type Internal struct {
	Frequency   uint64
	Left, Right Node
}

func (l *Leaf) Freq() uint64     { return l.Frequency }
func (n *Internal) Freq() uint64 { return n.Frequency }

func (*Leaf) node()     {}
func (*Internal) node() {}

// Merge creates an internal node over left and right.
func Merge(left, right Node) *Internal {
	return &Internal{
		Frequency: left.Freq() + right.Freq(),
		Left:      left,
		Right:     right,
	}
}

// CountLeaves returns the number of leaves below root.
func CountLeaves(root Node) int {
	switch n := root.(type) {
	case *Leaf:
		return 1
	case *Internal:
		return CountLeaves(n.Left) + CountLeaves(n.Right)
	}
	return 0
}

// Depth returns the length of the longest root-to-leaf path.
func Depth(root Node) int {
	n, ok := root.(*Internal)
	if !ok {
		return 0
	}
	return 1 + max(Depth(n.Left), Depth(n.Right))
}

// Validate checks that root is a well formed Huffman tree: every internal
// node has two children and the sum of their frequencies, every leaf has a
// positive frequency and a valid rune, and no symbol appears twice.
func Validate(root Node) error {
	seen := make(map[rune]struct{})
	return validate(root, seen, 0)
}

func validate(n Node, seen map[rune]struct{}, depth int) error {
	switch n := n.(type) {
	case *Leaf:
		if n == nil {
			return fmt.Errorf("%w: missing node at depth %d", ErrMalformedTree, depth)
		}
		if n.Frequency == 0 {
			return fmt.Errorf("%w: symbol %q has zero frequency", ErrMalformedTree, n.Symbol)
		}
		if !utf8.ValidRune(n.Symbol) {
			return fmt.Errorf("%w: invalid symbol %U", ErrMalformedTree, n.Symbol)
		}
		if _, dup := seen[n.Symbol]; dup {
			return fmt.Errorf("%w: duplicate symbol %q", ErrMalformedTree, n.Symbol)
		}
		seen[n.Symbol] = struct{}{}
		return nil

	case *Internal:
		if n == nil {
			return fmt.Errorf("%w: missing node at depth %d", ErrMalformedTree, depth)
		}
		if err := validate(n.Left, seen, depth+1); err != nil {
			return err
		}
		if err := validate(n.Right, seen, depth+1); err != nil {
			return err
		}
		left, right := n.Left.Freq(), n.Right.Freq()
		if sum := left + right; sum < left || sum != n.Frequency {
			return fmt.Errorf("%w: frequency %d at depth %d, children sum to %d+%d",
				ErrMalformedTree, n.Frequency, depth, left, right)
		}
		return nil
	}

	return fmt.Errorf("%w: missing node at depth %d", ErrMalformedTree, depth)
}

// Frequencies collects the symbol frequencies stored in the leaves of root.
func Frequencies(root Node) FrequencyTable {
	freqs := make(FrequencyTable)
	collect(root, freqs)
	return freqs
}

func collect(n Node, freqs FrequencyTable) {
	switch n := n.(type) {
	case *Leaf:
		freqs[n.Symbol] = n.Frequency
	case *Internal:
		collect(n.Left, freqs)
		collect(n.Right, freqs)
	}
}
