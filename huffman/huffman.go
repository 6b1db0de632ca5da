// Package huffman implements Huffman coding of text.
//
// Encoding counts how often each code point occurs, builds a tree by
// repeatedly merging the two least frequent nodes, derives a prefix code for
// every leaf and packs the codes of the text into bytes. Decoding needs only
// the tree and the packed bytes: it walks the tree bit by bit.
package huffman

import "fmt"

// SingleSymbolPolicy decides how text with one distinct symbol is encoded.
// Such text produces a tree whose root is a leaf, which has no path and so
// no natural code.
type SingleSymbolPolicy int

const (
	// OneBitCode encodes the symbol as SingleSymbolCode, one bit per
	// occurrence.
	OneBitCode SingleSymbolPolicy = iota
	// RejectSingleSymbol makes Encode fail with ErrSingleSymbol.
	RejectSingleSymbol
)

func (p SingleSymbolPolicy) String() string {
	switch p {
	case OneBitCode:
		return "one-bit"
	case RejectSingleSymbol:
		return "reject"
	}
	return fmt.Sprintf("SingleSymbolPolicy(%d)", int(p))
}

// Options configures Encode. The zero value is ready to use.
type Options struct {
	SingleSymbol SingleSymbolPolicy
}

// Encoded is the result of Encode.
type Encoded struct {
	Tree        Node
	Table       *CodeTable
	Frequencies FrequencyTable
	Payload     []byte
	// Bits is the number of meaningful bits in Payload.
	Bits uint64
}

// Encode compresses text.
func Encode(text string, opts Options) (*Encoded, error) {
	freqs, err := CountFrequencies(text)
	if err != nil {
		return nil, err
	}
	if len(freqs) == 1 && opts.SingleSymbol == RejectSingleSymbol {
		return nil, fmt.Errorf("%w: %q", ErrSingleSymbol, freqs.Symbols()[0])
	}

	tree, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}

	table := NewCodeTable(tree)
	payload, err := Pack(text, table)
	if err != nil {
		return nil, err
	}

	return &Encoded{
		Tree:        tree,
		Table:       table,
		Frequencies: freqs,
		Payload:     payload,
		Bits:        table.EncodedLen(freqs),
	}, nil
}
