package huffman

import (
	"maps"
	"slices"
)

// SingleSymbolCode is the code given to the only symbol of a one-leaf tree.
// It is "1" rather than "0" so that the zero padding after the last code
// cannot be mistaken for more symbols.
const SingleSymbolCode = "1"

// CodeTable maps symbols to their bitstrings and back. A bitstring is a
// string of '0' and '1' characters, '0' meaning a step to the left child.
type CodeTable struct {
	codes   map[rune]string
	symbols map[string]rune
}

// NewCodeTable derives the prefix codes of every leaf in root.
func NewCodeTable(root Node) *CodeTable {
	ct := &CodeTable{
		codes:   make(map[rune]string),
		symbols: make(map[string]rune),
	}

	if leaf, ok := root.(*Leaf); ok {
		ct.add(leaf.Symbol, SingleSymbolCode)
		return ct
	}

	ct.fill(root, "")
	return ct
}

func (ct *CodeTable) fill(n Node, code string) {
	switch n := n.(type) {
	case *Leaf:
		ct.add(n.Symbol, code)
	case *Internal:
		ct.fill(n.Left, code+"0")
		ct.fill(n.Right, code+"1")
	}
}

func (ct *CodeTable) add(sym rune, code string) {
	ct.codes[sym] = code
	ct.symbols[code] = sym
}

// Code returns the bitstring for sym.
func (ct *CodeTable) Code(sym rune) (string, bool) {
	code, ok := ct.codes[sym]
	return code, ok
}

// Symbol returns the symbol encoded by code.
func (ct *CodeTable) Symbol(code string) (rune, bool) {
	sym, ok := ct.symbols[code]
	return sym, ok
}

// Len returns the number of symbols in the table.
func (ct *CodeTable) Len() int {
	return len(ct.codes)
}

// Symbols returns the symbols of the table in ascending order.
func (ct *CodeTable) Symbols() []rune {
	return slices.Sorted(maps.Keys(ct.codes))
}

// EncodedLen returns the number of bits needed to encode a text with the
// given frequencies, excluding padding.
func (ct *CodeTable) EncodedLen(freqs FrequencyTable) uint64 {
	var bits uint64
	for sym, f := range freqs {
		bits += f * uint64(len(ct.codes[sym]))
	}
	return bits
}

// AverageLength returns the mean code length in bits per symbol, weighted
// by freqs.
func (ct *CodeTable) AverageLength(freqs FrequencyTable) float64 {
	total := freqs.Total()
	if total == 0 {
		return 0
	}
	return float64(ct.EncodedLen(freqs)) / float64(total)
}
