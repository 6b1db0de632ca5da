package huffman

import "errors"

var (
	// ErrEmptyInput is returned when there is no text to build a tree from.
	ErrEmptyInput = errors.New("huffman: empty input")
	// ErrInvalidText is returned for text that is not valid UTF-8.
	ErrInvalidText = errors.New("huffman: text is not valid UTF-8")
	// ErrSingleSymbol is returned by Encode under RejectSingleSymbol when the
	// text consists of one repeated symbol.
	ErrSingleSymbol = errors.New("huffman: input has a single distinct symbol")
	// ErrUnknownSymbol is returned when text contains a symbol the code table
	// has no code for.
	ErrUnknownSymbol = errors.New("huffman: symbol missing from code table")
	// ErrMalformedTree is returned for trees that break the node invariants.
	ErrMalformedTree = errors.New("huffman: malformed tree")
	// ErrBitstreamMismatch is returned when a payload cannot have been
	// produced from the given tree.
	ErrBitstreamMismatch = errors.New("huffman: bitstream does not match tree")
)
