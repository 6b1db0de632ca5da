package huffman

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	"github.com/Kasrabzm/Huffman-algorithm-text-compression/bitstream"
)

type walkStatus int

const (
	walkLeaf       walkStatus = iota // reached a leaf
	walkDoneAtRoot                   // bits ran out before the walk started
	walkDoneInPath                   // bits ran out part way down the tree
)

type nextBit func() (byte, error, bool)

// Symbols returns the symbols encoded in payload, decoded by walking root.
//
// Each bit moves one level down the tree, 0 to the left and 1 to the right;
// reaching a leaf yields its symbol and restarts at the root. Decoding stops
// without an error as soon as the bits run out, whether that happens at the
// root or part way down a path, and the cut-off path yields nothing. It also
// stops once root.Freq() symbols have been produced, since the root weight
// is the length of the encoded text and the zero padding could otherwise
// spell out another code.
func Symbols(root Node, payload []byte) iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		if root == nil {
			yield(0, fmt.Errorf("%w: missing root", ErrMalformedTree))
			return
		}

		next, stop := iter.Pull2(bitstream.Bits(bytes.NewReader(payload)))
		defer stop()

		if leaf, ok := root.(*Leaf); ok {
			decodeSingle(leaf, next, yield)
			return
		}

		for remaining := root.Freq(); remaining > 0; remaining-- {
			sym, status, err := walk(root, next)
			if err != nil {
				yield(0, err)
				return
			}
			switch status {
			case walkDoneAtRoot, walkDoneInPath:
				return
			}
			if !yield(sym, nil) {
				return
			}
		}
	}
}

// Decode decodes payload with root and returns the text.
func Decode(root Node, payload []byte) (string, error) {
	var sb strings.Builder
	for sym, err := range Symbols(root, payload) {
		if err != nil {
			return "", err
		}
		sb.WriteRune(sym)
	}
	return sb.String(), nil
}

func walk(root Node, next nextBit) (rune, walkStatus, error) {
	status := walkDoneAtRoot
	n := root
	for {
		switch cur := n.(type) {
		case *Leaf:
			if cur == nil {
				return 0, status, fmt.Errorf("%w: missing leaf", ErrMalformedTree)
			}
			return cur.Symbol, walkLeaf, nil

		case *Internal:
			if cur == nil {
				return 0, status, fmt.Errorf("%w: missing node", ErrMalformedTree)
			}
			bit, err, ok := next()
			if !ok {
				return 0, status, nil
			}
			if err != nil {
				return 0, status, err
			}
			status = walkDoneInPath
			if bit == 0 {
				n = cur.Left
			} else {
				n = cur.Right
			}

		default:
			return 0, status, fmt.Errorf("%w: missing child", ErrMalformedTree)
		}
	}
}

// decodeSingle decodes a payload written for a one-leaf tree: every 1 bit
// is the symbol, the first 0 bit starts the padding.
func decodeSingle(leaf *Leaf, next nextBit, yield func(rune, error) bool) {
	remaining := leaf.Frequency
	padding := false
	for {
		bit, err, ok := next()
		if !ok {
			return
		}
		if err != nil {
			yield(0, err)
			return
		}

		switch {
		case bit == 0:
			padding = true
		case padding || remaining == 0:
			yield(0, fmt.Errorf("%w: set bit after the last symbol", ErrBitstreamMismatch))
			return
		default:
			if !yield(leaf.Symbol, nil) {
				return
			}
			remaining--
		}
	}
}
