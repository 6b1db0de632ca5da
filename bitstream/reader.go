package bitstream

import (
	"io"
	"iter"
)

// Reader reads individual bits from an io.Reader.
type Reader struct {
	input       io.Reader
	accumulator byte
	numBits     int
	buf         [1]byte
}

// NewReader creates a bit reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{input: r}
}

// ReadBit returns the next bit. It returns io.EOF once r is exhausted.
func (br *Reader) ReadBit() (byte, error) {
	if br.numBits == 0 {
		if _, err := io.ReadFull(br.input, br.buf[:]); err != nil {
			return 0, err
		}
		br.accumulator = br.buf[0]
		br.numBits = 8
	}

	br.numBits--
	return (br.accumulator >> br.numBits) & 1, nil
}

// Bits returns the bits of r as a single-pass sequence.
//
// The sequence ends silently when r is exhausted. Any other read failure is
// yielded once as a non-nil error, after which the sequence ends. Since the
// bits are pulled from r, ranging over the sequence a second time does not
// restart it.
func Bits(r io.Reader) iter.Seq2[byte, error] {
	br := NewReader(r)
	return func(yield func(byte, error) bool) {
		for {
			bit, err := br.ReadBit()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(bit, nil) {
				return
			}
		}
	}
}
