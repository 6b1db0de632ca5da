// Package bitstream packs bits into bytes and reads them back, most
// significant bit first.
//
// A written stream is padded with zero bits up to the next byte boundary.
// The number of padding bits is not recorded anywhere; readers that care
// must know where the meaningful bits end from context.
package bitstream

import (
	"fmt"
	"io"
)

// PadLen returns the number of zero bits that align n bits to a byte boundary.
func PadLen(n int) int {
	return (8 - n%8) % 8
}

// Writer writes individual bits to an io.Writer.
type Writer struct {
	output      io.Writer
	accumulator byte
	numBits     int // bits held in accumulator
	total       int // bits written, excluding padding
	buf         [1]byte
}

// NewWriter creates a bit writer that emits whole bytes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{output: w}
}

// WriteBit appends the lowest bit of bit.
func (bw *Writer) WriteBit(bit byte) error {
	bw.accumulator = (bw.accumulator << 1) | (bit & 1)
	bw.numBits++
	bw.total++

	if bw.numBits == 8 {
		return bw.emit()
	}
	return nil
}

// WriteCode appends a bitstring made of '0' and '1' characters.
func (bw *Writer) WriteCode(code string) error {
	for i := 0; i < len(code); i++ {
		var bit byte
		switch code[i] {
		case '0':
			bit = 0
		case '1':
			bit = 1
		default:
			return fmt.Errorf("invalid bit %q at offset %d", code[i], i)
		}
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of bits written so far, not counting padding.
func (bw *Writer) Len() int {
	return bw.total
}

// Flush pads the pending bits with zeros to complete the final byte.
// It returns the number of padding bits added.
func (bw *Writer) Flush() (int, error) {
	if bw.numBits == 0 {
		return 0, nil
	}
	pad := 8 - bw.numBits
	bw.accumulator <<= pad
	return pad, bw.emit()
}

func (bw *Writer) emit() error {
	bw.buf[0] = bw.accumulator
	bw.accumulator = 0
	bw.numBits = 0
	_, err := bw.output.Write(bw.buf[:])
	return err
}
