package bitstream

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"
)

func TestPadLen(t *testing.T) {
	tests := []struct {
		bits     int
		expected int
	}{
		{0, 0},
		{1, 7},
		{7, 1},
		{8, 0},
		{9, 7},
		{13, 3},
		{16, 0},
	}

	for _, tt := range tests {
		if got := PadLen(tt.bits); got != tt.expected {
			t.Errorf("PadLen(%d) = %d, expected %d", tt.bits, got, tt.expected)
		}
	}
}

func TestWriterPadsWithZeros(t *testing.T) {
	var buf bytes.Buffer
	bw := NewWriter(&buf)
	if err := bw.WriteCode("1011"); err != nil {
		t.Fatalf("WriteCode failed: %v", err)
	}
	if bw.Len() != 4 {
		t.Errorf("Expected 4 bits written, got %d", bw.Len())
	}

	pad, err := bw.Flush()
	if err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if pad != 4 {
		t.Errorf("Expected 4 padding bits, got %d", pad)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0xB0}) {
		t.Errorf("Expected [0xb0], got %x", buf.Bytes())
	}
}

func TestWriterByteAligned(t *testing.T) {
	var buf bytes.Buffer
	bw := NewWriter(&buf)
	if err := bw.WriteCode("1000000011111111"); err != nil {
		t.Fatalf("WriteCode failed: %v", err)
	}
	pad, err := bw.Flush()
	if err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if pad != 0 {
		t.Errorf("Expected no padding, got %d", pad)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x80, 0xFF}) {
		t.Errorf("Expected [0x80 0xff], got %x", buf.Bytes())
	}
}

func TestWriterRejectsInvalidBits(t *testing.T) {
	bw := NewWriter(io.Discard)
	if err := bw.WriteCode("01x"); err == nil {
		t.Error("Expected error for invalid bit character")
	}
}

func TestReaderMSBFirst(t *testing.T) {
	br := NewReader(bytes.NewReader([]byte{0xA5}))
	expected := []byte{1, 0, 1, 0, 0, 1, 0, 1}
	for i, want := range expected {
		bit, err := br.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit %d failed: %v", i, err)
		}
		if bit != want {
			t.Errorf("Bit %d: expected %d, got %d", i, want, bit)
		}
	}
	if _, err := br.ReadBit(); err != io.EOF {
		t.Errorf("Expected io.EOF after last bit, got %v", err)
	}
}

func TestBitsSinglePass(t *testing.T) {
	seq := Bits(bytes.NewReader([]byte{0xF0, 0x0F}))

	var first []byte
	for bit, err := range seq {
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		first = append(first, bit)
		if len(first) == 4 {
			break
		}
	}

	var rest []byte
	for bit, err := range seq {
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		rest = append(rest, bit)
	}

	if !bytes.Equal(first, []byte{1, 1, 1, 1}) {
		t.Errorf("First pass: got %v", first)
	}
	// The second range continues where the first one stopped.
	if !bytes.Equal(rest, []byte{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1}) {
		t.Errorf("Second pass: got %v", rest)
	}
}

type failingReader struct{}

var errBroken = errors.New("broken reader")

func (failingReader) Read([]byte) (int, error) { return 0, errBroken }

func TestBitsReportsReadErrors(t *testing.T) {
	count := 0
	var gotErr error
	for _, err := range Bits(failingReader{}) {
		count++
		gotErr = err
	}
	if count != 1 || !errors.Is(gotErr, errBroken) {
		t.Errorf("Expected a single errBroken, got %d items, last error %v", count, gotErr)
	}
}

func TestRoundtripRandomBits(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	for trial := 0; trial < 100; trial++ {
		bits := make([]byte, 1+rng.Intn(200))
		for i := range bits {
			bits[i] = byte(rng.Intn(2))
		}

		var buf bytes.Buffer
		bw := NewWriter(&buf)
		for _, bit := range bits {
			if err := bw.WriteBit(bit); err != nil {
				t.Fatalf("Trial %d: WriteBit failed: %v", trial, err)
			}
		}
		pad, err := bw.Flush()
		if err != nil {
			t.Fatalf("Trial %d: Flush failed: %v", trial, err)
		}
		if pad != PadLen(len(bits)) {
			t.Errorf("Trial %d: pad %d, expected %d", trial, pad, PadLen(len(bits)))
		}

		var decoded []byte
		for bit, err := range Bits(&buf) {
			if err != nil {
				t.Fatalf("Trial %d: read failed: %v", trial, err)
			}
			decoded = append(decoded, bit)
		}

		if len(decoded) != len(bits)+pad {
			t.Fatalf("Trial %d: expected %d bits, got %d", trial, len(bits)+pad, len(decoded))
		}
		if !bytes.Equal(decoded[:len(bits)], bits) {
			t.Errorf("Trial %d: bits don't match", trial)
		}
		for i, bit := range decoded[len(bits):] {
			if bit != 0 {
				t.Errorf("Trial %d: padding bit %d is %d", trial, i, bit)
			}
		}
	}
}
