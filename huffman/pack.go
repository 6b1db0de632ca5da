package huffman

import (
	"bytes"
	"fmt"

	"github.com/Kasrabzm/Huffman-algorithm-text-compression/bitstream"
)

// Pack encodes text with table into bytes. The concatenated codes are
// padded with zero bits up to the next byte boundary; the padding length is
// not stored.
func Pack(text string, table *CodeTable) ([]byte, error) {
	var buf bytes.Buffer
	bw := bitstream.NewWriter(&buf)

	for offset, r := range text {
		code, ok := table.Code(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownSymbol, r, offset)
		}
		if err := bw.WriteCode(code); err != nil {
			return nil, fmt.Errorf("symbol %q: %w", r, err)
		}
	}

	if _, err := bw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
