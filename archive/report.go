package archive

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/Kasrabzm/Huffman-algorithm-text-compression/bitstream"
	"github.com/Kasrabzm/Huffman-algorithm-text-compression/huffman"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report describes the content of an archive.
type Report struct {
	Archive      string `json:"archive"`
	ArchiveBytes int    `json:"archive_bytes"`
	TextBytes    int    `json:"text_bytes"`
	TextSymbols  uint64 `json:"text_symbols"`
	Symbols      int    `json:"symbols"`
	TreeDepth    int    `json:"tree_depth"`
	PayloadBytes int    `json:"payload_bytes"`
	EncodedBits  uint64 `json:"encoded_bits"`
	PaddingBits  int    `json:"padding_bits"`
	// AverageCodeLength is in bits per symbol.
	AverageCodeLength float64 `json:"average_code_length"`
	// Ratio is archive size over text size.
	Ratio float64     `json:"ratio"`
	Codes []CodeEntry `json:"codes"`
}

// CodeEntry is one row of the code table.
type CodeEntry struct {
	Symbol    string `json:"symbol"`
	Frequency uint64 `json:"frequency"`
	Code      string `json:"code"`
}

// Inspect decodes the archive at path and reports on its content.
func (c *Compressor) Inspect(path string) (*Report, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}

	report, err := Describe(data)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", path, err)
	}
	report.Archive = path
	return report, nil
}

// Describe reports on the content of archive bytes.
func Describe(data []byte) (*Report, error) {
	rec, text, err := unpack(data)
	if err != nil {
		return nil, err
	}

	freqs := huffman.Frequencies(rec.Tree)
	table := huffman.NewCodeTable(rec.Tree)
	bits := table.EncodedLen(freqs)

	report := &Report{
		ArchiveBytes:      len(data),
		TextBytes:         len(text),
		TextSymbols:       rec.Tree.Freq(),
		Symbols:           table.Len(),
		TreeDepth:         huffman.Depth(rec.Tree),
		PayloadBytes:      len(rec.Payload),
		EncodedBits:       bits,
		PaddingBits:       bitstream.PadLen(int(bits % 8)),
		AverageCodeLength: table.AverageLength(freqs),
		Ratio:             float64(len(data)) / float64(len(text)),
	}
	for _, sym := range table.Symbols() {
		code, _ := table.Code(sym)
		report.Codes = append(report.Codes, CodeEntry{
			Symbol:    string(sym),
			Frequency: freqs[sym],
			Code:      code,
		})
	}
	return report, nil
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
