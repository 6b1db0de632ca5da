// Package archive compresses text files into .ckf archives and restores
// them.
//
// Output names are derived from the input name: the final extension is
// dropped and ".ckf" or "_dc.txt" is appended. Outputs are written to a
// temporary file first and renamed into place, so a failed operation leaves
// no output behind.
package archive

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"

	"github.com/Kasrabzm/Huffman-algorithm-text-compression/ckf"
	"github.com/Kasrabzm/Huffman-algorithm-text-compression/huffman"
)

const (
	// Extension is appended to the stem of compressed files.
	Extension = ".ckf"
	// DecompressedSuffix is appended to the stem of restored files.
	DecompressedSuffix = "_dc.txt"
)

var (
	// ErrInputUnavailable is returned when the input file cannot be read.
	ErrInputUnavailable = errors.New("archive: input unavailable")
	// ErrInvalidPath is returned when no output name can be derived.
	ErrInvalidPath = errors.New("archive: cannot derive output name")
)

// Options configures a Compressor. The zero value is ready to use.
type Options struct {
	// OutputDir receives the outputs. Empty means next to the input.
	OutputDir string
	// SingleSymbol decides how text made of one repeated symbol is handled.
	SingleSymbol huffman.SingleSymbolPolicy
	// Logger receives progress messages. Nil discards them.
	Logger *slog.Logger
}

// Compressor converts between text files and archives. It keeps no state
// between calls and may be used concurrently.
type Compressor struct {
	outputDir string
	policy    huffman.SingleSymbolPolicy
	logger    *slog.Logger
}

// New creates a Compressor.
func New(opts Options) *Compressor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Compressor{
		outputDir: opts.OutputDir,
		policy:    opts.SingleSymbol,
		logger:    logger,
	}
}

// Stem returns the base name of path without its final extension.
//
//	"dir/notes.txt"  -> "notes"
//	"a.tar.txt"      -> "a.tar"
//	"README"         -> "README"
//	".profile"       -> ".profile"
func Stem(path string) (string, error) {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	switch base {
	case "", ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return base, nil
}

// CompressedPath returns where Compress writes the archive for input.
func (c *Compressor) CompressedPath(input string) (string, error) {
	return c.outputPath(input, Extension)
}

// DecompressedPath returns where Decompress writes the text for input.
func (c *Compressor) DecompressedPath(input string) (string, error) {
	return c.outputPath(input, DecompressedSuffix)
}

func (c *Compressor) outputPath(input, suffix string) (string, error) {
	stem, err := Stem(input)
	if err != nil {
		return "", err
	}
	dir := c.outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, stem+suffix), nil
}

// Compress reads the text file at input and writes its archive. It returns
// the path of the archive.
func (c *Compressor) Compress(input string) (string, error) {
	output, err := c.CompressedPath(input)
	if err != nil {
		return "", err
	}

	data, err := readInput(input)
	if err != nil {
		return "", err
	}

	archive, enc, err := Pack(uf.B2S(data), c.policy)
	if err != nil {
		return "", fmt.Errorf("compress %s: %w", input, err)
	}
	c.logger.Debug("built code table",
		"symbols", enc.Table.Len(),
		"depth", huffman.Depth(enc.Tree),
		"bits", enc.Bits)

	if err := writeAtomic(output, archive); err != nil {
		return "", fmt.Errorf("compress %s: %w", input, err)
	}

	c.logger.Info("compressed",
		"input", input,
		"output", output,
		"bytes_in", len(data),
		"bytes_out", len(archive))
	return output, nil
}

// Decompress reads the archive at input and writes the restored text. It
// returns the path of the text file.
func (c *Compressor) Decompress(input string) (string, error) {
	output, err := c.DecompressedPath(input)
	if err != nil {
		return "", err
	}
	if !strcomp.EqualFold(filepath.Ext(input), Extension) {
		c.logger.Warn("input does not have the archive extension", "input", input)
	}

	data, err := readInput(input)
	if err != nil {
		return "", err
	}

	text, err := Unpack(data)
	if err != nil {
		return "", fmt.Errorf("decompress %s: %w", input, err)
	}

	if err := writeAtomic(output, uf.S2B(text)); err != nil {
		return "", fmt.Errorf("decompress %s: %w", input, err)
	}

	c.logger.Info("decompressed",
		"input", input,
		"output", output,
		"bytes_in", len(data),
		"bytes_out", len(text))
	return output, nil
}

// Pack compresses text into archive bytes.
func Pack(text string, policy huffman.SingleSymbolPolicy) ([]byte, *huffman.Encoded, error) {
	enc, err := huffman.Encode(text, huffman.Options{SingleSymbol: policy})
	if err != nil {
		return nil, nil, err
	}
	data, err := ckf.Marshal(ckf.Record{Tree: enc.Tree, Payload: enc.Payload})
	if err != nil {
		return nil, nil, err
	}
	return data, enc, nil
}

// Unpack restores the text stored in archive bytes. Besides the checks done
// by ckf.Unmarshal it verifies that the payload holds as many symbols as the
// tree says.
func Unpack(data []byte) (string, error) {
	_, text, err := unpack(data)
	return text, err
}

func unpack(data []byte) (ckf.Record, string, error) {
	rec, err := ckf.Unmarshal(data)
	if err != nil {
		return ckf.Record{}, "", err
	}

	text, err := huffman.Decode(rec.Tree, rec.Payload)
	if err != nil {
		return ckf.Record{}, "", fmt.Errorf("%w: %w", ckf.ErrCorruptArchive, err)
	}
	if n := uint64(utf8.RuneCountInString(text)); n != rec.Tree.Freq() {
		return ckf.Record{}, "", fmt.Errorf("%w: payload holds %d of %d symbols", ckf.ErrCorruptArchive, n, rec.Tree.Freq())
	}
	return rec, text, nil
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	return data, nil
}

// writeAtomic writes data to a temporary file next to path and renames it
// over path once everything has been written.
func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
