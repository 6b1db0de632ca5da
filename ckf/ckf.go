// Package ckf reads and writes .ckf archives.
//
// An archive starts with the magic bytes "CKF" and a version byte, followed
// by a protobuf message holding two length-delimited blocks: the Huffman
// tree, serialised recursively by value, and then the packed payload.
package ckf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/Kasrabzm/Huffman-algorithm-text-compression/huffman"
)

// Version is the archive format version written by Marshal.
const Version = 1

var magic = []byte("CKF")

// ErrCorruptArchive is returned for archives that are truncated, malformed
// or whose payload does not fit the stored tree.
var ErrCorruptArchive = errors.New("ckf: corrupt archive")

// Record is the content of an archive.
type Record struct {
	Tree    huffman.Node
	Payload []byte
}

// Marshal encodes rec as an archive.
func Marshal(rec Record) ([]byte, error) {
	if err := huffman.Validate(rec.Tree); err != nil {
		return nil, err
	}

	payload := rec.Payload
	if payload == nil {
		payload = []byte{}
	}

	msg := dynamicpb.NewMessage(archiveSchema.archive)
	msg.Set(archiveSchema.tree, protoreflect.ValueOfMessage(encodeNode(rec.Tree)))
	msg.Set(archiveSchema.payload, protoreflect.ValueOfBytes(payload))

	body, err := proto.MarshalOptions{Deterministic: true}.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal archive: %w", err)
	}

	out := make([]byte, 0, len(magic)+1+len(body))
	out = append(out, magic...)
	out = append(out, Version)
	return append(out, body...), nil
}

// Unmarshal decodes an archive produced by Marshal.
func Unmarshal(data []byte) (Record, error) {
	if len(data) < len(magic)+1 || !bytes.Equal(data[:len(magic)], magic) {
		return Record{}, fmt.Errorf("%w: missing header", ErrCorruptArchive)
	}
	if v := data[len(magic)]; v != Version {
		return Record{}, fmt.Errorf("%w: unsupported version %d", ErrCorruptArchive, v)
	}

	msg := dynamicpb.NewMessage(archiveSchema.archive)
	if err := proto.Unmarshal(data[len(magic)+1:], msg); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	if !msg.Has(archiveSchema.tree) {
		return Record{}, fmt.Errorf("%w: missing tree block", ErrCorruptArchive)
	}
	if !msg.Has(archiveSchema.payload) {
		return Record{}, fmt.Errorf("%w: missing payload block", ErrCorruptArchive)
	}

	tree, err := decodeNode(msg.Get(archiveSchema.tree).Message(), 0)
	if err != nil {
		return Record{}, err
	}
	if err := huffman.Validate(tree); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrCorruptArchive, err)
	}

	return Record{
		Tree:    tree,
		Payload: bytes.Clone(msg.Get(archiveSchema.payload).Bytes()),
	}, nil
}

// Write writes rec to w as an archive.
func Write(w io.Writer, rec Record) error {
	data, err := Marshal(rec)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Read reads a whole archive from r.
func Read(r io.Reader) (Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Record{}, err
	}
	return Unmarshal(data)
}

// encodeNode converts a validated tree into Node messages.
func encodeNode(n huffman.Node) *dynamicpb.Message {
	msg := dynamicpb.NewMessage(archiveSchema.node)
	msg.Set(archiveSchema.freq, protoreflect.ValueOfUint64(n.Freq()))

	switch n := n.(type) {
	case *huffman.Leaf:
		msg.Set(archiveSchema.symbol, protoreflect.ValueOfUint32(uint32(n.Symbol)))
	case *huffman.Internal:
		msg.Set(archiveSchema.left, protoreflect.ValueOfMessage(encodeNode(n.Left)))
		msg.Set(archiveSchema.right, protoreflect.ValueOfMessage(encodeNode(n.Right)))
	}
	return msg
}

// decodeNode rebuilds a tree from Node messages. A node with a symbol is a
// leaf; a node without one must have both children.
func decodeNode(msg protoreflect.Message, depth int) (huffman.Node, error) {
	if !msg.Has(archiveSchema.freq) {
		return nil, fmt.Errorf("%w: node at depth %d has no frequency", ErrCorruptArchive, depth)
	}
	freq := msg.Get(archiveSchema.freq).Uint()
	hasLeft, hasRight := msg.Has(archiveSchema.left), msg.Has(archiveSchema.right)

	if msg.Has(archiveSchema.symbol) {
		if hasLeft || hasRight {
			return nil, fmt.Errorf("%w: leaf at depth %d has children", ErrCorruptArchive, depth)
		}
		return &huffman.Leaf{
			Symbol:    rune(msg.Get(archiveSchema.symbol).Uint()),
			Frequency: freq,
		}, nil
	}

	if !hasLeft || !hasRight {
		return nil, fmt.Errorf("%w: internal node at depth %d lacks a child", ErrCorruptArchive, depth)
	}
	left, err := decodeNode(msg.Get(archiveSchema.left).Message(), depth+1)
	if err != nil {
		return nil, err
	}
	right, err := decodeNode(msg.Get(archiveSchema.right).Message(), depth+1)
	if err != nil {
		return nil, err
	}
	return &huffman.Internal{Frequency: freq, Left: left, Right: right}, nil
}
