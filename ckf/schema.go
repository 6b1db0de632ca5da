package ckf

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// schemaSource describes the archive body:
//
//	message Node {
//	  optional uint32 symbol = 1; // set on leaves only
//	  optional uint64 freq   = 2;
//	  optional Node   left   = 3;
//	  optional Node   right  = 4;
//	}
//
//	message Archive {
//	  optional Node  tree    = 1;
//	  optional bytes payload = 2;
//	}
var schemaSource = &descriptorpb.FileDescriptorProto{
	Name:    proto.String("huffman/ckf/v1/archive.proto"),
	Package: proto.String("huffman.ckf.v1"),
	Syntax:  proto.String("proto2"),
	MessageType: []*descriptorpb.DescriptorProto{
		{
			Name: proto.String("Node"),
			Field: []*descriptorpb.FieldDescriptorProto{
				field("symbol", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT32, ""),
				field("freq", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT64, ""),
				field("left", 3, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".huffman.ckf.v1.Node"),
				field("right", 4, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".huffman.ckf.v1.Node"),
			},
		},
		{
			Name: proto.String("Archive"),
			Field: []*descriptorpb.FieldDescriptorProto{
				field("tree", 1, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, ".huffman.ckf.v1.Node"),
				field("payload", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES, ""),
			},
		},
	},
}

func field(name string, number int32, kind descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
	fd := &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   kind.Enum(),
	}
	if typeName != "" {
		fd.TypeName = proto.String(typeName)
	}
	return fd
}

// schema holds the resolved descriptors of the archive body.
type schema struct {
	archive protoreflect.MessageDescriptor
	tree    protoreflect.FieldDescriptor
	payload protoreflect.FieldDescriptor

	node   protoreflect.MessageDescriptor
	symbol protoreflect.FieldDescriptor
	freq   protoreflect.FieldDescriptor
	left   protoreflect.FieldDescriptor
	right  protoreflect.FieldDescriptor
}

var archiveSchema = mustSchema()

func mustSchema() *schema {
	file, err := protodesc.NewFile(schemaSource, nil)
	if err != nil {
		panic(fmt.Sprintf("ckf: invalid archive schema: %v", err))
	}

	archive := file.Messages().ByName("Archive")
	node := file.Messages().ByName("Node")
	return &schema{
		archive: archive,
		tree:    archive.Fields().ByName("tree"),
		payload: archive.Fields().ByName("payload"),

		node:   node,
		symbol: node.Fields().ByName("symbol"),
		freq:   node.Fields().ByName("freq"),
		left:   node.Fields().ByName("left"),
		right:  node.Fields().ByName("right"),
	}
}
