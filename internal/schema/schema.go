// Package schema supplies the message descriptors the trace reader decodes
// against: a compiled-in subset of the Perfetto trace schema, or a full
// FileDescriptorSet produced by protoc and loaded from disk. It also owns the
// table of TracePacket fields the dumper treats as known.
package schema

import (
	"errors"
	"fmt"
	"os"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// TraceMessageName is the fully qualified name of the top-level trace message.
const TraceMessageName = "perfetto.protos.Trace"

var (
	ErrTraceNotFound = errors.New("schema: trace message not found in descriptor set")
	ErrNotAMessage   = errors.New("schema: descriptor is not a message")
)

// Builtin returns the Trace message descriptor from the compiled-in schema
// subset.
func Builtin() (protoreflect.MessageDescriptor, error) {
	fd, err := protodesc.NewFile(builtinFileDescriptor(), nil)
	if err != nil {
		return nil, fmt.Errorf("schema: build compiled-in descriptor: %w", err)
	}
	md := fd.Messages().ByName("Trace")
	if md == nil {
		return nil, ErrTraceNotFound
	}
	return md, nil
}

// LoadDescriptorSet reads a serialized FileDescriptorSet (protoc
// --descriptor_set_out output) and returns the Trace message descriptor from
// it. The set must be self-contained (protoc --include_imports).
func LoadDescriptorSet(path string) (protoreflect.MessageDescriptor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read descriptor set: %w", err)
	}
	fds := &descriptorpb.FileDescriptorSet{}
	if err := proto.Unmarshal(raw, fds); err != nil {
		return nil, fmt.Errorf("schema: parse descriptor set %s: %w", path, err)
	}
	files, err := protodesc.NewFiles(fds)
	if err != nil {
		return nil, fmt.Errorf("schema: resolve descriptor set %s: %w", path, err)
	}
	desc, err := files.FindDescriptorByName(TraceMessageName)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", ErrTraceNotFound, path)
	}
	md, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAMessage, TraceMessageName)
	}
	return md, nil
}
