// Package trace reads a Perfetto trace file into an ordered packet sequence
// using a schema-bound dynamic message decode.
package trace

import (
	"errors"
	"fmt"
	"os"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

var ErrNoPacketField = errors.New("trace: schema has no repeated packet field")

// Trace is one decoded trace file. Packets are read-only views derived from
// the raw buffer; nothing here is mutated after ReadFile returns.
type Trace struct {
	Path    string
	Size    int
	Preview []byte
	Packets []protoreflect.Message
}

// ReadFile reads the whole file at path and parses it against the Trace
// message descriptor. previewLen caps the raw-byte preview kept for display.
func ReadFile(path string, md protoreflect.MessageDescriptor, previewLen int) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trace: read %s: %w", path, err)
	}
	t, err := Parse(data, md, previewLen)
	if err != nil {
		return nil, err
	}
	t.Path = path
	return t, nil
}

// Parse decodes one in-memory trace buffer.
func Parse(data []byte, md protoreflect.MessageDescriptor, previewLen int) (*Trace, error) {
	msg := dynamicpb.NewMessage(md)
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("trace: parse: %w", err)
	}

	packetFD := md.Fields().ByName("packet")
	if packetFD == nil || !packetFD.IsList() || packetFD.Message() == nil {
		return nil, ErrNoPacketField
	}

	list := msg.Get(packetFD).List()
	packets := make([]protoreflect.Message, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		packets = append(packets, list.Get(i).Message())
	}

	if previewLen < 0 {
		previewLen = 0
	}
	if previewLen > len(data) {
		previewLen = len(data)
	}
	return &Trace{
		Size:    len(data),
		Preview: data[:previewLen],
		Packets: packets,
	}, nil
}
