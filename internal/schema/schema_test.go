package schema

import (
	"testing"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/firmtrace/tracedump/internal/wire"
)

func TestBuiltinTraceDescriptor(t *testing.T) {
	md, err := Builtin()
	if err != nil {
		t.Fatalf("builtin schema: %v", err)
	}
	if md.FullName() != TraceMessageName {
		t.Fatalf("expected %s, got %s", TraceMessageName, md.FullName())
	}
	packet := md.Fields().ByName("packet")
	if packet == nil || !packet.IsList() || packet.Message() == nil {
		t.Fatalf("Trace.packet must be a repeated message field, got %v", packet)
	}
	if packet.Message().Name() != "TracePacket" {
		t.Fatalf("Trace.packet type: expected TracePacket, got %s", packet.Message().Name())
	}
}

// The known-field table and the compiled-in descriptor describe the same
// fields; if they drift apart the unknown-field report becomes noisy.
func TestKnownFieldsMatchBuiltinDescriptor(t *testing.T) {
	md, err := Builtin()
	if err != nil {
		t.Fatalf("builtin schema: %v", err)
	}
	pkt := md.Fields().ByName("packet").Message()
	for _, f := range KnownFields() {
		fd := pkt.Fields().ByNumber(protoreflect.FieldNumber(f.Number))
		if fd == nil {
			t.Fatalf("known field %d (%s) missing from descriptor", f.Number, f.Name)
		}
		if string(fd.Name()) != f.Name {
			t.Fatalf("field %d: table says %q, descriptor says %q", f.Number, f.Name, fd.Name())
		}
	}
}

func TestKnownSetExtrasWidenOnly(t *testing.T) {
	base := KnownSet()
	widened := KnownSet(99)
	if !widened[99] {
		t.Fatalf("extra field 99 not in widened set")
	}
	for n := range base {
		if !widened[n] {
			t.Fatalf("widening dropped field %d", n)
		}
	}
	if base[99] {
		t.Fatalf("base set should not contain extras")
	}
}

func TestKnownSetCoversPrintedFields(t *testing.T) {
	set := KnownSet()
	for _, n := range []wire.Number{8, 10, 11, 12, 13, 60} {
		if !set[n] {
			t.Fatalf("field %d missing from allow-list", n)
		}
	}
}

func TestTrackEventTypeEnum(t *testing.T) {
	md, err := Builtin()
	if err != nil {
		t.Fatalf("builtin schema: %v", err)
	}
	te := md.Fields().ByName("packet").Message().Fields().ByName("track_event").Message()
	typeFD := te.Fields().ByName("type")
	if typeFD == nil || typeFD.Enum() == nil {
		t.Fatalf("TrackEvent.type must be an enum field")
	}
	want := map[protoreflect.EnumNumber]string{
		0: "TYPE_UNSPECIFIED",
		1: "TYPE_SLICE_BEGIN",
		2: "TYPE_SLICE_END",
		3: "TYPE_INSTANT",
		4: "TYPE_COUNTER",
	}
	for num, name := range want {
		vd := typeFD.Enum().Values().ByNumber(num)
		if vd == nil || string(vd.Name()) != name {
			t.Fatalf("enum value %d: expected %s, got %v", num, name, vd)
		}
	}
}

func TestLoadDescriptorSetMissingFile(t *testing.T) {
	if _, err := LoadDescriptorSet("does-not-exist.binpb"); err == nil {
		t.Fatalf("expected error for missing descriptor set")
	}
}
