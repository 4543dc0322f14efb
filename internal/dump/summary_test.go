package dump

import (
	"bytes"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/firmtrace/tracedump/internal/schema"
	"github.com/firmtrace/tracedump/internal/trace"
)

// buildTestTrace assembles a small trace: one thread descriptor, an interned
// name table, and a begin/end slice pair.
func buildTestTrace(t *testing.T) *trace.Trace {
	t.Helper()
	md, err := schema.Builtin()
	if err != nil {
		t.Fatalf("builtin schema: %v", err)
	}
	msg := dynamicpb.NewMessage(md)
	list := msg.Mutable(md.Fields().ByName("packet")).List()

	td := list.AppendMutable().Message()
	desc := mutableMessage(t, td, "track_descriptor")
	setField(t, desc, "uuid", protoreflect.ValueOfUint64(0x1000))
	setField(t, desc, "name", protoreflect.ValueOfString("main"))

	interned := list.AppendMutable().Message()
	setField(t, interned, "timestamp", protoreflect.ValueOfUint64(100))
	data := mutableMessage(t, interned, "interned_data")
	en := data.Mutable(data.Descriptor().Fields().ByName("event_names")).List().AppendMutable().Message()
	setField(t, en, "iid", protoreflect.ValueOfUint64(1))
	setField(t, en, "name", protoreflect.ValueOfString("sched_switch"))

	begin := list.AppendMutable().Message()
	setField(t, begin, "timestamp", protoreflect.ValueOfUint64(150))
	te := mutableMessage(t, begin, "track_event")
	setField(t, te, "type", protoreflect.ValueOfEnum(1))
	setField(t, te, "name_iid", protoreflect.ValueOfUint64(1))

	end := list.AppendMutable().Message()
	setField(t, end, "timestamp", protoreflect.ValueOfUint64(400))
	te = mutableMessage(t, end, "track_event")
	setField(t, te, "type", protoreflect.ValueOfEnum(2))

	raw, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal trace: %v", err)
	}
	tr, err := trace.Parse(raw, md, 200)
	if err != nil {
		t.Fatalf("parse trace: %v", err)
	}
	return tr
}

func TestSummarizeCountsAndSpan(t *testing.T) {
	s := Summarize(buildTestTrace(t))
	if s.Packets != 4 {
		t.Fatalf("packets: expected 4, got %d", s.Packets)
	}
	if s.TrackDescriptors != 1 {
		t.Fatalf("track descriptors: expected 1, got %d", s.TrackDescriptors)
	}
	if s.EventCounts["TYPE_SLICE_BEGIN"] != 1 || s.EventCounts["TYPE_SLICE_END"] != 1 {
		t.Fatalf("event counts wrong: %v", s.EventCounts)
	}
	if s.Other != 0 {
		t.Fatalf("other: expected 0, got %d", s.Other)
	}
	if s.FirstTimestamp != 100 || s.LastTimestamp != 400 {
		t.Fatalf("span: got %d..%d", s.FirstTimestamp, s.LastTimestamp)
	}
	if len(s.EventNames) != 1 || s.EventNames[0].Name != "sched_switch" {
		t.Fatalf("interned names wrong: %v", s.EventNames)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, schema.KnownSet())
	p.PrintSummary(Summarize(buildTestTrace(t)))
	out := buf.String()
	for _, want := range []string{
		"Packets: 4",
		"track descriptors: 1",
		"track events TYPE_SLICE_BEGIN: 1",
		"Time span: 100 ns .. 400 ns (0.000000 s)",
		"1: 'sched_switch'",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTraceHeader(t *testing.T) {
	tr := buildTestTrace(t)
	var buf bytes.Buffer
	NewPrinter(&buf, schema.KnownSet()).PrintTrace(tr)
	out := buf.String()
	for _, want := range []string{
		"File size:",
		"Raw hex (first",
		"Parsed 4 packets",
		"Total packets: 4",
		"=== Packet 3 ===",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump missing %q:\n%s", want, out)
		}
	}
}
