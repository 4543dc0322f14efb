// Package dump renders decoded trace packets as human-readable text. Every
// packet is decoded twice: once through the schema-bound message (named field
// access) and once through the raw wire walk, so fields the schema does not
// know about still show up in the output.
package dump

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/firmtrace/tracedump/internal/schema"
	"github.com/firmtrace/tracedump/internal/trace"
	"github.com/firmtrace/tracedump/internal/wire"
)

// TracePacket sequence_flags bits, in declaration order.
var sequenceFlagBits = []struct {
	bit  uint64
	name string
}{
	{1, "INCREMENTAL_STATE_CLEARED"},
	{2, "NEEDS_INCREMENTAL_STATE"},
}

// Printer writes packet dumps to a single text stream. It never fails a dump
// over one bad packet; everything it reports is informational.
type Printer struct {
	w     io.Writer
	known map[wire.Number]bool
}

func NewPrinter(w io.Writer, known map[wire.Number]bool) *Printer {
	return &Printer{w: w, known: known}
}

// PrintTrace writes the file-level header followed by every packet.
func (p *Printer) PrintTrace(t *trace.Trace) {
	fmt.Fprintf(p.w, "File size: %d bytes\n", t.Size)
	fmt.Fprintf(p.w, "Raw hex (first %d bytes): %s\n", len(t.Preview), hex.EncodeToString(t.Preview))
	fmt.Fprintf(p.w, "\nParsed %d packets\n", len(t.Packets))

	sep := strings.Repeat("=", 60)
	fmt.Fprintf(p.w, "\n%s\n", sep)
	fmt.Fprintf(p.w, "Total packets: %d\n", len(t.Packets))
	fmt.Fprintf(p.w, "%s\n", sep)

	for i, pkt := range t.Packets {
		p.PrintPacket(i, pkt)
	}
}

// PrintPacket writes one packet section: raw size, formatted known fields,
// schema-visible-but-unformatted fields, and field numbers found on the wire
// that the allow-list does not cover.
func (p *Printer) PrintPacket(index int, pkt protoreflect.Message) {
	fmt.Fprintf(p.w, "\n=== Packet %d ===\n", index)

	raw, err := proto.Marshal(pkt.Interface())
	if err != nil {
		log.Warn().Err(err).Int("packet", index).Msg("packet re-serialization failed")
	}
	fmt.Fprintf(p.w, "  [raw size: %d bytes]\n", len(raw))

	if ts, ok := uintField(pkt, "timestamp"); ok {
		fmt.Fprintf(p.w, "  timestamp: %d ns (%.6f s)\n", ts, float64(ts)/1e9)
	}
	if id, ok := uintField(pkt, "trusted_packet_sequence_id"); ok {
		fmt.Fprintf(p.w, "  sequence_id: %d\n", id)
	}
	if flags, ok := uintField(pkt, "sequence_flags"); ok {
		fmt.Fprintf(p.w, "  sequence_flags: %d (%s)\n", flags, strings.Join(flagNames(flags), ", "))
	}
	if td, ok := messageField(pkt, "track_descriptor"); ok {
		p.printTrackDescriptor(td)
	}
	if te, ok := messageField(pkt, "track_event"); ok {
		p.printTrackEvent(te)
	}
	if data, ok := messageField(pkt, "interned_data"); ok {
		p.printInternedData(data)
	}

	p.printUnhandled(pkt)
	p.printWireUnknowns(raw)
}

// PrintFieldTable writes the known-field table, marking which rows the packet
// printer formats explicitly.
func (p *Printer) PrintFieldTable(fields []schema.FieldInfo) {
	fmt.Fprintf(p.w, "TracePacket fields handled by this tool:\n")
	for _, f := range fields {
		mark := "formatted"
		if !f.Formatted {
			mark = "listed only"
		}
		fmt.Fprintf(p.w, "  %3d  %-28s %s\n", f.Number, f.Name, mark)
	}
}

func (p *Printer) printTrackDescriptor(td protoreflect.Message) {
	fmt.Fprintf(p.w, "  track_descriptor:\n")
	fmt.Fprintf(p.w, "    uuid: %d\n", uintValue(td, "uuid"))
	if parent, ok := uintField(td, "parent_uuid"); ok {
		fmt.Fprintf(p.w, "    parent_uuid: %d\n", parent)
	}
	if name, ok := stringField(td, "name"); ok && name != "" {
		fmt.Fprintf(p.w, "    name: '%s'\n", name)
	}
	if proc, ok := messageField(td, "process"); ok {
		fmt.Fprintf(p.w, "    process: pid=%d, name='%s'\n",
			intValue(proc, "pid"), stringValue(proc, "process_name"))
	}
	if th, ok := messageField(td, "thread"); ok {
		fmt.Fprintf(p.w, "    thread: pid=%d, tid=%d, name='%s'\n",
			intValue(th, "pid"), intValue(th, "tid"), stringValue(th, "thread_name"))
	}
}

func (p *Printer) printTrackEvent(te protoreflect.Message) {
	fmt.Fprintf(p.w, "  track_event:\n")
	fmt.Fprintf(p.w, "    type: %s\n", trackEventType(te))
	if uuid, ok := uintField(te, "track_uuid"); ok {
		fmt.Fprintf(p.w, "    track_uuid: %d\n", uuid)
	}
	if iid, ok := uintField(te, "name_iid"); ok {
		fmt.Fprintf(p.w, "    name_iid: %d\n", iid)
	}
	if name, ok := stringField(te, "name"); ok {
		fmt.Fprintf(p.w, "    name: '%s'\n", name)
	}
	if cats := uintList(te, "category_iids"); len(cats) > 0 {
		fmt.Fprintf(p.w, "    category_iids: %v\n", cats)
	}
	if cv, ok := intField(te, "counter_value"); ok {
		fmt.Fprintf(p.w, "    counter_value: %d\n", cv)
	}
}

func (p *Printer) printInternedData(data protoreflect.Message) {
	fmt.Fprintf(p.w, "  interned_data:\n")
	for _, en := range messageList(data, "event_names") {
		fmt.Fprintf(p.w, "    event_name: iid=%d, name='%s'\n",
			uintValue(en, "iid"), stringValue(en, "name"))
	}
	for _, ec := range messageList(data, "event_categories") {
		fmt.Fprintf(p.w, "    event_category: iid=%d, name='%s'\n",
			uintValue(ec, "iid"), stringValue(ec, "name"))
	}
}

// printUnhandled lists fields the schema exposes but the printer has no
// dedicated formatting for. Range order is unspecified, so entries are sorted
// by field number for stable output.
func (p *Printer) printUnhandled(pkt protoreflect.Message) {
	type entry struct {
		fd protoreflect.FieldDescriptor
		v  protoreflect.Value
	}
	var entries []entry
	pkt.Range(func(fd protoreflect.FieldDescriptor, v protoreflect.Value) bool {
		if !p.known[wire.Number(fd.Number())] {
			entries = append(entries, entry{fd, v})
		}
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].fd.Number() < entries[j].fd.Number()
	})
	for _, e := range entries {
		fmt.Fprintf(p.w, "  [unhandled field %d '%s': %s]\n",
			e.fd.Number(), e.fd.Name(), clip(fmt.Sprintf("%v", e.v.Interface()), 100))
	}
}

// printWireUnknowns reports field numbers present on the raw wire that neither
// the allow-list nor the schema accounts for.
func (p *Printer) printWireUnknowns(raw []byte) {
	unknown := wire.UnknownFields(wire.FieldNumbers(raw), p.known)
	if len(unknown) > 0 {
		fmt.Fprintf(p.w, "  [contains fields not in our proto: %v]\n", unknown)
	}
}

func flagNames(v uint64) []string {
	names := make([]string, 0, len(sequenceFlagBits))
	for _, f := range sequenceFlagBits {
		if v&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	return names
}

func trackEventType(te protoreflect.Message) string {
	fd := fieldByName(te, "type")
	if fd == nil || fd.Enum() == nil {
		return "UNKNOWN"
	}
	num := te.Get(fd).Enum()
	if vd := fd.Enum().Values().ByNumber(num); vd != nil {
		return string(vd.Name())
	}
	return fmt.Sprintf("%d", num)
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
