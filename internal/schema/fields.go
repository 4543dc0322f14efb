package schema

import "github.com/firmtrace/tracedump/internal/wire"

// TracePacket field numbers the dumper handles. Adding a formatter to the
// printer without adding its field number here makes the unknown-field report
// noisy; the table below is the single place both are declared.
const (
	FieldTimestamp       wire.Number = 8
	FieldSequenceID      wire.Number = 10
	FieldTrackEvent      wire.Number = 11
	FieldInternedData    wire.Number = 12
	FieldSequenceFlags   wire.Number = 13
	FieldTrackDescriptor wire.Number = 60
)

// FieldInfo is one row of the known-field table.
type FieldInfo struct {
	Number    wire.Number
	Name      string
	Formatted bool
}

// KnownFields returns the known-field table in field-number order. Formatted
// rows have a dedicated rendering in the packet printer; unformatted rows are
// still counted as known so the wire diff stays quiet about them.
func KnownFields() []FieldInfo {
	return []FieldInfo{
		{Number: FieldTimestamp, Name: "timestamp", Formatted: true},
		{Number: FieldSequenceID, Name: "trusted_packet_sequence_id", Formatted: true},
		{Number: FieldTrackEvent, Name: "track_event", Formatted: true},
		{Number: FieldInternedData, Name: "interned_data", Formatted: true},
		{Number: FieldSequenceFlags, Name: "sequence_flags", Formatted: true},
		{Number: FieldTrackDescriptor, Name: "track_descriptor", Formatted: true},
	}
}

// KnownSet returns the allow-list of field numbers as a lookup set, extended
// with any extra numbers from configuration. Extras can widen the set, never
// shrink it.
func KnownSet(extra ...wire.Number) map[wire.Number]bool {
	set := make(map[wire.Number]bool, len(extra)+6)
	for _, f := range KnownFields() {
		set[f.Number] = true
	}
	for _, n := range extra {
		set[n] = true
	}
	return set
}
