package dump

import (
	"fmt"
	"slices"

	"github.com/firmtrace/tracedump/internal/trace"
)

// InternEntry is one interned (id, string) pair collected from the trace.
type InternEntry struct {
	IID  uint64
	Name string
}

// Summary is an aggregate view over one trace, for a quick read before diving
// into the full dump.
type Summary struct {
	Packets          int
	TrackDescriptors int
	EventCounts      map[string]int
	Other            int

	Timestamped    int
	FirstTimestamp uint64
	LastTimestamp  uint64

	EventNames      []InternEntry
	EventCategories []InternEntry
}

// Summarize walks the packet sequence once and tallies packet kinds, the
// covered time span, and the interned string tables.
func Summarize(t *trace.Trace) *Summary {
	s := &Summary{
		Packets:     len(t.Packets),
		EventCounts: make(map[string]int),
	}
	for _, pkt := range t.Packets {
		if ts, ok := uintField(pkt, "timestamp"); ok {
			if s.Timestamped == 0 || ts < s.FirstTimestamp {
				s.FirstTimestamp = ts
			}
			if ts > s.LastTimestamp {
				s.LastTimestamp = ts
			}
			s.Timestamped++
		}

		tallied := false
		if hasField(pkt, "track_descriptor") {
			s.TrackDescriptors++
			tallied = true
		}
		if te, ok := messageField(pkt, "track_event"); ok {
			s.EventCounts[trackEventType(te)]++
			tallied = true
		}
		if data, ok := messageField(pkt, "interned_data"); ok {
			for _, en := range messageList(data, "event_names") {
				s.EventNames = append(s.EventNames, InternEntry{
					IID:  uintValue(en, "iid"),
					Name: stringValue(en, "name"),
				})
			}
			for _, ec := range messageList(data, "event_categories") {
				s.EventCategories = append(s.EventCategories, InternEntry{
					IID:  uintValue(ec, "iid"),
					Name: stringValue(ec, "name"),
				})
			}
			tallied = true
		}
		if !tallied {
			s.Other++
		}
	}
	return s
}

// PrintSummary writes the aggregate view as text.
func (p *Printer) PrintSummary(s *Summary) {
	fmt.Fprintf(p.w, "Packets: %d\n", s.Packets)
	fmt.Fprintf(p.w, "  track descriptors: %d\n", s.TrackDescriptors)
	names := make([]string, 0, len(s.EventCounts))
	for name := range s.EventCounts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(p.w, "  track events %s: %d\n", name, s.EventCounts[name])
	}
	if s.Other > 0 {
		fmt.Fprintf(p.w, "  other: %d\n", s.Other)
	}
	if s.Timestamped > 0 {
		span := s.LastTimestamp - s.FirstTimestamp
		fmt.Fprintf(p.w, "Time span: %d ns .. %d ns (%.6f s)\n",
			s.FirstTimestamp, s.LastTimestamp, float64(span)/1e9)
	}
	if len(s.EventNames) > 0 {
		fmt.Fprintf(p.w, "Interned event names:\n")
		for _, e := range s.EventNames {
			fmt.Fprintf(p.w, "  %d: '%s'\n", e.IID, e.Name)
		}
	}
	if len(s.EventCategories) > 0 {
		fmt.Fprintf(p.w, "Interned event categories:\n")
		for _, e := range s.EventCategories {
			fmt.Fprintf(p.w, "  %d: '%s'\n", e.IID, e.Name)
		}
	}
}
