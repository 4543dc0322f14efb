package wire

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16383, 16384, 1 << 32, math.MaxUint64}
	for _, v := range values {
		buf := AppendUvarint(nil, v)
		got, next := Uvarint(buf, 0)
		if got != v {
			t.Fatalf("round trip %d: got %d", v, got)
		}
		if next != len(buf) {
			t.Fatalf("round trip %d: consumed %d of %d bytes", v, next, len(buf))
		}
	}
}

func TestUvarintStopsAtBufferEnd(t *testing.T) {
	// Continuation bit set on the last byte; decode must not read past it.
	buf := []byte{0x80, 0x80}
	_, next := Uvarint(buf, 0)
	if next != len(buf) {
		t.Fatalf("expected offset %d, got %d", len(buf), next)
	}
}

func TestFieldNumbersScenario(t *testing.T) {
	// field 1: varint 300, field 2: length-delimited "abc"
	buf := AppendTag(nil, 1, TypeVarint)
	buf = AppendUvarint(buf, 300)
	buf = AppendTag(buf, 2, TypeBytes)
	buf = AppendUvarint(buf, 3)
	buf = append(buf, 'a', 'b', 'c')

	nums := FieldNumbers(buf)
	if !slices.Equal(nums, []Number{1, 2}) {
		t.Fatalf("expected [1 2], got %v", nums)
	}

	_, afterTag := Uvarint(buf, 0)
	v, _ := Uvarint(buf, afterTag)
	if v != 300 {
		t.Fatalf("field 1 value: expected 300, got %d", v)
	}
}

func TestFieldNumbersKeepsEveryOccurrence(t *testing.T) {
	buf := AppendTag(nil, 7, TypeVarint)
	buf = AppendUvarint(buf, 1)
	buf = AppendTag(buf, 7, TypeVarint)
	buf = AppendUvarint(buf, 2)
	buf = AppendTag(buf, 3, TypeFixed32)
	buf = append(buf, 0, 0, 0, 0)

	nums := FieldNumbers(buf)
	if !slices.Equal(nums, []Number{7, 7, 3}) {
		t.Fatalf("expected [7 7 3], got %v", nums)
	}
}

func TestFieldNumbersIdempotent(t *testing.T) {
	buf := AppendTag(nil, 8, TypeVarint)
	buf = AppendUvarint(buf, 123456)
	buf = AppendTag(buf, 60, TypeBytes)
	buf = AppendUvarint(buf, 2)
	buf = append(buf, 0x08, 0x01)

	first := FieldNumbers(buf)
	second := FieldNumbers(buf)
	if !slices.Equal(first, second) {
		t.Fatalf("two walks differ: %v vs %v", first, second)
	}
}

func TestFieldNumbersTruncatedLengthStopsEarly(t *testing.T) {
	buf := AppendTag(nil, 1, TypeVarint)
	buf = AppendUvarint(buf, 5)
	// field 2 declares 100 bytes but the buffer ends after 2.
	buf = AppendTag(buf, 2, TypeBytes)
	buf = AppendUvarint(buf, 100)
	buf = append(buf, 'x', 'y')

	nums := FieldNumbers(buf)
	if !slices.Equal(nums, []Number{1, 2}) {
		t.Fatalf("expected partial [1 2], got %v", nums)
	}
}

func TestSkipUnknownWireType(t *testing.T) {
	_, err := Skip([]byte{0x00}, 0, 6)
	if !errors.Is(err, ErrUnknownWireType) {
		t.Fatalf("expected ErrUnknownWireType, got %v", err)
	}
}

func TestSkipTruncatedLength(t *testing.T) {
	buf := AppendUvarint(nil, 10)
	buf = append(buf, 1, 2)
	_, err := Skip(buf, 0, TypeBytes)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestSkipFixedWidths(t *testing.T) {
	data := make([]byte, 16)
	if next, err := Skip(data, 0, TypeFixed64); err != nil || next != 8 {
		t.Fatalf("fixed64 skip: next=%d err=%v", next, err)
	}
	if next, err := Skip(data, 0, TypeFixed32); err != nil || next != 4 {
		t.Fatalf("fixed32 skip: next=%d err=%v", next, err)
	}
}

func TestUnknownFieldsSortedAndDeduplicated(t *testing.T) {
	known := map[Number]bool{8: true, 10: true}
	nums := []Number{61, 8, 9, 61, 10, 9, 3}
	got := UnknownFields(nums, known)
	if !slices.Equal(got, []Number{3, 9, 61}) {
		t.Fatalf("expected [3 9 61], got %v", got)
	}
}

func TestUnknownFieldsEmptyWhenAllKnown(t *testing.T) {
	known := map[Number]bool{1: true, 2: true}
	if got := UnknownFields([]Number{1, 2, 1}, known); len(got) != 0 {
		t.Fatalf("expected no unknown fields, got %v", got)
	}
}
