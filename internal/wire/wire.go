package wire

import (
	"errors"
	"fmt"
	"slices"
)

// Wire types from the protobuf binary encoding.
const (
	TypeVarint  = 0
	TypeFixed64 = 1
	TypeBytes   = 2
	TypeFixed32 = 5
)

var (
	ErrUnknownWireType = errors.New("wire: unknown wire type")
	ErrTruncated       = errors.New("wire: length runs past buffer end")
)

// Number is a protobuf field number.
type Number int32

// Uvarint decodes a base-128 little-endian varint starting at pos and returns
// the value with the offset of the next byte. A buffer that ends before the
// final varint byte yields the value accumulated so far; callers walking a
// buffer terminate on the returned offset, not on the value.
func Uvarint(data []byte, pos int) (uint64, int) {
	var v uint64
	var shift uint
	for pos < len(data) {
		b := data[pos]
		v |= uint64(b&0x7f) << shift
		pos++
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return v, pos
}

// AppendUvarint appends the varint encoding of v to dst.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// AppendTag appends the tag varint for (field number, wire type) to dst.
func AppendTag(dst []byte, num Number, wireType int) []byte {
	return AppendUvarint(dst, uint64(num)<<3|uint64(wireType))
}

// Skip returns the offset of the next tag, given the offset immediately after
// the current tag varint and the wire type extracted from it. A declared
// length running past the buffer end or an unrecognized wire type is a decode
// error; the other cases may step past the buffer, which ends the walk.
func Skip(data []byte, pos int, wireType int) (int, error) {
	switch wireType {
	case TypeVarint:
		for pos < len(data) && data[pos]&0x80 != 0 {
			pos++
		}
		return pos + 1, nil
	case TypeFixed64:
		return pos + 8, nil
	case TypeBytes:
		length, next := Uvarint(data, pos)
		if length > uint64(len(data)-next) {
			return 0, ErrTruncated
		}
		return next + int(length), nil
	case TypeFixed32:
		return pos + 4, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownWireType, wireType)
	}
}

// FieldNumbers walks one serialized message and returns every field number
// present on the wire, one entry per occurrence, in wire order. The walk is
// best-effort: a decode error mid-message stops it and the numbers collected
// up to that point are returned.
func FieldNumbers(data []byte) []Number {
	nums := make([]Number, 0, 8)
	pos := 0
	for pos < len(data) {
		tag, next := Uvarint(data, pos)
		nums = append(nums, Number(tag>>3))
		after, err := Skip(data, next, int(tag&0x7))
		if err != nil {
			break
		}
		pos = after
	}
	return nums
}

// UnknownFields returns the field numbers from nums that are absent from the
// known set, sorted and de-duplicated. An empty result means every field on
// the wire was accounted for.
func UnknownFields(nums []Number, known map[Number]bool) []Number {
	seen := make(map[Number]bool, len(nums))
	out := make([]Number, 0)
	for _, n := range nums {
		if known[n] || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
