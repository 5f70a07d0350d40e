// Package mysql provides the little-endian primitive encoders and decoders
// that the binlog wire format is built out of: fixed-width integers, the
// log's own packed (variable-width) integer, and the string framings the
// replication log uses.
package mysql

import (
	"encoding/binary"
)

// Protocol::FixedLengthInteger
// A fixed-length integer stores its value in a series of bytes with the least
// significant byte first (little endian).
// Spec: https://dev.mysql.com/doc/internals/en/integer.html#fixed-length-integer

// int<1>

// EncodeUint8 encodes given uint8 value into a slice of bytes.
func EncodeUint8(data []byte, v uint8) {
	data[0] = v
}

// DecodeUint8 decodes a uint8 value from a given slice of bytes.
func DecodeUint8(data []byte) uint8 {
	return uint8(data[0])
}

// int<2>

// EncodeUint16 encodes given uint16 value into a slice of bytes.
func EncodeUint16(data []byte, v uint16) {
	binary.LittleEndian.PutUint16(data, v)
}

// DecodeUint16 decodes a uint16 value from a given slice of bytes.
func DecodeUint16(data []byte) uint16 {
	return binary.LittleEndian.Uint16(data)
}

// int<3>

// EncodeUint24 encodes given uint32 value as a 3-byte integer into a slice of
// bytes.
func EncodeUint24(data []byte, v uint32) {
	encodeVarLen64(data, uint64(v), 3)
}

// DecodeUint24 decodes 3 bytes as uint32 value from a given slice of bytes.
func DecodeUint24(data []byte) uint32 {
	return uint32(DecodeVarLen64(data, 3))
}

// int<4>

// EncodeUint32 encodes given uint32 value into a slice of bytes.
func EncodeUint32(data []byte, v uint32) {
	binary.LittleEndian.PutUint32(data, v)
}

// DecodeUint32 decodes a uint32 value from a given slice of bytes.
func DecodeUint32(data []byte) uint32 {
	return binary.LittleEndian.Uint32(data)
}

// int<8>

// EncodeUint64 encodes given uint64 value into a slice of bytes.
func EncodeUint64(data []byte, v uint64) {
	binary.LittleEndian.PutUint64(data, v)
}

// DecodeUint64 decodes a uint64 value from a given slice of bytes.
func DecodeUint64(data []byte) uint64 {
	return binary.LittleEndian.Uint64(data)
}

// DecodeInt64 decodes a signed int64 value from a given slice of bytes.
func DecodeInt64(data []byte) int64 {
	return int64(DecodeUint64(data))
}

// EncodeInt64 encodes a signed int64 value into a slice of bytes.
func EncodeInt64(data []byte, v int64) {
	EncodeUint64(data, uint64(v))
}

//
// Variable length encoding helpers
//

func encodeVarLen64(data []byte, v uint64, s int) {
	for i := 0; i < s; i++ {
		data[i] = byte(v >> uint(i*8))
	}
}

// DecodeVarLen64 decodes a number of given size in bytes using little endian.
func DecodeVarLen64(data []byte, s int) uint64 {
	v := uint64(data[0])
	for i := 1; i < s; i++ {
		v |= uint64(data[i]) << uint(i*8)
	}
	return v
}

//
// Packed integer
//
// This is the replication log's own variable-width integer, not the
// client/server protocol's length-encoded integer: the marker byte 251 is
// simply invalid here, rather than meaning NULL as it does in a resultset row.
// Spec: https://dev.mysql.com/doc/internals/en/elements.html

// PackedIntInvalidMarker is the one leading byte with no valid meaning for a
// packed integer inside an event body.
const PackedIntInvalidMarker = 251

// EncodePackedInt writes v into data using the shortest valid packed-integer
// form and returns the number of bytes written.
func EncodePackedInt(data []byte, v uint64) int {
	switch {
	case v <= 250:
		data[0] = byte(v)
		return 1
	case v <= 0xFFFF:
		data[0] = 252
		encodeVarLen64(data[1:], v, 2)
		return 3
	case v <= 0xFFFFFF:
		data[0] = 253
		encodeVarLen64(data[1:], v, 3)
		return 4
	default:
		data[0] = 254
		encodeVarLen64(data[1:], v, 8)
		return 9
	}
}

// DecodePackedInt decodes a packed integer from the front of data. ok is
// false when the leading byte is the invalid marker (251); callers must
// check ok rather than trust the returned value.
func DecodePackedInt(data []byte) (v uint64, size int, ok bool) {
	switch b := data[0]; {
	case b == PackedIntInvalidMarker:
		return 0, 1, false
	case b <= 250:
		return uint64(b), 1, true
	case b == 252:
		return DecodeVarLen64(data[1:], 2), 3, true
	case b == 253:
		return DecodeVarLen64(data[1:], 3), 4, true
	default: // 254
		return DecodeVarLen64(data[1:], 8), 9, true
	}
}

// Protocol::NulTerminatedString
// Strings that are terminated by a 0x00 byte.
// Spec: https://dev.mysql.com/doc/internals/en/string.html

// DecodeStringNullTerm decodes a null terminated string from a given slice of
// bytes, not including the terminator.
func DecodeStringNullTerm(data []byte) []byte {
	for i, c := range data {
		if c == 0x00 {
			s := make([]byte, i)
			copy(s, data[:i])
			return s
		}
	}
	s := make([]byte, len(data))
	copy(s, data)
	return s
}

// Protocol::VariableLengthString
// The length of the string is determined by another field or is calculated at
// runtime.

// EncodeStringVarLen copies str into data without a length prefix or
// terminator.
func EncodeStringVarLen(data, str []byte) {
	copy(data, str)
}

// DecodeStringVarLen copies the first n bytes of data as a new string, owned
// independently of the input buffer.
func DecodeStringVarLen(data []byte, n int) []byte {
	return DecodeStringEOF(data[:n])
}

// Protocol::RestOfPacketString
// If a string is the last component of a packet, its length can be calculated
// from the overall packet length minus the current position.

// DecodeStringEOF copies given slice of bytes as a new string, owned
// independently of the input buffer.
func DecodeStringEOF(data []byte) []byte {
	s := make([]byte, len(data))
	copy(s, data)
	return s
}
