package binlog

import "fmt"

// ErrTruncated is returned when the input is too short for the field
// currently being read. At the header level it means "need more data";
// anywhere else in an event body it is a recoverable, per-event failure.
type ErrTruncated struct {
	Need int
	Had  int
}

func (e ErrTruncated) Error() string {
	return fmt.Sprintf("binlog: truncated input: need %d bytes, had %d", e.Need, e.Had)
}

// ErrHeaderTooShort is returned when an event buffer is smaller than the
// common header it is supposed to carry.
type ErrHeaderTooShort struct {
	Len       int
	HeaderLen int
}

func (e ErrHeaderTooShort) Error() string {
	return fmt.Sprintf("binlog: event buffer of %d bytes is shorter than header length %d", e.Len, e.HeaderLen)
}

// ErrLengthInconsistent is returned when an event header's declared length
// doesn't leave room for the header (and checksum, when expected).
type ErrLengthInconsistent struct {
	DataWritten     uint32
	HeaderLen       int
	ChecksumPresent bool
}

func (e ErrLengthInconsistent) Error() string {
	return fmt.Sprintf("binlog: data_written=%d is inconsistent with header_len=%d checksum_present=%v",
		e.DataWritten, e.HeaderLen, e.ChecksumPresent)
}

// ErrUnsupportedBinlogVersion is returned when a format description event
// declares a binlog_version other than 4.
type ErrUnsupportedBinlogVersion struct {
	Version uint16
}

func (e ErrUnsupportedBinlogVersion) Error() string {
	return fmt.Sprintf("binlog: unsupported binlog_version %d", e.Version)
}

// ErrUnknownEventType is returned when an event's type code is outside the
// enumeration this package knows about. The event is still skippable by its
// header's DataWritten field.
type ErrUnknownEventType struct {
	Type EventType
}

func (e ErrUnknownEventType) Error() string {
	return fmt.Sprintf("binlog: unknown event type %d", byte(e.Type))
}

// ErrChecksumMismatch is returned when an event's computed CRC32 doesn't
// match the checksum stored in its trailing 4 bytes.
type ErrChecksumMismatch struct {
	Expected uint32
	Actual   uint32
}

func (e ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("binlog: checksum mismatch: expected %08x, got %08x", e.Expected, e.Actual)
}

// ErrMalformedPackedInt is returned when a packed integer's leading byte is
// the invalid marker (251).
type ErrMalformedPackedInt struct {
	Byte byte
}

func (e ErrMalformedPackedInt) Error() string {
	return fmt.Sprintf("binlog: malformed packed integer, leading byte %d", e.Byte)
}

// ErrUnknownStatusVar is returned when the status-variable walk of a Query
// event's status-vars block encounters a code it doesn't recognize. Parsing
// of that block stops, but Parsed holds everything decoded before the
// unknown code was seen.
type ErrUnknownStatusVar struct {
	Code   byte
	Parsed []StatusVar
}

func (e ErrUnknownStatusVar) Error() string {
	return fmt.Sprintf("binlog: unknown status variable code %d after parsing %d item(s)", e.Code, len(e.Parsed))
}

// ErrProtocolError is returned when events arrive in a sequence that
// violates the stream's state machine, such as a non-FormatDescription
// event arriving before any FormatDescription has been seen.
type ErrProtocolError struct {
	Reason string
}

func (e ErrProtocolError) Error() string {
	return "binlog: protocol error: " + e.Reason
}

// ErrTrailingGarbage is returned when an event whose body has a fixed size
// has leftover bytes after that fixed-size body was read.
type ErrTrailingGarbage struct {
	Type  EventType
	Bytes int
}

func (e ErrTrailingGarbage) Error() string {
	return fmt.Sprintf("binlog: %d trailing byte(s) after %s event body", e.Bytes, e.Type)
}
