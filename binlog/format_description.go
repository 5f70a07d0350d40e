package binlog

import (
	"strconv"
	"strings"

	"github.com/localhots/binlogcodec/mysql"
)

const serverVersionLen = 50

// serverVersionChecksumFloor is the (major, minor, patch) triple at and
// after which a FormatDescription's post-header-length table repurposes its
// last byte as a checksum algorithm descriptor.
var serverVersionChecksumFloor = [3]int{5, 6, 1}

// FormatDescription is the registry established once per stream by a
// FormatDescription event and consulted for every event decoded after it.
type FormatDescription struct {
	// BinlogVersion is the wire format version; this package only supports 4.
	BinlogVersion uint16
	// ServerVersion is the server's self-reported version string, e.g.
	// "8.0.34-log".
	ServerVersion string
	// ServerVersionTriple is ServerVersion split into (major, minor, patch).
	ServerVersionTriple [3]int
	// CreatedTS is the FormatDescription's own creation timestamp.
	CreatedTS uint32
	// CommonHeaderLen is the size of the common header for every event in
	// this stream, including the FormatDescription event that established
	// it (which is nonetheless always parsed using minCommonHeaderLen).
	CommonHeaderLen int
	// PostHeaderLen is indexed by EventType-1 and gives the post-header
	// length in bytes for that event type. For streams at or after
	// 5.6.1, the final entry has been removed from this table and is
	// instead exposed via ChecksumAlgorithm.
	PostHeaderLen []byte
	// ChecksumAlgorithm is the checksum algorithm active for this stream.
	ChecksumAlgorithm ChecksumAlgorithm
}

func (FormatDescription) eventBody() {}

// zero reports whether the registry has never been populated by a
// FormatDescription event.
func (fd FormatDescription) zero() bool {
	return fd.BinlogVersion == 0
}

// isVersionBeforeChecksum reports whether the originating server predates
// 5.6.1, the version at which binlog checksums were introduced. Before that
// version, every byte of PostHeaderLen is a real post-header length; there
// is no checksum descriptor to carve out.
func (fd FormatDescription) isVersionBeforeChecksum() bool {
	return lessTriple(fd.ServerVersionTriple, serverVersionChecksumFloor)
}

func lessTriple(a, b [3]int) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// postHeaderLen returns the post-header length declared for et, or 0 if et
// is outside the table this stream's FormatDescription carried.
func (fd FormatDescription) postHeaderLen(et EventType) int {
	idx := int(et) - 1
	if idx < 0 || idx >= len(fd.PostHeaderLen) {
		return 0
	}
	return int(fd.PostHeaderLen[idx])
}

// tableIDSize returns the width, in bytes, of the table identifier carried
// by TableMap and Rows events: 6 bytes normally, 4 on the rare stream whose
// FormatDescription reports a 6-byte post-header for TableMap (meaning the
// table ID itself was only ever allotted 4 bytes of it).
func (fd FormatDescription) tableIDSize() int {
	if fd.postHeaderLen(EventTypeTableMap) == 6 {
		return 4
	}
	return 6
}

// splitServerVersion parses a MAJOR.MINOR.PATCH prefix out of v, stopping
// each component at the first non-digit. Spec.md §4.4.
func splitServerVersion(v string) [3]int {
	var out [3]int
	parts := strings.SplitN(v, ".", 3)
	for i := 0; i < len(parts) && i < 3; i++ {
		out[i] = leadingInt(parts[i])
	}
	return out
}

func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}

// formatDescriptionTailLen is the combined width of the checksum-algorithm
// descriptor byte and the 4-byte checksum region that a FormatDescription
// event structurally reserves once its server version meets
// serverVersionChecksumFloor, regardless of whether the descriptor turns
// out to be OFF or CRC32. This mirrors how MySQL's own
// Log_event_footer::get_checksum_alg locates the descriptor: unconditionally
// at a fixed offset from the end of the event, once the version floor is
// met, deferring the question of whether the trailing 4 bytes are a
// meaningful checksum to the descriptor value itself.
const formatDescriptionTailLen = checksumLen + 1

// decodeFormatDescription decodes a FormatDescription event body. rawBody is
// the event's entire body as delimited by its header's DataWritten field,
// with nothing pre-trimmed: this decoder determines for itself, from the
// embedded server version, whether the last 5 bytes are a checksum-algorithm
// descriptor plus checksum region or genuine post-header-length table
// entries.
func decodeFormatDescription(rawBody []byte) (FormatDescription, error) {
	c := newCursor(rawBody)
	var fd FormatDescription
	var err error

	if fd.BinlogVersion, err = c.readUint16(); err != nil {
		return FormatDescription{}, err
	}
	if fd.BinlogVersion != 4 {
		return FormatDescription{}, ErrUnsupportedBinlogVersion{Version: fd.BinlogVersion}
	}

	verBytes, err := c.readStringFixed(serverVersionLen)
	if err != nil {
		return FormatDescription{}, err
	}
	fd.ServerVersion = string(mysql.DecodeStringNullTerm(verBytes))
	fd.ServerVersionTriple = splitServerVersion(fd.ServerVersion)

	if fd.CreatedTS, err = c.readUint32(); err != nil {
		return FormatDescription{}, err
	}

	headerLen, err := c.readUint8()
	if err != nil {
		return FormatDescription{}, err
	}
	fd.CommonHeaderLen = int(headerLen)
	if fd.CommonHeaderLen != minCommonHeaderLen {
		return FormatDescription{}, ErrUnsupportedBinlogVersion{Version: fd.BinlogVersion}
	}

	table := c.readRest()
	fd.ChecksumAlgorithm = ChecksumAlgorithmUndefined
	if !fd.isVersionBeforeChecksum() {
		if len(table) < formatDescriptionTailLen {
			return FormatDescription{}, ErrTruncated{Need: formatDescriptionTailLen, Had: len(table)}
		}
		fd.ChecksumAlgorithm = ChecksumAlgorithm(table[len(table)-formatDescriptionTailLen])
		table = table[:len(table)-formatDescriptionTailLen]
	}
	fd.PostHeaderLen = table

	return fd, nil
}

// encodeFormatDescription serializes fd back into an event body. It is the
// inverse of decodeFormatDescription and exists to support the round-trip
// property in spec.md §8. When the server version calls for a
// checksum-algorithm descriptor, the 4 bytes that decodeFormatDescription
// treats as the checksum region are left zeroed: a real checksum value is
// only meaningful once this body is placed after a header and the whole
// event span is run through appendChecksum.
func encodeFormatDescription(fd FormatDescription) []byte {
	tail := 0
	if !fd.isVersionBeforeChecksum() {
		tail = formatDescriptionTailLen
	}
	body := make([]byte, 2+serverVersionLen+4+1+len(fd.PostHeaderLen)+tail)
	c := 0
	mysql.EncodeUint16(body[c:], fd.BinlogVersion)
	c += 2
	ver := make([]byte, serverVersionLen)
	copy(ver, fd.ServerVersion)
	copy(body[c:], ver)
	c += serverVersionLen
	mysql.EncodeUint32(body[c:], fd.CreatedTS)
	c += 4
	body[c] = byte(fd.CommonHeaderLen)
	c++
	copy(body[c:], fd.PostHeaderLen)
	c += len(fd.PostHeaderLen)

	if tail > 0 {
		body[c] = byte(fd.ChecksumAlgorithm)
	}
	return body
}
