package binlog

import (
	"hash/crc32"

	"github.com/localhots/binlogcodec/mysql"
)

// ChecksumAlgorithm identifies the checksum algorithm, if any, that trails
// every event in a stream.
type ChecksumAlgorithm byte

const (
	// ChecksumAlgorithmOff means events carry no trailing checksum.
	ChecksumAlgorithmOff ChecksumAlgorithm = 0
	// ChecksumAlgorithmCRC32 means every event, including the
	// FormatDescription that announces it, carries a trailing 4-byte
	// zlib-compatible CRC32.
	ChecksumAlgorithmCRC32 ChecksumAlgorithm = 1
	// ChecksumAlgorithmUndefined means the algorithm is not known because
	// the stream's FormatDescription predates MySQL 5.6.1's checksum
	// support. A Session that has not yet seen a FormatDescription reports
	// the zero value, ChecksumAlgorithmOff, instead.
	ChecksumAlgorithmUndefined ChecksumAlgorithm = 255
)

func (ca ChecksumAlgorithm) String() string {
	switch ca {
	case ChecksumAlgorithmOff:
		return "Off"
	case ChecksumAlgorithmCRC32:
		return "CRC32"
	case ChecksumAlgorithmUndefined:
		return "Undefined"
	default:
		return "Unknown"
	}
}

// hasChecksum reports whether a stream using this algorithm appends a
// trailing checksum to its events.
func (ca ChecksumAlgorithm) hasChecksum() bool {
	return ca == ChecksumAlgorithmCRC32
}

const checksumLen = 4

// verifyChecksum checks the trailing 4-byte CRC32 of a CRC32-checksummed
// event span against the CRC32 computed over everything preceding it. span
// must be the full event (header through checksum, inclusive).
func verifyChecksum(span []byte) error {
	if len(span) < checksumLen {
		return ErrTruncated{Need: checksumLen, Had: len(span)}
	}
	body := span[:len(span)-checksumLen]
	stored := mysql.DecodeUint32(span[len(span)-checksumLen:])
	computed := crc32.ChecksumIEEE(body)
	if stored != computed {
		return ErrChecksumMismatch{Expected: stored, Actual: computed}
	}
	return nil
}

// appendChecksum computes the CRC32 of body and appends it, little-endian,
// returning the combined slice. Used by the encode paths that round-trip an
// event back to wire bytes.
func appendChecksum(body []byte) []byte {
	sum := crc32.ChecksumIEEE(body)
	out := make([]byte, len(body)+checksumLen)
	copy(out, body)
	mysql.EncodeUint32(out[len(body):], sum)
	return out
}
