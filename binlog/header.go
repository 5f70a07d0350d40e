package binlog

// minCommonHeaderLen is the header length used for binlog version 4 and for
// decoding the bootstrap FormatDescription event itself (spec.md §3 rule 3).
const minCommonHeaderLen = 19

// flagInUse is LOG_EVENT_BINLOG_IN_USE_F: meaningful only on a
// FormatDescription event, cleared on a clean shutdown.
const flagInUse uint16 = 0x1

// EventHeader is the 19-byte common header every binlog event starts with.
type EventHeader struct {
	// WhenSec is the number of seconds since the Unix epoch at which the
	// event was created on the originating server.
	WhenSec uint32
	// Type identifies the event's body layout.
	Type EventType
	// ServerID identifies the server that originated the event.
	ServerID uint32
	// DataWritten is the total size of the event, header through checksum.
	DataWritten uint32
	// LogPos is the byte offset of the next event in the source log.
	LogPos uint32
	// Flags is the header flag bit field; only bit 0 (IN_USE) is defined,
	// and only for FormatDescription events.
	Flags uint16
}

// InUse reports whether the IN_USE flag is set, meaningful only on a
// FormatDescription event.
func (h EventHeader) InUse() bool {
	return h.Flags&flagInUse != 0
}

// decodeHeader parses the common header at the front of buf. headerLen is
// the size of the common header for this event: minCommonHeaderLen for a
// FormatDescription event or when no FormatDescription has been seen yet,
// otherwise the registry's own CommonHeaderLen.
func decodeHeader(buf []byte, headerLen int, checksumExpected bool) (EventHeader, error) {
	if len(buf) < headerLen {
		return EventHeader{}, ErrHeaderTooShort{Len: len(buf), HeaderLen: headerLen}
	}

	c := newCursor(buf[:headerLen])
	var h EventHeader
	var err error
	if h.WhenSec, err = c.readUint32(); err != nil {
		return EventHeader{}, err
	}
	typ, err := c.readUint8()
	if err != nil {
		return EventHeader{}, err
	}
	h.Type = EventType(typ)
	if h.ServerID, err = c.readUint32(); err != nil {
		return EventHeader{}, err
	}
	if h.DataWritten, err = c.readUint32(); err != nil {
		return EventHeader{}, err
	}
	if h.LogPos, err = c.readUint32(); err != nil {
		return EventHeader{}, err
	}
	if h.Flags, err = c.readUint16(); err != nil {
		return EventHeader{}, err
	}

	minWritten := uint32(headerLen)
	if checksumExpected {
		minWritten += checksumLen
	}
	if h.DataWritten < minWritten {
		return EventHeader{}, ErrLengthInconsistent{
			DataWritten:     h.DataWritten,
			HeaderLen:       headerLen,
			ChecksumPresent: checksumExpected,
		}
	}

	return h, nil
}
