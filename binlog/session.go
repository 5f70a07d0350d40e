package binlog

// SessionState is one of the three states a Session moves through as it
// decodes a stream.
type SessionState int

const (
	// AwaitingFDE means no FormatDescription has been committed yet; the
	// only acceptable event is one.
	AwaitingFDE SessionState = iota
	// Streaming means a FormatDescription is committed and any event type
	// is accepted.
	Streaming
	// Poisoned means a header-level truncation was seen; the session will
	// not attempt to decode anything further.
	Poisoned
)

func (s SessionState) String() string {
	switch s {
	case AwaitingFDE:
		return "AwaitingFDE"
	case Streaming:
		return "Streaming"
	case Poisoned:
		return "Poisoned"
	default:
		return "Unknown"
	}
}

// Session is the framed decode facade (spec.md §4.7): the single entry
// point a caller uses to turn successive event byte slices into typed
// Events. It owns the FormatDescription registry for one stream and is not
// safe for concurrent use: run one Session per stream partition.
type Session struct {
	state SessionState
	fd    FormatDescription
}

// NewSession creates a Session with no FormatDescription yet known. The
// first event fed to Decode must be a FormatDescription.
func NewSession() *Session {
	return &Session{state: AwaitingFDE}
}

// ResumeSession creates a Session that already has fd committed, for a
// caller resuming a stream partway through (e.g. after a reconnect that
// skipped re-sending the FormatDescription).
func ResumeSession(fd FormatDescription) *Session {
	return &Session{state: Streaming, fd: fd}
}

// State reports the session's current state.
func (s *Session) State() SessionState {
	return s.state
}

// FormatDescription returns the registry currently in effect. Its zero
// value is returned if no FormatDescription has been committed yet.
func (s *Session) FormatDescription() FormatDescription {
	return s.fd
}

// ChecksumAlgorithm returns the checksum algorithm currently active for
// this stream.
func (s *Session) ChecksumAlgorithm() ChecksumAlgorithm {
	return s.fd.ChecksumAlgorithm
}

// SetChecksumAlgorithm overrides the active checksum algorithm, for callers
// that already know it out-of-band (spec.md §6, public contract point 3).
// The override applies to events decoded after it, until a later
// FormatDescription is committed and replaces it with that event's own
// algorithm. It does not change the session's state: a session still
// awaiting its first FormatDescription keeps rejecting every other event.
func (s *Session) SetChecksumAlgorithm(ca ChecksumAlgorithm) {
	s.fd.ChecksumAlgorithm = ca
}

// Decode consumes a single complete event byte slice and returns its typed
// Event. Once the body decoder has run, debugf logs the attempt and its
// outcome; failures before that point (header, body span, checksum) are
// returned without logging. The returned error, if any, is one of the
// variants in errors.go.
// debugf is guarded by EnableDebug to keep this cheap in the common case.
func (s *Session) Decode(event []byte) (Event, error) {
	if s.state == Poisoned {
		return Event{}, ErrProtocolError{Reason: "session poisoned by a prior header-level truncation"}
	}

	typ, err := peekEventType(event)
	if err != nil {
		s.state = Poisoned
		return Event{}, err
	}

	if typ == EventTypeFormatDescription {
		return s.decodeFormatDescriptionEvent(event)
	}

	if s.state == AwaitingFDE {
		return Event{}, ErrProtocolError{Reason: "first event of stream is not a FormatDescription"}
	}

	headerLen := s.fd.CommonHeaderLen
	checksumExpected := s.fd.ChecksumAlgorithm.hasChecksum()
	header, err := decodeHeader(event, headerLen, checksumExpected)
	if err != nil {
		if isHeaderLevelTruncation(err) {
			s.state = Poisoned
		}
		return Event{}, err
	}

	bodyBuf, err := s.bodySpan(event, header, checksumExpected)
	if err != nil {
		return Event{Header: header}, err
	}
	if checksumExpected {
		if err := verifyChecksum(event[:header.DataWritten]); err != nil {
			return Event{Header: header}, err
		}
	}

	body, err := s.decodeBody(header.Type, bodyBuf)
	debugf("decoded %s: %d body byte(s), err=%v", header.Type, len(bodyBuf), err)
	if err != nil {
		return Event{Header: header}, err
	}
	return Event{Header: header, Body: body}, nil
}

// bodySpan returns the decodable portion of event: everything after the
// common header, minus the trailing checksum when one is expected.
func (s *Session) bodySpan(event []byte, header EventHeader, checksumExpected bool) ([]byte, error) {
	if int(header.DataWritten) > len(event) {
		return nil, ErrTruncated{Need: int(header.DataWritten), Had: len(event)}
	}
	end := int(header.DataWritten)
	if checksumExpected {
		end -= checksumLen
	}
	if end < s.fd.CommonHeaderLen || end > len(event) {
		return nil, ErrTruncated{Need: end, Had: len(event)}
	}
	return event[s.fd.CommonHeaderLen:end], nil
}

func isHeaderLevelTruncation(err error) bool {
	switch err.(type) {
	case ErrHeaderTooShort, ErrTruncated:
		return true
	default:
		return false
	}
}

// peekEventType reads the type code at its fixed offset (4) in the common
// header, which is the same across every header length this format uses.
func peekEventType(event []byte) (EventType, error) {
	const typeOffset = 4
	if len(event) < typeOffset+1 {
		return 0, ErrHeaderTooShort{Len: len(event), HeaderLen: typeOffset + 1}
	}
	return EventType(event[typeOffset]), nil
}

// decodeFormatDescriptionEvent handles the bootstrap exception of spec.md
// §4.2: the active checksum algorithm for THIS event is determined by
// inspecting its own post-header-length table before the event is accepted,
// rather than by consulting the registry from a prior FDE.
func (s *Session) decodeFormatDescriptionEvent(event []byte) (Event, error) {
	header, err := decodeHeader(event, minCommonHeaderLen, false)
	if err != nil {
		if isHeaderLevelTruncation(err) {
			s.state = Poisoned
		}
		return Event{}, err
	}

	end := int(header.DataWritten)
	if end < minCommonHeaderLen || end > len(event) {
		return Event{Header: header}, ErrTruncated{Need: end, Had: len(event)}
	}
	rawBody := event[minCommonHeaderLen:end]

	fd, err := decodeFormatDescription(rawBody)
	if err != nil {
		return Event{Header: header}, err
	}

	if fd.ChecksumAlgorithm == ChecksumAlgorithmCRC32 {
		if err := verifyChecksum(event[:end]); err != nil {
			return Event{Header: header}, err
		}
	}

	s.fd = fd
	s.state = Streaming
	debugf("committed FormatDescription: version=%s checksum=%s", fd.ServerVersion, fd.ChecksumAlgorithm)
	return Event{Header: header, Body: fd}, nil
}

func (s *Session) decodeBody(typ EventType, body []byte) (Body, error) {
	switch typ {
	case EventTypeStartV3:
		return decodeStartV3(body)
	case EventTypeQuery:
		return decodeQuery(body)
	case EventTypeStop:
		return decodeStop(body)
	case EventTypeRotate:
		return decodeRotate(body)
	case EventTypeIntvar:
		return decodeIntvar(body)
	case EventTypeLoad:
		return decodeLoad(body)
	case EventTypeSlave:
		return decodeSlave(body)
	case EventTypeCreateFile:
		return decodeCreateFile(body)
	case EventTypeAppendBlock:
		return decodeAppendBlock(body)
	case EventTypeExecLoad:
		return decodeExecLoad(body)
	case EventTypeDeleteFile:
		return decodeDeleteFile(body)
	case EventTypeNewLoad:
		return decodeNewLoad(body)
	case EventTypeRand:
		return decodeRand(body)
	case EventTypeUserVar:
		return decodeUserVar(body)
	case EventTypeXID:
		return decodeXID(body)
	case EventTypeBeginLoadQuery:
		return decodeBeginLoadQuery(body)
	case EventTypeExecuteLoadQuery:
		return decodeExecuteLoadQuery(body)
	case EventTypeTableMap:
		return decodeTableMap(body, s.fd)
	case EventTypePreGAWriteRows, EventTypePreGAUpdateRows, EventTypePreGADeleteRows:
		return decodePreGARows(body, typ)
	case EventTypeWriteRowsV1, EventTypeUpdateRowsV1, EventTypeDeleteRowsV1,
		EventTypeWriteRowsV2, EventTypeUpdateRowsV2, EventTypeDeleteRowsV2:
		return decodeRows(body, typ, s.fd)
	case EventTypeIncident:
		return decodeIncident(body)
	case EventTypeHeartbeat:
		return decodeHeartbeat(body)
	case EventTypeIgnorable:
		return decodeIgnorable(body)
	case EventTypeRowsQuery:
		return decodeRowsQuery(body)
	case EventTypeGTID, EventTypeAnonymousGTID:
		return decodeGTID(body)
	case EventTypePreviousGTIDs:
		return decodePreviousGTIDs(body)
	case EventTypeUnknown, EventTypeUserDefined:
		return decodeUnknown(body)
	default:
		return nil, ErrUnknownEventType{Type: typ}
	}
}
