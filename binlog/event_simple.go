package binlog

// Stop marks a clean shutdown of the originating server; it carries no
// post-header and no body.
// Spec: https://dev.mysql.com/doc/internals/en/stop-event.html
type Stop struct{}

func (Stop) eventBody() {}

func decodeStop(body []byte) (Stop, error) {
	return Stop{}, nil
}

// Heartbeat is sent by a source with no other events to keep a replica's
// connection alive; its body is the current log file name.
// Spec: https://dev.mysql.com/doc/internals/en/heartbeat-event.html
type Heartbeat struct {
	LogFile string
}

func (Heartbeat) eventBody() {}

func decodeHeartbeat(body []byte) (Heartbeat, error) {
	return Heartbeat{LogFile: string(body)}, nil
}

// Ignorable is any event type a reader too old to understand is told to
// skip rather than fail on. Its body is exposed as-is.
// Spec.md §4.5.
type Ignorable struct {
	Raw []byte
}

func (Ignorable) eventBody() {}

func decodeIgnorable(body []byte) (Ignorable, error) {
	return Ignorable{Raw: newCursor(body).readRest()}, nil
}

// Unknown is the body of an EventTypeUnknown or EventTypeUserDefined event.
// Its body is exposed as-is. Type codes outside the enumeration do not
// produce an Unknown body; Session.Decode rejects them with
// ErrUnknownEventType.
type Unknown struct {
	Raw []byte
}

func (Unknown) eventBody() {}

func decodeUnknown(body []byte) (Unknown, error) {
	return Unknown{Raw: newCursor(body).readRest()}, nil
}

// Slave is a legacy, effectively unused event type retained for type-code
// compatibility. Its body is exposed opaquely.
// Spec.md §4.5.
type Slave struct {
	Raw []byte
}

func (Slave) eventBody() {}

func decodeSlave(body []byte) (Slave, error) {
	return Slave{Raw: newCursor(body).readRest()}, nil
}

// PreGARows is a pre-5.1.15 row event (PRE_GA_WRITE/UPDATE/DELETE_ROWS). Its
// wire format predates the table-map-driven row events and is exposed
// opaquely; no stream in active use still emits it.
// Spec.md §4.5.
type PreGARows struct {
	Type EventType
	Raw  []byte
}

func (PreGARows) eventBody() {}

func decodePreGARows(body []byte, typ EventType) (PreGARows, error) {
	return PreGARows{Type: typ, Raw: newCursor(body).readRest()}, nil
}
