package binlog

// IncidentCode identifies why the master logged an Incident event, marking
// the stream as possibly inconsistent from this point.
type IncidentCode uint16

// Incident codes.
const (
	IncidentNone       IncidentCode = 0
	IncidentLostEvents IncidentCode = 1
)

func (c IncidentCode) String() string {
	switch c {
	case IncidentNone:
		return "NONE"
	case IncidentLostEvents:
		return "LOST_EVENTS"
	default:
		return "UNKNOWN"
	}
}

// Incident is written when the master could not log something it should
// have, e.g. statements run with binlog disabled.
// Spec: https://dev.mysql.com/doc/internals/en/incident-event.html
type Incident struct {
	Code    IncidentCode
	Message string
}

func (Incident) eventBody() {}

func decodeIncident(body []byte) (Incident, error) {
	c := newCursor(body)
	var inc Incident

	code, err := c.readUint16()
	if err != nil {
		return Incident{}, err
	}
	inc.Code = IncidentCode(code)

	msgLen, err := c.readUint8()
	if err != nil {
		return Incident{}, err
	}
	msg, err := c.readStringFixed(int(msgLen))
	if err != nil {
		return Incident{}, err
	}
	inc.Message = string(msg)
	return inc, nil
}
