package binlog

import "github.com/localhots/binlogcodec/mysql"

// IntvarSubtype distinguishes the two counters an Intvar event can carry.
type IntvarSubtype byte

// Intvar subtypes.
const (
	IntvarLastInsertID IntvarSubtype = 1
	IntvarInsertID     IntvarSubtype = 2
)

func (t IntvarSubtype) String() string {
	switch t {
	case IntvarLastInsertID:
		return "LAST_INSERT_ID"
	case IntvarInsertID:
		return "INSERT_ID"
	default:
		return "UNKNOWN"
	}
}

// Intvar carries a session counter (LAST_INSERT_ID or INSERT_ID) that a
// following Query event's statement depends on for deterministic replay.
// Spec: https://dev.mysql.com/doc/internals/en/intvar-event.html
type Intvar struct {
	Subtype IntvarSubtype
	Value   uint64
}

func (Intvar) eventBody() {}

func decodeIntvar(body []byte) (Intvar, error) {
	c := newCursor(body)
	var v Intvar
	subtype, err := c.readUint8()
	if err != nil {
		return Intvar{}, err
	}
	v.Subtype = IntvarSubtype(subtype)
	if v.Value, err = c.readUint64(); err != nil {
		return Intvar{}, err
	}
	if err := c.finished(EventTypeIntvar); err != nil {
		return Intvar{}, err
	}
	return v, nil
}

func encodeIntvar(v Intvar) []byte {
	body := make([]byte, 9)
	body[0] = byte(v.Subtype)
	mysql.EncodeUint64(body[1:], v.Value)
	return body
}
