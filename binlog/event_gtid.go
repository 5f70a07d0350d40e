package binlog

import (
	"fmt"

	"github.com/localhots/binlogcodec/mysql"
)

// gtidSIDLen is the width of a GTID event's source identifier, a raw UUID.
const gtidSIDLen = 16

// GTID is the body of a GTID or AnonymousGTID event: the global transaction
// identifier a following transaction is tagged with. Whether it originated
// as a real or anonymous GTID is carried by the event's type, not its
// payload, so the two event types share this body.
// Spec: https://dev.mysql.com/doc/internals/en/gtid-event.html
type GTID struct {
	CommitSeqNo int64
	CommitFlag  byte
	SID         [gtidSIDLen]byte
	GNO         uint64
	// Extra holds any bytes past GNO. Servers newer than this package's
	// reference version append logical timestamps here; they are exposed
	// opaquely rather than decoded.
	Extra []byte
}

func (GTID) eventBody() {}

func decodeGTID(body []byte) (GTID, error) {
	c := newCursor(body)
	var g GTID
	var err error

	if g.CommitSeqNo, err = c.readInt64(); err != nil {
		return GTID{}, err
	}
	if g.CommitFlag, err = c.readUint8(); err != nil {
		return GTID{}, err
	}
	sid, err := c.readStringFixed(gtidSIDLen)
	if err != nil {
		return GTID{}, err
	}
	copy(g.SID[:], sid)
	if g.GNO, err = c.readUint64(); err != nil {
		return GTID{}, err
	}
	g.Extra = c.readRest()
	return g, nil
}

// encodeGTID serializes g back into an event body, including any opaque
// trailing bytes captured in Extra.
func encodeGTID(g GTID) []byte {
	body := make([]byte, 8+1+gtidSIDLen+8+len(g.Extra))
	c := 0
	mysql.EncodeInt64(body[c:], g.CommitSeqNo)
	c += 8
	body[c] = g.CommitFlag
	c++
	copy(body[c:], g.SID[:])
	c += gtidSIDLen
	mysql.EncodeUint64(body[c:], g.GNO)
	c += 8
	copy(body[c:], g.Extra)
	return body
}

// String renders the SID/GNO pair in the conventional UUID:GNO form.
func (g GTID) String() string {
	return fmt.Sprintf("%x-%x-%x-%x-%x:%d",
		g.SID[0:4], g.SID[4:6], g.SID[6:8], g.SID[8:10], g.SID[10:16], g.GNO)
}

// PreviousGTIDs carries the opaque GTID set a stream had accumulated before
// this point; decoding its internal structure is left to the caller.
// Spec: https://dev.mysql.com/doc/internals/en/previous-gtids-event.html
type PreviousGTIDs struct {
	Encoded []byte
}

func (PreviousGTIDs) eventBody() {}

func decodePreviousGTIDs(body []byte) (PreviousGTIDs, error) {
	c := newCursor(body)
	return PreviousGTIDs{Encoded: c.readRest()}, nil
}
