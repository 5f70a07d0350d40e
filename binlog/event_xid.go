package binlog

import "github.com/localhots/binlogcodec/mysql"

// XID is the commit marker written for a transaction that touched an
// XA-capable storage engine.
// Spec: https://dev.mysql.com/doc/internals/en/xid-event.html
type XID struct {
	XID uint64
}

func (XID) eventBody() {}

func decodeXID(body []byte) (XID, error) {
	c := newCursor(body)
	v, err := c.readUint64()
	if err != nil {
		return XID{}, err
	}
	if err := c.finished(EventTypeXID); err != nil {
		return XID{}, err
	}
	return XID{XID: v}, nil
}

func encodeXID(x XID) []byte {
	body := make([]byte, 8)
	mysql.EncodeUint64(body, x.XID)
	return body
}
