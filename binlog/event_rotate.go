package binlog

import "github.com/localhots/binlogcodec/mysql"

// Rotate points to the next binlog file in the sequence. It is written when
// the current file exceeds its size limit, or on an explicit FLUSH LOGS.
// Spec: https://dev.mysql.com/doc/internals/en/rotate-event.html
type Rotate struct {
	Position uint64
	NextLog  string
}

func (Rotate) eventBody() {}

func decodeRotate(body []byte) (Rotate, error) {
	c := newCursor(body)
	var r Rotate
	var err error
	if r.Position, err = c.readUint64(); err != nil {
		return Rotate{}, err
	}
	r.NextLog = string(c.readRest())
	return r, nil
}

func encodeRotate(r Rotate) []byte {
	body := make([]byte, 8+len(r.NextLog))
	mysql.EncodeUint64(body, r.Position)
	copy(body[8:], r.NextLog)
	return body
}
