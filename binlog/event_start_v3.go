package binlog

import "github.com/localhots/binlogcodec/mysql"

// StartV3 is the body of the pre-FDE format-description event, superseded
// by FormatDescription in binlog version 4. It is decoded only when such an
// event appears inside a version 4 stream; streams of binlog version 1-3,
// which use a shorter common header, are not decoded.
// Spec: https://dev.mysql.com/doc/internals/en/start-event-v3.html
type StartV3 struct {
	BinlogVersion uint16
	ServerVersion string
	CreatedTS     uint32
}

func (StartV3) eventBody() {}

func decodeStartV3(body []byte) (StartV3, error) {
	c := newCursor(body)
	var s StartV3
	var err error

	if s.BinlogVersion, err = c.readUint16(); err != nil {
		return StartV3{}, err
	}
	verBytes, err := c.readStringFixed(serverVersionLen)
	if err != nil {
		return StartV3{}, err
	}
	s.ServerVersion = string(mysql.DecodeStringNullTerm(verBytes))
	if s.CreatedTS, err = c.readUint32(); err != nil {
		return StartV3{}, err
	}
	if err := c.finished(EventTypeStartV3); err != nil {
		return StartV3{}, err
	}
	return s, nil
}
