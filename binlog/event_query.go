package binlog

import "github.com/localhots/binlogcodec/mysql"

// Query is the body of a Query event: a statement that modified the
// database, logged statement-based rather than row-based.
// Spec: https://dev.mysql.com/doc/internals/en/query-event.html
type Query struct {
	ThreadID      uint32
	ExecutionTime uint32
	ErrorCode     uint16
	StatusVars    []StatusVar
	Database      string
	Query         string
}

func (Query) eventBody() {}

func decodeQuery(body []byte) (Query, error) {
	c := newCursor(body)
	var q Query
	var err error

	if q.ThreadID, err = c.readUint32(); err != nil {
		return Query{}, err
	}
	if q.ExecutionTime, err = c.readUint32(); err != nil {
		return Query{}, err
	}
	dbLen, err := c.readUint8()
	if err != nil {
		return Query{}, err
	}
	if q.ErrorCode, err = c.readUint16(); err != nil {
		return Query{}, err
	}
	statusVarsLen, err := c.readUint16()
	if err != nil {
		return Query{}, err
	}
	if int(statusVarsLen) > c.remaining() {
		return Query{}, ErrTruncated{Need: int(statusVarsLen), Had: c.remaining()}
	}
	statusVarsBuf, err := c.take(int(statusVarsLen))
	if err != nil {
		return Query{}, err
	}
	q.StatusVars, err = decodeStatusVars(statusVarsBuf)
	if err != nil {
		return Query{}, err
	}

	if int(dbLen)+1 > c.remaining() {
		return Query{}, ErrTruncated{Need: int(dbLen) + 1, Had: c.remaining()}
	}
	dbBytes, err := c.readStringFixed(int(dbLen))
	if err != nil {
		return Query{}, err
	}
	q.Database = string(dbBytes)
	if err := c.skip(1); err != nil { // trailing zero, not counted in dbLen
		return Query{}, err
	}

	q.Query = string(c.readRest())
	return q, nil
}

// encodeQuery serializes q back into an event body, using an empty
// status-vars block: sufficient for the round-trip property in spec.md §8,
// which only requires the "minimum form" of Query to round-trip.
func encodeQuery(q Query) []byte {
	db := []byte(q.Database)
	body := make([]byte, 4+4+1+2+2+len(db)+1+len(q.Query))
	c := 0
	mysql.EncodeUint32(body[c:], q.ThreadID)
	c += 4
	mysql.EncodeUint32(body[c:], q.ExecutionTime)
	c += 4
	body[c] = byte(len(db))
	c++
	mysql.EncodeUint16(body[c:], q.ErrorCode)
	c += 2
	mysql.EncodeUint16(body[c:], 0) // status_vars_len
	c += 2
	copy(body[c:], db)
	c += len(db)
	body[c] = 0
	c++
	copy(body[c:], q.Query)
	return body
}
