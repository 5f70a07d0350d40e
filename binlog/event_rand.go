package binlog

import "github.com/localhots/binlogcodec/mysql"

// Rand carries the seed pair behind a session's RAND() calls, so a
// statement-based replay reproduces the same pseudo-random sequence.
// Spec: https://dev.mysql.com/doc/internals/en/rand-event.html
type Rand struct {
	Seed1 uint64
	Seed2 uint64
}

func (Rand) eventBody() {}

func decodeRand(body []byte) (Rand, error) {
	c := newCursor(body)
	var r Rand
	var err error
	if r.Seed1, err = c.readUint64(); err != nil {
		return Rand{}, err
	}
	if r.Seed2, err = c.readUint64(); err != nil {
		return Rand{}, err
	}
	if err := c.finished(EventTypeRand); err != nil {
		return Rand{}, err
	}
	return r, nil
}

func encodeRand(r Rand) []byte {
	body := make([]byte, 16)
	mysql.EncodeUint64(body, r.Seed1)
	mysql.EncodeUint64(body[8:], r.Seed2)
	return body
}
