package binlog

import (
	"github.com/localhots/binlogcodec/mysql"
)

// cursor is a forward-only, bounds-checked view over an immutable byte
// slice. It is not safe to share across goroutines, matching the rest of
// this package: a Session and everything it hands out is meant to be used
// by a single caller at a time.
type cursor struct {
	data []byte
	pos  int
	end  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data, end: len(data)}
}

// remaining returns how many unread bytes are left in the cursor.
func (c *cursor) remaining() int {
	return c.end - c.pos
}

// rest returns every unread byte without advancing the cursor.
func (c *cursor) rest() []byte {
	return c.data[c.pos:c.end]
}

func (c *cursor) need(n int) error {
	if c.remaining() < n {
		return ErrTruncated{Need: n, Had: c.remaining()}
	}
	return nil
}

// skip advances the cursor by n bytes without returning them.
func (c *cursor) skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// take returns the next n bytes and advances the cursor past them. The
// returned slice aliases the input buffer; callers that need to retain it
// beyond the decode call must copy it.
func (c *cursor) take(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readUint8() (uint8, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return mysql.DecodeUint8(b), nil
}

func (c *cursor) readUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return mysql.DecodeUint16(b), nil
}

func (c *cursor) readUint24() (uint32, error) {
	b, err := c.take(3)
	if err != nil {
		return 0, err
	}
	return mysql.DecodeUint24(b), nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return mysql.DecodeUint32(b), nil
}

func (c *cursor) readUint48() (uint64, error) {
	b, err := c.take(6)
	if err != nil {
		return 0, err
	}
	return mysql.DecodeVarLen64(b, 6), nil
}

func (c *cursor) readUint64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return mysql.DecodeUint64(b), nil
}

func (c *cursor) readInt64() (int64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return mysql.DecodeInt64(b), nil
}

// readPackedInt reads a packed integer per the 0-250/252/253/254 scheme.
func (c *cursor) readPackedInt() (uint64, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	marker := c.data[c.pos]
	size := packedIntSize(marker)
	if err := c.need(size); err != nil {
		return 0, err
	}
	v, n, ok := mysql.DecodePackedInt(c.data[c.pos : c.pos+size])
	if !ok {
		return 0, ErrMalformedPackedInt{Byte: marker}
	}
	c.pos += n
	return v, nil
}

func packedIntSize(marker byte) int {
	switch marker {
	case 252:
		return 3
	case 253:
		return 4
	case 254:
		return 9
	default:
		return 1
	}
}

// readStringFixed reads a fixed-width n-byte run and copies it out, owned
// independently of the input buffer.
func (c *cursor) readStringFixed(n int) ([]byte, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	return mysql.DecodeStringVarLen(b, n), nil
}

// readString1 reads a 1-byte length prefix followed by that many bytes,
// satisfying spec rule 6 (offset+1+len <= buffer_end).
func (c *cursor) readString1() ([]byte, error) {
	n, err := c.readUint8()
	if err != nil {
		return nil, err
	}
	return c.readStringFixed(int(n))
}

// readStringNullTerm reads bytes up to (and consuming) a trailing 0x00.
func (c *cursor) readStringNullTerm() ([]byte, error) {
	for i, b := range c.rest() {
		if b == 0x00 {
			s := mysql.DecodeStringVarLen(c.data[c.pos:c.pos+i], i)
			c.pos += i + 1
			return s, nil
		}
	}
	return nil, ErrTruncated{Need: 1, Had: 0}
}

// readRest returns every remaining byte, owned independently of the input
// buffer, and advances the cursor to the end.
func (c *cursor) readRest() []byte {
	b := mysql.DecodeStringEOF(c.rest())
	c.pos = c.end
	return b
}

// finished returns ErrTrailingGarbage if any bytes remain unread, for
// decoders whose body layout is fixed-size rather than running to body_end.
func (c *cursor) finished(typ EventType) error {
	if c.remaining() > 0 {
		return ErrTrailingGarbage{Type: typ, Bytes: c.remaining()}
	}
	return nil
}
