package binlog

// Rows is the shape of a write/update/delete rows event, across all three
// generations of the row event wire format. Its post-header fields (the
// table identifier, flags, and the column bitmaps that say which columns
// are present) are decoded; the row images themselves are left as an opaque
// byte slice: decoding them requires the TableMap this event's TableID
// refers to, which is a stream-level concern this package deliberately
// leaves to the caller (spec.md §1 Non-goals).
// Spec: https://dev.mysql.com/doc/internals/en/rows-event.html
type Rows struct {
	Type          EventType
	TableID       uint64
	Flags         uint16
	ExtraData     []byte
	ColumnCount   uint64
	ColumnBitmap1 []byte
	ColumnBitmap2 []byte
	// RowImages is the undecoded remainder of the body: a sequence of
	// per-row null-bitmap-plus-column-value blocks whose layout depends on
	// the TableMap this TableID refers to.
	RowImages []byte
}

func (Rows) eventBody() {}

func decodeRows(body []byte, typ EventType, fd FormatDescription) (Rows, error) {
	c := newCursor(body)
	r := Rows{Type: typ}
	var err error

	if r.TableID, err = readTableID(c, fd); err != nil {
		return Rows{}, err
	}
	if r.Flags, err = c.readUint16(); err != nil {
		return Rows{}, err
	}

	if typ.usesExtraData() {
		extraLen, err := c.readUint16()
		if err != nil {
			return Rows{}, err
		}
		if extraLen < 2 {
			return Rows{}, ErrTruncated{Need: 2, Had: int(extraLen)}
		}
		if r.ExtraData, err = c.readStringFixed(int(extraLen) - 2); err != nil {
			return Rows{}, err
		}
	}

	if r.ColumnCount, err = c.readPackedInt(); err != nil {
		return Rows{}, err
	}
	bitmapLen := (int(r.ColumnCount) + 7) / 8
	if r.ColumnBitmap1, err = c.readStringFixed(bitmapLen); err != nil {
		return Rows{}, err
	}
	if typ.hasSecondColumnBitmap() {
		if r.ColumnBitmap2, err = c.readStringFixed(bitmapLen); err != nil {
			return Rows{}, err
		}
	}

	r.RowImages = c.readRest()
	return r, nil
}

// isBitSet reports whether bit i of a column bitmap is set, for callers
// decoding RowImages against a TableMap's column list.
func isBitSet(bm []byte, i int) bool {
	return bm[i>>3]&(1<<(uint(i)&7)) > 0
}
