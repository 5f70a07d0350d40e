package binlog

import "github.com/localhots/binlogcodec/mysql"

// TableMap maps a table identifier to the schema, table name, and column
// types that the row events following it will reference. Column values
// themselves are not decoded by this package; ColumnTypes and ColumnMeta are
// exposed opaquely so a caller that wants to decode row images can.
// Spec: https://dev.mysql.com/doc/internals/en/table-map-event.html
type TableMap struct {
	TableID     uint64
	Flags       uint16
	SchemaName  string
	TableName   string
	ColumnCount uint64
	ColumnTypes []byte
	ColumnMeta  []byte
	NullBitmap  []byte
}

func (TableMap) eventBody() {}

// ColumnTypeAt returns the declared type of column i, for a caller walking
// RowImages against this TableMap's column list.
func (tm TableMap) ColumnTypeAt(i int) mysql.ColumnType {
	return mysql.ColumnType(tm.ColumnTypes[i])
}

func decodeTableMap(body []byte, fd FormatDescription) (TableMap, error) {
	c := newCursor(body)
	var tm TableMap
	var err error

	if tm.TableID, err = readTableID(c, fd); err != nil {
		return TableMap{}, err
	}
	if tm.Flags, err = c.readUint16(); err != nil {
		return TableMap{}, err
	}

	schemaName, err := c.readString1()
	if err != nil {
		return TableMap{}, err
	}
	tm.SchemaName = string(schemaName)
	if err := c.skip(1); err != nil { // always 0x00
		return TableMap{}, err
	}

	tableName, err := c.readString1()
	if err != nil {
		return TableMap{}, err
	}
	tm.TableName = string(tableName)
	if err := c.skip(1); err != nil { // always 0x00
		return TableMap{}, err
	}

	if tm.ColumnCount, err = c.readPackedInt(); err != nil {
		return TableMap{}, err
	}
	if tm.ColumnTypes, err = c.readStringFixed(int(tm.ColumnCount)); err != nil {
		return TableMap{}, err
	}

	metaLen, err := c.readPackedInt()
	if err != nil {
		return TableMap{}, err
	}
	if tm.ColumnMeta, err = c.readStringFixed(int(metaLen)); err != nil {
		return TableMap{}, err
	}

	nullBitmapLen := (int(tm.ColumnCount) + 7) / 8
	tm.NullBitmap, err = c.readStringFixed(nullBitmapLen)
	if err != nil {
		return TableMap{}, err
	}

	return tm, nil
}

// readTableID reads a TableMap or Rows event's table identifier, which is
// either 4 or 6 bytes wide depending on the stream's FormatDescription.
func readTableID(c *cursor, fd FormatDescription) (uint64, error) {
	if fd.tableIDSize() == 4 {
		v, err := c.readUint32()
		return uint64(v), err
	}
	return c.readUint48()
}
