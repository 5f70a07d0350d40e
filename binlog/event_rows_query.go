package binlog

// RowsQuery carries the original statement text alongside the row events it
// produced, for tools that want to show a human the SQL behind a row image.
// Spec: https://dev.mysql.com/doc/internals/en/rows-query-event.html
type RowsQuery struct {
	Query string
}

func (RowsQuery) eventBody() {}

func decodeRowsQuery(body []byte) (RowsQuery, error) {
	c := newCursor(body)
	if err := c.skip(1); err != nil { // ignored byte
		return RowsQuery{}, err
	}
	return RowsQuery{Query: string(c.readRest())}, nil
}
