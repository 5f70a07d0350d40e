package binlog

// StatusVarCode identifies the kind of a single status variable found in a
// Query event's status-vars block.
type StatusVarCode byte

// Spec: https://dev.mysql.com/doc/internals/en/query-event.html
const (
	StatusVarFlags2             StatusVarCode = 0
	StatusVarSQLMode            StatusVarCode = 1
	StatusVarCatalog            StatusVarCode = 2
	StatusVarAutoIncrement      StatusVarCode = 3
	StatusVarCharset            StatusVarCode = 4
	StatusVarTimeZone           StatusVarCode = 5
	StatusVarCatalogNZ          StatusVarCode = 6
	StatusVarLCTimeNames        StatusVarCode = 7
	StatusVarCharsetDatabase    StatusVarCode = 8
	StatusVarTableMapForUpdate  StatusVarCode = 9
	StatusVarMasterDataWritten  StatusVarCode = 10
	StatusVarInvoker            StatusVarCode = 11
	StatusVarUpdatedDBNames     StatusVarCode = 12
	StatusVarMicroseconds       StatusVarCode = 13
	StatusVarCommitTS           StatusVarCode = 14
)

func (c StatusVarCode) String() string {
	switch c {
	case StatusVarFlags2:
		return "Flags2"
	case StatusVarSQLMode:
		return "SQLMode"
	case StatusVarCatalog:
		return "Catalog"
	case StatusVarAutoIncrement:
		return "AutoIncrement"
	case StatusVarCharset:
		return "Charset"
	case StatusVarTimeZone:
		return "TimeZone"
	case StatusVarCatalogNZ:
		return "CatalogNZ"
	case StatusVarLCTimeNames:
		return "LCTimeNames"
	case StatusVarCharsetDatabase:
		return "CharsetDatabase"
	case StatusVarTableMapForUpdate:
		return "TableMapForUpdate"
	case StatusVarMasterDataWritten:
		return "MasterDataWritten"
	case StatusVarInvoker:
		return "Invoker"
	case StatusVarUpdatedDBNames:
		return "UpdatedDBNames"
	case StatusVarMicroseconds:
		return "Microseconds"
	case StatusVarCommitTS:
		return "CommitTS"
	default:
		return "Unknown"
	}
}

// AutoIncrement is the payload of StatusVarAutoIncrement.
type AutoIncrement struct {
	Increment uint16
	Offset    uint16
}

// Charset is the payload of StatusVarCharset: client, connection, and server
// character set IDs.
type Charset struct {
	Client     uint16
	Connection uint16
	Server     uint16
}

// Invoker is the payload of StatusVarInvoker.
type Invoker struct {
	User []byte
	Host []byte
}

// updatedDBNamesSaturated is the sentinel count (254) meaning "more
// databases were touched than we bothered to enumerate".
const updatedDBNamesSaturated = 254

// StatusVar is one item of a Query event's status-vars block. Value holds
// the decoded payload, whose Go type depends on Code: one of uint16, uint32,
// uint64, []byte, AutoIncrement, Charset, Invoker, or []string (for
// StatusVarUpdatedDBNames).
type StatusVar struct {
	Code  StatusVarCode
	Value interface{}
}

// decodeStatusVars walks a status_vars_len-byte region, returning every item
// parsed in encounter order. On an unknown code, parsing stops and the error
// carries everything parsed so far (spec.md §4.6 / §7).
func decodeStatusVars(data []byte) ([]StatusVar, error) {
	c := newCursor(data)
	var vars []StatusVar
	for c.remaining() > 0 {
		code, err := c.readUint8()
		if err != nil {
			return vars, err
		}
		v, err := decodeStatusVar(c, StatusVarCode(code))
		if err != nil {
			if _, unknown := err.(ErrUnknownStatusVar); unknown {
				return vars, ErrUnknownStatusVar{Code: code, Parsed: vars}
			}
			return vars, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

func decodeStatusVar(c *cursor, code StatusVarCode) (StatusVar, error) {
	switch code {
	case StatusVarFlags2:
		v, err := c.readUint32()
		return StatusVar{code, v}, err
	case StatusVarSQLMode:
		v, err := c.readUint64()
		return StatusVar{code, v}, err
	case StatusVarCatalog:
		v, err := c.readString1()
		if err != nil {
			return StatusVar{}, err
		}
		if err := c.skip(1); err != nil { // trailing zero, not counted in the length prefix
			return StatusVar{}, err
		}
		return StatusVar{code, v}, nil
	case StatusVarAutoIncrement:
		inc, err := c.readUint16()
		if err != nil {
			return StatusVar{}, err
		}
		off, err := c.readUint16()
		return StatusVar{code, AutoIncrement{Increment: inc, Offset: off}}, err
	case StatusVarCharset:
		client, err := c.readUint16()
		if err != nil {
			return StatusVar{}, err
		}
		conn, err := c.readUint16()
		if err != nil {
			return StatusVar{}, err
		}
		server, err := c.readUint16()
		return StatusVar{code, Charset{Client: client, Connection: conn, Server: server}}, err
	case StatusVarTimeZone:
		v, err := c.readString1()
		return StatusVar{code, v}, err
	case StatusVarCatalogNZ:
		v, err := c.readString1()
		return StatusVar{code, v}, err
	case StatusVarLCTimeNames:
		v, err := c.readUint16()
		return StatusVar{code, v}, err
	case StatusVarCharsetDatabase:
		v, err := c.readUint16()
		return StatusVar{code, v}, err
	case StatusVarTableMapForUpdate:
		v, err := c.readUint64()
		return StatusVar{code, v}, err
	case StatusVarMasterDataWritten:
		v, err := c.readUint32()
		return StatusVar{code, v}, err
	case StatusVarInvoker:
		user, err := c.readString1()
		if err != nil {
			return StatusVar{}, err
		}
		host, err := c.readString1()
		return StatusVar{code, Invoker{User: user, Host: host}}, err
	case StatusVarUpdatedDBNames:
		names, err := decodeUpdatedDBNames(c)
		return StatusVar{code, names}, err
	case StatusVarMicroseconds:
		v, err := c.readUint24()
		return StatusVar{code, v}, err
	case StatusVarCommitTS:
		v, err := c.readUint64()
		return StatusVar{code, v}, err
	default:
		return StatusVar{}, ErrUnknownStatusVar{Code: byte(code)}
	}
}

func decodeUpdatedDBNames(c *cursor) ([]string, error) {
	count, err := c.readUint8()
	if err != nil {
		return nil, err
	}
	n := int(count)
	if count == updatedDBNamesSaturated {
		// The exact count was saturated away; every name that follows is
		// still zero-terminated, so read until the block, bounded by
		// OVER_MAX_DBS_IN_EVENT_MTS, is consumed by the caller's cursor end
		// instead of by a fixed count.
		names := make([]string, 0, n)
		for c.remaining() > 0 {
			name, err := c.readStringNullTerm()
			if err != nil {
				return names, err
			}
			names = append(names, string(name))
		}
		return names, nil
	}

	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, err := c.readStringNullTerm()
		if err != nil {
			return names, err
		}
		names = append(names, string(name))
	}
	return names, nil
}
