package binlog

// UserVarValueType identifies the SQL type of a user-defined variable's
// value, as carried in a UserVar event.
type UserVarValueType byte

// UserVar value types.
const (
	UserVarString  UserVarValueType = 0
	UserVarReal    UserVarValueType = 1
	UserVarInt     UserVarValueType = 2
	UserVarRow     UserVarValueType = 3
	UserVarDecimal UserVarValueType = 4
)

func (t UserVarValueType) String() string {
	switch t {
	case UserVarString:
		return "STRING"
	case UserVarReal:
		return "REAL"
	case UserVarInt:
		return "INT"
	case UserVarRow:
		return "ROW"
	case UserVarDecimal:
		return "DECIMAL"
	default:
		return "UNKNOWN"
	}
}

// UserVar is the body of a @variable := value assignment, logged so a
// following statement-based Query event can be replayed deterministically.
// Spec: https://dev.mysql.com/doc/internals/en/user-var-event.html
type UserVar struct {
	Name      string
	IsNull    bool
	ValueType UserVarValueType
	Charset   uint32
	Value     []byte
	// Flags is present only when the writer appended a trailing byte; older
	// servers omit it entirely.
	Flags    byte
	HasFlags bool
}

func (UserVar) eventBody() {}

func decodeUserVar(body []byte) (UserVar, error) {
	c := newCursor(body)
	var v UserVar

	nameLen, err := c.readUint32()
	if err != nil {
		return UserVar{}, err
	}
	name, err := c.readStringFixed(int(nameLen))
	if err != nil {
		return UserVar{}, err
	}
	v.Name = string(name)

	isNull, err := c.readUint8()
	if err != nil {
		return UserVar{}, err
	}
	v.IsNull = isNull != 0
	if v.IsNull {
		return v, nil
	}

	valueType, err := c.readUint8()
	if err != nil {
		return UserVar{}, err
	}
	v.ValueType = UserVarValueType(valueType)
	if v.Charset, err = c.readUint32(); err != nil {
		return UserVar{}, err
	}
	valueLen, err := c.readUint32()
	if err != nil {
		return UserVar{}, err
	}
	if v.Value, err = c.readStringFixed(int(valueLen)); err != nil {
		return UserVar{}, err
	}

	if c.remaining() > 0 {
		flags, err := c.readUint8()
		if err != nil {
			return UserVar{}, err
		}
		v.Flags = flags
		v.HasFlags = true
	}
	return v, nil
}
