package binlog

import (
	"testing"

	"github.com/localhots/binlogcodec/mysql"
)

func buildUserVarBody(name string, isNull bool, valueType UserVarValueType, charset uint32, value []byte, flags *byte) []byte {
	body := make([]byte, 0, 32)
	nameLenBuf := make([]byte, 4)
	mysql.EncodeUint32(nameLenBuf, uint32(len(name)))
	body = append(body, nameLenBuf...)
	body = append(body, []byte(name)...)
	if isNull {
		return append(body, 1)
	}
	body = append(body, 0)
	body = append(body, byte(valueType))
	charsetBuf := make([]byte, 4)
	mysql.EncodeUint32(charsetBuf, charset)
	body = append(body, charsetBuf...)
	valueLenBuf := make([]byte, 4)
	mysql.EncodeUint32(valueLenBuf, uint32(len(value)))
	body = append(body, valueLenBuf...)
	body = append(body, value...)
	if flags != nil {
		body = append(body, *flags)
	}
	return body
}

func TestDecodeUserVarNull(t *testing.T) {
	body := buildUserVarBody("@myvar", true, 0, 0, nil, nil)
	v, err := decodeUserVar(body)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsNull || v.Name != "@myvar" {
		t.Fatalf("unexpected UserVar: %+v", v)
	}
}

func TestDecodeUserVarWithFlags(t *testing.T) {
	flags := byte(0x01)
	body := buildUserVarBody("@x", false, UserVarInt, 33, []byte{1, 0, 0, 0, 0, 0, 0, 0}, &flags)
	v, err := decodeUserVar(body)
	if err != nil {
		t.Fatal(err)
	}
	if v.IsNull || v.ValueType != UserVarInt || v.Charset != 33 || !v.HasFlags || v.Flags != 0x01 {
		t.Fatalf("unexpected UserVar: %+v", v)
	}
}

func TestDecodeUserVarWithoutFlags(t *testing.T) {
	body := buildUserVarBody("@x", false, UserVarString, 33, []byte("hello"), nil)
	v, err := decodeUserVar(body)
	if err != nil {
		t.Fatal(err)
	}
	if v.HasFlags {
		t.Fatal("HasFlags should be false when the writer omitted the trailing byte")
	}
	if string(v.Value) != "hello" {
		t.Fatalf("Value = %q, want hello", v.Value)
	}
}

func TestUserVarValueTypeString(t *testing.T) {
	if UserVarDecimal.String() != "DECIMAL" {
		t.Errorf("String() = %s, want DECIMAL", UserVarDecimal.String())
	}
	if UserVarValueType(99).String() != "UNKNOWN" {
		t.Errorf("String() = %s, want UNKNOWN", UserVarValueType(99).String())
	}
}
