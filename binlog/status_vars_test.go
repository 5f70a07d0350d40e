package binlog

import (
	"testing"

	"github.com/localhots/binlogcodec/mysql"
)

func TestDecodeStatusVarCatalog(t *testing.T) {
	data := []byte{2, 3, 'c', 'a', 't', 0}
	vars, err := decodeStatusVars(data)
	if err != nil {
		t.Fatal(err)
	}
	v, ok := vars[0].Value.([]byte)
	if !ok || string(v) != "cat" {
		t.Fatalf("Catalog = %q, want %q", vars[0].Value, "cat")
	}
}

func TestDecodeStatusVarAutoIncrement(t *testing.T) {
	data := []byte{3, 0x02, 0x00, 0x01, 0x00} // code 3, increment=2, offset=1
	vars, err := decodeStatusVars(data)
	if err != nil {
		t.Fatal(err)
	}
	inc, ok := vars[0].Value.(AutoIncrement)
	if !ok || inc.Increment != 2 || inc.Offset != 1 {
		t.Fatalf("unexpected AutoIncrement: %+v", vars[0].Value)
	}
}

func TestDecodeStatusVarCharset(t *testing.T) {
	data := []byte{4, 0x21, 0x00, 0x21, 0x00, 0x21, 0x00} // code 4, 33/33/33
	vars, err := decodeStatusVars(data)
	if err != nil {
		t.Fatal(err)
	}
	cs, ok := vars[0].Value.(Charset)
	if !ok || cs.Client != 33 || cs.Connection != 33 || cs.Server != 33 {
		t.Fatalf("unexpected Charset: %+v", vars[0].Value)
	}
}

func TestDecodeStatusVarInvoker(t *testing.T) {
	data := []byte{11, 4, 'r', 'o', 'o', 't', 9, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't'}
	vars, err := decodeStatusVars(data)
	if err != nil {
		t.Fatal(err)
	}
	inv, ok := vars[0].Value.(Invoker)
	if !ok || string(inv.User) != "root" || string(inv.Host) != "localhost" {
		t.Fatalf("unexpected Invoker: %+v", vars[0].Value)
	}
}

func TestDecodeStatusVarMicrosecondsAndCommitTS(t *testing.T) {
	data := []byte{13, 0x01, 0x00, 0x00} // Microseconds = 1, u24
	commitTSBuf := make([]byte, 8)
	mysql.EncodeUint64(commitTSBuf, 123456789)
	data = append(data, 14) // CommitTS code
	data = append(data, commitTSBuf...)

	vars, err := decodeStatusVars(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(vars) != 2 {
		t.Fatalf("len(vars) = %d, want 2", len(vars))
	}
	if vars[0].Value.(uint32) != 1 {
		t.Errorf("Microseconds = %v, want 1", vars[0].Value)
	}
	if vars[1].Value.(uint64) != 123456789 {
		t.Errorf("CommitTS = %v, want 123456789", vars[1].Value)
	}
}

func TestDecodeUpdatedDBNamesExact(t *testing.T) {
	data := []byte{12, 2, 'a', 0, 'b', 0}
	vars, err := decodeStatusVars(data)
	if err != nil {
		t.Fatal(err)
	}
	names, ok := vars[0].Value.([]string)
	if !ok || len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected UpdatedDBNames: %+v", vars[0].Value)
	}
}

func TestDecodeUpdatedDBNamesSaturated(t *testing.T) {
	data := []byte{12, updatedDBNamesSaturated, 'a', 0, 'b', 0, 'c', 0}
	vars, err := decodeStatusVars(data)
	if err != nil {
		t.Fatal(err)
	}
	names, ok := vars[0].Value.([]string)
	if !ok || len(names) != 3 {
		t.Fatalf("unexpected saturated UpdatedDBNames: %+v", vars[0].Value)
	}
}

func TestDecodeStatusVarsUnknownCodeStopsAndKeepsPrefix(t *testing.T) {
	data := []byte{
		0, 0xAA, 0x00, 0x00, 0x00, // Flags2, parses fine
		200, // unknown code
	}
	_, err := decodeStatusVars(data)
	uk, ok := err.(ErrUnknownStatusVar)
	if !ok {
		t.Fatalf("expected ErrUnknownStatusVar, got %T (%v)", err, err)
	}
	if uk.Code != 200 {
		t.Errorf("Code = %d, want 200", uk.Code)
	}
	if len(uk.Parsed) != 1 || uk.Parsed[0].Code != StatusVarFlags2 {
		t.Fatalf("Parsed = %+v, want the Flags2 item preserved", uk.Parsed)
	}
}

func TestStatusVarCodeString(t *testing.T) {
	if StatusVarCommitTS.String() != "CommitTS" {
		t.Errorf("String() = %s, want CommitTS", StatusVarCommitTS.String())
	}
	if StatusVarCode(250).String() != "Unknown" {
		t.Errorf("String() = %s, want Unknown", StatusVarCode(250).String())
	}
}
