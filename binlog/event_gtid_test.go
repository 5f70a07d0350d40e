package binlog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/localhots/binlogcodec/mysql"
)

func buildGTIDBody(seqNo int64, flag byte, sid [gtidSIDLen]byte, gno uint64, extra []byte) []byte {
	body := make([]byte, 0, 25+len(extra))
	seqBuf := make([]byte, 8)
	mysql.EncodeInt64(seqBuf, seqNo)
	body = append(body, seqBuf...)
	body = append(body, flag)
	body = append(body, sid[:]...)
	gnoBuf := make([]byte, 8)
	mysql.EncodeUint64(gnoBuf, gno)
	body = append(body, gnoBuf...)
	body = append(body, extra...)
	return body
}

func TestDecodeGTID(t *testing.T) {
	var sid [gtidSIDLen]byte
	for i := range sid {
		sid[i] = byte(i)
	}
	body := buildGTIDBody(-1, 1, sid, 42, nil)

	g, err := decodeGTID(body)
	if err != nil {
		t.Fatal(err)
	}
	if g.CommitFlag != 1 || g.GNO != 42 || g.SID != sid {
		t.Fatalf("unexpected GTID: %+v", g)
	}
	if len(g.Extra) != 0 {
		t.Fatalf("Extra = %v, want empty", g.Extra)
	}
	if got := g.String(); got == "" {
		t.Error("String() should not be empty")
	}
}

func TestDecodeGTIDWithTrailingLogicalTimestamps(t *testing.T) {
	var sid [gtidSIDLen]byte
	extra := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	body := buildGTIDBody(0, 0, sid, 1, extra)

	g, err := decodeGTID(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Extra) != len(extra) {
		t.Fatalf("Extra = %v, want %v", g.Extra, extra)
	}
}

func TestGTIDRoundTrip(t *testing.T) {
	var sid [gtidSIDLen]byte
	for i := range sid {
		sid[i] = byte(i + 1)
	}
	g := GTID{
		CommitSeqNo: -1,
		CommitFlag:  1,
		SID:         sid,
		GNO:         98765,
		Extra:       []byte{9, 9, 9},
	}

	got, err := decodeGTID(encodeGTID(g))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(g, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodePreviousGTIDs(t *testing.T) {
	raw := []byte{1, 2, 3, 4, 5}
	p, err := decodePreviousGTIDs(raw)
	if err != nil {
		t.Fatal(err)
	}
	if string(p.Encoded) != string(raw) {
		t.Fatalf("Encoded = %v, want %v", p.Encoded, raw)
	}
}
