package binlog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/localhots/binlogcodec/mysql"
)

// buildEvent assembles a complete event: header + body, with a trailing
// CRC32 checksum appended when withChecksum is true.
func buildEvent(typ EventType, serverID uint32, body []byte, withChecksum bool) []byte {
	headerLen := minCommonHeaderLen
	total := headerLen + len(body)
	if withChecksum {
		total += checksumLen
	}
	buf := make([]byte, headerLen, total)
	mysql.EncodeUint32(buf[0:], 1) // when_sec
	buf[4] = byte(typ)
	mysql.EncodeUint32(buf[5:], serverID)
	mysql.EncodeUint32(buf[9:], uint32(total))
	mysql.EncodeUint32(buf[13:], uint32(total))
	mysql.EncodeUint16(buf[17:], 0)
	buf = append(buf, body...)
	if withChecksum {
		buf = appendChecksum(buf)
	}
	return buf
}

func fdeBody(serverVersion string, postHeaderLen []byte, alg ChecksumAlgorithm) []byte {
	return buildFormatDescriptionBody(serverVersion, postHeaderLen, alg, nil)
}

// TestSessionFDEAccept covers spec scenario S1: a stream's first event is a
// FormatDescription and the session commits it to its registry.
func TestSessionFDEAccept(t *testing.T) {
	table := make([]byte, 38)
	for i := range table {
		table[i] = 19
	}
	body := fdeBody("5.6.10-log", table, ChecksumAlgorithmCRC32)
	event := buildEvent(EventTypeFormatDescription, 103, body, false)
	// The FDE's own checksum span is the last 4 of the reserved tail bytes
	// already embedded in body; recompute it over the true header+body span.
	event = fixFDEChecksum(event)

	s := NewSession()
	evt, err := s.Decode(event)
	if err != nil {
		t.Fatal(err)
	}
	fd, ok := evt.Body.(FormatDescription)
	if !ok {
		t.Fatalf("Body is %T, want FormatDescription", evt.Body)
	}
	if fd.BinlogVersion != 4 {
		t.Errorf("BinlogVersion = %d, want 4", fd.BinlogVersion)
	}
	if fd.CommonHeaderLen != 19 {
		t.Errorf("CommonHeaderLen = %d, want 19", fd.CommonHeaderLen)
	}
	if fd.ChecksumAlgorithm != ChecksumAlgorithmCRC32 {
		t.Errorf("ChecksumAlgorithm = %s, want CRC32", fd.ChecksumAlgorithm)
	}
	if s.State() != Streaming {
		t.Errorf("State() = %s, want Streaming", s.State())
	}
}

// fixFDEChecksum recomputes the trailing 4-byte CRC32 of an FDE event whose
// body already reserves 4 placeholder bytes for it at the tail.
func fixFDEChecksum(event []byte) []byte {
	withoutChecksum := event[:len(event)-checksumLen]
	return appendChecksum(withoutChecksum)
}

func newStreamingSession(t *testing.T) *Session {
	t.Helper()
	table := make([]byte, 38)
	for i := range table {
		table[i] = 19
	}
	body := fdeBody("5.6.10-log", table, ChecksumAlgorithmCRC32)
	event := buildEvent(EventTypeFormatDescription, 1, body, false)
	event = fixFDEChecksum(event)

	s := NewSession()
	if _, err := s.Decode(event); err != nil {
		t.Fatalf("setup FDE decode failed: %v", err)
	}
	return s
}

// TestSessionQueryDecode covers spec scenario S2.
func TestSessionQueryDecode(t *testing.T) {
	s := newStreamingSession(t)

	body := encodeQuery(Query{ThreadID: 42, ExecutionTime: 0, ErrorCode: 0, Database: "db1", Query: "SELECT 1"})
	event := buildEvent(EventTypeQuery, 1, body, true)

	evt, err := s.Decode(event)
	if err != nil {
		t.Fatal(err)
	}
	q, ok := evt.Body.(Query)
	if !ok {
		t.Fatalf("Body is %T, want Query", evt.Body)
	}
	if q.ThreadID != 42 || q.Database != "db1" || q.Query != "SELECT 1" {
		t.Fatalf("unexpected Query: %+v", q)
	}
	if len(q.StatusVars) != 0 {
		t.Fatalf("StatusVars = %v, want empty", q.StatusVars)
	}
}

// TestStatusVarsOrder covers spec scenario S3.
func TestStatusVarsOrder(t *testing.T) {
	data := []byte{
		0, 0xAA, 0x00, 0x00, 0x00, // FLAGS2
		1, 0xBB, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // SQL_MODE
		6, 3, 'c', 'a', 't', // CATALOG_NZ
	}
	vars, err := decodeStatusVars(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(vars) != 3 {
		t.Fatalf("len(vars) = %d, want 3", len(vars))
	}
	if vars[0].Code != StatusVarFlags2 || vars[0].Value.(uint32) != 0xAA {
		t.Errorf("vars[0] = %+v", vars[0])
	}
	if vars[1].Code != StatusVarSQLMode || vars[1].Value.(uint64) != 0xBB {
		t.Errorf("vars[1] = %+v", vars[1])
	}
	if vars[2].Code != StatusVarCatalogNZ || string(vars[2].Value.([]byte)) != "cat" {
		t.Errorf("vars[2] = %+v", vars[2])
	}
}

// TestSessionBadChecksum covers spec scenario S4.
func TestSessionBadChecksum(t *testing.T) {
	s := newStreamingSession(t)

	body := encodeRotate(Rotate{Position: 120, NextLog: "binlog.000002"})
	event := buildEvent(EventTypeRotate, 1, body, true)
	event[len(event)-checksumLen-1] ^= 0x01 // flip a body bit, not a checksum byte

	_, err := s.Decode(event)
	if _, ok := err.(ErrChecksumMismatch); !ok {
		t.Fatalf("expected ErrChecksumMismatch, got %T (%v)", err, err)
	}
	if s.State() != Streaming {
		t.Errorf("State() = %s, want Streaming (non-header errors don't poison)", s.State())
	}
}

// TestSessionRotate covers spec scenario S5.
func TestSessionRotate(t *testing.T) {
	s := newStreamingSession(t)

	body := encodeRotate(Rotate{Position: 120, NextLog: "binlog.000002"})
	event := buildEvent(EventTypeRotate, 1, body, true)

	evt, err := s.Decode(event)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := evt.Body.(Rotate)
	if !ok {
		t.Fatalf("Body is %T, want Rotate", evt.Body)
	}
	if r.Position != 120 || r.NextLog != "binlog.000002" {
		t.Fatalf("unexpected Rotate: %+v", r)
	}
}

// TestSessionTruncation covers spec scenario S6: the header parses fine but
// the body boundary runs past the end of the supplied buffer.
func TestSessionTruncation(t *testing.T) {
	s := newStreamingSession(t)

	body := encodeQuery(Query{ThreadID: 42, Database: "db1", Query: "SELECT 1"})
	event := buildEvent(EventTypeQuery, 1, body, true)
	truncated := event[:len(event)-1]

	_, err := s.Decode(truncated)
	if _, ok := err.(ErrTruncated); !ok {
		t.Fatalf("expected ErrTruncated, got %T (%v)", err, err)
	}
	if s.State() != Streaming {
		t.Errorf("State() = %s, want Streaming (body-level truncation doesn't poison)", s.State())
	}
}

func TestSessionProtocolErrorBeforeFDE(t *testing.T) {
	s := NewSession()
	body := encodeXID(XID{XID: 1})
	event := buildEvent(EventTypeXID, 1, body, false)

	_, err := s.Decode(event)
	if _, ok := err.(ErrProtocolError); !ok {
		t.Fatalf("expected ErrProtocolError, got %T (%v)", err, err)
	}
}

func TestSessionXIDRoundTrip(t *testing.T) {
	s := newStreamingSession(t)
	want := XID{XID: 99}
	event := buildEvent(EventTypeXID, 1, encodeXID(want), true)

	evt, err := s.Decode(event)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := evt.Body.(XID)
	if !ok {
		t.Fatalf("Body is %T, want XID", evt.Body)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionHeaderLevelTruncationPoisons(t *testing.T) {
	s := newStreamingSession(t)
	_, err := s.Decode([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected error")
	}
	if s.State() != Poisoned {
		t.Errorf("State() = %s, want Poisoned", s.State())
	}
	if _, err := s.Decode([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected decode to keep failing once poisoned")
	}
}
