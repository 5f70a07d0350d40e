package binlog

import (
	"testing"

	"github.com/localhots/binlogcodec/mysql"
)

func buildHeader(whenSec uint32, typ EventType, serverID, dataWritten, logPos uint32, flags uint16) []byte {
	buf := make([]byte, minCommonHeaderLen)
	mysql.EncodeUint32(buf[0:], whenSec)
	buf[4] = byte(typ)
	mysql.EncodeUint32(buf[5:], serverID)
	mysql.EncodeUint32(buf[9:], dataWritten)
	mysql.EncodeUint32(buf[13:], logPos)
	mysql.EncodeUint16(buf[17:], flags)
	return buf
}

func TestDecodeHeader(t *testing.T) {
	buf := buildHeader(100, EventTypeXID, 7, 27, 200, flagInUse)
	h, err := decodeHeader(buf, minCommonHeaderLen, true)
	if err != nil {
		t.Fatal(err)
	}
	if h.WhenSec != 100 || h.Type != EventTypeXID || h.ServerID != 7 ||
		h.DataWritten != 27 || h.LogPos != 200 {
		t.Fatalf("unexpected header: %+v", h)
	}
	if !h.InUse() {
		t.Fatal("InUse() = false, want true")
	}
}

func TestDecodeHeaderTooShort(t *testing.T) {
	_, err := decodeHeader([]byte{1, 2, 3}, minCommonHeaderLen, false)
	if _, ok := err.(ErrHeaderTooShort); !ok {
		t.Fatalf("expected ErrHeaderTooShort, got %T (%v)", err, err)
	}
}

func TestDecodeHeaderLengthInconsistent(t *testing.T) {
	buf := buildHeader(1, EventTypeXID, 1, 10, 1, 0) // data_written too small for checksum
	_, err := decodeHeader(buf, minCommonHeaderLen, true)
	if _, ok := err.(ErrLengthInconsistent); !ok {
		t.Fatalf("expected ErrLengthInconsistent, got %T (%v)", err, err)
	}
}
