package binlog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIntvarRoundTrip(t *testing.T) {
	v := Intvar{Subtype: IntvarInsertID, Value: 123456789}

	got, err := decodeIntvar(encodeIntvar(v))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestIntvarSubtypeString(t *testing.T) {
	cases := map[IntvarSubtype]string{
		IntvarLastInsertID: "LAST_INSERT_ID",
		IntvarInsertID:     "INSERT_ID",
		IntvarSubtype(99):  "UNKNOWN",
	}
	for subtype, want := range cases {
		if got := subtype.String(); got != want {
			t.Errorf("IntvarSubtype(%d).String() = %q, want %q", subtype, got, want)
		}
	}
}
