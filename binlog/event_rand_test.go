package binlog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRandRoundTrip(t *testing.T) {
	r := Rand{Seed1: 0xDEADBEEF, Seed2: 0xC0FFEE}

	got, err := decodeRand(encodeRand(r))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(r, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}
