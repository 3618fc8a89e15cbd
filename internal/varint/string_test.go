package varint_test

import (
	"testing"

	"github.com/flp-go/flp/internal/varint"
)

func TestDecodeStringANSI(t *testing.T) {
	raw := []byte("Kick\x00")
	if got := varint.DecodeString(raw, false); got != "Kick" {
		t.Fatalf("DecodeString(ANSI) = %q, want %q", got, "Kick")
	}
}

func TestDecodeStringUTF16(t *testing.T) {
	// "Hi" + NUL terminator, little-endian code units.
	raw := []byte{'H', 0, 'i', 0, 0, 0}
	if got := varint.DecodeString(raw, true); got != "Hi" {
		t.Fatalf("DecodeString(UTF16) = %q, want %q", got, "Hi")
	}
}

func TestEncodeStringRoundTrip(t *testing.T) {
	for _, wide := range []bool{false, true} {
		for _, hadNUL := range []bool{false, true} {
			want := "Snare 2"
			raw := varint.EncodeString(want, wide, hadNUL)
			got := varint.DecodeString(raw, wide)
			if got != want {
				t.Fatalf("round-trip(wide=%v,nul=%v) = %q, want %q", wide, hadNUL, got, want)
			}
		}
	}
}
