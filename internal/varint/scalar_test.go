package varint_test

import (
	"bytes"
	"testing"

	"github.com/flp-go/flp/internal/varint"
)

func TestScalarRoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := varint.WriteI32(buf, -12345); err != nil {
		t.Fatalf("WriteI32: %v", err)
	}
	if err := varint.WriteU16(buf, 0xBEEF); err != nil {
		t.Fatalf("WriteU16: %v", err)
	}
	if err := varint.WriteF32(buf, 3.5); err != nil {
		t.Fatalf("WriteF32: %v", err)
	}

	got32, err := varint.ReadI32(buf)
	if err != nil || got32 != -12345 {
		t.Fatalf("ReadI32 = %v, %v; want -12345, nil", got32, err)
	}
	got16, err := varint.ReadU16(buf)
	if err != nil || got16 != 0xBEEF {
		t.Fatalf("ReadU16 = %v, %v; want 0xBEEF, nil", got16, err)
	}
	gotF, err := varint.ReadF32(buf)
	if err != nil || gotF != 3.5 {
		t.Fatalf("ReadF32 = %v, %v; want 3.5, nil", gotF, err)
	}
}

func TestU32LittleEndian(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := varint.WriteU32(buf, 0x01020304); err != nil {
		t.Fatalf("WriteU32: %v", err)
	}
	want := []byte{0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("WriteU32 bytes = %x, want %x", buf.Bytes(), want)
	}
}
