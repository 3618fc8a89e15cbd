package event

import (
	"bytes"

	"github.com/flp-go/flp/internal/varint"
)

// DecodeBool interprets a 1-byte scalar body as a boolean: any non-zero
// byte is true.
func DecodeBool(body []byte) bool {
	return len(body) > 0 && body[0] != 0
}

// EncodeBool encodes a boolean as a 1-byte scalar body.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// DecodeU8/DecodeI8 interpret a 1-byte scalar body.
func DecodeU8(body []byte) uint8 { return body[0] }
func DecodeI8(body []byte) int8  { return int8(body[0]) }

// DecodeU16/DecodeI16 interpret a 2-byte scalar body, little-endian.
func DecodeU16(body []byte) uint16 {
	v, _ := varint.ReadU16(bytes.NewReader(body))
	return v
}

func DecodeI16(body []byte) int16 {
	v, _ := varint.ReadI16(bytes.NewReader(body))
	return v
}

// DecodeU32/DecodeI32 interpret a 4-byte scalar body, little-endian.
func DecodeU32(body []byte) uint32 {
	v, _ := varint.ReadU32(bytes.NewReader(body))
	return v
}

func DecodeI32(body []byte) int32 {
	v, _ := varint.ReadI32(bytes.NewReader(body))
	return v
}

// DecodeF32 interprets a 4-byte scalar body as a little-endian IEEE-754
// single-precision float (used by Controller automation records, not by any
// tagged event body itself).
func DecodeF32(body []byte) float32 {
	v, _ := varint.ReadF32(bytes.NewReader(body))
	return v
}

// EncodeF32 is the inverse of DecodeF32.
func EncodeF32(v float32) []byte {
	buf := new(bytes.Buffer)
	_ = varint.WriteF32(buf, v)
	return buf.Bytes()
}

// EncodeU16/EncodeI16/EncodeU32/EncodeI32 are the inverse of their Decode
// counterparts.
func EncodeU16(v uint16) []byte {
	buf := new(bytes.Buffer)
	_ = varint.WriteU16(buf, v)
	return buf.Bytes()
}

func EncodeI16(v int16) []byte {
	buf := new(bytes.Buffer)
	_ = varint.WriteI16(buf, v)
	return buf.Bytes()
}

func EncodeU32(v uint32) []byte {
	buf := new(bytes.Buffer)
	_ = varint.WriteU32(buf, v)
	return buf.Bytes()
}

func EncodeI32(v int32) []byte {
	buf := new(bytes.Buffer)
	_ = varint.WriteI32(buf, v)
	return buf.Bytes()
}
