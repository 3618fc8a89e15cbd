// Package varint provides the little-endian scalar codec and the
// LEB128-style variable-length size prefix used throughout the FLP event
// stream.
package varint

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// ReadU8 reads an unsigned 8-bit integer.
func ReadU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.Wrap(err, "varint.ReadU8")
	}
	return buf[0], nil
}

// ReadI8 reads a signed 8-bit integer.
func ReadI8(r io.Reader) (int8, error) {
	v, err := ReadU8(r)
	return int8(v), err
}

// ReadU16 reads a little-endian unsigned 16-bit integer.
func ReadU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.Wrap(err, "varint.ReadU16")
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// ReadI16 reads a little-endian signed 16-bit integer.
func ReadI16(r io.Reader) (int16, error) {
	v, err := ReadU16(r)
	return int16(v), err
}

// ReadU32 reads a little-endian unsigned 32-bit integer.
func ReadU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.Wrap(err, "varint.ReadU32")
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadI32 reads a little-endian signed 32-bit integer.
func ReadI32(r io.Reader) (int32, error) {
	v, err := ReadU32(r)
	return int32(v), err
}

// ReadF32 reads a little-endian IEEE-754 single-precision float.
func ReadF32(r io.Reader) (float32, error) {
	v, err := ReadU32(r)
	return math.Float32frombits(v), err
}

// WriteU8 writes an unsigned 8-bit integer.
func WriteU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return errors.Wrap(err, "varint.WriteU8")
}

// WriteI8 writes a signed 8-bit integer.
func WriteI8(w io.Writer, v int8) error {
	return WriteU8(w, uint8(v))
}

// WriteU16 writes a little-endian unsigned 16-bit integer.
func WriteU16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return errors.Wrap(err, "varint.WriteU16")
}

// WriteI16 writes a little-endian signed 16-bit integer.
func WriteI16(w io.Writer, v int16) error {
	return WriteU16(w, uint16(v))
}

// WriteU32 writes a little-endian unsigned 32-bit integer.
func WriteU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return errors.Wrap(err, "varint.WriteU32")
}

// WriteI32 writes a little-endian signed 32-bit integer.
func WriteI32(w io.Writer, v int32) error {
	return WriteU32(w, uint32(v))
}

// WriteF32 writes a little-endian IEEE-754 single-precision float.
func WriteF32(w io.Writer, v float32) error {
	return WriteU32(w, math.Float32bits(v))
}
