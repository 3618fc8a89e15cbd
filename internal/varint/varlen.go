package varint

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// maxVarLenBytes bounds ReadVarLen the way a LEB128-style size prefix must be
// bounded: five 7-bit groups is enough for any uint32, and a sixth
// continuation bit can only mean a malformed stream.
const maxVarLenBytes = 5

// ErrVarLenTooLong is returned by ReadVarLen when five bytes in a row carry
// the continuation bit, i.e. the prefix would run past five bytes.
var ErrVarLenTooLong = errors.New("varint: variable-length size prefix exceeds 5 bytes")

// ReadVarLen reads a 7-bit-per-byte little-endian variable-length integer,
// low bits first, continuation signalled by the high bit of each byte.
func ReadVarLen(r io.Reader) (uint32, error) {
	br := bitio.NewReader(r)
	var n uint32
	for i := 0; ; i++ {
		if i == maxVarLenBytes {
			return 0, ErrVarLenTooLong
		}
		b, err := br.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "varint.ReadVarLen")
		}
		n |= uint32(b&0x7F) << (7 * uint(i))
		if b&0x80 == 0 {
			break
		}
	}
	return n, nil
}

// WriteVarLen writes n using the minimum number of 7-bit groups.
func WriteVarLen(w io.Writer, n uint32) error {
	bw := bitio.NewWriter(w)
	for {
		b := byte(n & 0x7F)
		n >>= 7
		if n != 0 {
			b |= 0x80
		}
		if err := bw.WriteByte(b); err != nil {
			return errors.Wrap(err, "varint.WriteVarLen")
		}
		if n == 0 {
			break
		}
	}
	return errors.Wrap(bw.Close(), "varint.WriteVarLen")
}

// VarLenSize returns the number of bytes WriteVarLen would emit for n.
func VarLenSize(n uint32) int {
	size := 1
	for n >>= 7; n != 0; n >>= 7 {
		size++
	}
	return size
}
