package varint

import "unicode/utf16"

// DecodeString decodes raw text bytes using either a single-byte ANSI
// charset (wide=false) or UTF-16LE (wide=true), stripping at most one
// trailing NUL terminator.
func DecodeString(raw []byte, wide bool) string {
	if wide {
		return decodeUTF16LE(raw)
	}
	return decodeANSI(raw)
}

// EncodeString is the inverse of DecodeString. A terminator is appended only
// when hadNUL is true, matching the terminator the text was originally read
// with.
func EncodeString(s string, wide bool, hadNUL bool) []byte {
	if wide {
		return encodeUTF16LE(s, hadNUL)
	}
	return encodeANSI(s, hadNUL)
}

func decodeANSI(raw []byte) string {
	if n := len(raw); n > 0 && raw[n-1] == 0 {
		raw = raw[:n-1]
	}
	return string(raw)
}

func encodeANSI(s string, hadNUL bool) []byte {
	buf := []byte(s)
	if hadNUL {
		buf = append(buf, 0)
	}
	return buf
}

func decodeUTF16LE(raw []byte) string {
	n := len(raw) / 2
	if n > 0 && raw[2*n-2] == 0 && raw[2*n-1] == 0 {
		n--
	}
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		units[i] = uint16(raw[2*i]) | uint16(raw[2*i+1])<<8
	}
	return string(utf16.Decode(units))
}

func encodeUTF16LE(s string, hadNUL bool) []byte {
	units := utf16.Encode([]rune(s))
	if hadNUL {
		units = append(units, 0)
	}
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		buf[2*i] = byte(u)
		buf[2*i+1] = byte(u >> 8)
	}
	return buf
}
