package event

import "github.com/flp-go/flp/internal/varint"

// DecodeText decodes a Text-schema body using the project's configured
// string encoding, reporting whether the body carried a trailing NUL
// terminator so EncodeText can restore it unchanged.
func DecodeText(body []byte, wide bool) (s string, hadNUL bool) {
	if wide {
		hadNUL = len(body) >= 2 && body[len(body)-2] == 0 && body[len(body)-1] == 0
	} else {
		hadNUL = len(body) >= 1 && body[len(body)-1] == 0
	}
	return varint.DecodeString(body, wide), hadNUL
}

// EncodeText is the inverse of DecodeText.
func EncodeText(s string, wide bool, hadNUL bool) []byte {
	return varint.EncodeString(s, wide, hadNUL)
}
