package event

// Color is a 4-byte RGBA color body. A is preserved on write even though
// most readers ignore it.
type Color struct {
	R, G, B, A byte
}

// DecodeColor parses a 4-byte color body.
func DecodeColor(body []byte) Color {
	var c Color
	c.R, c.G, c.B, c.A = body[0], body[1], body[2], body[3]
	return c
}

// EncodeColor is the inverse of DecodeColor.
func EncodeColor(c Color) []byte {
	return []byte{c.R, c.G, c.B, c.A}
}
