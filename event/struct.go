package event

// InsertFlags is the Struct-schema body backing TagInsertFlags: two 4-byte
// reserved fields bracketing a 4-byte flags bitfield, each independently
// optional -- a short body simply omits its trailing field(s), and encoding
// must reproduce exactly the fields that were present on read.
type InsertFlags struct {
	Reserved1    [4]byte
	HasReserved1 bool
	Flags        uint32
	HasFlags     bool
	Reserved2    [4]byte
	HasReserved2 bool
}

// DecodeInsertFlags parses an InsertFlags struct body, tolerating a body
// truncated after any of its three fields.
func DecodeInsertFlags(body []byte) InsertFlags {
	var f InsertFlags
	if len(body) >= 4 {
		copy(f.Reserved1[:], body[0:4])
		f.HasReserved1 = true
	}
	if len(body) >= 8 {
		f.Flags = DecodeU32(body[4:8])
		f.HasFlags = true
	}
	if len(body) >= 12 {
		copy(f.Reserved2[:], body[8:12])
		f.HasReserved2 = true
	}
	return f
}

// EncodeInsertFlags is the inverse of DecodeInsertFlags: it emits only the
// fields that were marked present, in order, stopping at the first absent
// one -- matching the construct library's Optional() semantics the body was
// originally parsed with.
func EncodeInsertFlags(f InsertFlags) []byte {
	var body []byte
	if !f.HasReserved1 {
		return body
	}
	body = append(body, f.Reserved1[:]...)
	if !f.HasFlags {
		return body
	}
	body = append(body, EncodeU32(f.Flags)...)
	if !f.HasReserved2 {
		return body
	}
	body = append(body, f.Reserved2[:]...)
	return body
}
