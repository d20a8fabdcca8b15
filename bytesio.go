package qoa

import "encoding/binary"

// readU64 reads 8 big-endian bytes from b at *pos and advances *pos by
// 8. Callers are responsible for checking that b has enough remaining
// length before calling; the frame and stream layers do that
// validation, not this primitive.
func readU64(b []byte, pos *int) uint64 {
	v := binary.BigEndian.Uint64(b[*pos:])
	*pos += 8
	return v
}

// writeU64 writes v as 8 big-endian bytes into b at *pos and advances
// *pos by 8.
func writeU64(v uint64, b []byte, pos *int) {
	binary.BigEndian.PutUint64(b[*pos:], v)
	*pos += 8
}
