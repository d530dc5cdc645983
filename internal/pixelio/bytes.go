package pixelio

import "encoding/binary"

// PutUint16 writes v as a big-endian uint16 at buf[0:2].
func PutUint16(buf []byte, v uint16) {
	binary.BigEndian.PutUint16(buf, v)
}

// PutUint32 writes v as a big-endian uint32 at buf[0:4].
func PutUint32(buf []byte, v uint32) {
	binary.BigEndian.PutUint32(buf, v)
}

// PutUint24 writes the low 24 bits of v as big-endian at buf[0:3].
func PutUint24(buf []byte, v uint32) {
	buf[0] = byte(v >> 16)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v)
}

// GetUint16 reads a big-endian uint16 from buf[0:2].
func GetUint16(buf []byte) uint16 {
	return binary.BigEndian.Uint16(buf)
}

// GetUint32 reads a big-endian uint32 from buf[0:4].
func GetUint32(buf []byte) uint32 {
	return binary.BigEndian.Uint32(buf)
}

// GetUint24 reads a 24-bit big-endian value from buf[0:3] into the low
// 24 bits of a uint32.
func GetUint24(buf []byte) uint32 {
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2])
}
