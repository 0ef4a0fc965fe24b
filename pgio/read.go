package pgio

import "math"

// NextUint16 reads a big-endian uint16 from the front of buf and returns
// the remainder.
func NextUint16(buf []byte) ([]byte, uint16) {
	n := uint16(buf[0])<<8 | uint16(buf[1])
	return buf[2:], n
}

// NextUint32 reads a big-endian uint32 from the front of buf and returns
// the remainder.
func NextUint32(buf []byte) ([]byte, uint32) {
	n := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	return buf[4:], n
}

// NextUint64 reads a big-endian uint64 from the front of buf and returns
// the remainder.
func NextUint64(buf []byte) ([]byte, uint64) {
	n := uint64(buf[0])<<56 | uint64(buf[1])<<48 | uint64(buf[2])<<40 | uint64(buf[3])<<32 |
		uint64(buf[4])<<24 | uint64(buf[5])<<16 | uint64(buf[6])<<8 | uint64(buf[7])
	return buf[8:], n
}

// NextInt16 reads a big-endian int16 from the front of buf and returns the
// remainder.
func NextInt16(buf []byte) ([]byte, int16) {
	buf, n := NextUint16(buf)
	return buf, int16(n)
}

// NextInt32 reads a big-endian int32 from the front of buf and returns the
// remainder.
func NextInt32(buf []byte) ([]byte, int32) {
	buf, n := NextUint32(buf)
	return buf, int32(n)
}

// NextInt64 reads a big-endian int64 from the front of buf and returns the
// remainder.
func NextInt64(buf []byte) ([]byte, int64) {
	buf, n := NextUint64(buf)
	return buf, int64(n)
}

// NextFloat32 reads an IEEE 754 binary32 from the front of buf and returns
// the remainder.
func NextFloat32(buf []byte) ([]byte, float32) {
	buf, n := NextUint32(buf)
	return buf, math.Float32frombits(n)
}

// NextFloat64 reads an IEEE 754 binary64 from the front of buf and returns
// the remainder.
func NextFloat64(buf []byte) ([]byte, float64) {
	buf, n := NextUint64(buf)
	return buf, math.Float64frombits(n)
}
