// Package pgio is a low-level toolkit for the PostgreSQL binary wire
// format: big-endian fixed-width integers and floats, and the signed
// 32-bit length-prefix framing used throughout Bind and DataRow messages.
package pgio

import "math"

// AppendUint16 appends n to buf in big-endian order.
func AppendUint16(buf []byte, n uint16) []byte {
	return append(buf, byte(n>>8), byte(n))
}

// AppendUint32 appends n to buf in big-endian order.
func AppendUint32(buf []byte, n uint32) []byte {
	return append(buf, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
}

// AppendUint64 appends n to buf in big-endian order.
func AppendUint64(buf []byte, n uint64) []byte {
	return append(buf,
		byte(n>>56), byte(n>>48), byte(n>>40), byte(n>>32),
		byte(n>>24), byte(n>>16), byte(n>>8), byte(n),
	)
}

// AppendInt16 appends n to buf in big-endian order.
func AppendInt16(buf []byte, n int16) []byte {
	return AppendUint16(buf, uint16(n))
}

// AppendInt32 appends n to buf in big-endian order.
func AppendInt32(buf []byte, n int32) []byte {
	return AppendUint32(buf, uint32(n))
}

// AppendInt64 appends n to buf in big-endian order.
func AppendInt64(buf []byte, n int64) []byte {
	return AppendUint64(buf, uint64(n))
}

// AppendFloat32 appends the IEEE 754 binary32 bit pattern of f to buf.
func AppendFloat32(buf []byte, f float32) []byte {
	return AppendUint32(buf, math.Float32bits(f))
}

// AppendFloat64 appends the IEEE 754 binary64 bit pattern of f to buf.
func AppendFloat64(buf []byte, f float64) []byte {
	return AppendUint64(buf, math.Float64bits(f))
}

// SetInt32 overwrites the four bytes at buf[0:4] with n, big-endian. It is
// used to backfill a fixed-width field already written (such as the array
// header's flags word) once its value is known, without a second append
// pass.
func SetInt32(buf []byte, n int32) {
	buf[0] = byte(n >> 24)
	buf[1] = byte(n >> 16)
	buf[2] = byte(n >> 8)
	buf[3] = byte(n)
}

// AppendLengthPrefixed appends a big-endian i32 length prefix followed by
// payload to buf. This is the framing every successful Encode call produces
// per the wire protocol's Bind/DataRow layout.
func AppendLengthPrefixed(buf []byte, payload []byte) []byte {
	buf = AppendInt32(buf, int32(len(payload)))
	return append(buf, payload...)
}

// AppendNull appends the four-byte length prefix (-1) denoting SQL NULL,
// with no payload.
func AppendNull(buf []byte) []byte {
	return AppendInt32(buf, -1)
}
