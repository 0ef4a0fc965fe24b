package pgio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextUint16(t *testing.T) {
	buf := []byte{0, 42, 0, 1}
	var n uint16
	buf, n = NextUint16(buf)
	require.Equal(t, uint16(42), n)
	_, n = NextUint16(buf)
	require.Equal(t, uint16(1), n)
}

func TestNextUint32(t *testing.T) {
	buf := []byte{0, 0, 0, 42, 0, 0, 0, 1}
	var n uint32
	buf, n = NextUint32(buf)
	require.Equal(t, uint32(42), n)
	_, n = NextUint32(buf)
	require.Equal(t, uint32(1), n)
}

func TestNextInt64RoundTrip(t *testing.T) {
	buf := AppendInt64(nil, -946684799000000)
	_, n := NextInt64(buf)
	require.Equal(t, int64(-946684799000000), n)
}
