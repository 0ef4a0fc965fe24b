package pgio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendInt32(t *testing.T) {
	buf := AppendInt32(nil, 42)
	require.Equal(t, []byte{0, 0, 0, 42}, buf)

	buf = AppendInt32(buf, -1)
	require.Equal(t, []byte{0, 0, 0, 42, 255, 255, 255, 255}, buf)
}

func TestAppendInt64(t *testing.T) {
	buf := AppendInt64(nil, -1)
	require.Equal(t, []byte{255, 255, 255, 255, 255, 255, 255, 255}, buf)
}

func TestAppendFloat32(t *testing.T) {
	buf := AppendFloat32(nil, 1.5)
	_, f := NextFloat32(buf)
	require.Equal(t, float32(1.5), f)
}

func TestAppendFloat64(t *testing.T) {
	buf := AppendFloat64(nil, 1.5)
	_, f := NextFloat64(buf)
	require.Equal(t, 1.5, f)
}

func TestSetInt32(t *testing.T) {
	buf := []byte{0, 0, 0, 0, 9, 9}
	SetInt32(buf, 7)
	require.Equal(t, []byte{0, 0, 0, 7, 9, 9}, buf)
}

func TestAppendLengthPrefixed(t *testing.T) {
	buf := AppendLengthPrefixed(nil, []byte{1, 2, 3})
	require.Equal(t, []byte{0, 0, 0, 3, 1, 2, 3}, buf)
}

func TestAppendNull(t *testing.T) {
	buf := AppendNull(nil)
	require.Equal(t, []byte{255, 255, 255, 255}, buf)
}
