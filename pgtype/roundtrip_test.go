package pgtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeValueStripsLengthPrefix(t *testing.T) {
	got, err := EncodeValue(Int(42), New(23).WithTypesend(SendInt4))
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0x2A}, got)
}

func TestEncodeValueNullReturnsNilPayload(t *testing.T) {
	got, err := EncodeValue(Null(), New(23).WithTypesend(SendInt4))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDecodeValueRoundTripsWithEncodeValue(t *testing.T) {
	ti := New(23).WithTypesend(SendInt4).WithTypereceive(ReceiveInt4)
	framed, err := Encode(Int(7), ti)
	require.NoError(t, err)

	got, err := DecodeValue(framed, ti)
	require.NoError(t, err)
	require.EqualValues(t, 7, got.Int())
}

func TestDecodeValueNullFrame(t *testing.T) {
	got, err := DecodeValue([]byte{0xFF, 0xFF, 0xFF, 0xFF}, New(23).WithTypereceive(ReceiveInt4))
	require.NoError(t, err)
	require.True(t, got.IsNull())
}
