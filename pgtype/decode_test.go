package pgtype

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func appendLen(payload []byte) []byte {
	out := []byte{byte(len(payload) >> 24), byte(len(payload) >> 16), byte(len(payload) >> 8), byte(len(payload))}
	return append(out, payload...)
}

func TestDecodeBoolScenario(t *testing.T) {
	ti := New(16).WithTypereceive(ReceiveBool)
	got, err := Decode([]byte{1}, ti)
	require.NoError(t, err)
	require.Equal(t, DynamicBool, got.Kind())
	require.True(t, got.Bool())
}

func TestDecodeInt4Scenario(t *testing.T) {
	ti := New(23).WithTypereceive(ReceiveInt4)
	payload, _ := readInt32Payload(Encode(Int(42), New(23).WithTypesend(SendInt4)))
	got, err := Decode(payload, ti)
	require.NoError(t, err)
	require.EqualValues(t, 42, got.Int())
}

func readInt32Payload(b []byte, err error) ([]byte, error) {
	return b[4:], err
}

func TestDecodeInvalidFrames(t *testing.T) {
	_, err := Decode([]byte{1, 2}, New(1).WithTypereceive(ReceiveBool))
	require.EqualError(t, err, "invalid bool")

	_, err = Decode([]byte{1, 2, 3}, New(1).WithTypereceive(ReceiveInt4))
	require.EqualError(t, err, "invalid int4")
}

func TestDecodeDateScenario(t *testing.T) {
	ti := New(1082).WithTypereceive(ReceiveDate)
	got, err := Decode([]byte{0xFF, 0xFF, 0xD5, 0x33}, ti)
	require.NoError(t, err)
	arr := got.Array()
	require.Equal(t, int64(1970), arr[0].Int())
	require.Equal(t, int64(1), arr[1].Int())
	require.Equal(t, int64(1), arr[2].Int())
}

func TestDecodeTimeScenario(t *testing.T) {
	ti := New(1083).WithTypereceive(ReceiveTime)
	got, err := Decode([]byte{0, 0, 0, 0, 0x04, 0xB5, 0x71, 0xC0}, ti)
	require.NoError(t, err)
	arr := got.Array()
	require.Equal(t, []int64{0, 1, 19, 0}, []int64{arr[0].Int(), arr[1].Int(), arr[2].Int(), arr[3].Int()})
}

func TestDecodeFloatPrecision(t *testing.T) {
	ti4 := New(700).WithTypereceive(ReceiveFloat4)
	enc, err := Encode(Float(1.0/3.0), New(700).WithTypesend(SendFloat4))
	require.NoError(t, err)
	got, err := Decode(enc[4:], ti4)
	require.NoError(t, err)
	require.InDelta(t, 0.3333, got.Float(), 0.00001)

	ti8 := New(701).WithTypereceive(ReceiveFloat8)
	enc, err = Encode(Float(1.0/3.0), New(701).WithTypesend(SendFloat8))
	require.NoError(t, err)
	got, err = Decode(enc[4:], ti8)
	require.NoError(t, err)
	require.InDelta(t, 0.33333333, got.Float(), 0.000000001)
}

func TestDecodeTimestampScenario(t *testing.T) {
	// Mirrors encode scenario 6: Timestamp(1970-01-01T00:00:01Z) encodes to
	// i64 -946684799000000; decoding it back must yield the single integer
	// microseconds-since-Unix-epoch value spec.md §4.3.1 mandates (1
	// second = 1_000_000 microseconds), not a [seconds, micros] pair.
	ti := New(1114).WithTypereceive(ReceiveTimestamp)
	got, err := Decode(appendInt64Bytes(nil, -946684799000000), ti)
	require.NoError(t, err)
	require.Equal(t, DynamicInt, got.Kind())
	require.Equal(t, int64(1_000_000), got.Int())
}

func TestDecodeTimestampRoundTripsWithEncode(t *testing.T) {
	sendTi := New(1114).WithTypesend(SendTimestamp)
	recvTi := New(1114).WithTypereceive(ReceiveTimestamp)

	for _, micros := range []int64{0, 1, 1_000_000, -1, -946684799000000, 123456789} {
		framed, err := Encode(TimestampValue(Instant{
			Seconds:     micros / 1_000_000,
			Nanoseconds: (micros % 1_000_000) * 1000,
		}), sendTi)
		require.NoError(t, err)

		got, err := Decode(framed[4:], recvTi)
		require.NoError(t, err)
		require.Equal(t, micros, got.Int())
	}
}

func TestDecodeTimestampInfinitySentinels(t *testing.T) {
	ti := New(1114).WithTypereceive(ReceiveTimestamp)

	posInf := []byte{}
	posInf = appendInt64Bytes(posInf, math.MaxInt64)
	got, err := Decode(posInf, ti)
	require.NoError(t, err)
	require.Equal(t, "infinity", got.String())

	negInf := []byte{}
	negInf = appendInt64Bytes(negInf, math.MinInt64)
	got, err = Decode(negInf, ti)
	require.NoError(t, err)
	require.Equal(t, "-infinity", got.String())
}

func appendInt64Bytes(buf []byte, n int64) []byte {
	u := uint64(n)
	for i := 7; i >= 0; i-- {
		buf = append(buf, byte(u>>(8*uint(i))))
	}
	return buf
}

func TestDecodeIntervalScenario(t *testing.T) {
	ti := New(1186).WithTypereceive(ReceiveInterval)
	payload := appendInt64Bytes(nil, 79_000)
	payload = append(payload, 0, 0, 0, 14)
	payload = append(payload, 0, 0, 0, 0)
	got, err := Decode(payload, ti)
	require.NoError(t, err)
	arr := got.Array()
	require.Equal(t, int64(0), arr[0].Int())
	require.Equal(t, int64(14), arr[1].Int())
	require.Equal(t, int64(79_000), arr[2].Int())
}

func TestDecodeArrayRoundTrip(t *testing.T) {
	elem := New(23).WithTypesend(SendInt4).WithTypereceive(ReceiveInt4)
	arrType := New(1007).WithTypesend(SendArray).WithTypereceive(ReceiveArray).WithElemType(elem)

	enc, err := Encode(ArrayValue([]Value{Int(1), Int(2), Int(3)}), arrType)
	require.NoError(t, err)

	got, err := Decode(enc[4:], arrType)
	require.NoError(t, err)
	arr := got.Array()
	require.Len(t, arr, 3)
	require.Equal(t, []int64{1, 2, 3}, []int64{arr[0].Int(), arr[1].Int(), arr[2].Int()})
}

func TestDecodeArrayMissingElemType(t *testing.T) {
	ti := New(1).WithTypereceive(ReceiveArray)
	_, err := Decode([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, ti)
	require.EqualError(t, err, "elem type missing")
}

func TestDecodeUnsupportedType(t *testing.T) {
	ti := New(99999).WithTypereceive("something_weird_recv")
	_, err := Decode([]byte{1}, ti)
	require.EqualError(t, err, "Unsupported type")
}
