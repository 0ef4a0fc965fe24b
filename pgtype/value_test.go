package pgtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDimsEmptyArray(t *testing.T) {
	require.Equal(t, []int32{}, Dims(ArrayValue(nil)))
}

func TestDimsFlat(t *testing.T) {
	require.Equal(t, []int32{3}, Dims(ArrayValue([]Value{Int(1), Int(2), Int(3)})))
}

func TestDimsNested(t *testing.T) {
	v := ArrayValue([]Value{ArrayValue([]Value{Int(1), Int(2)})})
	require.Equal(t, []int32{1, 2}, Dims(v))
}

func TestDimsNonArray(t *testing.T) {
	require.Nil(t, Dims(Int(1)))
}

func TestValueConstructorsRoundTripAccessors(t *testing.T) {
	require.True(t, Bool(true).AsBool())
	require.EqualValues(t, 7, Int(7).AsInt())
	require.Equal(t, 1.5, Float(1.5).AsFloat())
	require.Equal(t, "hi", Text("hi").AsText())
	require.Equal(t, []byte{1, 2}, Bytea([]byte{1, 2}).AsBytea())

	u := [16]byte{1: 1}
	require.Equal(t, u, UUID(u).AsUUID())

	tm := Time{Hours: 1, Minutes: 2, Seconds: 3, Nanoseconds: 4}
	require.Equal(t, tm, TimeOfDay(tm).AsTime())

	d := Date{Year: 2024, Month: 2, Day: 29}
	require.Equal(t, d, DateValue(d).AsDate())

	inst := Instant{Seconds: 1, Nanoseconds: 2}
	require.Equal(t, inst, TimestampValue(inst).AsTimestamp())

	off := Offset{Hours: 5, Minutes: 30}
	gotInst, gotOff := TimestamptzValue(inst, off).AsTimestamptz()
	require.Equal(t, inst, gotInst)
	require.Equal(t, off, gotOff)

	iv := Interval{Months: 1}
	require.Equal(t, iv, IntervalValue(iv).AsInterval())
}
