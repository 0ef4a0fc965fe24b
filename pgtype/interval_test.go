package pgtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntervalConstructors(t *testing.T) {
	require.Equal(t, Interval{Months: 3}, Months(3))
	require.Equal(t, Interval{Days: 7}, Days(7))
	require.Equal(t, Interval{Seconds: 5}, Seconds(5))
	require.Equal(t, Interval{Microseconds: 9}, Microseconds(9))
}

func TestAddIntervalCommutativeAssociative(t *testing.T) {
	a := Interval{Months: 1, Days: 2, Seconds: 3, Microseconds: 4}
	b := Interval{Months: 5, Days: -1, Seconds: 0, Microseconds: 10}
	c := Interval{Months: -2, Days: 3, Seconds: 7, Microseconds: -1}

	require.Equal(t, AddInterval(a, b), AddInterval(b, a))
	require.Equal(t, AddInterval(AddInterval(a, b), c), AddInterval(a, AddInterval(b, c)))
	require.Equal(t, a, AddInterval(a, Interval{}))
}

func TestDecodeIntervalParts(t *testing.T) {
	iv := DecodeIntervalParts(0, 14, 79_000)
	require.Equal(t, Interval{Months: 0, Days: 14, Seconds: 0, Microseconds: 79_000}, iv)
}

func TestToISO8601(t *testing.T) {
	require.Equal(t, "PT0S", Interval{}.ToISO8601())
	require.Equal(t, "P3M7DT30.2S", Interval{Months: 3, Days: 7, Seconds: 30, Microseconds: 200_000}.ToISO8601())
	require.Equal(t, "PT0.000002S", Interval{Microseconds: 2}.ToISO8601())
	require.Equal(t, "P1M", Interval{Months: 1}.ToISO8601())
	require.Equal(t, "P14D", Interval{Days: 14}.ToISO8601())
	require.Equal(t, "PT5S", Interval{Seconds: 5}.ToISO8601())
	require.Equal(t, "PT0.02S", Interval{Microseconds: 20_000}.ToISO8601())
}
