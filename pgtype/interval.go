package pgtype

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	microsecondsPerSecond = 1_000_000
)

// Interval is PostgreSQL's composite duration type: independent
// months/days/microseconds fields with no cross-unit normalization, plus a
// separate Seconds field (combined with Microseconds only when rendering).
type Interval struct {
	Months       int32
	Days         int32
	Seconds      int64
	Microseconds int64
}

// Months returns an Interval with only Months set.
func Months(n int32) Interval { return Interval{Months: n} }

// Days returns an Interval with only Days set.
func Days(n int32) Interval { return Interval{Days: n} }

// Seconds returns an Interval with only Seconds set.
func Seconds(n int64) Interval { return Interval{Seconds: n} }

// Microseconds returns an Interval with only Microseconds set.
func Microseconds(n int64) Interval { return Interval{Microseconds: n} }

// AddInterval sums a and b fieldwise. It is commutative and associative,
// with Interval{} as identity.
func AddInterval(a, b Interval) Interval {
	return Interval{
		Months:       a.Months + b.Months,
		Days:         a.Days + b.Days,
		Seconds:      a.Seconds + b.Seconds,
		Microseconds: a.Microseconds + b.Microseconds,
	}
}

// DecodeIntervalParts constructs an Interval from the binary wire triple
// (months, days, microseconds), splitting microseconds into whole seconds
// plus a microsecond remainder the way interval_recv's payload is laid
// out.
func DecodeIntervalParts(months, days int32, microseconds int64) Interval {
	return Interval{
		Months:       months,
		Days:         days,
		Seconds:      microseconds / microsecondsPerSecond,
		Microseconds: microseconds % microsecondsPerSecond,
	}
}

// ToISO8601 renders i as an ISO-8601 duration string, per the rules in
// spec.md §4.4: "PT0S" for the zero interval, otherwise "P" followed by
// "<n>M"/"<n>D" for nonzero months/days, then a time designator combining
// Seconds and Microseconds.
func (i Interval) ToISO8601() string {
	if i.Months == 0 && i.Days == 0 && i.Seconds == 0 && i.Microseconds == 0 {
		return "PT0S"
	}

	var b strings.Builder
	b.WriteByte('P')

	if i.Months != 0 {
		b.WriteString(strconv.FormatInt(int64(i.Months), 10))
		b.WriteByte('M')
	}
	if i.Days != 0 {
		b.WriteString(strconv.FormatInt(int64(i.Days), 10))
		b.WriteByte('D')
	}

	totalSeconds := i.Seconds + i.Microseconds/microsecondsPerSecond
	micros := i.Microseconds % microsecondsPerSecond

	if totalSeconds == 0 && micros == 0 {
		return b.String()
	}

	b.WriteByte('T')
	if micros == 0 {
		b.WriteString(strconv.FormatInt(totalSeconds, 10))
		b.WriteByte('S')
		return b.String()
	}

	neg := micros < 0
	if neg {
		micros = -micros
	}
	frac := fmt.Sprintf("%06d", micros)
	frac = strings.TrimRight(frac, "0")

	if neg && totalSeconds == 0 {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(totalSeconds, 10))
	b.WriteByte('.')
	b.WriteString(frac)
	b.WriteByte('S')
	return b.String()
}
