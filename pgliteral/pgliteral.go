// Package pgliteral renders pgtype.Value as single-quoted PostgreSQL
// literals, the textual form used when a caller composes SQL strings
// rather than binding parameters. It is a secondary boundary helper, not
// part of the binary wire codec: it depends on pgtype, never the reverse.
package pgliteral

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/stndrs/pgl-types/pgtime"
	"github.com/stndrs/pgl-types/pgtype"
)

// ToString renders value as a PostgreSQL-parseable literal per the rules
// in spec.md §4.5.
func ToString(value pgtype.Value) string {
	switch value.Kind() {
	case pgtype.KindNull:
		return "NULL"
	case pgtype.KindBool:
		if value.AsBool() {
			return "TRUE"
		}
		return "FALSE"
	case pgtype.KindInt:
		return strconv.FormatInt(value.AsInt(), 10)
	case pgtype.KindFloat:
		return strconv.FormatFloat(value.AsFloat(), 'g', -1, 64)
	case pgtype.KindText:
		return quoteString(value.AsText())
	case pgtype.KindBytea:
		return quoteBytes(value.AsBytea())
	case pgtype.KindUUID:
		return quoteUUID(value.AsUUID())
	case pgtype.KindTime:
		return quoteTime(value.AsTime())
	case pgtype.KindDate:
		return quoteDate(value.AsDate())
	case pgtype.KindTimestamp:
		return quoteTimestamp(value.AsTimestamp())
	case pgtype.KindTimestamptz:
		return quoteTimestamptz(value.AsTimestamptz())
	case pgtype.KindInterval:
		return "'" + value.AsInterval().ToISO8601() + "'"
	case pgtype.KindArray:
		return quoteArray(value.AsArray())
	default:
		return "NULL"
	}
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		if r == '\'' {
			b.WriteString(`\'`)
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func quoteBytes(b []byte) string {
	return "'\\x" + strings.ToUpper(hex.EncodeToString(b)) + "'"
}

func quoteUUID(b [16]byte) string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

func quoteTime(t pgtype.Time) string {
	base := fmt.Sprintf("'%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
	millis := t.Nanoseconds / 1_000_000
	if millis == 0 {
		return base + "'"
	}
	switch {
	case millis < 10:
		return fmt.Sprintf("%s.00%d'", base, millis)
	case millis < 100:
		return fmt.Sprintf("%s.0%d'", base, millis)
	default:
		return fmt.Sprintf("%s.%d'", base, millis)
	}
}

func quoteDate(d pgtype.Date) string {
	return fmt.Sprintf("'%04d-%02d-%02d'", d.Year, d.Month, d.Day)
}

func quoteTimestamp(i pgtype.Instant) string {
	year, month, day, hours, minutes, seconds, nanos := civilFromInstant(i)
	return formatTimestamp(year, month, day, hours, minutes, seconds, nanos)
}

func quoteTimestamptz(i pgtype.Instant, off pgtype.Offset) string {
	shifted := pgtype.Instant{
		Seconds:     i.Seconds + int64(off.Hours)*3600 + int64(off.Minutes)*60,
		Nanoseconds: i.Nanoseconds,
	}
	return quoteTimestamp(shifted)
}

func civilFromInstant(i pgtype.Instant) (year, month, day, hours, minutes, seconds, nanos int32) {
	totalSeconds := i.Seconds
	days := totalSeconds / 86400
	rem := totalSeconds % 86400
	if rem < 0 {
		rem += 86400
		days--
	}
	gregorianDays := int32(days) + 719163 // Unix epoch Rata Die day count.
	year, month, day = pgtime.GregorianDaysToDate(gregorianDays)
	hours, minutes, seconds = pgtime.SecondsToTime(int32(rem))
	nanos = int32(i.Nanoseconds)
	return
}

func formatTimestamp(year, month, day, hours, minutes, seconds, nanos int32) string {
	base := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", year, month, day, hours, minutes, seconds)
	if nanos == 0 {
		return "'" + base + "Z'"
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", nanos), "0")
	return "'" + base + "." + frac + "Z'"
}

func quoteArray(elems []pgtype.Value) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = ToString(e)
	}
	return "ARRAY[" + strings.Join(parts, ", ") + "]"
}
