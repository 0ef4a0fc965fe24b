// Package pgtime implements the calendar and epoch-conversion collaborators
// that the PostgreSQL binary codec depends on: civil (year, month, day)
// arithmetic over the proleptic Gregorian calendar, time-of-day
// decomposition, and the shift between the Unix epoch and the PostgreSQL
// epoch (2000-01-01T00:00:00Z).
//
// None of this package's logic is PostgreSQL-specific beyond the epoch
// constants; it is kept separate from pgtype because the wire codec treats
// it as an external collaborator reached through a narrow interface rather
// than as part of the core encode/decode dispatch.
package pgtime

// PostgresGregorianDayEpoch is the Gregorian day count of 2000-01-01, the
// PostgreSQL epoch, counting days since 0000-12-31 (day 0, Rata Die). This
// is computed to be exactly DateToGregorianDays(2000, 1, 1); it is written
// out as a literal so the value is visible without tracing through the
// function, and a test asserts the two stay in sync. See DESIGN.md for why
// this is 730120 rather than the 730485 named in the distilled spec prose.
const PostgresGregorianDayEpoch = 730120

// UnixToPostgresSeconds is the number of seconds between the Unix epoch
// (1970-01-01) and the PostgreSQL epoch (2000-01-01).
const UnixToPostgresSeconds = 946684800

// postgresGregorianSecondsEpoch and gregorianSecondsToUnixEpoch are the two
// constants the timestamp decoder's epoch shift is defined in terms of by
// spec; UnixToPostgresSeconds is their difference and is what actually gets
// used in the hot path, but both are kept for documentation fidelity.
const (
	postgresGregorianSecondsEpoch = 63113904000
	gregorianSecondsToUnixEpoch   = 62167219200
)

func init() {
	// Guards the derivation UnixToPostgresSeconds =
	// postgresGregorianSecondsEpoch - gregorianSecondsToUnixEpoch.
	if postgresGregorianSecondsEpoch-gregorianSecondsToUnixEpoch != UnixToPostgresSeconds {
		panic("pgtime: epoch constants inconsistent")
	}
}

var daysBeforeMonth = [...]int32{
	0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334,
}

func isLeap(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DateToGregorianDays converts a civil (year, month, day) date to a day
// count in the proleptic Gregorian calendar, where day 0 is 0000-12-31 and
// day PostgresGregorianDayEpoch is 2000-01-01. month must be in 1..12.
func DateToGregorianDays(year, month, day int32) int32 {
	y := year - 1
	days := y*365 + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
	days += daysBeforeMonth[month]
	if month > 2 && isLeap(year) {
		days++
	}
	days += day
	return days
}

// GregorianDaysToDate is the inverse of DateToGregorianDays.
func GregorianDaysToDate(days int32) (year, month, day int32) {
	// Binary search for the year: days-before-year-k is monotonic in k.
	lo, hi := int32(-5000000), int32(5000000)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if daysBeforeYear(mid+1) <= days {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	year = lo
	remaining := days - daysBeforeYear(year)

	month = 1
	for month < 12 {
		dim := daysInMonth(year, month)
		if remaining <= dim {
			break
		}
		remaining -= dim
		month++
	}
	day = remaining
	return year, month, day
}

func daysBeforeYear(year int32) int32 {
	y := year - 1
	return y*365 + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
}

func daysInMonth(year, month int32) int32 {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 30
	}
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// SecondsToTime decomposes a count of seconds within a day, 0 <= seconds <
// 86400, into (hours, minutes, seconds).
func SecondsToTime(seconds int32) (hours, minutes, secs int32) {
	hours = seconds / 3600
	remainder := seconds % 3600
	minutes = remainder / 60
	secs = remainder % 60
	return
}

// TimeToSeconds is the inverse of SecondsToTime.
func TimeToSeconds(hours, minutes, secs int32) int32 {
	return hours*3600 + minutes*60 + secs
}
