package pgtype

import (
	"math"

	"github.com/stndrs/pgl-types/pgio"
	"github.com/stndrs/pgl-types/pgtime"
)

// Encode serializes value according to the dispatch rule in type_info's
// Typesend, returning the length-prefixed wire bytes: a big-endian signed
// 32-bit length L followed by L payload bytes. Null always succeeds with
// L = -1 and no payload, regardless of type_info.
func Encode(value Value, typeInfo TypeInfo) ([]byte, error) {
	if value.kind == KindNull {
		return pgio.AppendNull(nil), nil
	}

	switch value.kind {
	case KindBool:
		return encodeBool(value, typeInfo)
	case KindInt:
		return encodeInt(value, typeInfo)
	case KindFloat:
		return encodeFloat(value, typeInfo)
	case KindText:
		return encodeText(value, typeInfo)
	case KindBytea:
		return encodeBytea(value, typeInfo)
	case KindUUID:
		return encodeUUID(value, typeInfo)
	case KindDate:
		return encodeDate(value, typeInfo)
	case KindTime:
		return encodeTime(value, typeInfo)
	case KindTimestamp:
		return encodeTimestamp(value, typeInfo)
	case KindTimestamptz:
		return encodeTimestamptz(value, typeInfo)
	case KindInterval:
		return encodeInterval(value, typeInfo)
	case KindArray:
		return encodeArray(value, typeInfo)
	default:
		return nil, errUnsupportedType
	}
}

func encodeBool(v Value, t TypeInfo) ([]byte, error) {
	if t.Typesend() != SendBool {
		return nil, errMismatch(SendBool, t.Typesend())
	}
	var b byte
	if v.AsBool() {
		b = 1
	}
	return pgio.AppendLengthPrefixed(nil, []byte{b}), nil
}

func encodeInt(v Value, t TypeInfo) ([]byte, error) {
	n := v.AsInt()
	switch t.Typesend() {
	case SendOid:
		if n < 0 || n > math.MaxUint32 {
			return nil, errOutOfRange("oid")
		}
		return pgio.AppendLengthPrefixed(nil, pgio.AppendUint32(nil, uint32(n))), nil
	case SendInt2:
		if n < math.MinInt16 || n > math.MaxInt16 {
			return nil, errOutOfRange("int2")
		}
		return pgio.AppendLengthPrefixed(nil, pgio.AppendInt16(nil, int16(n))), nil
	case SendInt4:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, errOutOfRange("int4")
		}
		return pgio.AppendLengthPrefixed(nil, pgio.AppendInt32(nil, int32(n))), nil
	case SendInt8:
		// n is already an int64; the full range [-2^63, 2^63-1] is
		// representable, so there is nothing to range-check here beyond
		// what the Go type system already guarantees.
		return pgio.AppendLengthPrefixed(nil, pgio.AppendInt64(nil, n)), nil
	default:
		return nil, errMismatchInt(n, t.Typesend())
	}
}

func encodeFloat(v Value, t TypeInfo) ([]byte, error) {
	switch t.Typesend() {
	case SendFloat4:
		return pgio.AppendLengthPrefixed(nil, pgio.AppendFloat32(nil, float32(v.AsFloat()))), nil
	case SendFloat8:
		return pgio.AppendLengthPrefixed(nil, pgio.AppendFloat64(nil, v.AsFloat())), nil
	default:
		return nil, errUnsupportedFloatType
	}
}

func encodeText(v Value, t TypeInfo) ([]byte, error) {
	switch t.Typesend() {
	case SendVarchar, SendText, SendChar, SendName:
		return pgio.AppendLengthPrefixed(nil, []byte(v.AsText())), nil
	default:
		return nil, errMismatchText(v.AsText(), t.Typesend())
	}
}

func encodeBytea(v Value, t TypeInfo) ([]byte, error) {
	if t.Typesend() != SendBytea {
		return nil, errMismatch(SendBytea, t.Typesend())
	}
	return pgio.AppendLengthPrefixed(nil, v.AsBytea()), nil
}

func encodeUUID(v Value, t TypeInfo) ([]byte, error) {
	if t.Typesend() != SendUUID {
		return nil, errMismatch(SendUUID, t.Typesend())
	}
	b := v.AsUUID()
	return pgio.AppendLengthPrefixed(nil, b[:]), nil
}

func encodeDate(v Value, t TypeInfo) ([]byte, error) {
	if t.Typesend() != SendDate {
		return nil, errMismatch(SendDate, t.Typesend())
	}
	d := v.AsDate()
	days := pgtime.DateToGregorianDays(d.Year, d.Month, d.Day) - pgtime.PostgresGregorianDayEpoch
	return pgio.AppendLengthPrefixed(nil, pgio.AppendInt32(nil, days)), nil
}

func encodeTime(v Value, t TypeInfo) ([]byte, error) {
	if t.Typesend() != SendTime {
		return nil, errMismatch(SendTime, t.Typesend())
	}
	tm := v.AsTime()
	micros := int64(tm.Hours)*3600*1_000_000 +
		int64(tm.Minutes)*60*1_000_000 +
		int64(tm.Seconds)*1_000_000 +
		int64(tm.Nanoseconds)/1000
	return pgio.AppendLengthPrefixed(nil, pgio.AppendInt64(nil, micros)), nil
}

func encodeTimestamp(v Value, t TypeInfo) ([]byte, error) {
	if t.Typesend() != SendTimestamp {
		return nil, errMismatch(SendTimestamp, t.Typesend())
	}
	return pgio.AppendLengthPrefixed(nil, encodeInstant(v.AsTimestamp())), nil
}

func encodeInstant(i Instant) []byte {
	micros := (i.Seconds-pgtime.UnixToPostgresSeconds)*1_000_000 + i.Nanoseconds/1000
	return pgio.AppendInt64(nil, micros)
}

// offsetSignedMinutes reproduces the observed source quirk documented in
// DESIGN.md and spec.md §9 Open Question 1 verbatim: sign = +1 if hours <
// 0 else -1, magnitude = |hours|*60 + minutes, ignoring the sign of
// minutes when hours == 0. This makes a positive offset shift the encoded
// instant earlier and a negative offset shift it later.
func offsetSignedMinutes(off Offset) int64 {
	sign := int64(-1)
	if off.Hours < 0 {
		sign = 1
	}
	hours := off.Hours
	if hours < 0 {
		hours = -hours
	}
	return (int64(hours)*60 + int64(off.Minutes)) * sign
}

func encodeTimestamptz(v Value, t TypeInfo) ([]byte, error) {
	if t.Typesend() != SendTimestamptz {
		return nil, errMismatch(SendTimestamptz, t.Typesend())
	}
	instant, off := v.AsTimestamptz()
	shiftSeconds := offsetSignedMinutes(off) * 60
	shifted := Instant{
		Seconds:     instant.Seconds + shiftSeconds,
		Nanoseconds: instant.Nanoseconds,
	}
	return pgio.AppendLengthPrefixed(nil, encodeInstant(shifted)), nil
}

func encodeInterval(v Value, t TypeInfo) ([]byte, error) {
	if t.Typesend() != SendInterval {
		return nil, errMismatch(SendInterval, t.Typesend())
	}
	iv := v.AsInterval()
	micros := iv.Seconds*1_000_000 + iv.Microseconds
	payload := pgio.AppendInt64(nil, micros)
	payload = pgio.AppendInt32(payload, iv.Days)
	payload = pgio.AppendInt32(payload, iv.Months)
	return pgio.AppendLengthPrefixed(nil, payload), nil
}

// nullMarker is the four-byte encoding of L = -1, used to detect
// has_nulls by byte-comparing each recursive element encoding against it.
var nullMarker = pgio.AppendInt32(nil, -1)

func encodeArray(v Value, t TypeInfo) ([]byte, error) {
	if t.Typesend() != SendArray {
		return nil, errMismatch(SendArray, t.Typesend())
	}
	elemType, ok := t.ElemType()
	if !ok {
		return nil, errMissingElemTypeEncode
	}

	dims := Dims(v)

	header := pgio.AppendInt32(nil, int32(len(dims)))
	flagsOffset := len(header)
	header = pgio.AppendInt32(header, 0)
	header = pgio.AppendInt32(header, int32(elemType.OID()))
	for _, d := range dims {
		header = pgio.AppendInt32(header, d)
		header = pgio.AppendInt32(header, 1)
	}

	hasNulls := false
	elements, err := encodeArrayElements(v, elemType, &hasNulls)
	if err != nil {
		return nil, err
	}

	if hasNulls {
		pgio.SetInt32(header[flagsOffset:flagsOffset+4], 1)
	}

	payload := append(header, elements...)
	return pgio.AppendLengthPrefixed(nil, payload), nil
}

// encodeArrayElements walks v's (possibly nested) element sequence in
// depth-first order, emitting each leaf's own length-prefixed encoding
// flattened into a single byte stream, the way the wire format lays the
// element stream out after the dimension header.
func encodeArrayElements(v Value, elemType TypeInfo, hasNulls *bool) ([]byte, error) {
	var out []byte
	for _, elem := range v.AsArray() {
		if elem.kind == KindArray {
			chunk, err := encodeArrayElements(elem, elemType, hasNulls)
			if err != nil {
				return nil, err
			}
			out = append(out, chunk...)
			continue
		}

		enc, err := Encode(elem, elemType)
		if err != nil {
			return nil, err
		}
		if bytesEqual(enc, nullMarker) {
			*hasNulls = true
		}
		out = append(out, enc...)
	}
	return out, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
