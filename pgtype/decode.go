package pgtype

import (
	"math"
	"unicode/utf8"

	"github.com/stndrs/pgl-types/pgio"
	"github.com/stndrs/pgl-types/pgtime"
)

// roundedFloat32 rounds f to 4 decimal digits, matching the precision the
// decoder's float4recv path is documented (spec.md §9 Open Question 3) to
// apply; callers needing an exact IEEE 754 round-trip must bypass Decode.
func roundedFloat32(f float32) float64 {
	return roundTo(float64(f), 4)
}

// roundedFloat64 rounds f to 8 decimal digits; see roundedFloat32.
func roundedFloat64(f float64) float64 {
	return roundTo(f, 8)
}

func roundTo(f float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(f*scale) / scale
}

// Decode parses payload (with its outer length prefix already stripped by
// the caller) according to type_info.Typereceive, returning a Dynamic.
func Decode(payload []byte, typeInfo TypeInfo) (Dynamic, error) {
	switch typeInfo.Typereceive() {
	case ReceiveBool:
		return decodeBool(payload)
	case ReceiveOid:
		return decodeOid(payload)
	case ReceiveInt2:
		return decodeInt2(payload)
	case ReceiveInt4:
		return decodeInt4(payload)
	case ReceiveInt8:
		return decodeInt8(payload)
	case ReceiveFloat4:
		return decodeFloat4(payload)
	case ReceiveFloat8:
		return decodeFloat8(payload)
	case ReceiveText:
		return decodeTextLike(payload, "text")
	case ReceiveVarchar:
		return decodeTextLike(payload, "varchar")
	case ReceiveName, ReceiveChar:
		// Only "invalid text" and "invalid varchar" appear among the
		// frame-error kinds this package reports; name/char share text's
		// error string, not a distinct one of their own.
		return decodeTextLike(payload, "text")
	case ReceiveBytea:
		return DynamicBytesOf(append([]byte(nil), payload...)), nil
	case ReceiveUUID:
		return decodeUUID(payload)
	case ReceiveTime:
		return decodeTime(payload)
	case ReceiveDate:
		return decodeDate(payload)
	case ReceiveTimestamp, ReceiveTimestamptz:
		return decodeTimestamp(payload)
	case ReceiveInterval:
		return decodeInterval(payload)
	case ReceiveArray:
		return decodeArray(payload, typeInfo)
	default:
		return Dynamic{}, errUnsupportedType
	}
}

func decodeBool(payload []byte) (Dynamic, error) {
	if len(payload) != 1 {
		return Dynamic{}, errInvalidFrame("bool")
	}
	return DynamicBoolOf(payload[0] != 0), nil
}

func decodeOid(payload []byte) (Dynamic, error) {
	if len(payload) != 4 {
		return Dynamic{}, errInvalidFrame("oid")
	}
	_, n := pgio.NextUint32(payload)
	return DynamicIntOf(int64(n)), nil
}

func decodeInt2(payload []byte) (Dynamic, error) {
	if len(payload) != 2 {
		return Dynamic{}, errInvalidFrame("int2")
	}
	_, n := pgio.NextInt16(payload)
	return DynamicIntOf(int64(n)), nil
}

func decodeInt4(payload []byte) (Dynamic, error) {
	if len(payload) != 4 {
		return Dynamic{}, errInvalidFrame("int4")
	}
	_, n := pgio.NextInt32(payload)
	return DynamicIntOf(int64(n)), nil
}

func decodeInt8(payload []byte) (Dynamic, error) {
	if len(payload) != 8 {
		return Dynamic{}, errInvalidFrame("int8")
	}
	_, n := pgio.NextInt64(payload)
	return DynamicIntOf(n), nil
}

func decodeFloat4(payload []byte) (Dynamic, error) {
	if len(payload) != 4 {
		return Dynamic{}, errInvalidFrame("float4")
	}
	_, f := pgio.NextFloat32(payload)
	return DynamicFloatOf(roundedFloat32(f)), nil
}

func decodeFloat8(payload []byte) (Dynamic, error) {
	if len(payload) != 8 {
		return Dynamic{}, errInvalidFrame("float8")
	}
	_, f := pgio.NextFloat64(payload)
	return DynamicFloatOf(roundedFloat64(f)), nil
}

func decodeTextLike(payload []byte, kind string) (Dynamic, error) {
	if !utf8.Valid(payload) {
		return Dynamic{}, errInvalidFrame(kind)
	}
	return DynamicStringOf(string(payload)), nil
}

func decodeUUID(payload []byte) (Dynamic, error) {
	if len(payload) != 16 {
		return Dynamic{}, errInvalidFrame("uuid")
	}
	return DynamicBytesOf(append([]byte(nil), payload...)), nil
}

func decodeTime(payload []byte) (Dynamic, error) {
	if len(payload) != 8 {
		return Dynamic{}, errInvalidFrame("time")
	}
	_, micros := pgio.NextInt64(payload)
	seconds := int32(micros / 1_000_000)
	remMicros := micros % 1_000_000
	hours, minutes, secs := pgtime.SecondsToTime(seconds)
	return DynamicArrayOf([]Dynamic{
		DynamicIntOf(int64(hours)),
		DynamicIntOf(int64(minutes)),
		DynamicIntOf(int64(secs)),
		DynamicIntOf(remMicros),
	}), nil
}

func decodeDate(payload []byte) (Dynamic, error) {
	if len(payload) != 4 {
		return Dynamic{}, errInvalidFrame("date")
	}
	_, days := pgio.NextInt32(payload)
	year, month, day := pgtime.GregorianDaysToDate(days + pgtime.PostgresGregorianDayEpoch)
	if month < 1 || month > 12 {
		return Dynamic{}, errInvalidMonth
	}
	return DynamicArrayOf([]Dynamic{
		DynamicIntOf(int64(year)),
		DynamicIntOf(int64(month)),
		DynamicIntOf(int64(day)),
	}), nil
}

const (
	timestampPosInfinity = int64(math.MaxInt64)
	timestampNegInfinity = int64(math.MinInt64)
)

func decodeTimestamp(payload []byte) (Dynamic, error) {
	if len(payload) != 8 {
		return Dynamic{}, errInvalidFrame("timestamp")
	}
	_, n := pgio.NextInt64(payload)

	switch n {
	case timestampPosInfinity:
		return DynamicStringOf("infinity"), nil
	case timestampNegInfinity:
		return DynamicStringOf("-infinity"), nil
	}

	seconds := n/1_000_000 + pgtime.UnixToPostgresSeconds
	micros := n % 1_000_000
	return DynamicIntOf(seconds*1_000_000 + micros), nil
}

func decodeInterval(payload []byte) (Dynamic, error) {
	if len(payload) != 16 {
		return Dynamic{}, errInvalidFrame("interval")
	}
	rest, micros := pgio.NextInt64(payload)
	rest, days := pgio.NextInt32(rest)
	_, months := pgio.NextInt32(rest)
	return DynamicArrayOf([]Dynamic{
		DynamicIntOf(int64(months)),
		DynamicIntOf(int64(days)),
		DynamicIntOf(micros),
	}), nil
}

func decodeArray(payload []byte, typeInfo TypeInfo) (Dynamic, error) {
	elemType, ok := typeInfo.ElemType()
	if !ok {
		return Dynamic{}, errMissingElemTypeDecode
	}

	if len(payload) < 12 {
		return Dynamic{}, errInvalidFrame("array")
	}
	rest, numDims := pgio.NextInt32(payload)
	rest, _ = pgio.NextInt32(rest) // flags, passthrough only
	rest, _ = pgio.NextInt32(rest) // elem oid, ignored: elemType comes from TypeInfo

	if numDims < 0 || len(rest) < int(numDims)*8 {
		return Dynamic{}, errInvalidFrame("array")
	}
	for i := int32(0); i < numDims; i++ {
		rest, _ = pgio.NextInt32(rest) // dim length
		rest, _ = pgio.NextInt32(rest) // lower bound, not surfaced
	}

	var elems []Dynamic
	for len(rest) > 0 {
		if len(rest) < 4 {
			return Dynamic{}, errInvalidFrame("array")
		}
		var size int32
		rest, size = pgio.NextInt32(rest)
		if size == -1 {
			elems = append(elems, DynamicNil())
			continue
		}
		if size < 0 || len(rest) < int(size) {
			return Dynamic{}, errInvalidFrame("array")
		}
		elemPayload := rest[:size]
		rest = rest[size:]

		elem, err := Decode(elemPayload, elemType)
		if err != nil {
			return Dynamic{}, err
		}
		elems = append(elems, elem)
	}

	return DynamicArrayOf(elems), nil
}
