package pgtype

import "fmt"

// Kind discriminates the Value tagged sum.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindBytea
	KindUUID
	KindTime
	KindDate
	KindTimestamp
	KindTimestamptz
	KindInterval
	KindArray
)

// Time is a civil time-of-day: 0 <= Hours < 24, 0 <= Minutes < 60, 0 <=
// Seconds < 60, 0 <= Nanoseconds < 1e9.
type Time struct {
	Hours       int32
	Minutes     int32
	Seconds     int32
	Nanoseconds int32
}

// Date is a civil calendar date; Month is 1..12.
type Date struct {
	Year  int32
	Month int32
	Day   int32
}

// Instant is seconds and nanoseconds since the Unix epoch, the payload of
// Timestamp and Timestamptz.
type Instant struct {
	Seconds     int64
	Nanoseconds int64
}

// Offset is the wall-clock displacement of a Timestamptz from UTC. The
// sign of the offset is carried by Hours alone: Minutes is added to the
// magnitude of Hours whatever its own sign. Encode reproduces the
// observed sign-inversion quirk documented in DESIGN.md rather than
// "fixing" it, since the wire format this package must reproduce depends
// on it.
type Offset struct {
	Hours   int32
	Minutes int32
}

// Value is the tagged sum of every value this package can encode to, or
// decode scalars from, the PostgreSQL binary wire format.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	bs    []byte
	uuid  [16]byte
	tm    Time
	date  Date
	ts    Instant
	tz    Instant
	tzOff Offset
	iv    Interval
	arr   []Value
}

// Null returns the NULL value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an Int value. The wire size used to encode it is determined
// by the TypeInfo passed to Encode, not by the magnitude of n.
func Int(n int64) Value { return Value{kind: KindInt, i: n} }

// Float returns a Float value. The wire width (32 or 64 bit) is determined
// by the TypeInfo passed to Encode.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a Text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Bytea returns a Bytea value. bs is not copied.
func Bytea(bs []byte) Value { return Value{kind: KindBytea, bs: bs} }

// UUID returns a Uuid value from exactly 16 raw bytes.
func UUID(b [16]byte) Value { return Value{kind: KindUUID, uuid: b} }

// TimeOfDay returns a Time value.
func TimeOfDay(t Time) Value { return Value{kind: KindTime, tm: t} }

// DateValue returns a Date value.
func DateValue(d Date) Value { return Value{kind: KindDate, date: d} }

// TimestampValue returns a Timestamp value.
func TimestampValue(i Instant) Value { return Value{kind: KindTimestamp, ts: i} }

// TimestamptzValue returns a Timestamptz value.
func TimestamptzValue(i Instant, off Offset) Value {
	return Value{kind: KindTimestamptz, tz: i, tzOff: off}
}

// IntervalValue returns an Interval value.
func IntervalValue(iv Interval) Value { return Value{kind: KindInterval, iv: iv} }

// ArrayValue returns an Array value from an ordered sequence of elements.
// elems may itself contain Array values to represent nested dimensions;
// see Dims.
func ArrayValue(elems []Value) Value { return Value{kind: KindArray, arr: elems} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) AsBool() bool         { return v.b }
func (v Value) AsInt() int64         { return v.i }
func (v Value) AsFloat() float64     { return v.f }
func (v Value) AsText() string       { return v.s }
func (v Value) AsBytea() []byte      { return v.bs }
func (v Value) AsUUID() [16]byte     { return v.uuid }
func (v Value) AsTime() Time         { return v.tm }
func (v Value) AsDate() Date         { return v.date }
func (v Value) AsTimestamp() Instant { return v.ts }
func (v Value) AsTimestamptz() (Instant, Offset) {
	return v.tz, v.tzOff
}
func (v Value) AsInterval() Interval { return v.iv }
func (v Value) AsArray() []Value     { return v.arr }

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "Null"
	case KindBool:
		return fmt.Sprintf("Bool(%v)", v.b)
	case KindInt:
		return fmt.Sprintf("Int(%d)", v.i)
	case KindFloat:
		return fmt.Sprintf("Float(%v)", v.f)
	case KindText:
		return fmt.Sprintf("Text(%q)", v.s)
	case KindBytea:
		return fmt.Sprintf("Bytea(%d bytes)", len(v.bs))
	case KindUUID:
		return fmt.Sprintf("Uuid(% x)", v.uuid)
	case KindTime:
		return fmt.Sprintf("Time(%+v)", v.tm)
	case KindDate:
		return fmt.Sprintf("Date(%+v)", v.date)
	case KindTimestamp:
		return fmt.Sprintf("Timestamp(%+v)", v.ts)
	case KindTimestamptz:
		return fmt.Sprintf("Timestamptz(%+v, %+v)", v.tz, v.tzOff)
	case KindInterval:
		return fmt.Sprintf("Interval(%+v)", v.iv)
	case KindArray:
		return fmt.Sprintf("Array(%d elems)", len(v.arr))
	default:
		return "Value(?)"
	}
}

// Dims computes the array dimensions of v by walking the first-element
// chain: an empty array has no dimensions, a nested array's first
// dimension is its own length followed by its first element's dimensions,
// and any other non-empty array has a single dimension equal to its
// length. Ragged nesting is not validated.
func Dims(v Value) []int32 {
	if v.kind != KindArray {
		return nil
	}
	if len(v.arr) == 0 {
		return []int32{}
	}
	dims := []int32{int32(len(v.arr))}
	if v.arr[0].kind == KindArray {
		dims = append(dims, Dims(v.arr[0])...)
	}
	return dims
}
