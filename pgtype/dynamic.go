package pgtype

// DynamicKind discriminates the Dynamic tagged sum the decoder produces.
type DynamicKind int

const (
	DynamicNull DynamicKind = iota
	DynamicBool
	DynamicInt
	DynamicFloat
	DynamicString
	DynamicBytes
	DynamicArray
)

// Dynamic is the decoder's result type: a closed tagged sum of booleans,
// integers, floats, strings, byte strings, null, and nested lists. Array
// element types are only known through TypeInfo.ElemType, so Decode cannot
// return a Value directly; downstream callers apply a type-directed
// reifier to turn a Dynamic back into a domain value.
type Dynamic struct {
	kind DynamicKind
	b    bool
	i    int64
	f    float64
	s    string
	bs   []byte
	arr  []Dynamic
}

func DynamicNil() Dynamic               { return Dynamic{kind: DynamicNull} }
func DynamicBoolOf(b bool) Dynamic      { return Dynamic{kind: DynamicBool, b: b} }
func DynamicIntOf(n int64) Dynamic      { return Dynamic{kind: DynamicInt, i: n} }
func DynamicFloatOf(f float64) Dynamic  { return Dynamic{kind: DynamicFloat, f: f} }
func DynamicStringOf(s string) Dynamic  { return Dynamic{kind: DynamicString, s: s} }
func DynamicBytesOf(b []byte) Dynamic   { return Dynamic{kind: DynamicBytes, bs: b} }
func DynamicArrayOf(e []Dynamic) Dynamic {
	return Dynamic{kind: DynamicArray, arr: e}
}

func (d Dynamic) Kind() DynamicKind { return d.kind }
func (d Dynamic) IsNull() bool      { return d.kind == DynamicNull }
func (d Dynamic) Bool() bool        { return d.b }
func (d Dynamic) Int() int64        { return d.i }
func (d Dynamic) Float() float64    { return d.f }
func (d Dynamic) String() string    { return d.s }
func (d Dynamic) Bytes() []byte     { return d.bs }
func (d Dynamic) Array() []Dynamic  { return d.arr }
