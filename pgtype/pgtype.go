// Package pgtype implements the PostgreSQL binary wire format: a tagged
// Value model, a TypeInfo descriptor that carries the typsend/typreceive
// dispatch keys PostgreSQL's catalog exposes for a type, and the binary
// encoder/decoder pair that moves between them and raw Bind/DataRow bytes.
//
// The package is pure and stateless: every exported function is a total
// function of its arguments, there is no shared mutable state, and nothing
// here performs I/O. Catalog discovery (resolving an OID to typsend/typreceive
// names) is left to callers; see TypeInfo.
package pgtype

// Well-known typsend/typreceive dispatch keys. These are the names
// PostgreSQL's pg_proc catalog reports for the built-in types this package
// supports; TypeInfo.Typesend/Typereceive are expected to hold one of
// these (or "array_send"/"array_recv" composed with an element TypeInfo).
const (
	SendBool        = "boolsend"
	SendOid         = "oidsend"
	SendInt2        = "int2send"
	SendInt4        = "int4send"
	SendInt8        = "int8send"
	SendFloat4      = "float4send"
	SendFloat8      = "float8send"
	SendVarchar     = "varcharsend"
	SendText        = "textsend"
	SendChar        = "charsend"
	SendName        = "namesend"
	SendBytea       = "byteasend"
	SendUUID        = "uuid_send"
	SendDate        = "date_send"
	SendTime        = "time_send"
	SendTimestamp   = "timestamp_send"
	SendTimestamptz = "timestamptz_send"
	SendInterval    = "interval_send"
	SendArray       = "array_send"

	ReceiveBool        = "boolrecv"
	ReceiveOid         = "oidrecv"
	ReceiveInt2        = "int2recv"
	ReceiveInt4        = "int4recv"
	ReceiveInt8        = "int8recv"
	ReceiveFloat4      = "float4recv"
	ReceiveFloat8      = "float8recv"
	ReceiveText        = "textrecv"
	ReceiveVarchar     = "varcharrecv"
	ReceiveName        = "namerecv"
	ReceiveChar        = "charrecv"
	ReceiveBytea       = "bytearecv"
	ReceiveUUID        = "uuid_recv"
	ReceiveTime        = "time_recv"
	ReceiveDate        = "date_recv"
	ReceiveTimestamp   = "timestamp_recv"
	ReceiveTimestamptz = "timestamptz_recv"
	ReceiveInterval    = "interval_recv"
	ReceiveArray       = "array_recv"
)

// TypeInfo is an immutable descriptor for a PostgreSQL type, populated from
// the catalog (pg_type, pg_proc) by a caller outside this package. It is
// the sole source of dispatch for Encode/Decode: neither function
// dispatches on a type's OID or name, only on Typesend/Typereceive (the
// array encoder does write the element type's OID into the array header).
//
// TypeInfo is constructed with New and never mutated; the With* methods
// return a modified copy, the same "copy-on-write builder" shape the
// teacher's surrounding pgx packages use for their own immutable value
// types.
type TypeInfo struct {
	oid         uint32
	name        string
	typesend    string
	typereceive string
	typelen     int32
	output      string
	input       string
	elemOID     uint32
	elemType    *TypeInfo
	baseOID     uint32
	compOIDs    []uint32
	compTypes   []TypeInfo
}

// New returns a TypeInfo for oid with every other field empty.
func New(oid uint32) TypeInfo {
	return TypeInfo{oid: oid}
}

func (t TypeInfo) OID() uint32            { return t.oid }
func (t TypeInfo) Name() string           { return t.name }
func (t TypeInfo) Typesend() string       { return t.typesend }
func (t TypeInfo) Typereceive() string    { return t.typereceive }
func (t TypeInfo) Typelen() int32         { return t.typelen }
func (t TypeInfo) Output() string         { return t.output }
func (t TypeInfo) Input() string          { return t.input }
func (t TypeInfo) ElemOID() uint32        { return t.elemOID }
func (t TypeInfo) BaseOID() uint32        { return t.baseOID }
func (t TypeInfo) CompOIDs() []uint32     { return t.compOIDs }
func (t TypeInfo) CompTypes() []TypeInfo { return t.compTypes }

// ElemType returns the element descriptor set by WithElemType, and
// (TypeInfo{}, false) when none has been set.
func (t TypeInfo) ElemType() (TypeInfo, bool) {
	if t.elemType == nil {
		return TypeInfo{}, false
	}
	return *t.elemType, true
}

// IsArray reports whether t dispatches through the array codec.
func (t TypeInfo) IsArray() bool {
	return t.typesend == SendArray || t.typereceive == ReceiveArray
}

// WithName returns a copy of t with Name set to name.
func (t TypeInfo) WithName(name string) TypeInfo {
	t.name = name
	return t
}

// WithTypesend returns a copy of t with Typesend set to send.
func (t TypeInfo) WithTypesend(send string) TypeInfo {
	t.typesend = send
	return t
}

// WithTypereceive returns a copy of t with Typereceive set to recv.
func (t TypeInfo) WithTypereceive(recv string) TypeInfo {
	t.typereceive = recv
	return t
}

// WithTypelen returns a copy of t with Typelen set to n.
func (t TypeInfo) WithTypelen(n int32) TypeInfo {
	t.typelen = n
	return t
}

// WithOutput returns a copy of t with Output set to name.
func (t TypeInfo) WithOutput(name string) TypeInfo {
	t.output = name
	return t
}

// WithInput returns a copy of t with Input set to name.
func (t TypeInfo) WithInput(name string) TypeInfo {
	t.input = name
	return t
}

// WithElemOID returns a copy of t with ElemOID set to oid.
func (t TypeInfo) WithElemOID(oid uint32) TypeInfo {
	t.elemOID = oid
	return t
}

// WithElemType returns a copy of t whose ElemType is elem. This is the sole
// source of element-type dispatch during array coding: encoding or
// decoding an array TypeInfo with no ElemType set fails (see Encode,
// Decode).
func (t TypeInfo) WithElemType(elem TypeInfo) TypeInfo {
	e := elem
	t.elemType = &e
	return t
}

// WithBaseOID returns a copy of t with BaseOID set to oid. Reserved for
// base-type descriptors; unused by the encoder/decoder in this package.
func (t TypeInfo) WithBaseOID(oid uint32) TypeInfo {
	t.baseOID = oid
	return t
}

// WithCompOIDs returns a copy of t with CompOIDs set to oids. Reserved for
// composite-type descriptors; this package does not encode or decode
// composite types (see package doc).
func (t TypeInfo) WithCompOIDs(oids []uint32) TypeInfo {
	t.compOIDs = append([]uint32(nil), oids...)
	return t
}

// WithCompTypes returns a copy of t with CompTypes set to types. Reserved
// for composite-type descriptors; see WithCompOIDs.
func (t TypeInfo) WithCompTypes(types []TypeInfo) TypeInfo {
	t.compTypes = append([]TypeInfo(nil), types...)
	return t
}
