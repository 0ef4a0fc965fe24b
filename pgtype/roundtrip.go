package pgtype

import "github.com/stndrs/pgl-types/pgio"

// EncodeValue calls Encode and strips the outer length prefix, returning
// just the payload bytes (nil, not an empty slice, for NULL). It exists so
// callers who already track their own framing don't have to re-parse the
// length prefix Encode always produces.
func EncodeValue(value Value, typeInfo TypeInfo) ([]byte, error) {
	framed, err := Encode(value, typeInfo)
	if err != nil {
		return nil, err
	}
	rest, n := pgio.NextInt32(framed)
	if n == -1 {
		return nil, nil
	}
	return rest, nil
}

// DecodeValue reads a length-prefixed frame (the form Encode produces and
// DataRow carries on the wire) and calls Decode on its payload, returning
// DynamicNil for a NULL frame (length -1) without calling Decode at all.
func DecodeValue(frame []byte, typeInfo TypeInfo) (Dynamic, error) {
	rest, n := pgio.NextInt32(frame)
	if n == -1 {
		return DynamicNil(), nil
	}
	return Decode(rest[:n], typeInfo)
}
