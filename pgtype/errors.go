package pgtype

import (
	"github.com/pkg/errors"
)

// Error strings below are reproduced verbatim from spec.md §7; they are
// part of this package's wire-compatibility contract and must not be
// reworded. errors.Errorf/.New (github.com/pkg/errors) give callers a
// stack trace via errors.Cause/%+v without changing what Error() returns.

func errMismatch(expected, actual string) error {
	return errors.Errorf("Attempted to encode %s as %s", expected, actual)
}

func errMismatchInt(literal int64, actual string) error {
	return errors.Errorf("Attempted to encode %d as %s", literal, actual)
}

func errMismatchText(text, actual string) error {
	return errors.Errorf("Attempted to encode '%s' as %s", text, actual)
}

var errUnsupportedFloatType = errors.New("Unsupported float type")

func errOutOfRange(typeName string) error {
	return errors.Errorf("Out of range for %s", typeName)
}

var errMissingElemTypeEncode = errors.New("Missing elem type info")
var errMissingElemTypeDecode = errors.New("elem type missing")

func errInvalidFrame(typeName string) error {
	return errors.Errorf("invalid %s", typeName)
}

var errInvalidMonth = errors.New("Invalid month")
var errUnsupportedType = errors.New("Unsupported type")
