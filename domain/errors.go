package domain

import (
	"errors"
	"fmt"
)

// DecodeError describes a failure to decode a wire JSON value into its typed
// form. It is the only failure kind produced by this package: encoding is
// total over the closed input domains and never fails.
type DecodeError struct {
	Type  string // name of the type being decoded, e.g. "GitMode"
	Field string // field path inside the enclosing document, e.g. "tree[2]"
	Value string // offending raw value, when one exists
	Err   error  // underlying cause, when the failure is nested
}

func (e *DecodeError) Error() string {
	msg := "decoding " + e.Type
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(": unknown value %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// missingField reports a required field absent from the wire object.
func missingField(typeName, field string) error {
	return &DecodeError{
		Type:  typeName,
		Field: field,
		Err:   errMissing,
	}
}

var errMissing = errors.New("required field is missing")
