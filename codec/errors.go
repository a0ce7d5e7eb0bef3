package codec

import (
	"errors"
	"strings"
)

// ErrFieldDeclaredSingle is returned when a field declared with no
// repetition received more than one value on the wire.
var ErrFieldDeclaredSingle = errors.New("codec: field declared single but wire carried repeated values")

// ErrUnresolvedVariant is returned when a variant codec's Discriminate
// function, or its type registry, cannot identify a value.
var ErrUnresolvedVariant = errors.New("codec: value did not resolve to a registered variant type")

// EncodeError reports an encode failure together with the dotted field
// path that produced it, innermost field first as encountered, outermost
// first once fully unwound. Mirrors the path-wrapping pattern used for
// decode failures.
type EncodeError struct {
	FieldPath []string
	Err       error
}

func (e *EncodeError) Error() string {
	if len(e.FieldPath) == 0 {
		return "codec: encode: " + e.Err.Error()
	}
	return "codec: encode: field " + strings.Join(e.FieldPath, ".") + ": " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError reports a decode failure together with the field path and
// the byte offset at which the failing header was read, or -1 when the
// failure comes from the checks run after all headers were read.
type DecodeError struct {
	FieldPath []string
	Offset    int
	Err       error
}

func (e *DecodeError) Error() string {
	if len(e.FieldPath) == 0 {
		return "codec: decode: " + e.Err.Error()
	}
	return "codec: decode: field " + strings.Join(e.FieldPath, ".") + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func wrapEncode(err error, field string) error {
	if err == nil {
		return nil
	}
	if ee, ok := err.(*EncodeError); ok {
		return &EncodeError{FieldPath: append([]string{field}, ee.FieldPath...), Err: ee.Err}
	}
	return &EncodeError{FieldPath: []string{field}, Err: err}
}

func wrapDecode(err error, field string, offset int) error {
	if err == nil {
		return nil
	}
	if de, ok := err.(*DecodeError); ok {
		return &DecodeError{FieldPath: append([]string{field}, de.FieldPath...), Offset: de.Offset, Err: de.Err}
	}
	return &DecodeError{FieldPath: []string{field}, Offset: offset, Err: err}
}
