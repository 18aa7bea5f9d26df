// Package errs defines the sentinel errors shared across the schema
// codec engine. Call sites wrap a sentinel with fmt.Errorf("%w: ...", ...)
// to attach the offending value, so callers can still match on the
// sentinel with errors.Is.
package errs

import "errors"

var (
	// ErrUnknownType is returned when a type-name is not a recognized
	// primitive or is not present in the node registry.
	ErrUnknownType = errors.New("codec: unknown type name")

	// ErrBufferUnderflow is returned when a decode would read past the
	// end of the input buffer.
	ErrBufferUnderflow = errors.New("codec: buffer underflow")

	// ErrLengthMismatch is returned when a supplied length exceeds the
	// remaining buffer, or an encoded value's byte count contradicts an
	// outer framing.
	ErrLengthMismatch = errors.New("codec: length mismatch")

	// ErrMissingField is returned when a record's child name is absent
	// from the input mapping and the child has no default value.
	ErrMissingField = errors.New("codec: missing field on encode")

	// ErrUnrepresentable is returned when a value cannot be represented
	// in the target wire type, e.g. a negative value given to an
	// unsigned type, or an integer that exceeds its declared width.
	ErrUnrepresentable = errors.New("codec: value not representable in target type")

	// ErrEnumFallthrough is returned when an enum node exhausts its
	// entries without a match and has no default entry configured.
	ErrEnumFallthrough = errors.New("codec: enum fallthrough with no default entry")

	// ErrInteriorNUL is returned when a cstr is encoded from a string
	// containing an embedded 0x00 byte.
	ErrInteriorNUL = errors.New("codec: interior NUL byte in cstr value")

	// ErrMalformedUTF8 is returned when a str or cstr decode produces
	// bytes that are not valid UTF-8.
	ErrMalformedUTF8 = errors.New("codec: malformed UTF-8")

	// ErrInvalidTypeName is returned when a type-name string does not
	// parse under the primitive type-name grammar.
	ErrInvalidTypeName = errors.New("codec: invalid type name")

	// ErrAlreadyRegistered is returned when a node kind is registered
	// twice under the same key.
	ErrAlreadyRegistered = errors.New("codec: type name already registered")

	// ErrInvalidDescription is returned when a plain schema description
	// cannot be reified, e.g. it is missing a required field for its
	// kind.
	ErrInvalidDescription = errors.New("codec: invalid schema description")

	// ErrDuplicateFieldName is returned when a record schema declares
	// two children with the same name.
	ErrDuplicateFieldName = errors.New("codec: duplicate field name in record")

	// ErrChildWindowOutOfRange is returned when a record or tuple's
	// child-window args fall outside [0, len(children)].
	ErrChildWindowOutOfRange = errors.New("codec: child window out of range")
)

// PathError annotates a wrapped error with the path of child names or
// indices at which a composite node's encode/decode failed, per the
// diagnostics the engine is permitted to report (the core does not log
// or recover from errors; it only attaches a path for the caller).
type PathError struct {
	Path []string
	Err  error
}

func (e *PathError) Error() string {
	s := "codec: at "
	for i, p := range e.Path {
		if i > 0 {
			s += "."
		}
		s += p
	}

	return s + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// WithPath wraps err with a leading path segment, building up a
// dotted/indexed path as the error propagates out through nested
// composite nodes.
func WithPath(segment string, err error) error {
	if err == nil {
		return nil
	}

	var pe *PathError
	if errors.As(err, &pe) {
		return &PathError{Path: append([]string{segment}, pe.Path...), Err: pe.Err}
	}

	return &PathError{Path: []string{segment}, Err: err}
}
