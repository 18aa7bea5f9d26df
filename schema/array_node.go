package schema

import (
	"iter"
	"reflect"

	"github.com/bytetree/schemacodec/errs"
)

// StepFunc overrides an array's default per-element decode step. It is
// the "single-step decode" override point named in spec §4.3 for
// container quirks whose termination condition is not a fixed count
// (e.g. a JPEG entropy-coded span). stop reports whether the array
// should end after this step (this element is still included in the
// output).
type StepFunc func(buf []byte, offset int, decodedSoFar []any) (value any, bytesize int, stop bool, err error)

// ArrayNode has exactly one element schema (spec §4.2.4). args is either
// [length] (decode exactly that many elements) or [start, end] (an index
// window over the caller-supplied sequence on encode).
type ArrayNode struct {
	base
	elem Node
	step StepFunc
}

// NewArrayNode builds an array node over elem.
func NewArrayNode(name string, elem Node) *ArrayNode {
	return &ArrayNode{base: base{name: name}, elem: elem}
}

// WithStepFunc installs a custom per-element decode step, used by format
// extensions that need data-dependent termination (spec §4.3). It
// returns the same node for chaining.
func (n *ArrayNode) WithStepFunc(step StepFunc) *ArrayNode {
	n.step = step

	return n
}

func (n *ArrayNode) Kind() Kind { return KindArray }

// Elem returns the element schema.
func (n *ArrayNode) Elem() Node { return n.elem }

func (n *ArrayNode) Encode(value any, args ...int) ([]byte, error) {
	resolved, ok := n.resolveValue(value)
	if !ok {
		return nil, missingValue(n.name)
	}

	rv := reflect.ValueOf(resolved)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errs.WithPath(n.name, wrapf(errs.ErrUnrepresentable, "array requires a slice, got %T", resolved))
	}

	start, end := 0, rv.Len()
	switch len(args) {
	case 0:
	case 1:
		end = args[0]
	case 2:
		start, end = args[0], args[1]
	default:
		return nil, errs.WithPath(n.name, wrapf(errs.ErrChildWindowOutOfRange, "array %q: want 0, 1 or 2 args, got %d", n.name, len(args)))
	}
	if start < 0 || end > rv.Len() || start > end {
		return nil, errs.WithPath(n.name, wrapf(errs.ErrChildWindowOutOfRange, "array %q: window [%d,%d) out of range [0,%d]", n.name, start, end, rv.Len()))
	}

	var out []byte
	for i := start; i < end; i++ {
		b, err := n.elem.Encode(rv.Index(i).Interface())
		if err != nil {
			return nil, errs.WithPath(indexSegment(i), err)
		}

		out = append(out, b...)
	}

	n.remember(resolved)

	return out, nil
}

// DecodeOne decodes exactly one element at offset, using the array's
// custom step function if one is installed; otherwise it delegates to
// the element schema directly (spec §4.2.4 "single-step decode").
func (n *ArrayNode) DecodeOne(buf []byte, offset int, decodedSoFar []any) (value any, bytesize int, stop bool, err error) {
	if n.step != nil {
		return n.step(buf, offset, decodedSoFar)
	}

	value, bytesize, err = n.elem.Decode(buf, offset)

	return value, bytesize, false, err
}

// Decode reads exactly args[0] elements if supplied; otherwise it reads
// until buf is exhausted.
func (n *ArrayNode) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	pos := offset
	var decoded []any

	if len(args) > 0 {
		count := args[0]
		if count < 0 {
			return nil, 0, errs.WithPath(n.name, wrapf(errs.ErrLengthMismatch, "negative element count %d", count))
		}

		decoded = make([]any, 0, count)
		for i := 0; i < count; i++ {
			value, consumed, stop, err := n.DecodeOne(buf, pos, decoded)
			if err != nil {
				return nil, 0, errs.WithPath(indexSegment(i), err)
			}

			decoded = append(decoded, value)
			pos += consumed
			if stop {
				break
			}
		}
	} else {
		for pos < len(buf) {
			value, consumed, stop, err := n.DecodeOne(buf, pos, decoded)
			if err != nil {
				return nil, 0, errs.WithPath(indexSegment(len(decoded)), err)
			}
			if consumed == 0 {
				break
			}

			decoded = append(decoded, value)
			pos += consumed
			if stop {
				break
			}
		}
	}

	n.remember(decoded)

	return decoded, pos - offset, nil
}

// All returns a lazily-evaluated, single-pass iterator over buf's
// elements starting at offset, decoding one element per step rather
// than materializing the whole slice Decode would. Iteration stops at
// the first decode error, at buffer exhaustion, or when an installed
// StepFunc reports stop — whichever comes first; range it to
// completion, since a partial range leaves any remaining bytes unread.
func (n *ArrayNode) All(buf []byte, offset int) iter.Seq[any] {
	return func(yield func(any) bool) {
		pos := offset
		var decoded []any

		for pos < len(buf) {
			value, consumed, stop, err := n.DecodeOne(buf, pos, decoded)
			if err != nil || consumed == 0 {
				return
			}

			decoded = append(decoded, value)
			pos += consumed

			if !yield(value) {
				return
			}
			if stop {
				return
			}
		}
	}
}
