package primitive

import (
	"reflect"
	"strconv"

	"github.com/bytetree/schemacodec/errs"
	"github.com/bytetree/schemacodec/internal/pool"
)

// encodeArray encodes a dense sequence of elements of n.Scalar() with no
// separators (spec §4.1: "Array form is the element type with [] appended;
// it encodes a dense sequence of values with no separators"). It
// accumulates into a pooled node buffer since a single array field's
// encode call is the per-node granularity the pool is sized for.
func encodeArray(n Name, value any) ([]byte, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, wrapf(errs.ErrUnrepresentable, "%s requires a slice value, got %T", n.raw, value)
	}

	scalar := n.Scalar()

	bb := pool.GetNodeBuffer()
	defer pool.PutNodeBuffer(bb)

	for i := 0; i < rv.Len(); i++ {
		elem, err := encodeScalar(scalar, rv.Index(i).Interface())
		if err != nil {
			return nil, errs.WithPath(indexSegment(i), err)
		}

		bb.MustWrite(elem)
	}

	out := append([]byte{}, bb.Bytes()...)

	return out, nil
}

// decodeArray decodes a dense element sequence of n.Scalar() starting at
// offset. If args[0] is supplied it is the element count; otherwise
// decoding proceeds until buf is exhausted (spec §4.1).
func decodeArray(n Name, buf []byte, offset int, args ...int) (any, int, error) {
	scalar := n.Scalar()

	if len(args) > 0 {
		count := args[0]
		if count < 0 {
			return nil, 0, wrapf(errs.ErrLengthMismatch, "negative element count %d", count)
		}

		return decodeArrayCount(scalar, buf, offset, count)
	}

	return decodeArrayUntilExhausted(scalar, buf, offset)
}

func decodeArrayCount(scalar Name, buf []byte, offset, count int) (any, int, error) {
	if scalar.Width != WidthVar {
		switch scalar.Format {
		case FormatSigned:
			return decodeSignedArrayCount(scalar, buf, offset, count)
		case FormatFloat:
			return decodeFloatArrayCount(scalar, buf, offset, count)
		}
	}

	values := make([]any, count)
	pos := offset

	for i := 0; i < count; i++ {
		v, n, err := decodeScalar(scalar, buf, pos)
		if err != nil {
			return nil, 0, errs.WithPath(indexSegment(i), err)
		}

		values[i] = v
		pos += n
	}

	return typedSlice(scalar, values), pos - offset, nil
}

// decodeSignedArrayCount decodes a fixed-width signed-integer array
// straight into a pooled int64 scratch slice, skipping the per-element
// `any` boxing decodeScalar would otherwise do, then copies the result
// out before releasing the scratch slice back to the pool.
func decodeSignedArrayCount(scalar Name, buf []byte, offset, count int) (any, int, error) {
	scratch, release := pool.GetInt64Slice(count)
	defer release()

	pos := offset
	for i := 0; i < count; i++ {
		v, n, err := decodeSigned(scalar, buf, pos)
		if err != nil {
			return nil, 0, errs.WithPath(indexSegment(i), err)
		}

		scratch[i] = v
		pos += n
	}

	out := make([]int64, count)
	copy(out, scratch)

	return out, pos - offset, nil
}

// decodeFloatArrayCount is decodeSignedArrayCount's float64 counterpart.
func decodeFloatArrayCount(scalar Name, buf []byte, offset, count int) (any, int, error) {
	scratch, release := pool.GetFloat64Slice(count)
	defer release()

	pos := offset
	for i := 0; i < count; i++ {
		v, n, err := decodeFloat(scalar, buf, pos)
		if err != nil {
			return nil, 0, errs.WithPath(indexSegment(i), err)
		}

		scratch[i] = v
		pos += n
	}

	out := make([]float64, count)
	copy(out, scratch)

	return out, pos - offset, nil
}

func decodeArrayUntilExhausted(scalar Name, buf []byte, offset int) (any, int, error) {
	var values []any
	pos := offset

	for pos < len(buf) {
		v, n, err := decodeScalar(scalar, buf, pos)
		if err != nil {
			return nil, 0, errs.WithPath(indexSegment(len(values)), err)
		}
		if n == 0 {
			break
		}

		values = append(values, v)
		pos += n
	}

	return typedSlice(scalar, values), pos - offset, nil
}

// typedSlice converts the []any produced by decoding into a concretely
// typed slice matching the scalar's decoded Go type, so callers get
// []uint64, []int64, []float64, []bool, etc. rather than []any.
func typedSlice(scalar Name, values []any) any {
	switch scalar.NonNum {
	case nonNumericBool:
		out := make([]bool, len(values))
		for i, v := range values {
			out[i] = v.(bool)
		}

		return out
	case nonNumericStr:
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = v.(string)
		}

		return out
	case nonNumericBytes:
		out := make([][]byte, len(values))
		for i, v := range values {
			out[i] = v.([]byte)
		}

		return out
	}

	switch scalar.Format {
	case FormatUnsigned:
		out := make([]uint64, len(values))
		for i, v := range values {
			out[i] = v.(uint64)
		}

		return out
	case FormatSigned:
		out := make([]int64, len(values))
		for i, v := range values {
			out[i] = v.(int64)
		}

		return out
	case FormatFloat:
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = v.(float64)
		}

		return out
	default:
		return values
	}
}

func indexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
