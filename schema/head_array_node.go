package schema

import (
	"reflect"

	"github.com/bytetree/schemacodec/errs"
)

// HeadArrayNode is an array prefixed by an integer element count (spec
// §4.2.5). headType is any numeric primitive type-name, including the
// VLQ forms.
type HeadArrayNode struct {
	base
	head *PrimitiveNode
	elem Node
}

// NewHeadArrayNode builds a head-array node whose length prefix is
// encoded as headType (e.g. "u4b", "uv").
func NewHeadArrayNode(name, headType string, elem Node) *HeadArrayNode {
	return &HeadArrayNode{
		base: base{name: name},
		head: NewPrimitiveNode(name+".head", headType),
		elem: elem,
	}
}

func (n *HeadArrayNode) Kind() Kind { return KindHeadArray }

// Elem returns the element schema.
func (n *HeadArrayNode) Elem() Node { return n.elem }

// HeadType returns the length prefix's primitive type-name.
func (n *HeadArrayNode) HeadType() string { return n.head.TypeName() }

func (n *HeadArrayNode) Encode(value any, args ...int) ([]byte, error) {
	resolved, ok := n.resolveValue(value)
	if !ok {
		return nil, missingValue(n.name)
	}

	rv := reflect.ValueOf(resolved)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errs.WithPath(n.name, wrapf(errs.ErrUnrepresentable, "head-array requires a slice, got %T", resolved))
	}

	headBytes, err := n.head.Encode(uint64(rv.Len()))
	if err != nil {
		return nil, errs.WithPath(n.name, err)
	}

	out := append([]byte{}, headBytes...)
	for i := 0; i < rv.Len(); i++ {
		b, err := n.elem.Encode(rv.Index(i).Interface())
		if err != nil {
			return nil, errs.WithPath(indexSegment(i), err)
		}

		out = append(out, b...)
	}

	n.remember(resolved)

	return out, nil
}

func (n *HeadArrayNode) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	count64, headSize, err := n.head.Decode(buf, offset)
	if err != nil {
		return nil, 0, errs.WithPath(n.name, err)
	}

	count, err := asCount(count64)
	if err != nil {
		return nil, 0, errs.WithPath(n.name, err)
	}

	decoded := make([]any, 0, count)
	pos := offset + headSize

	for i := 0; i < count; i++ {
		value, consumed, err := n.elem.Decode(buf, pos)
		if err != nil {
			return nil, 0, errs.WithPath(indexSegment(i), err)
		}

		decoded = append(decoded, value)
		pos += consumed
	}

	n.remember(decoded)

	return decoded, pos - offset, nil
}

// asCount converts a decoded head value (uint64 or int64, depending on
// the head type's format) to a non-negative element count.
func asCount(v any) (int, error) {
	switch x := v.(type) {
	case uint64:
		return int(x), nil
	case int64:
		if x < 0 {
			return 0, wrapf(errs.ErrLengthMismatch, "negative head count %d", x)
		}

		return int(x), nil
	default:
		return 0, wrapf(errs.ErrUnrepresentable, "head type produced non-integer count %T", v)
	}
}
