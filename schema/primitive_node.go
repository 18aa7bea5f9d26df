package schema

import (
	"github.com/bytetree/schemacodec/errs"
	"github.com/bytetree/schemacodec/primitive"
)

// PrimitiveNode wraps a primitive type-name, an optional default value
// and optional default args (spec §4.2.1).
type PrimitiveNode struct {
	base
	typeName string
}

// NewPrimitiveNode builds a primitive node for typeName (validated by
// primitive.ParseName at first Encode/Decode call, not at construction,
// so invalid names surface as ordinary codec errors rather than panics).
func NewPrimitiveNode(name, typeName string, opts ...PrimitiveOption) *PrimitiveNode {
	n := &PrimitiveNode{base: base{name: name}, typeName: typeName}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// PrimitiveOption configures a PrimitiveNode at construction.
type PrimitiveOption func(*PrimitiveNode)

// WithDefaultValue sets the value used on encode when the caller omits one.
func WithDefaultValue(v any) PrimitiveOption {
	return func(n *PrimitiveNode) {
		n.defaultValue = v
		n.hasDefault = true
	}
}

// WithDefaultArgs sets the args used when the caller omits any.
func WithDefaultArgs(args ...int) PrimitiveOption {
	return func(n *PrimitiveNode) {
		n.defaultArgs = args
	}
}

func (n *PrimitiveNode) Kind() Kind { return KindPrimitive }

func (n *PrimitiveNode) TypeName() string { return n.typeName }

func (n *PrimitiveNode) Encode(value any, args ...int) ([]byte, error) {
	resolved, ok := n.resolveValue(value)
	if !ok {
		return nil, missingValue(n.name)
	}

	out, err := primitive.Encode(n.typeName, resolved)
	if err != nil {
		return nil, errs.WithPath(n.pathSegment(), err)
	}

	n.remember(resolved)

	return out, nil
}

func (n *PrimitiveNode) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	value, bytesize, err := primitive.Decode(n.typeName, buf, offset, n.resolveArgs(args)...)
	if err != nil {
		return nil, 0, errs.WithPath(n.pathSegment(), err)
	}

	n.remember(value)

	return value, bytesize, nil
}

func (n *PrimitiveNode) pathSegment() string {
	if n.name != "" {
		return n.name
	}

	return n.typeName
}
