package schema

import "github.com/bytetree/schemacodec/errs"

// TupleNode is like RecordNode but positional: the input and output are
// an ordered sequence rather than a name-keyed mapping (spec §4.2.3).
type TupleNode struct {
	base
	children []Node
}

// NewTupleNode builds a tuple node from its ordered, anonymous children.
func NewTupleNode(name string, children []Node) *TupleNode {
	return &TupleNode{base: base{name: name}, children: children}
}

func (n *TupleNode) Kind() Kind { return KindTuple }

// Children returns the tuple's elements in order.
func (n *TupleNode) Children() []Node { return n.children }

func (n *TupleNode) window(args []int) (int, int, error) {
	if len(args) == 0 {
		return 0, len(n.children), nil
	}
	if len(args) != 2 {
		return 0, 0, wrapf(errs.ErrChildWindowOutOfRange, "tuple %q: want 0 or 2 args, got %d", n.name, len(args))
	}

	start, end := args[0], args[1]
	if start < 0 || end > len(n.children) || start > end {
		return 0, 0, wrapf(errs.ErrChildWindowOutOfRange, "tuple %q: window [%d,%d) out of range [0,%d]", n.name, start, end, len(n.children))
	}

	return start, end, nil
}

func (n *TupleNode) Encode(value any, args ...int) ([]byte, error) {
	resolved, ok := n.resolveValue(value)
	if !ok {
		return nil, missingValue(n.name)
	}

	values, ok := resolved.([]any)
	if !ok {
		return nil, errs.WithPath(n.name, wrapf(errs.ErrUnrepresentable, "tuple requires a []any, got %T", resolved))
	}

	start, end, err := n.window(args)
	if err != nil {
		return nil, err
	}
	if end-start != len(values) && len(args) == 0 {
		return nil, errs.WithPath(n.name, wrapf(errs.ErrLengthMismatch, "tuple has %d children, got %d values", end-start, len(values)))
	}

	var out []byte
	for i := start; i < end; i++ {
		v := values[i-start]

		b, err := n.children[i].Encode(v)
		if err != nil {
			return nil, errs.WithPath(n.name, err)
		}

		out = append(out, b...)
	}

	n.remember(resolved)

	return out, nil
}

func (n *TupleNode) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	start, end, err := n.window(args)
	if err != nil {
		return nil, 0, err
	}

	decoded := make([]any, 0, end-start)
	pos := offset

	for i := start; i < end; i++ {
		value, consumed, err := n.children[i].Decode(buf, pos)
		if err != nil {
			return nil, 0, errs.WithPath(n.name, err)
		}

		decoded = append(decoded, value)
		pos += consumed
	}

	n.remember(decoded)

	return decoded, pos - offset, nil
}
