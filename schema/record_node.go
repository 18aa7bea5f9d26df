package schema

import (
	"github.com/bytetree/schemacodec/errs"
	"github.com/bytetree/schemacodec/internal/pool"
)

// Field is one named child of a record, along with an optional function
// that computes its decode args from the partial result decoded so far
// (spec §4.2.8: "the parent is permitted to ... reconfigure any
// not-yet-visited child's parameters before invoking it").
type Field struct {
	Node Node

	// ArgsFunc, when set, is evaluated immediately before this child is
	// decoded and its result is used as that decode's args, overriding
	// the child's own default args. It is the "dependent field"
	// combinator named in the Design Notes.
	ArgsFunc func(decodedSoFar map[string]any) []int
}

// RecordHook lets a format-specific composition reinterpret a record's
// decoded fields after the algebraic decode runs (spec §4.3: composite
// nodes expose override points whose default is a no-op). It returns the
// (possibly modified) field map.
type RecordHook func(decoded map[string]any) (map[string]any, error)

// RecordNode accepts an unordered input mapping on encode and produces
// children's bytes in child order; decode yields a mapping keyed by
// child names (spec §4.2.2).
type RecordNode struct {
	base
	fields   []Field
	postHook RecordHook
}

// NewRecordNode builds a record node from its fields in encode/decode
// order. Field names must be unique and non-empty (spec §3 invariant:
// "A record's children must each carry a name; names are unique").
func NewRecordNode(name string, fields []Field) (*RecordNode, error) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		fname := f.Node.Name()
		if fname == "" {
			return nil, errs.WithPath(name, errs.ErrInvalidDescription)
		}
		if seen[fname] {
			return nil, errs.WithPath(name, errs.WithPath(fname, errs.ErrDuplicateFieldName))
		}
		seen[fname] = true
	}

	return &RecordNode{base: base{name: name}, fields: fields}, nil
}

// WithPostDecodeHook attaches a hook run once after the algebraic decode
// completes, letting a client reinterpret fields (spec §4.3). It returns
// the same node for chaining.
func (n *RecordNode) WithPostDecodeHook(hook RecordHook) *RecordNode {
	n.postHook = hook

	return n
}

func (n *RecordNode) Kind() Kind { return KindRecord }

// Fields returns the record's children in encode/decode order.
func (n *RecordNode) Fields() []Field { return n.fields }

// window resolves args = [start, end] to a half-open child index range,
// defaulting to the full child slice (spec §4.2.2 "child window").
func (n *RecordNode) window(args []int) (int, int, error) {
	if len(args) == 0 {
		return 0, len(n.fields), nil
	}
	if len(args) != 2 {
		return 0, 0, wrapf(errs.ErrChildWindowOutOfRange, "record %q: want 0 or 2 args, got %d", n.name, len(args))
	}

	start, end := args[0], args[1]
	if start < 0 || end > len(n.fields) || start > end {
		return 0, 0, wrapf(errs.ErrChildWindowOutOfRange, "record %q: window [%d,%d) out of range [0,%d]", n.name, start, end, len(n.fields))
	}

	return start, end, nil
}

func (n *RecordNode) Encode(value any, args ...int) ([]byte, error) {
	resolved, ok := n.resolveValue(value)
	if !ok {
		return nil, missingValue(n.name)
	}

	m, ok := resolved.(map[string]any)
	if !ok {
		return nil, errs.WithPath(n.name, wrapf(errs.ErrUnrepresentable, "record requires a map[string]any, got %T", resolved))
	}

	start, end, err := n.window(args)
	if err != nil {
		return nil, err
	}

	bb := pool.GetTreeBuffer()
	defer pool.PutTreeBuffer(bb)

	for i := start; i < end; i++ {
		f := n.fields[i]
		fieldValue, present := m[f.Node.Name()]
		if !present {
			fieldValue = nil // let the child fall back to its own default/cache
		}

		b, err := f.Node.Encode(fieldValue)
		if err != nil {
			return nil, errs.WithPath(n.name, err)
		}

		bb.MustWrite(b)
	}

	n.remember(resolved)

	return append([]byte{}, bb.Bytes()...), nil
}

func (n *RecordNode) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	start, end, err := n.window(args)
	if err != nil {
		return nil, 0, err
	}

	decoded := make(map[string]any, end-start)
	pos := offset

	for i := start; i < end; i++ {
		f := n.fields[i]

		var childArgs []int
		if f.ArgsFunc != nil {
			childArgs = f.ArgsFunc(decoded)
		}

		value, consumed, err := f.Node.Decode(buf, pos, childArgs...)
		if err != nil {
			return nil, 0, errs.WithPath(n.name, err)
		}

		decoded[f.Node.Name()] = value
		pos += consumed
	}

	if n.postHook != nil {
		decoded, err = n.postHook(decoded)
		if err != nil {
			return nil, 0, errs.WithPath(n.name, err)
		}
	}

	n.remember(decoded)

	return decoded, pos - offset, nil
}
