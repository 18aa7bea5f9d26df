package schema

import "github.com/bytetree/schemacodec/errs"

// EnumEntry pairs a scalar value with a fixed byte literal (spec §4.2.7,
// GLOSSARY "Enum entry").
type EnumEntry struct {
	Value   any
	Literal []byte
}

// MatchBytes reports whether e's literal is a prefix of buf[offset:].
func (e EnumEntry) MatchBytes(buf []byte, offset int) bool {
	if offset < 0 || offset+len(e.Literal) > len(buf) {
		return false
	}

	for i, b := range e.Literal {
		if buf[offset+i] != b {
			return false
		}
	}

	return true
}

// MatchValue reports whether v equals e's scalar value.
func (e EnumEntry) MatchValue(v any) bool {
	return e.Value == v
}

// EnumNode holds an ordered list of byte-literal tags plus an optional
// default fallback entry (spec §4.2.7). Entry order matters when
// literals share a byte prefix: the schema author is responsible for
// ordering longest-prefix entries first.
type EnumNode struct {
	base
	entries []EnumEntry
	def     Node
}

// NewEnumNode builds an enum node. def may be nil (no fallback; a
// fallthrough is then an error).
func NewEnumNode(name string, entries []EnumEntry, def Node) *EnumNode {
	return &EnumNode{base: base{name: name}, entries: entries, def: def}
}

func (n *EnumNode) Kind() Kind { return KindEnum }

// Entries returns the enum's entries in match-priority order.
func (n *EnumNode) Entries() []EnumEntry { return n.entries }

// Default returns the fallback node, or nil if none is configured.
func (n *EnumNode) Default() Node { return n.def }

func (n *EnumNode) Encode(value any, args ...int) ([]byte, error) {
	resolved, ok := n.resolveValue(value)
	if !ok {
		return nil, missingValue(n.name)
	}

	for _, e := range n.entries {
		if e.MatchValue(resolved) {
			n.remember(resolved)

			return append([]byte{}, e.Literal...), nil
		}
	}

	if n.def == nil {
		return nil, errs.WithPath(n.name, errs.ErrEnumFallthrough)
	}

	out, err := n.def.Encode(resolved)
	if err != nil {
		return nil, errs.WithPath(n.name, err)
	}

	n.remember(resolved)

	return out, nil
}

func (n *EnumNode) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	for _, e := range n.entries {
		if e.MatchBytes(buf, offset) {
			n.remember(e.Value)

			return e.Value, len(e.Literal), nil
		}
	}

	if n.def == nil {
		return nil, 0, errs.WithPath(n.name, errs.ErrEnumFallthrough)
	}

	value, bytesize, err := n.def.Decode(buf, offset)
	if err != nil {
		return nil, 0, errs.WithPath(n.name, err)
	}

	n.remember(value)

	return value, bytesize, nil
}
