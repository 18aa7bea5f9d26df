// Package schema implements the node algebra that interprets a schema
// tree bidirectionally: encoding in-memory values to bytes and decoding
// bytes back to values (spec §3, §4.2).
//
// Grounded on the fixed-record composition in the teacher's
// section/numeric_header.go, section/numeric_flag.go and
// section/numeric_index_entry.go (a struct of typed fields parsed off a
// running byte cursor) and on the multi-section composite driven by
// blob/numeric_blob_set.go. Unlike the teacher, whose sections are fixed
// Go structs, every node kind here is a runtime value so that trees can
// be built from a plain description (registry package) as well as from
// Go code.
package schema

import "github.com/bytetree/schemacodec/errs"

// Kind identifies a schema node's composition rule (spec §3 "kind").
type Kind string

const (
	KindPrimitive    Kind = "primitive"
	KindRecord       Kind = "record"
	KindTuple        Kind = "tuple"
	KindArray        Kind = "array"
	KindHeadArray    Kind = "head-array"
	KindHeadPrimitive Kind = "head-primitive"
	KindEnum         Kind = "enum"
)

// Node is the interface every schema node kind implements (spec §4.2:
// "All schema nodes expose two operations").
type Node interface {
	// Kind reports the node's composition rule.
	Kind() Kind

	// Name reports the node's field key; empty for anonymous nodes
	// (tuple children, array elements).
	Name() string

	// Encode produces the byte encoding of value. If value is nil, the
	// node consults its value-cache (the last value seen) before
	// falling back to its default-value.
	Encode(value any, args ...int) ([]byte, error)

	// Decode consumes bytes starting at offset and returns the decoded
	// value and the number of bytes consumed.
	Decode(buf []byte, offset int, args ...int) (value any, bytesize int, err error)
}

// base holds the value-cache/args/default plumbing shared by every node
// kind (spec §3: "value-cache", "default-value", "args").
type base struct {
	name         string
	defaultValue any
	hasDefault   bool
	defaultArgs  []int
	cache        any
	hasCache     bool
}

func (b *base) Name() string { return b.name }

// resolveArgs returns args if the caller supplied any, otherwise the
// node's default args.
func (b *base) resolveArgs(args []int) []int {
	if len(args) > 0 {
		return args
	}

	return b.defaultArgs
}

// resolveValue returns value if non-nil, otherwise the cached last value,
// otherwise the default value. ok is false only when none of the three
// sources produced a value.
func (b *base) resolveValue(value any) (resolved any, ok bool) {
	if value != nil {
		return value, true
	}
	if b.hasCache {
		return b.cache, true
	}
	if b.hasDefault {
		return b.defaultValue, true
	}

	return nil, false
}

func (b *base) remember(value any) {
	b.cache = value
	b.hasCache = true
}

// missingValue builds the spec §7 "missing field on encode" error,
// annotated with the node's own name when it has one.
func missingValue(name string) error {
	if name == "" {
		return errs.ErrMissingField
	}

	return errs.WithPath(name, errs.ErrMissingField)
}
