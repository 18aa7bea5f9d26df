package registry

import (
	"iter"

	"github.com/bytetree/schemacodec/schema"
)

// Description is a plain, serializable description of a schema node,
// sufficient for Make to rebuild the live schema.Node tree (spec §4.4:
// "preserving names, args, default values, and any kind-specific
// auxiliary fields").
type Description struct {
	// Kind selects the constructor: "primitive", "record", "tuple",
	// "array", "head-array", "head-primitive", or "enum".
	Kind schema.Kind

	// Name is the node's field key; empty for anonymous nodes.
	Name string

	// TypeName is the primitive wire type-name (Kind == primitive only).
	TypeName string

	// HeadType is the length-prefix primitive type-name (head-array and
	// head-primitive only).
	HeadType string

	// Default and DefaultArgs seed a primitive node's fallback value
	// and args (primitive only).
	Default     any
	DefaultArgs []int

	// Children holds: a record's named fields, a tuple's positional
	// children, an array/head-array's single element schema (len 1),
	// or a head-primitive's content schema (len 1).
	Children []Description

	// Entries holds an enum's literal entries; Default, when Kind ==
	// enum, is instead carried as the single element of DefaultEntry.
	Entries      []EnumEntryDescription
	DefaultEntry []Description
}

// EnumEntryDescription mirrors schema.EnumEntry in plain-data form.
type EnumEntryDescription struct {
	Value   any
	Literal []byte
}

// key returns the registry lookup key for desc: the kind string, since
// the registry holds one constructor per node kind (spec §4.4 "each
// node kind registers its constructor").
func (d Description) key() string {
	return string(d.Kind)
}

// AllEntries returns an iterator over desc's enum entries in declaration
// order. Fingerprint ranges over it instead of indexing desc.Entries
// directly, so a caller building its own structural hash over a subset
// of entries (e.g. excluding a default) can reuse the same traversal.
func (d Description) AllEntries() iter.Seq[EnumEntryDescription] {
	return func(yield func(EnumEntryDescription) bool) {
		for _, e := range d.Entries {
			if !yield(e) {
				return
			}
		}
	}
}
