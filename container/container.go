// Package container holds shared helpers for format-specific schema
// extensions (spec §4.3): composites whose control flow is not a fixed
// composition of the core node algebra, such as a chunk stream that
// stops at a sentinel chunk or a segment stream with a data-dependent
// entropy-coded span.
//
// Grounded on the composite-with-override-points shape seen in
// blob/numeric_blob_set.go and blob/text_blob_set.go (both drive a fixed
// set of sections, then hand off to section-specific, data-dependent
// parsing for the variable-length payload). Where the teacher expresses
// this via Go method overrides on an embedded struct, the packages here
// express it with schema.ArrayNode's step function and, in png, a custom
// node type that wraps a schema.RecordNode and transforms its decoded
// map, per the Design Notes' "making composite decoders accept two
// hooks" guidance for languages without inheritance.
package container

// CloneStringMap returns a shallow copy of m, letting a format extension
// replace one field's value without mutating the map a child node just
// produced (schema.RecordNode hands its decoded map to post-decode hooks
// by reference).
func CloneStringMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
