// Package schemacodec is a declarative binary codec engine: a composable
// framework for describing the byte-level structure of binary formats as
// schema trees, and using those trees bidirectionally to encode in-memory
// values into byte sequences and decode byte sequences back into values.
//
// The engine is organized bottom-up:
//
//	primitive  fixed-width integers/floats, VLQ, strings, bytes, bool
//	schema     the node algebra: records, tuples, arrays, head-arrays,
//	           head-primitives, enums, and their composition rules
//	registry   process-wide type registration and tree reification
//	container  format-specific extension hooks, plus PNG and JPEG clients
//	fileio     "load -> decode" / "encode -> download" file adapter
//
// A minimal record schema, encoded and decoded:
//
//	player, err := schema.NewRecordNode("player", []schema.Field{
//		{Node: schema.NewPrimitiveNode("level", "u1")},
//		{Node: schema.NewPrimitiveNode("health", "u2b")},
//		{Node: schema.NewPrimitiveNode("name", "cstr")},
//	})
//	if err != nil {
//		// handle invalid schema
//	}
//
//	encoded, err := player.Encode(map[string]any{
//		"level":  uint64(12),
//		"health": uint64(2200),
//		"name":   "Aretha",
//	})
//
//	decoded, bytesize, err := player.Decode(encoded, 0)
//
// decode(encode(v)) reproduces v exactly, and encode(decode(b)) reproduces
// b byte-for-byte, over any well-formed schema and input — the engine's
// central correctness property.
package schemacodec
