// Package hash provides the hashing primitives behind the type
// registry's structural fingerprinting (spec §4.4): ID hashes a schema
// node's key/name/type-name strings, and Mix folds per-node hashes
// together into a single structural fingerprint for an entire
// description tree, in document order.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of data. registry.Fingerprint uses it to hash
// a node description's key, name, type-name, head-type, and enum
// entries before folding children in with Mix.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Mix folds b into a with a cheap, order-sensitive combiner (rotate and
// xor). It need not be cryptographically strong, only sensitive to the
// order children are folded in, so that swapping two children of a
// record or tuple node changes the resulting fingerprint.
func Mix(a, b uint64) uint64 {
	a = a<<7 | a>>57
	return a ^ b
}
