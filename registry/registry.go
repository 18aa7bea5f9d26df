// Package registry implements the process-wide type registry and
// reification described in spec §4.4: each schema node kind registers a
// constructor under a string key, and Make rebuilds a live schema.Node
// tree from a plain Description, children first.
//
// Grounded on the "self-registering, string-keyed constructor table"
// pattern implicit in the teacher's flag-based type dispatch
// (section/const.go's format.TypeRaw/TypeDelta/TypeGorilla byte tags
// selecting an encoder/decoder implementation) and on
// internal/collision/tracker.go's hash-keyed map of names, generalized
// here from a closed set of numeric encodings to an open, registrable
// set of node kinds.
package registry

import (
	"sync"

	"github.com/bytetree/schemacodec/errs"
	"github.com/bytetree/schemacodec/internal/hash"
	"github.com/bytetree/schemacodec/schema"
)

// Constructor rebuilds a live schema.Node from its plain description.
// Composite constructors are expected to call Make on each child
// description themselves (reification is "children first").
type Constructor func(Description) (schema.Node, error)

var (
	mu    sync.RWMutex
	ctors = make(map[string]Constructor)
)

// Register installs ctor under key. Registering the same key twice is an
// error (spec §5: "a one-time initialisation per type-name"; after that
// the registry is read-only).
func Register(key string, ctor Constructor) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := ctors[key]; exists {
		return wrapf(errs.ErrAlreadyRegistered, "%q", key)
	}

	ctors[key] = ctor

	return nil
}

// MustRegister is Register but panics on error; intended for package
// init() calls where a collision is a programming error, not a runtime
// condition.
func MustRegister(key string, ctor Constructor) {
	if err := Register(key, ctor); err != nil {
		panic(err)
	}
}

// Make looks up desc's constructor by key (see Description.key) and
// invokes it.
func Make(desc Description) (schema.Node, error) {
	mu.RLock()
	ctor, ok := ctors[desc.key()]
	mu.RUnlock()

	if !ok {
		return nil, wrapf(errs.ErrUnknownType, "%q", desc.key())
	}

	return ctor(desc)
}

// MakeChildren reifies each of desc.Children in order; a helper for
// composite constructors.
func MakeChildren(children []Description) ([]schema.Node, error) {
	out := make([]schema.Node, len(children))

	for i, c := range children {
		n, err := Make(c)
		if err != nil {
			return nil, errs.WithPath(indexSegment(i), err)
		}

		out[i] = n
	}

	return out, nil
}

// Fingerprint computes a structural hash of desc, suitable for asserting
// that two independently reified trees are identical. It folds the
// xxhash of each node's key/name/type-name/head-type/entries together
// with its children's fingerprints, in order.
func Fingerprint(desc Description) uint64 {
	h := hash.ID(desc.key() + "\x00" + desc.Name + "\x00" + desc.TypeName + "\x00" + desc.HeadType)

	for e := range desc.AllEntries() {
		h = hash.Mix(h, hash.ID(string(e.Literal)))
	}

	for _, c := range desc.Children {
		h = hash.Mix(h, Fingerprint(c))
	}

	return h
}
