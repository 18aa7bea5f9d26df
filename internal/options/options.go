// Package options implements the generic functional-options plumbing
// every WithXxx constructor in this module is built on: fileio.Option
// (parse-time behavior, e.g. WithRequireFullConsumption) and any future
// registry/codec configuration follow the same Option[T]/Apply shape
// rather than hand-rolling their own config struct + bool-flag pattern.
package options

// Option represents a functional option for configuring any type T.
// This is a generic interface that can be used with any type.
type Option[T any] interface {
	apply(T) error
}

// Func is a generic functional option that wraps a function.
// It implements the Option interface for any type T.
type Func[T any] struct {
	applyFunc func(T) error
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates a new functional option from a function that can reject
// its input, e.g. a WithMaxDepth(n) that rejects a non-positive n.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply applies opts to target in order, stopping at the first error.
// fileio.ParseBuffer/ParseFile use this to build their config from a
// caller's variadic Option list before parsing begins.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError creates a functional option from a function that cannot fail,
// e.g. WithRequireFullConsumption's plain flag flip.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
