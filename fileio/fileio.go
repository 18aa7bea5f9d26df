// Package fileio implements the thin "load -> decode" / "encode ->
// download" file adapter named in spec §4.5. None of its contracts are
// load-bearing on the engine's correctness (spec §4.5: "not part of the
// core contract"); it exists only to give a schema.Node a way to reach
// actual files.
//
// Grounded on the call shape in the teacher's package-doc example
// (mebo.go, no longer present in this tree — see DESIGN.md): construct a
// decoder/encoder over a byte slice, drive it, get bytes back out.
package fileio

import (
	"os"

	"github.com/bytetree/schemacodec/errs"
	"github.com/bytetree/schemacodec/internal/options"
	"github.com/bytetree/schemacodec/schema"
)

// config holds the adapter's optional behaviors, built with the
// functional-options pattern grounded on internal/options and the
// teacher's blob/numeric_encoder_config.go.
type config struct {
	requireFullConsumption bool
}

// Option configures a ParseBuffer or ParseFile call.
type Option = options.Option[*config]

// WithRequireFullConsumption makes ParseBuffer/ParseFile return an error
// (wrapping errs.ErrLengthMismatch) when root's decode does not consume
// the entire input buffer. Lenient by default, since a root schema is
// free to describe only a prefix of a larger container.
func WithRequireFullConsumption() Option {
	return options.NoError[*config](func(c *config) {
		c.requireFullConsumption = true
	})
}

func buildConfig(opts []Option) (*config, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseBuffer invokes root's decode at offset 0 and returns the decoded
// value (spec §4.5 "parse-buffer(bytes) -> value").
func ParseBuffer(data []byte, root schema.Node, opts ...Option) (any, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	value, bytesize, err := root.Decode(data, 0)
	if err != nil {
		return nil, err
	}

	if cfg.requireFullConsumption && bytesize != len(data) {
		return nil, wrapf(errs.ErrLengthMismatch, "decode consumed %d of %d bytes", bytesize, len(data))
	}

	return value, nil
}

// EncodeObject invokes root's encode on value (spec §4.5
// "encode-object(value) -> bytes").
func EncodeObject(root schema.Node, value any) ([]byte, error) {
	return root.Encode(value)
}

// ParseFile reads path and parses it against root. Sugar over host I/O,
// not part of the core contract (spec §4.5).
func ParseFile(path string, root schema.Node, opts ...Option) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseBuffer(data, root, opts...)
}

// DownloadObject encodes value against root and writes it to path with
// the given permissions. Sugar over host I/O, not part of the core
// contract (spec §4.5).
func DownloadObject(path string, root schema.Node, value any, perm os.FileMode) error {
	data, err := EncodeObject(root, value)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, perm)
}
