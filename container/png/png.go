// Package png implements the PNG chunk stream client named in spec §8
// scenario 3: an 8-byte signature followed by a sequence of
// {length, type, data, crc} chunks, terminated at the chunk whose type
// is "IEND", with "IHDR"'s data further decoded as a sub-record.
//
// Grounded on blob/numeric_blob_set.go's pattern of a fixed preamble
// followed by a driven sequence of sections.
package png

import (
	"bytes"

	"github.com/bytetree/schemacodec/container"
	"github.com/bytetree/schemacodec/errs"
	"github.com/bytetree/schemacodec/schema"
)

// Signature is the fixed 8-byte PNG preamble.
var Signature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

var ihdrSchema = mustRecord("IHDR", []schema.Field{
	{Node: schema.NewPrimitiveNode("width", "i4b")},
	{Node: schema.NewPrimitiveNode("height", "i4b")},
	{Node: schema.NewPrimitiveNode("bitdepth", "u1")},
	{Node: schema.NewPrimitiveNode("colortype", "u1")},
	{Node: schema.NewPrimitiveNode("compression", "u1")},
	{Node: schema.NewPrimitiveNode("filter", "u1")},
	{Node: schema.NewPrimitiveNode("interlace", "u1")},
})

var chunkRecord = mustRecord("chunk", []schema.Field{
	{Node: schema.NewPrimitiveNode("length", "u4b")},
	{Node: schema.NewPrimitiveNode("type", "str", schema.WithDefaultArgs(4))},
	{
		Node: schema.NewPrimitiveNode("data", "bytes"),
		ArgsFunc: func(decoded map[string]any) []int {
			return []int{int(decoded["length"].(uint64))}
		},
	},
	{Node: schema.NewPrimitiveNode("crc", "u4b")},
})

func mustRecord(name string, fields []schema.Field) *schema.RecordNode {
	n, err := schema.NewRecordNode(name, fields)
	if err != nil {
		panic(err)
	}

	return n
}

// chunkNode wraps chunkRecord with the IHDR sub-decode transformation
// (spec §8 scenario 3 "recognise a chunk with type == IHDR and further
// decode its data as a sub-record"). Encode reverses the transformation
// exactly, so round-tripping a decoded chunk list is lossless.
type chunkNode struct{}

func (chunkNode) Kind() schema.Kind { return schema.KindRecord }
func (chunkNode) Name() string      { return "chunk" }

func (chunkNode) Encode(value any, args ...int) ([]byte, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, errs.WithPath("chunk", wrapf(errs.ErrUnrepresentable, "expected map[string]any, got %T", value))
	}

	if m["type"] == "IHDR" {
		if sub, ok := m["data"].(map[string]any); ok {
			raw, err := ihdrSchema.Encode(sub)
			if err != nil {
				return nil, errs.WithPath("chunk.data", err)
			}

			m = container.CloneStringMap(m)
			m["data"] = raw
			m["length"] = uint64(len(raw))
		}
	}

	return chunkRecord.Encode(m)
}

func (chunkNode) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	decoded, n, err := chunkRecord.Decode(buf, offset)
	if err != nil {
		return nil, 0, err
	}

	m := decoded.(map[string]any)
	if m["type"] == "IHDR" {
		raw := m["data"].([]byte)

		sub, _, err := ihdrSchema.Decode(raw, 0)
		if err != nil {
			return nil, 0, errs.WithPath("chunk.data", err)
		}

		m = container.CloneStringMap(m)
		m["data"] = sub
	}

	return m, n, nil
}

var chunkStream = schema.NewArrayNode("chunks", chunkNode{})

func init() {
	chunkStream.WithStepFunc(func(buf []byte, offset int, decodedSoFar []any) (any, int, bool, error) {
		value, n, err := chunkNode{}.Decode(buf, offset)
		if err != nil {
			return nil, 0, false, err
		}

		m := value.(map[string]any)
		stop := m["type"] == "IEND"

		return value, n, stop, nil
	})
}

// Stream is a decoded PNG's chunk sequence up to and including IEND. The
// fixed 8-byte signature is not stored; Encode writes Signature itself.
type Stream struct {
	Chunks []any
}

// Decode parses a full PNG byte stream (spec §8 scenario 3).
func Decode(data []byte) (Stream, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature) {
		return Stream{}, errs.WithPath("signature", errs.ErrInvalidDescription)
	}

	chunks, _, err := chunkStream.Decode(data, len(Signature))
	if err != nil {
		return Stream{}, err
	}

	return Stream{Chunks: chunks.([]any)}, nil
}

// Encode re-emits s as a full PNG byte stream, signature included.
func Encode(s Stream) ([]byte, error) {
	body, err := chunkStream.Encode(s.Chunks)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(Signature)+len(body))
	out = append(out, Signature...)
	out = append(out, body...)

	return out, nil
}
