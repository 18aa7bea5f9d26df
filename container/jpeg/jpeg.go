// Package jpeg implements the JPEG segment stream client named in spec
// §8 scenario 4: a sequence of segments, each a 2-byte marker optionally
// followed by a length-prefixed data block, with the entropy-coded span
// following a SOS segment represented as a synthetic "ECS" segment with
// no framing of its own.
//
// Grounded on blob/numeric_blob_set.go's pattern of a driven section
// sequence, generalized here with a custom schema.ArrayNode step
// function (spec Design Notes: "a per-segment post-decode callback to
// append synthetic entries or decide termination").
package jpeg

import (
	"fmt"
	"strconv"

	"github.com/bytetree/schemacodec/errs"
	"github.com/bytetree/schemacodec/primitive"
	"github.com/bytetree/schemacodec/schema"
)

const (
	markerSOI = 0xD8
	markerEOI = 0xD9
	markerSOS = 0xDA

	// ecsMarker is the implementation-defined tag for the synthetic
	// entropy-coded-span segment (spec §8 scenario 4).
	ecsMarker = "ECS"
)

// segmentNode decodes and encodes one JPEG segment. SOI/EOI carry no
// length or data; every other marker is followed by a big-endian 2-byte
// length (inclusive of those two bytes) and length-2 bytes of data.
type segmentNode struct{}

func (segmentNode) Kind() schema.Kind { return schema.KindRecord }
func (segmentNode) Name() string      { return "segment" }

func (segmentNode) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	if offset+2 > len(buf) {
		return nil, 0, errs.ErrBufferUnderflow
	}
	if buf[offset] != 0xFF {
		return nil, 0, wrapf(errs.ErrInvalidDescription, "segment at offset %d does not start with 0xFF", offset)
	}

	tag := buf[offset+1]
	marker := markerName(tag)

	if tag == markerSOI || tag == markerEOI {
		return map[string]any{"marker": marker, "data": []byte{}}, 2, nil
	}

	length, _, err := primitive.Decode("u2b", buf, offset+2)
	if err != nil {
		return nil, 0, errs.WithPath(marker, err)
	}

	n := int(length.(uint64))
	if n < 2 {
		return nil, 0, errs.WithPath(marker, wrapf(errs.ErrLengthMismatch, "segment length %d is less than 2", n))
	}
	if offset+2+n > len(buf) {
		return nil, 0, errs.WithPath(marker, errs.ErrBufferUnderflow)
	}

	data := append([]byte{}, buf[offset+4:offset+2+n]...)

	return map[string]any{"marker": marker, "data": data}, 2 + n, nil
}

func (segmentNode) Encode(value any, args ...int) ([]byte, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, wrapf(errs.ErrUnrepresentable, "expected map[string]any, got %T", value)
	}

	marker, _ := m["marker"].(string)
	if marker == ecsMarker {
		data, _ := m["data"].([]byte)

		return append([]byte{}, data...), nil
	}

	tag, err := markerTag(marker)
	if err != nil {
		return nil, err
	}

	if tag == markerSOI || tag == markerEOI {
		return []byte{0xFF, tag}, nil
	}

	data, _ := m["data"].([]byte)
	lengthBytes, err := primitive.Encode("u2b", uint64(len(data)+2))
	if err != nil {
		return nil, err
	}

	out := []byte{0xFF, tag}
	out = append(out, lengthBytes...)
	out = append(out, data...)

	return out, nil
}

// entropySpanEnd returns the offset of the first 0xFF byte starting at
// offset that is not immediately followed by 0x00 (GLOSSARY "Entropy-
// coded span"), or len(buf) if none is found.
func entropySpanEnd(buf []byte, offset int) int {
	i := offset
	for i < len(buf)-1 {
		if buf[i] == 0xFF && buf[i+1] != 0x00 {
			return i
		}

		i++
	}

	return len(buf)
}

var stream = schema.NewArrayNode("segments", segmentNode{})

func init() {
	stream.WithStepFunc(func(buf []byte, offset int, decodedSoFar []any) (any, int, bool, error) {
		if len(decodedSoFar) > 0 {
			last := decodedSoFar[len(decodedSoFar)-1].(map[string]any)
			if last["marker"] == markerName(markerSOS) {
				end := entropySpanEnd(buf, offset)
				span := append([]byte{}, buf[offset:end]...)

				return map[string]any{"marker": ecsMarker, "data": span}, end - offset, false, nil
			}
		}

		value, n, err := segmentNode{}.Decode(buf, offset)
		if err != nil {
			return nil, 0, false, err
		}

		stop := value.(map[string]any)["marker"] == markerName(markerEOI)

		return value, n, stop, nil
	})
}

// Decode parses a full JPEG segment stream (spec §8 scenario 4).
func Decode(data []byte) ([]any, error) {
	segments, _, err := stream.Decode(data, 0)
	if err != nil {
		return nil, err
	}

	return segments.([]any), nil
}

// Encode re-emits segments as a full JPEG byte stream.
func Encode(segments []any) ([]byte, error) {
	return stream.Encode(segments)
}

func markerName(tag byte) string {
	return fmt.Sprintf("FF%02X", tag)
}

func markerTag(name string) (byte, error) {
	if len(name) != 4 || name[:2] != "FF" {
		return 0, wrapf(errs.ErrInvalidDescription, "malformed marker %q", name)
	}

	tag, err := strconv.ParseUint(name[2:], 16, 8)
	if err != nil {
		return 0, wrapf(errs.ErrInvalidDescription, "malformed marker %q", name)
	}

	return byte(tag), nil
}
