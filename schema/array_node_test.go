package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayNode_RoundTrip_FixedCount(t *testing.T) {
	arr := NewArrayNode("samples", NewPrimitiveNode("", "i2b"))

	values := []any{int64(-2822), int64(992), int64(3)}
	encoded, err := arr.Encode(values)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xF4, 0xFA, 0x03, 0xE0, 0x00, 0x03}, encoded)

	decoded, size, err := arr.Decode(encoded, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), size)
	assert.Equal(t, values, decoded)
}

func TestArrayNode_DecodeUntilExhausted(t *testing.T) {
	arr := NewArrayNode("bytesArr", NewPrimitiveNode("", "u1"))

	encoded, err := arr.Encode([]any{uint64(1), uint64(2), uint64(3)})
	require.NoError(t, err)

	decoded, size, err := arr.Decode(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), size)
	assert.Equal(t, []any{uint64(1), uint64(2), uint64(3)}, decoded)
}

func TestArrayNode_StepFuncStopsEarly(t *testing.T) {
	arr := NewArrayNode("chunks", NewPrimitiveNode("", "u1"))
	arr.WithStepFunc(func(buf []byte, offset int, decodedSoFar []any) (any, int, bool, error) {
		v := buf[offset]

		return v, 1, v == 0xFF, nil
	})

	buf := []byte{1, 2, 0xFF, 9, 9}
	decoded, size, err := arr.Decode(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, size)
	assert.Equal(t, []any{uint8(1), uint8(2), uint8(0xFF)}, decoded)
}

func TestArrayNode_EncodeWindow(t *testing.T) {
	arr := NewArrayNode("xs", NewPrimitiveNode("", "u1"))

	full, err := arr.Encode([]any{uint64(10), uint64(20), uint64(30)})
	require.NoError(t, err)

	partial, err := arr.Encode([]any{uint64(10), uint64(20), uint64(30)}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, full[1:], partial)
}

func TestArrayNode_All_MatchesDecode(t *testing.T) {
	arr := NewArrayNode("samples", NewPrimitiveNode("", "u1"))

	encoded, err := arr.Encode([]any{uint64(1), uint64(2), uint64(3)})
	require.NoError(t, err)

	var viaAll []any
	for v := range arr.All(encoded, 0) {
		viaAll = append(viaAll, v)
	}

	decoded, _, err := arr.Decode(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, decoded, viaAll)
}

func TestArrayNode_All_StopsEarlyOnBreak(t *testing.T) {
	arr := NewArrayNode("samples", NewPrimitiveNode("", "u1"))

	encoded, err := arr.Encode([]any{uint64(1), uint64(2), uint64(3), uint64(4)})
	require.NoError(t, err)

	var seen []any
	for v := range arr.All(encoded, 0) {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []any{uint64(1), uint64(2)}, seen)
}

func TestArrayNode_All_HonorsStepFunc(t *testing.T) {
	arr := NewArrayNode("chunks", NewPrimitiveNode("", "u1"))
	arr.WithStepFunc(func(buf []byte, offset int, decodedSoFar []any) (any, int, bool, error) {
		v := buf[offset]

		return v, 1, v == 0xFF, nil
	})

	buf := []byte{1, 2, 0xFF, 9, 9}

	var seen []any
	for v := range arr.All(buf, 0) {
		seen = append(seen, v)
	}

	assert.Equal(t, []any{uint8(1), uint8(2), uint8(0xFF)}, seen)
}
