package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTupleNode_RoundTrip(t *testing.T) {
	tup := NewTupleNode("point", []Node{
		NewPrimitiveNode("", "i2b"),
		NewPrimitiveNode("", "i2b"),
	})

	values := []any{int64(-10), int64(20)}
	encoded, err := tup.Encode(values)
	require.NoError(t, err)

	decoded, size, err := tup.Decode(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), size)
	assert.Equal(t, values, decoded)
}

func TestTupleNode_LengthMismatchErrors(t *testing.T) {
	tup := NewTupleNode("pair", []Node{
		NewPrimitiveNode("", "u1"),
		NewPrimitiveNode("", "u1"),
	})

	_, err := tup.Encode([]any{uint64(1)})
	require.Error(t, err)
}
