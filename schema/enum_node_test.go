package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumNode_MatchWithDefaultFallback(t *testing.T) {
	n := NewEnumNode("marker",
		[]EnumEntry{
			{Value: "A", Literal: []byte{0xFF, 0xC0}},
			{Value: "B", Literal: []byte{0xFF, 0xC1}},
		},
		NewPrimitiveNode("marker", "u1"),
	)

	decodedA, size, err := n.Decode([]byte{0xFF, 0xC0}, 0)
	require.NoError(t, err)
	assert.Equal(t, "A", decodedA)
	assert.Equal(t, 2, size)

	decodedDefault, size, err := n.Decode([]byte{0x42}, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 0x42, decodedDefault)
	assert.Equal(t, 1, size)
}

func TestEnumNode_EncodeMatchesLiteralBeforeDefault(t *testing.T) {
	n := NewEnumNode("marker",
		[]EnumEntry{{Value: "A", Literal: []byte{0xFF, 0xC0}}},
		NewPrimitiveNode("marker", "u1"),
	)

	encoded, err := n.Encode("A")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xC0}, encoded)

	encodedDefault, err := n.Encode(uint64(0x55))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x55}, encodedDefault)
}

func TestEnumNode_PrecedenceAmongSharedPrefixEntries(t *testing.T) {
	n := NewEnumNode("marker", []EnumEntry{
		{Value: "long", Literal: []byte{0xFF, 0xC0, 0x01}},
		{Value: "short", Literal: []byte{0xFF, 0xC0}},
	}, nil)

	decoded, size, err := n.Decode([]byte{0xFF, 0xC0, 0x01}, 0)
	require.NoError(t, err)
	assert.Equal(t, "long", decoded)
	assert.Equal(t, 3, size)
}

func TestEnumNode_FallthroughWithoutDefaultErrors(t *testing.T) {
	n := NewEnumNode("marker", []EnumEntry{{Value: "A", Literal: []byte{0xAA}}}, nil)

	_, _, err := n.Decode([]byte{0x00}, 0)
	require.Error(t, err)

	_, err = n.Encode("unmatched")
	require.Error(t, err)
}
