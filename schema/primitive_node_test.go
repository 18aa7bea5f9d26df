package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveNode_RoundTrip(t *testing.T) {
	n := NewPrimitiveNode("width", "u2b")

	encoded, err := n.Encode(uint64(1080))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x38}, encoded)

	decoded, size, err := n.Decode(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1080), decoded)
	assert.Equal(t, 2, size)
}

func TestPrimitiveNode_EncodeUsesCacheWhenValueOmitted(t *testing.T) {
	n := NewPrimitiveNode("count", "u1")

	_, _, err := n.Decode([]byte{42}, 0)
	require.NoError(t, err)

	encoded, err := n.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{42}, encoded)
}

func TestPrimitiveNode_DefaultValue(t *testing.T) {
	n := NewPrimitiveNode("flag", "bool", WithDefaultValue(true))

	encoded, err := n.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, encoded)
}

func TestPrimitiveNode_MissingValueErrors(t *testing.T) {
	n := NewPrimitiveNode("id", "u4l")

	_, err := n.Encode(nil)
	require.Error(t, err)
}

func TestPrimitiveNode_StrUsesDefaultArgs(t *testing.T) {
	n := NewPrimitiveNode("tag", "str", WithDefaultArgs(4))

	decoded, size, err := n.Decode([]byte("IHDRtrailing"), 0)
	require.NoError(t, err)
	assert.Equal(t, "IHDR", decoded)
	assert.Equal(t, 4, size)
}
