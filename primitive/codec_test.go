package primitive

import (
	"errors"
	"testing"

	"github.com/bytetree/schemacodec/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTripScalars(t *testing.T) {
	cases := []struct {
		name  string
		typ   string
		value any
	}{
		{"u1", "u1", uint64(250)},
		{"u1c clamps but round-trips its clamped value", "u1c", uint64(200)},
		{"u2l", "u2l", uint64(60000)},
		{"u2b", "u2b", uint64(60000)},
		{"u4l", "u4l", uint64(4000000000)},
		{"u8b", "u8b", uint64(18000000000000000000)},
		{"i1", "i1", int64(-100)},
		{"i2b", "i2b", int64(-2822)},
		{"i4l", "i4l", int64(-70000)},
		{"i8b", "i8b", int64(-9000000000000000000)},
		{"f4l", "f4l", float64(float32(3.5))},
		{"f8b", "f8b", float64(-2.25)},
		{"bool true", "bool", true},
		{"bool false", "bool", false},
		{"str", "str", "hello"},
		{"bytes", "bytes", []byte{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Encode(tc.typ, tc.value)
			require.NoError(t, err)

			var args []int
			switch tc.value.(type) {
			case string, []byte:
				args = []int{len(encoded)}
			}

			decoded, n, err := Decode(tc.typ, encoded, 0, args...)
			require.NoError(t, err)
			assert.Equal(t, len(encoded), n)
			assert.EqualValues(t, tc.value, decoded)
		})
	}
}

func TestEncodeDecode_CStr(t *testing.T) {
	cases := []string{"", "creeper", "héllo"}

	for _, s := range cases {
		encoded, err := Encode("cstr", s)
		require.NoError(t, err)
		assert.Equal(t, []byte(s), encoded[:len(encoded)-1])
		assert.Equal(t, byte(0x00), encoded[len(encoded)-1])

		decoded, n, err := Decode("cstr", encoded, 0)
		require.NoError(t, err)
		assert.Equal(t, s, decoded)
		assert.Equal(t, len(encoded), n)
	}
}

func TestEncodeCStr_RejectsInteriorNUL(t *testing.T) {
	_, err := Encode("cstr", "a\x00b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInteriorNUL))
}

func TestDecodeCStr_UnterminatedIsBufferUnderflow(t *testing.T) {
	_, _, err := Decode("cstr", []byte("no terminator"), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrBufferUnderflow))
}

func TestUvarint_WorkedExamples(t *testing.T) {
	cases := []struct {
		value   uint64
		encoded []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x81, 0x00}},
		{16383, []byte{0xFF, 0x7F}},
		{16384, []byte{0x81, 0x80, 0x00}},
	}

	for _, tc := range cases {
		got := EncodeUvarint(tc.value)
		assert.Equal(t, tc.encoded, got)

		decoded, n, err := DecodeUvarint(tc.encoded, 0)
		require.NoError(t, err)
		assert.Equal(t, tc.value, decoded)
		assert.Equal(t, len(tc.encoded), n)
	}
}

func TestSvarint_BoundaryValues(t *testing.T) {
	values := []int64{0, 1, -1, 63, -63, 64, -64, 8191, -8191, 8192, -8192, 2147483647, -2147483647}

	for _, v := range values {
		encoded := EncodeSvarint(v)
		decoded, n, err := DecodeSvarint(encoded, 0)
		require.NoError(t, err)
		assert.Equal(t, len(encoded), n)
		assert.Equal(t, v, decoded)
	}
}

func TestSvarint_64And8192WorkedExamples(t *testing.T) {
	assert.Equal(t, []byte{0x80, 0x01}, EncodeSvarint(64))
	assert.Equal(t, []byte{0x80, 0x81, 0x00}, EncodeSvarint(8192))
}

func TestArray_IntSequence_WorkedExample(t *testing.T) {
	cstrBytes, err := Encode("cstr", "creeper")
	require.NoError(t, err)

	arrBytes, err := Encode("i2b[]", []int64{-2822, 992, 3})
	require.NoError(t, err)

	full := append(append([]byte{}, cstrBytes...), arrBytes...)
	expected := []byte{0x63, 0x72, 0x65, 0x65, 0x70, 0x65, 0x72, 0x00, 0xF4, 0xFA, 0x03, 0xE0, 0x00, 0x03}
	assert.Equal(t, expected, full)

	s, n, err := Decode("cstr", full, 0)
	require.NoError(t, err)
	assert.Equal(t, "creeper", s)

	arr, _, err := Decode("i2b[]", full, n, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{-2822, 992, 3}, arr)
}

func TestArray_DecodeUntilExhausted(t *testing.T) {
	encoded, err := Encode("u1[]", []uint64{1, 2, 3, 4})
	require.NoError(t, err)

	decoded, n, err := Decode("u1[]", encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
	assert.Equal(t, []uint64{1, 2, 3, 4}, decoded)
}

func TestArray_FloatSequence_FixedCount(t *testing.T) {
	encoded, err := Encode("f8b[]", []float64{1.5, -2.25, 0, 3.125})
	require.NoError(t, err)

	decoded, n, err := Decode("f8b[]", encoded, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
	assert.Equal(t, []float64{1.5, -2.25, 0, 3.125}, decoded)
}

func TestArray_SignedSequence_FixedCount(t *testing.T) {
	encoded, err := Encode("i4l[]", []int64{-1, 2, -3})
	require.NoError(t, err)

	decoded, n, err := Decode("i4l[]", encoded, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
	assert.Equal(t, []int64{-1, 2, -3}, decoded)
}

func TestParseName_RejectsInvalidForms(t *testing.T) {
	invalid := []string{"fv", "u1l", "u2", "i4", "f2l", "u1cl", "bool[]", "xyz", "u"}

	for _, s := range invalid {
		_, err := ParseName(s)
		assert.Error(t, err, s)
		assert.True(t, errors.Is(err, errs.ErrInvalidTypeName), s)
	}
}

func TestParseName_AcceptsValidForms(t *testing.T) {
	valid := []string{"u1", "u1c", "u2l", "u2b", "u4l", "u8b", "i1", "i2l", "i4b", "i8l", "uv", "iv", "f4l", "f8b", "bool", "cstr", "str", "bytes", "u2l[]", "uv[]"}

	for _, s := range valid {
		_, err := ParseName(s)
		assert.NoError(t, err, s)
	}
}
