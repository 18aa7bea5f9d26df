package primitive

import (
	"unicode/utf8"

	"github.com/bytetree/schemacodec/errs"
)

// EncodeBool encodes a boolean per spec §6.2: false -> 0x00, true -> 0x01.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{0x01}
	}

	return []byte{0x00}
}

// DecodeBool decodes a boolean: 0x00 -> false, anything else -> true.
func DecodeBool(buf []byte, offset int) (bool, int, error) {
	if offset < 0 || offset >= len(buf) {
		return false, 0, errs.ErrBufferUnderflow
	}

	return buf[offset] != 0x00, 1, nil
}

// EncodeCStr encodes s as UTF-8 bytes followed by a single 0x00 terminator.
// s must not contain an interior 0x00 byte.
func EncodeCStr(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0x00 {
			return nil, wrapf(errs.ErrInteriorNUL, "at byte %d of %q", i, s)
		}
	}

	out := make([]byte, len(s)+1)
	copy(out, s)
	out[len(s)] = 0x00

	return out, nil
}

// DecodeCStr decodes a NUL-terminated UTF-8 string starting at offset. The
// returned bytesize includes the terminator.
func DecodeCStr(buf []byte, offset int) (string, int, error) {
	if offset < 0 || offset > len(buf) {
		return "", 0, errs.ErrBufferUnderflow
	}

	end := offset
	for end < len(buf) && buf[end] != 0x00 {
		end++
	}

	if end >= len(buf) {
		return "", 0, wrapf(errs.ErrBufferUnderflow, "unterminated cstr at offset %d", offset)
	}

	if !utf8.Valid(buf[offset:end]) {
		return "", 0, errs.ErrMalformedUTF8
	}

	return string(buf[offset:end]), end - offset + 1, nil
}

// EncodeStr encodes s as raw UTF-8 bytes with no framing; its length is
// recovered externally (head-primitive or a fixed schema length).
func EncodeStr(s string) []byte {
	return []byte(s)
}

// DecodeStr decodes length bytes starting at offset as a UTF-8 string.
func DecodeStr(buf []byte, offset, length int) (string, int, error) {
	if length < 0 {
		return "", 0, wrapf(errs.ErrLengthMismatch, "negative length %d", length)
	}

	if offset < 0 || offset+length > len(buf) {
		return "", 0, errs.ErrBufferUnderflow
	}

	raw := buf[offset : offset+length]
	if !utf8.Valid(raw) {
		return "", 0, errs.ErrMalformedUTF8
	}

	return string(raw), length, nil
}

// EncodeBytes returns a copy of data; encode writes exactly len(data) bytes.
func EncodeBytes(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	return out
}

// DecodeBytes decodes length opaque bytes starting at offset.
func DecodeBytes(buf []byte, offset, length int) ([]byte, int, error) {
	if length < 0 {
		return nil, 0, wrapf(errs.ErrLengthMismatch, "negative length %d", length)
	}

	if offset < 0 || offset+length > len(buf) {
		return nil, 0, errs.ErrBufferUnderflow
	}

	out := make([]byte, length)
	copy(out, buf[offset:offset+length])

	return out, length, nil
}
