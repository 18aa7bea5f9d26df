package primitive

import (
	"math"

	"github.com/bytetree/schemacodec/endian"
	"github.com/bytetree/schemacodec/errs"
)

// engineFor resolves a parsed Endian suffix to its EndianEngine via
// endian.EngineForSuffix. Neither EndianNone (width 1, no suffix) nor
// EndianClamp (u1c) is 'b', so both correctly fall through to
// little-endian, matching the width-1 encoders/decoders that never
// consult an engine at all.
func engineFor(e Endian) endian.EndianEngine {
	return endian.EngineForSuffix(byte(e))
}

// encodeUnsigned encodes an unsigned integer of the given width, applying
// u1c clamping when requested.
func encodeUnsigned(n Name, value uint64) ([]byte, error) {
	switch n.Width {
	case Width1:
		if n.Endian != EndianClamp && value > math.MaxUint8 {
			return nil, wrapf(errs.ErrUnrepresentable, "value %d exceeds u1 range", value)
		}

		v := value
		if n.Endian == EndianClamp {
			v = clampToU8(int64(value))
		}

		return []byte{byte(v)}, nil
	case Width2:
		if value > math.MaxUint16 {
			return nil, wrapf(errs.ErrUnrepresentable, "value %d exceeds u2 range", value)
		}
		buf := make([]byte, 2)
		engineFor(n.Endian).PutUint16(buf, uint16(value))

		return buf, nil
	case Width4:
		if value > math.MaxUint32 {
			return nil, wrapf(errs.ErrUnrepresentable, "value %d exceeds u4 range", value)
		}
		buf := make([]byte, 4)
		engineFor(n.Endian).PutUint32(buf, uint32(value))

		return buf, nil
	case Width8:
		buf := make([]byte, 8)
		engineFor(n.Endian).PutUint64(buf, value)

		return buf, nil
	default:
		return nil, wrapf(errs.ErrInvalidTypeName, "%q is not a fixed-width unsigned type", n.raw)
	}
}

// clampToU8 clamps a signed input value into the 0..255 range, as declared
// for u1c encode (spec §6.1: "u1 may take the c suffix to denote
// clamped-on-encode-from-signed inputs").
func clampToU8(v int64) uint64 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint8 {
		return math.MaxUint8
	}

	return uint64(v)
}

func decodeUnsigned(n Name, buf []byte, offset int) (uint64, int, error) {
	width := int(n.Width)
	if width == 0 {
		width = 1 // WidthVar is decoded by DecodeUvarint, not here; bound-check one byte
	}

	if offset < 0 || offset+width > len(buf) {
		return 0, 0, errs.ErrBufferUnderflow
	}

	eng := engineFor(n.Endian)
	switch n.Width {
	case Width1:
		return uint64(buf[offset]), 1, nil
	case Width2:
		return uint64(eng.Uint16(buf[offset : offset+2])), 2, nil
	case Width4:
		return uint64(eng.Uint32(buf[offset : offset+4])), 4, nil
	case Width8:
		return eng.Uint64(buf[offset : offset+8]), 8, nil
	default:
		return 0, 0, wrapf(errs.ErrInvalidTypeName, "%q is not a fixed-width unsigned type", n.raw)
	}
}

func encodeSigned(n Name, value int64) ([]byte, error) {
	switch n.Width {
	case Width1:
		if value < math.MinInt8 || value > math.MaxInt8 {
			return nil, wrapf(errs.ErrUnrepresentable, "value %d exceeds i1 range", value)
		}

		return []byte{byte(int8(value))}, nil
	case Width2:
		if value < math.MinInt16 || value > math.MaxInt16 {
			return nil, wrapf(errs.ErrUnrepresentable, "value %d exceeds i2 range", value)
		}
		buf := make([]byte, 2)
		engineFor(n.Endian).PutUint16(buf, uint16(int16(value)))

		return buf, nil
	case Width4:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return nil, wrapf(errs.ErrUnrepresentable, "value %d exceeds i4 range", value)
		}
		buf := make([]byte, 4)
		engineFor(n.Endian).PutUint32(buf, uint32(int32(value)))

		return buf, nil
	case Width8:
		buf := make([]byte, 8)
		engineFor(n.Endian).PutUint64(buf, uint64(value))

		return buf, nil
	default:
		return nil, wrapf(errs.ErrInvalidTypeName, "%q is not a fixed-width signed type", n.raw)
	}
}

func decodeSigned(n Name, buf []byte, offset int) (int64, int, error) {
	width := int(n.Width)
	if offset < 0 || offset+width > len(buf) {
		return 0, 0, errs.ErrBufferUnderflow
	}

	eng := engineFor(n.Endian)
	switch n.Width {
	case Width1:
		return int64(int8(buf[offset])), 1, nil
	case Width2:
		return int64(int16(eng.Uint16(buf[offset : offset+2]))), 2, nil
	case Width4:
		return int64(int32(eng.Uint32(buf[offset : offset+4]))), 4, nil
	case Width8:
		return int64(eng.Uint64(buf[offset : offset+8])), 8, nil
	default:
		return 0, 0, wrapf(errs.ErrInvalidTypeName, "%q is not a fixed-width signed type", n.raw)
	}
}

func encodeFloat(n Name, value float64) ([]byte, error) {
	eng := engineFor(n.Endian)
	switch n.Width {
	case Width4:
		buf := make([]byte, 4)
		eng.PutUint32(buf, math.Float32bits(float32(value)))

		return buf, nil
	case Width8:
		buf := make([]byte, 8)
		eng.PutUint64(buf, math.Float64bits(value))

		return buf, nil
	default:
		return nil, wrapf(errs.ErrInvalidTypeName, "%q is not a 4/8-byte float type", n.raw)
	}
}

func decodeFloat(n Name, buf []byte, offset int) (float64, int, error) {
	width := int(n.Width)
	if offset < 0 || offset+width > len(buf) {
		return 0, 0, errs.ErrBufferUnderflow
	}

	eng := engineFor(n.Endian)
	switch n.Width {
	case Width4:
		// Decoding into a 32-bit float and widening is permitted by the
		// Design Notes for f4l/f4b.
		return float64(math.Float32frombits(eng.Uint32(buf[offset : offset+4]))), 4, nil
	case Width8:
		return math.Float64frombits(eng.Uint64(buf[offset : offset+8])), 8, nil
	default:
		return 0, 0, wrapf(errs.ErrInvalidTypeName, "%q is not a 4/8-byte float type", n.raw)
	}
}
