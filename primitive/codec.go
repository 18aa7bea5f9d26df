package primitive

import "github.com/bytetree/schemacodec/errs"

// Encode dispatches to the primitive encoder named by typeName.
//
// Encode takes no auxiliary args: fixed-width numerics, bool and cstr
// need none, and str/bytes/array forms write exactly len(value) bytes or
// elements.
func Encode(typeName string, value any) ([]byte, error) {
	n, err := ParseName(typeName)
	if err != nil {
		return nil, err
	}

	if n.IsArray {
		return encodeArray(n, value)
	}

	return encodeScalar(n, value)
}

// Decode dispatches to the primitive decoder named by typeName.
//
// args[0] supplies the byte length for str and bytes, and the element
// count for array forms. Its absence is an error for str and bytes; an
// array form without it decodes until buf is exhausted.
func Decode(typeName string, buf []byte, offset int, args ...int) (any, int, error) {
	n, err := ParseName(typeName)
	if err != nil {
		return nil, 0, err
	}

	if n.IsArray {
		return decodeArray(n, buf, offset, args...)
	}

	return decodeScalar(n, buf, offset, args...)
}

func encodeScalar(n Name, value any) ([]byte, error) {
	switch n.NonNum {
	case nonNumericBool:
		v, ok := value.(bool)
		if !ok {
			return nil, wrapf(errs.ErrUnrepresentable, "bool requires a bool value, got %T", value)
		}

		return EncodeBool(v), nil
	case nonNumericCStr:
		v, ok := value.(string)
		if !ok {
			return nil, wrapf(errs.ErrUnrepresentable, "cstr requires a string value, got %T", value)
		}

		return EncodeCStr(v)
	case nonNumericStr:
		v, ok := value.(string)
		if !ok {
			return nil, wrapf(errs.ErrUnrepresentable, "str requires a string value, got %T", value)
		}

		return EncodeStr(v), nil
	case nonNumericBytes:
		v, ok := value.([]byte)
		if !ok {
			return nil, wrapf(errs.ErrUnrepresentable, "bytes requires a []byte value, got %T", value)
		}

		return EncodeBytes(v), nil
	}

	switch n.Format {
	case FormatUnsigned:
		if n.Width == WidthVar {
			v, err := asUint64(value)
			if err != nil {
				return nil, err
			}

			return EncodeUvarint(v), nil
		}

		v, err := asUint64(value)
		if err != nil {
			if n.Endian == EndianClamp {
				iv, ierr := asInt64(value)
				if ierr != nil {
					return nil, err
				}

				return encodeUnsigned(n, clampToU8(iv))
			}

			return nil, err
		}

		return encodeUnsigned(n, v)
	case FormatSigned:
		v, err := asInt64(value)
		if err != nil {
			return nil, err
		}

		if n.Width == WidthVar {
			return EncodeSvarint(v), nil
		}

		return encodeSigned(n, v)
	case FormatFloat:
		v, err := asFloat64(value)
		if err != nil {
			return nil, err
		}

		return encodeFloat(n, v)
	}

	return nil, wrapf(errs.ErrUnknownType, "%q", n.raw)
}

func decodeScalar(n Name, buf []byte, offset int, args ...int) (any, int, error) {
	switch n.NonNum {
	case nonNumericBool:
		return DecodeBool(buf, offset)
	case nonNumericCStr:
		return DecodeCStr(buf, offset)
	case nonNumericStr:
		length, err := requiredLength(args)
		if err != nil {
			return nil, 0, err
		}

		return DecodeStr(buf, offset, length)
	case nonNumericBytes:
		length, err := requiredLength(args)
		if err != nil {
			return nil, 0, err
		}

		return DecodeBytes(buf, offset, length)
	}

	switch n.Format {
	case FormatUnsigned:
		if n.Width == WidthVar {
			return DecodeUvarint(buf, offset)
		}

		return decodeUnsigned(n, buf, offset)
	case FormatSigned:
		if n.Width == WidthVar {
			return DecodeSvarint(buf, offset)
		}

		return decodeSigned(n, buf, offset)
	case FormatFloat:
		return decodeFloat(n, buf, offset)
	}

	return nil, 0, wrapf(errs.ErrUnknownType, "%q", n.raw)
}

func requiredLength(args []int) (int, error) {
	if len(args) == 0 {
		return 0, wrapf(errs.ErrLengthMismatch, "length argument is required")
	}

	return args[0], nil
}

func asUint64(value any) (uint64, error) {
	switch v := value.(type) {
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint:
		return uint64(v), nil
	case int:
		if v < 0 {
			return 0, wrapf(errs.ErrUnrepresentable, "negative value %d given to unsigned type", v)
		}

		return uint64(v), nil
	case int64:
		if v < 0 {
			return 0, wrapf(errs.ErrUnrepresentable, "negative value %d given to unsigned type", v)
		}

		return uint64(v), nil
	default:
		return 0, wrapf(errs.ErrUnrepresentable, "expected an unsigned integer, got %T", value)
	}
}

func asInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	default:
		return 0, wrapf(errs.ErrUnrepresentable, "expected a signed integer, got %T", value)
	}
}

func asFloat64(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	default:
		return 0, wrapf(errs.ErrUnrepresentable, "expected a float, got %T", value)
	}
}
