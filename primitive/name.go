// Package primitive implements the bit-exact primitive codec described in
// spec §4.1, §6.1 and §6.2: fixed-width integers and floats, variable-length
// integers (VLQ), NUL-terminated and fixed-length UTF-8 strings, raw byte
// blobs, and booleans.
//
// Grounded on the teacher's encoding/numeric_raw.go (fixed-width numeric
// encode/decode driven by an endian.EndianEngine with a pooled buffer) and
// encoding/varstring.go (length-prefixed strings, a hand-rolled varint
// writer). Unlike the teacher, which hard-codes one wire format per Go
// type, this package dispatches on a runtime type-name string, per spec
// §6.1's grammar:
//
//	type    := numeric | numeric "[]" | "bool" | "cstr" | "str" | "bytes"
//	numeric := format width endian?
//	format  := "u" | "i" | "f"
//	width   := "1" | "2" | "4" | "8" | "v"
//	endian  := "l" | "b" | "c"
package primitive

import (
	"strings"

	"github.com/bytetree/schemacodec/errs"
)

// Format is the format letter of a numeric type-name.
type Format byte

const (
	FormatUnsigned Format = 'u'
	FormatSigned   Format = 'i'
	FormatFloat    Format = 'f'
)

// Width is the declared width of a numeric type-name. WidthVar denotes the
// variable-length (VLQ) encoding.
type Width byte

const (
	Width1   Width = 1
	Width2   Width = 2
	Width4   Width = 4
	Width8   Width = 8
	WidthVar Width = 0 // "v"
)

// Endian is the endianness/clamp suffix of a numeric type-name.
type Endian byte

const (
	EndianNone   Endian = 0
	EndianLittle Endian = 'l'
	EndianBig    Endian = 'b'
	EndianClamp  Endian = 'c' // u1 only: clamp a signed input to 0..255 on encode
)

// Name is a parsed, validated primitive type-name.
type Name struct {
	raw      string
	Format   Format
	Width    Width
	Endian   Endian
	IsArray  bool
	NonNum   nonNumericKind // set when raw is "bool"/"cstr"/"str"/"bytes"
}

type nonNumericKind byte

const (
	nonNumericNone nonNumericKind = iota
	nonNumericBool
	nonNumericCStr
	nonNumericStr
	nonNumericBytes
)

// String returns the original type-name string.
func (n Name) String() string { return n.raw }

// IsNumeric reports whether n names a numeric (u/i/f) primitive, scalar or
// array.
func (n Name) IsNumeric() bool { return n.NonNum == nonNumericNone }

// Scalar returns the element type-name with any "[]" array suffix removed.
func (n Name) Scalar() Name {
	if !n.IsArray {
		return n
	}
	s := n
	s.IsArray = false
	s.raw = strings.TrimSuffix(n.raw, "[]")

	return s
}

// ParseName validates a type-name string against the grammar in spec §6.1
// and returns its parsed form.
func ParseName(s string) (Name, error) {
	raw := s
	isArray := false
	body := s

	if strings.HasSuffix(s, "[]") {
		isArray = true
		body = strings.TrimSuffix(s, "[]")
	}

	switch body {
	case "bool":
		if isArray {
			return Name{}, invalidName(raw)
		}

		return Name{raw: raw, NonNum: nonNumericBool}, nil
	case "cstr":
		if isArray {
			return Name{}, invalidName(raw)
		}

		return Name{raw: raw, NonNum: nonNumericCStr}, nil
	case "str":
		if isArray {
			return Name{}, invalidName(raw)
		}

		return Name{raw: raw, NonNum: nonNumericStr}, nil
	case "bytes":
		if isArray {
			return Name{}, invalidName(raw)
		}

		return Name{raw: raw, NonNum: nonNumericBytes}, nil
	}

	if len(body) < 2 {
		return Name{}, invalidName(raw)
	}

	var format Format
	switch body[0] {
	case 'u':
		format = FormatUnsigned
	case 'i':
		format = FormatSigned
	case 'f':
		format = FormatFloat
	default:
		return Name{}, invalidName(raw)
	}

	rest := body[1:]

	var width Width
	var endianPart string

	switch {
	case strings.HasPrefix(rest, "v"):
		width = WidthVar
		endianPart = rest[1:]
	case strings.HasPrefix(rest, "1"):
		width = Width1
		endianPart = rest[1:]
	case strings.HasPrefix(rest, "2"):
		width = Width2
		endianPart = rest[1:]
	case strings.HasPrefix(rest, "4"):
		width = Width4
		endianPart = rest[1:]
	case strings.HasPrefix(rest, "8"):
		width = Width8
		endianPart = rest[1:]
	default:
		return Name{}, invalidName(raw)
	}

	var endian Endian
	switch endianPart {
	case "":
		endian = EndianNone
	case "l":
		endian = EndianLittle
	case "b":
		endian = EndianBig
	case "c":
		endian = EndianClamp
	default:
		return Name{}, invalidName(raw)
	}

	if format == FormatFloat && width == WidthVar {
		return Name{}, invalidName(raw) // "fv" is not permitted
	}

	if endian == EndianClamp && (format != FormatUnsigned || width != Width1) {
		return Name{}, invalidName(raw) // c only valid on u1
	}

	if width == WidthVar && endian != EndianNone {
		return Name{}, invalidName(raw) // width v carries no endian suffix
	}

	if width == Width1 && endian != EndianNone && endian != EndianClamp {
		return Name{}, invalidName(raw) // width 1 has no l/b suffix
	}

	if (width == Width2 || width == Width4 || width == Width8) && endian == EndianNone {
		return Name{}, invalidName(raw) // widths 2/4/8 require an endian suffix
	}

	if format == FormatFloat && width != Width4 && width != Width8 {
		return Name{}, invalidName(raw) // only 4/8-byte floats are defined
	}

	return Name{raw: raw, Format: format, Width: width, Endian: endian, IsArray: isArray}, nil
}

func invalidName(raw string) error {
	return wrapf(errs.ErrInvalidTypeName, "%q", raw)
}
