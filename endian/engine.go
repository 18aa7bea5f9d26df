// Package endian provides the byte-order primitives the codec engine's
// numeric encode/decode path is built on.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder interfaces
// into a single EndianEngine, and maps the `l`/`b` endianness suffix of
// the primitive type-name grammar (spec §6.1: `u2l`, `i4b`, `f8b`, ...)
// onto the matching engine via EngineForSuffix. primitive.Encode/Decode
// never touch encoding/binary directly; every fixed-width numeric
// conversion in this module goes through an EndianEngine obtained here.
//
// # Basic usage
//
//	eng := endian.GetLittleEndianEngine()
//	buf := eng.AppendUint32(nil, 0x01020304)
//
// or, driven by a parsed type-name suffix:
//
//	eng := endian.EngineForSuffix('b')
//	buf = eng.AppendUint16(buf, value)
//
// # Host endianness
//
// Spec §4.1 declares that "host endianness is detected once at startup."
// CheckEndianness honors that by probing the host's native byte order
// exactly once, on first call, and caching the result; every subsequent
// call (and therefore IsNativeLittleEndian/IsNativeBigEndian) reads the
// cached value instead of re-probing.
//
// # Thread safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"sync"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var (
	hostEndianOnce sync.Once
	hostEndian     binary.ByteOrder
)

// probeHostEndianness inspects the memory layout of a known 16-bit value
// to determine the host's native byte order.
func probeHostEndianness() binary.ByteOrder {
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// CheckEndianness reports the host's native byte order, probing for it
// only on the first call (spec §4.1: "host endianness is detected once
// at startup").
func CheckEndianness() binary.ByteOrder {
	hostEndianOnce.Do(func() {
		hostEndian = probeHostEndianness()
	})

	return hostEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host is big-endian.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host's native
// byte order; a schema author can use this to choose a type-name suffix
// that avoids a byte-reversal on encode/decode for the common case.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// EngineForSuffix maps a primitive type-name's endianness suffix (spec
// §6.1 grammar: `endian := "l" | "b" | "c"`) onto the matching engine.
// `c` (u1's clamp suffix) carries no byte order of its own — clamping
// happens before any engine is consulted — so it resolves to the
// little-endian engine, the same default a width-1 type would get if it
// carried no suffix at all.
func EngineForSuffix(suffix byte) EndianEngine {
	if suffix == 'b' {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}
