// Package cborlite is a compact CBOR (RFC 8949) codec for constrained
// devices: a fluent encoder that writes into a caller-supplied fixed
// buffer without allocating, and a zero-copy cursor decoder that walks
// an immutable byte slice in place.
package cborlite

// CBOR major types (top 3 bits of the initial byte).
const (
	MajorUint   = 0 // unsigned integer
	MajorNegInt = 1 // negative integer
	MajorBytes  = 2 // byte string
	MajorText   = 3 // text string (UTF-8)
	MajorArray  = 4 // array
	MajorMap    = 5 // map
	MajorTag    = 6 // semantic tag
	MajorSimple = 7 // simple/float/break

	majorRaw        = 0xFE // internal placeholder; never emitted
	majorUnassigned = 0xFF // absent/uninitialised sentinel
)

// Additional info values (bottom 5 bits of the initial byte).
const (
	addInfoDirect     = 23 // largest value encoded inline
	addInfoUint8      = 24 // 1-byte argument follows
	addInfoUint16     = 25 // 2-byte argument follows
	addInfoUint32     = 26 // 4-byte argument follows
	addInfoUint64     = 27 // 8-byte argument follows (decode only, see DESIGN.md)
	addInfoIndefinite = 31 // indefinite length / break
)

// Simple values under major type 7.
const (
	SimpleFalse     = 20
	SimpleTrue      = 21
	SimpleNull      = 22
	SimpleUndefined = 23
	SimpleFloat16   = 25
	SimpleFloat32   = 26
	SimpleFloat64   = 27
	SimpleBreak     = 31
)

// TagEpochDateTime is the only semantic tag the encoder/decoder give
// dedicated helpers for (item(timestamp) / getTimeStamp).
const TagEpochDateTime = 1

// NoTag is the sentinel reported by Header.Tag and Cursor.GetTag when no
// tag prefix was present.
const NoTag uint32 = 0xFFFFFFFF

// SentinelInf marks a container as indefinite-length inside the
// walker and as the result of GetSize on any indefinite container.
const SentinelInf uint32 = 0xFFFFFFFF

func makeByte(major, addInfo uint8) byte {
	return byte(major<<5) | (addInfo & 0x1F)
}

func majorOf(b byte) uint8 { return (b >> 5) & 0x07 }
func minorOf(b byte) uint8 { return b & 0x1F }

// itemHeaderSize returns the number of bytes (including the initial
// byte) writeTypeAndValue needs to encode argument a in the smallest
// form: 1 byte inline, 2 for a one-byte argument, 3 for two bytes, 5
// for four bytes. The encoder never emits the 8-byte (minor 27) form.
func itemHeaderSize(a uint32) int {
	switch {
	case a <= addInfoDirect:
		return 1
	case a <= 0xFF:
		return 2
	case a <= 0xFFFF:
		return 3
	default:
		return 5
	}
}

// SignedItemSize returns itemHeaderSize applied to the CBOR encoding
// of a signed value: non-negative values encode their own magnitude,
// negative values encode -1-v.
func SignedItemSize(v int32) int {
	if v >= 0 {
		return itemHeaderSize(uint32(v))
	}
	return itemHeaderSize(uint32(-1 - int64(v)))
}

// TextItemSize returns the total encoded size (header plus payload)
// of a definite-length text or byte string of length n.
func TextItemSize(n int) int {
	return itemHeaderSize(uint32(n)) + n
}

// ItemSize is the static item-size table from the encoder façade: the
// number of header bytes writeTypeAndValue(major, a) will emit.
func ItemSize(a uint32) int { return itemHeaderSize(a) }
