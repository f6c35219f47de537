package cborlite

// Header is the decoded form of a CBOR item prefix: major/minor type,
// the argument they carry, an optional preceding semantic tag, and
// the total number of bytes the prefix occupied (tag included).
type Header struct {
	Tag          uint32
	MajorType    uint8
	MinorType    uint8
	Argument     uint32
	HeaderLength uint8
}

// IsContainer reports whether h opens an array or map (definite or
// indefinite).
func (h Header) IsContainer() bool {
	return h.MajorType == MajorArray || h.MajorType == MajorMap
}

// IsIndefinite reports whether h carries the indefinite-length marker.
func (h Header) IsIndefinite() bool { return h.MinorType == addInfoIndefinite }

// IsBreak reports whether h is the break stop-code (major 7, minor 31).
func (h Header) IsBreak() bool { return h.MajorType == MajorSimple && h.MinorType == addInfoIndefinite }

// DecodeHeader reads the CBOR item prefix at the start of b. It reads
// at most 9 bytes per prefix (18 for a tag prefix plus the tagged
// item's prefix) and never reads past len(b); a short buffer yields a
// best-effort header with Argument taken from whatever bytes were
// available (see DESIGN.md "truncated input"). A nil/empty b yields
// the null item: major 7, minor 22 (null), no tag.
//
// A single semantic-tag prefix (major type 6) is transparent: Tag is
// set to the tag's argument and MajorType/MinorType/Argument describe
// the item that follows. A second, nested tag is not unwrapped further
// -- it is reported as an ordinary major-6 item, matching the "single
// layer only" wire format rule.
func DecodeHeader(b []byte) Header {
	if len(b) == 0 {
		return Header{Tag: NoTag, MajorType: MajorSimple, MinorType: SimpleNull}
	}

	major, minor, arg, n := decodePrefix(b)
	if major != MajorTag {
		return Header{Tag: NoTag, MajorType: major, MinorType: minor, Argument: arg, HeaderLength: uint8(n)}
	}

	tag := arg
	var inner []byte
	if n < len(b) {
		inner = b[n:]
	}
	imajor, iminor, iarg, in := decodePrefix(inner)
	return Header{
		Tag:          tag,
		MajorType:    imajor,
		MinorType:    iminor,
		Argument:     iarg,
		HeaderLength: uint8(n + in),
	}
}

// decodePrefix decodes one non-tag-unwrapping CBOR prefix: major type,
// minor type, argument, and the number of bytes consumed. It never
// reads past len(b); missing trailing bytes are treated as zero so the
// caller never panics on truncated input.
func decodePrefix(b []byte) (major, minor uint8, arg uint32, n int) {
	if len(b) == 0 {
		return MajorSimple, SimpleNull, 0, 0
	}
	lead := b[0]
	major = majorOf(lead)
	minor = minorOf(lead)

	switch {
	case minor < addInfoUint8:
		return major, minor, uint32(minor), 1
	case minor == addInfoUint8:
		return major, minor, uint32(be(b, 1, 1)), 2
	case minor == addInfoUint16:
		return major, minor, uint32(be(b, 1, 2)), 3
	case minor == addInfoUint32:
		return major, minor, uint32(be(b, 1, 4)), 5
	case minor == addInfoUint64:
		// Not produced by the encoder (spec.md §9 Open Question). We
		// choose to recognise it on decode and truncate to 32 bits.
		return major, minor, uint32(be(b, 1, 8)), 9
	case minor == addInfoIndefinite:
		return major, minor, addInfoIndefinite, 1
	default:
		// Reserved (28-30): treated as a zero-length item and the
		// walker continues, per spec.md §7 "invalid-minor".
		return major, minor, 0, 1
	}
}

// be reads a big-endian unsigned integer of width bytes starting at
// b[off], clamped to the bytes actually available.
func be(b []byte, off, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		v <<= 8
		if off+i < len(b) {
			v |= uint64(b[off+i])
		}
	}
	return v
}
