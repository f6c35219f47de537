package cborlite

import "time"

// Cursor is an immutable, zero-copy view positioned at the start of
// one CBOR item within a borrowed byte slice. All operations return
// new cursors; none mutate the underlying bytes or Cursor value.
type Cursor struct {
	bytes      []byte
	arrayUnits uint32
}

// NewCursor wraps b, positioning the cursor at its first CBOR item. b
// must outlive the cursor and any cursor derived from it.
func NewCursor(b []byte) Cursor {
	return Cursor{bytes: b}
}

// nullCursor is returned by every lookup that fails to find its
// target (spec.md §3/§7: "not-found" is surfaced as a null cursor,
// never as an error).
var nullCursor = Cursor{}

// IsNull reports whether c is the null cursor returned by a failed
// lookup.
func (c Cursor) IsNull() bool { return len(c.bytes) == 0 }

func (c Cursor) header() Header { return DecodeHeader(c.bytes) }

// GetType returns the item's major type.
func (c Cursor) GetType() uint8 { return c.header().MajorType }

// GetMinorType returns the item's minor type / additional info.
func (c Cursor) GetMinorType() uint8 { return c.header().MinorType }

// GetTag returns the item's semantic tag, or NoTag if untagged.
func (c Cursor) GetTag() uint32 { return c.header().Tag }

// GetSize returns the array/map element or pair count, SentinelInf for
// an indefinite container or indefinite bytes/text, the byte length for
// definite bytes/text, or 0 for anything else.
func (c Cursor) GetSize() uint32 {
	h := c.header()
	switch {
	case h.IsContainer():
		if h.IsIndefinite() {
			return SentinelInf
		}
		return h.Argument
	case h.MajorType == MajorBytes || h.MajorType == MajorText:
		if h.IsIndefinite() {
			return SentinelInf
		}
		return h.Argument
	default:
		return 0
	}
}

// GetUnsigned extracts a non-negative integer. ok is false if the item
// is not major type 0.
func (c Cursor) GetUnsigned() (v uint32, ok bool) {
	h := c.header()
	if h.MajorType != MajorUint {
		return 0, false
	}
	return h.Argument, true
}

// GetNegative extracts a negative integer (value = -1-argument). ok is
// false if the item is not major type 1.
func (c Cursor) GetNegative() (v int32, ok bool) {
	h := c.header()
	if h.MajorType != MajorNegInt {
		return 0, false
	}
	return int32(-1 - int64(h.Argument)), true
}

// GetSigned extracts an integer of either sign.
func (c Cursor) GetSigned() (v int32, ok bool) {
	h := c.header()
	switch h.MajorType {
	case MajorUint:
		return int32(h.Argument), true
	case MajorNegInt:
		return int32(-1 - int64(h.Argument)), true
	default:
		return 0, false
	}
}

// GetBool extracts a boolean simple value.
func (c Cursor) GetBool() (v bool, ok bool) {
	h := c.header()
	if h.MajorType != MajorSimple {
		return false, false
	}
	switch h.MinorType {
	case SimpleTrue:
		return true, true
	case SimpleFalse:
		return false, true
	default:
		return false, false
	}
}

// IsNullValue reports the null simple value (distinct from Cursor.IsNull).
func (c Cursor) IsNullValue() bool {
	h := c.header()
	return h.MajorType == MajorSimple && h.MinorType == SimpleNull
}

// IsUndefined reports the undefined simple value.
func (c Cursor) IsUndefined() bool {
	h := c.header()
	return h.MajorType == MajorSimple && h.MinorType == SimpleUndefined
}

// GetTimeStamp extracts an epoch timestamp: tag 1 over an unsigned
// integer of whole seconds.
func (c Cursor) GetTimeStamp() (t time.Time, ok bool) {
	h := c.header()
	if h.Tag != TagEpochDateTime || h.MajorType != MajorUint {
		return time.Time{}, false
	}
	return time.Unix(int64(h.Argument), 0).UTC(), true
}

// GetBytes returns the payload of a definite-length byte string. ok is
// false for any other item, including indefinite byte strings (chunk
// reassembly would require an allocation this package does not make).
func (c Cursor) GetBytes() (v []byte, ok bool) {
	h := c.header()
	if h.MajorType != MajorBytes || h.IsIndefinite() {
		return nil, false
	}
	start := int(h.HeaderLength)
	end := start + int(h.Argument)
	if end > len(c.bytes) {
		return nil, false
	}
	return c.bytes[start:end], true
}

// GetString returns the payload of a definite-length text string as a
// Go string, which is a copy of the underlying bytes. ok is false for
// any other item, including indefinite text strings.
func (c Cursor) GetString() (v string, ok bool) {
	h := c.header()
	if h.MajorType != MajorText || h.IsIndefinite() {
		return "", false
	}
	start := int(h.HeaderLength)
	end := start + int(h.Argument)
	if end > len(c.bytes) {
		return "", false
	}
	return string(c.bytes[start:end]), true
}

// Find looks up a text key in a map, per the structural walker's
// find-by-key specialisation. Text keys and integer keys (FindInt) are
// disjoint lookup regimes: Find never matches an integer key and
// FindInt never matches a text key (spec.md §9 Open Question).
func (c Cursor) Find(key string) Cursor {
	valueStart, ok := findKey(c.bytes, func(h Header, keyBytes []byte) bool {
		if h.MajorType != MajorText || int(h.HeaderLength) > len(keyBytes) {
			return false
		}
		return string(keyBytes[h.HeaderLength:]) == key
	})
	if !ok {
		return nullCursor
	}
	return Cursor{bytes: c.bytes[valueStart:]}
}

// FindInt looks up an integer key in a map. See Find for the
// disjoint-regime caveat.
func (c Cursor) FindInt(key int32) Cursor {
	valueStart, ok := findKey(c.bytes, func(h Header, keyBytes []byte) bool {
		switch h.MajorType {
		case MajorUint:
			return key >= 0 && h.Argument == uint32(key)
		case MajorNegInt:
			return int64(key) == -1-int64(h.Argument)
		default:
			return false
		}
	})
	if !ok {
		return nullCursor
	}
	return Cursor{bytes: c.bytes[valueStart:]}
}

// At returns the index'th top-level element of an array, or the
// index'th element of a map read as an interleaved key/value sequence
// (index 2i is the i'th key, 2i+1 its value). The returned cursor
// carries a residual unit budget so NextArrayItem/NextMapItem can
// chain from it without re-decoding a container header.
func (c Cursor) At(index uint32) Cursor {
	start, residual, ok := atIndex(c.bytes, index)
	if !ok {
		return nullCursor
	}
	return Cursor{bytes: c.bytes[start:], arrayUnits: residual}
}

// NextArrayItem advances k elements from a cursor previously produced
// by At (or by a previous NextArrayItem/NextMapItem), reusing its
// residual unit budget rather than re-decoding a container header
// (there is none left to decode: the cursor already points directly at
// elements). Cursors from NewCursor, Find, FindInt or GetValue carry no
// residual budget, so calling it on them returns the null cursor.
func (c Cursor) NextArrayItem(k uint32) Cursor {
	start, residual, ok := atIndexFromUnits(c.bytes, c.arrayUnits, k)
	if !ok {
		return nullCursor
	}
	return Cursor{bytes: c.bytes[start:], arrayUnits: residual}
}

// NextMapItem advances k key/value pairs (2k elements) from a cursor
// previously produced by At. See NextArrayItem.
func (c Cursor) NextMapItem(k uint32) Cursor {
	return c.NextArrayItem(2 * k)
}

// GetCBOR returns the raw bytes of this item: tag, header, payload,
// and (for containers) every nested item, as a standalone well-formed
// CBOR encoding.
func (c Cursor) GetCBOR() (raw []byte, ok bool) {
	n, ok := measureItem(c.bytes)
	if !ok {
		return nil, false
	}
	return c.bytes[:n], true
}

// GetCBORLength returns len of the slice GetCBOR would return.
func (c Cursor) GetCBORLength() (n int, ok bool) {
	return measureItem(c.bytes)
}

// GetValue treats c as positioned on a map key and returns a cursor on
// its paired value, by skipping exactly one complete item (the key).
func (c Cursor) GetValue() Cursor {
	rest, ok := skipOne(c.bytes)
	if !ok {
		return nullCursor
	}
	return Cursor{bytes: rest}
}
