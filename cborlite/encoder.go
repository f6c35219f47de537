package cborlite

import "time"

// Encoder is the fluent streaming encoder: every method appends one
// CBOR item to a fixed, caller-supplied buffer and returns the encoder
// itself for chaining. A method that would exceed the buffer's
// capacity writes nothing and silently returns -- there are no panics
// and no error return values on this path (spec.md §4.4/§7).
type Encoder struct {
	w *BoundedWriter
}

// NewEncoder wraps buf. buf must outlive the encoder.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{w: NewBoundedWriter(buf)}
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return e.w.Len() }

// Bytes returns the encoded document built so far.
func (e *Encoder) Bytes() []byte { return e.w.Bytes() }

// Reset rewinds the encoder to the start of its buffer, optionally
// zeroing it first.
func (e *Encoder) Reset(clearBuffer bool) *Encoder {
	e.w.Reset(clearBuffer)
	return e
}

// Tag emits a semantic tag header; the next item written is the
// tagged value.
func (e *Encoder) Tag(t uint32) *Encoder {
	e.w.WriteTypeAndValue(MajorTag, t)
	return e
}

// Array emits a definite-length array header with n elements.
func (e *Encoder) Array(n uint32) *Encoder {
	e.w.WriteTypeAndValue(MajorArray, n)
	return e
}

// ArrayIndefinite emits an indefinite-length array header; terminate
// it with End.
func (e *Encoder) ArrayIndefinite() *Encoder {
	e.w.WriteRawByte(makeByte(MajorArray, addInfoIndefinite))
	return e
}

// Map emits a definite-length map header with n key/value pairs.
func (e *Encoder) Map(n uint32) *Encoder {
	e.w.WriteTypeAndValue(MajorMap, n)
	return e
}

// MapIndefinite emits an indefinite-length map header; terminate it
// with End.
func (e *Encoder) MapIndefinite() *Encoder {
	e.w.WriteRawByte(makeByte(MajorMap, addInfoIndefinite))
	return e
}

// End emits the single break byte (0xFF) that closes the innermost
// open indefinite-length container. The encoder does not track open
// container counts; an unbalanced End, or one emitted for a definite
// container, is the caller's responsibility (spec.md §4.4).
func (e *Encoder) End() *Encoder {
	e.w.WriteRawByte(makeByte(MajorSimple, addInfoIndefinite))
	return e
}

func (e *Encoder) signedItem(major0, major1 uint8, v int32) *Encoder {
	if v >= 0 {
		e.w.WriteTypeAndValue(major0, uint32(v))
	} else {
		e.w.WriteTypeAndValue(major1, uint32(-1-int64(v)))
	}
	return e
}

// Int emits a signed integer item.
func (e *Encoder) Int(v int32) *Encoder { return e.signedItem(MajorUint, MajorNegInt, v) }

// Uint emits an unsigned integer item.
func (e *Encoder) Uint(v uint32) *Encoder {
	e.w.WriteTypeAndValue(MajorUint, v)
	return e
}

// Bool emits a boolean simple value.
func (e *Encoder) Bool(v bool) *Encoder {
	if v {
		e.w.WriteRawByte(makeByte(MajorSimple, SimpleTrue))
	} else {
		e.w.WriteRawByte(makeByte(MajorSimple, SimpleFalse))
	}
	return e
}

// Null emits the null simple value.
func (e *Encoder) Null() *Encoder {
	e.w.WriteRawByte(makeByte(MajorSimple, SimpleNull))
	return e
}

// Undefined emits the undefined simple value.
func (e *Encoder) Undefined() *Encoder {
	e.w.WriteRawByte(makeByte(MajorSimple, SimpleUndefined))
	return e
}

// Simple emits an arbitrary major-7 minor value (e.g. a float marker
// minor without its IEEE payload -- decoding float payloads is out of
// scope, spec.md §1).
func (e *Encoder) Simple(minor uint8) *Encoder {
	e.w.WriteRawByte(makeByte(MajorSimple, minor))
	return e
}

// Text emits a definite-length UTF-8 text string item.
func (e *Encoder) Text(s string) *Encoder {
	size := itemHeaderSize(uint32(len(s)))
	if e.w.Remaining() < size+len(s) {
		return e
	}
	e.w.WriteTypeAndValue(MajorText, uint32(len(s)))
	e.w.WriteBytes([]byte(s))
	return e
}

// ByteString emits a definite-length byte string item.
func (e *Encoder) ByteString(v []byte) *Encoder {
	size := itemHeaderSize(uint32(len(v)))
	if e.w.Remaining() < size+len(v) {
		return e
	}
	e.w.WriteTypeAndValue(MajorBytes, uint32(len(v)))
	e.w.WriteBytes(v)
	return e
}

// Timestamp emits tag(1) followed by the Unix epoch seconds of t as an
// unsigned (or negative, for times before 1970) integer.
func (e *Encoder) Timestamp(t time.Time) *Encoder {
	secs := t.Unix()
	if secs < minInt32 || secs > 0xFFFFFFFF {
		// Outside the 32-bit argument range this package supports;
		// silently dropped like any other over-capacity write.
		return e
	}
	major, arg := uint8(MajorUint), uint32(secs)
	if secs < 0 {
		major, arg = MajorNegInt, uint32(-1-secs)
	}
	if e.w.Remaining() < itemHeaderSize(TagEpochDateTime)+itemHeaderSize(arg) {
		return e
	}
	e.w.WriteTypeAndValue(MajorTag, TagEpochDateTime)
	e.w.WriteTypeAndValue(major, arg)
	return e
}

const minInt32 = -2147483648

// Key/Value are aliases over Int/Uint/Text/Bool used to mirror
// the fluent vocabulary of spec.md §4.4 (key(...), value(...)) at call
// sites that build maps; they do not themselves distinguish key from
// value position -- that alternation is the caller's responsibility,
// exactly as End's container bookkeeping is.

// KeyText emits a text-string map key.
func (e *Encoder) KeyText(s string) *Encoder { return e.Text(s) }

// KeyInt emits a signed-integer map key.
func (e *Encoder) KeyInt(v int32) *Encoder { return e.Int(v) }

// KeyUint emits an unsigned-integer map key.
func (e *Encoder) KeyUint(v uint32) *Encoder { return e.Uint(v) }

// ValueText emits a text-string map value.
func (e *Encoder) ValueText(s string) *Encoder { return e.Text(s) }

// ValueInt emits a signed-integer map value.
func (e *Encoder) ValueInt(v int32) *Encoder { return e.Int(v) }

// ValueUint emits an unsigned-integer map value.
func (e *Encoder) ValueUint(v uint32) *Encoder { return e.Uint(v) }

// ValueBool emits a boolean map value.
func (e *Encoder) ValueBool(v bool) *Encoder { return e.Bool(v) }
