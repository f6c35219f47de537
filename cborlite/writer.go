package cborlite

// BoundedWriter is an append-only cursor over a fixed, caller-owned
// byte buffer. It never allocates and never grows the buffer: once a
// write would exceed capacity it is silently dropped and writeIndex is
// left unchanged.
type BoundedWriter struct {
	buf        []byte
	writeIndex int
}

// NewBoundedWriter wraps buf. The writer never reslices or reallocates
// buf; it must outlive the writer.
func NewBoundedWriter(buf []byte) *BoundedWriter {
	return &BoundedWriter{buf: buf}
}

// Capacity returns the fixed size of the underlying buffer.
func (w *BoundedWriter) Capacity() int { return len(w.buf) }

// Len returns the number of bytes written so far.
func (w *BoundedWriter) Len() int { return w.writeIndex }

// Remaining returns the number of bytes still available.
func (w *BoundedWriter) Remaining() int { return len(w.buf) - w.writeIndex }

// Bytes returns the portion of the buffer written so far.
func (w *BoundedWriter) Bytes() []byte { return w.buf[:w.writeIndex] }

// Reset rewinds the writer to the start of its buffer. When clear is
// true the whole buffer is zeroed, not just the written prefix.
func (w *BoundedWriter) Reset(clear bool) {
	if clear {
		for i := range w.buf {
			w.buf[i] = 0
		}
	}
	w.writeIndex = 0
}

// WriteTypeAndValue emits the smallest-form header for (major, arg)
// and returns the number of bytes written, or 0 if major is not a
// valid item major type (0-6) or capacity is insufficient.
func (w *BoundedWriter) WriteTypeAndValue(major uint8, arg uint32) int {
	if major > MajorTag {
		return 0
	}
	size := itemHeaderSize(arg)
	if w.Remaining() < size {
		return 0
	}
	i := w.writeIndex
	switch size {
	case 1:
		w.buf[i] = makeByte(major, uint8(arg))
	case 2:
		w.buf[i] = makeByte(major, addInfoUint8)
		w.buf[i+1] = byte(arg)
	case 3:
		w.buf[i] = makeByte(major, addInfoUint16)
		w.buf[i+1] = byte(arg >> 8)
		w.buf[i+2] = byte(arg)
	case 5:
		w.buf[i] = makeByte(major, addInfoUint32)
		w.buf[i+1] = byte(arg >> 24)
		w.buf[i+2] = byte(arg >> 16)
		w.buf[i+3] = byte(arg >> 8)
		w.buf[i+4] = byte(arg)
	}
	w.writeIndex += size
	return size
}

// WriteRawByte emits a single literal byte (used for simple values and
// the break stop-code, which carry no argument bytes of their own).
func (w *BoundedWriter) WriteRawByte(b byte) int {
	if w.Remaining() < 1 {
		return 0
	}
	w.buf[w.writeIndex] = b
	w.writeIndex++
	return 1
}

// WriteBytes copies src into the buffer when it fits, else writes
// nothing and returns 0.
func (w *BoundedWriter) WriteBytes(src []byte) int {
	if w.Remaining() < len(src) {
		return 0
	}
	n := copy(w.buf[w.writeIndex:], src)
	w.writeIndex += n
	return n
}
