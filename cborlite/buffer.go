package cborlite

import "sync"

// textBuffer is a pooled, growable byte buffer used only to assemble
// the human-facing pretty-print string. It is adapted from the
// teacher's heap-growing ByteBuffer, trimmed to what PrettyPrint
// needs: the core encoder/decoder never grows a buffer (spec.md §1),
// but turning a document into diagnostic text is explicitly a
// convenience operation outside that constraint (spec.md §6).
type textBuffer struct {
	b []byte
}

var textBufferPool = sync.Pool{New: func() any { return &textBuffer{b: make([]byte, 0, 256)} }}

func getTextBuffer() *textBuffer {
	tb := textBufferPool.Get().(*textBuffer)
	tb.b = tb.b[:0]
	return tb
}

func putTextBuffer(tb *textBuffer) { textBufferPool.Put(tb) }

func (tb *textBuffer) writeString(s string) { tb.b = append(tb.b, s...) }
func (tb *textBuffer) writeByte(c byte)     { tb.b = append(tb.b, c) }

func (tb *textBuffer) writeTabs(n int) {
	for i := 0; i < n; i++ {
		tb.b = append(tb.b, '\t')
	}
}

func (tb *textBuffer) writeCRLF() { tb.b = append(tb.b, '\r', '\n') }

func (tb *textBuffer) String() string { return string(tb.b) }
