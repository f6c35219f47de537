package cborlite

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// PrettyPrint renders the CBOR item at the start of b in the textual
// form described by spec.md §6: one item per line, one tab of indent
// per nesting level, CRLF line endings, containers as "Array: N" /
// "Map: N" headers (indefinite forms omit the count), definite byte
// strings as uppercase hex, simple values as literal words, and a
// "[t] " prefix on tagged items.
//
// Traversal reuses the same explicit-stack walker that backs Measure,
// Find, and At rather than recursing: depth is one more than the
// walker's stack length at the time each item is reached.
func PrettyPrint(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	tb := getTextBuffer()
	defer putTextBuffer(tb)

	h := DecodeHeader(b)
	writeItemLine(tb, 0, h, b)

	if isPushy(h) {
		units := containerUnits(h)
		s := newWalkState(units)
		pos := int(h.HeaderLength)
		for pos < len(b) {
			depth := len(s.stack) + 1
			st := s.step(b, pos)
			if !st.header.IsBreak() {
				writeItemLine(tb, depth, st.header, b[st.start:])
			}
			pos = st.end
			if st.done {
				break
			}
		}
	}

	return tb.String()
}

// writeItemLine writes one line (or, for an indefinite byte/text
// header, one header line with no value of its own) describing h. itemBytes
// starts at h's own header byte.
func writeItemLine(tb *textBuffer, depth int, h Header, itemBytes []byte) {
	tb.writeTabs(depth)
	if h.Tag != NoTag {
		tb.writeByte('[')
		tb.writeString(strconv.FormatUint(uint64(h.Tag), 10))
		tb.writeString("] ")
	}

	switch {
	case h.MajorType == MajorArray && h.IsIndefinite():
		tb.writeString("Array:")
	case h.MajorType == MajorArray:
		tb.writeString("Array: ")
		tb.writeString(strconv.FormatUint(uint64(h.Argument), 10))
	case h.MajorType == MajorMap && h.IsIndefinite():
		tb.writeString("Map:")
	case h.MajorType == MajorMap:
		tb.writeString("Map: ")
		tb.writeString(strconv.FormatUint(uint64(h.Argument), 10))
	case h.MajorType == MajorBytes && h.IsIndefinite():
		tb.writeString("Bytes:")
	case h.MajorType == MajorText && h.IsIndefinite():
		tb.writeString("String:")
	case h.MajorType == MajorUint:
		tb.writeString(strconv.FormatUint(uint64(h.Argument), 10))
	case h.MajorType == MajorNegInt:
		tb.writeString(strconv.FormatInt(-1-int64(h.Argument), 10))
	case h.MajorType == MajorBytes:
		start := int(h.HeaderLength)
		end := start + int(h.Argument)
		if end <= len(itemBytes) {
			tb.writeString(strings.ToUpper(hex.EncodeToString(itemBytes[start:end])))
		}
	case h.MajorType == MajorText:
		start := int(h.HeaderLength)
		end := start + int(h.Argument)
		if end <= len(itemBytes) {
			tb.writeString(string(itemBytes[start:end]))
		}
	case h.MajorType == MajorSimple:
		tb.writeString(simpleWord(h.MinorType))
	}

	tb.writeCRLF()
}

func simpleWord(minor uint8) string {
	switch minor {
	case SimpleFalse:
		return "false"
	case SimpleTrue:
		return "true"
	case SimpleNull:
		return "null"
	case SimpleUndefined:
		return "undefined"
	case SimpleFloat16:
		return "half float"
	case SimpleFloat32:
		return "single float"
	case SimpleFloat64:
		return "double float"
	default:
		return "simple(" + strconv.Itoa(int(minor)) + ")"
	}
}
