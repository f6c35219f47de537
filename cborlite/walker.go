package cborlite

// walkStep holds everything one call to step() decoded about the item
// it just advanced over.
type walkStep struct {
	header    Header
	start     int  // offset of this item's header within the walked slice
	end       int  // offset just past this item's header+payload (children not yet consumed)
	topLevel  bool // stack was empty *before* this item was decoded
	backAtTop bool // stack is empty *after* this item (and any pops it triggered) settled
	done      bool // the outermost virtual container just closed; end is final progress
}

// walkState is the structural walker's transient state: the shared
// engine behind measurement, skipping, key/index lookup, and
// pretty-printing (spec.md §4.3). It advances one item at a time over
// an explicit LIFO of ancestor unit counts rather than recursing, so
// walking stays bounded by nesting depth, not call-stack depth.
type walkState struct {
	units uint32
	stack []uint32
}

func newWalkState(rootUnits uint32) *walkState {
	return &walkState{units: rootUnits}
}

func (s *walkState) push(u uint32) { s.stack = append(s.stack, u) }

func (s *walkState) pop() (uint32, bool) {
	if len(s.stack) == 0 {
		return 0, false
	}
	n := len(s.stack) - 1
	u := s.stack[n]
	s.stack = s.stack[:n]
	return u, true
}

// step decodes the item at b[pos:], updates container push/pop
// bookkeeping, and returns where the next item (sibling or, after a
// pop, the enclosing container's next sibling) begins.
func (s *walkState) step(b []byte, pos int) walkStep {
	topLevel := len(s.stack) == 0

	if s.units != SentinelInf {
		s.units--
	}

	h := DecodeHeader(b[pos:])

	switch {
	case h.MajorType == MajorArray:
		if h.IsIndefinite() {
			s.push(s.units)
			s.units = SentinelInf
		} else if h.Argument > 0 {
			s.push(s.units)
			s.units = h.Argument
		}
	case h.MajorType == MajorMap:
		if h.IsIndefinite() {
			s.push(s.units)
			s.units = SentinelInf
		} else if h.Argument > 0 {
			s.push(s.units)
			s.units = 2 * h.Argument
		}
	case (h.MajorType == MajorBytes || h.MajorType == MajorText) && h.IsIndefinite():
		s.push(s.units)
		s.units = SentinelInf
	}

	end := pos + int(h.HeaderLength)
	if (h.MajorType == MajorBytes || h.MajorType == MajorText) && !h.IsIndefinite() {
		end += int(h.Argument)
	}
	if end > len(b) {
		// Truncated leaf item: report the walker's best estimate (the
		// end of the buffer) rather than an offset past it, so callers
		// indexing b[st.start:st.end] never go out of bounds (spec.md
		// §7 "truncated-input").
		end = len(b)
	}

	done := false
	curIsBreak := h.IsBreak()
	for s.units == 0 || curIsBreak {
		curIsBreak = false // a pop only ever closes one level per break byte
		if u, ok := s.pop(); ok {
			s.units = u
		} else {
			done = true
			break
		}
	}

	return walkStep{header: h, start: pos, end: end, topLevel: topLevel, backAtTop: len(s.stack) == 0, done: done}
}

// measureFrom runs the walker over the container whose element budget
// is rootUnits, starting at offset 0 of b (i.e. b already has the
// container's own header stripped off), and returns the offset just
// past the container's close. closed is false if the container does
// not close within b or any nested item overruns b.
func measureFrom(b []byte, rootUnits uint32) (progress int, closed bool) {
	s := newWalkState(rootUnits)
	pos := 0
	for pos < len(b) {
		st := s.step(b, pos)
		pos = st.end
		declared := st.start + int(st.header.HeaderLength)
		if (st.header.MajorType == MajorBytes || st.header.MajorType == MajorText) && !st.header.IsIndefinite() {
			declared += int(st.header.Argument)
		}
		if declared > len(b) {
			return pos, false
		}
		if st.done {
			return pos, true
		}
	}
	return pos, false
}

// measureItem returns the total encoded length of the single CBOR
// item at the start of b (tag, header, payload, and for containers
// every nested item), or (len(b), false) if b is truncated.
func measureItem(b []byte) (length int, ok bool) {
	if len(b) == 0 {
		return 0, false
	}
	h := DecodeHeader(b)

	// A header prefix that itself claims more bytes than are present
	// (e.g. a 5-byte uint32 header over a 2-byte buffer) is truncated
	// before it even reaches its payload; report what's there.
	if int(h.HeaderLength) > len(b) {
		return len(b), false
	}

	if h.IsContainer() || ((h.MajorType == MajorBytes || h.MajorType == MajorText) && h.IsIndefinite()) {
		units := containerUnits(h)
		rest, closed := measureFrom(b[h.HeaderLength:], units)
		return int(h.HeaderLength) + rest, closed
	}
	if h.MajorType == MajorBytes || h.MajorType == MajorText {
		n := int(h.HeaderLength) + int(h.Argument)
		if n > len(b) {
			// Declared length overruns the buffer: clamp to the
			// buffer's own end rather than let a caller slice past it.
			return len(b), false
		}
		return n, true
	}
	return int(h.HeaderLength), true
}

// containerUnits computes the walker's initial unit budget for
// entering the container described by h.
func containerUnits(h Header) uint32 {
	if h.IsIndefinite() {
		return SentinelInf
	}
	if h.MajorType == MajorMap {
		return 2 * h.Argument
	}
	return h.Argument
}

// MeasureDocument reports the length in bytes of the single well-formed
// CBOR item at the start of b, for callers outside this package that
// only need to validate or bound a document (e.g. cmd/cbordump). ok is
// false if b does not hold one complete well-formed item.
func MeasureDocument(b []byte) (length int, ok bool) {
	return measureItem(b)
}

// skipOne returns the bytes of b immediately following one complete
// CBOR item (tag, header, payload, and any nested items). ok is false
// if b does not hold one complete well-formed item.
func skipOne(b []byte) (rest []byte, ok bool) {
	n, ok := measureItem(b)
	if !ok || n > len(b) {
		return nil, false
	}
	return b[n:], true
}

// isPushy reports whether h's item type is one of the kinds that opens
// a new nesting level in the walker (array, map, or indefinite
// bytes/text). Such an item can never be matched as a find() key: it
// is always skipped, and per spec.md §4.3 its paired value is skipped
// unconditionally too.
func isPushy(h Header) bool {
	if h.IsContainer() {
		return true
	}
	return (h.MajorType == MajorBytes || h.MajorType == MajorText) && h.IsIndefinite()
}

// findKey walks the map at the start of b (header included) looking
// for a top-level key accepted by match. It returns the offset of the
// matched key's value on success.
func findKey(b []byte, match func(h Header, keyBytes []byte) bool) (valueStart int, ok bool) {
	h := DecodeHeader(b)
	if h.MajorType != MajorMap {
		return 0, false
	}
	units := containerUnits(h)
	if units == 0 {
		return 0, false
	}
	s := newWalkState(units)
	pos := int(h.HeaderLength)
	expectKey := true
	for pos < len(b) {
		st := s.step(b, pos)
		if st.topLevel {
			if expectKey {
				if !isPushy(st.header) && match(st.header, b[st.start:st.end]) {
					return st.end, true
				}
				expectKey = false
			} else {
				expectKey = true
			}
		}
		pos = st.end
		if st.done {
			break
		}
	}
	return 0, false
}

// atIndex walks the array or map at the start of b (header included)
// and returns the start offset and residual unit count of its index'th
// top-level element (key/value pairs of a map count as 0,1,2,3,...).
func atIndex(b []byte, index uint32) (start int, residual uint32, ok bool) {
	h := DecodeHeader(b)
	if !h.IsContainer() {
		return 0, 0, false
	}
	units := containerUnits(h)
	if units == 0 || (units != SentinelInf && index >= units) {
		return 0, 0, false
	}
	s := newWalkState(units)
	pos := int(h.HeaderLength)
	var idx uint32
	for pos < len(b) {
		if idx == index {
			return pos, s.units, true
		}
		st := s.step(b, pos)
		pos = st.end
		if st.backAtTop {
			idx++
		}
		if st.done {
			break
		}
	}
	return 0, 0, false
}

// atIndexFromUnits is atIndex's counterpart for a cursor that already
// points directly at a container's elements (no header of its own) and
// carries a residual unit budget from a prior at()/find() call, used
// to implement nextArrayItem/nextMapItem without re-parsing a header.
func atIndexFromUnits(b []byte, rootUnits uint32, index uint32) (start int, residual uint32, ok bool) {
	if rootUnits == 0 || (rootUnits != SentinelInf && index >= rootUnits) {
		return 0, 0, false
	}
	s := newWalkState(rootUnits)
	pos := 0
	var idx uint32
	for pos < len(b) {
		if idx == index {
			return pos, s.units, true
		}
		st := s.step(b, pos)
		pos = st.end
		if st.backAtTop {
			idx++
		}
		if st.done {
			break
		}
	}
	return 0, 0, false
}
