package cborlite

import (
	"bytes"
	"testing"
)

// Smallest-form encoding: each argument must be emitted in the
// shortest CBOR form that can hold it, at every size-class boundary.
func TestEncoderSmallestFormEncoding(t *testing.T) {
	buf := make([]byte, 64)
	e := NewEncoder(buf)
	e.Uint(0).Uint(23).Uint(24).Uint(0xFF).Uint(0x100).Uint(0xFFFF).Uint(0x10000)

	want := mustHex(t, "00"+"17"+"1818"+"18ff"+"190100"+"19ffff"+"1a00010000")
	if !bytes.Equal(e.Bytes(), want) {
		t.Fatalf("got % x, want % x", e.Bytes(), want)
	}
}

// Negative integer law: value = -1 - argument.
func TestEncoderNegativeIntegerLaw(t *testing.T) {
	cases := []struct {
		v    int32
		want string
	}{
		{-1, "20"},
		{-256, "38ff"},
		{-65536, "39ffff"},
	}
	for _, c := range cases {
		buf := make([]byte, 8)
		e := NewEncoder(buf)
		e.Int(c.v)
		want := mustHex(t, c.want)
		if !bytes.Equal(e.Bytes(), want) {
			t.Fatalf("Int(%d) = % x, want % x", c.v, e.Bytes(), want)
		}
	}
}

// A full fluent round trip: build a small map with the encoder, then
// read it back with a cursor.
func TestEncoderCursorRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	e := NewEncoder(buf)
	e.Map(2).KeyText("id").ValueUint(42).KeyText("ok").ValueBool(true)

	c := NewCursor(e.Bytes())
	if c.GetType() != MajorMap {
		t.Fatalf("GetType() = %d, want MajorMap", c.GetType())
	}

	id := c.Find("id")
	if id.IsNull() {
		t.Fatal("Find(\"id\") returned null")
	}
	v, ok := id.GetUnsigned()
	if !ok || v != 42 {
		t.Fatalf("id = (%d,%v), want 42", v, ok)
	}

	ok2 := c.Find("ok")
	b, bok := ok2.GetBool()
	if !bok || !b {
		t.Fatalf("ok = (%v,%v), want true", b, bok)
	}
}

func TestEncoderSilentlyDropsOnOverflow(t *testing.T) {
	buf := make([]byte, 1)
	e := NewEncoder(buf)
	e.Text("too long for one byte")
	if e.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 (overflowing write must be a no-op)", e.Len())
	}
}

func TestEncoderIndefiniteArrayRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	e := NewEncoder(buf)
	e.ArrayIndefinite().Uint(1).Uint(2).End()

	want := mustHex(t, "9f0102ff")
	if !bytes.Equal(e.Bytes(), want) {
		t.Fatalf("got % x, want % x", e.Bytes(), want)
	}

	c := NewCursor(e.Bytes())
	if c.GetSize() != SentinelInf {
		t.Fatalf("GetSize() = %d, want SentinelInf", c.GetSize())
	}
}

func TestEncoderBytesRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	e := NewEncoder(buf)
	e.ByteString([]byte{1, 2, 3})

	c := NewCursor(e.Bytes())
	got, ok := c.GetBytes()
	if !ok || !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("GetBytes() = (% x,%v)", got, ok)
	}
}
