// Package compliance cross-validates cborlite's structural walker
// against a full CBOR decoder (fxamacker/cbor/v2) over the RFC 8949
// appendix examples: every vector here must be well-formed by both
// readings, and cborlite must report the same total item length that
// fxcbor consumes.
package compliance

import (
	"encoding/hex"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"

	"github.com/mbed-edge/cborlite/cborlite"
)

type rfcVector struct {
	name string
	diag string
	hex  string
}

var rfcVectors = []rfcVector{
	{name: "text-a", diag: `"a"`, hex: "6161"},
	{name: "zero", diag: "0", hex: "00"},
	{name: "minus-one", diag: "-1", hex: "20"},
	{name: "minus-256", diag: "-256", hex: "38ff"},
	{name: "minus-65536", diag: "-65536", hex: "39ffff"},
	{name: "bytes-010203", diag: "h'010203'", hex: "43010203"},
	{name: "array-1-2-3", diag: "[1, 2, 3]", hex: "83010203"},
	{name: "map-a1-b2", diag: `{"a": 1, "b": 2}`, hex: "a2616101616202"},
	{name: "indef-array-1-2", diag: "[_ 1, 2]", hex: "9f0102ff"},
	{name: "indef-text-streaming", diag: `(_ "strea", "ming")`, hex: "7f657374726561646d696e67ff"},
	{name: "tag-epoch-datetime", diag: "1(1363896240)", hex: "c11a514b67b0"},
	{name: "nested-array", diag: "[[1, 2], 3]", hex: "8282010203"},
}

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// TestVectorsAreWellFormedByBothDecoders confirms fxcbor accepts every
// vector (catching typos in the table itself) and that cborlite's
// walker agrees on where the item ends.
func TestVectorsAreWellFormedByBothDecoders(t *testing.T) {
	for _, v := range rfcVectors {
		v := v
		t.Run(v.name, func(t *testing.T) {
			raw := mustDecodeHex(t, v.hex)

			var out any
			if err := fxcbor.Unmarshal(raw, &out); err != nil {
				t.Fatalf("fxcbor.Unmarshal(%s): %v", v.name, err)
			}

			n, ok := cborlite.MeasureDocument(raw)
			if !ok {
				t.Fatalf("cborlite.MeasureDocument(%s): not well-formed", v.name)
			}
			if n != len(raw) {
				t.Fatalf("cborlite measured %d bytes, vector is %d bytes", n, len(raw))
			}
		})
	}
}

// TestScalarValuesAgree decodes the scalar vectors with both libraries
// and compares the resulting Go values.
func TestScalarValuesAgree(t *testing.T) {
	cases := []struct {
		name string
		hex  string
		want int64
	}{
		{"zero", "00", 0},
		{"minus-one", "20", -1},
		{"minus-256", "38ff", -256},
		{"minus-65536", "39ffff", -65536},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			raw := mustDecodeHex(t, c.hex)

			var fx int64
			if err := fxcbor.Unmarshal(raw, &fx); err != nil {
				t.Fatalf("fxcbor.Unmarshal: %v", err)
			}
			if fx != c.want {
				t.Fatalf("fxcbor decoded %d, want %d", fx, c.want)
			}

			c2 := cborlite.NewCursor(raw)
			var got int64
			switch {
			case c2.GetType() == cborlite.MajorUint:
				v, _ := c2.GetUnsigned()
				got = int64(v)
			default:
				v, _ := c2.GetNegative()
				got = int64(v)
			}
			if got != c.want {
				t.Fatalf("cborlite decoded %d, want %d", got, c.want)
			}
		})
	}
}

// TestMapLookupAgreesWithFullDecode checks Cursor.Find against a
// generic map decode of the same document.
func TestMapLookupAgreesWithFullDecode(t *testing.T) {
	raw := mustDecodeHex(t, "a2616101616202")

	var m map[string]int
	if err := fxcbor.Unmarshal(raw, &m); err != nil {
		t.Fatalf("fxcbor.Unmarshal: %v", err)
	}

	c := cborlite.NewCursor(raw)
	for k, want := range m {
		got, ok := c.Find(k).GetUnsigned()
		if !ok || int(got) != want {
			t.Fatalf("Find(%q) = (%d,%v), want %d", k, got, ok, want)
		}
	}
}

// TestPrettyPrintNeverPanicsOnWellFormedInput is a light smoke test:
// every vector that both decoders accept must also render without
// panicking.
func TestPrettyPrintNeverPanicsOnWellFormedInput(t *testing.T) {
	for _, v := range rfcVectors {
		raw := mustDecodeHex(t, v.hex)
		_ = cborlite.PrettyPrint(raw)
	}
}
