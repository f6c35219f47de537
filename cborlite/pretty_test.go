package cborlite

import "testing"

func TestPrettyPrintScalar(t *testing.T) {
	got := PrettyPrint(mustHex(t, "00"))
	want := "0\r\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrettyPrintArray(t *testing.T) {
	got := PrettyPrint(mustHex(t, "83010203"))
	want := "Array: 3\r\n\t1\r\n\t2\r\n\t3\r\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrettyPrintIndefiniteTextString(t *testing.T) {
	// (_ "strea", "ming") -- an indefinite text string made of two chunks.
	got := PrettyPrint(mustHex(t, "7f657374726561646d696e67ff"))
	want := "String:\r\n\tstrea\r\n\tming\r\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrettyPrintTaggedItem(t *testing.T) {
	// tag(1) over uint 0x514B67B0 -- an epoch timestamp.
	got := PrettyPrint(mustHex(t, "c11a514b67b0"))
	want := "[1] 1363896240\r\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrettyPrintMapOfBoolAndBytes(t *testing.T) {
	// {"ok": true, "raw": h'010203'}
	hex := "a2"+"626f6b"+"f5"+"63726177"+"43010203"
	got := PrettyPrint(mustHex(t, hex))
	want := "Map: 2\r\n\tok\r\n\ttrue\r\n\traw\r\n\t010203\r\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
