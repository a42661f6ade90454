package types

import "testing"

func TestHashRoundTrip(t *testing.T) {
	h := HexToHash("0x1234")
	want := HexToHash("0x0000000000000000000000000000000000000000000000000000000000001234")
	if h != want {
		t.Fatalf("HexToHash did not left-pad: got %s", h.Hex())
	}
	if BytesToHash(h.Bytes()) != h {
		t.Fatalf("round trip mismatch")
	}
}

func TestHashTruncatesOverlongInput(t *testing.T) {
	b := make([]byte, 40)
	b[39] = 0xAB
	h := BytesToHash(b)
	if h.Bytes()[31] != 0xAB {
		t.Fatalf("expected low-order byte preserved, got %x", h.Bytes())
	}
}

func TestAddressRoundTrip(t *testing.T) {
	a := HexToAddress("0xdeadbeef00000000000000000000000000000000")
	if BytesToAddress(a.Bytes()) != a {
		t.Fatalf("round trip mismatch")
	}
}

func TestIsZero(t *testing.T) {
	var h Hash
	if !h.IsZero() {
		t.Fatalf("zero hash reported non-zero")
	}
	h[0] = 1
	if h.IsZero() {
		t.Fatalf("non-zero hash reported zero")
	}
}
