package result

import (
	"testing"
	"unsafe"
)

func TestEmpty(t *testing.T) {
	h := Empty()
	if !h.IsZero() {
		t.Fatalf("expected zero hash; have %s", h)
	}
}

func TestRawMut(t *testing.T) {
	h := Empty()

	// Simulate a native routine writing through the raw pointer.
	p := unsafe.Slice((*byte)(h.RawMut()), Size)
	for i := range p {
		p[i] = byte(i)
	}

	for i := range h {
		if h[i] != byte(i) {
			t.Fatalf("byte %d: have %d, want %d", i, h[i], i)
		}
	}

	if h.IsZero() {
		t.Fatalf("expected non-zero hash")
	}
}

func TestFromBytes(t *testing.T) {
	if _, ok := FromBytes(make([]byte, Size-1)); ok {
		t.Fatalf("expected short input to be rejected")
	}

	in := make([]byte, Size)
	in[0], in[Size-1] = 0xab, 0xcd

	h, ok := FromBytes(in)
	if !ok {
		t.Fatalf("expected input to be accepted")
	}

	want := "ab" + "000000000000000000000000000000000000000000000000000000000000" + "cd"
	if h.String() != want {
		t.Fatalf("string mismatch:\nhave: %s\nwant: %s", h, want)
	}

	in[0] = 0
	if h[0] != 0xab {
		t.Fatalf("hash shares storage with its input")
	}
}
