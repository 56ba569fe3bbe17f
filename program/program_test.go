package program

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/crypto/blake2b"

	"github.com/hexaflex/rxvm/vm"
)

func TestEntropy(t *testing.T) {
	seed := []byte("rxvm")

	p := Entropy(seed, 100)
	if len(p) != 100 {
		t.Fatalf("length: have %d, want 100", len(p))
	}

	first := blake2b.Sum512(seed)
	second := blake2b.Sum512(first[:])
	if !bytes.Equal(p[:64], first[:]) || !bytes.Equal(p[64:], second[:36]) {
		t.Fatalf("entropy does not follow the blake2b chain")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate([]byte("seed"), DefaultLength)
	b := Generate([]byte("seed"), DefaultLength)
	c := Generate([]byte("other"), DefaultLength)

	if len(a) != DefaultLength {
		t.Fatalf("length: have %d, want %d", len(a), DefaultLength)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("generation is not deterministic:\n%s", diff)
	}
	if cmp.Equal(a, c) {
		t.Fatalf("different seeds yield identical programs")
	}

	if p := Generate(nil, 0); p != nil {
		t.Fatalf("expected empty program; have %d instructions", len(p))
	}
}

func TestGenerateMatchesEntropy(t *testing.T) {
	seed := []byte{1, 2, 3}
	prog := Generate(seed, 3)
	raw := Entropy(seed, 3*vm.InstructionSize)

	if !bytes.Equal(vm.EncodeProgram(prog), raw) {
		t.Fatalf("program bytes differ from entropy")
	}
}

func TestArchive(t *testing.T) {
	seed := []byte("archive")
	ar := New(seed, Generate(seed, 16))

	var buf bytes.Buffer
	if err := ar.Save(&buf); err != nil {
		t.Fatal(err)
	}

	var br Archive
	if err := br.Load(&buf); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(ar, &br, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("archive mismatch (-want +have):\n%s", diff)
	}

	prog, err := br.Instructions()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Generate(seed, 16), prog); diff != "" {
		t.Fatalf("program mismatch (-want +have):\n%s", diff)
	}
}

func TestArchiveWithoutSeed(t *testing.T) {
	ar := &Archive{Code: make([]byte, vm.InstructionSize)}

	var buf bytes.Buffer
	if err := ar.Save(&buf); err != nil {
		t.Fatal(err)
	}

	var br Archive
	if err := br.Load(&buf); err != nil {
		t.Fatal(err)
	}

	if len(br.Seed) != 0 || len(br.Code) != vm.InstructionSize {
		t.Fatalf("unexpected archive %+v", br)
	}
}

func TestArchiveInvalid(t *testing.T) {
	var ar Archive

	err := ar.Load(strings.NewReader("not an archive"))
	if err == nil || !strings.HasPrefix(err.Error(), "ar: invalid archive format") {
		t.Fatalf("unexpected error %v", err)
	}

	// A valid gzip stream cut short inside a field.
	var buf bytes.Buffer
	if err := New([]byte("x"), Generate([]byte("x"), 8)).Save(&buf); err != nil {
		t.Fatal(err)
	}
	full := buf.Bytes()

	if err := ar.Load(bytes.NewReader(full[:len(full)/2])); err == nil {
		t.Fatalf("expected error for truncated archive")
	}
}

func TestArchiveLoadTruncatedKeepsContents(t *testing.T) {
	var buf bytes.Buffer
	if err := New([]byte("seed"), Generate([]byte("seed"), 8)).Save(&buf); err != nil {
		t.Fatal(err)
	}
	full := buf.Bytes()

	old := &Archive{Seed: []byte("old"), Code: make([]byte, 7)}
	if err := old.Load(bytes.NewReader(full[:len(full)/2])); err == nil {
		t.Fatalf("expected error for truncated archive")
	}

	if string(old.Seed) != "old" || len(old.Code) != 7 {
		t.Fatalf("failed load modified archive: seed %q, code %d bytes", old.Seed, len(old.Code))
	}
}

func TestArchiveMisaligned(t *testing.T) {
	ar := &Archive{Code: make([]byte, 9)}

	if _, err := ar.Instructions(); err == nil {
		t.Fatalf("expected error for misaligned code")
	}
}

func TestArchiveString(t *testing.T) {
	ar := New([]byte{0xab}, make([]vm.Instruction, 2))

	s := ar.String()
	if !strings.Contains(s, "Seed: ab") || !strings.Contains(s, "Code (2 instructions)") {
		t.Fatalf("unexpected dump:\n%s", s)
	}
}
