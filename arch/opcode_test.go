package arch

import "testing"

func TestParseMnemonic(t *testing.T) {
	for i := 0; i < MnemonicCount; i++ {
		m := Mnemonic(i)

		have, ok := ParseMnemonic(m.String())
		if !ok || have != m {
			t.Fatalf("%s: have %v (%v)", m, have, ok)
		}
	}

	if m, ok := ParseMnemonic(" istore "); !ok || m != ISTORE {
		t.Fatalf("expected case-insensitive match; have %v (%v)", m, ok)
	}

	if m, ok := ParseMnemonic("HALT"); ok || m != Invalid {
		t.Fatalf("expected HALT to be rejected; have %v (%v)", m, ok)
	}
}

func TestMnemonicString(t *testing.T) {
	if s := IMUL_RCP.String(); s != "IMUL_RCP" {
		t.Fatalf("have %q, want %q", s, "IMUL_RCP")
	}
	if s := Invalid.String(); s != "INVALID" {
		t.Fatalf("have %q, want %q", s, "INVALID")
	}
}

func TestFamilies(t *testing.T) {
	tests := []struct {
		m    Mnemonic
		want Family
	}{
		{IADD_RS, TwoRegister},
		{FSQRT_R, TwoRegister},
		{ISWAP_R, TwoRegister},
		{IADD_M, RegisterMemory},
		{FDIV_M, RegisterMemory},
		{ISUB_R, Subtract},
		{ISTORE, Store},
		{CBRANCH, Branch},
		{CFROUND, RoundControl},
		{INEG_R, Negate},
		{NOP, NoOperation},
		{Invalid, Default},
	}

	for _, tt := range tests {
		if have := FamilyOf(tt.m); have != tt.want {
			t.Fatalf("%s: have %s, want %s", tt.m, have, tt.want)
		}
	}

	// Every known mnemonic has a specialized template.
	for i := 0; i < MnemonicCount; i++ {
		if FamilyOf(Mnemonic(i)) == Default {
			t.Fatalf("%s has no rendering family", Mnemonic(i))
		}
	}
}

func TestRegisterName(t *testing.T) {
	for n, want := range map[int]string{0: "r0", 7: "r7", 13: "r13"} {
		if have := RegisterName(n); have != want {
			t.Fatalf("have %q, want %q", have, want)
		}
	}
}

func TestConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}

	if r := c.Register(9); r != 1 {
		t.Fatalf("register 9: have %d, want 1", r)
	}

	for _, bad := range []Config{
		{RegisterCount: 0, StoreL3Condition: 14},
		{RegisterCount: 257, StoreL3Condition: 14},
		{RegisterCount: 8, StoreL3Condition: -1},
		{RegisterCount: 8, StoreL3Condition: 17},
	} {
		if bad.Validate() == nil {
			t.Fatalf("expected %+v to be rejected", bad)
		}
	}
}

func TestAddressSpaceString(t *testing.T) {
	for a, want := range map[AddressSpace]string{L1: "L1", L2: "L2", L3: "L3", 0: ""} {
		if have := a.String(); have != want {
			t.Fatalf("have %q, want %q", have, want)
		}
	}
}
