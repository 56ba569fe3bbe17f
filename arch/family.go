package arch

// Family groups mnemonics which share one assembly rendering template.
type Family byte

// Known rendering families.
const (
	Default        Family = iota // MNEMONIC
	TwoRegister                  // MNEMONIC rD, rS
	RegisterMemory               // MNEMONIC rD, [rS]
	Subtract                     // ISUB_R rD, rS  or  ISUB_R rD, imm
	Store                        // ISTORE Lx[rD imm], rS
	Branch                       // CBRANCH imm
	RoundControl                 // CFROUND mode
	Negate                       // INEG_R rD
	NoOperation                  // NOP
)

var familyNames = [...]string{
	Default:        "default",
	TwoRegister:    "two-register",
	RegisterMemory: "register-memory",
	Subtract:       "subtract",
	Store:          "store",
	Branch:         "branch",
	RoundControl:   "round-control",
	Negate:         "negate",
	NoOperation:    "nop",
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return "unknown"
}

var families = classify()

func classify() (out [MnemonicCount]Family) {
	for _, m := range []Mnemonic{
		IADD_RS, IMUL_R, IMULH_R, ISMULH_R, IMUL_RCP, IXOR_R, IROR_R,
		IROL_R, ISWAP_R, FSWAP_R, FADD_R, FSUB_R, FSCAL_R, FMUL_R, FSQRT_R,
	} {
		out[m] = TwoRegister
	}

	for _, m := range []Mnemonic{
		IADD_M, ISUB_M, IMUL_M, IMULH_M, ISMULH_M, IXOR_M, FSUB_M, FADD_M, FDIV_M,
	} {
		out[m] = RegisterMemory
	}

	out[ISUB_R] = Subtract
	out[ISTORE] = Store
	out[CBRANCH] = Branch
	out[CFROUND] = RoundControl
	out[INEG_R] = Negate
	out[NOP] = NoOperation
	return
}

// FamilyOf returns the rendering family of m.
// Unknown mnemonics belong to the Default family.
func FamilyOf(m Mnemonic) Family {
	if !m.Valid() {
		return Default
	}
	return families[m]
}
