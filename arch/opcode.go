// Package arch defines the virtual machine's instruction set along with
// the weighted opcode table and some related helper functions.
package arch

import "strings"

// Mnemonic identifies a symbolic operation.
type Mnemonic byte

// Known mnemonics, in declaration order of the frequency table.
const (
	IADD_RS Mnemonic = iota
	IADD_M
	ISUB_R
	ISUB_M
	IMUL_R
	IMUL_M
	IMULH_R
	IMULH_M
	ISMULH_R
	ISMULH_M
	IMUL_RCP
	INEG_R
	IXOR_R
	IXOR_M
	IROR_R
	IROL_R
	ISWAP_R
	FSWAP_R
	FADD_R
	FADD_M
	FSUB_R
	FSUB_M
	FSCAL_R
	FMUL_R
	FDIV_M
	FSQRT_R
	CBRANCH
	CFROUND
	ISTORE
	NOP

	// Invalid is returned by ParseMnemonic for unrecognized names.
	Invalid
)

// MnemonicCount is the number of valid mnemonics.
const MnemonicCount = int(Invalid)

var mnemonicNames = [MnemonicCount]string{
	IADD_RS:  "IADD_RS",
	IADD_M:   "IADD_M",
	ISUB_R:   "ISUB_R",
	ISUB_M:   "ISUB_M",
	IMUL_R:   "IMUL_R",
	IMUL_M:   "IMUL_M",
	IMULH_R:  "IMULH_R",
	IMULH_M:  "IMULH_M",
	ISMULH_R: "ISMULH_R",
	ISMULH_M: "ISMULH_M",
	IMUL_RCP: "IMUL_RCP",
	INEG_R:   "INEG_R",
	IXOR_R:   "IXOR_R",
	IXOR_M:   "IXOR_M",
	IROR_R:   "IROR_R",
	IROL_R:   "IROL_R",
	ISWAP_R:  "ISWAP_R",
	FSWAP_R:  "FSWAP_R",
	FADD_R:   "FADD_R",
	FADD_M:   "FADD_M",
	FSUB_R:   "FSUB_R",
	FSUB_M:   "FSUB_M",
	FSCAL_R:  "FSCAL_R",
	FMUL_R:   "FMUL_R",
	FDIV_M:   "FDIV_M",
	FSQRT_R:  "FSQRT_R",
	CBRANCH:  "CBRANCH",
	CFROUND:  "CFROUND",
	ISTORE:   "ISTORE",
	NOP:      "NOP",
}

// Valid returns true if m names a known operation.
func (m Mnemonic) Valid() bool {
	return m < Invalid
}

// String returns the canonical assembly name of m.
func (m Mnemonic) String() string {
	if !m.Valid() {
		return "INVALID"
	}
	return mnemonicNames[m]
}

// ParseMnemonic returns the mnemonic for the given instruction name.
// Returns false if the name is not recognized.
func ParseMnemonic(name string) (Mnemonic, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for i, v := range mnemonicNames {
		if v == name {
			return Mnemonic(i), true
		}
	}
	return Invalid, false
}

// Frequency pairs a mnemonic with the number of opcode slots it occupies.
type Frequency struct {
	Mnemonic Mnemonic
	Weight   int
}

// frequencies declares how the 256 opcode values are distributed over the
// mnemonics. Opcodes are assigned in this order, each mnemonic taking
// Weight consecutive slots. Program bytes from independent implementations
// must map to the same mnemonics, so the order and weights are fixed.
var frequencies = []Frequency{
	{IADD_RS, 16},
	{IADD_M, 7},
	{ISUB_R, 16},
	{ISUB_M, 7},
	{IMUL_R, 16},
	{IMUL_M, 4},
	{IMULH_R, 4},
	{IMULH_M, 1},
	{ISMULH_R, 4},
	{ISMULH_M, 1},
	{IMUL_RCP, 8},
	{INEG_R, 2},
	{IXOR_R, 15},
	{IXOR_M, 5},
	{IROR_R, 8},
	{IROL_R, 2},
	{ISWAP_R, 4},
	{FSWAP_R, 4},
	{FADD_R, 16},
	{FADD_M, 5},
	{FSUB_R, 16},
	{FSUB_M, 5},
	{FSCAL_R, 6},
	{FMUL_R, 32},
	{FDIV_M, 4},
	{FSQRT_R, 6},
	{CBRANCH, 25},
	{CFROUND, 1},
	{ISTORE, 16},
	{NOP, 0},
}

// Frequencies returns a copy of the declared opcode distribution.
func Frequencies() []Frequency {
	out := make([]Frequency, len(frequencies))
	copy(out, frequencies)
	return out
}
