// Package vm defines the fixed-width instruction word consumed by the
// program generator and the interpreter, along with its field accessors.
package vm

import (
	"encoding/binary"

	"github.com/hexaflex/rxvm/arch"
)

// InstructionSize is the encoded width of one instruction in bytes.
const InstructionSize = 8

// Instruction defines one encoded instruction word.
//
// The layout matches the wire encoding field for field and has no padding,
// so two instructions are equal exactly when their bit patterns are.
type Instruction struct {
	Opcode byte   // Index into the opcode table.
	Dst    byte   // Raw destination register selector.
	Src    byte   // Raw source register selector.
	Mod    byte   // Packed memory mode, shift and condition selectors.
	Imm    uint32 // Raw immediate operand.
}

// Decode reads an instruction from the first InstructionSize bytes of p.
// The caller must supply at least InstructionSize bytes.
func Decode(p []byte) Instruction {
	_ = p[InstructionSize-1]
	return Instruction{
		Opcode: p[0],
		Dst:    p[1],
		Src:    p[2],
		Mod:    p[3],
		Imm:    binary.LittleEndian.Uint32(p[4:]),
	}
}

// Encode returns the wire encoding of i.
func (i Instruction) Encode() [InstructionSize]byte {
	var p [InstructionSize]byte
	i.Put(p[:])
	return p
}

// Put writes the wire encoding of i into the first InstructionSize bytes of p.
func (i Instruction) Put(p []byte) {
	_ = p[InstructionSize-1]
	p[0] = i.Opcode
	p[1] = i.Dst
	p[2] = i.Src
	p[3] = i.Mod
	binary.LittleEndian.PutUint32(p[4:], i.Imm)
}

// Mnemonic returns the operation the opcode resolves to.
func (i Instruction) Mnemonic() arch.Mnemonic {
	return arch.MnemonicFor(i.Opcode)
}

// Imm32 returns the raw immediate operand.
func (i Instruction) Imm32() uint32 {
	return i.Imm
}

// SignedImm returns the immediate operand reinterpreted as two's complement.
func (i Instruction) SignedImm() int32 {
	return int32(i.Imm)
}

// UnsignedImm returns the immediate operand as an unsigned value.
func (i Instruction) UnsignedImm() uint32 {
	return i.Imm
}

// ModMem returns the memory mode selector, bits 0-1 of the modifier.
func (i Instruction) ModMem() byte {
	return i.Mod & 0b11
}

// ModShift returns the shift amount selector, bits 2-3 of the modifier.
func (i Instruction) ModShift() byte {
	return (i.Mod >> 2) & 0b11
}

// ModCond returns the condition selector, bits 4-7 of the modifier.
func (i Instruction) ModCond() int {
	return int(i.Mod >> 4)
}

// LoadSpace returns the address space a load reads from.
// Loads never target L3.
func (i Instruction) LoadSpace() arch.AddressSpace {
	if i.ModMem() != 0 {
		return arch.L1
	}
	return arch.L2
}

// StoreSpace returns the address space a store writes to. Condition
// levels at or above threshold select L3; otherwise stores use the same
// space a load would.
func (i Instruction) StoreSpace(threshold int) arch.AddressSpace {
	if i.ModCond() < threshold {
		return i.LoadSpace()
	}
	return arch.L3
}
