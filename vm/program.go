package vm

// DecodeProgram splits p into instruction words.
// Returns an error if len(p) is not a multiple of InstructionSize.
func DecodeProgram(p []byte) ([]Instruction, error) {
	if rem := len(p) % InstructionSize; rem != 0 {
		return nil, NewError(len(p)-rem, "truncated instruction: %d trailing bytes", rem)
	}

	out := make([]Instruction, len(p)/InstructionSize)
	for i := range out {
		out[i] = Decode(p[i*InstructionSize:])
	}
	return out, nil
}

// EncodeProgram returns the wire encoding of the given instructions.
func EncodeProgram(prog []Instruction) []byte {
	out := make([]byte, len(prog)*InstructionSize)
	for i, instr := range prog {
		instr.Put(out[i*InstructionSize:])
	}
	return out
}
