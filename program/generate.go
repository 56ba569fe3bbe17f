// Package program synthesizes instruction sequences from a seed and
// stores them in a compressed archive format.
package program

import (
	"golang.org/x/crypto/blake2b"
	"go.uber.org/zap"

	"github.com/hexaflex/rxvm/vm"
)

// DefaultLength is the number of instructions in a generated program.
const DefaultLength = 256

// Entropy returns n bytes derived from seed. The first 64 bytes are
// blake2b-512(seed); every following block hashes the block before it.
func Entropy(seed []byte, n int) []byte {
	out := make([]byte, 0, n+blake2b.Size)
	block := blake2b.Sum512(seed)
	out = append(out, block[:]...)

	for len(out) < n {
		block = blake2b.Sum512(block[:])
		out = append(out, block[:]...)
	}
	return out[:n]
}

// Generate returns a program of n instructions derived from seed.
// Opcodes are drawn uniformly, so mnemonics occur with the frequencies
// declared in the opcode table.
func Generate(seed []byte, n int) []vm.Instruction {
	if n <= 0 {
		return nil
	}

	prog, err := vm.DecodeProgram(Entropy(seed, n*vm.InstructionSize))
	if err != nil {
		// Entropy always yields whole instruction words.
		panic(err)
	}

	Logger().Debug("program generated",
		zap.Int("instructions", n),
		zap.Binary("seed", seed))
	return prog
}
