// Package disasm renders decoded instructions as assembly text.
//
// Output is deterministic and matches the reference VM's listing format,
// so it can be compared line by line across implementations.
package disasm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hexaflex/rxvm/arch"
	"github.com/hexaflex/rxvm/vm"
)

// Disassembler renders instructions for a given VM configuration.
// It holds no mutable state and is safe for concurrent use. The zero
// value renders with arch.DefaultConfig.
type Disassembler struct {
	cfg arch.Config
}

// New creates a disassembler for the given configuration.
// It panics if the configuration does not validate.
func New(cfg arch.Config) *Disassembler {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &Disassembler{cfg: cfg}
}

// Config returns the configuration d renders with.
func (d *Disassembler) Config() arch.Config {
	if d.cfg.RegisterCount == 0 {
		return arch.DefaultConfig()
	}
	return d.cfg
}

// Instruction renders instr using the mnemonic its opcode resolves to.
func (d *Disassembler) Instruction(instr vm.Instruction) string {
	return d.Render(instr, instr.Mnemonic())
}

// Render returns the assembly text for instr as the operation m.
func (d *Disassembler) Render(instr vm.Instruction, m arch.Mnemonic) string {
	var sb strings.Builder
	d.write(&sb, d.Config(), instr, m)
	return sb.String()
}

func (d *Disassembler) write(sb *strings.Builder, cfg arch.Config, instr vm.Instruction, m arch.Mnemonic) {
	dst := cfg.Register(instr.Dst)
	src := cfg.Register(instr.Src)
	name := m.String()

	switch arch.FamilyOf(m) {
	case arch.TwoRegister:
		fmt.Fprintf(sb, "%s %s, %s", name, arch.RegisterName(dst), arch.RegisterName(src))

	case arch.RegisterMemory:
		fmt.Fprintf(sb, "%s %s, [%s]", name, arch.RegisterName(dst), arch.RegisterName(src))

	case arch.Subtract:
		if dst != src {
			fmt.Fprintf(sb, "%s %s, %s", name, arch.RegisterName(dst), arch.RegisterName(src))
		} else {
			fmt.Fprintf(sb, "%s %s, %d", name, arch.RegisterName(dst), instr.UnsignedImm())
		}

	case arch.Store:
		fmt.Fprintf(sb, "%s %s[%s %d], %s", name, instr.StoreSpace(cfg.StoreL3Condition),
			arch.RegisterName(dst), instr.SignedImm(), arch.RegisterName(src))

	case arch.Branch:
		fmt.Fprintf(sb, "%s %d", name, instr.UnsignedImm())

	// The dst field selects a rounding mode here, not a register.
	case arch.RoundControl:
		fmt.Fprintf(sb, "%s %d", name, instr.Dst)

	case arch.Negate:
		fmt.Fprintf(sb, "%s %s", name, arch.RegisterName(int(instr.Dst)))

	default:
		sb.WriteString(name)
	}
}

// Program writes an addressed listing of prog to w, one instruction per line.
// When only is not empty, instructions with other mnemonics are skipped;
// the remaining lines keep their original offsets.
func (d *Disassembler) Program(w io.Writer, prog []vm.Instruction, only ...arch.Mnemonic) error {
	cfg := d.Config()

	var sb strings.Builder
	for i, instr := range prog {
		m := instr.Mnemonic()
		if !Match(m, only) {
			continue
		}

		sb.Reset()
		p := instr.Encode()
		fmt.Fprintf(&sb, "%04x: % x  ", i*vm.InstructionSize, p[:])
		d.write(&sb, cfg, instr, m)
		sb.WriteByte('\n')

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// Match returns true if m is in set, or set is empty.
func Match(m arch.Mnemonic, set []arch.Mnemonic) bool {
	if len(set) == 0 {
		return true
	}
	for _, v := range set {
		if v == m {
			return true
		}
	}
	return false
}

// Select returns the instructions of prog whose mnemonic is in set.
// An empty set selects every instruction.
func Select(prog []vm.Instruction, set []arch.Mnemonic) []vm.Instruction {
	if len(set) == 0 {
		return prog
	}

	var out []vm.Instruction
	for _, instr := range prog {
		if Match(instr.Mnemonic(), set) {
			out = append(out, instr)
		}
	}
	return out
}

// Lines renders every instruction in prog.
func (d *Disassembler) Lines(prog []vm.Instruction) []string {
	out := make([]string, len(prog))
	for i, instr := range prog {
		out[i] = d.Instruction(instr)
	}
	return out
}

// Histogram counts how often each mnemonic occurs in a program.
type Histogram [arch.MnemonicCount]int

// Count returns the histogram of prog.
func Count(prog []vm.Instruction) Histogram {
	var h Histogram
	for _, instr := range prog {
		h[instr.Mnemonic()]++
	}
	return h
}

// Total returns the number of counted instructions.
func (h *Histogram) Total() int {
	var n int
	for _, v := range h {
		n += v
	}
	return n
}

// WriteTo writes one line per mnemonic in declaration order, along with
// the observed share and the share expected from the opcode weights.
func (h *Histogram) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	total := h.Total()

	for _, f := range arch.Frequencies() {
		have := 0.0
		if total > 0 {
			have = float64(h[f.Mnemonic]) / float64(total)
		}
		want := float64(f.Weight) / arch.TableSize

		fmt.Fprintf(&sb, "%-9s %6d  %6.4f  %6.4f\n",
			f.Mnemonic, h[f.Mnemonic], have, want)
	}

	sb.WriteString("total     " + strconv.Itoa(total) + "\n")
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}
