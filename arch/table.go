package arch

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// TableSize is the number of distinct opcode values.
const TableSize = 256

// Known table construction errors.
var (
	ErrWeightSum       = errors.New("arch: opcode weights must sum to 256")
	ErrNegativeWeight  = errors.New("arch: negative opcode weight")
	ErrUnknownMnemonic = errors.New("arch: unknown mnemonic")
)

// Table maps every opcode value to a mnemonic.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	entries  [TableSize]Mnemonic
	weights  [MnemonicCount]int
	declared int // Number of declared (mnemonic, weight) entries.
}

// NewTable flattens the given distribution into a lookup table. Each
// mnemonic is repeated Weight times, in declaration order, starting at
// opcode 0. The weights must sum to exactly TableSize.
func NewTable(freqs []Frequency) (*Table, error) {
	var sum int
	for i, f := range freqs {
		if !f.Mnemonic.Valid() {
			return nil, errors.Wrapf(ErrUnknownMnemonic, "entry %d: %d", i, f.Mnemonic)
		}
		if f.Weight < 0 {
			return nil, errors.Wrapf(ErrNegativeWeight, "entry %d: %s=%d", i, f.Mnemonic, f.Weight)
		}
		sum += f.Weight
	}

	if sum != TableSize {
		return nil, errors.Wrapf(ErrWeightSum, "have %d", sum)
	}

	t := Table{declared: len(freqs)}
	var n int
	for _, f := range freqs {
		for j := 0; j < f.Weight; j++ {
			t.entries[n] = f.Mnemonic
			n++
		}
		t.weights[f.Mnemonic] += f.Weight
	}

	t.logSummary(Logger())
	return &t, nil
}

func (t *Table) logSummary(l *zap.Logger) {
	l.Debug("opcode table built",
		zap.Int("mnemonics", t.declared),
		zap.Int("slots", len(t.entries)))
}

// Lookup returns the mnemonic for the given opcode.
func (t *Table) Lookup(opcode byte) Mnemonic {
	return t.entries[opcode]
}

// Weight returns the number of opcodes which resolve to m.
func (t *Table) Weight(m Mnemonic) int {
	if !m.Valid() {
		return 0
	}
	return t.weights[m]
}

// Range returns the first and last opcode which resolve to m.
// Returns false if m occupies no slots.
func (t *Table) Range(m Mnemonic) (first, last byte, ok bool) {
	for i, v := range t.entries {
		if v != m {
			continue
		}
		if !ok {
			first, ok = byte(i), true
		}
		last = byte(i)
	}
	return
}

// Entries returns a copy of the flattened table.
func (t *Table) Entries() [TableSize]Mnemonic {
	return t.entries
}

// opcodes is the process-wide table built from the declared frequencies.
var opcodes = mustTable(frequencies)

// mustTable builds the table or panics. A misconfigured distribution is a
// startup fault; the process must not run with a partial table.
func mustTable(freqs []Frequency) *Table {
	t, err := NewTable(freqs)
	if err != nil {
		panic(err)
	}
	return t
}

// LogTable reports the process-wide table through the package logger.
// The table is built during package initialization, before any logger can
// be installed, so callers invoke this after SetLogger.
func LogTable() {
	opcodes.logSummary(Logger())
}

// Opcodes returns the process-wide opcode table.
func Opcodes() *Table {
	return opcodes
}

// MnemonicFor returns the mnemonic the given opcode resolves to.
func MnemonicFor(opcode byte) Mnemonic {
	return opcodes.Lookup(opcode)
}
