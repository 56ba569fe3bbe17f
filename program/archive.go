package program

import (
	"compress/gzip"
	"encoding/hex"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hexaflex/rxvm/vm"
)

// Archive defines a stored program.
type Archive struct {
	Seed []byte // Seed the program was generated from. Empty for hand-written code.
	Code []byte // Encoded instruction words.
}

// New creates a new archive holding the given program.
func New(seed []byte, prog []vm.Instruction) *Archive {
	return &Archive{
		Seed: seed,
		Code: vm.EncodeProgram(prog),
	}
}

// Instructions decodes the archived code.
func (a *Archive) Instructions() ([]vm.Instruction, error) {
	prog, err := vm.DecodeProgram(a.Code)
	if err != nil {
		return nil, errors.Wrapf(err, "ar")
	}
	return prog, nil
}

// Load reads archive data from the given stream.
func (a *Archive) Load(r io.Reader) (err error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return errors.Wrapf(err, "ar: invalid archive format")
	}

	defer gz.Close()
	defer recoverOnPanic(&err)

	seed := readBytes(gz)
	code := readBytes(gz)
	a.Seed, a.Code = seed, code

	Logger().Debug("archive loaded",
		zap.Int("seed", len(a.Seed)),
		zap.Int("code", len(a.Code)))
	return
}

// Save writes archive data to the given stream.
func (a *Archive) Save(w io.Writer) (err error) {
	defer recoverOnPanic(&err)

	gz := gzip.NewWriter(w)
	writeBytes(gz, a.Seed)
	writeBytes(gz, a.Code)
	check(gz.Close())
	return
}

func recoverOnPanic(err *error) {
	x := recover()
	if x == nil {
		return
	}

	switch tx := x.(type) {
	case runtime.Error:
		panic(tx)
	case error:
		*err = errors.Wrapf(tx, "ar")
	default:
		*err = fmt.Errorf("ar: %v", tx)
	}
}

// String returns a human-readable dump of the archive's contents.
func (a *Archive) String() string {
	var sb strings.Builder

	if len(a.Seed) > 0 {
		fmt.Fprintf(&sb, "Seed: %s\n", hex.EncodeToString(a.Seed))
	}

	if len(a.Code) > 0 {
		fmt.Fprintf(&sb, "Code (%d instructions):\n", len(a.Code)/vm.InstructionSize)
		fmt.Fprintf(&sb, "%s\n", hex.Dump(a.Code))
	}

	return sb.String()
}
