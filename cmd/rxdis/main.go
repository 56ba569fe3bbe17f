package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hexaflex/rxvm/arch"
	"github.com/hexaflex/rxvm/disasm"
	"github.com/hexaflex/rxvm/program"
	"github.com/hexaflex/rxvm/vm"
)

func main() {
	config := parseArgs()

	log := newLogger(config.Verbose)
	installLogger(log)

	os.Exit(finish(log, run(config, log)))
}

// finish reports err, flushes log and returns the process exit code.
// os.Exit skips deferred calls, so the flush happens here.
func finish(log *zap.Logger, err error) int {
	code := 0
	if err != nil {
		log.Error("rxdis failed", zap.Error(err))
		code = 1
	}

	log.Sync()
	return code
}

// installLogger hands log to the library packages and reports the opcode
// table, which was built before any logger was available.
func installLogger(log *zap.Logger) {
	arch.SetLogger(log.Named("arch"))
	program.SetLogger(log.Named("program"))
	arch.LogTable()
}

// newLogger creates the process logger.
func newLogger(verbose bool) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return log
}

// run loads or generates the configured program and writes the requested
// output for it.
func run(c *Config, log *zap.Logger) error {
	ar, err := loadArchive(c)
	if err != nil {
		return err
	}

	if c.DumpArchive {
		fmt.Fprintln(os.Stdout, ar.String())
		return nil
	}

	prog, err := ar.Instructions()
	if err != nil {
		return err
	}

	log.Debug("program ready",
		zap.Int("instructions", len(prog)),
		zap.Int("registers", c.Arch.RegisterCount),
		zap.Int("l3_condition", c.Arch.StoreL3Condition))

	if len(c.SaveArchive) > 0 {
		if err := saveArchive(c.SaveArchive, ar); err != nil {
			return err
		}
		log.Info("archive saved", zap.String("path", c.SaveArchive))
	}

	w, close, err := makeWriter(c)
	if err != nil {
		return err
	}
	defer close()

	return writeOutput(w, c, prog)
}

// writeOutput writes either the listing or the histogram of prog to w.
func writeOutput(w io.Writer, c *Config, prog []vm.Instruction) error {
	bw := bufio.NewWriter(w)

	switch {
	case c.Stats:
		h := disasm.Count(disasm.Select(prog, c.Only))
		if _, err := h.WriteTo(bw); err != nil {
			return err
		}

	case c.Addresses:
		if err := disasm.New(c.Arch).Program(bw, prog, c.Only...); err != nil {
			return err
		}

	default:
		for _, line := range disasm.New(c.Arch).Lines(disasm.Select(prog, c.Only)) {
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// loadArchive generates the program from the configured seed, or reads it
// from the input file.
func loadArchive(c *Config) (*program.Archive, error) {
	if c.Seed != nil {
		return program.New(c.Seed, program.Generate(c.Seed, c.Length)), nil
	}

	fd, err := os.Open(c.Input)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	if c.Archive {
		var ar program.Archive
		if err := ar.Load(fd); err != nil {
			return nil, errors.Wrapf(err, "%s", c.Input)
		}
		return &ar, nil
	}

	code, err := io.ReadAll(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", c.Input)
	}
	return &program.Archive{Code: code}, nil
}

// saveArchive writes ar to the given path.
func saveArchive(path string, ar *program.Archive) error {
	if err := makeDir(path); err != nil {
		return err
	}

	fd, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := ar.Save(fd); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// makeWriter creates an output writer and a cleanup function for it.
func makeWriter(c *Config) (io.Writer, func(), error) {
	if c.Output == "" {
		return os.Stdout, func() {}, nil
	}

	if err := makeDir(c.Output); err != nil {
		return nil, nil, err
	}

	fd, err := os.Create(c.Output)
	if err != nil {
		return nil, nil, err
	}

	return fd, func() { fd.Close() }, nil
}

// makeDir creates the parent directory of path, if it has one.
func makeDir(path string) error {
	dir, _ := filepath.Split(path)
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0744)
}
