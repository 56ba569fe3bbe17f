package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/hexaflex/rxvm/arch"
	"github.com/hexaflex/rxvm/program"
)

// Config defines program configuration.
type Config struct {
	Input       string          // Input program file. Empty when generating from a seed.
	Output      string          // Path to store the listing in. Empty for stdout.
	SaveArchive string          // Optional path to store the program as an archive.
	Seed        []byte          // Seed to generate a program from.
	Length      int             // Number of instructions to generate.
	Archive     bool            // Is the input an archive rather than raw code?
	Addresses   bool            // Prefix listing lines with offsets and raw bytes.
	Stats       bool            // Print a mnemonic histogram instead of a listing.
	DumpArchive bool            // Print a human-readable dump of the archive and exit.
	Verbose     bool            // Enable debug logging.
	Only        []arch.Mnemonic // Restrict output to these mnemonics. Empty for all.
	Arch        arch.Config     // VM constants used for rendering.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	c, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return c
}

// parseFlags parses args into a new Config using the given flag set.
func parseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	var c Config
	c.Length = program.DefaultLength
	c.Arch = arch.DefaultConfig()

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s [options] [<program file>]\n", fs.Name())
		fs.PrintDefaults()
	}

	seed := fs.String("seed", "", "Hex encoded seed. Generates a program instead of reading one.")
	fs.IntVar(&c.Length, "n", c.Length, "Number of instructions to generate from -seed.")
	fs.StringVar(&c.Output, "out", c.Output, "Output file. Defaults to stdout.")
	fs.StringVar(&c.SaveArchive, "save-ar", c.SaveArchive, "Store the program as an archive at the given path.")
	fs.BoolVar(&c.Archive, "ar", c.Archive, "Treat the input file as an archive instead of raw instruction words.")
	fs.BoolVar(&c.Addresses, "addr", c.Addresses, "Prefix each line with its offset and encoded bytes.")
	fs.BoolVar(&c.Stats, "stats", c.Stats, "Print mnemonic frequencies instead of a listing.")
	fs.BoolVar(&c.DumpArchive, "dump-ar", c.DumpArchive, "Print a human-readable version of the archive to stdout.")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "Enable debug logging.")
	fs.IntVar(&c.Arch.RegisterCount, "registers", c.Arch.RegisterCount, "Number of integer registers.")
	fs.IntVar(&c.Arch.StoreL3Condition, "l3-cond", c.Arch.StoreL3Condition, "Condition level at which stores target L3.")
	only := fs.String("only", "", "Comma-separated list of mnemonics to restrict the listing and statistics to.")
	version := fs.Bool("version", false, "Display version information.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *version {
		fmt.Fprintln(fs.Output(), Version())
		return nil, flag.ErrHelp
	}

	if err := c.Arch.Validate(); err != nil {
		return nil, err
	}

	if len(*only) > 0 {
		for _, name := range filteredSplit(*only, ",") {
			m, ok := arch.ParseMnemonic(name)
			if !ok {
				return nil, errors.Errorf("unknown mnemonic %q", name)
			}
			c.Only = append(c.Only, m)
		}
	}

	if len(*seed) > 0 {
		p, err := hex.DecodeString(*seed)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid seed")
		}
		if c.Length <= 0 {
			return nil, errors.Errorf("invalid program length %d", c.Length)
		}
		c.Seed = p
		return &c, nil
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return nil, errors.Errorf("missing program file or -seed")
	}

	c.Input = fs.Arg(0)
	return &c, nil
}

// filteredSplit splits value by sep and returns the resulting list, minus empty entries.
func filteredSplit(value, sep string) []string {
	out := strings.Split(value, sep)
	for i := 0; i < len(out); i++ {
		out[i] = strings.TrimSpace(out[i])
		if len(out[i]) == 0 {
			copy(out[i:], out[i+1:])
			out = out[:len(out)-1]
			i--
		}
	}
	return out
}
