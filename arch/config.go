package arch

import "github.com/pkg/errors"

// Reference VM values for the externally owned constants.
const (
	DefaultRegisterCount    = 8
	DefaultStoreL3Condition = 14
)

// Config holds the constants this package consumes from the surrounding VM.
// They must match the reference VM being mirrored.
type Config struct {
	RegisterCount    int // Divisor reducing raw dst/src bytes to register indices.
	StoreL3Condition int // Condition level at or above which stores target L3.
}

// DefaultConfig returns the reference VM configuration.
func DefaultConfig() Config {
	return Config{
		RegisterCount:    DefaultRegisterCount,
		StoreL3Condition: DefaultStoreL3Condition,
	}
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	if c.RegisterCount < 1 || c.RegisterCount > 256 {
		return errors.Errorf("arch: register count %d out of range [1, 256]", c.RegisterCount)
	}
	if c.StoreL3Condition < 0 || c.StoreL3Condition > 16 {
		return errors.Errorf("arch: store L3 condition %d out of range [0, 16]", c.StoreL3Condition)
	}
	return nil
}

// Register reduces a raw register selector to a register index.
func (c Config) Register(b byte) int {
	return int(b) % c.RegisterCount
}
