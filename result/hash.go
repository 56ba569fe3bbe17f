// Package result defines the buffer a finalized VM hash is written into.
package result

import (
	"encoding/hex"
	"unsafe"
)

// Size is the length of a result hash in bytes.
const Size = 32

// Hash holds a finalized result.
type Hash [Size]byte

// Empty returns a zeroed hash, ready to be filled in place.
func Empty() Hash {
	return Hash{}
}

// FromBytes copies p into a new hash.
// Returns false if p does not have exactly Size bytes.
func FromBytes(p []byte) (Hash, bool) {
	var h Hash
	if len(p) != Size {
		return h, false
	}
	copy(h[:], p)
	return h, true
}

// RawMut returns a pointer to the first byte of h, for native hashing
// routines which write their output directly into the buffer.
// The pointer is only valid while h is.
func (h *Hash) RawMut() unsafe.Pointer {
	return unsafe.Pointer(&h[0])
}

// Bytes returns h as a slice sharing its storage.
func (h *Hash) Bytes() []byte {
	return h[:]
}

// IsZero returns true if no byte of h has been written.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
