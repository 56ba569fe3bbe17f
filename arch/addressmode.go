package arch

// AddressSpace identifies one of the scratchpad tiers a load or store
// may target.
type AddressSpace byte

// Known address spaces.
const (
	L1 AddressSpace = iota + 1 // Smallest tier. Selected by a non-zero memory mode.
	L2                         // Middle tier. Selected by a zero memory mode.
	L3                         // Largest tier. Reachable by stores only.
)

// String returns the assembly label of the address space.
func (a AddressSpace) String() string {
	switch a {
	case L1:
		return "L1"
	case L2:
		return "L2"
	case L3:
		return "L3"
	}
	return ""
}
