package arch

import "strconv"

// RegisterName returns the assembly name of integer register n.
func RegisterName(n int) string {
	return "r" + strconv.Itoa(n)
}
