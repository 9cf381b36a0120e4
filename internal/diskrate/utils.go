package diskrate

import (
	"golang.org/x/exp/constraints"
)

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// MBToBytes converts a MiB amount to a whole number of bytes.
func MBToBytes(mb float64) int64 {
	return int64(mb * 1024.0 * 1024.0)
}
