package cipher

import (
	"github.com/bokysan/triblock/internal/util/enc"
)

// PadLength returns n rounded up to the next multiple of BlockSize.
func PadLength(n int) int {
	if r := n % BlockSize; r != 0 {
		return n + BlockSize - r
	}
	return n
}

// Pad extends the digits with spaces until the length is a multiple of BlockSize. The
// padding is never removed: a decrypted message keeps its trailing spaces.
func Pad(digits []int) []int {
	n := PadLength(len(digits))
	for len(digits) < n {
		digits = append(digits, enc.PrivateSpace)
	}
	return digits
}
