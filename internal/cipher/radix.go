package cipher

import (
	"github.com/bokysan/triblock/internal/util/enc"
)

// Pack interprets the triple (a, b, c) as the three digits of a number in the given base,
// most significant first.
func Pack(a, b, c int, base int) uint64 {
	bs := uint64(base)
	return uint64(a)*bs*bs + uint64(b)*bs + uint64(c)
}

// Unpack is the inverse of Pack. Values which need more than three digits in the given
// base are reported as ErrOutOfRangeDigit.
func Unpack(value uint64, base int) (a, b, c int, err error) {
	bs := uint64(base)
	if value >= bs*bs*bs {
		return 0, 0, 0, &enc.DigitError{
			Alphabet: "radix",
			Digit:    int(value / (bs * bs)),
			Radix:    base,
		}
	}

	a = int(value / (bs * bs))
	rem := value % (bs * bs)
	b = int(rem / bs)
	c = int(rem % bs)
	return a, b, c, nil
}
