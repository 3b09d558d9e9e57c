package cipher

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Pack(t *testing.T) {
	require.Equal(t, uint64(76), Pack(0, 1, 2, PlainRadix))
	require.Equal(t, uint64(74*74*74-1), Pack(73, 73, 73, PlainRadix))
	require.Equal(t, uint64(94*94*94-1), Pack(93, 93, 93, CipherRadix))
	require.Equal(t, uint64(698638), Pack(79, 6, 30, CipherRadix))
}

func Test_Unpack_Inverse(t *testing.T) {
	for _, base := range []int{PlainRadix, CipherRadix} {
		for a := 0; a < base; a++ {
			for b := 0; b < base; b++ {
				for c := 0; c < base; c++ {
					x, y, z, err := Unpack(Pack(a, b, c, base), base)
					if err != nil || x != a || y != b || z != c {
						require.Failf(t, "Unpack failed", "base %d: (%d, %d, %d) -> (%d, %d, %d), %v", base, a, b, c, x, y, z, err)
					}
				}
			}
		}
	}
}

func Test_Unpack_OutOfRange(t *testing.T) {
	_, _, _, err := Unpack(74*74*74, PlainRadix)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRangeDigit))

	_, _, _, err = Unpack(DefaultModulus-1, PlainRadix)
	require.True(t, errors.Is(err, ErrOutOfRangeDigit))

	a, b, c, err := Unpack(DefaultModulus-1, CipherRadix)
	require.NoError(t, err)
	require.Equal(t, uint64(DefaultModulus-1), Pack(a, b, c, CipherRadix))
}
