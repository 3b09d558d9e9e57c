package enc

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

var privateTests = []struct {
	symbol byte
	digit  int
}{
	{'a', 0}, {'z', 25}, {'A', 26}, {'Z', 51}, {'0', 52}, {'9', 61},
	{'?', 62}, {'(', 63}, {')', 64}, {'*', 65}, {',', 66}, {'-', 67},
	{'.', 68}, {'/', 69}, {':', 70}, {';', 71}, {' ', 72}, {'!', 73},
}

func Test_PrivateAlphabet_Table(t *testing.T) {
	for _, tt := range privateTests {
		d, err := Private.Digit(tt.symbol)
		require.NoError(t, err)
		require.Equalf(t, tt.digit, d, "Invalid digit for %q", tt.symbol)

		s, err := Private.Symbol(tt.digit)
		require.NoError(t, err)
		require.Equalf(t, tt.symbol, s, "Invalid symbol for %d", tt.digit)
	}
}

func Test_PrivateAlphabet_Bijective(t *testing.T) {
	require.Equal(t, 74, Private.Radix())
	seen := make(map[byte]bool)
	for d := 0; d < Private.Radix(); d++ {
		s, err := Private.Symbol(d)
		require.NoError(t, err)
		require.False(t, seen[s], "Symbol %q is mapped twice", s)
		seen[s] = true

		back, err := Private.Digit(s)
		require.NoError(t, err)
		require.Equal(t, d, back)
	}
}

func Test_PrivateAlphabet_Unsupported(t *testing.T) {
	for _, s := range []byte{'\n', '\t', '"', '#', '+', '@', '[', '~', 0, 0xff} {
		_, err := Private.Digit(s)
		require.Error(t, err)
		require.Truef(t, errors.Is(err, ErrUnsupportedCharacter), "Unexpected error for %q: %v", s, err)
	}
}

func Test_PrivateAlphabet_OutOfRange(t *testing.T) {
	for _, d := range []int{-1, 74, 94, 1000} {
		_, err := Private.Symbol(d)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrOutOfRangeDigit))
	}
}

func Test_Digits_Symbols(t *testing.T) {
	digits, err := Digits(Private, []byte("Hi there!"))
	require.NoError(t, err)
	require.Equal(t, []int{33, 8, 72, 19, 7, 4, 17, 4, 73}, digits)

	symbols, err := Symbols(Private, digits)
	require.NoError(t, err)
	require.Equal(t, "Hi there!", string(symbols))

	_, err = Digits(Private, []byte("tab\there"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnsupportedCharacter))
	require.Contains(t, err.Error(), "position 3")
}
