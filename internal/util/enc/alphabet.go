package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedCharacter is returned when a symbol has no digit in the alphabet
	ErrUnsupportedCharacter = errors.New("unsupported character")
	// ErrOutOfRangeDigit is returned when a digit does not fit the radix of the alphabet
	ErrOutOfRangeDigit = errors.New("digit out of range")
)

// Alphabet maps the digits of a fixed radix to single-byte symbols and back.
type Alphabet interface {
	// Name is the user-friendly name of this alphabet
	Name() string

	// Radix is the number of distinct digits, digits are in range [0, Radix)
	Radix() int

	// Symbol converts a digit into its printable symbol
	Symbol(digit int) (byte, error)

	// Digit is the reverse process of Symbol
	Digit(symbol byte) (int, error)
}

// Digits converts every symbol of data into a digit of the given alphabet. The first
// symbol which cannot be converted stops the conversion.
func Digits(a Alphabet, data []byte) ([]int, error) {
	res := make([]int, len(data))
	for i, s := range data {
		d, err := a.Digit(s)
		if err != nil {
			return nil, errors.Wrapf(err, "%v: position %d", a.Name(), i)
		}
		res[i] = d
	}
	return res, nil
}

// Symbols is the reverse of Digits.
func Symbols(a Alphabet, digits []int) ([]byte, error) {
	res := make([]byte, len(digits))
	for i, d := range digits {
		s, err := a.Symbol(d)
		if err != nil {
			return nil, errors.Wrapf(err, "%v: position %d", a.Name(), i)
		}
		res[i] = s
	}
	return res, nil
}

// CharacterError describes a symbol which could not be mapped into an alphabet.
type CharacterError struct {
	Alphabet string
	Char     byte
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("%v: %q (0x%02x) is not a part of the alphabet", e.Alphabet, e.Char, e.Char)
}

func (e *CharacterError) Unwrap() error {
	return ErrUnsupportedCharacter
}

func (e *CharacterError) Cause() error {
	return ErrUnsupportedCharacter
}

// DigitError describes a digit which does not fit into the radix of an alphabet.
type DigitError struct {
	Alphabet string
	Digit    int
	Radix    int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("%v: digit %d is not in range [0, %d)", e.Alphabet, e.Digit, e.Radix)
}

func (e *DigitError) Unwrap() error {
	return ErrOutOfRangeDigit
}

func (e *DigitError) Cause() error {
	return ErrOutOfRangeDigit
}
