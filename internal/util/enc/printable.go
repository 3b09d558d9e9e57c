package enc

import "fmt"

const (
	// PrintableOffset is the ASCII value of digit zero of the printable alphabet
	PrintableOffset = 32
	// PrintableRadix is the count of printable ASCII values, starting at PrintableOffset
	PrintableRadix = 94
)

// -------------------------------------------------------

// PrintableAlphabet renders radix-94 digits as printable ASCII characters (32 through 125).
// No table is involved: a symbol is simply the digit shifted by PrintableOffset.
type PrintableAlphabet struct {
}

// Printable is a shared instance of the PrintableAlphabet
var Printable Alphabet = &PrintableAlphabet{}

func (p *PrintableAlphabet) Name() string {
	return "Printable94"
}

func (p *PrintableAlphabet) String() string {
	return fmt.Sprintf("%v(%d)", p.Name(), p.Radix())
}

func (p *PrintableAlphabet) Radix() int {
	return PrintableRadix
}

func (p *PrintableAlphabet) Symbol(digit int) (byte, error) {
	if digit < 0 || digit >= PrintableRadix {
		return 0, &DigitError{Alphabet: p.Name(), Digit: digit, Radix: PrintableRadix}
	}
	return byte(digit + PrintableOffset), nil
}

func (p *PrintableAlphabet) Digit(symbol byte) (int, error) {
	d := int(symbol) - PrintableOffset
	if d < 0 || d >= PrintableRadix {
		return 0, &DigitError{Alphabet: p.Name(), Digit: d, Radix: PrintableRadix}
	}
	return d, nil
}
