package enc

import (
	"fmt"
	"sync"
)

const (
	// cb74 lists the symbols of the private alphabet, ordered by their digit value:
	// a-z are 0-25, A-Z are 26-51, 0-9 are 52-61, followed by punctuation, space (72) and '!' (73).
	cb74 = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"?()*,-./:; !"

	// PrivateSpace is the digit of the space symbol, used for padding.
	PrivateSpace = 72
)

var cb74Invert [256]int
var cb74Initialized sync.Once

func init() {
	setupCb74Invert()
}

func setupCb74Invert() {
	cb74Initialized.Do(func() {
		for i := range cb74Invert {
			cb74Invert[i] = -1
		}
		for i, v := range []byte(cb74) {
			cb74Invert[v] = i
		}
	})
}

// -------------------------------------------------------

// PrivateAlphabet is the 74-symbol plain text alphabet: letters, digits, space and a small
// set of punctuation marks.
type PrivateAlphabet struct {
}

// Private is a shared instance of the PrivateAlphabet
var Private Alphabet = &PrivateAlphabet{}

func (p *PrivateAlphabet) Name() string {
	return "Private74"
}

func (p *PrivateAlphabet) String() string {
	return fmt.Sprintf("%v(%d)", p.Name(), p.Radix())
}

func (p *PrivateAlphabet) Radix() int {
	return len(cb74)
}

func (p *PrivateAlphabet) Symbol(digit int) (byte, error) {
	if digit < 0 || digit >= len(cb74) {
		return 0, &DigitError{Alphabet: p.Name(), Digit: digit, Radix: len(cb74)}
	}
	return cb74[digit], nil
}

func (p *PrivateAlphabet) Digit(symbol byte) (int, error) {
	setupCb74Invert()
	d := cb74Invert[symbol]
	if d < 0 {
		return 0, &CharacterError{Alphabet: p.Name(), Char: symbol}
	}
	return d, nil
}
