package cipher

import (
	"github.com/bokysan/triblock/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// maxReportedCharacters limits the number of unsupported characters listed in one error
const maxReportedCharacters = 16

// Cipher encrypts text with the public exponent of its key and decrypts it with a private
// exponent supplied by the caller. Text is split into blocks of three private alphabet
// symbols; every block is treated as a base-74 number, raised to the exponent modulo p*q
// and written out as three base-94 printable characters.
//
// Cipher has no mutable state and can be shared between goroutines.
type Cipher struct {
	key     Key
	lossy   bool
	workers int
}

// Option configures a Cipher
type Option func(c *Cipher)

// WithLossy substitutes unsupported characters with digit 0 ('a') instead of failing.
func WithLossy(lossy bool) Option {
	return func(c *Cipher) {
		c.lossy = lossy
	}
}

// WithWorkers spreads the blocks of a message over n goroutines. Output does not depend
// on the number of workers.
func WithWorkers(n int) Option {
	return func(c *Cipher) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// New creates a new Cipher for the given key. The key is validated first.
func New(key Key, opts ...Option) (*Cipher, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	c := &Cipher{
		key:     key,
		workers: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var defaultCipher = &Cipher{
	key:     DefaultKey,
	workers: 1,
}

// Encode encrypts plain text with the reference key.
func Encode(plain []byte) ([]byte, error) {
	return defaultCipher.Encode(plain)
}

// Decode decrypts cipher text with the reference modulus and the given private exponent.
func Decode(cipherText []byte, privateExponent uint64) ([]byte, error) {
	return defaultCipher.Decode(cipherText, privateExponent)
}

// Key returns the key of this cipher
func (c *Cipher) Key() Key {
	return c.key
}

// Encode encrypts the plain text with the public exponent. The output is padded to a
// multiple of three characters, each in printable ASCII range [32, 125].
func (c *Cipher) Encode(plain []byte) ([]byte, error) {
	digits, err := c.plainDigits(plain)
	if err != nil {
		return nil, err
	}
	if padded := PadLength(len(digits)) - len(digits); padded > 0 {
		log.Tracef("Padding message of %d symbols with %d spaces", len(digits), padded)
	}
	digits = Pad(digits)

	n := c.key.Modulus()
	e := c.key.Public
	out := make([]byte, len(digits))

	err = c.blocks(len(digits)/BlockSize, func(i int) error {
		x := Pack(digits[BlockSize*i], digits[BlockSize*i+1], digits[BlockSize*i+2], PlainRadix)
		y := ModExp(x, e, n)
		a, b, d, err := Unpack(y, CipherRadix)
		if err != nil {
			return errors.Wrapf(err, "block %d", i)
		}
		return putSymbols(enc.Printable, out[BlockSize*i:], a, b, d)
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("Encrypted %d bytes into %d blocks", len(plain), len(out)/BlockSize)
	return out, nil
}

// Decode decrypts the cipher text with the given private exponent. Padding added during
// encryption is kept.
//
// Decoding with a wrong exponent is not reliably detected: it produces garbage, and only
// fails when a decrypted block does not fit into three plain text digits.
func (c *Cipher) Decode(cipherText []byte, privateExponent uint64) ([]byte, error) {
	if len(cipherText)%BlockSize != 0 {
		return nil, &kindError{
			kind: ErrInvalidCipherLength,
			err:  errors.Errorf("got %d bytes", len(cipherText)),
		}
	}
	if !c.key.Matches(privateExponent) {
		log.Warnf("Decryption key %d does not belong to %v, output will most likely be garbage", privateExponent, c.key)
	}

	n := c.key.Modulus()
	out := make([]byte, len(cipherText))

	err := c.blocks(len(cipherText)/BlockSize, func(i int) error {
		digits, err := enc.Digits(enc.Printable, cipherText[BlockSize*i:BlockSize*(i+1)])
		if err != nil {
			return errors.Wrapf(err, "block %d", i)
		}
		x := Pack(digits[0], digits[1], digits[2], CipherRadix)
		if x >= n {
			return errors.Wrapf(&enc.DigitError{Alphabet: "residue", Digit: int(x), Radix: int(n)}, "block %d", i)
		}
		y := ModExp(x, privateExponent, n)
		a, b, d, err := Unpack(y, PlainRadix)
		if err != nil {
			return errors.Wrapf(err, "block %d does not decrypt into plain text, wrong key?", i)
		}
		return putSymbols(enc.Private, out[BlockSize*i:], a, b, d)
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("Decrypted %d blocks", len(out)/BlockSize)
	return out, nil
}

// plainDigits maps the text into the private alphabet. Strict mode reports every
// offending character (up to a limit), lossy mode replaces them with 0.
func (c *Cipher) plainDigits(plain []byte) ([]int, error) {
	digits := make([]int, len(plain))
	var errs *multierror.Error
	unsupported := 0

	for i, s := range plain {
		d, err := enc.Private.Digit(s)
		if err != nil {
			unsupported++
			if !c.lossy && unsupported <= maxReportedCharacters {
				errs = multierror.Append(errs, errors.Wrapf(err, "position %d", i))
			}
			continue
		}
		digits[i] = d
	}

	if unsupported == 0 {
		return digits, nil
	}
	if c.lossy {
		log.Warnf("Replaced %d unsupported characters with %q", unsupported, 'a')
		return digits, nil
	}
	if unsupported > maxReportedCharacters {
		errs = multierror.Append(errs, errors.Errorf("%d more unsupported characters", unsupported-maxReportedCharacters))
	}
	return nil, &kindError{kind: ErrUnsupportedCharacter, err: errs}
}

// blocks runs fn for every block index, split into contiguous ranges over the workers.
func (c *Cipher) blocks(count int, fn func(i int) error) error {
	workers := c.workers
	if workers > count {
		workers = count
	}
	if workers <= 1 {
		for i := 0; i < count; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	size := (count + workers - 1) / workers
	for start := 0; start < count; start += size {
		from, to := start, start+size
		if to > count {
			to = count
		}
		g.Go(func() error {
			for i := from; i < to; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func putSymbols(a enc.Alphabet, dst []byte, digits ...int) error {
	symbols, err := enc.Symbols(a, digits)
	if err != nil {
		return err
	}
	copy(dst, symbols)
	return nil
}
