package cipher

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/safenum"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	// BlockSize is the number of symbols in a block
	BlockSize = 3

	// PlainRadix is the radix of plain text digits
	PlainRadix = 74
	// CipherRadix is the radix of cipher text digits
	CipherRadix = 94

	// maxModulus keeps the product of two residues within uint64
	maxModulus = 1 << 32
)

// Reference key material. p=1049 and q=757 give the modulus 794093 with phi 792288.
const (
	DefaultP               = 1049
	DefaultQ               = 757
	DefaultModulus         = DefaultP * DefaultQ
	DefaultPublicExponent  = 58777
	DefaultPrivateExponent = 418729
)

// DefaultKey is the reference key pair. Exponents satisfy e*d = 1 (mod phi(p*q)).
var DefaultKey = Key{
	P:       DefaultP,
	Q:       DefaultQ,
	Public:  DefaultPublicExponent,
	Private: DefaultPrivateExponent,
}

// Key holds the modulus factors and the exponent pair. A zero Private means that the
// private exponent is not known and will be supplied at decryption time.
type Key struct {
	P       uint64 `yaml:"p"`
	Q       uint64 `yaml:"q"`
	Public  uint64 `yaml:"public"`
	Private uint64 `yaml:"private"`
}

func (k Key) String() string {
	return fmt.Sprintf("Key(n=%d, e=%d)", k.Modulus(), k.Public)
}

// Modulus returns p*q
func (k Key) Modulus() uint64 {
	return k.P * k.Q
}

// Totient returns Euler's phi of the modulus, assuming p and q are distinct primes.
func (k Key) Totient() uint64 {
	return (k.P - 1) * (k.Q - 1)
}

// Validate checks that the key can be used to round-trip every plain text block:
// the modulus must hold any base-74 block, every residue must fit into three base-94
// digits, and the exponents (if private one is set) must be inverse modulo phi.
func (k Key) Validate() error {
	var errs error

	if k.P < 2 || k.Q < 2 {
		errs = multierror.Append(errs, errors.Errorf("modulus factors must be larger than 1, got p=%d, q=%d", k.P, k.Q))
		return &kindError{kind: ErrInvalidKey, err: errs}
	}
	if k.P == k.Q {
		errs = multierror.Append(errs, errors.Errorf("modulus factors must be distinct, got p=q=%d", k.P))
	}

	n := k.Modulus()
	if n >= maxModulus || n/k.Q != k.P {
		errs = multierror.Append(errs, errors.Errorf("modulus %d*%d is too large", k.P, k.Q))
	} else {
		if n < PlainRadix*PlainRadix*PlainRadix {
			errs = multierror.Append(errs, errors.Errorf("modulus %d is smaller than %d^3", n, PlainRadix))
		}
		if n > CipherRadix*CipherRadix*CipherRadix {
			errs = multierror.Append(errs, errors.Errorf("modulus %d is larger than %d^3", n, CipherRadix))
		}
	}

	if k.Public == 0 {
		errs = multierror.Append(errs, errors.New("public exponent must be set"))
	}

	if errs == nil && k.Private != 0 && !k.inverse(k.Private) {
		errs = multierror.Append(errs, errors.Errorf("exponents %d and %d are not inverse modulo %d", k.Public, k.Private, k.Totient()))
	}

	if errs != nil {
		return &kindError{kind: ErrInvalidKey, err: errs}
	}
	return nil
}

// Matches reports whether d is the private exponent belonging to this key's public
// exponent. It does not tell if decryption will succeed with a different d, only that
// it is guaranteed to with this one.
func (k Key) Matches(d uint64) bool {
	if k.P < 2 || k.Q < 2 || k.Public == 0 {
		return false
	}
	return k.inverse(d)
}

// inverse checks e*d = 1 (mod phi) without overflowing the product.
func (k Key) inverse(d uint64) bool {
	phi := k.Totient()
	if phi < 2 {
		return false
	}

	one := new(safenum.Nat).SetUint64(1)
	de := new(safenum.Nat).SetUint64(k.Public)
	de.Mul(de, new(safenum.Nat).SetUint64(d), 128)

	congruence := new(safenum.Nat).Mod(de, safenum.ModulusFromBytes(uint64Bytes(phi)))
	return natUint64(congruence) == natUint64(one)
}

func uint64Bytes(v uint64) []byte {
	return new(big.Int).SetUint64(v).Bytes()
}

func natUint64(n *safenum.Nat) uint64 {
	return new(big.Int).SetBytes(n.Bytes()).Uint64()
}
