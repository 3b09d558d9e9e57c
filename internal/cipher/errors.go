package cipher

import (
	"github.com/bokysan/triblock/internal/util/enc"
	"github.com/pkg/errors"
)

// Error taxonomy of the cipher. All of these are structural: retrying with the same
// input will fail the same way.
//
// A wrong private exponent has no error of its own. Decryption with a wrong key yields
// garbage plain text, and is only sometimes reported as ErrOutOfRangeDigit when a
// decrypted block does not fit into three plain text digits.
var (
	ErrUnsupportedCharacter = enc.ErrUnsupportedCharacter
	ErrOutOfRangeDigit      = enc.ErrOutOfRangeDigit
	ErrInvalidCipherLength  = errors.New("cipher text length is not a multiple of the block size")
	ErrInvalidKey           = errors.New("invalid key")
)

// kindError attaches details to one of the sentinel errors above, while keeping it
// matchable with errors.Is and errors.Cause.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.err.Error()
}

func (e *kindError) Unwrap() error {
	return e.kind
}

func (e *kindError) Cause() error {
	return e.kind
}
