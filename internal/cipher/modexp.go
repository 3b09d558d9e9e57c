package cipher

// ModExp computes base^exponent mod modulus by square-and-multiply. The modulus must be
// below 2^32, so that the product of two residues fits the uint64 accumulator before it
// is reduced. Any base^0 is 1, 0^0 included. Modulus 0 has no residues and yields 0, as
// does modulus 1.
func ModExp(base, exponent, modulus uint64) uint64 {
	if modulus <= 1 {
		return 0
	}

	result := uint64(1)
	b := base % modulus
	for e := exponent; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result * b % modulus
		}
		b = b * b % modulus
	}
	return result
}
