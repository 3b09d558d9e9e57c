package cipher

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_DefaultKey(t *testing.T) {
	require.NoError(t, DefaultKey.Validate())
	require.Equal(t, uint64(794093), DefaultKey.Modulus())
	require.Equal(t, uint64(792288), DefaultKey.Totient())
	require.True(t, DefaultKey.Matches(DefaultPrivateExponent))
	require.False(t, DefaultKey.Matches(DefaultPrivateExponent+1))
	require.False(t, DefaultKey.Matches(DefaultPublicExponent))
}

func Test_Key_WithoutPrivate(t *testing.T) {
	k := DefaultKey
	k.Private = 0
	require.NoError(t, k.Validate())
}

var invalidKeys = []struct {
	name string
	key  Key
}{
	{"zero", Key{}},
	{"same primes", Key{P: 1049, Q: 1049, Public: 3}},
	{"too small", Key{P: 11, Q: 13, Public: 7, Private: 103}},
	{"too large", Key{P: 1049, Q: 1051, Public: 5}},
	{"overflow", Key{P: 1 << 33, Q: 1 << 33, Public: 5}},
	{"no public", Key{P: DefaultP, Q: DefaultQ}},
	{"wrong private", Key{P: DefaultP, Q: DefaultQ, Public: DefaultPublicExponent, Private: 418728}},
}

func Test_Key_Invalid(t *testing.T) {
	for _, tt := range invalidKeys {
		err := tt.key.Validate()
		require.Errorf(t, err, "Key %q should not validate", tt.name)
		require.Truef(t, errors.Is(err, ErrInvalidKey), "Key %q: unexpected error %v", tt.name, err)
	}
}
