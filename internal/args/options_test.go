package args

import (
	"github.com/bokysan/triblock/internal/cipher"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_CipherKey_Defaults(t *testing.T) {
	saved := Key
	defer func() { Key = saved }()

	Key.P, Key.Q, Key.Public, Key.Private = 0, 0, 0, 0
	k := CipherKey()
	require.Equal(t, uint64(cipher.DefaultModulus), k.Modulus())
	require.Equal(t, uint64(cipher.DefaultPublicExponent), k.Public)
	require.Equal(t, uint64(0), k.Private)
	require.NoError(t, k.Validate())
}

func Test_CipherKey_Configured(t *testing.T) {
	saved := Key
	defer func() { Key = saved }()

	Key.P, Key.Q, Key.Public, Key.Private = 1049, 757, 58777, 418729
	require.Equal(t, cipher.DefaultKey, CipherKey())

	Key.P, Key.Q = 1049, 0
	require.Error(t, CipherKey().Validate())
}
