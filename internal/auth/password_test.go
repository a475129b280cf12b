package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axcelcuno/tienda/internal/auth"
)

func TestHashVerify(t *testing.T) {
	t.Run("Roundtrip", func(t *testing.T) {
		cred, err := auth.Hash("secret123")
		require.NoError(t, err)
		assert.True(t, auth.Verify(cred, "secret123"))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		cred, err := auth.Hash("secret123")
		require.NoError(t, err)
		assert.False(t, auth.Verify(cred, "secret124"))
		assert.False(t, auth.Verify(cred, ""))
	})

	t.Run("FreshSaltPerHash", func(t *testing.T) {
		a, err := auth.Hash("mismo")
		require.NoError(t, err)
		b, err := auth.Hash("mismo")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
		assert.True(t, auth.Verify(a, "mismo"))
		assert.True(t, auth.Verify(b, "mismo"))
	})

	t.Run("Format", func(t *testing.T) {
		cred, err := auth.Hash("x")
		require.NoError(t, err)
		salt, hash, ok := strings.Cut(cred, "$")
		require.True(t, ok)
		assert.Len(t, salt, 64)
		assert.Len(t, hash, 64)
	})
}

func TestVerifyMalformed(t *testing.T) {
	for _, cred := range []string{
		"",
		"$",
		"sin-separador",
		"nohex$nohex",
		"abcd$",
		"$abcd",
		"abcd$abcd$abcd",
		"zzzz$" + strings.Repeat("ab", 32),
	} {
		assert.False(t, auth.Verify(cred, "loquesea"), "credential %q", cred)
	}
}
