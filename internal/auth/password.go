package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Credentials are stored as "hex(salt)$hex(derived)". The format matches the
// rows already present in clientes.contrasena, so existing accounts keep
// working.
const (
	saltLen    = 32
	keyLen     = 32
	iterations = 100_000
	separator  = "$"
)

// Hash derives a storable credential from a plaintext password.
func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generar salt: %w", err)
	}
	derived := pbkdf2.Key([]byte(plaintext), salt, iterations, keyLen, sha256.New)
	return hex.EncodeToString(salt) + separator + hex.EncodeToString(derived), nil
}

// Verify reports whether plaintext matches the stored credential. Malformed
// credentials verify as false, they never produce an error.
func Verify(credential, plaintext string) bool {
	saltHex, hashHex, ok := strings.Cut(credential, separator)
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return false
	}
	want, err := hex.DecodeString(hashHex)
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(plaintext), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
