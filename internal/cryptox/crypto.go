// Package cryptox derives login verifiers from passwords. The server never
// sees a password: clients derive a key with argon2id and send only its
// SHA-256 verifier.
package cryptox

import (
	"crypto/sha256"

	"github.com/dmitrijs2005/duosync/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of a freshly generated registration salt.
const SaltSize = 16

// NewSalt returns a random salt for a new account.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// DeriveKey stretches password with argon2id (t=1, 64 MiB, 4 lanes) into a
// 32-byte key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier returns the value stored server-side for key.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}
