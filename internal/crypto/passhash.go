// Package crypto implements password hashing for accounts and the keyed checksum
// that guards guest balances stored on the device.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// SaltLen is the per-user auth salt size.
const SaltLen = 16

// Argon2Params holds the Argon2id cost settings.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2 is used for every stored account hash. Changing it invalidates
// existing hashes since parameters are not persisted next to them.
var DefaultArgon2 = Argon2Params{Time: 3, Memory: 64 * 1024, Threads: 1, KeyLen: 32}

// Key derives the Argon2id key of password under salt.
func (p Argon2Params) Key(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// HashPassword hashes password with salt using DefaultArgon2.
func HashPassword(password, salt []byte) []byte {
	return DefaultArgon2.Key(password, salt)
}

// NewPasswordHash generates a fresh salt and hashes password with it.
func NewPasswordHash(password []byte) (hash, salt []byte, err error) {
	if salt, err = RandBytes(SaltLen); err != nil {
		return nil, nil, err
	}
	return HashPassword(password, salt), salt, nil
}

// VerifyPassword reports whether password hashes to expected under salt.
// An empty expected hash never matches.
func VerifyPassword(password, salt, expected []byte) bool {
	if len(expected) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(HashPassword(password, salt), expected) == 1
}
