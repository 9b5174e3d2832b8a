package crypto

import (
	"crypto/subtle"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// LedgerSalt keys the guest balance checksum. It ships inside the client binary,
// so the checksum deters casual edits of local storage; it is not tamper-proof.
var LedgerSalt = []byte("kloze-stickers/guest-credits/v1")

// Checksum returns a BLAKE2b-256 MAC of the decimal amount keyed with key.
func Checksum(key []byte, amount int64) []byte {
	h, err := blake2b.New256(key)
	if err != nil {
		// only possible for keys longer than 64 bytes
		panic(err)
	}
	_, _ = h.Write([]byte(strconv.FormatInt(amount, 10)))
	return h.Sum(nil)
}

// VerifyChecksum reports whether sum matches the checksum of amount.
func VerifyChecksum(key []byte, amount int64, sum []byte) bool {
	return subtle.ConstantTimeCompare(Checksum(key, amount), sum) == 1
}
