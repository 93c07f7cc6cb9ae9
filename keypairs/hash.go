package keypairs

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// Sha512Half returns the first 32 bytes of the SHA-512 of b.
func Sha512Half(b []byte) []byte {
	sum := sha512.Sum512(b)
	return sum[:32]
}

// Sha256RipeMD160 returns RIPEMD-160(SHA-256(b)), the account id of a
// public key.
func Sha256RipeMD160(b []byte) []byte {
	sha := sha256.Sum256(b)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}
