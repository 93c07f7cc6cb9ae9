package keypairs

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
)

const ed25519Prefix = "ED"

type ed25519Algorithm struct{}

func (ed25519Algorithm) deriveKeypair(seed []byte, validator bool) (public, private string, err error) {
	if validator {
		return "", "", ErrUnsupportedValidatorAlgorithm
	}
	raw := Sha512Half(seed)
	key := ed25519.NewKeyFromSeed(raw)
	pub := key.Public().(ed25519.PublicKey)
	return ed25519Prefix + formatKey(pub), ed25519Prefix + formatKey(raw), nil
}

func (ed25519Algorithm) sign(message []byte, privateKey string) ([]byte, error) {
	raw, err := hex.DecodeString(privateKey[len(ed25519Prefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 private key must be %v bytes", ErrInvalidKey, ed25519.SeedSize)
	}
	return ed25519.Sign(ed25519.NewKeyFromSeed(raw), message), nil
}

func (ed25519Algorithm) verify(message, signature []byte, publicKey string) bool {
	raw, err := hex.DecodeString(publicKey[len(ed25519Prefix):])
	if err != nil || len(raw) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(raw, message, signature)
}
