package keypairs

import "errors"

var (
	// ErrInvalidSignature is returned when a derived keypair fails to verify
	// its own signature.
	ErrInvalidSignature = errors.New("derived keypair did not generate verifiable signature")
	// ErrUnsupportedValidatorAlgorithm is returned for ed25519 validator keys.
	ErrUnsupportedValidatorAlgorithm = errors.New("validator keypairs cannot use ed25519")
	// ErrInvalidKey is returned for malformed or out of range keys.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidEntropy is returned when fewer than 16 bytes of entropy are given.
	ErrInvalidEntropy = errors.New("entropy must be at least 16 bytes")
)
