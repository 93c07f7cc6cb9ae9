package addresscodec

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// CryptoAlgorithm names a signing algorithm.
type CryptoAlgorithm int

// Supported algorithms.
const (
	SECP256K1 CryptoAlgorithm = iota
	ED25519
)

// ErrUnknownAlgorithm is returned for an algorithm name that is not supported.
var ErrUnknownAlgorithm = errors.New("unknown crypto algorithm")

func (a CryptoAlgorithm) String() string {
	switch a {
	case SECP256K1:
		return "secp256k1"
	case ED25519:
		return "ed25519"
	default:
		return fmt.Sprintf("CryptoAlgorithm(%d)", int(a))
	}
}

// ParseCryptoAlgorithm accepts "secp256k1" or "ed25519" in any case.
func ParseCryptoAlgorithm(s string) (CryptoAlgorithm, error) {
	switch strings.ToLower(s) {
	case "secp256k1":
		return SECP256K1, nil
	case "ed25519":
		return ED25519, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, s)
	}
}

func seedPrefix(algo CryptoAlgorithm) ([]byte, error) {
	switch algo {
	case SECP256K1:
		return FamilySeedPrefix, nil
	case ED25519:
		return ED25519SeedPrefix, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
}

// EncodeSeed encodes 16 bytes of entropy as a seed for algo.
func EncodeSeed(entropy []byte, algo CryptoAlgorithm) (string, error) {
	prefix, err := seedPrefix(algo)
	if err != nil {
		return "", err
	}
	return Encode(entropy, prefix, SeedLength)
}

// DecodeSeed returns the entropy of a seed and the algorithm it was
// encoded for.
func DecodeSeed(seed string) ([]byte, CryptoAlgorithm, error) {
	body, err := DecodeChecked(seed)
	if err != nil {
		return nil, 0, err
	}
	switch {
	case len(body) == len(ED25519SeedPrefix)+SeedLength && bytes.HasPrefix(body, ED25519SeedPrefix):
		return body[len(ED25519SeedPrefix):], ED25519, nil
	case len(body) == len(FamilySeedPrefix)+SeedLength && bytes.HasPrefix(body, FamilySeedPrefix):
		return body[len(FamilySeedPrefix):], SECP256K1, nil
	default:
		return nil, 0, fmt.Errorf("%w: not a seed", ErrInvalidVersion)
	}
}
