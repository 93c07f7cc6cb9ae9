// Package keypairs derives keypairs from seeds and signs and verifies
// messages with secp256k1 or ed25519 keys.
package keypairs

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/anyswap/xrpl-codec/addresscodec"
)

// CryptoAlgorithm selects the signing algorithm of a seed.
type CryptoAlgorithm = addresscodec.CryptoAlgorithm

// Supported algorithms.
const (
	SECP256K1 = addresscodec.SECP256K1
	ED25519   = addresscodec.ED25519
)

const verificationMessage = "This test message should verify."

// algorithm is implemented by secp256k1Algorithm and ed25519Algorithm only.
type algorithm interface {
	deriveKeypair(seed []byte, validator bool) (public, private string, err error)
	sign(message []byte, privateKey string) ([]byte, error)
	verify(message, signature []byte, publicKey string) bool
}

func algorithmFor(algo CryptoAlgorithm) (algorithm, error) {
	switch algo {
	case SECP256K1:
		return secp256k1Algorithm{}, nil
	case ED25519:
		return ed25519Algorithm{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", addresscodec.ErrUnknownAlgorithm, algo)
	}
}

// algorithmForKey picks the algorithm from the key's text form.
func algorithmForKey(key string) algorithm {
	if strings.HasPrefix(strings.ToUpper(key), ed25519Prefix) {
		return ed25519Algorithm{}
	}
	return secp256k1Algorithm{}
}

// GenerateSeed encodes the first 16 bytes of entropy as a seed for algo.
// With nil entropy 16 random bytes are used.
func GenerateSeed(entropy []byte, algo CryptoAlgorithm) (string, error) {
	if entropy == nil {
		entropy = make([]byte, addresscodec.SeedLength)
		if _, err := rand.Read(entropy); err != nil {
			return "", err
		}
	}
	if len(entropy) < addresscodec.SeedLength {
		return "", ErrInvalidEntropy
	}
	return addresscodec.EncodeSeed(entropy[:addresscodec.SeedLength], algo)
}

// DeriveKeypair returns the hex public and private keys of seed. The
// keypair is checked by signing and verifying a fixed message.
func DeriveKeypair(seed string, validator bool) (public, private string, err error) {
	decoded, algo, err := addresscodec.DecodeSeed(seed)
	if err != nil {
		return "", "", err
	}
	impl, err := algorithmFor(algo)
	if err != nil {
		return "", "", err
	}
	public, private, err = impl.deriveKeypair(decoded, validator)
	if err != nil {
		return "", "", err
	}
	signature, err := impl.sign([]byte(verificationMessage), private)
	if err != nil {
		return "", "", err
	}
	if !impl.verify([]byte(verificationMessage), signature, public) {
		return "", "", ErrInvalidSignature
	}
	return public, private, nil
}

// DeriveClassicAddress returns the r-address of a hex public key.
func DeriveClassicAddress(publicKey string) (string, error) {
	raw, err := hex.DecodeString(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(raw) != addresscodec.PublicKeyLength {
		return "", fmt.Errorf("%w: public key must be %v bytes", ErrInvalidKey, addresscodec.PublicKeyLength)
	}
	return addresscodec.EncodeClassicAddress(Sha256RipeMD160(raw))
}

// Sign signs message with a hex private key and returns the uppercase hex
// signature. secp256k1 signatures are DER encoded, ed25519 ones are 64 bytes.
func Sign(message []byte, privateKey string) (string, error) {
	signature, err := algorithmForKey(privateKey).sign(message, privateKey)
	if err != nil {
		return "", err
	}
	return formatKey(signature), nil
}

// IsValidMessage verifies a hex signature of message against a hex public key.
func IsValidMessage(message []byte, signature, publicKey string) bool {
	raw, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return algorithmForKey(publicKey).verify(message, raw, publicKey)
}
