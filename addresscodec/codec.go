// Package addresscodec encodes account ids, seeds, public keys and
// X-addresses in the ledger's base58check text forms.
package addresscodec

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

// Alphabet is the ledger's base58 alphabet.
const Alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

const bitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Payload lengths.
const (
	AccountIDLength = 20
	SeedLength      = 16
	PublicKeyLength = 33
)

// Version prefixes.
var (
	AccountIDPrefix        = []byte{0x00}
	NodePublicKeyPrefix    = []byte{0x1C}
	AccountPublicKeyPrefix = []byte{0x23}
	FamilySeedPrefix       = []byte{0x21}
	ED25519SeedPrefix      = []byte{0x01, 0xE1, 0x4B}
)

var (
	ErrInvalidBase58   = errors.New("invalid base58 string")
	ErrInvalidChecksum = errors.New("invalid checksum")
	ErrInvalidVersion  = errors.New("invalid version prefix")
	ErrInvalidLength   = errors.New("invalid payload length")
)

var toBitcoin, toRipple [256]byte

func init() {
	for i := 0; i < len(Alphabet); i++ {
		toBitcoin[Alphabet[i]] = bitcoinAlphabet[i]
		toRipple[bitcoinAlphabet[i]] = Alphabet[i]
	}
}

func translate(s string, table *[256]byte) (string, bool) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := table[s[i]]
		if c == 0 {
			return "", false
		}
		out[i] = c
	}
	return string(out), true
}

// EncodeBase58 encodes b with the ledger alphabet.
func EncodeBase58(b []byte) string {
	s, _ := translate(base58.Encode(b), &toRipple)
	return s
}

// DecodeBase58 decodes a string in the ledger alphabet.
func DecodeBase58(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrInvalidBase58
	}
	btc, ok := translate(s, &toBitcoin)
	if !ok {
		return nil, ErrInvalidBase58
	}
	return base58.Decode(btc), nil
}

func checksum(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:4]
}

// Encode prefixes payload with version, appends the checksum and encodes
// the result.
func Encode(payload, version []byte, expectedLength int) (string, error) {
	if len(payload) != expectedLength {
		return "", fmt.Errorf("%w: expected %v got %v", ErrInvalidLength, expectedLength, len(payload))
	}
	buf := make([]byte, 0, len(version)+len(payload)+4)
	buf = append(buf, version...)
	buf = append(buf, payload...)
	buf = append(buf, checksum(buf)...)
	return EncodeBase58(buf), nil
}

// DecodeChecked decodes s and verifies its checksum, returning version and
// payload together.
func DecodeChecked(s string) ([]byte, error) {
	decoded, err := DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < 5 {
		return nil, fmt.Errorf("%w: %v bytes", ErrInvalidLength, len(decoded))
	}
	body, sum := decoded[:len(decoded)-4], decoded[len(decoded)-4:]
	if !bytes.Equal(checksum(body), sum) {
		return nil, ErrInvalidChecksum
	}
	return body, nil
}

// Decode decodes s and strips the expected version prefix.
func Decode(s string, version []byte, expectedLength int) ([]byte, error) {
	body, err := DecodeChecked(s)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(body, version) {
		return nil, ErrInvalidVersion
	}
	payload := body[len(version):]
	if expectedLength > 0 && len(payload) != expectedLength {
		return nil, fmt.Errorf("%w: expected %v got %v", ErrInvalidLength, expectedLength, len(payload))
	}
	return payload, nil
}

// EncodeClassicAddress encodes a 20 byte account id.
func EncodeClassicAddress(accountID []byte) (string, error) {
	return Encode(accountID, AccountIDPrefix, AccountIDLength)
}

// DecodeClassicAddress returns the account id of an r-address.
func DecodeClassicAddress(address string) ([]byte, error) {
	return Decode(address, AccountIDPrefix, AccountIDLength)
}

// IsValidClassicAddress reports whether address decodes to an account id.
func IsValidClassicAddress(address string) bool {
	if !strings.HasPrefix(address, "r") {
		return false
	}
	_, err := DecodeClassicAddress(address)
	return err == nil
}

// EncodeNodePublicKey encodes a 33 byte validator public key.
func EncodeNodePublicKey(publicKey []byte) (string, error) {
	return Encode(publicKey, NodePublicKeyPrefix, PublicKeyLength)
}

// DecodeNodePublicKey decodes an n-prefixed validator public key.
func DecodeNodePublicKey(s string) ([]byte, error) {
	return Decode(s, NodePublicKeyPrefix, PublicKeyLength)
}

// EncodeAccountPublicKey encodes a 33 byte account public key.
func EncodeAccountPublicKey(publicKey []byte) (string, error) {
	return Encode(publicKey, AccountPublicKeyPrefix, PublicKeyLength)
}

// DecodeAccountPublicKey decodes an a-prefixed account public key.
func DecodeAccountPublicKey(s string) ([]byte, error) {
	return Decode(s, AccountPublicKeyPrefix, PublicKeyLength)
}
