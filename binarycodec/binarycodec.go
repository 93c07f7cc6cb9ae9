// Package binarycodec converts transactions between their json form and the
// canonical hex encoding that is hashed, signed and submitted.
package binarycodec

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/anyswap/xrpl-codec/addresscodec"
	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
	"github.com/anyswap/xrpl-codec/binarycodec/types"
	"github.com/anyswap/xrpl-codec/keypairs"
)

// Hash prefixes put in front of the canonical bytes.
const (
	TransactionSigningPrefix = "53545800" // STX\0
	MultisigningPrefix       = "534D5400" // SMT\0
	PaymentChannelPrefix     = "434C4D00" // CLM\0
	TransactionIDPrefix      = "54584E00" // TXN\0
)

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrInvalidClaim    = errors.New("claim requires Channel and Amount")
	ErrInvalidHexInput = errors.New("invalid hex input")
)

// Encode returns the canonical hex encoding of a json object.
func Encode(obj map[string]interface{}) (string, error) {
	return encode(obj, false, nil, nil)
}

// EncodeForSigning returns the bytes a single signature covers: the signing
// prefix followed by the signing fields.
func EncodeForSigning(obj map[string]interface{}) (string, error) {
	prefix, _ := hex.DecodeString(TransactionSigningPrefix)
	return encode(obj, true, prefix, nil)
}

// EncodeForMultisigning returns the bytes signed by one signer of a
// multi-signed transaction. SigningPubKey is always empty and the signer's
// account id is appended.
func EncodeForMultisigning(obj map[string]interface{}, signerAccount string) (string, error) {
	accountID, err := addresscodec.DecodeClassicAddress(signerAccount)
	if err != nil {
		return "", fmt.Errorf("signer account: %w", err)
	}
	withEmptyKey := make(map[string]interface{}, len(obj)+1)
	for k, v := range obj {
		withEmptyKey[k] = v
	}
	withEmptyKey["SigningPubKey"] = ""
	prefix, _ := hex.DecodeString(MultisigningPrefix)
	return encode(withEmptyKey, true, prefix, accountID)
}

// EncodeForSigningClaim returns the bytes signed to authorize a payment
// channel claim: {"Channel": <hash256>, "Amount": <drops>}.
func EncodeForSigningClaim(obj map[string]interface{}) (string, error) {
	channel, okChannel := obj["Channel"].(string)
	amount, okAmount := obj["Amount"].(string)
	if !okChannel || !okAmount {
		return "", ErrInvalidClaim
	}
	channelBytes, err := types.NewHash256().FromJSON(channel)
	if err != nil {
		return "", fmt.Errorf("channel: %w", err)
	}
	drops, err := strconv.ParseUint(amount, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", types.ErrInvalidXRPAmount, amount)
	}
	out, _ := hex.DecodeString(PaymentChannelPrefix)
	out = append(out, channelBytes...)
	out = append(out, make([]byte, 8)...)
	binary.BigEndian.PutUint64(out[len(out)-8:], drops)
	return strings.ToUpper(hex.EncodeToString(out)), nil
}

// Decode returns the json object encoded by a hex string.
func Decode(hexEncoded string) (map[string]interface{}, error) {
	if hexEncoded == "" {
		return nil, ErrEmptyInput
	}
	p, err := serdes.NewBinaryParserFromHex(hexEncoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHexInput, err)
	}
	v, err := (&types.STObject{TopLevel: true}).ToJSON(p)
	if err != nil {
		return nil, err
	}
	return v.(map[string]interface{}), nil
}

// TransactionHash returns the id of a signed transaction blob.
func TransactionHash(hexEncoded string) (string, error) {
	blob, err := hex.DecodeString(hexEncoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHexInput, err)
	}
	prefix, _ := hex.DecodeString(TransactionIDPrefix)
	hash := keypairs.Sha512Half(append(prefix, blob...))
	return strings.ToUpper(hex.EncodeToString(hash)), nil
}

func encode(obj map[string]interface{}, onlySigning bool, prefix, suffix []byte) (string, error) {
	b, err := (&types.STObject{OnlySigning: onlySigning}).FromJSON(obj)
	if err != nil {
		return "", err
	}
	out := make([]byte, 0, len(prefix)+len(b)+len(suffix))
	out = append(out, prefix...)
	out = append(out, b...)
	out = append(out, suffix...)
	return strings.ToUpper(hex.EncodeToString(out)), nil
}
