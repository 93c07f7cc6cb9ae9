package types

import (
	"encoding/hex"
	"fmt"

	"github.com/anyswap/xrpl-codec/addresscodec"
	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

// AccountZero is the account whose id is all zero.
const AccountZero = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"

// AccountID is a 20 byte account id written as a classic address.
type AccountID struct{}

// FromJSON accepts a classic address or 40 hex digits.
func (a *AccountID) FromJSON(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: want address string, got %T", ErrInvalidJSONType, value)
	}
	return accountIDFromString(s)
}

// ToJSON reads an account id. A zero length prefix, written for UNLModify
// pseudo-transactions, yields AccountZero.
func (a *AccountID) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	n, ok := lengthHint(opts)
	if !ok {
		n = addresscodec.AccountIDLength
	}
	switch n {
	case 0:
		return AccountZero, nil
	case addresscodec.AccountIDLength:
		return readAccountID(p)
	default:
		return nil, fmt.Errorf("%w: account id of %v bytes", ErrInvalidLength, n)
	}
}

func accountIDFromString(s string) ([]byte, error) {
	if len(s) == 2*addresscodec.AccountIDLength {
		if b, err := hex.DecodeString(s); err == nil {
			return b, nil
		}
	}
	b, err := addresscodec.DecodeClassicAddress(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAccountID, s, err)
	}
	return b, nil
}

func readAccountID(p *serdes.BinaryParser) (string, error) {
	b, err := p.ReadBytes(addresscodec.AccountIDLength)
	if err != nil {
		return "", err
	}
	return addresscodec.EncodeClassicAddress(b)
}
