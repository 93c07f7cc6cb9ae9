package types

import (
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

// CurrencyLength is the size of a serialized currency code.
const CurrencyLength = 20

var isoCodeRegex = regexp.MustCompile(`^[A-Za-z0-9?!@#$%^&*<>(){}\[\]|]{3}$`)

// Currency is a 20 byte currency code. "XRP" is the all zero code.
type Currency struct{}

// FromJSON accepts "XRP", a three character ISO-style code or 40 hex digits.
func (c *Currency) FromJSON(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: want currency string, got %T", ErrInvalidJSONType, value)
	}
	return currencyFromString(s)
}

// ToJSON reads a currency code.
func (c *Currency) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	b, err := p.ReadBytes(CurrencyLength)
	if err != nil {
		return nil, err
	}
	return currencyToString(b), nil
}

func currencyFromString(s string) ([]byte, error) {
	currency := make([]byte, CurrencyLength)
	switch {
	case s == "XRP":
		return currency, nil
	case isoCodeRegex.MatchString(s):
		copy(currency[12:15], s)
		return currency, nil
	case len(s) == 2*CurrencyLength:
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
		}
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
}

func isNativeCurrency(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

func currencyToString(b []byte) string {
	if isNativeCurrency(b) {
		return "XRP"
	}
	if isNativeCurrency(b[:12]) && isNativeCurrency(b[15:]) {
		code := string(b[12:15])
		if code != "XRP" && isoCodeRegex.MatchString(code) {
			return code
		}
	}
	return encodeHex(b)
}
