package types

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anyswap/xrpl-codec/addresscodec"
	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

const (
	minOffset       int32  = -96
	maxOffset       int32  = 80
	minMantissa     uint64 = 1000000000000000
	maxMantissa     uint64 = 9999999999999999
	maxPrecision           = 16
	maxDrops        uint64 = 100000000000000000
	notNative       uint64 = 0x8000000000000000
	positive        uint64 = 0x4000000000000000
	mantissaMask    uint64 = 1<<54 - 1
	nativeValueMask uint64 = positive - 1
	exponentBias           = 97

	nativeAmountLength = 8
	issuedAmountLength = 48
)

var bigTen = big.NewInt(10)

// Amount is either 8 bytes of XRP drops or 48 bytes of issued currency
// value, currency and issuer.
type Amount struct{}

// FromJSON accepts a drops string or a {currency, issuer, value} object.
func (a *Amount) FromJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return nativeAmountBytes(v)
	case map[string]interface{}:
		return issuedAmountBytes(v)
	}
	return nil, fmt.Errorf("%w: want amount string or object, got %T", ErrInvalidJSONType, value)
}

// ToJSON reads 8 bytes when the top bit of the first byte is clear and 48
// bytes otherwise.
func (a *Amount) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	first, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if first&0x80 == 0 {
		b, err := p.ReadBytes(nativeAmountLength)
		if err != nil {
			return nil, err
		}
		return nativeAmountString(binary.BigEndian.Uint64(b)), nil
	}
	b, err := p.ReadBytes(issuedAmountLength)
	if err != nil {
		return nil, err
	}
	issuer, err := addresscodec.EncodeClassicAddress(b[28:48])
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"value":    issuedValueString(binary.BigEndian.Uint64(b[:8])),
		"currency": currencyToString(b[8:28]),
		"issuer":   issuer,
	}, nil
}

func nativeAmountBytes(s string) ([]byte, error) {
	drops, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidXRPAmount, s)
	}
	if drops > maxDrops {
		return nil, fmt.Errorf("%w: %v exceeds %v drops", ErrInvalidXRPAmount, drops, maxDrops)
	}
	b := make([]byte, nativeAmountLength)
	binary.BigEndian.PutUint64(b, drops|positive)
	return b, nil
}

func nativeAmountString(u uint64) string {
	drops := strconv.FormatUint(u&nativeValueMask, 10)
	if u&positive == 0 && drops != "0" {
		return "-" + drops
	}
	return drops
}

func issuedAmountBytes(m map[string]interface{}) ([]byte, error) {
	value, okValue := m["value"].(string)
	currency, okCurrency := m["currency"].(string)
	issuer, okIssuer := m["issuer"].(string)
	if !okValue || !okCurrency || !okIssuer {
		return nil, ErrMissingAmountKey
	}
	serialized, err := IssuedValueBytes(value)
	if err != nil {
		return nil, err
	}
	currencyBytes, err := currencyFromString(currency)
	if err != nil {
		return nil, err
	}
	issuerBytes, err := accountIDFromString(issuer)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, issuedAmountLength)
	out = append(out, serialized...)
	out = append(out, currencyBytes...)
	return append(out, issuerBytes...), nil
}

// IssuedValueBytes returns the 8 byte form of a decimal issued currency
// value. The mantissa is normalized into [1e15, 1e16-1]; values too small to
// represent become zero.
func IssuedValueBytes(s string) ([]byte, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIssuedValue, s)
	}
	b := make([]byte, 8)
	if d.IsZero() {
		binary.BigEndian.PutUint64(b, notNative)
		return b, nil
	}

	negative := d.Sign() < 0
	coefficient := new(big.Int).Abs(d.Coefficient())
	exponent := d.Exponent()
	rem := new(big.Int)
	for {
		q, r := new(big.Int).QuoRem(coefficient, bigTen, rem)
		if r.Sign() != 0 {
			break
		}
		coefficient = q
		exponent++
	}
	if len(coefficient.String()) > maxPrecision {
		return nil, fmt.Errorf("%w: %q has more than %v significant digits", ErrInvalidIssuedValue, s, maxPrecision)
	}

	mantissa := coefficient.Uint64()
	for mantissa < minMantissa && exponent > minOffset {
		mantissa *= 10
		exponent--
	}
	for mantissa > maxMantissa {
		if exponent >= maxOffset {
			return nil, fmt.Errorf("%w: %q", ErrAmountOverflow, s)
		}
		mantissa /= 10
		exponent++
	}
	if exponent < minOffset || mantissa < minMantissa {
		binary.BigEndian.PutUint64(b, notNative)
		return b, nil
	}
	if exponent > maxOffset {
		return nil, fmt.Errorf("%w: %q", ErrAmountOverflow, s)
	}

	u := notNative | uint64(exponent+exponentBias)<<54 | mantissa
	if !negative {
		u |= positive
	}
	binary.BigEndian.PutUint64(b, u)
	return b, nil
}

// issuedValueString formats a value the way the ledger does: plain decimal
// for exponents in [-25, -5], scientific notation otherwise.
func issuedValueString(u uint64) string {
	mantissa := u & mantissaMask
	if mantissa == 0 {
		return "0"
	}
	exponent := int32((u>>54)&0xFF) - exponentBias
	sign := ""
	if u&positive == 0 {
		sign = "-"
	}
	if exponent != 0 && (exponent < -25 || exponent > -5) {
		digits := strconv.FormatUint(mantissa, 10)
		trimmed := strings.TrimRight(digits, "0")
		exponent += int32(len(digits) - len(trimmed))
		return fmt.Sprintf("%v%ve%v", sign, trimmed, exponent)
	}
	return sign + decimal.New(int64(mantissa), exponent).String()
}
