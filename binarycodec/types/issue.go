package types

import (
	"fmt"

	"github.com/anyswap/xrpl-codec/addresscodec"
	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

// Issue is a currency, followed by its issuer unless the currency is XRP.
type Issue struct{}

// FromJSON accepts {"currency": "XRP"} or {"currency": ..., "issuer": ...}.
func (i *Issue) FromJSON(value interface{}) ([]byte, error) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: want issue object, got %T", ErrInvalidJSONType, value)
	}
	currency, ok := m["currency"].(string)
	if !ok {
		return nil, ErrMissingIssueKey
	}
	currencyBytes, err := currencyFromString(currency)
	if err != nil {
		return nil, err
	}
	if isNativeCurrency(currencyBytes) {
		return currencyBytes, nil
	}
	issuer, ok := m["issuer"].(string)
	if !ok {
		return nil, ErrMissingIssueKey
	}
	issuerBytes, err := accountIDFromString(issuer)
	if err != nil {
		return nil, err
	}
	return append(currencyBytes, issuerBytes...), nil
}

// ToJSON reads a currency and, when it is not XRP, an issuer.
func (i *Issue) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	currency, err := p.ReadBytes(CurrencyLength)
	if err != nil {
		return nil, err
	}
	if isNativeCurrency(currency) {
		return map[string]interface{}{"currency": "XRP"}, nil
	}
	issuer, err := p.ReadBytes(addresscodec.AccountIDLength)
	if err != nil {
		return nil, err
	}
	address, err := addresscodec.EncodeClassicAddress(issuer)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"currency": currencyToString(currency),
		"issuer":   address,
	}, nil
}
