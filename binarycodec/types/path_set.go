package types

import (
	"fmt"

	"github.com/anyswap/xrpl-codec/addresscodec"
	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

// Path step flags and path set markers.
const (
	pathStepAccount  = 0x01
	pathStepCurrency = 0x10
	pathStepIssuer   = 0x20

	pathBoundary = 0xFF
	pathEnd      = 0x00
)

// PathSet is a list of payment paths, each a list of steps.
type PathSet struct{}

// FromJSON accepts [[{"account", "currency", "issuer"}, ...], ...].
func (ps *PathSet) FromJSON(value interface{}) ([]byte, error) {
	paths, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: want array of paths, got %T", ErrInvalidJSONType, value)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: empty path set", ErrInvalidPathStep)
	}
	var out []byte
	for i, path := range paths {
		steps, ok := path.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: want path array, got %T", ErrInvalidJSONType, path)
		}
		if len(steps) == 0 {
			return nil, fmt.Errorf("%w: path %v is empty", ErrInvalidPathStep, i)
		}
		for _, step := range steps {
			b, err := pathStepBytes(step)
			if err != nil {
				return nil, fmt.Errorf("path %v: %w", i, err)
			}
			out = append(out, b...)
		}
		if i < len(paths)-1 {
			out = append(out, pathBoundary)
		}
	}
	return append(out, pathEnd), nil
}

func pathStepBytes(step interface{}) ([]byte, error) {
	m, ok := step.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: want path step object, got %T", ErrInvalidJSONType, step)
	}
	out := []byte{0}
	if account, ok := m["account"].(string); ok {
		b, err := accountIDFromString(account)
		if err != nil {
			return nil, err
		}
		out[0] |= pathStepAccount
		out = append(out, b...)
	}
	if currency, ok := m["currency"].(string); ok {
		b, err := currencyFromString(currency)
		if err != nil {
			return nil, err
		}
		out[0] |= pathStepCurrency
		out = append(out, b...)
	}
	if issuer, ok := m["issuer"].(string); ok {
		b, err := accountIDFromString(issuer)
		if err != nil {
			return nil, err
		}
		out[0] |= pathStepIssuer
		out = append(out, b...)
	}
	if out[0] == 0 {
		return nil, fmt.Errorf("%w: step has no account, currency or issuer", ErrInvalidPathStep)
	}
	return out, nil
}

// ToJSON reads paths until the end marker.
func (ps *PathSet) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	var paths []interface{}
	var path []interface{}
	for {
		flag, err := p.ReadByte()
		if err != nil {
			return nil, err
		}
		switch flag {
		case pathEnd:
			return append(paths, path), nil
		case pathBoundary:
			paths = append(paths, path)
			path = nil
			continue
		}
		if flag&^(pathStepAccount|pathStepCurrency|pathStepIssuer) != 0 {
			return nil, fmt.Errorf("%w: flag 0x%02X", ErrInvalidPathStep, flag)
		}
		step := make(map[string]interface{})
		if flag&pathStepAccount != 0 {
			if step["account"], err = readAccountID(p); err != nil {
				return nil, err
			}
		}
		if flag&pathStepCurrency != 0 {
			b, err := p.ReadBytes(CurrencyLength)
			if err != nil {
				return nil, err
			}
			step["currency"] = currencyToString(b)
		}
		if flag&pathStepIssuer != 0 {
			b, err := p.ReadBytes(addresscodec.AccountIDLength)
			if err != nil {
				return nil, err
			}
			if step["issuer"], err = addresscodec.EncodeClassicAddress(b); err != nil {
				return nil, err
			}
		}
		path = append(path, step)
	}
}
