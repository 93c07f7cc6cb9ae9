package types

import (
	"fmt"

	"github.com/anyswap/xrpl-codec/addresscodec"
	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

var xchainBridgeFields = []struct {
	name   string
	isDoor bool
	codec  SerializedType
}{
	{"LockingChainDoor", true, &AccountID{}},
	{"LockingChainIssue", false, &Issue{}},
	{"IssuingChainDoor", true, &AccountID{}},
	{"IssuingChainIssue", false, &Issue{}},
}

// XChainBridge is a pair of door accounts with the issue bridged on each
// chain. Door accounts carry their own one byte length prefix.
type XChainBridge struct{}

// FromJSON accepts an object with the four bridge keys.
func (x *XChainBridge) FromJSON(value interface{}) ([]byte, error) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: want bridge object, got %T", ErrInvalidJSONType, value)
	}
	var out []byte
	for _, f := range xchainBridgeFields {
		v, ok := m[f.name]
		if !ok {
			return nil, &FieldError{Field: f.name, Err: ErrMissingIssueKey}
		}
		b, err := f.codec.FromJSON(v)
		if err != nil {
			return nil, &FieldError{Field: f.name, Err: err}
		}
		if f.isDoor {
			out = append(out, byte(len(b)))
		}
		out = append(out, b...)
	}
	return out, nil
}

// ToJSON reads the four bridge members in order.
func (x *XChainBridge) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	out := make(map[string]interface{}, len(xchainBridgeFields))
	for _, f := range xchainBridgeFields {
		var hint []int
		if f.isDoor {
			n, err := p.ReadByte()
			if err != nil {
				return nil, err
			}
			if int(n) != addresscodec.AccountIDLength {
				return nil, &FieldError{Field: f.name, Err: fmt.Errorf("%w: door of %v bytes", ErrInvalidLength, n)}
			}
			hint = []int{int(n)}
		}
		v, err := f.codec.ToJSON(p, hint...)
		if err != nil {
			return nil, &FieldError{Field: f.name, Err: err}
		}
		out[f.name] = v
	}
	return out, nil
}
