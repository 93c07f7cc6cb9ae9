package types

import (
	"fmt"

	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

const hash256Length = 32

// Vector256 is a VL encoded list of 32 byte hashes.
type Vector256 struct{}

// FromJSON accepts an array of 64 digit hex strings.
func (v *Vector256) FromJSON(value interface{}) ([]byte, error) {
	list, ok := value.([]interface{})
	if !ok {
		if strs, isStrings := value.([]string); isStrings {
			list = make([]interface{}, len(strs))
			for i, s := range strs {
				list[i] = s
			}
		} else {
			return nil, fmt.Errorf("%w: want array of hashes, got %T", ErrInvalidJSONType, value)
		}
	}
	out := make([]byte, 0, len(list)*hash256Length)
	hash := NewHash256()
	for i, item := range list {
		b, err := hash.FromJSON(item)
		if err != nil {
			return nil, fmt.Errorf("vector256 item %v: %w", i, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

// ToJSON splits the length prefixed bytes into hashes.
func (v *Vector256) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	n, ok := lengthHint(opts)
	if !ok || n%hash256Length != 0 {
		return nil, fmt.Errorf("%w: vector256 of %v bytes", ErrInvalidLength, n)
	}
	out := make([]interface{}, 0, n/hash256Length)
	for i := 0; i < n/hash256Length; i++ {
		b, err := p.ReadBytes(hash256Length)
		if err != nil {
			return nil, err
		}
		out = append(out, encodeHex(b))
	}
	return out, nil
}
