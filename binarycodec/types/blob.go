package types

import (
	"fmt"

	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

// Blob is a variable length byte string written as hex.
type Blob struct{}

// FromJSON decodes a hex string.
func (b *Blob) FromJSON(value interface{}) ([]byte, error) {
	return decodeHex(value)
}

// ToJSON reads as many bytes as the length prefix announced.
func (b *Blob) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	n, ok := lengthHint(opts)
	if !ok {
		return nil, fmt.Errorf("%w: blob needs a length prefix", ErrInvalidLength)
	}
	data, err := p.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return encodeHex(data), nil
}
