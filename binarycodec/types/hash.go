package types

import (
	"fmt"

	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

// Hash is a fixed length byte string written as hex.
type Hash struct {
	length int
}

// NewHash128 returns the 16 byte hash codec.
func NewHash128() *Hash { return &Hash{length: 16} }

// NewHash160 returns the 20 byte hash codec.
func NewHash160() *Hash { return &Hash{length: 20} }

// NewHash256 returns the 32 byte hash codec.
func NewHash256() *Hash { return &Hash{length: 32} }

// FromJSON decodes a hex string of exactly the hash length.
func (h *Hash) FromJSON(value interface{}) ([]byte, error) {
	b, err := decodeHex(value)
	if err != nil {
		return nil, err
	}
	if len(b) != h.length {
		return nil, fmt.Errorf("%w: hash%d got %v bytes", ErrInvalidLength, h.length*8, len(b))
	}
	return b, nil
}

// ToJSON reads the hash and returns uppercase hex.
func (h *Hash) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	b, err := p.ReadBytes(h.length)
	if err != nil {
		return nil, err
	}
	return encodeHex(b), nil
}
