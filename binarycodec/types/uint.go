package types

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

// UInt8 is a one byte unsigned integer.
type UInt8 struct{}

// FromJSON encodes a number in [0, 255].
func (u *UInt8) FromJSON(value interface{}) ([]byte, error) {
	n, err := toUintMax(value, 0xFF)
	if err != nil {
		return nil, err
	}
	return []byte{byte(n)}, nil
}

// ToJSON reads one byte.
func (u *UInt8) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	return p.ReadUint8()
}

// UInt16 is a big-endian two byte unsigned integer.
type UInt16 struct{}

// FromJSON encodes a number in [0, 65535].
func (u *UInt16) FromJSON(value interface{}) ([]byte, error) {
	n, err := toUintMax(value, 0xFFFF)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(n))
	return b, nil
}

// ToJSON reads two bytes.
func (u *UInt16) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	return p.ReadUint16()
}

// UInt32 is a big-endian four byte unsigned integer.
type UInt32 struct{}

// FromJSON encodes a number in [0, 2^32).
func (u *UInt32) FromJSON(value interface{}) ([]byte, error) {
	n, err := toUintMax(value, 0xFFFFFFFF)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(n))
	return b, nil
}

// ToJSON reads four bytes.
func (u *UInt32) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	return p.ReadUint32()
}

// UInt64 is an eight byte unsigned integer whose json form is a hex string.
type UInt64 struct{}

// FromJSON accepts a hex string of up to 16 digits or a plain number.
func (u *UInt64) FromJSON(value interface{}) ([]byte, error) {
	var n uint64
	var err error
	if s, ok := value.(string); ok {
		if len(s) == 0 || len(s) > 16 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		if n, err = strconv.ParseUint(s, 16, 64); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	} else if n, err = toUint64(value); err != nil {
		return nil, err
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b, nil
}

// ToJSON reads eight bytes and returns them as 16 uppercase hex digits.
func (u *UInt64) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	b, err := p.ReadBytes(8)
	if err != nil {
		return nil, err
	}
	return encodeHex(b), nil
}

func toUintMax(value interface{}, max uint64) (uint64, error) {
	n, err := toUint64(value)
	if err != nil {
		return 0, err
	}
	if n > max {
		return 0, fmt.Errorf("%w: %v > %v", ErrUintOutOfRange, n, max)
	}
	return n, nil
}
