// Package serdes provides the byte cursor and byte accumulator used by the
// binary codec.
package serdes

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/anyswap/xrpl-codec/binarycodec/definitions"
)

// BinaryParser consumes a byte slice from the front. The underlying bytes
// are never modified.
type BinaryParser struct {
	data []byte
	defs *definitions.Definitions
}

// NewBinaryParser wraps data.
func NewBinaryParser(data []byte) *BinaryParser {
	return &BinaryParser{data: data, defs: definitions.Get()}
}

// NewBinaryParserFromHex wraps the bytes of a hex string.
func NewBinaryParserFromHex(s string) (*BinaryParser, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return NewBinaryParser(data), nil
}

// Remaining returns the number of unread bytes.
func (p *BinaryParser) Remaining() int {
	return len(p.data)
}

// HasMore reports whether any byte is left.
func (p *BinaryParser) HasMore() bool {
	return len(p.data) > 0
}

// IsEnd reports whether at most boundary bytes remain (default 0).
func (p *BinaryParser) IsEnd(boundary ...int) bool {
	limit := 0
	if len(boundary) > 0 {
		limit = boundary[0]
	}
	return len(p.data) <= limit
}

// Peek returns the next byte without consuming it.
func (p *BinaryParser) Peek() (byte, error) {
	if len(p.data) == 0 {
		return 0, ErrParserOutOfBound
	}
	return p.data[0], nil
}

// Skip advances n bytes.
func (p *BinaryParser) Skip(n int) error {
	if n < 0 || n > len(p.data) {
		return fmt.Errorf("%w: skip %v of %v", ErrParserOutOfBound, n, len(p.data))
	}
	p.data = p.data[n:]
	return nil
}

// ReadBytes returns the next n bytes. The result is a copy.
func (p *BinaryParser) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > len(p.data) {
		return nil, fmt.Errorf("%w: read %v of %v", ErrParserOutOfBound, n, len(p.data))
	}
	out := make([]byte, n)
	copy(out, p.data[:n])
	p.data = p.data[n:]
	return out, nil
}

// ReadByte returns the next byte.
func (p *BinaryParser) ReadByte() (byte, error) {
	b, err := p.Peek()
	if err != nil {
		return 0, err
	}
	p.data = p.data[1:]
	return b, nil
}

// ReadUint8 reads one byte.
func (p *BinaryParser) ReadUint8() (uint8, error) {
	return p.ReadByte()
}

// ReadUint16 reads a big-endian uint16.
func (p *BinaryParser) ReadUint16() (uint16, error) {
	b, err := p.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadUint32 reads a big-endian uint32.
func (p *BinaryParser) ReadUint32() (uint32, error) {
	b, err := p.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadVariableLength decodes a 1 to 3 byte length prefix.
func (p *BinaryParser) ReadVariableLength() (int, error) {
	first, err := p.ReadByte()
	if err != nil {
		return 0, err
	}
	switch {
	case first <= 192:
		return int(first), nil
	case first <= 240:
		second, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return 193 + int(first-193)*256 + int(second), nil
	case first <= 254:
		rest, err := p.ReadBytes(2)
		if err != nil {
			return 0, err
		}
		return 12481 + int(first-241)*65536 + int(rest[0])*256 + int(rest[1]), nil
	}
	return 0, fmt.Errorf("%w: first byte %v", ErrInvalidLengthPrefix, first)
}

// ReadFieldHeader decodes a packed field header.
func (p *BinaryParser) ReadFieldHeader() (definitions.FieldHeader, error) {
	b, err := p.ReadByte()
	if err != nil {
		return definitions.FieldHeader{}, err
	}
	typeCode := int32(b >> 4)
	fieldCode := int32(b & 0x0F)
	if typeCode == 0 {
		if typeCode, err = p.readOverflowCode("type"); err != nil {
			return definitions.FieldHeader{}, err
		}
	}
	if fieldCode == 0 {
		if fieldCode, err = p.readOverflowCode("field"); err != nil {
			return definitions.FieldHeader{}, err
		}
	}
	return p.defs.CreateFieldHeader(typeCode, fieldCode), nil
}

func (p *BinaryParser) readOverflowCode(kind string) (int32, error) {
	b, err := p.ReadByte()
	if err != nil {
		return 0, err
	}
	if b < 16 {
		return 0, fmt.Errorf("%w: %v code %v must be at least 16", ErrInvalidFieldHeader, kind, b)
	}
	return int32(b), nil
}

// ReadField reads a header and resolves it in the registry.
func (p *BinaryParser) ReadField() (*definitions.FieldInstance, error) {
	fh, err := p.ReadFieldHeader()
	if err != nil {
		return nil, err
	}
	fi, err := p.defs.GetFieldInstanceByFieldHeader(fh)
	if err != nil {
		return nil, &UnknownFieldError{Header: fh}
	}
	return fi, nil
}
