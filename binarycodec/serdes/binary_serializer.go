package serdes

import (
	"fmt"

	"github.com/anyswap/xrpl-codec/binarycodec/definitions"
)

// Length prefix thresholds.
const (
	MaxSingleByteLength = 192
	MaxDoubleByteLength = 12480
	MaxTripleByteLength = 918744
)

// BinarySerializer accumulates canonical bytes.
type BinarySerializer struct {
	sink []byte
}

// NewBinarySerializer returns an empty serializer.
func NewBinarySerializer() *BinarySerializer {
	return &BinarySerializer{}
}

// Append adds raw bytes.
func (s *BinarySerializer) Append(b []byte) {
	s.sink = append(s.sink, b...)
}

// GetSink returns the accumulated bytes.
func (s *BinarySerializer) GetSink() []byte {
	return s.sink
}

// WriteLengthEncoded writes value behind its length prefix. With
// encodeValue false only a zero length prefix is written.
func (s *BinarySerializer) WriteLengthEncoded(value []byte, encodeValue bool) error {
	if !encodeValue {
		s.sink = append(s.sink, 0)
		return nil
	}
	prefix, err := EncodeVariableLength(len(value))
	if err != nil {
		return err
	}
	s.sink = append(s.sink, prefix...)
	s.sink = append(s.sink, value...)
	return nil
}

// WriteFieldAndValue writes the field header followed by value, length
// prefixed when the field is VL encoded. suppressLength drops the value and
// writes an empty length prefix; it only exists for the Account field of
// UNLModify pseudo-transactions.
func (s *BinarySerializer) WriteFieldAndValue(fi *definitions.FieldInstance, value []byte, suppressLength bool) error {
	header, err := EncodeFieldHeader(*fi.FieldHeader)
	if err != nil {
		return fmt.Errorf("field %v: %w", fi.FieldName, err)
	}
	s.Append(header)
	if fi.IsVLEncoded {
		return s.WriteLengthEncoded(value, !suppressLength)
	}
	s.Append(value)
	return nil
}

// EncodeVariableLength returns the length prefix for a value of n bytes.
func EncodeVariableLength(n int) ([]byte, error) {
	switch {
	case n < 0 || n > MaxTripleByteLength:
		return nil, fmt.Errorf("%w: %v", ErrLengthPrefixTooLarge, n)
	case n <= MaxSingleByteLength:
		return []byte{byte(n)}, nil
	case n <= MaxDoubleByteLength:
		n -= MaxSingleByteLength + 1
		return []byte{193 + byte(n>>8), byte(n)}, nil
	default:
		n -= MaxDoubleByteLength + 1
		return []byte{241 + byte(n>>16), byte(n >> 8), byte(n)}, nil
	}
}

// EncodeFieldHeader packs a header into 1, 2 or 3 bytes.
func EncodeFieldHeader(fh definitions.FieldHeader) ([]byte, error) {
	t, f := fh.TypeCode, fh.FieldCode
	if t < 1 || t > 255 || f < 1 || f > 255 {
		return nil, fmt.Errorf("%w: type code %v field code %v", ErrInvalidFieldHeader, t, f)
	}
	switch {
	case t < 16 && f < 16:
		return []byte{byte(t<<4 | f)}, nil
	case t < 16:
		return []byte{byte(t << 4), byte(f)}, nil
	case f < 16:
		return []byte{byte(f), byte(t)}, nil
	default:
		return []byte{0, byte(t), byte(f)}, nil
	}
}
