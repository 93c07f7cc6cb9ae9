package serdes

import (
	"errors"
	"fmt"

	"github.com/anyswap/xrpl-codec/binarycodec/definitions"
)

var (
	// ErrParserOutOfBound is returned when a read asks for more bytes than remain.
	ErrParserOutOfBound = errors.New("parser out of bound")
	// ErrInvalidLengthPrefix is returned when a length prefix starts with 255.
	ErrInvalidLengthPrefix = errors.New("invalid variable length prefix")
	// ErrLengthPrefixTooLarge is returned when a value exceeds 918744 bytes.
	ErrLengthPrefixTooLarge = errors.New("variable length value too large")
	// ErrInvalidFieldHeader is returned for zero or undersized overflow codes.
	ErrInvalidFieldHeader = errors.New("invalid field header")
	// ErrUnknownField is matched by every UnknownFieldError.
	ErrUnknownField = errors.New("unknown field")
)

// UnknownFieldError reports a header with no registry entry.
type UnknownFieldError struct {
	Header definitions.FieldHeader
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field with type code %v and field code %v", e.Header.TypeCode, e.Header.FieldCode)
}

// Is matches ErrUnknownField.
func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}
