package types

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType            = errors.New("unsupported serialized type")
	ErrInvalidJSONType            = errors.New("unexpected json value type")
	ErrInvalidHex                 = errors.New("invalid hex string")
	ErrInvalidLength              = errors.New("invalid value length")
	ErrUintOutOfRange             = errors.New("unsigned integer out of range")
	ErrInvalidXRPAmount           = errors.New("invalid XRP amount")
	ErrInvalidIssuedValue         = errors.New("invalid issued currency value")
	ErrAmountOverflow             = errors.New("issued currency value overflow")
	ErrMissingAmountKey           = errors.New("issued currency amount requires currency, issuer and value")
	ErrMissingIssueKey            = errors.New("issue requires currency and, unless XRP, issuer")
	ErrInvalidCurrency            = errors.New("invalid currency code")
	ErrInvalidAccountID           = errors.New("invalid account id")
	ErrInvalidPathStep            = errors.New("invalid path step")
	ErrDisallowedTag              = errors.New("x-address with tag is not allowed for this field")
	ErrAccountMismatchingTags     = errors.New("account x-address tag does not match SourceTag")
	ErrDestinationMismatchingTags = errors.New("destination x-address tag does not match DestinationTag")
	ErrUnknownTransactionType     = errors.New("unknown transaction type")
	ErrUnknownTransactionResult   = errors.New("unknown transaction result")
	ErrUnknownLedgerEntryType     = errors.New("unknown ledger entry type")
	ErrDuplicateField             = errors.New("duplicate field")
	ErrMissingEndMarker           = errors.New("missing end marker")
	ErrUnexpectedEndMarker        = errors.New("end marker outside a nested object")
	ErrInvalidArrayElement        = errors.New("array element must be an object wrapping a single object field")
)

// FieldError wraps the failure of a single field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %v: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
