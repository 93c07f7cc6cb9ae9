package types

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set"

	"github.com/anyswap/xrpl-codec/addresscodec"
	"github.com/anyswap/xrpl-codec/binarycodec/definitions"
	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

// Markers and names with special handling.
const (
	ObjectEndMarker byte = 0xE1
	ArrayEndMarker  byte = 0xF1

	objectEndMarkerName = "ObjectEndMarker"
	arrayEndMarkerName  = "ArrayEndMarker"
	stObjectTypeName    = "STObject"

	transactionTypeField   = "TransactionType"
	transactionResultField = "TransactionResult"
	ledgerEntryTypeField   = "LedgerEntryType"

	// unlModifyTypeCode is the UNLModify pseudo-transaction, whose all zero
	// Account is written as an empty length prefix.
	unlModifyTypeCode = 102
)

// tagFields maps the fields that may hold a tagged x-address to the field
// receiving the tag.
var tagFields = map[string]string{
	"Account":     "SourceTag",
	"Destination": "DestinationTag",
}

var tagMismatchErrors = map[string]error{
	"Account":     ErrAccountMismatchingTags,
	"Destination": ErrDestinationMismatchingTags,
}

// STObject is an ordered set of fields. Nested objects end with
// ObjectEndMarker; a top level object ends with its input.
type STObject struct {
	// OnlySigning keeps only the fields covered by a signature.
	OnlySigning bool
	// TopLevel makes ToJSON read to the end of the input.
	TopLevel bool
}

// FromJSON writes the fields of a json object in canonical order.
func (o *STObject) FromJSON(value interface{}) ([]byte, error) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: want object, got %T", ErrInvalidJSONType, value)
	}
	defs := definitions.Get()

	fields, err := expandXAddresses(m)
	if err != nil {
		return nil, err
	}
	if err := translateCodes(defs, fields); err != nil {
		return nil, err
	}

	instances := make([]*definitions.FieldInstance, 0, len(fields))
	for name := range fields {
		fi, err := defs.GetFieldInstanceByFieldName(name)
		if err != nil || !fi.IsSerialized {
			continue
		}
		if o.OnlySigning && !fi.IsSigningField {
			continue
		}
		instances = append(instances, fi)
	}
	sort.Slice(instances, func(i, j int) bool {
		return instances[i].Ordinal < instances[j].Ordinal
	})

	isUNLModify := false
	if code, err := toUint64(fields[transactionTypeField]); err == nil && code == unlModifyTypeCode {
		isUNLModify = true
	}

	s := serdes.NewBinarySerializer()
	for _, fi := range instances {
		st := GetSerializedType(fi.Type)
		if st == nil {
			return nil, &FieldError{Field: fi.FieldName, Err: fmt.Errorf("%w: %v", ErrUnsupportedType, fi.Type)}
		}
		b, err := st.FromJSON(fields[fi.FieldName])
		if err != nil {
			return nil, &FieldError{Field: fi.FieldName, Err: err}
		}
		suppress := isUNLModify && fi.FieldName == "Account"
		if err := s.WriteFieldAndValue(fi, b, suppress); err != nil {
			return nil, &FieldError{Field: fi.FieldName, Err: err}
		}
		if fi.Type == stObjectTypeName {
			s.Append([]byte{ObjectEndMarker})
		}
	}
	return s.GetSink(), nil
}

// expandXAddresses returns a copy of m with x-addresses replaced by classic
// addresses and their tags moved into the matching tag fields.
func expandXAddresses(m map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	for field, v := range m {
		s, ok := v.(string)
		if !ok || !addresscodec.IsValidXAddress(s) {
			continue
		}
		classic, tag, hasTag, err := addresscodec.XAddressToClassicAddress(s)
		if err != nil {
			return nil, &FieldError{Field: field, Err: err}
		}
		out[field] = classic
		if !hasTag {
			continue
		}
		tagField, ok := tagFields[field]
		if !ok {
			return nil, &FieldError{Field: field, Err: ErrDisallowedTag}
		}
		if explicit, present := m[tagField]; present {
			n, err := toUint64(explicit)
			if err != nil || n != uint64(tag) {
				return nil, &FieldError{Field: field, Err: tagMismatchErrors[field]}
			}
		}
		out[tagField] = tag
	}
	return out, nil
}

// translateCodes replaces the names of transaction types, results and
// ledger entry types with their codes.
func translateCodes(defs *definitions.Definitions, fields map[string]interface{}) error {
	lookups := []struct {
		field  string
		lookup func(string) (int32, error)
		err    error
	}{
		{transactionTypeField, defs.GetTransactionTypeCodeByTransactionTypeName, ErrUnknownTransactionType},
		{transactionResultField, defs.GetTransactionResultCodeByTransactionResultName, ErrUnknownTransactionResult},
		{ledgerEntryTypeField, defs.GetLedgerEntryTypeCodeByLedgerEntryTypeName, ErrUnknownLedgerEntryType},
	}
	for _, l := range lookups {
		name, ok := fields[l.field].(string)
		if !ok {
			continue
		}
		code, err := l.lookup(name)
		if err != nil {
			return &FieldError{Field: l.field, Err: fmt.Errorf("%w: %q", l.err, name)}
		}
		fields[l.field] = code
	}
	return nil
}

// ToJSON reads fields until ObjectEndMarker, or until the input ends for a
// top level object.
func (o *STObject) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	defs := definitions.Get()
	out := make(map[string]interface{})
	seen := mapset.NewSet()
	for {
		if !p.HasMore() {
			if o.TopLevel {
				return out, nil
			}
			return nil, fmt.Errorf("%w: object", ErrMissingEndMarker)
		}
		fi, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if fi.FieldName == objectEndMarkerName {
			if o.TopLevel {
				return nil, ErrUnexpectedEndMarker
			}
			return out, nil
		}
		if !seen.Add(fi.FieldName) {
			return nil, &FieldError{Field: fi.FieldName, Err: ErrDuplicateField}
		}
		v, err := readFieldValue(p, fi)
		if err != nil {
			return nil, &FieldError{Field: fi.FieldName, Err: err}
		}
		if v, err = translateName(defs, fi.FieldName, v); err != nil {
			return nil, &FieldError{Field: fi.FieldName, Err: err}
		}
		out[fi.FieldName] = v
	}
}

func readFieldValue(p *serdes.BinaryParser, fi *definitions.FieldInstance) (interface{}, error) {
	st := GetSerializedType(fi.Type)
	if st == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, fi.Type)
	}
	if !fi.IsVLEncoded {
		return st.ToJSON(p)
	}
	n, err := p.ReadVariableLength()
	if err != nil {
		return nil, err
	}
	if n > p.Remaining() {
		return nil, fmt.Errorf("%w: %v byte value with %v left", serdes.ErrParserOutOfBound, n, p.Remaining())
	}
	return st.ToJSON(p, n)
}

func translateName(defs *definitions.Definitions, field string, v interface{}) (interface{}, error) {
	var code int32
	switch n := v.(type) {
	case uint8:
		code = int32(n)
	case uint16:
		code = int32(n)
	default:
		return v, nil
	}
	switch field {
	case transactionTypeField:
		name, err := defs.GetTransactionTypeNameByTransactionTypeCode(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownTransactionType, code)
		}
		return name, nil
	case transactionResultField:
		name, err := defs.GetTransactionResultNameByTransactionResultCode(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownTransactionResult, code)
		}
		return name, nil
	case ledgerEntryTypeField:
		name, err := defs.GetLedgerEntryTypeNameByLedgerEntryTypeCode(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownLedgerEntryType, code)
		}
		return name, nil
	}
	return v, nil
}
