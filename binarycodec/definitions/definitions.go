// Package definitions holds the ledger's field, type, transaction type,
// transaction result and ledger entry type tables.
package definitions

import (
	_ "embed" // definitions.json
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

//go:embed definitions.json
var embeddedDefinitions []byte

var (
	// ErrDefinitionsLoaded is returned by Configure once Get has been called.
	ErrDefinitionsLoaded = errors.New("definitions already loaded")
	// ErrNotFound is matched by every lookup failure.
	ErrNotFound = errors.New("definition not found")
)

// NotFoundError describes a failed registry lookup.
type NotFoundError struct {
	Kind  string
	Input interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v %v not found", e.Kind, e.Input)
}

// Is makes errors.Is(err, ErrNotFound) hold for every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// FieldHeader is the (type code, field code) pair written before a field value.
type FieldHeader struct {
	TypeCode  int32
	FieldCode int32
}

// FieldInfo is the per-field metadata as published in definitions.json.
type FieldInfo struct {
	Nth            int32  `json:"nth"`
	IsVLEncoded    bool   `json:"isVLEncoded"`
	IsSerialized   bool   `json:"isSerialized"`
	IsSigningField bool   `json:"isSigningField"`
	Type           string `json:"type"`
}

// FieldInstance is a resolved field: its info plus header and sort ordinal.
type FieldInstance struct {
	FieldName string
	*FieldInfo
	FieldHeader *FieldHeader
	Ordinal     int32
}

// Definitions is the immutable registry. Build it with Load or use Get.
type Definitions struct {
	Types              map[string]int32
	LedgerEntryTypes   map[string]int32
	Fields             map[string]*FieldInstance
	TransactionResults map[string]int32
	TransactionTypes   map[string]int32

	fieldNameByHeader       map[FieldHeader]string
	ledgerEntryTypeByCode   map[int32]string
	transactionResultByCode map[int32]string
	transactionTypeByCode   map[int32]string
}

type rawDefinitions struct {
	Types              map[string]int32     `json:"TYPES"`
	LedgerEntryTypes   map[string]int32     `json:"LEDGER_ENTRY_TYPES"`
	Fields             [][2]json.RawMessage `json:"FIELDS"`
	TransactionResults map[string]int32     `json:"TRANSACTION_RESULTS"`
	TransactionTypes   map[string]int32     `json:"TRANSACTION_TYPES"`
}

var (
	loadOnce sync.Once
	loaded   *Definitions

	customMu sync.Mutex
	custom   *Definitions
	started  bool
)

// Get returns the process wide registry, building it on first use.
func Get() *Definitions {
	loadOnce.Do(func() {
		customMu.Lock()
		started = true
		defs := custom
		customMu.Unlock()
		if defs == nil {
			var err error
			defs, err = Load(embeddedDefinitions)
			if err != nil {
				panic(fmt.Sprintf("embedded definitions are invalid: %v", err))
			}
		}
		loaded = defs
	})
	return loaded
}

// Configure replaces the embedded definitions with data. It must be called
// before the first Get.
func Configure(data []byte) error {
	defs, err := Load(data)
	if err != nil {
		return err
	}
	customMu.Lock()
	defer customMu.Unlock()
	if started {
		return ErrDefinitionsLoaded
	}
	custom = defs
	return nil
}

// Load parses a definitions.json document into a new registry.
func Load(data []byte) (*Definitions, error) {
	var raw rawDefinitions
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse definitions: %w", err)
	}
	if len(raw.Types) == 0 || len(raw.Fields) == 0 {
		return nil, errors.New("parse definitions: missing TYPES or FIELDS")
	}

	defs := &Definitions{
		Types:                   raw.Types,
		LedgerEntryTypes:        raw.LedgerEntryTypes,
		Fields:                  make(map[string]*FieldInstance, len(raw.Fields)),
		TransactionResults:      raw.TransactionResults,
		TransactionTypes:        raw.TransactionTypes,
		fieldNameByHeader:       make(map[FieldHeader]string, len(raw.Fields)),
		ledgerEntryTypeByCode:   reverse(raw.LedgerEntryTypes),
		transactionResultByCode: reverse(raw.TransactionResults),
		transactionTypeByCode:   reverse(raw.TransactionTypes),
	}

	for _, pair := range raw.Fields {
		var name string
		if err := json.Unmarshal(pair[0], &name); err != nil {
			return nil, fmt.Errorf("parse field name: %w", err)
		}
		info := &FieldInfo{}
		if err := json.Unmarshal(pair[1], info); err != nil {
			return nil, fmt.Errorf("parse field %v: %w", name, err)
		}
		typeCode, ok := raw.Types[info.Type]
		if !ok {
			return nil, fmt.Errorf("field %v has unknown type %v", name, info.Type)
		}
		header := &FieldHeader{TypeCode: typeCode, FieldCode: info.Nth}
		defs.Fields[name] = &FieldInstance{
			FieldName:   name,
			FieldInfo:   info,
			FieldHeader: header,
			Ordinal:     typeCode<<16 | info.Nth,
		}
		if typeCode > 0 && typeCode <= 255 && info.Nth > 0 && info.Nth <= 255 {
			defs.fieldNameByHeader[*header] = name
		}
	}
	return defs, nil
}

func reverse(m map[string]int32) map[int32]string {
	r := make(map[int32]string, len(m))
	for k, v := range m {
		r[v] = k
	}
	return r
}

// CreateFieldHeader builds a header from its codes.
func (d *Definitions) CreateFieldHeader(typeCode, fieldCode int32) FieldHeader {
	return FieldHeader{TypeCode: typeCode, FieldCode: fieldCode}
}

// GetTypeCodeByTypeName returns the serialized type code of a type name.
func (d *Definitions) GetTypeCodeByTypeName(typeName string) (int32, error) {
	code, ok := d.Types[typeName]
	if !ok {
		return 0, &NotFoundError{Kind: "TypeName", Input: typeName}
	}
	return code, nil
}

// GetFieldInstanceByFieldName returns the field instance of name.
func (d *Definitions) GetFieldInstanceByFieldName(fieldName string) (*FieldInstance, error) {
	fi, ok := d.Fields[fieldName]
	if !ok {
		return nil, &NotFoundError{Kind: "FieldName", Input: fieldName}
	}
	return fi, nil
}

// GetFieldHeaderByFieldName returns the header of name.
func (d *Definitions) GetFieldHeaderByFieldName(fieldName string) (*FieldHeader, error) {
	fi, err := d.GetFieldInstanceByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return fi.FieldHeader, nil
}

// GetFieldNameByFieldHeader is the reverse lookup used while decoding.
func (d *Definitions) GetFieldNameByFieldHeader(fh FieldHeader) (string, error) {
	name, ok := d.fieldNameByHeader[fh]
	if !ok {
		return "", &NotFoundError{Kind: "FieldHeader", Input: fh}
	}
	return name, nil
}

// GetFieldInstanceByFieldHeader resolves a header straight to its instance.
func (d *Definitions) GetFieldInstanceByFieldHeader(fh FieldHeader) (*FieldInstance, error) {
	name, err := d.GetFieldNameByFieldHeader(fh)
	if err != nil {
		return nil, err
	}
	return d.GetFieldInstanceByFieldName(name)
}

// GetTransactionTypeCodeByTransactionTypeName maps e.g. "Payment" to 0.
func (d *Definitions) GetTransactionTypeCodeByTransactionTypeName(name string) (int32, error) {
	code, ok := d.TransactionTypes[name]
	if !ok {
		return 0, &NotFoundError{Kind: "TransactionType", Input: name}
	}
	return code, nil
}

// GetTransactionTypeNameByTransactionTypeCode maps e.g. 0 to "Payment".
func (d *Definitions) GetTransactionTypeNameByTransactionTypeCode(code int32) (string, error) {
	name, ok := d.transactionTypeByCode[code]
	if !ok {
		return "", &NotFoundError{Kind: "TransactionType", Input: code}
	}
	return name, nil
}

// GetTransactionResultCodeByTransactionResultName maps e.g. "tesSUCCESS" to 0.
func (d *Definitions) GetTransactionResultCodeByTransactionResultName(name string) (int32, error) {
	code, ok := d.TransactionResults[name]
	if !ok {
		return 0, &NotFoundError{Kind: "TransactionResult", Input: name}
	}
	return code, nil
}

// GetTransactionResultNameByTransactionResultCode maps e.g. 0 to "tesSUCCESS".
func (d *Definitions) GetTransactionResultNameByTransactionResultCode(code int32) (string, error) {
	name, ok := d.transactionResultByCode[code]
	if !ok {
		return "", &NotFoundError{Kind: "TransactionResult", Input: code}
	}
	return name, nil
}

// GetLedgerEntryTypeCodeByLedgerEntryTypeName maps e.g. "AccountRoot" to 97.
func (d *Definitions) GetLedgerEntryTypeCodeByLedgerEntryTypeName(name string) (int32, error) {
	code, ok := d.LedgerEntryTypes[name]
	if !ok {
		return 0, &NotFoundError{Kind: "LedgerEntryType", Input: name}
	}
	return code, nil
}

// GetLedgerEntryTypeNameByLedgerEntryTypeCode maps e.g. 97 to "AccountRoot".
func (d *Definitions) GetLedgerEntryTypeNameByLedgerEntryTypeCode(code int32) (string, error) {
	name, ok := d.ledgerEntryTypeByCode[code]
	if !ok {
		return "", &NotFoundError{Kind: "LedgerEntryType", Input: code}
	}
	return name, nil
}
