package definitions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFieldInstanceByFieldName(t *testing.T) {
	tests := []struct {
		name      string
		typ       string
		header    FieldHeader
		ordinal   int32
		vl        bool
		signing   bool
		serialize bool
	}{
		{"TransactionType", "UInt16", FieldHeader{1, 2}, 1<<16 | 2, false, true, true},
		{"Account", "AccountID", FieldHeader{8, 1}, 8<<16 | 1, true, true, true},
		{"TakerGets", "Amount", FieldHeader{6, 5}, 6<<16 | 5, false, true, true},
		{"TxnSignature", "Blob", FieldHeader{7, 4}, 7<<16 | 4, true, false, true},
		{"Memos", "STArray", FieldHeader{15, 9}, 15<<16 | 9, false, true, true},
		{"Signers", "STArray", FieldHeader{15, 3}, 15<<16 | 3, false, false, true},
		{"TickSize", "UInt8", FieldHeader{16, 16}, 16<<16 | 16, false, true, true},
		{"hash", "Hash256", FieldHeader{5, 257}, 5<<16 | 257, false, false, false},
	}
	defs := Get()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fi, err := defs.GetFieldInstanceByFieldName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, fi.Type)
			assert.Equal(t, tt.header, *fi.FieldHeader)
			assert.Equal(t, tt.ordinal, fi.Ordinal)
			assert.Equal(t, tt.vl, fi.IsVLEncoded)
			assert.Equal(t, tt.signing, fi.IsSigningField)
			assert.Equal(t, tt.serialize, fi.IsSerialized)
		})
	}
}

func TestGetFieldNameByFieldHeader(t *testing.T) {
	defs := Get()
	name, err := defs.GetFieldNameByFieldHeader(defs.CreateFieldHeader(14, 1))
	require.NoError(t, err)
	assert.Equal(t, "ObjectEndMarker", name)

	name, err = defs.GetFieldNameByFieldHeader(FieldHeader{TypeCode: 15, FieldCode: 1})
	require.NoError(t, err)
	assert.Equal(t, "ArrayEndMarker", name)

	_, err = defs.GetFieldNameByFieldHeader(FieldHeader{TypeCode: 2, FieldCode: 200})
	assert.True(t, errors.Is(err, ErrNotFound))
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "FieldHeader", nf.Kind)
}

func TestCodeTables(t *testing.T) {
	defs := Get()

	code, err := defs.GetTransactionTypeCodeByTransactionTypeName("OfferCreate")
	require.NoError(t, err)
	assert.EqualValues(t, 7, code)
	code, err = defs.GetTransactionTypeCodeByTransactionTypeName("UNLModify")
	require.NoError(t, err)
	assert.EqualValues(t, 0x66, code)
	name, err := defs.GetTransactionTypeNameByTransactionTypeCode(0)
	require.NoError(t, err)
	assert.Equal(t, "Payment", name)

	code, err = defs.GetTransactionResultCodeByTransactionResultName("tecPATH_DRY")
	require.NoError(t, err)
	assert.EqualValues(t, 128, code)
	name, err = defs.GetTransactionResultNameByTransactionResultCode(0)
	require.NoError(t, err)
	assert.Equal(t, "tesSUCCESS", name)

	code, err = defs.GetLedgerEntryTypeCodeByLedgerEntryTypeName("AccountRoot")
	require.NoError(t, err)
	assert.EqualValues(t, 97, code)
	name, err = defs.GetLedgerEntryTypeNameByLedgerEntryTypeCode(111)
	require.NoError(t, err)
	assert.Equal(t, "Offer", name)

	_, err = defs.GetTransactionTypeCodeByTransactionTypeName("NotATransaction")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = defs.GetTypeCodeByTypeName("NotAType")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFieldOrdinalsAreUnique(t *testing.T) {
	seen := make(map[int32]string)
	for name, fi := range Get().Fields {
		if !fi.IsSerialized {
			continue
		}
		other, dup := seen[fi.Ordinal]
		assert.False(t, dup, "%v and %v share ordinal %v", name, other, fi.Ordinal)
		seen[fi.Ordinal] = name
	}
}

func TestLoad(t *testing.T) {
	defs, err := Load([]byte(`{
		"TYPES": {"UInt32": 2},
		"FIELDS": [["Flags", {"nth": 2, "isVLEncoded": false, "isSerialized": true, "isSigningField": true, "type": "UInt32"}]],
		"TRANSACTION_TYPES": {"Payment": 0}
	}`))
	require.NoError(t, err)
	fi, err := defs.GetFieldInstanceByFieldName("Flags")
	require.NoError(t, err)
	assert.EqualValues(t, 2<<16|2, fi.Ordinal)

	_, err = Load([]byte(`{"TYPES": {}}`))
	assert.Error(t, err)

	_, err = Load([]byte(`{"TYPES": {"UInt32": 2}, "FIELDS": [["Flags", {"nth": 2, "type": "UInt99"}]]}`))
	assert.Error(t, err)
}

func TestConfigureAfterGet(t *testing.T) {
	_ = Get()
	err := Configure(embeddedDefinitions)
	assert.Equal(t, ErrDefinitionsLoaded, err)
}
