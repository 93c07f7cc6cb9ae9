// Package types implements one codec per serialized type of the ledger's
// binary format.
package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

// SerializedType converts between json values and canonical bytes.
// ToJSON takes the length prefix of VL encoded fields as its first option.
type SerializedType interface {
	FromJSON(value interface{}) ([]byte, error)
	ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error)
}

// GetSerializedType returns the codec of a type name, or nil.
func GetSerializedType(typeName string) SerializedType {
	switch typeName {
	case "AccountID":
		return &AccountID{}
	case "Amount":
		return &Amount{}
	case "Blob":
		return &Blob{}
	case "Currency":
		return &Currency{}
	case "Hash128":
		return NewHash128()
	case "Hash160":
		return NewHash160()
	case "Hash256":
		return NewHash256()
	case "Issue":
		return &Issue{}
	case "PathSet":
		return &PathSet{}
	case "STArray":
		return &STArray{}
	case "STObject":
		return &STObject{}
	case "UInt8":
		return &UInt8{}
	case "UInt16":
		return &UInt16{}
	case "UInt32":
		return &UInt32{}
	case "UInt64":
		return &UInt64{}
	case "Vector256":
		return &Vector256{}
	case "XChainBridge":
		return &XChainBridge{}
	}
	return nil
}

func lengthHint(opts []int) (int, bool) {
	if len(opts) == 0 {
		return 0, false
	}
	return opts[0], true
}

func decodeHex(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: want hex string, got %T", ErrInvalidJSONType, value)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}

func encodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// toUint64 accepts the numeric forms json decoding and Go callers produce.
func toUint64(value interface{}) (uint64, error) {
	switch v := value.(type) {
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	case uint:
		return uint64(v), nil
	case int:
		return signedToUint64(int64(v))
	case int8:
		return signedToUint64(int64(v))
	case int16:
		return signedToUint64(int64(v))
	case int32:
		return signedToUint64(int64(v))
	case int64:
		return signedToUint64(v)
	case float64:
		if v < 0 || v != math.Trunc(v) || v >= 1<<64 {
			return 0, fmt.Errorf("%w: %v", ErrUintOutOfRange, v)
		}
		return uint64(v), nil
	case json.Number:
		return parseUintString(v.String())
	case string:
		return parseUintString(v)
	}
	return 0, fmt.Errorf("%w: want number, got %T", ErrInvalidJSONType, value)
}

func signedToUint64(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %v", ErrUintOutOfRange, v)
	}
	return uint64(v), nil
}

func parseUintString(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUintOutOfRange, s)
	}
	return n, nil
}
