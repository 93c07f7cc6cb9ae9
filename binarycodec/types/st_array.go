package types

import (
	"fmt"

	"github.com/anyswap/xrpl-codec/binarycodec/definitions"
	"github.com/anyswap/xrpl-codec/binarycodec/serdes"
)

// STArray is a list of single field objects such as
// [{"Memo": {...}}, {"Memo": {...}}]. Each element is written as its field
// header, the inner object and ObjectEndMarker; the list ends with
// ArrayEndMarker.
type STArray struct{}

// FromJSON writes every element and the closing marker.
func (a *STArray) FromJSON(value interface{}) ([]byte, error) {
	list, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: want array, got %T", ErrInvalidJSONType, value)
	}
	var out []byte
	for i, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok || len(m) != 1 {
			return nil, fmt.Errorf("%w: element %v", ErrInvalidArrayElement, i)
		}
		for name, inner := range m {
			fi, err := definitions.Get().GetFieldInstanceByFieldName(name)
			if err != nil || fi.Type != stObjectTypeName {
				return nil, fmt.Errorf("%w: element %v field %v", ErrInvalidArrayElement, i, name)
			}
			if _, ok := inner.(map[string]interface{}); !ok {
				return nil, fmt.Errorf("%w: element %v field %v", ErrInvalidArrayElement, i, name)
			}
		}
		b, err := (&STObject{}).FromJSON(m)
		if err != nil {
			return nil, fmt.Errorf("element %v: %w", i, err)
		}
		out = append(out, b...)
	}
	return append(out, ArrayEndMarker), nil
}

// ToJSON reads elements until ArrayEndMarker.
func (a *STArray) ToJSON(p *serdes.BinaryParser, opts ...int) (interface{}, error) {
	out := make([]interface{}, 0)
	for p.HasMore() {
		fi, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if fi.FieldName == arrayEndMarkerName {
			return out, nil
		}
		if fi.Type != stObjectTypeName {
			return nil, fmt.Errorf("%w: %v is a %v", ErrInvalidArrayElement, fi.FieldName, fi.Type)
		}
		inner, err := (&STObject{}).ToJSON(p)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", fi.FieldName, err)
		}
		out = append(out, map[string]interface{}{fi.FieldName: inner})
	}
	return nil, fmt.Errorf("%w: array", ErrMissingEndMarker)
}
