// internal/domain/models/estimate.go
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Estimate is a vote or final estimation value. It holds either a number
// (Fibonacci points, custom numeric scale) or a label (T-shirt size,
// "?", custom label). The zero value is empty.
//
// Estimate encodes to JSON and BSON as the bare number or string.
type Estimate struct {
	num   float64
	label string
	kind  estimateKind
}

type estimateKind uint8

const (
	estimateEmpty estimateKind = iota
	estimateNumber
	estimateLabel
)

var errEstimateType = errors.New("estimate must be a number or a string")

// NumberEstimate returns an Estimate holding n.
func NumberEstimate(n float64) Estimate {
	return Estimate{num: n, kind: estimateNumber}
}

// LabelEstimate returns an Estimate holding s.
func LabelEstimate(s string) Estimate {
	return Estimate{label: s, kind: estimateLabel}
}

// IsZero reports whether no value was set.
func (e Estimate) IsZero() bool { return e.kind == estimateEmpty }

// IsNumber reports whether e holds a number.
func (e Estimate) IsNumber() bool { return e.kind == estimateNumber }

// Number returns the numeric value and whether e holds one.
func (e Estimate) Number() (float64, bool) {
	return e.num, e.kind == estimateNumber
}

// Label returns the label and whether e holds one.
func (e Estimate) Label() (string, bool) {
	return e.label, e.kind == estimateLabel
}

func (e Estimate) String() string {
	switch e.kind {
	case estimateNumber:
		return strconv.FormatFloat(e.num, 'f', -1, 64)
	case estimateLabel:
		return e.label
	}
	return ""
}

// MarshalJSON implements json.Marshaler.
func (e Estimate) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case estimateNumber:
		return json.Marshal(e.num)
	case estimateLabel:
		return json.Marshal(e.label)
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Estimate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*e = Estimate{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = LabelEstimate(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return errEstimateType
	}
	*e = NumberEstimate(n)
	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
func (e Estimate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch e.kind {
	case estimateNumber:
		return bson.MarshalValue(e.num)
	case estimateLabel:
		return bson.MarshalValue(e.label)
	}
	return bson.TypeNull, nil, nil
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (e *Estimate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*e = Estimate{}
	case bson.TypeString:
		*e = LabelEstimate(rv.StringValue())
	case bson.TypeDouble:
		*e = NumberEstimate(rv.Double())
	case bson.TypeInt32:
		*e = NumberEstimate(float64(rv.Int32()))
	case bson.TypeInt64:
		*e = NumberEstimate(float64(rv.Int64()))
	default:
		return fmt.Errorf("decode estimate from %s: %w", t, errEstimateType)
	}
	return nil
}
