// Package pmap defines the tagged property-value model that every decoded
// record is expressed in. It stands in for the untyped dictionaries the
// format was originally decoded into, giving callers compile-time-checked
// accessors instead of runtime type assertions.
package pmap

import (
	"encoding/json"
	"time"
)

// Kind identifies which field of a Value is populated.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindLong
	KindFloat
	KindText
	KindBytes
	KindDateTime
	KindDate
	KindMap
	KindList
	KindIntList
	KindDateList
	KindColor
	KindTypeCode
)

// Map is a decoded property set, keyed by the field name the schema
// assigned (not the raw tag:index key).
type Map map[string]Value

// Value is a closed sum type over every shape a decoded property can take.
// It is a tagged struct rather than `any` so the zero value is well-defined
// (KindNull) and accessors never need a type assertion.
type Value struct {
	kind     Kind
	boolV    bool
	intV     int64
	floatV   float64
	textV    string
	bytesV   []byte
	timeV    time.Time
	mapV     Map
	listV    []Map
	intListV []int64
	dateListV []time.Time
	nullTypeCode bool
}

// Kind reports which accessor is valid for v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds no value.
func (v Value) IsNull() bool { return v.kind == KindNull }

func Null() Value { return Value{kind: KindNull} }

func NewBool(b bool) Value { return Value{kind: KindBool, boolV: b} }

func (v Value) Bool() bool { return v.boolV }

func NewInt(i int64) Value { return Value{kind: KindInt, intV: i} }

func (v Value) Int() int64 { return v.intV }

func NewLong(i int64) Value { return Value{kind: KindLong, intV: i} }

func (v Value) Long() int64 { return v.intV }

func NewFloat(f float64) Value { return Value{kind: KindFloat, floatV: f} }

func (v Value) Float() float64 { return v.floatV }

func NewText(s string) Value { return Value{kind: KindText, textV: s} }

func (v Value) Text() string { return v.textV }

func NewBytes(b []byte) Value { return Value{kind: KindBytes, bytesV: b} }

func (v Value) Bytes() []byte { return v.bytesV }

func NewDateTime(t time.Time) Value { return Value{kind: KindDateTime, timeV: t} }

func (v Value) DateTime() time.Time { return v.timeV }

func NewDate(t time.Time) Value { return Value{kind: KindDate, timeV: t} }

func (v Value) Date() time.Time { return v.timeV }

func NewMap(m Map) Value { return Value{kind: KindMap, mapV: m} }

func (v Value) Map() Map { return v.mapV }

func NewList(l []Map) Value { return Value{kind: KindList, listV: l} }

func (v Value) List() []Map { return v.listV }

func NewIntList(l []int64) Value { return Value{kind: KindIntList, intListV: l} }

func (v Value) IntList() []int64 { return v.intListV }

func NewDateList(l []time.Time) Value { return Value{kind: KindDateList, dateListV: l} }

func (v Value) DateList() []time.Time { return v.dateListV }

// NewColor holds a "#RRBBGG" triple exactly as decoded from the wire (note
// the RBG, not RGB, channel order the format uses).
func NewColor(s string) Value { return Value{kind: KindColor, textV: s} }

func (v Value) Color() string { return v.textV }

// NewTypeCode holds a decoded four-character reversed type code, or
// represents the reserved all-zero value as the absence of a code.
func NewTypeCode(s *string) Value {
	if s == nil {
		return Value{kind: KindTypeCode, nullTypeCode: true}
	}
	return Value{kind: KindTypeCode, textV: *s}
}

// TypeCode returns the decoded code, or nil if the wire value was the
// reserved all-zero marker.
func (v Value) TypeCode() *string {
	if v.kind != KindTypeCode || v.nullTypeCode {
		return nil
	}
	s := v.textV
	return &s
}

// MarshalJSON renders v as whichever JSON shape matches its Kind, so a
// decoded Map serializes the way a caller would expect from its Go value
// rather than exposing the tagged-struct representation.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return json.Marshal(nil)
	case KindBool:
		return json.Marshal(v.boolV)
	case KindInt, KindLong:
		return json.Marshal(v.intV)
	case KindFloat:
		return json.Marshal(v.floatV)
	case KindText, KindColor:
		return json.Marshal(v.textV)
	case KindBytes:
		return json.Marshal(v.bytesV)
	case KindDateTime, KindDate:
		return json.Marshal(v.timeV)
	case KindMap:
		return json.Marshal(v.mapV)
	case KindList:
		return json.Marshal(v.listV)
	case KindIntList:
		return json.Marshal(v.intListV)
	case KindDateList:
		return json.Marshal(v.dateListV)
	case KindTypeCode:
		return json.Marshal(v.TypeCode())
	default:
		return json.Marshal(nil)
	}
}
