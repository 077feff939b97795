// Copyright (c) 2020-2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"jsouthworth.net/go/dyn"
)

// ValueNew turns a native go value into a JSON Value as long as the
// type can be represented in JSON encoding. ValueNew will panic if the
// value is not a JSON compatible type.
func ValueNew(data interface{}) *Value {
	return valueNew(data)
}

func valueNew(data interface{}) *Value {
	if data == nil {
		return &Value{data: nil}
	}
	switch d := data.(type) {
	case *Value:
		return d
	case *Object, *Array:
	case int, int8, int16, int32, int64:
		// Integers are up-converted to a 64bit type so that
		// values created this way and values produced by the
		// unmarshaller always yield the same internal type,
		// otherwise equality won't work. When users unpack the
		// value the proper conversion will be made to the
		// requested type.
		data = convertToInt64(d)
	case uint, uint8, uint16, uint32, uint64:
		// Unsigned values keep their unsigned representation
		// only when they don't fit in an int64; the unmarshal
		// code makes the same choice.
		data = inferUint64Type(convertToUint64(d))
	case float32:
		data = float64(d)
	case float64:
	case bool:
	case string:
	case map[string]interface{}:
		data = ObjectFrom(d)
	case []interface{}:
		data = ArrayFrom(d)
	default:
		panic(errors.New("cannot create value, invalid type"))
	}
	return &Value{
		data: data,
	}
}

// Value is a JSON value. Values may be *Object, *Array, int64, uint64,
// float64, string, bool, or nil. All integer types narrower than 64 bits
// are up-converted when creating a value.
type Value struct {
	data interface{}
}

var _null = &Value{}

// Null returns the constant null value. Null is what every navigation
// primitive resolves to when it has no match; a pipeline never observes
// an error from navigation, only this value.
func Null() *Value {
	return _null
}

// String is a type that allows differentiation of functions that require
// a go string or the value's text form. It can be used with Perform
// to unpack the value correctly depending on the desired semantics.
type String string

var valType = reflect.TypeOf((*Value)(nil))
var interfaceType = reflect.TypeOf((*interface{})(nil)).Elem()
var stringType = reflect.TypeOf(String(""))

// Perform allows one to match the type of the Value with a behavior
// to perform on that type without resorting to the assertion
// operations. Think of this as the switch v.(type) { ... } analogue for
// JSON value types. It takes a list of func(v vT) oT functions and applies
// the first match to the value.
//
// If vT above is *Value, String, or interface{} it matches all value
// types. If it is String then Text is called on the value first. If
// the value is a numeric type and the numeric type is convertable to vT
// then that is considered a match and the conversion is applied first,
// this is not go's standard ConvertibleTo however, only int64 <-> uint64
// is supported and only if the values fit.
func (val *Value) Perform(fns ...interface{}) interface{} {
	if val == nil {
		return nil
	}
	vty := reflect.TypeOf(val.data)
	var action interface{}
	arg := val.data
	for _, fn := range fns {
		if action != nil {
			break
		}
		fnty := reflect.TypeOf(fn)
		if fnty.NumIn() != 1 {
			continue
		}
		inputType := fnty.In(0)
		switch {
		case vty == nil:
			if inputType == interfaceType {
				action = fn
			}
		case inputType == valType:
			arg = val
			action = fn
		case inputType == stringType:
			arg = String(val.Text())
			action = fn
		case vty.AssignableTo(inputType):
			action = fn
		case canConvertNumeric(vty, inputType, arg):
			// Schema less parsing means we don't really know
			// the right numeric type, non-negative numbers fit
			// both representations. Let the user request the
			// signedness they want if the number fits.
			arg = convertNumeric(arg, inputType)
			action = fn
		}
	}
	if action == nil {
		return nil
	}
	return dyn.Apply(action, arg)
}

func canConvertNumeric(from, to reflect.Type, v interface{}) bool {
	// This is a specific subset of what (reflect.Value).Convert allows,
	// we need to be more strict because signed and unsigned numbers are
	// treated very differently but we may not know the exact type for
	// positive numbers we receive so we need to allow some automatic
	// conversions.
	if from == to {
		return true
	}
	switch from {
	case int64Type:
		return to == uint64Type && v.(int64) >= 0
	case uint64Type:
		return to == int64Type && v.(uint64) <= (1<<63)-1
	}
	return false
}

func convertNumeric(from interface{}, to reflect.Type) interface{} {
	return reflect.ValueOf(from).
		Convert(to).
		Interface()
}

// AsObject returns an *Object if the value is an Object and panics otherwise.
func (val *Value) AsObject() *Object {
	return val.data.(*Object)
}

// IsObject returns if the data stored in the value is an Object.
func (val *Value) IsObject() bool {
	_, isObject := val.data.(*Object)
	return isObject
}

// ToObject returns an *Object and allows the user to define a
// default. The value (*Object)(nil) is returned if no default is defined
// and the value is not an *Object.
func (val *Value) ToObject(defaultVal ...*Object) *Object {
	o, isObject := val.data.(*Object)
	if isObject {
		return o
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsArray returns an *Array if the value is an Array and panics otherwise.
func (val *Value) AsArray() *Array {
	return val.data.(*Array)
}

// IsArray returns if the data stored in the value is an Array.
func (val *Value) IsArray() bool {
	_, isArray := val.data.(*Array)
	return isArray
}

// ToArray returns an *Array and allows the user to define a
// default. The value (*Array)(nil) is returned if no default is defined
// and the value is not an *Array.
func (val *Value) ToArray(defaultVal ...*Array) *Array {
	arr, isArray := val.data.(*Array)
	if isArray {
		return arr
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return nil
}

// AsString returns a string if the value is a String and panics otherwise.
func (val *Value) AsString() string {
	return val.data.(string)
}

// IsString returns if the data stored in the value is a String.
func (val *Value) IsString() bool {
	_, isString := val.data.(string)
	return isString
}

// ToString returns a string and allows the user to define a
// default. The value "" is returned if no default is defined
// and the value is not a string.
func (val *Value) ToString(defaultVal ...string) string {
	s, isString := val.data.(string)
	if isString {
		return s
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return ""
}

// Text converts the value to its text form. Strings are returned
// unquoted, scalars in their decimal or literal form, and collections
// in their JSON form.
func (val *Value) Text() string {
	if val == nil || val.data == nil {
		return "null"
	}
	switch d := val.data.(type) {
	case stringer:
		return d.String()
	case uint64:
		return strconv.FormatUint(d, 10)
	case int64:
		return strconv.FormatInt(d, 10)
	case float64:
		return strconv.FormatFloat(d, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(d)
	case string:
		return d
	default:
		panic(errors.New("cannot convert value to string, invalid type"))
	}
}

// stringer exists so we don't need to import fmt for the definition
// in general this is what interfaces are good for.
type stringer interface {
	String() string
}

var int64Type = reflect.TypeOf(int64(0))

func convertToInt64(v interface{}) int64 {
	return reflect.ValueOf(v).
		Convert(int64Type).
		Interface().(int64)
}

// AsInt64 returns an int64 if the type is convertable to int64 and panics otherwise.
func (val *Value) AsInt64() int64 {
	return convertToInt64(val.data)
}

// IsInt64 returns if the value is representable as an int64.
func (val *Value) IsInt64() bool {
	return canConvertNumeric(reflect.TypeOf(val.data),
		int64Type, val.data)
}

// ToInt64 returns an int64 if the type is convertable to int64 and returns the user supplied default or 0 otherwise.
func (val *Value) ToInt64(defaultVal ...int64) int64 {
	if val.IsInt64() {
		return convertToInt64(val.data)
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

var uint64Type = reflect.TypeOf(uint64(0))

func convertToUint64(v interface{}) uint64 {
	return reflect.ValueOf(v).
		Convert(uint64Type).
		Interface().(uint64)
}

func inferUint64Type(v uint64) interface{} {
	if canConvertNumeric(uint64Type, int64Type, v) {
		return convertToInt64(v)
	}
	return v
}

// AsUint64 returns a uint64 if the type is convertable to uint64 and panics otherwise.
func (val *Value) AsUint64() uint64 {
	return convertToUint64(val.data)
}

// IsUint64 returns if the value is representable as a uint64.
func (val *Value) IsUint64() bool {
	return canConvertNumeric(reflect.TypeOf(val.data),
		uint64Type, val.data)
}

// ToUint64 returns a uint64 if the type is convertable to uint64 and returns the user supplied default or 0 otherwise.
func (val *Value) ToUint64(defaultVal ...uint64) uint64 {
	if val.IsUint64() {
		return convertToUint64(val.data)
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

var float64Type = reflect.TypeOf(float64(0))

func convertToFloat(v interface{}) float64 {
	return reflect.ValueOf(v).
		Convert(float64Type).
		Interface().(float64)
}

// AsFloat returns a float64 if the type is convertable to float64 and panics otherwise.
func (val *Value) AsFloat() float64 {
	return convertToFloat(val.data)
}

// IsFloat returns if the value is a float.
func (val *Value) IsFloat() bool {
	_, isFloat := val.data.(float64)
	return isFloat
}

// ToFloat returns a float64 if the type is convertable to float64 and returns the user supplied default or 0 otherwise.
func (val *Value) ToFloat(defaultVal ...float64) float64 {
	ty := reflect.TypeOf(val.data)
	if ty != nil && ty.ConvertibleTo(float64Type) {
		switch val.data.(type) {
		case int64, uint64, float64:
			return convertToFloat(val.data)
		}
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return 0
}

// AsBoolean returns a bool if the value is a bool and panics otherwise.
func (val *Value) AsBoolean() bool {
	return val.data.(bool)
}

// IsBoolean returns if the value is a bool.
func (val *Value) IsBoolean() bool {
	_, isBoolean := val.data.(bool)
	return isBoolean
}

// ToBoolean returns a bool if the value is a bool and returns the user supplied default or false otherwise.
func (val *Value) ToBoolean(defaultVal ...bool) bool {
	b, isBool := val.data.(bool)
	if isBool {
		return b
	}
	if len(defaultVal) != 0 {
		return defaultVal[0]
	}
	return false
}

// ToInterface returns the held data directly as a native interface.
// Caution should be used as the integer types may not be the same as
// the type that was passed into the value due to the way they are
// stored internally. For instance all integer values that fit are
// stored as int64.
func (val *Value) ToInterface() interface{} {
	return val.data
}

// ToNative converts a value to a go native type. Collections convert
// recursively to map[string]interface{} and []interface{}. It is not
// recommended that this is used as the integer types may not be what
// you expect, we store integers in a specific way to ensure the
// unmarshaller works consistently and it may be different than the
// type that was inserted.
func (val *Value) ToNative() interface{} {
	switch val := val.data.(type) {
	case interface {
		toNative() interface{}
	}:
		return val.toNative()
	default:
		return val
	}
}

// IsNull returns whether the value is the null value. A nil *Value is
// treated as null so projection transforms may return nil safely.
func (val *Value) IsNull() bool {
	return val == nil || val.data == nil
}

// Merge will combine the old value with the new value and return the
// result. Objects and arrays merge recursively and accretively, any
// other combination resolves to the new value.
func (val *Value) Merge(new *Value) *Value {
	switch val := val.data.(type) {
	case interface {
		merge(*Value) *Value
	}:
		return val.merge(new)
	default:
		return new
	}
}

// Equal provides an implementation of Equality for Value types. A nil
// *Value is treated as the null value, matching IsNull, so values
// returned from projection transforms compare safely.
func (val *Value) Equal(other interface{}) bool {
	ov, isValue := other.(*Value)
	if !isValue {
		return other == nil && val.IsNull()
	}
	if val.IsNull() || ov.IsNull() {
		return val.IsNull() && ov.IsNull()
	}
	return equal(val.data, ov.data)
}

// Compare provides an implementation of Comparison for Value types.
func (val *Value) Compare(other interface{}) int {
	return dyn.Compare(val.data, other.(*Value).data)
}

// String returns a go string representation of the Value.
func (val *Value) String() string {
	return fmt.Sprintf("%v", val.data)
}

func (val *Value) marshalJSON(buf *bytes.Buffer) error {
	switch v := val.data.(type) {
	case interface {
		marshalJSON(*bytes.Buffer) error
	}:
		return v.marshalJSON(buf)
	case string:
		buf.WriteString(strconv.Quote(v))
	default:
		buf.WriteString(val.Text())
	}
	return nil
}

// MarshalJSON returns the value encoded as JSON.
func (val *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	err := val.marshalJSON(&buf)
	return buf.Bytes(), err
}

// UnmarshalJSON extracts a value from a JSON encoded message.
func (val *Value) UnmarshalJSON(msg []byte) error {
	strs := stringInternerNew()
	vals := valueInternerNew()
	return val.unmarshalJSON(msg, strs, vals)
}

func (val *Value) unmarshalJSON(
	msg []byte,
	strs *stringInterner,
	vals *valueInterner,
) error {
	msg = bytes.TrimLeft(msg, " \t\r\n")
	if len(msg) == 0 {
		return nil
	}
	switch c := msg[0]; c {
	case '{':
		obj := objectNew()
		err := obj.unmarshalJSON(msg, strs, vals)
		if err != nil {
			return err
		}
		val.data = obj
	case '[':
		arr := arrayNew()
		err := arr.unmarshalJSON(msg, strs, vals)
		if err != nil {
			return err
		}
		val.data = arr
	case 'n':
		val.data = nil
	case 't', 'f':
		val.data = c == 't'
	case '"':
		item, err := strconv.Unquote(string(msg))
		if err != nil {
			return err
		}
		val.data = strs.Intern(item)
	default:
		// Numbers decode into the narrowest 64bit home that
		// holds them: int64, then uint64 for values past the
		// signed range, then float64 for fractions and
		// exponents. Callers may use the As* assertions to
		// access as the actual data type.
		if i, err := strconv.ParseInt(string(msg), 10, 64); err == nil {
			val.data = i
			return nil
		}
		if u, err := strconv.ParseUint(string(msg), 10, 64); err == nil {
			val.data = u
			return nil
		}
		f, err := strconv.ParseFloat(string(msg), 64)
		if err != nil {
			return err
		}
		val.data = f
	}
	return nil
}

func equal(v1, v2 interface{}) bool {
	return dyn.Equal(v1, v2)
}
