// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package data

// The navigation primitives below are the building blocks of a JSON
// query evaluator. Each one is a pure function from a value to a new
// value and is total: navigation that has no match resolves to the
// null value instead of an error, so failures flow through a pipeline
// of composed primitives the same way matches do. A caller cannot
// distinguish a key holding null from an absent key or a mistyped
// value; that ambiguity is part of the contract.

// Transform is a value to value function applied by the projection
// primitives, typically another composed chain of primitives.
type Transform func(*Value) *Value

// Identify looks key up in an object value and returns the member's
// value. It returns Null when the key is absent or the value is not
// an object.
func (val *Value) Identify(key string) *Value {
	out, _ := val.Perform(func(obj *Object) *Value {
		if v, ok := obj.Find(key); ok {
			return v
		}
		return Null()
	}).(*Value)
	if out == nil {
		return Null()
	}
	return out
}

// Index returns the element of an array value at index. A negative
// index addresses from the rear of the array, so -1 is the last
// element. Out of bounds indices, including rear addressed ones that
// underflow the array, resolve to Null, as does any value that is not
// an array.
func (val *Value) Index(index int) *Value {
	out, _ := val.Perform(func(arr *Array) *Value {
		if index < 0 {
			index += arr.Length()
		}
		if v, ok := arr.Find(index); ok {
			return v
		}
		return Null()
	}).(*Value)
	if out == nil {
		return Null()
	}
	return out
}

// Slice extracts the sub-range of an array value the descriptor
// selects, returning a new array in traversal order. Unlike Index,
// out of range bounds clamp to the sequence boundaries rather than
// resolving to Null; slicing with bounds past either end is well
// defined where single element access is not. Non-array values
// resolve to Null.
func (val *Value) Slice(slice Slice) *Value {
	out, _ := val.Perform(func(arr *Array) *Value {
		return ValueNew(arr.Slice(slice))
	}).(*Value)
	if out == nil {
		return Null()
	}
	return out
}

// ListProject applies fn to every element of an array value in source
// order and returns a new array of the results that are not Null,
// preserving relative order. Non-array values resolve to Null.
func (val *Value) ListProject(fn Transform) *Value {
	out, _ := val.Perform(func(arr *Array) *Value {
		return ValueNew(arr.projectItems(fn))
	}).(*Value)
	if out == nil {
		return Null()
	}
	return out
}

// SliceProject slices an array value with the descriptor and then
// list-projects fn over the selection. Non-array values resolve to
// Null without fn being invoked.
func (val *Value) SliceProject(slice Slice, fn Transform) *Value {
	out, _ := val.Perform(func(arr *Array) *Value {
		return ValueNew(arr.Slice(slice).projectItems(fn))
	}).(*Value)
	if out == nil {
		return Null()
	}
	return out
}

// ObjectProject applies fn to the value of every member of an object
// value and returns a new array of the results that are not Null.
// Keys are discarded and the element order follows the object's
// iteration order, which is not significant. Non-object values
// resolve to Null.
func (val *Value) ObjectProject(fn Transform) *Value {
	out, _ := val.Perform(func(obj *Object) *Value {
		return ValueNew(obj.projectMembers(fn))
	}).(*Value)
	if out == nil {
		return Null()
	}
	return out
}

// Flatten merges one level of nested array structure into a new
// array: every direct element that is itself an array contributes its
// elements in place and every other element is carried through
// unchanged. Only a single level is flattened; apply Flatten again to
// flatten deeper nesting. Non-array values resolve to Null.
func (val *Value) Flatten() *Value {
	out, _ := val.Perform(func(arr *Array) *Value {
		return ValueNew(arr.flattenOnce())
	}).(*Value)
	if out == nil {
		return Null()
	}
	return out
}
