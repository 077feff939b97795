// Copyright (c) 2021, AT&T Intellectual Property.
//
// SPDX-License-Identifier: MPL-2.0

// Package data implements the value navigation primitives of a JSON
// query language over a convenient object model for arbitrary JSON
// data. The Objects and Arrays in this library are immutable. This
// means that updating the structure will yield a new copy with the
// changes made, this is made efficient by sharing much of the
// structure of the new object with the old one. The library is based
// on the central Value type that holds arbitrary JSON data, this may
// take on Object, Array, int64, uint64, float64, string, bool, and
// nil. This may be thought of as a restricted form of the go
// interface{} type.
//
// On top of the model sit the navigation primitives: Identify, Index,
// Slice, ListProject, SliceProject, ObjectProject, and Flatten. Each
// is a pure transformation from a value to a new value that resolves
// to the null value rather than an error when navigation has no
// match, so primitives compose into pipelines without error
// handling between the steps. The Slice descriptor and its literal
// parser define the sub-range selection semantics, and the Path type
// provides composed navigation as a first-class value.
package data
