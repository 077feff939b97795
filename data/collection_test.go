// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package data

import "testing"

func assert(expr bool, ifFalse func()) {
	if !expr {
		ifFalse()
	}
}

func testEqualArrays(t *testing.T, c1, c2 *Array) {
	c1.Range(func(idx int, elem *Value) {
		if !equal(c2.At(idx), elem) {
			t.Fatal("expected element not found in c2", elem, c1, c2)
		}
	})
	c2.Range(func(idx int, elem *Value) {
		if !equal(c1.At(idx), elem) {
			t.Fatal("expected element not found in c1", elem, c1, c2)
		}
	})
}

func testEqualObjects(t *testing.T, c1, c2 *Object) {
	c1.Range(func(key string, value *Value) {
		if !c2.Contains(key) {
			t.Fatal("expected element not found in c2", key)
		}
		if !equal(value, c2.At(key)) {
			t.Fatal("expected element not found in c2", key, value)
		}
	})
	c2.Range(func(key string, value *Value) {
		if !c1.Contains(key) {
			t.Fatal("expected element not found in c1", key)
		}
		if !equal(value, c1.At(key)) {
			t.Fatal("expected element not found in c1", key, value)
		}
	})
}
