// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"strconv"
	"testing"
)

func testCollectionObject(cons func(sz int) *Object, t *testing.T) {
	t.Run("At/coll.Assoc(X,Y);coll.At(X)==Y",
		func(t *testing.T) {
			coll := cons(1)
			key := "0"
			val := 10
			coll = coll.Assoc(key, val)
			got := coll.At(key)
			assert(equal(got, ValueNew(val)), func() {
				t.Fatalf("expected %v, got %v\n", val, got)
			})
			coll = cons(4)
			key = "3"
			val = 10
			coll = coll.Assoc(key, val)
			got = coll.At(key)
			assert(equal(got, ValueNew(val)), func() {
				t.Fatalf("expected %v, got %v\n", val, got)
			})
		})
	t.Run("At/coll.At(absent)returns nil", func(t *testing.T) {
		coll := cons(1)
		assert(coll.At("no-such-key") == nil, func() {
			t.Fatal("should have returned nil")
		})
	})
	t.Run("Range", func(t *testing.T) {
		var expCount, count int64
		coll := cons(100)
		for i := 0; i < 100; i++ {
			expCount += int64(i)
		}
		coll.Range(func(elem *Value) { count += elem.AsInt64() })
		assert(count == expCount, func() {
			t.Fatalf("expected %v, got %v\n", expCount, count)
		})
	})
	t.Run("Length/sz:=coll.Length();coll.Assoc(X);coll.Length()==sz+1",
		func(t *testing.T) {
			coll := cons(0)
			sz := coll.Length()
			coll = coll.Assoc("1", 1)
			assert(coll.Length() == sz+1, func() {
				t.Fatalf("expected %v, got %v\n", sz+1,
					coll.Length())
			})
		})
	t.Run("KeysDo", func(t *testing.T) {
		sum := 0
		cons(3).Range(func(key string) {
			k, _ := strconv.Atoi(key)
			sum += k
		})
		assert(sum == 3, func() {
			t.Fatalf("expected %v, got %v\n", 3,
				sum)
		})
	})
	t.Run("ValuesDo", func(t *testing.T) {
		sum := int64(0)
		cons(3).Range(func(val *Value) {
			sum += val.AsInt64()
		})
		assert(sum == 3, func() {
			t.Fatalf("expected %v, got %v\n", 3,
				sum)
		})
	})
	t.Run("PairsDo", func(t *testing.T) {
		cons(3).Range(func(assoc Pair) {
			if assoc.Key() != strconv.Itoa(int(assoc.Value().AsInt64())) {
				t.Fatal("key and value should match")
			}
		})
	})
	t.Run("Delete", func(t *testing.T) {
		sz := cons(2).Delete("1").Length()
		assert(sz == 1, func() {
			t.Fatalf("expected %v, got %v\n", 1, sz)
		})
	})
	t.Run("Delete non-existent", func(t *testing.T) {
		sz := cons(2).Delete("4").Length()
		assert(sz == 2, func() {
			t.Fatalf("expected %v, got %v\n", 2, sz)
		})
	})
}

func TestCollectionSemanticsObject(t *testing.T) {
	testCollectionObject(func(sz int) *Object {
		coll := ObjectNew()
		for i := 0; i < sz; i++ {
			coll = coll.Assoc(strconv.Itoa(i), i)
		}
		return coll
	}, t)
}

func TestObjectWith(t *testing.T) {
	obj := ObjectWith(
		PairNew("a", "foo"),
		PairNew("b", "bar"),
	)
	assert(obj.Length() == 2, func() {
		t.Fatalf("expected %v, got %v\n", 2, obj.Length())
	})
	assert(equal(obj.At("a"), ValueNew("foo")), func() {
		t.Fatal("expected value not found")
	})
	assert(equal(obj.At("b"), ValueNew("bar")), func() {
		t.Fatal("expected value not found")
	})
	testEqualObjects(t, obj, ObjectFrom(map[string]interface{}{
		"a": "foo",
		"b": "bar",
	}))
}

func TestObjectFrom(t *testing.T) {
	obj := ObjectFrom(map[string]interface{}{
		"a": 1,
		"b": map[string]interface{}{"c": 2},
		"d": []interface{}{3, 4},
	})
	assert(equal(obj.At("a"), ValueNew(1)), func() {
		t.Fatal("expected value not found")
	})
	assert(obj.At("b").IsObject(), func() {
		t.Fatal("nested map should convert to an object")
	})
	assert(obj.At("d").IsArray(), func() {
		t.Fatal("nested slice should convert to an array")
	})
}

func TestObjectContainsFind(t *testing.T) {
	obj := ObjectWith(PairNew("a", 1))
	t.Run("present", func(t *testing.T) {
		v, ok := obj.Find("a")
		if !ok || v == nil {
			t.Fatal("didn't find a present key")
		}
	})
	t.Run("absent", func(t *testing.T) {
		v, ok := obj.Find("b")
		if ok || v != nil {
			t.Fatal("found an absent key")
		}
		if obj.Contains("b") {
			t.Fatal("contains reported an absent key")
		}
	})
}

func TestObjectString(t *testing.T) {
	obj := ObjectWith(PairNew("a", 1))
	if obj.String() != `{"a":1}` {
		t.Fatalf("object.String() didn't yield correct result: %s",
			obj)
	}
}

func TestObjectEqual(t *testing.T) {
	o1 := ObjectWith(PairNew("a", 1), PairNew("b", 2))
	o2 := ObjectWith(PairNew("b", 2), PairNew("a", 1))
	assert(o1.Equal(o2), func() {
		t.Fatal("objects with the same members should be equal")
	})
	assert(!o1.Equal(o1.Assoc("c", 3)), func() {
		t.Fatal("objects with different members should not be equal")
	})
}

func TestObjectImmutability(t *testing.T) {
	orig := ObjectWith(PairNew("a", 1))
	grown := orig.Assoc("b", 2)
	assert(orig.Length() == 1 && grown.Length() == 2, func() {
		t.Fatal("assoc should not alter the original")
	})
	assert(!orig.Contains("b"), func() {
		t.Fatal("assoc leaked into the original")
	})
}
