// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"bytes"
	"strconv"
	"strings"

	"jsouthworth.net/go/immutable/vector"
)

// PathNew creates a new empty path. An empty path matches any value
// to itself.
func PathNew() *Path {
	return &Path{
		steps: vector.Empty(),
	}
}

// Path is an immutable sequence of navigation steps. Each builder
// method returns a new structurally shared path with the step
// appended, so paths may be extended in several directions without
// affecting one another and shared freely. A path is applied with
// MatchAgainst, feeding each step's result into the next.
type Path struct {
	steps *vector.Vector
}

func (p *Path) push(step pathStep) *Path {
	return &Path{
		steps: p.steps.Append(step),
	}
}

// Identify appends an object member lookup step.
func (p *Path) Identify(key string) *Path {
	return p.push(identifyStep{key: key})
}

// Index appends an array element access step.
func (p *Path) Index(index int) *Path {
	return p.push(indexStep{index: index})
}

// Slice appends an array sub-range extraction step.
func (p *Path) Slice(slice Slice) *Path {
	return p.push(sliceStep{slice: slice})
}

// Flatten appends a single level array flattening step.
func (p *Path) Flatten() *Path {
	return p.push(flattenStep{})
}

// ListProject appends a projection of sub over the elements of an
// array.
func (p *Path) ListProject(sub *Path) *Path {
	return p.push(listProjectStep{sub: sub})
}

// SliceProject appends a projection of sub over the sub-range of an
// array the slice descriptor selects.
func (p *Path) SliceProject(slice Slice, sub *Path) *Path {
	return p.push(sliceProjectStep{slice: slice, sub: sub})
}

// ObjectProject appends a projection of sub over the member values of
// an object.
func (p *Path) ObjectProject(sub *Path) *Path {
	return p.push(objectProjectStep{sub: sub})
}

// MatchAgainst applies the path's steps to the value in order and
// returns the result. Like the primitives it composes, MatchAgainst
// is total; a path that doesn't apply to the value resolves to Null.
func (p *Path) MatchAgainst(value *Value) *Value {
	p.steps.Range(func(_ int, step interface{}) bool {
		value = step.(pathStep).match(value)
		return true
	})
	return value
}

// Equal determines if two paths hold the same navigation steps.
// It implements a common equality interface so other must be
// interface{}. The comparison is structural, not on the rendered
// form, so keys that happen to contain selector characters never
// collide with actual selector steps.
func (p *Path) Equal(other interface{}) bool {
	op, isPath := other.(*Path)
	return isPath &&
		equal(op.steps, p.steps)
}

// String formats the path in a dotted expression form, for example
// "people[:2].first". The form is descriptive output only, there is
// no parser for it here.
func (p *Path) String() string {
	return strings.TrimPrefix(p.render(), ".")
}

func (p *Path) render() string {
	var buf bytes.Buffer
	p.steps.Range(func(_ int, step interface{}) bool {
		buf.WriteString(step.(pathStep).render())
		return true
	})
	return buf.String()
}

type pathStep interface {
	match(*Value) *Value
	render() string
}

type identifyStep struct {
	key string
}

func (s identifyStep) match(value *Value) *Value {
	return value.Identify(s.key)
}

func (s identifyStep) render() string {
	return "." + s.key
}

func (s identifyStep) Equal(other interface{}) bool {
	os, isStep := other.(identifyStep)
	return isStep && os.key == s.key
}

type indexStep struct {
	index int
}

func (s indexStep) match(value *Value) *Value {
	return value.Index(s.index)
}

func (s indexStep) render() string {
	return "[" + strconv.Itoa(s.index) + "]"
}

func (s indexStep) Equal(other interface{}) bool {
	os, isStep := other.(indexStep)
	return isStep && os.index == s.index
}

type sliceStep struct {
	slice Slice
}

func (s sliceStep) match(value *Value) *Value {
	return value.Slice(s.slice)
}

func (s sliceStep) render() string {
	return "[" + s.slice.String() + "]"
}

func (s sliceStep) Equal(other interface{}) bool {
	os, isStep := other.(sliceStep)
	return isStep && os.slice.Equal(s.slice)
}

type flattenStep struct{}

func (s flattenStep) match(value *Value) *Value {
	return value.Flatten()
}

func (s flattenStep) render() string {
	return "[]"
}

func (s flattenStep) Equal(other interface{}) bool {
	_, isStep := other.(flattenStep)
	return isStep
}

type listProjectStep struct {
	sub *Path
}

func (s listProjectStep) match(value *Value) *Value {
	return value.ListProject(s.sub.MatchAgainst)
}

func (s listProjectStep) render() string {
	return "[*]" + s.sub.render()
}

func (s listProjectStep) Equal(other interface{}) bool {
	os, isStep := other.(listProjectStep)
	return isStep && os.sub.Equal(s.sub)
}

type sliceProjectStep struct {
	slice Slice
	sub   *Path
}

func (s sliceProjectStep) match(value *Value) *Value {
	return value.SliceProject(s.slice, s.sub.MatchAgainst)
}

func (s sliceProjectStep) render() string {
	return "[" + s.slice.String() + "]" + s.sub.render()
}

func (s sliceProjectStep) Equal(other interface{}) bool {
	os, isStep := other.(sliceProjectStep)
	return isStep && os.slice.Equal(s.slice) && os.sub.Equal(s.sub)
}

type objectProjectStep struct {
	sub *Path
}

func (s objectProjectStep) match(value *Value) *Value {
	return value.ObjectProject(s.sub.MatchAgainst)
}

func (s objectProjectStep) render() string {
	return ".*" + s.sub.render()
}

func (s objectProjectStep) Equal(other interface{}) bool {
	os, isStep := other.(objectProjectStep)
	return isStep && os.sub.Equal(s.sub)
}
