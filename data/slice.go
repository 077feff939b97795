// Copyright (c) 2021, AT&T Intellectual Property.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package data

import (
	"errors"
	"strconv"
	"strings"

	"jsouthworth.net/go/try"
)

var (
	// ErrSliceFormat is the failure reported when a slice literal
	// does not match the [start]:[end][:[step]] grammar.
	ErrSliceFormat = errors.New("invalid slice format")
	// ErrSliceZeroStep is the failure reported when a step component
	// is present and parses to zero. An absent step is valid and
	// means the default stride; a literal zero never is.
	ErrSliceZeroStep = errors.New("slice step not allowed to be zero")
)

// SliceNew parses a slice literal string into a Slice descriptor.
// Slice literals match the following grammar:
//
//	slice  = [bound] ":" [bound] [":" [bound]]
//	bound  = ["-"] 1*DIGIT
//
// SliceNew panics with ErrSliceFormat when the literal does not match
// the grammar and with ErrSliceZeroStep when the step bound is zero.
// SliceParse wraps this with a conventional error return.
func SliceNew(literal string) Slice {
	return Slice{}.parse(literal)
}

// SliceParse parses a slice literal string into a Slice descriptor,
// reporting ErrSliceFormat or ErrSliceZeroStep instead of panicking.
func SliceParse(literal string) (Slice, error) {
	out, err := try.Apply(SliceNew, literal)
	if err != nil {
		return Slice{}, err
	}
	return out.(Slice), nil
}

// SliceRange creates a descriptor selecting [start, end) at the
// default stride.
func SliceRange(start, end int) Slice {
	return Slice{start: &start, end: &end}
}

// SliceFrom creates a descriptor selecting from start to the end of
// the sequence.
func SliceFrom(start int) Slice {
	return Slice{start: &start}
}

// SliceTo creates a descriptor selecting from the start of the
// sequence up to end.
func SliceTo(end int) Slice {
	return Slice{end: &end}
}

// Slice describes a sub-range extraction over an array: an optional
// start bound, an optional end bound, and an optional non-zero step.
// Negative bounds address from the rear of the sequence; a negative
// step reverses the traversal direction. The zero value of Slice
// selects the whole sequence, forward, at unit stride. Slices are
// pure parameter values, constructed once and consumed immutably by
// the slicing operations.
type Slice struct {
	start, end, step *int
}

// WithStep returns a copy of the descriptor with the step set. It
// panics with ErrSliceZeroStep when step is zero.
func (s Slice) WithStep(step int) Slice {
	if step == 0 {
		panic(ErrSliceZeroStep)
	}
	s.step = &step
	return s
}

// Start returns the start bound and whether one is present.
func (s Slice) Start() (int, bool) {
	if s.start == nil {
		return 0, false
	}
	return *s.start, true
}

// End returns the end bound and whether one is present.
func (s Slice) End() (int, bool) {
	if s.end == nil {
		return 0, false
	}
	return *s.end, true
}

// Step returns the step and whether one is present.
func (s Slice) Step() (int, bool) {
	if s.step == nil {
		return 0, false
	}
	return *s.step, true
}

// Equal provides an implementation of Equality for Slice descriptors.
// Absent bounds only equal absent bounds, never zero ones.
func (s Slice) Equal(other interface{}) bool {
	os, isSlice := other.(Slice)
	return isSlice &&
		boundEqual(s.start, os.start) &&
		boundEqual(s.end, os.end) &&
		boundEqual(s.step, os.step)
}

func boundEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// String formats the descriptor as a slice literal. Absent bounds
// render as empty components and an absent step is omitted, so the
// zero descriptor renders as ":".
func (s Slice) String() string {
	var b strings.Builder
	if s.start != nil {
		b.WriteString(strconv.Itoa(*s.start))
	}
	b.WriteByte(':')
	if s.end != nil {
		b.WriteString(strconv.Itoa(*s.end))
	}
	if s.step != nil {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(*s.step))
	}
	return b.String()
}

// parse implements a straight forward parser for the slice literal
// grammar. Using a regular expression for this would be overkill so
// just split on the separators and validate the bounds inline.
func (s Slice) parse(input string) Slice {
	parts := strings.Split(input, ":")
	if len(parts) < 2 || len(parts) > 3 {
		panic(ErrSliceFormat)
	}
	s.start = parseBound(parts[0])
	s.end = parseBound(parts[1])
	if len(parts) == 3 {
		s.step = parseBound(parts[2])
		if s.step != nil && *s.step == 0 {
			panic(ErrSliceZeroStep)
		}
	}
	return s
}

func parseBound(part string) *int {
	if part == "" {
		return nil
	}
	digits := part
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		panic(ErrSliceFormat)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			panic(ErrSliceFormat)
		}
	}
	i, err := strconv.Atoi(part)
	if err != nil {
		panic(ErrSliceFormat)
	}
	return &i
}

// bounds resolves the descriptor against a sequence length. The
// returned start and end are clamped to valid traversal boundaries so
// out of range bounds yield an empty or truncated selection rather
// than an out of bounds access. With a negative step the defaults
// reverse: an absent start resolves to the last element and an absent
// end to before the first.
func (s Slice) bounds(length int) (start, end, step int) {
	step = 1
	if s.step != nil {
		step = *s.step
	}
	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}
	if s.start == nil {
		start = lower
		if step < 0 {
			start = upper
		}
	} else {
		start = clampBound(*s.start, lower, upper, length)
	}
	if s.end == nil {
		end = upper
		if step < 0 {
			end = lower
		}
	} else {
		end = clampBound(*s.end, lower, upper, length)
	}
	return start, end, step
}

func clampBound(bound, lower, upper, length int) int {
	if bound < 0 {
		bound += length
		if bound < lower {
			return lower
		}
		return bound
	}
	if bound > upper {
		return upper
	}
	return bound
}
