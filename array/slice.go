// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"strconv"
)

// Bound is an optional slice bound. The zero value is an open bound,
// which extends to the start or end of the dimension.
type Bound struct {
	// Value is the bound index; negative values count back from the end.
	Value int

	// Set is whether the bound is set. If false, Value is ignored.
	Set bool
}

// At returns a [Bound] set to the given index.
func At(i int) Bound { return Bound{Value: i, Set: true} }

// Slice represents a slice of a dimension with the standard
// start:stop:step semantics: Start is inclusive, Stop is exclusive,
// negative bounds count back from the end, out-of-range bounds are
// clipped, and a negative Step walks backward. A zero Step means 1.
// The zero value selects the entire dimension.
type Slice struct {
	// Start is the starting index (inclusive).
	Start Bound

	// Stop is the ending index (exclusive).
	Stop Bound

	// Step is the increment between indexes; 0 = 1.
	Step int
}

// All returns a [Slice] selecting everything.
func All() Slice { return Slice{} }

// Span returns the [Slice] start:stop.
func Span(start, stop int) Slice { return Slice{Start: At(start), Stop: At(stop)} }

// From returns the [Slice] start: (to the end).
func From(start int) Slice { return Slice{Start: At(start)} }

// To returns the [Slice] :stop (from the beginning).
func To(stop int) Slice { return Slice{Stop: At(stop)} }

// By returns a copy of the slice with the given step.
func (s Slice) By(step int) Slice {
	s.Step = step
	return s
}

// StepActual is the actual step value, with 0 = 1.
func (s Slice) StepActual() int {
	if s.Step == 0 {
		return 1
	}
	return s.Step
}

// Range returns the actual start and stop indexes and the step
// for a dimension of the given size, with bounds resolved and clipped.
func (s Slice) Range(size int) (start, stop, step int) {
	step = s.StepActual()
	lower, upper := 0, size
	if step < 0 {
		lower, upper = -1, size-1
	}
	resolve := func(b Bound, def int) int {
		if !b.Set {
			return def
		}
		v := b.Value
		if v < 0 {
			v += size
			return max(v, lower)
		}
		return min(v, upper)
	}
	if step > 0 {
		start = resolve(s.Start, lower)
		stop = resolve(s.Stop, upper)
	} else {
		start = resolve(s.Start, upper)
		stop = resolve(s.Stop, lower)
	}
	return
}

// Len returns the number of elements selected in a dimension of the given size.
func (s Slice) Len(size int) int {
	start, stop, step := s.Range(size)
	if step > 0 {
		if stop <= start {
			return 0
		}
		return (stop - start + step - 1) / step
	}
	if stop >= start {
		return 0
	}
	return (start - stop - step - 1) / (-step)
}

// Indices returns the list of indexes selected in a dimension of the given size.
func (s Slice) Indices(size int) []int {
	start, _, step := s.Range(size)
	n := s.Len(size)
	ix := make([]int, n)
	for i := range n {
		ix[i] = start + i*step
	}
	return ix
}

// String returns the start:stop:step notation for the slice,
// omitting open bounds and a unit step.
func (s Slice) String() string {
	str := ""
	if s.Start.Set {
		str += strconv.Itoa(s.Start.Value)
	}
	str += ":"
	if s.Stop.Set {
		str += strconv.Itoa(s.Stop.Value)
	}
	if s.Step != 0 && s.Step != 1 {
		str += ":" + strconv.Itoa(s.Step)
	}
	return str
}
