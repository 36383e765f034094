// Copyright 2026 go-region Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package region

import (
	"cmp"
	"iter"
	"strconv"
)

// Index is a position token for one element of a specific region.
//
// Only a Slice, an Iter obtained from it, or Slice.ParentIndex can produce a
// usable Index. Comparing or applying an Index against a region of a
// different generation panics in checked builds.
type Index struct {
	// tag stays first: a zero-size trailing field is padded.
	tag tag
	off int
}

// Offset returns the position of the element within its region.
func (i Index) Offset() int {
	return i.off
}

// Equal reports whether i and j address the same element.
func (i Index) Equal(j Index) bool {
	i.tag.check("Index.Equal", j.tag)
	return i.off == j.off
}

// Less reports whether i comes before j.
func (i Index) Less(j Index) bool {
	i.tag.check("Index.Less", j.tag)
	return i.off < j.off
}

// Compare returns -1, 0 or +1 depending on whether i is before, at or after j.
func (i Index) Compare(j Index) int {
	i.tag.check("Index.Compare", j.tag)
	return cmp.Compare(i.off, j.off)
}

func (i Index) String() string {
	if t := i.tag.String(); t != "" {
		return "Index(" + strconv.Itoa(i.off) + "@" + t + ")"
	}
	return "Index(" + strconv.Itoa(i.off) + ")"
}

// Iter enumerates the positions of one region from either end.
//
// Next walks forward from the first position and NextBack walks backward
// from the last; the two meet in the middle and never yield a position
// twice. An Iter does not touch the region after it is created, so it stays
// valid while the region is split.
type Iter struct {
	tag   tag
	front int
	back  int
}

// Next returns the next position from the front.
func (it *Iter) Next() (Index, bool) {
	if it.front == it.back {
		return Index{}, false
	}
	i := Index{off: it.front, tag: it.tag}
	it.front++
	return i, true
}

// NextBack returns the next position from the back.
func (it *Iter) NextBack() (Index, bool) {
	if it.front == it.back {
		return Index{}, false
	}
	it.back--
	return Index{off: it.back, tag: it.tag}, true
}

// Len returns the number of positions not yet yielded.
func (it *Iter) Len() int {
	return it.back - it.front
}

// All returns every position of s in increasing order.
func (s *Slice[T]) All() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		it := s.Iter()
		for i, ok := it.Next(); ok; i, ok = it.Next() {
			if !yield(i) {
				return
			}
		}
	}
}

// Backward returns every position of s in decreasing order.
func (s *Slice[T]) Backward() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		it := s.Iter()
		for i, ok := it.NextBack(); ok; i, ok = it.NextBack() {
			if !yield(i) {
				return
			}
		}
	}
}
