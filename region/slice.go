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

// Slice is an exclusive mutable view over a non-empty run of elements.
//
// A Slice is always handled by pointer. Splitting it produces sub-regions
// over disjoint parts of the same storage and suspends it until all of them
// have been released.
type Slice[T any] struct {
	borrow borrow
	tag    tag

	data []T

	parent    parentLink
	hasParent bool
}

// parentLink locates a sub-region inside the region it was split from.
type parentLink struct {
	tag    tag
	offset int
}

// New returns a region over data. It returns false when data is empty.
//
// The region takes exclusive access to data; the caller must not touch data
// directly until it is done with the region.
func New[T any](data []T) (*Slice[T], bool) {
	if len(data) == 0 {
		return nil, false
	}
	return &Slice[T]{data: data[:len(data):len(data)], tag: newTag()}, true
}

// child carves the sub-region [off, off+n) out of s and lends it out.
func (s *Slice[T]) child(off, n int) *Slice[T] {
	c := &Slice[T]{
		data:      sub(s.data, off, n),
		tag:       newTag(),
		parent:    parentLink{offset: off, tag: s.tag},
		hasParent: true,
	}
	s.borrow.lend(&c.borrow)
	return c
}

// enter validates that s may be used right now with position i.
func (s *Slice[T]) enter(op string, i Index) {
	s.borrow.access(op)
	s.tag.check(op, i.tag)
}

func (s *Slice[T]) indexOf(off int) Index {
	return Index{off: off, tag: s.tag}
}

// Len returns the number of elements in s. It is always at least one.
func (s *Slice[T]) Len() int {
	return len(s.data)
}

// AsSlice returns the elements of s. The result is a view, not a copy.
func (s *Slice[T]) AsSlice() []T {
	s.borrow.access("AsSlice")
	return s.data
}

// AsMutSlice returns the elements of s for writing.
func (s *Slice[T]) AsMutSlice() []T {
	s.borrow.access("AsMutSlice")
	return s.data
}

// First returns the position of the first element.
func (s *Slice[T]) First() Index {
	return s.indexOf(0)
}

// Last returns the position of the last element.
func (s *Slice[T]) Last() Index {
	return s.indexOf(len(s.data) - 1)
}

// Middle returns the position len/2.
func (s *Slice[T]) Middle() Index {
	return s.indexOf(len(s.data) / 2)
}

// Iter returns an enumerator over every position of s.
func (s *Slice[T]) Iter() Iter {
	s.borrow.access("Iter")
	return Iter{front: 0, back: len(s.data), tag: s.tag}
}

// At returns the element at i.
func (s *Slice[T]) At(i Index) T {
	s.enter("At", i)
	return *elem(s.data, i.off)
}

// Ptr returns a pointer to the element at i.
func (s *Slice[T]) Ptr(i Index) *T {
	s.enter("Ptr", i)
	return elem(s.data, i.off)
}

// Set stores v at i.
func (s *Slice[T]) Set(i Index, v T) {
	s.enter("Set", i)
	*elem(s.data, i.off) = v
}

func (s *Slice[T]) FirstElem() *T {
	return s.Ptr(s.First())
}

func (s *Slice[T]) LastElem() *T {
	return s.Ptr(s.Last())
}

func (s *Slice[T]) MiddleElem() *T {
	return s.Ptr(s.Middle())
}

// Apply calls f with the two elements at left and right and returns its
// result. When left and right address the same element f is not called and
// ok is false.
//
// This is the only way to hold two elements of one region at once.
func Apply[T, U any](s *Slice[T], left, right Index, f func(left, right *T) U) (result U, ok bool) {
	s.enter("Apply", left)
	if left.Equal(right) {
		return result, false
	}
	return f(elem(s.data, left.off), elem(s.data, right.off)), true
}

// Swap exchanges the elements at a and b. It reports false, and does
// nothing, when a and b are the same position.
func (s *Slice[T]) Swap(a, b Index) bool {
	_, ok := Apply(s, a, b, swap[T])
	return ok
}

func swap[T any](a, b *T) struct{} {
	*a, *b = *b, *a
	return struct{}{}
}

// ParentIndex translates i, a position in s, into the coordinates of the
// region s was split from. It returns i unchanged for a region built by New.
//
// Translation goes up exactly one level; call it once per split to reach an
// older ancestor.
func (s *Slice[T]) ParentIndex(i Index) Index {
	s.tag.check("ParentIndex", i.tag)
	if !s.hasParent {
		return i
	}
	return Index{off: i.off + s.parent.offset, tag: s.parent.tag}
}

// SplitInclusiveLeft splits s after p. head covers [0, p] and tail covers
// (p, len), or is nil when p is the last position.
func (s *Slice[T]) SplitInclusiveLeft(p Index) (head, tail *Slice[T]) {
	s.enter("SplitInclusiveLeft", p)
	n := len(s.data)

	head = s.child(0, p.off+1)
	if p.off+1 < n {
		tail = s.child(p.off+1, n-p.off-1)
	}
	return head, tail
}

// SplitExclusiveRight splits s before p. head covers [0, p), or is nil when
// p is the first position, and tail covers [p, len).
func (s *Slice[T]) SplitExclusiveRight(p Index) (head, tail *Slice[T]) {
	s.enter("SplitExclusiveRight", p)
	n := len(s.data)

	if p.off > 0 {
		head = s.child(0, p.off)
	}
	tail = s.child(p.off, n-p.off)
	return head, tail
}

// SplitThree splits s around p. left covers [0, p) and right covers
// (p, len); either is nil when empty. mid points at the element at p.
//
// mid aliases the storage of s: it must not be used once s is back in use.
func (s *Slice[T]) SplitThree(p Index) (left *Slice[T], mid *T, right *Slice[T]) {
	s.enter("SplitThree", p)
	n := len(s.data)

	if p.off > 0 {
		left = s.child(0, p.off)
	}
	if p.off+1 < n {
		right = s.child(p.off+1, n-p.off-1)
	}
	return left, elem(s.data, p.off), right
}

// SplitFirst returns the first element and a sub-region over the rest, or
// nil when s has one element.
func (s *Slice[T]) SplitFirst() (*T, *Slice[T]) {
	_, first, rest := s.SplitThree(s.First())
	return first, rest
}

// SplitLast returns a sub-region over all but the last element, or nil when
// s has one element, and the last element.
func (s *Slice[T]) SplitLast() (*Slice[T], *T) {
	rest, last, _ := s.SplitThree(s.Last())
	return rest, last
}

// Release ends the lifetime of a sub-region and hands its storage back to
// the parent. The parent becomes usable again once all of its sub-regions
// are released. Release on a nil region does nothing.
//
// In checked builds releasing twice, or releasing a region whose own
// sub-regions are still alive, panics with a *BorrowError.
func (s *Slice[T]) Release() {
	if s == nil {
		return
	}
	s.borrow.release()
}
