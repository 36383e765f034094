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

package sort

import (
	"cmp"

	"github.com/ajroetker/go-region/region"
)

// lessFunc is the strict ordering every algorithm in this package sorts by.
type lessFunc[T any] func(a, b T) bool

func ordered[T cmp.Ordered]() lessFunc[T] {
	return cmp.Less[T]
}

func byCompare[T any](compare func(a, b T) int) lessFunc[T] {
	return func(a, b T) bool { return compare(a, b) < 0 }
}

// Sort sorts data in ascending order with QuickSort. Empty input is left
// alone.
func Sort[T cmp.Ordered](data []T) {
	if s, ok := region.New(data); ok {
		ordered[T]().quickSort(s)
	}
}

// SortFunc sorts data in ascending order as determined by compare, which
// returns a negative number when a < b, zero when a == b and a positive
// number when a > b.
func SortFunc[T any](data []T, compare func(a, b T) int) {
	if s, ok := region.New(data); ok {
		byCompare(compare).quickSort(s)
	}
}

// SortStable sorts data in ascending order with InsertionSort, keeping equal
// elements in their original order.
func SortStable[T cmp.Ordered](data []T) {
	if s, ok := region.New(data); ok {
		ordered[T]().insertionSort(s)
	}
}

// SortStableFunc is SortStable ordered by compare.
func SortStableFunc[T any](data []T, compare func(a, b T) int) {
	if s, ok := region.New(data); ok {
		byCompare(compare).insertionSort(s)
	}
}

// IsSorted reports whether s is in ascending order.
func IsSorted[T cmp.Ordered](s *region.Slice[T]) bool {
	return ordered[T]().isSorted(s)
}

// IsSortedFunc reports whether s is in ascending order as determined by
// compare.
func IsSortedFunc[T any](s *region.Slice[T], compare func(a, b T) int) bool {
	return byCompare(compare).isSorted(s)
}

func (less lessFunc[T]) isSorted(s *region.Slice[T]) bool {
	it := s.Iter()
	prev, _ := it.Next()
	for i, ok := it.Next(); ok; i, ok = it.Next() {
		if less(s.At(i), s.At(prev)) {
			return false
		}
		prev = i
	}
	return true
}
