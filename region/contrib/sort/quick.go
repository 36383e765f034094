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

// QuickSortThreshold is the length below which QuickSort hands a region to
// InsertionSort.
const QuickSortThreshold = 16

// QuickSort sorts s in ascending order. It is not stable.
//
// The pivot is the last element of each region. Worst-case time, on sorted
// or reverse sorted input, is O(n^2).
func QuickSort[T cmp.Ordered](s *region.Slice[T]) {
	ordered[T]().quickSort(s)
}

// QuickSortFunc sorts s in ascending order as determined by compare.
func QuickSortFunc[T any](s *region.Slice[T], compare func(a, b T) int) {
	byCompare(compare).quickSort(s)
}

func (less lessFunc[T]) quickSort(s *region.Slice[T]) {
	if s.Len() < QuickSortThreshold {
		less.insertionSort(s)
		return
	}

	sep := less.partitionFromLeft(s)
	left, _, right := s.SplitThree(sep)

	if left != nil {
		less.quickSort(left)
		left.Release()
	}
	if right != nil {
		less.quickSort(right)
		right.Release()
	}
}

// partitionFromLeft partitions s around its last element and returns the
// pivot's final position.
//
// It scans forward for the first element greater than the pivot and swaps
// the two. The pivot now sits at that position with everything before it
// in place, so the rest of the work is the region from there to the end,
// with the pivot at its front: partitionFromRight's job.
func (less lessFunc[T]) partitionFromLeft(s *region.Slice[T]) region.Index {
	pivot := s.Last()
	for idx := range s.All() {
		if inverted, _ := region.Apply(s, idx, pivot, less.swapInverted); inverted {
			head, rest := s.SplitExclusiveRight(idx)
			head.Release()

			at := rest.ParentIndex(less.partitionFromRight(rest))
			rest.Release()
			return at
		}
	}
	return pivot
}

// partitionFromRight mirrors partitionFromLeft: the pivot is the first
// element and the scan runs backward for the first element less than it.
func (less lessFunc[T]) partitionFromRight(s *region.Slice[T]) region.Index {
	pivot := s.First()
	for idx := range s.Backward() {
		if inverted, _ := region.Apply(s, pivot, idx, less.swapInverted); inverted {
			rest, tail := s.SplitInclusiveLeft(idx)
			tail.Release()

			at := rest.ParentIndex(less.partitionFromLeft(rest))
			rest.Release()
			return at
		}
	}
	return pivot
}

// swapInverted swaps l and r when r < l and reports whether it did.
func (less lessFunc[T]) swapInverted(l, r *T) bool {
	if less(*r, *l) {
		*l, *r = *r, *l
		return true
	}
	return false
}
