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

// InsertionSort sorts s in ascending order. It is stable.
func InsertionSort[T cmp.Ordered](s *region.Slice[T]) {
	ordered[T]().insertionSort(s)
}

// InsertionSortFunc sorts s in ascending order as determined by compare.
// It is stable.
func InsertionSortFunc[T any](s *region.Slice[T], compare func(a, b T) int) {
	byCompare(compare).insertionSort(s)
}

func (less lessFunc[T]) insertionSort(s *region.Slice[T]) {
	for idx := range s.All() {
		head, tail := s.SplitInclusiveLeft(idx)
		tail.Release()
		less.sinkLast(head)
		head.Release()
	}
}

// sinkLast moves the last element of s left until it is not less than its
// left neighbour. Everything before it must already be sorted.
func (less lessFunc[T]) sinkLast(s *region.Slice[T]) {
	it := s.Iter()
	right, _ := it.NextBack()
	for left, ok := it.NextBack(); ok; left, ok = it.NextBack() {
		done, _ := region.Apply(s, right, left, func(r, l *T) bool {
			if less(*r, *l) {
				*r, *l = *l, *r
				return false
			}
			return true
		})
		if done {
			return
		}
		right = left
	}
}
