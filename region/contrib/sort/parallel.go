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
	"sync"

	"github.com/ajroetker/go-region/region"
	"github.com/ajroetker/go-region/region/contrib/workerpool"
)

// parallelThreshold is the smallest partition worth handing to another
// worker.
const parallelThreshold = 4096

// ParallelQuickSort sorts s like QuickSort, handing left partitions of at
// least parallelThreshold elements to idle workers of pool. Partitions run
// inline when no worker is idle, so a busy or nil pool degrades to
// QuickSort.
func ParallelQuickSort[T cmp.Ordered](pool *workerpool.Pool, s *region.Slice[T]) {
	ordered[T]().parallelQuickSort(pool, s)
}

// ParallelQuickSortFunc is ParallelQuickSort ordered by compare.
func ParallelQuickSortFunc[T any](pool *workerpool.Pool, s *region.Slice[T], compare func(a, b T) int) {
	byCompare(compare).parallelQuickSort(pool, s)
}

func (less lessFunc[T]) parallelQuickSort(pool *workerpool.Pool, s *region.Slice[T]) {
	if s.Len() < parallelThreshold {
		less.quickSort(s)
		return
	}

	sep := less.partitionFromLeft(s)
	left, _, right := s.SplitThree(sep)

	var wg sync.WaitGroup
	if left != nil {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			less.parallelQuickSort(pool, left)
			left.Release()
		}
		if left.Len() < parallelThreshold || !pool.TryGo(task) {
			task()
		}
	}
	if right != nil {
		less.parallelQuickSort(pool, right)
		right.Release()
	}
	wg.Wait()
}

// SortEach sorts every slice in batches with QuickSort, spreading the
// batches over pool.
func SortEach[T cmp.Ordered](pool *workerpool.Pool, batches [][]T) {
	pool.ParallelForAtomic(len(batches), func(i int) {
		Sort(batches[i])
	})
}
