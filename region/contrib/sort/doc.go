// Package sort provides in-place sorts written against region.Slice.
//
// The algorithms never index storage directly. They obtain positions from a
// region's enumerator, compare and swap through region.Apply, recurse into
// sub-regions produced by splits, and carry positions found in a sub-region
// back up with ParentIndex.
//
// # Algorithms
//
//   - InsertionSort: stable, O(n^2) worst case, O(n) on nearly sorted input
//   - QuickSort: in-place, not stable; regions shorter than
//     QuickSortThreshold are handed to InsertionSort
//   - ParallelQuickSort: QuickSort that hands disjoint partitions to idle
//     workers of a workerpool.Pool
//
// Each has a Func variant taking a three-way comparison for element types
// that are not cmp.Ordered.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-region/region/contrib/sort"
//
//	func ProcessData(data []uint32) {
//	    sort.Sort(data) // In-place ascending sort
//	}
package sort
