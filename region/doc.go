// Package region provides exclusive, splittable views over a contiguous run of
// elements for in-place divide-and-conquer algorithms.
//
// A Slice owns exclusive access to its backing storage. Positions inside it
// are addressed with Index tokens, which only the Slice (or an Iter obtained
// from it) can mint. Splitting a Slice hands its storage to new sub-regions
// and suspends the parent until every sub-region is released; an Index found
// inside a sub-region is carried back up with ParentIndex.
//
// # Example Usage
//
//	data := []int{5, 8, 7, 7, 4}
//	s, ok := region.New(data)
//	if !ok {
//	    return // empty input
//	}
//	head, tail := s.SplitInclusiveLeft(s.Middle())
//	region.Apply(head, head.First(), head.Last(), func(a, b *int) bool {
//	    *a, *b = *b, *a
//	    return true
//	})
//	tail.Release()
//	head.Release()
//
// # Provenance Checking
//
// By default every Index carries the tag of the region that minted it, and
// each use is checked: an Index from one region used against another, or a
// region touched while its sub-regions are alive, panics with a
// *ProvenanceError or *BorrowError.
//
// Building with the noprovenance tag removes the tags and the borrow guard
// entirely. Index is then a bare offset and element access skips bounds
// checks:
//
//	go build -tags=noprovenance ./...
//
// Misuse in that configuration is undefined behavior, so run the test suite
// without the tag.
package region
