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

//go:build !noprovenance

// These tests exercise the dynamic checks, which the noprovenance tag
// compiles out.

package region

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// requirePanicsIs runs fn and requires it to panic with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "expected a panic matching %v", target)
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %#v is not an error", recovered)
	require.ErrorIs(t, err, target)
}

func TestForeignIndex(t *testing.T) {
	s1 := mustNew(t, []uint32{1, 2, 3})
	s2 := mustNew(t, []uint32{4, 5, 6})

	requirePanicsIs(t, ErrProvenance, func() { s1.At(s2.First()) })
	requirePanicsIs(t, ErrProvenance, func() { *s2.Ptr(s1.Last()) = 0 })
	requirePanicsIs(t, ErrProvenance, func() { s1.Set(s2.Middle(), 9) })
	requirePanicsIs(t, ErrProvenance, func() { s1.SplitThree(s2.Middle()) })
	requirePanicsIs(t, ErrProvenance, func() { s1.ParentIndex(s2.First()) })
}

func TestForeignIndexInApply(t *testing.T) {
	s1 := mustNew(t, []int{1, 2, 3})
	s2 := mustNew(t, []int{4, 5, 6})

	noop := func(a, b *int) bool { return true }
	requirePanicsIs(t, ErrProvenance, func() { Apply(s1, s1.First(), s2.Last(), noop) })
	requirePanicsIs(t, ErrProvenance, func() { Apply(s1, s2.First(), s1.Last(), noop) })

	// Same offset, different regions: still a violation, not "no result".
	requirePanicsIs(t, ErrProvenance, func() { Apply(s1, s1.First(), s2.First(), noop) })
}

func TestForeignIndexComparison(t *testing.T) {
	s1 := mustNew(t, seq(3))
	s2 := mustNew(t, seq(3))

	requirePanicsIs(t, ErrProvenance, func() { s1.First().Equal(s2.First()) })
	requirePanicsIs(t, ErrProvenance, func() { s1.First().Less(s2.Last()) })
	requirePanicsIs(t, ErrProvenance, func() { s1.First().Compare(s2.Last()) })
}

func TestZeroIndexRejected(t *testing.T) {
	s := mustNew(t, seq(3))
	requirePanicsIs(t, ErrProvenance, func() { s.At(Index{}) })
}

// TestSiblingIndexRejected tests that siblings never accept each other's positions
func TestSiblingIndexRejected(t *testing.T) {
	s := mustNew(t, seq(6))
	head, tail := s.SplitInclusiveLeft(s.Middle())

	requirePanicsIs(t, ErrProvenance, func() { head.At(tail.First()) })
	requirePanicsIs(t, ErrProvenance, func() { tail.At(head.First()) })

	head.Release()
	tail.Release()
}

// TestUntranslatedChildIndex tests that a child position must be translated
// before the parent accepts it
func TestUntranslatedChildIndex(t *testing.T) {
	s := mustNew(t, seq(6))
	head, tail := s.SplitExclusiveRight(s.Middle())
	i := tail.Last()
	up := tail.ParentIndex(i)

	head.Release()
	tail.Release()

	requirePanicsIs(t, ErrProvenance, func() { s.At(i) })
	assert.Equal(t, 5, s.At(up))
}

func TestSuspendedParent(t *testing.T) {
	s := mustNew(t, seq(4))
	head, tail := s.SplitInclusiveLeft(s.First())

	requirePanicsIs(t, ErrBorrow, func() { s.At(s.First()) })
	requirePanicsIs(t, ErrBorrow, func() { s.AsSlice() })
	requirePanicsIs(t, ErrBorrow, func() { s.Iter() })
	requirePanicsIs(t, ErrBorrow, func() { s.SplitThree(s.Last()) })
	requirePanicsIs(t, ErrBorrow, func() { s.Swap(s.First(), s.Last()) })

	head.Release()
	// One live sub-region still suspends the parent.
	requirePanicsIs(t, ErrBorrow, func() { s.At(s.First()) })

	tail.Release()
	assert.NotPanics(t, func() { s.At(s.First()) })
}

func TestReleasedRegion(t *testing.T) {
	s := mustNew(t, seq(4))
	head, tail := s.SplitInclusiveLeft(s.First())
	head.Release()
	tail.Release()

	requirePanicsIs(t, ErrBorrow, func() { head.At(head.First()) })
	requirePanicsIs(t, ErrBorrow, head.Release)
}

func TestReleaseWithLiveChildren(t *testing.T) {
	s := mustNew(t, seq(8))
	_, tail := s.SplitExclusiveRight(s.First())
	left, _, right := tail.SplitThree(tail.Middle())

	requirePanicsIs(t, ErrBorrow, tail.Release)

	left.Release()
	right.Release()
	assert.NotPanics(t, tail.Release)
}

func TestProvenanceErrorMessage(t *testing.T) {
	s1 := mustNew(t, seq(2))
	s2 := mustNew(t, seq(2))

	var perr *ProvenanceError
	func() {
		defer func() {
			err, _ := recover().(error)
			require.True(t, errors.As(err, &perr))
		}()
		s1.At(s2.First())
	}()

	assert.Equal(t, "At", perr.Op)
	assert.NotEqual(t, perr.Want, perr.Got)
	assert.Contains(t, perr.Error(), "region: At:")
}

func TestIndexString(t *testing.T) {
	s := mustNew(t, seq(4))
	assert.Regexp(t, `^Index\(3@[0-9]+\)$`, s.Last().String())
}

// TestTagsUnique tests that regions minted concurrently never share a tag
func TestTagsUnique(t *testing.T) {
	const (
		workers = 8
		perG    = 512
	)

	got := make([][]tag, workers)
	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			data := seq(2)
			for range perG {
				s, _ := New(data)
				head, tail := s.SplitInclusiveLeft(s.First())
				got[w] = append(got[w], s.tag, head.tag, tail.tag)
				head.Release()
				tail.Release()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[tag]bool, workers*perG*3)
	for _, ts := range got {
		for _, tg := range ts {
			require.False(t, seen[tg], "tag %d issued twice", tg)
			require.NotZero(t, tg)
			seen[tg] = true
		}
	}
}
