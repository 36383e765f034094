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

package region

import (
	"strconv"
	"sync/atomic"
)

// Checked reports whether provenance tags and the borrow guard are compiled
// in. It is false when built with the noprovenance tag.
const Checked = true

// tag identifies the region generation that minted an Index.
type tag uint64

func newTag() tag {
	return tag(tags.next())
}

// check panics unless got was minted by the same generation as t.
func (t tag) check(op string, got tag) {
	if t != got {
		panic(&ProvenanceError{Op: op, Want: uint64(t), Got: uint64(got)})
	}
}

func (t tag) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// borrow tracks the exclusive-access state of one region.
//
// loans counts live sub-regions. It is decremented by the sub-regions
// themselves, possibly from other goroutines, so it is atomic. released is
// only touched by the goroutine that owns the region.
type borrow struct {
	loans    atomic.Int32
	parent   *borrow
	released bool
}

func (b *borrow) lend(child *borrow) {
	b.loans.Add(1)
	child.parent = b
}

func (b *borrow) access(op string) {
	if b.released {
		panic(&BorrowError{Op: op, Reason: "region already released"})
	}
	if n := b.loans.Load(); n > 0 {
		panic(&BorrowError{Op: op, Reason: "region suspended by " + strconv.Itoa(int(n)) + " live sub-region(s)"})
	}
}

func (b *borrow) release() {
	b.access("Release")
	b.released = true
	if b.parent != nil {
		b.parent.loans.Add(-1)
	}
}

// elem returns the address of data[off], bounds checked.
func elem[T any](data []T, off int) *T {
	return &data[off]
}

// sub returns data[off:off+n] capped at its own length, bounds checked.
func sub[T any](data []T, off, n int) []T {
	return data[off : off+n : off+n]
}
