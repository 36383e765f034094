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

//go:build noprovenance

package region

import "unsafe"

const Checked = false

type tag struct{}

func newTag() tag { return tag{} }

func (tag) check(string, tag) {}

func (tag) String() string { return "" }

type borrow struct{}

func (*borrow) lend(*borrow) {}

func (*borrow) access(string) {}

func (*borrow) release() {}

// elem returns the address of data[off] without a bounds check.
//
// SAFETY: off must be below len(data). Every Index reaching this point was
// minted by the region owning data, or translated into it by ParentIndex,
// which keeps it in range.
func elem[T any](data []T, off int) *T {
	var zero T
	base := unsafe.Pointer(unsafe.SliceData(data))
	return (*T)(unsafe.Add(base, uintptr(off)*unsafe.Sizeof(zero)))
}

// sub returns the n elements of data starting at off without copying or
// bounds checks.
//
// SAFETY: n >= 1 and off+n <= len(data); the split operations guarantee both.
func sub[T any](data []T, off, n int) []T {
	return unsafe.Slice(elem(data, off), n)
}
