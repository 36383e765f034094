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
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// tagSource hands out process-unique provenance tags. Zero is never issued,
// so the zero Index is foreign to every region.
//
// Parallel sorts mint tags from many goroutines at once; the counter gets a
// cache line to itself.
type tagSource struct {
	_    cpu.CacheLinePad
	last atomic.Uint64
	_    cpu.CacheLinePad
}

var tags tagSource

func (s *tagSource) next() uint64 {
	return s.last.Add(1)
}
