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

package region

import (
	"errors"
	"fmt"
)

var (
	// ErrProvenance is matched by every *ProvenanceError.
	ErrProvenance = errors.New("region: index used against a foreign region")

	// ErrBorrow is matched by every *BorrowError.
	ErrBorrow = errors.New("region: region used outside its exclusive borrow")
)

// ProvenanceError is the panic value raised when an Index is used against a
// region that did not mint it. Only checked builds raise it.
type ProvenanceError struct {
	Op   string
	Want uint64 // tag of the region (or Index) being operated on
	Got  uint64 // tag carried by the offending Index
}

func (e *ProvenanceError) Error() string {
	return fmt.Sprintf("region: %s: index tagged %d used against region tagged %d", e.Op, e.Got, e.Want)
}

func (e *ProvenanceError) Unwrap() error {
	return ErrProvenance
}

// BorrowError is the panic value raised when a region is used while it is
// suspended by live sub-regions, or after it has been released.
type BorrowError struct {
	Op     string
	Reason string
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("region: %s: %s", e.Op, e.Reason)
}

func (e *BorrowError) Unwrap() error {
	return ErrBorrow
}
