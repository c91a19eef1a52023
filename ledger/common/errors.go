// Copyright 2026 Blink Labs Software
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

package common

import (
	"errors"
	"fmt"
)

// ErrMalformedTransaction is matched by every error returned from Precompute
var ErrMalformedTransaction = errors.New("malformed transaction")

// EncodingError indicates a part of the transaction could not be encoded
type EncodingError struct {
	Item  string
	Index int
	Err   error
}

func (e EncodingError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("failed to encode %s %d: %v", e.Item, e.Index, e.Err)
	}
	return fmt.Sprintf("failed to encode %s: %v", e.Item, e.Err)
}

func (e EncodingError) Unwrap() error { return e.Err }

func (EncodingError) Is(target error) bool {
	return target == ErrMalformedTransaction
}

// MissingWitnessError indicates a witness index that points past the end of
// the witness sequence
type MissingWitnessError struct {
	Index     uint8
	Witnesses int
}

func (e MissingWitnessError) Error() string {
	return fmt.Sprintf(
		"witness index %d out of range (%d witnesses)",
		e.Index,
		e.Witnesses,
	)
}

func (MissingWitnessError) Is(target error) bool {
	return target == ErrMalformedTransaction
}
