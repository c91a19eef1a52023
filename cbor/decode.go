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

package cbor

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			ExtraReturnErrors: _cbor.ExtraDecErrorUnknownField,
			MaxNestedLevels:   64,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

func Decode(dataBytes []byte, dest any) (int, error) {
	data := bytes.NewReader(dataBytes)
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	if decMode == nil {
		return 0, errors.New("CBOR decoder mode not initialized")
	}
	dec := decMode.NewDecoder(data)
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// Extract the first item from a CBOR list. This will return the first item from the
// provided list if it's numeric and an error otherwise
func DecodeIdFromList(cborData []byte) (int, error) {
	listLen, err := ListLength(cborData)
	if err != nil {
		return 0, err
	}
	if listLen == 0 {
		return 0, errors.New("cannot return first item from empty list")
	}
	// If the list length and the first list value are both small enough, we can
	// extract the value straight from the byte slice
	if listLen <= int(CborMaxUintSimple) && len(cborData) > 1 {
		if cborData[1] <= CborMaxUintSimple {
			return int(cborData[1]), nil
		}
	}
	// If we couldn't use the shortcut above, actually decode the list
	var tmp []RawMessage
	if _, err := Decode(cborData, &tmp); err != nil {
		return 0, err
	}
	var id uint64
	if _, err := Decode(tmp[0], &id); err != nil {
		return 0, fmt.Errorf("first list item was not numeric: %w", err)
	}
	if id > uint64(math.MaxInt) {
		return 0, errors.New("decoded numeric value too large: uint64 > int")
	}
	return int(id), nil
}

// Determine the length of a CBOR list
func ListLength(cborData []byte) (int, error) {
	if len(cborData) == 0 {
		return 0, errors.New("empty CBOR data")
	}
	// If the list length is <= the max simple uint, then we can extract the length
	// value straight from the byte slice (with a little math)
	if cborData[0] >= CborTypeArray &&
		cborData[0] <= (CborTypeArray+CborMaxUintSimple) {
		return int(cborData[0]) - int(CborTypeArray), nil
	}
	// If we couldn't use the shortcut above, actually decode the list
	var tmp []RawMessage
	if _, err := Decode(cborData, &tmp); err != nil {
		return 0, err
	}
	return len(tmp), nil
}
