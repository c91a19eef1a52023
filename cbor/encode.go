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
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once
)

// getEncMode returns a cached EncMode, initializing it on first use
func getEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		opts := _cbor.EncOptions{
			// Make sure that maps have ordered keys
			Sort: _cbor.SortCoreDeterministic,
			// Fixed-size byte arrays (hashes, addresses) are bytestrings on the wire
			ByteArray: _cbor.ByteArrayToByteSlice,
			// Nil and empty slices must produce identical bytes for hashing
			NilContainers: _cbor.NilContainerAsEmpty,
		}
		cachedEncMode, cachedEncModeErr = opts.EncMode()
	})
	return cachedEncMode, cachedEncModeErr
}

func Encode(data any) ([]byte, error) {
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	if em == nil {
		return nil, errors.New("CBOR encoder mode not initialized")
	}
	buf := bytes.NewBuffer(nil)
	enc := em.NewEncoder(buf)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustEncode encodes the provided value and panics on failure. It is meant for
// values whose encoding cannot fail, such as transaction id preimages
func MustEncode(data any) []byte {
	ret, err := Encode(data)
	if err != nil {
		panic("unexpected error encoding CBOR: " + err.Error())
	}
	return ret
}
