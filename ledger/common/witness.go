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
	"bytes"
	"encoding/hex"
)

// Witness is an opaque payload occupying a witness slot: a signature, contract
// bytecode or anything else an input or the transaction refers to by index.
// The zero value is an empty placeholder.
type Witness []byte

func (w Witness) Bytes() []byte {
	return w
}

func (w Witness) IsEmpty() bool {
	return len(w) == 0
}

func (w Witness) String() string {
	return hex.EncodeToString(w)
}

// CloneWitnesses returns a deep copy of the provided witnesses
func CloneWitnesses(witnesses []Witness) []Witness {
	if witnesses == nil {
		return nil
	}
	ret := make([]Witness, len(witnesses))
	for i, w := range witnesses {
		if w != nil {
			ret[i] = bytes.Clone(w)
		}
	}
	return ret
}
