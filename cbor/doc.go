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

// Package cbor provides the deterministic CBOR encoding used for transaction
// bodies, ids and the wire form of every transaction kind.
//
// It wraps github.com/fxamacker/cbor/v2 with a cached encoder that always
// sorts map keys (core deterministic encoding) and a cached decoder.
//
// # Key Types
//
//   - StructAsArray: Embed to encode struct fields as a CBOR array instead of a map
//   - RawMessage: Deferred decoding (like json.RawMessage)
//
// # Tagged Lists
//
// Sum types (inputs, outputs, transactions) are encoded as lists whose first
// item is a numeric type id. DecodeIdFromList extracts that id so the caller
// can pick the concrete type before decoding the full value:
//
//	id, err := cbor.DecodeIdFromList(data)
//	switch id {
//	case TypeA:
//	    tmp = &A{}
//	}
//	_, err = cbor.Decode(data, tmp)
package cbor
