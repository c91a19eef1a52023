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

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/fueltx/cbor"
)

type encodeTestDefinition struct {
	CborHex string
	Object  any
}

type testPair struct {
	cbor.StructAsArray
	A uint64
	B []byte
}

var encodeTests = []encodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{1, 2, 3},
	},
	// Map keys are sorted regardless of insertion order
	{
		CborHex: "a201020304",
		Object:  map[uint]uint{3: 4, 1: 2},
	},
	// Struct encoded as array
	{
		CborHex: "82074201ff",
		Object:  testPair{A: 7, B: []byte{0x01, 0xff}},
	},
	// Nil slices encode the same as empty ones
	{
		CborHex: "40",
		Object:  []byte(nil),
	},
	{
		CborHex: "80",
		Object:  []uint(nil),
	},
	// Fixed size byte array encoded as bytestring
	{
		CborHex: "43010203",
		Object:  [3]byte{1, 2, 3},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		cborData, err := cbor.Encode(test.Object)
		if err != nil {
			t.Fatalf("failed to encode object to CBOR: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != test.CborHex {
			t.Fatalf(
				"object did not encode to expected CBOR\n  got: %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

func TestMustEncodePanicsOnUnsupported(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic")
		}
	}()
	cbor.MustEncode(make(chan int))
}
