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
	"slices"

	"github.com/blinklabs-io/fueltx/cbor"
	"github.com/celestiaorg/smt"
	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/blake2b"
)

// StorageSlot is an initial contract storage entry
type StorageSlot struct {
	cbor.StructAsArray
	Key   Bytes32
	Value Bytes32
}

func NewStorageSlot(key Bytes32, value Bytes32) StorageSlot {
	return StorageSlot{
		Key:   key,
		Value: value,
	}
}

// Compare orders storage slots by key, then by value
func (s StorageSlot) Compare(other StorageSlot) int {
	if ret := bytes.Compare(s.Key[:], other.Key[:]); ret != 0 {
		return ret
	}
	return bytes.Compare(s.Value[:], other.Value[:])
}

// SortStorageSlots sorts the slots in place, ascending by key
func SortStorageSlots(slots []StorageSlot) {
	slices.SortStableFunc(slots, func(a, b StorageSlot) int {
		return a.Compare(b)
	})
}

// StorageSlotsRoot returns the root of a sparse merkle tree keyed by slot key
// holding each slot value. The root does not depend on slot order. When a key
// repeats, the last slot wins. No slots yields the all-zero root
func StorageSlotsRoot(slots []StorageSlot) (Bytes32, error) {
	hasher, err := blake2b.New256(nil)
	if err != nil {
		return Bytes32{}, errors.Wrap(err, "create state root hasher")
	}
	tree := smt.NewSparseMerkleTree(smt.NewSimpleMap(), smt.NewSimpleMap(), hasher)
	for _, slot := range slots {
		if _, err := tree.Update(slot.Key.Bytes(), slot.Value.Bytes()); err != nil {
			return Bytes32{}, errors.Wrapf(err, "insert storage slot %s", slot.Key)
		}
	}
	var root Bytes32
	copy(root[:], tree.Root())
	return root, nil
}
