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
	"testing"

	"github.com/blinklabs-io/fueltx/internal/test"
	"github.com/celestiaorg/smt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestSortStorageSlots(t *testing.T) {
	slots := []StorageSlot{
		NewStorageSlot(Bytes32(test.FilledBytes32(3)), Bytes32{}),
		NewStorageSlot(Bytes32(test.FilledBytes32(1)), Bytes32(test.FilledBytes32(9))),
		NewStorageSlot(Bytes32(test.FilledBytes32(2)), Bytes32{}),
		NewStorageSlot(Bytes32(test.FilledBytes32(1)), Bytes32(test.FilledBytes32(4))),
	}
	SortStorageSlots(slots)
	var keys []byte
	for _, slot := range slots {
		keys = append(keys, slot.Key[0])
	}
	assert.Equal(t, []byte{1, 1, 2, 3}, keys)
	assert.Equal(t, byte(4), slots[0].Value[0])
	assert.Equal(t, byte(9), slots[1].Value[0])
}

func TestStorageSlotsRootEmpty(t *testing.T) {
	root, err := StorageSlotsRoot(nil)
	require.NoError(t, err)
	assert.Equal(t, Bytes32{}, root)
}

func TestStorageSlotsRoot(t *testing.T) {
	one := NewStorageSlot(Bytes32(test.FilledBytes32(1)), Bytes32(test.FilledBytes32(2)))
	two := NewStorageSlot(Bytes32(test.FilledBytes32(3)), Bytes32{})
	root, err := StorageSlotsRoot([]StorageSlot{one, two})
	require.NoError(t, err)
	assert.NotEqual(t, Bytes32{}, root)
	// Keyed tree, so insertion order does not matter
	reversed, err := StorageSlotsRoot([]StorageSlot{two, one})
	require.NoError(t, err)
	assert.Equal(t, root, reversed)
	single, err := StorageSlotsRoot([]StorageSlot{one})
	require.NoError(t, err)
	assert.NotEqual(t, root, single)
	changed := NewStorageSlot(one.Key, Bytes32(test.FilledBytes32(5)))
	other, err := StorageSlotsRoot([]StorageSlot{changed, two})
	require.NoError(t, err)
	assert.NotEqual(t, root, other)
}

func TestStorageSlotsRootMatchesTree(t *testing.T) {
	slot := NewStorageSlot(Bytes32(test.FilledBytes32(7)), Bytes32(test.FilledBytes32(8)))
	hasher, err := blake2b.New256(nil)
	require.NoError(t, err)
	tree := smt.NewSparseMerkleTree(smt.NewSimpleMap(), smt.NewSimpleMap(), hasher)
	_, err = tree.Update(slot.Key.Bytes(), slot.Value.Bytes())
	require.NoError(t, err)
	root, err := StorageSlotsRoot([]StorageSlot{slot})
	require.NoError(t, err)
	assert.Equal(t, tree.Root(), root.Bytes())
}
