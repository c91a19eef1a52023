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

package create

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/blinklabs-io/fueltx/internal/test"
	"github.com/blinklabs-io/fueltx/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytecodeRoot(t *testing.T) {
	root := BytecodeRoot([]byte{0x01, 0x02, 0x03})
	assert.Equal(
		t,
		"7c3146b2bf8c272cc29ece06e0f9c7e005435e7029e44d08eb9dd7de1299fc65",
		hex.EncodeToString(root[:]),
	)
	assert.Equal(t, common.Bytes32(common.MerkleRoot(nil)), BytecodeRoot(nil))
}

func TestBytecodeRootChunks(t *testing.T) {
	bytecode := bytes.Repeat([]byte{0xaa}, BytecodeChunkSize+4)
	padded := append(bytes.Repeat([]byte{0xaa}, 4), make([]byte, 4)...)
	expected := common.MerkleRoot(
		[][]byte{bytecode[:BytecodeChunkSize], padded},
	)
	assert.Equal(t, common.Bytes32(expected), BytecodeRoot(bytecode))
}

func TestComputeContractId(t *testing.T) {
	stateRoot, err := common.StorageSlotsRoot(nil)
	require.NoError(t, err)
	contractId := ComputeContractId(
		common.Salt(test.FilledBytes32(0x11)),
		BytecodeRoot([]byte{0x01, 0x02, 0x03}),
		stateRoot,
	)
	assert.Equal(
		t,
		"2dbb4c6dca8ec3c4397ef69b37ad6b05dac42456097c4a7a6c34d29390f2bb6b",
		contractId.String(),
	)
}

func newTestCreateTx() *CreateTransaction {
	tx := NewCreateTransaction(
		0,
		1,
		common.Salt(test.FilledBytes32(0x11)),
		nil,
	)
	tx.AddWitness(common.Witness{0x01, 0x02, 0x03})
	return tx
}

func TestCreateTransactionPrecompute(t *testing.T) {
	tx := newTestCreateTx()
	require.NoError(t, tx.Precompute(0))
	require.True(t, tx.IsComputed())
	metadata := tx.ContractMetadata()
	require.NotNil(t, metadata)
	assert.Equal(t, tx.Id(0), tx.Metadata().Id)
	assert.Equal(
		t,
		"2dbb4c6dca8ec3c4397ef69b37ad6b05dac42456097c4a7a6c34d29390f2bb6b",
		metadata.ContractId.String(),
	)
	assert.Equal(t, BytecodeRoot([]byte{0x01, 0x02, 0x03}), metadata.BytecodeRoot)
	assert.Equal(t, common.Bytes32{}, metadata.StateRoot)
}

func TestCreateTransactionPrecomputeMissingBytecode(t *testing.T) {
	tx := NewCreateTransaction(2, 0, common.Salt{}, nil)
	tx.AddWitness(common.Witness{})
	err := tx.Precompute(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrMalformedTransaction))
	var missingErr common.MissingWitnessError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, uint8(2), missingErr.Index)
	assert.False(t, tx.IsComputed())
	assert.Nil(t, tx.Metadata())
}

func TestCreateTransactionIdIgnoresWitnesses(t *testing.T) {
	tx := newTestCreateTx()
	txId := tx.Id(0)
	tx.AddWitness(common.Witness{0xff})
	assert.Equal(t, txId, tx.Id(0))
	tx.StorageSlots = append(
		tx.StorageSlots,
		common.NewStorageSlot(common.Bytes32{}, common.Bytes32{}),
	)
	assert.NotEqual(t, txId, tx.Id(0))
}

func TestCreateTransactionClone(t *testing.T) {
	tx := newTestCreateTx()
	tx.StorageSlots = []common.StorageSlot{
		common.NewStorageSlot(common.Bytes32(test.FilledBytes32(1)), common.Bytes32{}),
	}
	require.NoError(t, tx.Precompute(0))
	cloned := tx.Clone()
	assert.Equal(t, tx, cloned)
	cloned.StorageSlots[0].Value[0] = 0xff
	cloned.TxWitnesses[0][0] = 0xff
	assert.Equal(t, common.Bytes32{}, tx.StorageSlots[0].Value)
	assert.Equal(t, byte(0x01), tx.Witnesses()[0][0])
}

func TestCreateTransactionCbor(t *testing.T) {
	tx := newTestCreateTx()
	tx.SetMaxFeeLimit(0)
	tx.StorageSlots = []common.StorageSlot{
		common.NewStorageSlot(common.Bytes32(test.FilledBytes32(1)), common.Bytes32(test.FilledBytes32(2))),
	}
	tx.AddOutput(
		common.NewContractCreatedOutput(common.ContractId{}, common.Bytes32{}),
	)
	decoded, err := NewCreateTransactionFromCbor(tx.Cbor())
	require.NoError(t, err)
	assert.Equal(t, tx.Id(5), decoded.Id(5))
	assert.Equal(t, tx.StorageSlots, decoded.StorageSlots)
	assert.Equal(t, tx.Witnesses(), decoded.Witnesses())
	_, err = NewCreateTransactionFromCbor([]byte{0x01})
	assert.Error(t, err)
}
