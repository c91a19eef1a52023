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

package mint

import (
	"testing"

	"github.com/blinklabs-io/fueltx/internal/test"
	"github.com/blinklabs-io/fueltx/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMintTx() *MintTransaction {
	return NewMintTransaction(
		common.NewTxPointer(100, 0),
		common.ContractInput{
			UtxoId:      common.NewUtxoId(common.Blake2b256(test.FilledBytes32(0x01)), 0),
			BalanceRoot: common.Bytes32(test.FilledBytes32(0x02)),
			StateRoot:   common.Bytes32(test.FilledBytes32(0x03)),
			ContractId:  common.ContractId(test.FilledBytes32(0x04)),
		},
		common.ContractOutput{
			BalanceRoot: common.Bytes32(test.FilledBytes32(0x05)),
		},
		1_000,
		common.AssetId(test.FilledBytes32(0x06)),
		7,
	)
}

func TestNewMintTransactionSetsTypes(t *testing.T) {
	tx := newTestMintTx()
	assert.Equal(t, TxTypeMint, tx.Type())
	assert.Equal(t, uint(common.InputTypeContract), tx.InputContract.InputType)
	assert.Equal(t, uint(common.OutputTypeContract), tx.OutputContract.OutputType)
	assert.Empty(t, tx.Witnesses())
	assert.Len(t, tx.Inputs(), 1)
	assert.Len(t, tx.Outputs(), 1)
}

func TestMintTransactionPrecompute(t *testing.T) {
	tx := newTestMintTx()
	require.NoError(t, tx.Precompute(0))
	require.True(t, tx.IsComputed())
	assert.Equal(t, tx.Id(0), tx.Metadata().Id)
	assert.Equal(t, common.MerkleRoot(nil), tx.Metadata().WitnessesRoot)
}

func TestMintTransactionIdIgnoresContractState(t *testing.T) {
	tx := newTestMintTx()
	txId := tx.Id(0)
	tx.InputContract.StateRoot = common.Bytes32{}
	tx.OutputContract.BalanceRoot = common.Bytes32{}
	assert.Equal(t, txId, tx.Id(0))
	tx.MintAmount++
	assert.NotEqual(t, txId, tx.Id(0))
}

func TestMintTransactionClone(t *testing.T) {
	tx := newTestMintTx()
	require.NoError(t, tx.Precompute(0))
	cloned := tx.Clone()
	assert.Equal(t, tx, cloned)
	cloned.MintAmount = 1
	assert.Equal(t, uint64(1_000), tx.MintAmount)
	assert.NotSame(t, tx.Metadata(), cloned.Metadata())
}

func TestMintTransactionCbor(t *testing.T) {
	tx := newTestMintTx()
	decoded, err := NewMintTransactionFromCbor(tx.Cbor())
	require.NoError(t, err)
	assert.Equal(t, tx, decoded)
	assert.Equal(t, tx.Id(3), decoded.Id(3))
}
