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

package ledger

import (
	"testing"

	"github.com/blinklabs-io/fueltx/internal/test"
	"github.com/blinklabs-io/fueltx/ledger/common"
	"github.com/blinklabs-io/fueltx/ledger/create"
	"github.com/blinklabs-io/fueltx/ledger/mint"
	"github.com/blinklabs-io/fueltx/ledger/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionFromCbor(t *testing.T) {
	key := test.SecretKeys(5, 1)[0]
	scriptTx := script.NewScriptTransaction(100, []byte{0x01}, nil)
	scriptTx.AddInput(
		common.NewCoinSignedInput(
			common.UtxoId{},
			common.InputOwner(key.PublicKey()),
			1,
			common.AssetId{},
			common.TxPointer{},
			0,
		),
	)
	scriptTx.AddWitness(common.Witness{})
	scriptTx.SignInputs(key, 9)
	createTx := create.NewCreateTransaction(0, 0, common.Salt{}, nil)
	createTx.AddWitness(common.Witness{})
	mintTx := mint.NewMintTransaction(
		common.NewTxPointer(1, 0),
		common.ContractInput{},
		common.ContractOutput{},
		10,
		common.AssetId{},
		1,
	)
	testDefs := []struct {
		name string
		tx   Transaction
	}{
		{name: "Script", tx: scriptTx},
		{name: "Create", tx: createTx},
		{name: "Mint", tx: mintTx},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data := testDef.tx.Cbor()
			txType, err := DetermineTransactionType(data)
			require.NoError(t, err)
			assert.Equal(t, uint(testDef.tx.Type()), txType)
			decoded, err := NewTransactionFromCbor(txType, data)
			require.NoError(t, err)
			assert.Equal(t, testDef.tx.Type(), decoded.Type())
			assert.Equal(t, testDef.tx.Id(9), decoded.Id(9))
			require.NoError(t, decoded.Precompute(9))
			assert.True(t, decoded.IsComputed())
		})
	}
}

func TestNewTransactionFromCborUnknownType(t *testing.T) {
	_, err := NewTransactionFromCbor(7, []byte{0x81, 0x07})
	assert.ErrorContains(t, err, "unknown transaction type")
	_, err = DetermineTransactionType(nil)
	assert.Error(t, err)
}
