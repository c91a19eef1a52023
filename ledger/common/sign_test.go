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

	"github.com/blinklabs-io/fueltx/crypto"
	"github.com/blinklabs-io/fueltx/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInputs(t *testing.T) {
	keys := test.SecretKeys(42, 2)
	ownerA := InputOwner(keys[0].PublicKey())
	ownerB := InputOwner(keys[1].PublicKey())
	txId := Blake2b256(test.FilledBytes32(0x5a))
	inputs := WrapInputs([]Input{
		NewCoinSignedInput(testUtxoId, ownerA, 1, testAssetId, testTxPointer, 0),
		NewCoinSignedInput(testUtxoId, ownerB, 2, testAssetId, testTxPointer, 1),
		NewMessageCoinSignedInput(Address{}, ownerA, 3, Nonce{}, 0),
		// Points past the end of the witnesses
		NewCoinSignedInput(testUtxoId, ownerA, 4, testAssetId, testTxPointer, 5),
		NewContractInput(UtxoId{}, Bytes32{}, Bytes32{}, TxPointer{}, ContractId{}),
	})
	witnesses := []Witness{{}, {}}
	written := SignInputs(inputs, witnesses, keys[0], txId)
	assert.Equal(t, 1, written)
	require.Len(t, witnesses[0], crypto.SignatureSize)
	assert.True(t, witnesses[1].IsEmpty())
	sig, err := crypto.NewSignature(witnesses[0])
	require.NoError(t, err)
	pk, err := crypto.Recover(sig, crypto.Message(txId))
	require.NoError(t, err)
	assert.Equal(t, keys[0].PublicKey(), pk)

	written = SignInputs(inputs, witnesses, keys[1], txId)
	assert.Equal(t, 1, written)
	assert.NotEqual(t, witnesses[0], witnesses[1])
	require.NoError(
		t,
		crypto.Verify(
			keys[1].PublicKey(),
			crypto.Signature(witnesses[1]),
			crypto.Message(txId),
		),
	)
}

func TestSignInputsUnknownKey(t *testing.T) {
	keys := test.SecretKeys(7, 2)
	inputs := WrapInputs([]Input{
		NewCoinSignedInput(
			testUtxoId,
			InputOwner(keys[0].PublicKey()),
			1,
			testAssetId,
			testTxPointer,
			0,
		),
	})
	witnesses := []Witness{{}}
	assert.Equal(t, 0, SignInputs(inputs, witnesses, keys[1], Blake2b256{}))
	assert.True(t, witnesses[0].IsEmpty())
}
