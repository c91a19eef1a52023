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

	"github.com/blinklabs-io/fueltx/cbor"
	"github.com/blinklabs-io/fueltx/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testUtxoId    = NewUtxoId(Blake2b256(test.FilledBytes32(0x01)), 3)
	testOwner     = Address(test.FilledBytes32(0x02))
	testAssetId   = AssetId(test.FilledBytes32(0x03))
	testTxPointer = NewTxPointer(1000, 7)
)

func testInputs() []Input {
	return []Input{
		NewCoinSignedInput(testUtxoId, testOwner, 100, testAssetId, testTxPointer, 0),
		NewCoinPredicateInput(
			testUtxoId,
			testOwner,
			200,
			testAssetId,
			testTxPointer,
			55,
			[]byte{0x01, 0x02},
			[]byte{0x03},
		),
		NewContractInput(
			testUtxoId,
			Bytes32(test.FilledBytes32(0x04)),
			Bytes32(test.FilledBytes32(0x05)),
			testTxPointer,
			ContractId(test.FilledBytes32(0x06)),
		),
		NewMessageCoinSignedInput(
			Address(test.FilledBytes32(0x07)),
			testOwner,
			300,
			Nonce(test.FilledBytes32(0x08)),
			1,
		),
		NewMessageDataSignedInput(
			Address(test.FilledBytes32(0x07)),
			testOwner,
			400,
			Nonce(test.FilledBytes32(0x09)),
			2,
			[]byte("hello"),
		),
	}
}

func testOutputs() []Output {
	return []Output{
		NewCoinOutput(testOwner, 100, testAssetId),
		NewContractOutput(
			0,
			Bytes32(test.FilledBytes32(0x04)),
			Bytes32(test.FilledBytes32(0x05)),
		),
		NewChangeOutput(testOwner, 50, testAssetId),
		NewVariableOutput(testOwner, 25, testAssetId),
		NewContractCreatedOutput(
			ContractId(test.FilledBytes32(0x06)),
			Bytes32(test.FilledBytes32(0x0a)),
		),
	}
}

func TestInputWrapperCbor(t *testing.T) {
	for _, input := range testInputs() {
		wrapper := NewInputWrapper(input)
		data, err := cbor.Encode(wrapper)
		require.NoError(t, err)
		inputType, err := cbor.DecodeIdFromList(data)
		require.NoError(t, err)
		assert.Equal(t, int(input.Type()), inputType)
		var decoded InputWrapper
		_, err = cbor.Decode(data, &decoded)
		require.NoError(t, err)
		assert.Equal(t, wrapper, decoded)
	}
}

func TestInputWrapperUnknownType(t *testing.T) {
	var decoded InputWrapper
	_, err := cbor.Decode(test.DecodeHexString("8109"), &decoded)
	assert.ErrorContains(t, err, "unknown input type")
}

func TestOutputWrapperCbor(t *testing.T) {
	for _, output := range testOutputs() {
		wrapper := NewOutputWrapper(output)
		data, err := cbor.Encode(wrapper)
		require.NoError(t, err)
		var decoded OutputWrapper
		_, err = cbor.Decode(data, &decoded)
		require.NoError(t, err)
		assert.Equal(t, wrapper, decoded)
	}
}

func TestCloneInputsIsDeep(t *testing.T) {
	orig := WrapInputs(testInputs())
	cloned := CloneInputs(orig)
	require.Equal(t, orig, cloned)
	predicate := cloned[1].Input.(CoinPredicateInput)
	predicate.Predicate[0] = 0xff
	assert.Equal(
		t,
		byte(0x01),
		orig[1].Input.(CoinPredicateInput).Predicate[0],
	)
	assert.Nil(t, CloneInputs(nil))
}

func TestPrepareInputsForSigning(t *testing.T) {
	orig := WrapInputs(testInputs())
	prepared := UnwrapInputs(PrepareInputsForSigning(orig))
	coin := prepared[0].(CoinSignedInput)
	assert.Equal(t, TxPointer{}, coin.TxPointer)
	assert.Equal(t, testUtxoId, coin.UtxoId)
	predicate := prepared[1].(CoinPredicateInput)
	assert.Equal(t, TxPointer{}, predicate.TxPointer)
	assert.Equal(t, uint64(0), predicate.PredicateGasUsed)
	contract := prepared[2].(ContractInput)
	assert.Equal(t, UtxoId{}, contract.UtxoId)
	assert.Equal(t, Bytes32{}, contract.BalanceRoot)
	assert.Equal(t, Bytes32{}, contract.StateRoot)
	assert.Equal(t, ContractId(test.FilledBytes32(0x06)), contract.ContractId)
	assert.Equal(t, testInputs()[3], prepared[3])
	assert.Equal(t, testInputs()[4], prepared[4])
	// The originals are untouched
	assert.Equal(t, WrapInputs(testInputs()), orig)
}

func TestPrepareOutputsForSigning(t *testing.T) {
	var wrappers []OutputWrapper
	for _, output := range testOutputs() {
		wrappers = append(wrappers, NewOutputWrapper(output))
	}
	prepared := UnwrapOutputs(PrepareOutputsForSigning(wrappers))
	assert.Equal(t, testOutputs()[0], prepared[0])
	contract := prepared[1].(ContractOutput)
	assert.Equal(t, Bytes32{}, contract.BalanceRoot)
	assert.Equal(t, Bytes32{}, contract.StateRoot)
	assert.Equal(t, uint64(0), prepared[2].(ChangeOutput).Amount)
	assert.Equal(
		t,
		NewVariableOutput(Address{}, 0, AssetId{}),
		prepared[3],
	)
	assert.Equal(t, testOutputs()[4], prepared[4])
}

func TestSignedInputSigner(t *testing.T) {
	for idx, input := range testInputs() {
		signed, ok := input.(SignedInput)
		switch input.Type() {
		case InputTypeCoinSigned, InputTypeMessageCoinSigned, InputTypeMessageDataSigned:
			require.True(t, ok, "input %d", idx)
			owner, _ := signed.Signer()
			assert.Equal(t, testOwner, owner)
		default:
			assert.False(t, ok, "input %d", idx)
		}
	}
}
