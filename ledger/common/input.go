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
	"fmt"

	"github.com/blinklabs-io/fueltx/cbor"
)

const (
	InputTypeCoinSigned        = 0
	InputTypeCoinPredicate     = 1
	InputTypeContract          = 2
	InputTypeMessageCoinSigned = 3
	InputTypeMessageDataSigned = 4
)

type Input interface {
	isInput()
	Type() uint
	// clone returns a deep copy of the input
	clone() Input
	// prepareSign returns a copy with the fields that are only known once the
	// transaction is included in a block zeroed out
	prepareSign() Input
}

// SignedInput is an input that is unlocked by a signature in a witness slot
type SignedInput interface {
	Input
	// Signer returns the address that must sign the input and the index of
	// the witness holding that signature
	Signer() (Address, uint8)
}

type InputWrapper struct {
	Type  uint
	Input Input
}

func NewInputWrapper(input Input) InputWrapper {
	return InputWrapper{
		Type:  input.Type(),
		Input: input,
	}
}

func (i *InputWrapper) UnmarshalCBOR(data []byte) error {
	// Determine input type
	inputType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	var tmpInput Input
	switch inputType {
	case InputTypeCoinSigned:
		var tmp CoinSignedInput
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		tmpInput = tmp
	case InputTypeCoinPredicate:
		var tmp CoinPredicateInput
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		tmpInput = tmp
	case InputTypeContract:
		var tmp ContractInput
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		tmpInput = tmp
	case InputTypeMessageCoinSigned:
		var tmp MessageCoinSignedInput
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		tmpInput = tmp
	case InputTypeMessageDataSigned:
		var tmp MessageDataSignedInput
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		tmpInput = tmp
	default:
		return fmt.Errorf("unknown input type: %d", inputType)
	}
	i.Type = uint(inputType)
	i.Input = tmpInput
	return nil
}

func (i InputWrapper) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(i.Input)
}

// WrapInputs wraps the provided inputs for storage in a transaction body
func WrapInputs(inputs []Input) []InputWrapper {
	ret := make([]InputWrapper, 0, len(inputs))
	for _, input := range inputs {
		ret = append(ret, NewInputWrapper(input))
	}
	return ret
}

// UnwrapInputs returns the inputs held by the wrappers
func UnwrapInputs(wrappers []InputWrapper) []Input {
	ret := make([]Input, 0, len(wrappers))
	for _, w := range wrappers {
		ret = append(ret, w.Input)
	}
	return ret
}

// CloneInput returns a deep copy of the input
func CloneInput(input Input) Input {
	if input == nil {
		return nil
	}
	return input.clone()
}

// CloneInputs returns a deep copy of the provided inputs
func CloneInputs(wrappers []InputWrapper) []InputWrapper {
	if wrappers == nil {
		return nil
	}
	ret := make([]InputWrapper, len(wrappers))
	for idx, w := range wrappers {
		ret[idx] = InputWrapper{Type: w.Type}
		if w.Input != nil {
			ret[idx].Input = w.Input.clone()
		}
	}
	return ret
}

// PrepareInputsForSigning returns copies of the inputs suitable for computing
// the transaction id
func PrepareInputsForSigning(wrappers []InputWrapper) []InputWrapper {
	ret := make([]InputWrapper, len(wrappers))
	for idx, w := range wrappers {
		ret[idx] = InputWrapper{Type: w.Type}
		if w.Input != nil {
			ret[idx].Input = w.Input.prepareSign()
		}
	}
	return ret
}

type CoinSignedInput struct {
	cbor.StructAsArray
	InputType    uint
	UtxoId       UtxoId
	Owner        Address
	Amount       uint64
	AssetId      AssetId
	TxPointer    TxPointer
	WitnessIndex uint8
}

func NewCoinSignedInput(
	utxoId UtxoId,
	owner Address,
	amount uint64,
	assetId AssetId,
	txPointer TxPointer,
	witnessIndex uint8,
) CoinSignedInput {
	return CoinSignedInput{
		InputType:    InputTypeCoinSigned,
		UtxoId:       utxoId,
		Owner:        owner,
		Amount:       amount,
		AssetId:      assetId,
		TxPointer:    txPointer,
		WitnessIndex: witnessIndex,
	}
}

func (CoinSignedInput) isInput() {}

func (CoinSignedInput) Type() uint {
	return InputTypeCoinSigned
}

func (i CoinSignedInput) Signer() (Address, uint8) {
	return i.Owner, i.WitnessIndex
}

func (i CoinSignedInput) clone() Input {
	return i
}

func (i CoinSignedInput) prepareSign() Input {
	i.TxPointer = TxPointer{}
	return i
}

type CoinPredicateInput struct {
	cbor.StructAsArray
	InputType        uint
	UtxoId           UtxoId
	Owner            Address
	Amount           uint64
	AssetId          AssetId
	TxPointer        TxPointer
	PredicateGasUsed uint64
	Predicate        []byte
	PredicateData    []byte
}

func NewCoinPredicateInput(
	utxoId UtxoId,
	owner Address,
	amount uint64,
	assetId AssetId,
	txPointer TxPointer,
	predicateGasUsed uint64,
	predicate []byte,
	predicateData []byte,
) CoinPredicateInput {
	return CoinPredicateInput{
		InputType:        InputTypeCoinPredicate,
		UtxoId:           utxoId,
		Owner:            owner,
		Amount:           amount,
		AssetId:          assetId,
		TxPointer:        txPointer,
		PredicateGasUsed: predicateGasUsed,
		Predicate:        predicate,
		PredicateData:    predicateData,
	}
}

func (CoinPredicateInput) isInput() {}

func (CoinPredicateInput) Type() uint {
	return InputTypeCoinPredicate
}

func (i CoinPredicateInput) clone() Input {
	i.Predicate = bytes.Clone(i.Predicate)
	i.PredicateData = bytes.Clone(i.PredicateData)
	return i
}

func (i CoinPredicateInput) prepareSign() Input {
	tmp := i.clone().(CoinPredicateInput)
	tmp.TxPointer = TxPointer{}
	tmp.PredicateGasUsed = 0
	return tmp
}

type ContractInput struct {
	cbor.StructAsArray
	InputType   uint
	UtxoId      UtxoId
	BalanceRoot Bytes32
	StateRoot   Bytes32
	TxPointer   TxPointer
	ContractId  ContractId
}

func NewContractInput(
	utxoId UtxoId,
	balanceRoot Bytes32,
	stateRoot Bytes32,
	txPointer TxPointer,
	contractId ContractId,
) ContractInput {
	return ContractInput{
		InputType:   InputTypeContract,
		UtxoId:      utxoId,
		BalanceRoot: balanceRoot,
		StateRoot:   stateRoot,
		TxPointer:   txPointer,
		ContractId:  contractId,
	}
}

func (ContractInput) isInput() {}

func (ContractInput) Type() uint {
	return InputTypeContract
}

func (i ContractInput) clone() Input {
	return i
}

func (i ContractInput) prepareSign() Input {
	return i.PrepareSign()
}

// PrepareSign returns a copy with the chain state dependent fields zeroed
func (i ContractInput) PrepareSign() ContractInput {
	i.UtxoId = UtxoId{}
	i.BalanceRoot = Bytes32{}
	i.StateRoot = Bytes32{}
	i.TxPointer = TxPointer{}
	return i
}

type MessageCoinSignedInput struct {
	cbor.StructAsArray
	InputType    uint
	Sender       Address
	Recipient    Address
	Amount       uint64
	Nonce        Nonce
	WitnessIndex uint8
}

func NewMessageCoinSignedInput(
	sender Address,
	recipient Address,
	amount uint64,
	nonce Nonce,
	witnessIndex uint8,
) MessageCoinSignedInput {
	return MessageCoinSignedInput{
		InputType:    InputTypeMessageCoinSigned,
		Sender:       sender,
		Recipient:    recipient,
		Amount:       amount,
		Nonce:        nonce,
		WitnessIndex: witnessIndex,
	}
}

func (MessageCoinSignedInput) isInput() {}

func (MessageCoinSignedInput) Type() uint {
	return InputTypeMessageCoinSigned
}

func (i MessageCoinSignedInput) Signer() (Address, uint8) {
	return i.Recipient, i.WitnessIndex
}

func (i MessageCoinSignedInput) clone() Input {
	return i
}

func (i MessageCoinSignedInput) prepareSign() Input {
	return i
}

type MessageDataSignedInput struct {
	cbor.StructAsArray
	InputType    uint
	Sender       Address
	Recipient    Address
	Amount       uint64
	Nonce        Nonce
	WitnessIndex uint8
	Data         []byte
}

func NewMessageDataSignedInput(
	sender Address,
	recipient Address,
	amount uint64,
	nonce Nonce,
	witnessIndex uint8,
	data []byte,
) MessageDataSignedInput {
	return MessageDataSignedInput{
		InputType:    InputTypeMessageDataSigned,
		Sender:       sender,
		Recipient:    recipient,
		Amount:       amount,
		Nonce:        nonce,
		WitnessIndex: witnessIndex,
		Data:         data,
	}
}

func (MessageDataSignedInput) isInput() {}

func (MessageDataSignedInput) Type() uint {
	return InputTypeMessageDataSigned
}

func (i MessageDataSignedInput) Signer() (Address, uint8) {
	return i.Recipient, i.WitnessIndex
}

func (i MessageDataSignedInput) clone() Input {
	i.Data = bytes.Clone(i.Data)
	return i
}

func (i MessageDataSignedInput) prepareSign() Input {
	return i.clone()
}
