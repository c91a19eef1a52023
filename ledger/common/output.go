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
	"fmt"
	"slices"

	"github.com/blinklabs-io/fueltx/cbor"
)

const (
	OutputTypeCoin            = 0
	OutputTypeContract        = 1
	OutputTypeChange          = 2
	OutputTypeVariable        = 3
	OutputTypeContractCreated = 4
)

type Output interface {
	isOutput()
	Type() uint
	// prepareSign returns a copy with the fields that are only known after
	// execution zeroed out
	prepareSign() Output
}

type OutputWrapper struct {
	Type   uint
	Output Output
}

func NewOutputWrapper(output Output) OutputWrapper {
	return OutputWrapper{
		Type:   output.Type(),
		Output: output,
	}
}

func (o *OutputWrapper) UnmarshalCBOR(data []byte) error {
	// Determine output type
	outputType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	var tmpOutput Output
	switch outputType {
	case OutputTypeCoin:
		var tmp CoinOutput
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		tmpOutput = tmp
	case OutputTypeContract:
		var tmp ContractOutput
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		tmpOutput = tmp
	case OutputTypeChange:
		var tmp ChangeOutput
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		tmpOutput = tmp
	case OutputTypeVariable:
		var tmp VariableOutput
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		tmpOutput = tmp
	case OutputTypeContractCreated:
		var tmp ContractCreatedOutput
		if _, err := cbor.Decode(data, &tmp); err != nil {
			return err
		}
		tmpOutput = tmp
	default:
		return fmt.Errorf("unknown output type: %d", outputType)
	}
	o.Type = uint(outputType)
	o.Output = tmpOutput
	return nil
}

func (o OutputWrapper) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(o.Output)
}

// WrapOutputs wraps the provided outputs for storage in a transaction body
func WrapOutputs(outputs []Output) []OutputWrapper {
	ret := make([]OutputWrapper, 0, len(outputs))
	for _, output := range outputs {
		ret = append(ret, NewOutputWrapper(output))
	}
	return ret
}

// CloneOutputs returns a copy of the provided outputs. Outputs hold no
// references, so copying the wrappers is sufficient
func CloneOutputs(wrappers []OutputWrapper) []OutputWrapper {
	if wrappers == nil {
		return nil
	}
	return slices.Clone(wrappers)
}

// UnwrapOutputs returns the outputs held by the wrappers
func UnwrapOutputs(wrappers []OutputWrapper) []Output {
	ret := make([]Output, 0, len(wrappers))
	for _, w := range wrappers {
		ret = append(ret, w.Output)
	}
	return ret
}

// PrepareOutputsForSigning returns copies of the outputs suitable for
// computing the transaction id
func PrepareOutputsForSigning(wrappers []OutputWrapper) []OutputWrapper {
	ret := make([]OutputWrapper, len(wrappers))
	for idx, w := range wrappers {
		ret[idx] = OutputWrapper{Type: w.Type}
		if w.Output != nil {
			ret[idx].Output = w.Output.prepareSign()
		}
	}
	return ret
}

type CoinOutput struct {
	cbor.StructAsArray
	OutputType uint
	To         Address
	Amount     uint64
	AssetId    AssetId
}

func NewCoinOutput(to Address, amount uint64, assetId AssetId) CoinOutput {
	return CoinOutput{
		OutputType: OutputTypeCoin,
		To:         to,
		Amount:     amount,
		AssetId:    assetId,
	}
}

func (CoinOutput) isOutput() {}

func (CoinOutput) Type() uint {
	return OutputTypeCoin
}

func (o CoinOutput) prepareSign() Output {
	return o
}

type ContractOutput struct {
	cbor.StructAsArray
	OutputType  uint
	InputIndex  uint16
	BalanceRoot Bytes32
	StateRoot   Bytes32
}

func NewContractOutput(
	inputIndex uint16,
	balanceRoot Bytes32,
	stateRoot Bytes32,
) ContractOutput {
	return ContractOutput{
		OutputType:  OutputTypeContract,
		InputIndex:  inputIndex,
		BalanceRoot: balanceRoot,
		StateRoot:   stateRoot,
	}
}

func (ContractOutput) isOutput() {}

func (ContractOutput) Type() uint {
	return OutputTypeContract
}

func (o ContractOutput) prepareSign() Output {
	return o.PrepareSign()
}

// PrepareSign returns a copy with the post-execution state roots zeroed
func (o ContractOutput) PrepareSign() ContractOutput {
	o.BalanceRoot = Bytes32{}
	o.StateRoot = Bytes32{}
	return o
}

type ChangeOutput struct {
	cbor.StructAsArray
	OutputType uint
	To         Address
	Amount     uint64
	AssetId    AssetId
}

func NewChangeOutput(to Address, amount uint64, assetId AssetId) ChangeOutput {
	return ChangeOutput{
		OutputType: OutputTypeChange,
		To:         to,
		Amount:     amount,
		AssetId:    assetId,
	}
}

func (ChangeOutput) isOutput() {}

func (ChangeOutput) Type() uint {
	return OutputTypeChange
}

func (o ChangeOutput) prepareSign() Output {
	o.Amount = 0
	return o
}

type VariableOutput struct {
	cbor.StructAsArray
	OutputType uint
	To         Address
	Amount     uint64
	AssetId    AssetId
}

func NewVariableOutput(to Address, amount uint64, assetId AssetId) VariableOutput {
	return VariableOutput{
		OutputType: OutputTypeVariable,
		To:         to,
		Amount:     amount,
		AssetId:    assetId,
	}
}

func (VariableOutput) isOutput() {}

func (VariableOutput) Type() uint {
	return OutputTypeVariable
}

func (o VariableOutput) prepareSign() Output {
	o.To = Address{}
	o.Amount = 0
	o.AssetId = AssetId{}
	return o
}

type ContractCreatedOutput struct {
	cbor.StructAsArray
	OutputType uint
	ContractId ContractId
	StateRoot  Bytes32
}

func NewContractCreatedOutput(
	contractId ContractId,
	stateRoot Bytes32,
) ContractCreatedOutput {
	return ContractCreatedOutput{
		OutputType: OutputTypeContractCreated,
		ContractId: contractId,
		StateRoot:  stateRoot,
	}
}

func (ContractCreatedOutput) isOutput() {}

func (ContractCreatedOutput) Type() uint {
	return OutputTypeContractCreated
}

func (o ContractCreatedOutput) prepareSign() Output {
	return o
}
