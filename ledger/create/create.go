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
	"fmt"
	"slices"

	"github.com/blinklabs-io/fueltx/cbor"
	"github.com/blinklabs-io/fueltx/crypto"
	"github.com/blinklabs-io/fueltx/ledger/common"
)

const TxTypeCreate = common.TxTypeCreate

// Compile-time interface checks
var (
	_ common.Transaction = (*CreateTransaction)(nil)
	_ common.Signable    = (*CreateTransaction)(nil)
	_ common.Chargeable  = (*CreateTransaction)(nil)
	_ common.Accumulator = (*CreateTransaction)(nil)
)

// CreateTransaction deploys the contract bytecode held in one of its witnesses
type CreateTransaction struct {
	cbor.StructAsArray
	TxType               uint
	BytecodeWitnessIndex uint8
	BytecodeLength       uint64
	Salt                 common.Salt
	StorageSlots         []common.StorageSlot
	TxPolicies           common.Policies
	TxInputs             []common.InputWrapper
	TxOutputs            []common.OutputWrapper
	TxWitnesses          []common.Witness
	metadata             *CreateMetadata
}

// CreateMetadata extends the common metadata with the identity of the
// deployed contract
type CreateMetadata struct {
	common.TxMetadata
	ContractId   common.ContractId
	BytecodeRoot common.Bytes32
	StateRoot    common.Bytes32
}

// NewCreateTransaction returns a transaction deploying the bytecode in the
// witness at bytecodeWitnessIndex. The storage slots are used as given
func NewCreateTransaction(
	bytecodeWitnessIndex uint8,
	bytecodeLength uint64,
	salt common.Salt,
	storageSlots []common.StorageSlot,
) *CreateTransaction {
	return &CreateTransaction{
		TxType:               TxTypeCreate,
		BytecodeWitnessIndex: bytecodeWitnessIndex,
		BytecodeLength:       bytecodeLength,
		Salt:                 salt,
		StorageSlots:         storageSlots,
		TxPolicies:           common.NewPolicies(),
	}
}

func (t *CreateTransaction) Type() int {
	return TxTypeCreate
}

func (t *CreateTransaction) signingBody() *CreateTransaction {
	return &CreateTransaction{
		TxType:               t.TxType,
		BytecodeWitnessIndex: t.BytecodeWitnessIndex,
		BytecodeLength:       t.BytecodeLength,
		Salt:                 t.Salt,
		StorageSlots:         t.StorageSlots,
		TxPolicies:           t.TxPolicies,
		TxInputs:             common.PrepareInputsForSigning(t.TxInputs),
		TxOutputs:            common.PrepareOutputsForSigning(t.TxOutputs),
	}
}

func (t *CreateTransaction) id(chainId common.ChainId) (common.Blake2b256, error) {
	bodyCbor, err := cbor.Encode(t.signingBody())
	if err != nil {
		return common.Blake2b256{}, common.EncodingError{
			Item:  "create transaction body",
			Index: -1,
			Err:   err,
		}
	}
	return common.ComputeTxId(chainId, bodyCbor), nil
}

func (t *CreateTransaction) Id(chainId common.ChainId) common.Blake2b256 {
	return common.ComputeTxId(chainId, cbor.MustEncode(t.signingBody()))
}

func (t *CreateTransaction) Metadata() *common.TxMetadata {
	if t.metadata == nil {
		return nil
	}
	return &t.metadata.TxMetadata
}

// ContractMetadata returns the values cached by Precompute, or nil
func (t *CreateTransaction) ContractMetadata() *CreateMetadata {
	return t.metadata
}

func (t *CreateTransaction) Cbor() []byte {
	// This should never fail, since every field has a fixed encoding
	cborData, err := cbor.Encode(t)
	if err != nil {
		return nil
	}
	return cborData
}

// Bytecode returns the witness holding the contract bytecode
func (t *CreateTransaction) Bytecode() (common.Witness, error) {
	if int(t.BytecodeWitnessIndex) >= len(t.TxWitnesses) {
		return nil, common.MissingWitnessError{
			Index:     t.BytecodeWitnessIndex,
			Witnesses: len(t.TxWitnesses),
		}
	}
	return t.TxWitnesses[t.BytecodeWitnessIndex], nil
}

func (t *CreateTransaction) Precompute(chainId common.ChainId) error {
	bytecode, err := t.Bytecode()
	if err != nil {
		return err
	}
	txId, err := t.id(chainId)
	if err != nil {
		return err
	}
	txMetadata, err := common.NewTxMetadata(
		txId,
		t.TxInputs,
		t.TxOutputs,
		t.TxWitnesses,
	)
	if err != nil {
		return err
	}
	bytecodeRoot := BytecodeRoot(bytecode)
	stateRoot, err := common.StorageSlotsRoot(t.StorageSlots)
	if err != nil {
		return common.EncodingError{
			Item:  "storage slots",
			Index: -1,
			Err:   err,
		}
	}
	t.metadata = &CreateMetadata{
		TxMetadata:   *txMetadata,
		ContractId:   ComputeContractId(t.Salt, bytecodeRoot, stateRoot),
		BytecodeRoot: bytecodeRoot,
		StateRoot:    stateRoot,
	}
	return nil
}

func (t *CreateTransaction) IsComputed() bool {
	return t.metadata != nil
}

func (t *CreateTransaction) SignInputs(
	key crypto.SecretKey,
	chainId common.ChainId,
) {
	common.SignInputs(t.TxInputs, t.TxWitnesses, key, t.Id(chainId))
	t.metadata = nil
}

// Clone returns a deep copy of the transaction, including any cached metadata
func (t *CreateTransaction) Clone() *CreateTransaction {
	ret := &CreateTransaction{
		TxType:               t.TxType,
		BytecodeWitnessIndex: t.BytecodeWitnessIndex,
		BytecodeLength:       t.BytecodeLength,
		Salt:                 t.Salt,
		StorageSlots:         slices.Clone(t.StorageSlots),
		TxPolicies:           t.TxPolicies,
		TxInputs:             common.CloneInputs(t.TxInputs),
		TxOutputs:            common.CloneOutputs(t.TxOutputs),
		TxWitnesses:          common.CloneWitnesses(t.TxWitnesses),
	}
	if t.metadata != nil {
		tmpMetadata := *t.metadata
		ret.metadata = &tmpMetadata
	}
	return ret
}

func (t *CreateTransaction) Policies() common.Policies {
	return t.TxPolicies
}

func (t *CreateTransaction) SetTip(tip uint64) {
	t.setPolicy(common.PolicyTypeTip, tip)
}

func (t *CreateTransaction) SetMaturity(maturity common.BlockHeight) {
	t.setPolicy(common.PolicyTypeMaturity, uint64(maturity))
}

func (t *CreateTransaction) SetWitnessLimit(witnessLimit uint64) {
	t.setPolicy(common.PolicyTypeWitnessLimit, witnessLimit)
}

func (t *CreateTransaction) SetMaxFeeLimit(maxFee uint64) {
	t.setPolicy(common.PolicyTypeMaxFee, maxFee)
}

func (t *CreateTransaction) setPolicy(policyType common.PolicyType, value uint64) {
	t.TxPolicies.Set(policyType, value)
	t.metadata = nil
}

func (t *CreateTransaction) Inputs() []common.Input {
	return common.UnwrapInputs(t.TxInputs)
}

func (t *CreateTransaction) Outputs() []common.Output {
	return common.UnwrapOutputs(t.TxOutputs)
}

func (t *CreateTransaction) Witnesses() []common.Witness {
	return t.TxWitnesses
}

func (t *CreateTransaction) AddInput(input common.Input) {
	t.TxInputs = append(t.TxInputs, common.NewInputWrapper(input))
	t.metadata = nil
}

func (t *CreateTransaction) AddOutput(output common.Output) {
	t.TxOutputs = append(t.TxOutputs, common.NewOutputWrapper(output))
	t.metadata = nil
}

func (t *CreateTransaction) AddWitness(witness common.Witness) {
	t.TxWitnesses = append(t.TxWitnesses, witness)
	t.metadata = nil
}

func NewCreateTransactionFromCbor(data []byte) (*CreateTransaction, error) {
	var createTx CreateTransaction
	if _, err := cbor.Decode(data, &createTx); err != nil {
		return nil, fmt.Errorf("Create transaction decode error: %w", err)
	}
	if createTx.TxType != TxTypeCreate {
		return nil, fmt.Errorf(
			"Create transaction decode error: unexpected transaction type %d",
			createTx.TxType,
		)
	}
	return &createTx, nil
}
