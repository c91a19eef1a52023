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

package builder

import (
	"bytes"

	"github.com/blinklabs-io/fueltx/ledger/common"
	"github.com/blinklabs-io/fueltx/ledger/create"
	"github.com/blinklabs-io/fueltx/ledger/script"
	"github.com/emirpasic/gods/maps/treemap"
)

// Buildable transactions support signing and input, output and witness
// mutation
type Buildable[T any] interface {
	common.Transaction
	common.Signable
	common.Chargeable
	common.Accumulator
	Clone() T
}

// ScriptBuildable transactions additionally carry a script gas limit
type ScriptBuildable[T any] interface {
	Buildable[T]
	SetScriptGasLimit(scriptGasLimit uint64)
}

// TransactionBuilder assembles a signable transaction
type TransactionBuilder[T Buildable[T]] struct {
	paramsHolder[*TransactionBuilder[T]]
	tx T
	// secret key -> witness index
	signingKeys *treemap.Map
}

func newTransactionBuilder[T Buildable[T]](
	tx T,
	opts []BuilderOptionFunc,
) *TransactionBuilder[T] {
	b := &TransactionBuilder[T]{
		tx:          tx,
		signingKeys: treemap.NewWith(secretKeyComparator),
	}
	b.paramsHolder = newParamsHolder(b, newBuilderOptions(opts))
	return b
}

// NewScript returns a builder for a transaction running script with
// scriptData as its input
func NewScript(
	scriptCode []byte,
	scriptData []byte,
	opts ...BuilderOptionFunc,
) *TransactionBuilder[*script.ScriptTransaction] {
	tx := script.NewScriptTransaction(
		0,
		bytes.Clone(scriptCode),
		bytes.Clone(scriptData),
	)
	tx.SetMaxFeeLimit(0)
	return newTransactionBuilder(tx, opts)
}

// NewCreate returns a builder for a transaction deploying bytecode. The
// bytecode occupies witness 0, so signing keys are assigned witness indexes
// starting at 1. The storage slots are sorted by key; the provided slice is not
// modified
func NewCreate(
	bytecode common.Witness,
	salt common.Salt,
	storageSlots []common.StorageSlot,
	opts ...BuilderOptionFunc,
) *TransactionBuilder[*create.CreateTransaction] {
	slots := make([]common.StorageSlot, len(storageSlots))
	copy(slots, storageSlots)
	common.SortStorageSlots(slots)
	tx := create.NewCreateTransaction(
		0,
		uint64(len(bytecode)/4),
		salt,
		slots,
	)
	tx.SetMaxFeeLimit(0)
	tx.AddWitness(common.Witness(bytes.Clone(bytecode)))
	return newTransactionBuilder(tx, opts)
}

// ScriptGasLimit sets the gas limit of the script run by the transaction. It
// is only available for transactions that run a script
func ScriptGasLimit[T ScriptBuildable[T]](
	b *TransactionBuilder[T],
	scriptGasLimit uint64,
) *TransactionBuilder[T] {
	b.tx.SetScriptGasLimit(scriptGasLimit)
	return b
}

func (b *TransactionBuilder[T]) Tip(tip uint64) *TransactionBuilder[T] {
	b.tx.SetTip(tip)
	return b
}

func (b *TransactionBuilder[T]) Maturity(
	maturity common.BlockHeight,
) *TransactionBuilder[T] {
	b.tx.SetMaturity(maturity)
	return b
}

func (b *TransactionBuilder[T]) WitnessLimit(
	witnessLimit uint64,
) *TransactionBuilder[T] {
	b.tx.SetWitnessLimit(witnessLimit)
	return b
}

func (b *TransactionBuilder[T]) MaxFeeLimit(maxFee uint64) *TransactionBuilder[T] {
	b.tx.SetMaxFeeLimit(maxFee)
	return b
}

// Policies returns the policies currently set on the draft
func (b *TransactionBuilder[T]) Policies() common.Policies {
	return b.tx.Policies()
}

// Inputs returns copies of the inputs added so far
func (b *TransactionBuilder[T]) Inputs() []common.Input {
	inputs := b.tx.Inputs()
	ret := make([]common.Input, 0, len(inputs))
	for _, input := range inputs {
		ret = append(ret, common.CloneInput(input))
	}
	return ret
}

func (b *TransactionBuilder[T]) Outputs() []common.Output {
	return b.tx.Outputs()
}

// Witnesses returns copies of the witnesses added so far
func (b *TransactionBuilder[T]) Witnesses() []common.Witness {
	return common.CloneWitnesses(b.tx.Witnesses())
}

// AddInput appends an input as is. Signed inputs added this way are only
// signed if their owner and witness index match a registered signing key
func (b *TransactionBuilder[T]) AddInput(input common.Input) *TransactionBuilder[T] {
	b.tx.AddInput(common.CloneInput(input))
	return b
}

func (b *TransactionBuilder[T]) AddOutput(output common.Output) *TransactionBuilder[T] {
	b.tx.AddOutput(output)
	return b
}

func (b *TransactionBuilder[T]) AddWitness(witness common.Witness) *TransactionBuilder[T] {
	b.tx.AddWitness(common.Witness(bytes.Clone(witness)))
	return b
}
