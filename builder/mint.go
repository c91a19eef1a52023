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
	"github.com/blinklabs-io/fueltx/ledger"
	"github.com/blinklabs-io/fueltx/ledger/common"
	"github.com/blinklabs-io/fueltx/ledger/mint"
)

// MintBuilder assembles a mint transaction. Mint transactions are never signed
// and have a fixed shape, so there are no signing keys and no input, output or
// witness mutation
type MintBuilder struct {
	paramsHolder[*MintBuilder]
	tx *mint.MintTransaction
}

// NewMint returns a builder for the mint transaction at position txIndex of the
// block at blockHeight
func NewMint(
	blockHeight common.BlockHeight,
	txIndex uint16,
	inputContract common.ContractInput,
	outputContract common.ContractOutput,
	mintAmount uint64,
	mintAssetId common.AssetId,
	gasPrice uint64,
	opts ...BuilderOptionFunc,
) *MintBuilder {
	b := &MintBuilder{
		tx: mint.NewMintTransaction(
			common.NewTxPointer(blockHeight, txIndex),
			inputContract,
			outputContract,
			mintAmount,
			mintAssetId,
			gasPrice,
		),
	}
	b.paramsHolder = newParamsHolder(b, newBuilderOptions(opts))
	return b
}

// Finalize returns a precomputed copy of the draft. It is the same as
// FinalizeWithoutSignature
func (b *MintBuilder) Finalize() *mint.MintTransaction {
	return b.FinalizeWithoutSignature()
}

func (b *MintBuilder) FinalizeWithoutSignature() *mint.MintTransaction {
	tx := b.tx.Clone()
	precompute(b.logger, tx, b.ChainId(), false)
	return tx
}

func (b *MintBuilder) FinalizeAsTransaction() ledger.Transaction {
	return b.Finalize()
}

func (b *MintBuilder) FinalizeWithoutSignatureAsTransaction() ledger.Transaction {
	return b.FinalizeWithoutSignature()
}
