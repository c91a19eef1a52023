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
	"fmt"

	"github.com/blinklabs-io/fueltx/cbor"
	"github.com/blinklabs-io/fueltx/ledger/common"
)

const TxTypeMint = common.TxTypeMint

var _ common.Transaction = (*MintTransaction)(nil)

// MintTransaction is authored by the block producer to mint the block reward.
// It has no witnesses and is never signed
type MintTransaction struct {
	cbor.StructAsArray
	TxType         uint
	TxPointer      common.TxPointer
	InputContract  common.ContractInput
	OutputContract common.ContractOutput
	MintAmount     uint64
	MintAssetId    common.AssetId
	GasPrice       uint64
	metadata       *common.TxMetadata
}

func NewMintTransaction(
	txPointer common.TxPointer,
	inputContract common.ContractInput,
	outputContract common.ContractOutput,
	mintAmount uint64,
	mintAssetId common.AssetId,
	gasPrice uint64,
) *MintTransaction {
	inputContract.InputType = common.InputTypeContract
	outputContract.OutputType = common.OutputTypeContract
	return &MintTransaction{
		TxType:         TxTypeMint,
		TxPointer:      txPointer,
		InputContract:  inputContract,
		OutputContract: outputContract,
		MintAmount:     mintAmount,
		MintAssetId:    mintAssetId,
		GasPrice:       gasPrice,
	}
}

func (t *MintTransaction) Type() int {
	return TxTypeMint
}

func (t *MintTransaction) signingBody() *MintTransaction {
	return &MintTransaction{
		TxType:         t.TxType,
		TxPointer:      t.TxPointer,
		InputContract:  t.InputContract.PrepareSign(),
		OutputContract: t.OutputContract.PrepareSign(),
		MintAmount:     t.MintAmount,
		MintAssetId:    t.MintAssetId,
		GasPrice:       t.GasPrice,
	}
}

func (t *MintTransaction) id(chainId common.ChainId) (common.Blake2b256, error) {
	bodyCbor, err := cbor.Encode(t.signingBody())
	if err != nil {
		return common.Blake2b256{}, common.EncodingError{
			Item:  "mint transaction body",
			Index: -1,
			Err:   err,
		}
	}
	return common.ComputeTxId(chainId, bodyCbor), nil
}

func (t *MintTransaction) Id(chainId common.ChainId) common.Blake2b256 {
	return common.ComputeTxId(chainId, cbor.MustEncode(t.signingBody()))
}

func (t *MintTransaction) Metadata() *common.TxMetadata {
	return t.metadata
}

func (t *MintTransaction) Cbor() []byte {
	// This should never fail, since every field has a fixed encoding
	cborData, err := cbor.Encode(t)
	if err != nil {
		return nil
	}
	return cborData
}

// Precompute caches the id along with roots over the single contract input
// and output. The witnesses root is the empty root
func (t *MintTransaction) Precompute(chainId common.ChainId) error {
	txId, err := t.id(chainId)
	if err != nil {
		return err
	}
	metadata, err := common.NewTxMetadata(
		txId,
		[]common.InputWrapper{common.NewInputWrapper(t.InputContract)},
		[]common.OutputWrapper{common.NewOutputWrapper(t.OutputContract)},
		nil,
	)
	if err != nil {
		return err
	}
	t.metadata = metadata
	return nil
}

func (t *MintTransaction) IsComputed() bool {
	return t.metadata != nil
}

func (t *MintTransaction) Clone() *MintTransaction {
	ret := *t
	if t.metadata != nil {
		tmpMetadata := *t.metadata
		ret.metadata = &tmpMetadata
	}
	return &ret
}

// Inputs returns the contract input. Mint transactions cannot gain inputs
func (t *MintTransaction) Inputs() []common.Input {
	return []common.Input{t.InputContract}
}

// Outputs returns the contract output. Mint transactions cannot gain outputs
func (t *MintTransaction) Outputs() []common.Output {
	return []common.Output{t.OutputContract}
}

func (t *MintTransaction) Witnesses() []common.Witness {
	return nil
}

func NewMintTransactionFromCbor(data []byte) (*MintTransaction, error) {
	var mintTx MintTransaction
	if _, err := cbor.Decode(data, &mintTx); err != nil {
		return nil, fmt.Errorf("Mint transaction decode error: %w", err)
	}
	if mintTx.TxType != TxTypeMint {
		return nil, fmt.Errorf(
			"Mint transaction decode error: unexpected transaction type %d",
			mintTx.TxType,
		)
	}
	return &mintTx, nil
}
