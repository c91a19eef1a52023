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

package script

import (
	"bytes"
	"fmt"

	"github.com/blinklabs-io/fueltx/cbor"
	"github.com/blinklabs-io/fueltx/crypto"
	"github.com/blinklabs-io/fueltx/ledger/common"
)

const TxTypeScript = common.TxTypeScript

// Compile-time interface checks
var (
	_ common.Transaction = (*ScriptTransaction)(nil)
	_ common.Signable    = (*ScriptTransaction)(nil)
	_ common.Chargeable  = (*ScriptTransaction)(nil)
	_ common.Accumulator = (*ScriptTransaction)(nil)
)

// ScriptTransaction runs a script against the inputs it spends
type ScriptTransaction struct {
	cbor.StructAsArray
	TxType         uint
	ScriptGasLimit uint64
	ReceiptsRoot   common.Bytes32
	Script         []byte
	ScriptData     []byte
	TxPolicies     common.Policies
	TxInputs       []common.InputWrapper
	TxOutputs      []common.OutputWrapper
	TxWitnesses    []common.Witness
	metadata       *common.TxMetadata
}

func NewScriptTransaction(
	scriptGasLimit uint64,
	script []byte,
	scriptData []byte,
) *ScriptTransaction {
	return &ScriptTransaction{
		TxType:         TxTypeScript,
		ScriptGasLimit: scriptGasLimit,
		Script:         script,
		ScriptData:     scriptData,
		TxPolicies:     common.NewPolicies(),
	}
}

func (t *ScriptTransaction) Type() int {
	return TxTypeScript
}

func (t *ScriptTransaction) signingBody() *ScriptTransaction {
	return &ScriptTransaction{
		TxType:         t.TxType,
		ScriptGasLimit: t.ScriptGasLimit,
		Script:         t.Script,
		ScriptData:     t.ScriptData,
		TxPolicies:     t.TxPolicies,
		TxInputs:       common.PrepareInputsForSigning(t.TxInputs),
		TxOutputs:      common.PrepareOutputsForSigning(t.TxOutputs),
	}
}

func (t *ScriptTransaction) id(chainId common.ChainId) (common.Blake2b256, error) {
	bodyCbor, err := cbor.Encode(t.signingBody())
	if err != nil {
		return common.Blake2b256{}, common.EncodingError{
			Item:  "script transaction body",
			Index: -1,
			Err:   err,
		}
	}
	return common.ComputeTxId(chainId, bodyCbor), nil
}

func (t *ScriptTransaction) Id(chainId common.ChainId) common.Blake2b256 {
	return common.ComputeTxId(chainId, cbor.MustEncode(t.signingBody()))
}

func (t *ScriptTransaction) Metadata() *common.TxMetadata {
	return t.metadata
}

func (t *ScriptTransaction) Cbor() []byte {
	// This should never fail, since every field has a fixed encoding
	cborData, err := cbor.Encode(t)
	if err != nil {
		return nil
	}
	return cborData
}

func (t *ScriptTransaction) Precompute(chainId common.ChainId) error {
	txId, err := t.id(chainId)
	if err != nil {
		return err
	}
	metadata, err := common.NewTxMetadata(
		txId,
		t.TxInputs,
		t.TxOutputs,
		t.TxWitnesses,
	)
	if err != nil {
		return err
	}
	t.metadata = metadata
	return nil
}

func (t *ScriptTransaction) IsComputed() bool {
	return t.metadata != nil
}

func (t *ScriptTransaction) SignInputs(
	key crypto.SecretKey,
	chainId common.ChainId,
) {
	common.SignInputs(t.TxInputs, t.TxWitnesses, key, t.Id(chainId))
	t.metadata = nil
}

// Clone returns a deep copy of the transaction, including any cached metadata
func (t *ScriptTransaction) Clone() *ScriptTransaction {
	ret := &ScriptTransaction{
		TxType:         t.TxType,
		ScriptGasLimit: t.ScriptGasLimit,
		ReceiptsRoot:   t.ReceiptsRoot,
		Script:         bytes.Clone(t.Script),
		ScriptData:     bytes.Clone(t.ScriptData),
		TxPolicies:     t.TxPolicies,
		TxInputs:       common.CloneInputs(t.TxInputs),
		TxOutputs:      common.CloneOutputs(t.TxOutputs),
		TxWitnesses:    common.CloneWitnesses(t.TxWitnesses),
	}
	if t.metadata != nil {
		tmpMetadata := *t.metadata
		ret.metadata = &tmpMetadata
	}
	return ret
}

func (t *ScriptTransaction) SetScriptGasLimit(scriptGasLimit uint64) {
	t.ScriptGasLimit = scriptGasLimit
	t.metadata = nil
}

func (t *ScriptTransaction) Policies() common.Policies {
	return t.TxPolicies
}

func (t *ScriptTransaction) SetTip(tip uint64) {
	t.setPolicy(common.PolicyTypeTip, tip)
}

func (t *ScriptTransaction) SetMaturity(maturity common.BlockHeight) {
	t.setPolicy(common.PolicyTypeMaturity, uint64(maturity))
}

func (t *ScriptTransaction) SetWitnessLimit(witnessLimit uint64) {
	t.setPolicy(common.PolicyTypeWitnessLimit, witnessLimit)
}

func (t *ScriptTransaction) SetMaxFeeLimit(maxFee uint64) {
	t.setPolicy(common.PolicyTypeMaxFee, maxFee)
}

func (t *ScriptTransaction) setPolicy(policyType common.PolicyType, value uint64) {
	t.TxPolicies.Set(policyType, value)
	t.metadata = nil
}

func (t *ScriptTransaction) Inputs() []common.Input {
	return common.UnwrapInputs(t.TxInputs)
}

func (t *ScriptTransaction) Outputs() []common.Output {
	return common.UnwrapOutputs(t.TxOutputs)
}

func (t *ScriptTransaction) Witnesses() []common.Witness {
	return t.TxWitnesses
}

func (t *ScriptTransaction) AddInput(input common.Input) {
	t.TxInputs = append(t.TxInputs, common.NewInputWrapper(input))
	t.metadata = nil
}

func (t *ScriptTransaction) AddOutput(output common.Output) {
	t.TxOutputs = append(t.TxOutputs, common.NewOutputWrapper(output))
	t.metadata = nil
}

func (t *ScriptTransaction) AddWitness(witness common.Witness) {
	t.TxWitnesses = append(t.TxWitnesses, witness)
	t.metadata = nil
}

func NewScriptTransactionFromCbor(data []byte) (*ScriptTransaction, error) {
	var scriptTx ScriptTransaction
	if _, err := cbor.Decode(data, &scriptTx); err != nil {
		return nil, fmt.Errorf("Script transaction decode error: %w", err)
	}
	if scriptTx.TxType != TxTypeScript {
		return nil, fmt.Errorf(
			"Script transaction decode error: unexpected transaction type %d",
			scriptTx.TxType,
		)
	}
	return &scriptTx, nil
}
