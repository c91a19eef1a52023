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
	"log/slog"

	"github.com/blinklabs-io/fueltx/ledger/common"
	"github.com/cockroachdb/errors"
	"github.com/jinzhu/copier"
)

// paramsHolder keeps the consensus parameter snapshot of a builder. The
// setters return owner so they can be chained on the concrete builder
type paramsHolder[B any] struct {
	owner  B
	params common.ConsensusParameters
	logger *slog.Logger
}

func newParamsHolder[B any](owner B, opts builderOptions) paramsHolder[B] {
	ret := paramsHolder[B]{
		owner:  owner,
		params: common.StandardConsensusParameters(),
		logger: opts.logger,
	}
	if opts.params != nil {
		ret.params = copyParams(*opts.params)
	}
	return ret
}

// copyParams returns a deep copy of params that shares no memory with it
func copyParams(params common.ConsensusParameters) common.ConsensusParameters {
	var ret common.ConsensusParameters
	err := copier.CopyWithOption(
		&ret,
		&params,
		copier.Option{DeepCopy: true},
	)
	if err != nil {
		panic(
			errors.NewAssertionErrorWithWrappedErrf(
				err,
				"failed to copy consensus parameters",
			),
		)
	}
	return ret
}

// Params returns a copy of the full parameter snapshot
func (h *paramsHolder[B]) Params() common.ConsensusParameters {
	return copyParams(h.params)
}

func (h *paramsHolder[B]) TxParams() common.TxParameters {
	return h.params.TxParams
}

func (h *paramsHolder[B]) PredicateParams() common.PredicateParameters {
	return h.params.PredicateParams
}

func (h *paramsHolder[B]) ScriptParams() common.ScriptParameters {
	return h.params.ScriptParams
}

func (h *paramsHolder[B]) ContractParams() common.ContractParameters {
	return h.params.ContractParams
}

func (h *paramsHolder[B]) FeeParams() common.FeeParameters {
	return h.params.FeeParams
}

func (h *paramsHolder[B]) ChainId() common.ChainId {
	return h.params.ChainId
}

func (h *paramsHolder[B]) BaseAssetId() common.AssetId {
	return h.params.BaseAssetId
}

func (h *paramsHolder[B]) GasCosts() common.GasCosts {
	return h.params.GasCosts
}

// WithParams replaces the whole parameter snapshot with a copy of params
func (h *paramsHolder[B]) WithParams(params common.ConsensusParameters) B {
	h.params = copyParams(params)
	return h.owner
}

func (h *paramsHolder[B]) WithTxParams(txParams common.TxParameters) B {
	h.params.TxParams = txParams
	return h.owner
}

func (h *paramsHolder[B]) WithPredicateParams(
	predicateParams common.PredicateParameters,
) B {
	h.params.PredicateParams = predicateParams
	return h.owner
}

func (h *paramsHolder[B]) WithScriptParams(
	scriptParams common.ScriptParameters,
) B {
	h.params.ScriptParams = scriptParams
	return h.owner
}

func (h *paramsHolder[B]) WithContractParams(
	contractParams common.ContractParameters,
) B {
	h.params.ContractParams = contractParams
	return h.owner
}

func (h *paramsHolder[B]) WithFeeParams(feeParams common.FeeParameters) B {
	h.params.FeeParams = feeParams
	return h.owner
}

func (h *paramsHolder[B]) WithChainId(chainId common.ChainId) B {
	h.params.ChainId = chainId
	return h.owner
}

func (h *paramsHolder[B]) WithBaseAssetId(baseAssetId common.AssetId) B {
	h.params.BaseAssetId = baseAssetId
	return h.owner
}

func (h *paramsHolder[B]) WithGasCosts(gasCosts common.GasCosts) B {
	h.params.GasCosts = gasCosts
	return h.owner
}
