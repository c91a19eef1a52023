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

	"github.com/blinklabs-io/fueltx/crypto"
	"github.com/blinklabs-io/fueltx/ledger"
	"github.com/blinklabs-io/fueltx/ledger/common"
	"github.com/cockroachdb/errors"
)

// Finalize returns a signed and precomputed copy of the draft. Every
// registered key signs, in key-byte order, the inputs that refer to its
// witness. The builder is not modified
func (b *TransactionBuilder[T]) Finalize() T {
	tx := b.tx.Clone()
	chainId := b.ChainId()
	for _, key := range b.signingKeys.Keys() {
		tx.SignInputs(key.(crypto.SecretKey), chainId)
	}
	precompute(b.logger, tx, chainId, true)
	return tx
}

// FinalizeWithoutSignature returns a precomputed copy of the draft. Witness
// slots of signing keys are left empty
func (b *TransactionBuilder[T]) FinalizeWithoutSignature() T {
	tx := b.tx.Clone()
	precompute(b.logger, tx, b.ChainId(), false)
	return tx
}

func (b *TransactionBuilder[T]) FinalizeAsTransaction() ledger.Transaction {
	return b.Finalize()
}

func (b *TransactionBuilder[T]) FinalizeWithoutSignatureAsTransaction() ledger.Transaction {
	return b.FinalizeWithoutSignature()
}

// precompute caches the canonical values of an assembled transaction. A failure
// means the builder produced a malformed draft and panics
func precompute(
	logger *slog.Logger,
	tx common.Transaction,
	chainId common.ChainId,
	signed bool,
) {
	if err := tx.Precompute(chainId); err != nil {
		panic(
			errors.NewAssertionErrorWithWrappedErrf(
				err,
				"failed to precompute finalized transaction",
			),
		)
	}
	logger.Debug(
		"finalized transaction",
		"component", "builder",
		"tx_type", tx.Type(),
		"tx_id", tx.Metadata().Id.String(),
		"chain_id", uint64(chainId),
		"signed", signed,
	)
}
