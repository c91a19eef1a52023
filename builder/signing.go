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
	"math"
	"math/rand"

	"github.com/blinklabs-io/fueltx/crypto"
	"github.com/blinklabs-io/fueltx/ledger/common"
	"github.com/cockroachdb/errors"
)

// randomFeeInputSeed makes AddRandomFeeInput produce the same input every time
const randomFeeInputSeed = 2322

func secretKeyComparator(a, b any) int {
	return a.(crypto.SecretKey).Compare(b.(crypto.SecretKey))
}

// upsertSecret returns the witness index of key, assigning the next free
// witness slot if the key has not been seen before. More distinct keys than
// there are one-byte witness indexes is a programming error and panics
func (b *TransactionBuilder[T]) upsertSecret(key crypto.SecretKey) uint8 {
	if witnessIdx, found := b.signingKeys.Get(key); found {
		return witnessIdx.(uint8)
	}
	witnessCount := len(b.tx.Witnesses())
	if witnessCount > math.MaxUint8 {
		panic(
			errors.AssertionFailedf(
				"witness index %d does not fit in one byte",
				witnessCount,
			),
		)
	}
	witnessIdx := uint8(witnessCount)
	b.tx.AddWitness(common.Witness{})
	b.signingKeys.Put(key, witnessIdx)
	b.logger.Debug(
		"registered signing key",
		"component", "builder",
		"witness_index", witnessIdx,
		"signing_keys", b.signingKeys.Size(),
	)
	return witnessIdx
}

// SignKeys returns the registered signing keys in key-byte order
func (b *TransactionBuilder[T]) SignKeys() []crypto.SecretKey {
	ret := make([]crypto.SecretKey, 0, b.signingKeys.Size())
	for _, key := range b.signingKeys.Keys() {
		ret = append(ret, key.(crypto.SecretKey))
	}
	return ret
}

// AddUnsignedCoinInput adds a coin input owned by key. The input is signed by
// key when the transaction is finalized
func (b *TransactionBuilder[T]) AddUnsignedCoinInput(
	key crypto.SecretKey,
	utxoId common.UtxoId,
	amount uint64,
	assetId common.AssetId,
	txPointer common.TxPointer,
) *TransactionBuilder[T] {
	owner := common.InputOwner(key.PublicKey())
	witnessIdx := b.upsertSecret(key)
	b.tx.AddInput(
		common.NewCoinSignedInput(
			utxoId,
			owner,
			amount,
			assetId,
			txPointer,
			witnessIdx,
		),
	)
	return b
}

// AddUnsignedMessageInput adds a message input whose recipient is owned by
// key. Messages without data carry only a coin amount
func (b *TransactionBuilder[T]) AddUnsignedMessageInput(
	key crypto.SecretKey,
	sender common.Address,
	nonce common.Nonce,
	amount uint64,
	data []byte,
) *TransactionBuilder[T] {
	recipient := common.InputOwner(key.PublicKey())
	witnessIdx := b.upsertSecret(key)
	var input common.Input
	if len(data) == 0 {
		input = common.NewMessageCoinSignedInput(
			sender,
			recipient,
			amount,
			nonce,
			witnessIdx,
		)
	} else {
		input = common.NewMessageDataSignedInput(
			sender,
			recipient,
			amount,
			nonce,
			witnessIdx,
			bytes.Clone(data),
		)
	}
	b.tx.AddInput(input)
	return b
}

// AddRandomFeeInput adds a coin input with a random amount and asset signed by
// a random key. The values come from a fixed seed, so repeated calls add the
// same input and reuse the same witness
func (b *TransactionBuilder[T]) AddRandomFeeInput() *TransactionBuilder[T] {
	rng := rand.New(rand.NewSource(randomFeeInputSeed)) //nolint:gosec
	key, err := crypto.GenerateSecretKey(rng)
	if err != nil {
		panic(
			errors.NewAssertionErrorWithWrappedErrf(
				err,
				"failed to generate fee input key",
			),
		)
	}
	var txId common.Blake2b256
	var assetId common.AssetId
	_, _ = rng.Read(txId[:])
	_, _ = rng.Read(assetId[:])
	return b.AddUnsignedCoinInput(
		key,
		common.NewUtxoId(txId, uint16(rng.Uint32())),
		rng.Uint64(),
		assetId,
		common.TxPointer{},
	)
}
