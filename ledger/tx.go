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

package ledger

import (
	"fmt"

	"github.com/blinklabs-io/fueltx/cbor"
	"github.com/blinklabs-io/fueltx/ledger/common"
	"github.com/blinklabs-io/fueltx/ledger/create"
	"github.com/blinklabs-io/fueltx/ledger/mint"
	"github.com/blinklabs-io/fueltx/ledger/script"
)

// Compatibility aliases
type (
	Transaction       = common.Transaction
	ScriptTransaction = script.ScriptTransaction
	CreateTransaction = create.CreateTransaction
	MintTransaction   = mint.MintTransaction
)

const (
	TxTypeScript = common.TxTypeScript
	TxTypeCreate = common.TxTypeCreate
	TxTypeMint   = common.TxTypeMint
)

func NewTransactionFromCbor(txType uint, data []byte) (Transaction, error) {
	switch txType {
	case TxTypeScript:
		return script.NewScriptTransactionFromCbor(data)
	case TxTypeCreate:
		return create.NewCreateTransactionFromCbor(data)
	case TxTypeMint:
		return mint.NewMintTransactionFromCbor(data)
	}
	return nil, fmt.Errorf("unknown transaction type: %d", txType)
}

// DetermineTransactionType returns the type tag leading the encoded transaction
func DetermineTransactionType(data []byte) (uint, error) {
	txType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return 0, fmt.Errorf("unknown transaction type: %w", err)
	}
	return uint(txType), nil
}
