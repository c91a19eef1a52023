// Copyright 2023 Blink Labs, LLC.
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


package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/blinklabs-io/fueltx/builder"
	"github.com/blinklabs-io/fueltx/cmd/common"
	"github.com/blinklabs-io/fueltx/crypto"
	"github.com/blinklabs-io/fueltx/ledger"
	lcommon "github.com/blinklabs-io/fueltx/ledger/common"
	"github.com/cockroachdb/errors"
)

const (
	kindScript = "script"
	kindCreate = "create"
	kindMint   = "mint"
)

type txBuilderFlags struct {
	*common.GlobalFlags
	kind          string
	scriptHex     string
	scriptDataHex string
	bytecodeHex   string
	saltHex       string
	keyHex        []string
	amount        uint64
	gasLimit      uint64
	tip           uint64
	maxFee        uint64
	unsigned      bool
}

func main() {
	// Parse commandline
	f := txBuilderFlags{
		GlobalFlags: common.NewGlobalFlags(),
	}
	f.Flagset.StringVar(
		&f.kind,
		"kind",
		kindScript,
		"transaction kind to build: script, create or mint",
	)
	f.Flagset.StringVar(&f.scriptHex, "script-hex", "", "script bytecode as hex")
	f.Flagset.StringVar(&f.scriptDataHex, "script-data-hex", "", "script data as hex")
	f.Flagset.StringVar(&f.bytecodeHex, "bytecode-hex", "", "contract bytecode as hex")
	f.Flagset.StringVar(&f.saltHex, "salt-hex", "", "contract salt as hex")
	f.Flagset.StringArrayVar(
		&f.keyHex,
		"key-hex",
		nil,
		"secret key as hex. each key adds one coin input (may be repeated)",
	)
	f.Flagset.Uint64Var(
		&f.amount,
		"amount",
		0,
		"amount of each coin input, or the mint amount",
	)
	f.Flagset.Uint64Var(&f.gasLimit, "gas-limit", 0, "script gas limit")
	f.Flagset.Uint64Var(&f.tip, "tip", 0, "tip policy")
	f.Flagset.Uint64Var(&f.maxFee, "max-fee", 0, "max fee policy")
	f.Flagset.BoolVar(
		&f.unsigned,
		"unsigned",
		false,
		"finalize without signing",
	)
	f.Parse()
	logger := f.Logger()

	params, err := f.ConsensusParameters()
	if err != nil {
		fmt.Printf("ERROR: failed to load consensus parameters: %s\n", err)
		os.Exit(1)
	}
	keys, err := parseKeys(f.keyHex)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	tx, err := buildTransaction(&f, params, keys, logger)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transaction type: %d\n", tx.Type())
	fmt.Printf("Transaction ID:   %s\n", tx.Metadata().Id.String())
	for _, key := range keys {
		fmt.Printf(
			"Owner:            %s\n",
			lcommon.InputOwner(key.PublicKey()).Bech32(),
		)
	}
	fmt.Printf("CBOR:             %s\n", hex.EncodeToString(tx.Cbor()))
}

func parseKeys(keyHex []string) ([]crypto.SecretKey, error) {
	ret := make([]crypto.SecretKey, 0, len(keyHex))
	for idx, tmpKeyHex := range keyHex {
		key, err := crypto.NewSecretKeyFromHex(tmpKeyHex)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid key %d", idx)
		}
		ret = append(ret, key)
	}
	return ret, nil
}

func decodeHexFlag(name string, value string) ([]byte, error) {
	ret, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", name)
	}
	return ret, nil
}

func buildTransaction(
	f *txBuilderFlags,
	params lcommon.ConsensusParameters,
	keys []crypto.SecretKey,
	logger *slog.Logger,
) (ledger.Transaction, error) {
	opts := []builder.BuilderOptionFunc{
		builder.WithLogger(logger),
		builder.WithConsensusParameters(params),
	}
	switch f.kind {
	case kindScript:
		scriptCode, err := decodeHexFlag("script-hex", f.scriptHex)
		if err != nil {
			return nil, err
		}
		scriptData, err := decodeHexFlag("script-data-hex", f.scriptDataHex)
		if err != nil {
			return nil, err
		}
		b := builder.NewScript(scriptCode, scriptData, opts...)
		builder.ScriptGasLimit(b, f.gasLimit)
		return finalize(b, f, params, keys), nil
	case kindCreate:
		bytecode, err := decodeHexFlag("bytecode-hex", f.bytecodeHex)
		if err != nil {
			return nil, err
		}
		saltBytes, err := decodeHexFlag("salt-hex", f.saltHex)
		if err != nil {
			return nil, err
		}
		var salt lcommon.Salt
		if len(saltBytes) > len(salt) {
			return nil, fmt.Errorf(
				"invalid --salt-hex: too long (%d bytes)",
				len(saltBytes),
			)
		}
		copy(salt[len(salt)-len(saltBytes):], saltBytes)
		b := builder.NewCreate(bytecode, salt, nil, opts...)
		return finalize(b, f, params, keys), nil
	case kindMint:
		if len(keys) > 0 {
			return nil, errors.New("mint transactions cannot be signed")
		}
		b := builder.NewMint(
			0,
			0,
			lcommon.ContractInput{},
			lcommon.ContractOutput{},
			f.amount,
			params.BaseAssetId,
			0,
			opts...,
		)
		return b.FinalizeAsTransaction(), nil
	}
	return nil, fmt.Errorf("unknown transaction kind: %s", f.kind)
}

// finalize adds one coin input per key and a change output back to the first
// key before finalizing
func finalize[T builder.Buildable[T]](
	b *builder.TransactionBuilder[T],
	f *txBuilderFlags,
	params lcommon.ConsensusParameters,
	keys []crypto.SecretKey,
) ledger.Transaction {
	for idx, key := range keys {
		b.AddUnsignedCoinInput(
			key,
			lcommon.NewUtxoId(lcommon.Blake2b256{}, uint16(idx)),
			f.amount,
			params.BaseAssetId,
			lcommon.TxPointer{},
		)
	}
	if len(keys) > 0 {
		b.AddOutput(
			lcommon.NewChangeOutput(
				lcommon.InputOwner(keys[0].PublicKey()),
				0,
				params.BaseAssetId,
			),
		)
	}
	if f.Flagset.Changed("tip") {
		b.Tip(f.tip)
	}
	b.MaxFeeLimit(f.maxFee)
	if f.unsigned {
		return b.FinalizeWithoutSignatureAsTransaction()
	}
	return b.FinalizeAsTransaction()
}
