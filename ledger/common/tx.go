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

package common

import (
	"github.com/blinklabs-io/fueltx/cbor"
	"github.com/blinklabs-io/fueltx/crypto"
)

const (
	TxTypeScript = 0
	TxTypeCreate = 1
	TxTypeMint   = 2
)

// Transaction is the unified view over every transaction kind
type Transaction interface {
	Type() int
	// Id computes the transaction id for the given chain. It does not depend on
	// witnesses, so signing does not change it
	Id(chainId ChainId) Blake2b256
	// Metadata returns the values cached by Precompute, or nil
	Metadata() *TxMetadata
	Cbor() []byte
	Cacheable
}

// Cacheable transactions can compute and cache their canonical derived values
type Cacheable interface {
	// Precompute fills in the cached metadata. It only fails if the
	// transaction is malformed in a way that prevents computing it
	Precompute(chainId ChainId) error
	IsComputed() bool
}

// Signable transactions accept signatures for their key-signed inputs
type Signable interface {
	// SignInputs signs the transaction id with key and writes the signature into
	// every witness slot referenced by an input owned by the key
	SignInputs(key crypto.SecretKey, chainId ChainId)
}

// Chargeable transactions carry fee and limit policies
type Chargeable interface {
	Policies() Policies
	SetTip(tip uint64)
	SetMaturity(maturity BlockHeight)
	SetWitnessLimit(witnessLimit uint64)
	SetMaxFeeLimit(maxFee uint64)
}

// Accumulator transactions hold append-only input, output and witness sequences
type Accumulator interface {
	Inputs() []Input
	Outputs() []Output
	Witnesses() []Witness
	AddInput(input Input)
	AddOutput(output Output)
	AddWitness(witness Witness)
}

// TxMetadata holds the canonical values derived from an assembled transaction
type TxMetadata struct {
	Id            Blake2b256
	InputsRoot    Blake2b256
	OutputsRoot   Blake2b256
	WitnessesRoot Blake2b256
}

// ComputeTxId hashes the chain id together with the encoded signing body
func ComputeTxId(chainId ChainId, signingBodyCbor []byte) Blake2b256 {
	buf := make([]byte, 0, 8+len(signingBodyCbor))
	buf = append(buf, chainId.Bytes()...)
	buf = append(buf, signingBodyCbor...)
	return Blake2b256Hash(buf)
}

// NewTxMetadata computes the merkle roots over the transaction's inputs,
// outputs and witnesses
func NewTxMetadata(
	id Blake2b256,
	inputs []InputWrapper,
	outputs []OutputWrapper,
	witnesses []Witness,
) (*TxMetadata, error) {
	inputLeaves, err := encodeLeaves(inputs)
	if err != nil {
		return nil, err
	}
	outputLeaves, err := encodeLeaves(outputs)
	if err != nil {
		return nil, err
	}
	witnessLeaves := make([][]byte, 0, len(witnesses))
	for _, w := range witnesses {
		witnessLeaves = append(witnessLeaves, w.Bytes())
	}
	return &TxMetadata{
		Id:            id,
		InputsRoot:    MerkleRoot(inputLeaves),
		OutputsRoot:   MerkleRoot(outputLeaves),
		WitnessesRoot: MerkleRoot(witnessLeaves),
	}, nil
}

func encodeLeaves[T any](items []T) ([][]byte, error) {
	ret := make([][]byte, 0, len(items))
	for idx := range items {
		data, err := cbor.Encode(&items[idx])
		if err != nil {
			return nil, EncodingError{Item: "leaf", Index: idx, Err: err}
		}
		ret = append(ret, data)
	}
	return ret, nil
}
