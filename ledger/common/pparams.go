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
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

type TxParameters struct {
	MaxInputs              uint16 `json:"maxInputs"`
	MaxOutputs             uint16 `json:"maxOutputs"`
	MaxWitnesses           uint32 `json:"maxWitnesses"`
	MaxGasPerTx            uint64 `json:"maxGasPerTx"`
	MaxSize                uint64 `json:"maxSize"`
	MaxBytecodeSubsections uint16 `json:"maxBytecodeSubsections"`
}

type PredicateParameters struct {
	MaxPredicateLength     uint64 `json:"maxPredicateLength"`
	MaxPredicateDataLength uint64 `json:"maxPredicateDataLength"`
	MaxMessageDataLength   uint64 `json:"maxMessageDataLength"`
	MaxGasPerPredicate     uint64 `json:"maxGasPerPredicate"`
}

type ScriptParameters struct {
	MaxScriptLength     uint64 `json:"maxScriptLength"`
	MaxScriptDataLength uint64 `json:"maxScriptDataLength"`
}

type ContractParameters struct {
	ContractMaxSize uint64 `json:"contractMaxSize"`
	MaxStorageSlots uint64 `json:"maxStorageSlots"`
}

type FeeParameters struct {
	GasPriceFactor uint64 `json:"gasPriceFactor"`
	GasPerByte     uint64 `json:"gasPerByte"`
}

// ConsensusParameters groups every chain parameter a transaction is built
// against. Values are not validated
type ConsensusParameters struct {
	TxParams        TxParameters        `json:"txParams"`
	PredicateParams PredicateParameters `json:"predicateParams"`
	ScriptParams    ScriptParameters    `json:"scriptParams"`
	ContractParams  ContractParameters  `json:"contractParams"`
	FeeParams       FeeParameters       `json:"feeParams"`
	ChainId         ChainId             `json:"chainId"`
	BaseAssetId     AssetId             `json:"baseAssetId"`
	GasCosts        GasCosts            `json:"gasCosts"`
}

const (
	standardMaxInputs       = 255
	standardMaxOutputs      = 255
	standardMaxWitnesses    = 255
	standardMaxGasPerTx     = 100_000_000
	standardMaxSize         = 110 * 1024
	standardMaxSubsections  = 256
	standardMaxPredicateLen = 1024 * 1024
	standardMaxScriptLen    = 1024 * 1024
	standardMaxMessageLen   = 1024 * 1024
	standardMaxPredicateGas = 1_000_000
	standardContractMaxSize = 16 * 1024 * 1024
	standardMaxStorageSlots = 255
	standardGasPriceFactor  = 1_000_000_000
	standardGasPerByte      = 4
)

func StandardTxParameters() TxParameters {
	return TxParameters{
		MaxInputs:              standardMaxInputs,
		MaxOutputs:             standardMaxOutputs,
		MaxWitnesses:           standardMaxWitnesses,
		MaxGasPerTx:            standardMaxGasPerTx,
		MaxSize:                standardMaxSize,
		MaxBytecodeSubsections: standardMaxSubsections,
	}
}

func StandardPredicateParameters() PredicateParameters {
	return PredicateParameters{
		MaxPredicateLength:     standardMaxPredicateLen,
		MaxPredicateDataLength: standardMaxPredicateLen,
		MaxMessageDataLength:   standardMaxMessageLen,
		MaxGasPerPredicate:     standardMaxPredicateGas,
	}
}

func StandardScriptParameters() ScriptParameters {
	return ScriptParameters{
		MaxScriptLength:     standardMaxScriptLen,
		MaxScriptDataLength: standardMaxScriptLen,
	}
}

func StandardContractParameters() ContractParameters {
	return ContractParameters{
		ContractMaxSize: standardContractMaxSize,
		MaxStorageSlots: standardMaxStorageSlots,
	}
}

func StandardFeeParameters() FeeParameters {
	return FeeParameters{
		GasPriceFactor: standardGasPriceFactor,
		GasPerByte:     standardGasPerByte,
	}
}

// StandardConsensusParameters returns the default parameter profile: chain id
// 0, the zero base asset and the default gas cost table
func StandardConsensusParameters() ConsensusParameters {
	return ConsensusParameters{
		TxParams:        StandardTxParameters(),
		PredicateParams: StandardPredicateParameters(),
		ScriptParams:    StandardScriptParameters(),
		ContractParams:  StandardContractParameters(),
		FeeParams:       StandardFeeParameters(),
		GasCosts:        DefaultGasCosts(),
	}
}

// NewConsensusParametersFromReader loads parameters from JSON or YAML. Fields
// absent from the input keep their standard values
func NewConsensusParametersFromReader(r io.Reader) (ConsensusParameters, error) {
	ret := StandardConsensusParameters()
	data, err := io.ReadAll(r)
	if err != nil {
		return ret, errors.Wrap(err, "read consensus parameters")
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ret, nil
	}
	// YAML is a superset of JSON, so both go through the YAML decoder
	var tmp map[string]any
	if err := yaml.Unmarshal(data, &tmp); err != nil {
		return ret, errors.Wrap(err, "decode consensus parameters")
	}
	jsonData, err := json.Marshal(tmp)
	if err != nil {
		return ret, errors.Wrap(err, "convert consensus parameters")
	}
	if err := json.Unmarshal(jsonData, &ret); err != nil {
		return ret, errors.Wrap(err, "decode consensus parameters")
	}
	return ret, nil
}

// NewConsensusParametersFromFile loads parameters from the file at path
func NewConsensusParametersFromFile(path string) (ConsensusParameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return ConsensusParameters{}, errors.Wrapf(
			err,
			"open consensus parameters file %s",
			path,
		)
	}
	defer f.Close()
	return NewConsensusParametersFromReader(f)
}
