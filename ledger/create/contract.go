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

package create

import (
	"github.com/blinklabs-io/fueltx/ledger/common"
)

const (
	// BytecodeChunkSize is the leaf size of the bytecode merkle tree
	BytecodeChunkSize = 16 * 1024

	bytecodeWordSize = 8
)

var contractIdSeed = []byte("FUEL")

// BytecodeRoot returns the merkle root over the bytecode split into
// BytecodeChunkSize leaves. The final leaf is zero padded to a whole number of
// words
func BytecodeRoot(bytecode []byte) common.Bytes32 {
	var leaves [][]byte
	for start := 0; start < len(bytecode); start += BytecodeChunkSize {
		end := min(start+BytecodeChunkSize, len(bytecode))
		chunk := bytecode[start:end]
		if rem := len(chunk) % bytecodeWordSize; rem != 0 {
			padded := make([]byte, len(chunk)+bytecodeWordSize-rem)
			copy(padded, chunk)
			chunk = padded
		}
		leaves = append(leaves, chunk)
	}
	return common.Bytes32(common.MerkleRoot(leaves))
}

// ComputeContractId derives the id of a contract from its deployment salt,
// bytecode root and initial state root
func ComputeContractId(
	salt common.Salt,
	bytecodeRoot common.Bytes32,
	stateRoot common.Bytes32,
) common.ContractId {
	buf := make([]byte, 0, len(contractIdSeed)+3*common.Bytes32Size)
	buf = append(buf, contractIdSeed...)
	buf = append(buf, salt[:]...)
	buf = append(buf, bytecodeRoot[:]...)
	buf = append(buf, stateRoot[:]...)
	return common.ContractId(common.Blake2b256Hash(buf))
}
