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

const (
	merkleLeafPrefix = 0x00
	merkleNodePrefix = 0x01
)

// MerkleRoot computes the root of a binary merkle tree over the provided leaves.
// Leaves and nodes are domain separated (RFC 6962). An unbalanced tree is split
// at the largest power of two smaller than the leaf count. The root of an
// empty tree is the hash of no data.
func MerkleRoot(leaves [][]byte) Blake2b256 {
	if len(leaves) == 0 {
		return Blake2b256Hash(nil)
	}
	return merkleSubtreeRoot(leaves)
}

func merkleSubtreeRoot(leaves [][]byte) Blake2b256 {
	if len(leaves) == 1 {
		return merkleLeafHash(leaves[0])
	}
	split := 1
	for split*2 < len(leaves) {
		split *= 2
	}
	left := merkleSubtreeRoot(leaves[:split])
	right := merkleSubtreeRoot(leaves[split:])
	return merkleNodeHash(left, right)
}

func merkleLeafHash(data []byte) Blake2b256 {
	buf := make([]byte, 0, 1+len(data))
	buf = append(buf, merkleLeafPrefix)
	buf = append(buf, data...)
	return Blake2b256Hash(buf)
}

func merkleNodeHash(left Blake2b256, right Blake2b256) Blake2b256 {
	buf := make([]byte, 0, 1+2*Blake2b256Size)
	buf = append(buf, merkleNodePrefix)
	buf = append(buf, left[:]...)
	buf = append(buf, right[:]...)
	return Blake2b256Hash(buf)
}
