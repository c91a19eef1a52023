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
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerkleRoot(t *testing.T) {
	testDefs := []struct {
		name     string
		leaves   []string
		expected string
	}{
		{
			name:     "Empty",
			expected: "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
		{
			name:     "SingleLeaf",
			leaves:   []string{"a"},
			expected: "7234082e1dd0b5ec0acd71875d61c9f374af30c100bc4de7aa4eb3f15bbed686",
		},
		{
			name:     "TwoLeaves",
			leaves:   []string{"a", "b"},
			expected: "ee616625a590167bc4b3dc703ab4f3f2ddecbee6b9d05fee9281f02046e6082e",
		},
		{
			name:     "ThreeLeaves",
			leaves:   []string{"a", "b", "c"},
			expected: "17321db51c1ef3ec1f77e271aa300b4e5c6091708bcba37e46025774a26142ee",
		},
		{
			name:     "FiveLeaves",
			leaves:   []string{"a", "b", "c", "d", "e"},
			expected: "57d36622e3f900dadd327fb108b62e282cb8f65225ff24749df78d09176c1d0d",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			leaves := make([][]byte, 0, len(testDef.leaves))
			for _, leaf := range testDef.leaves {
				leaves = append(leaves, []byte(leaf))
			}
			root := MerkleRoot(leaves)
			assert.Equal(t, testDef.expected, hex.EncodeToString(root[:]))
		})
	}
}

func TestMerkleRootOrderMatters(t *testing.T) {
	a := MerkleRoot([][]byte{[]byte("a"), []byte("b")})
	b := MerkleRoot([][]byte{[]byte("b"), []byte("a")})
	assert.NotEqual(t, a, b)
}
