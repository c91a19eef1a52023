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

	"github.com/blinklabs-io/fueltx/cbor"
	"github.com/blinklabs-io/fueltx/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoliciesSetGet(t *testing.T) {
	p := NewPolicies()
	assert.True(t, p.IsEmpty())
	_, ok := p.Get(PolicyTypeTip)
	assert.False(t, ok)
	p.Set(PolicyTypeTip, 10)
	p.Set(PolicyTypeMaxFee, 0)
	tip, ok := p.Get(PolicyTypeTip)
	assert.True(t, ok)
	assert.Equal(t, uint64(10), tip)
	maxFee, ok := p.Get(PolicyTypeMaxFee)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), maxFee)
	assert.Equal(t, PolicyTypeTip|PolicyTypeMaxFee, p.Bits())
	p.Clear(PolicyTypeTip)
	_, ok = p.Get(PolicyTypeTip)
	assert.False(t, ok)
	assert.Equal(t, PolicyTypeMaxFee, p.Bits())
}

func TestPoliciesWithDoesNotMutate(t *testing.T) {
	p := NewPolicies()
	q := p.WithMaxFee(5)
	assert.True(t, p.IsEmpty())
	assert.False(t, q.IsEmpty())
}

func TestPoliciesCbor(t *testing.T) {
	testDefs := []struct {
		name     string
		policies Policies
		cborHex  string
	}{
		{
			name:     "Empty",
			policies: NewPolicies(),
			cborHex:  "820080",
		},
		{
			name:     "MaxFeeZero",
			policies: NewPolicies().WithMaxFee(0),
			cborHex:  "82088100",
		},
		{
			name: "TipAndMaturity",
			policies: NewPolicies().
				With(PolicyTypeMaturity, 7).
				With(PolicyTypeTip, 5),
			cborHex: "8205820507",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data, err := cbor.Encode(testDef.policies)
			require.NoError(t, err)
			assert.Equal(t, testDef.cborHex, hex.EncodeToString(data))
			var decoded Policies
			_, err = cbor.Decode(data, &decoded)
			require.NoError(t, err)
			assert.Equal(t, testDef.policies, decoded)
		})
	}
}

func TestPoliciesCborInvalid(t *testing.T) {
	testDefs := []struct {
		name        string
		cborHex     string
		errContains string
	}{
		{
			name:        "UnknownBit",
			cborHex:     "82108100",
			errContains: "unknown policy bits: 0x10",
		},
		{
			name:        "MissingValue",
			cborHex:     "820380",
			errContains: "policy count mismatch: 2 bits set, 0 values",
		},
		{
			name:        "ExtraValue",
			cborHex:     "8201820102",
			errContains: "policy count mismatch: 1 bits set, 2 values",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			var decoded Policies
			_, err := cbor.Decode(test.DecodeHexString(testDef.cborHex), &decoded)
			assert.ErrorContains(t, err, testDef.errContains)
		})
	}
}
