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
	"fmt"
	"math/bits"

	"github.com/blinklabs-io/fueltx/cbor"
	"github.com/cockroachdb/errors"
)

type PolicyType uint32

const (
	PolicyTypeTip PolicyType = 1 << iota
	PolicyTypeWitnessLimit
	PolicyTypeMaturity
	PolicyTypeMaxFee
)

const policyCount = 4

var policyTypes = [policyCount]PolicyType{
	PolicyTypeTip,
	PolicyTypeWitnessLimit,
	PolicyTypeMaturity,
	PolicyTypeMaxFee,
}

func (p PolicyType) index() int {
	return bits.TrailingZeros32(uint32(p))
}

func (p PolicyType) String() string {
	switch p {
	case PolicyTypeTip:
		return "Tip"
	case PolicyTypeWitnessLimit:
		return "WitnessLimit"
	case PolicyTypeMaturity:
		return "Maturity"
	case PolicyTypeMaxFee:
		return "MaxFee"
	}
	return fmt.Sprintf("PolicyType(%d)", uint32(p))
}

// Policies holds the fee and limit overrides of a transaction. Only policies
// that have been set are encoded
type Policies struct {
	bits   PolicyType
	values [policyCount]uint64
}

func NewPolicies() Policies {
	return Policies{}
}

// Bits returns the mask of policies that are set
func (p Policies) Bits() PolicyType {
	return p.bits
}

func (p Policies) IsEmpty() bool {
	return p.bits == 0
}

// Get returns the value of a policy and whether it is set
func (p Policies) Get(policyType PolicyType) (uint64, bool) {
	if p.bits&policyType == 0 {
		return 0, false
	}
	return p.values[policyType.index()], true
}

func (p *Policies) Set(policyType PolicyType, value uint64) {
	p.bits |= policyType
	p.values[policyType.index()] = value
}

func (p *Policies) Clear(policyType PolicyType) {
	p.bits &^= policyType
	p.values[policyType.index()] = 0
}

// With returns a copy of the policies with the given policy set
func (p Policies) With(policyType PolicyType, value uint64) Policies {
	p.Set(policyType, value)
	return p
}

func (p Policies) WithMaxFee(maxFee uint64) Policies {
	return p.With(PolicyTypeMaxFee, maxFee)
}

type policiesCbor struct {
	cbor.StructAsArray
	Bits   uint32
	Values []uint64
}

func (p Policies) MarshalCBOR() ([]byte, error) {
	tmp := policiesCbor{
		Bits:   uint32(p.bits),
		Values: []uint64{},
	}
	for _, policyType := range policyTypes {
		if value, ok := p.Get(policyType); ok {
			tmp.Values = append(tmp.Values, value)
		}
	}
	return cbor.Encode(&tmp)
}

func (p *Policies) UnmarshalCBOR(data []byte) error {
	var tmp policiesCbor
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return errors.Wrap(err, "decode policies")
	}
	if tmp.Bits>>policyCount != 0 {
		return errors.Newf("unknown policy bits: %#x", tmp.Bits)
	}
	if bits.OnesCount32(tmp.Bits) != len(tmp.Values) {
		return errors.Newf(
			"policy count mismatch: %d bits set, %d values",
			bits.OnesCount32(tmp.Bits),
			len(tmp.Values),
		)
	}
	ret := NewPolicies()
	idx := 0
	for _, policyType := range policyTypes {
		if tmp.Bits&uint32(policyType) != 0 {
			ret.Set(policyType, tmp.Values[idx])
			idx++
		}
	}
	*p = ret
	return nil
}
