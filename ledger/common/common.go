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
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/blinklabs-io/fueltx/cbor"
	"github.com/blinklabs-io/fueltx/crypto"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/blake2b"
)

const (
	Blake2b256Size = 32
	Bytes32Size    = 32

	// Human readable part used for bech32 encoded addresses
	AddressHrp = "fuel"
)

type Blake2b256 [Blake2b256Size]byte

func NewBlake2b256(data []byte) Blake2b256 {
	b := Blake2b256{}
	copy(b[:], data)
	return b
}

func (b Blake2b256) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blake2b256) Bytes() []byte {
	return b[:]
}

func (b Blake2b256) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Blake2b256) UnmarshalJSON(data []byte) error {
	return unmarshalHexJSON(data, b[:])
}

// Blake2b256Hash generates a Blake2b-256 hash from the provided data
func Blake2b256Hash(data []byte) Blake2b256 {
	tmpHash, err := blake2b.New(Blake2b256Size, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(data)
	return Blake2b256(tmpHash.Sum(nil))
}

// Bytes32 is an opaque 32 byte value, used for storage keys/values and state roots
type Bytes32 [Bytes32Size]byte

func (b Bytes32) String() string {
	return hex.EncodeToString(b[:])
}

func (b Bytes32) Bytes() []byte {
	return b[:]
}

func (b Bytes32) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Bytes32) UnmarshalJSON(data []byte) error {
	return unmarshalHexJSON(data, b[:])
}

type Address [Bytes32Size]byte

// NewAddressFromBech32 decodes a bech32 address using the fuel human readable part
func NewAddressFromBech32(addr string) (Address, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return Address{}, errors.Wrap(err, "decode bech32 address")
	}
	if hrp != AddressHrp {
		return Address{}, errors.Newf("unexpected address prefix: %s", hrp)
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, errors.Wrap(err, "convert address bits")
	}
	if len(decoded) != Bytes32Size {
		return Address{}, errors.Newf("invalid address length: %d", len(decoded))
	}
	var ret Address
	copy(ret[:], decoded)
	return ret, nil
}

// InputOwner returns the address that owns inputs signed by the given public key
func InputOwner(pk crypto.PublicKey) Address {
	return Address(Blake2b256Hash(pk.Bytes()))
}

func (a Address) Bech32() string {
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(a[:], 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(AddressHrp, convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	return unmarshalHexJSON(data, a[:])
}

type AssetId [Bytes32Size]byte

func (a AssetId) String() string {
	return hex.EncodeToString(a[:])
}

func (a AssetId) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AssetId) UnmarshalJSON(data []byte) error {
	return unmarshalHexJSON(data, a[:])
}

type ContractId [Bytes32Size]byte

func (c ContractId) String() string {
	return hex.EncodeToString(c[:])
}

func (c ContractId) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

type Salt [Bytes32Size]byte

func (s Salt) String() string {
	return hex.EncodeToString(s[:])
}

type Nonce [Bytes32Size]byte

func (n Nonce) String() string {
	return hex.EncodeToString(n[:])
}

type ChainId uint64

// Bytes returns the big-endian encoding used as the id hashing prefix
func (c ChainId) Bytes() []byte {
	ret := make([]byte, 8)
	binary.BigEndian.PutUint64(ret, uint64(c))
	return ret
}

type BlockHeight uint32

// TxPointer identifies a transaction by its position on chain
type TxPointer struct {
	cbor.StructAsArray
	BlockHeight BlockHeight
	TxIndex     uint16
}

func NewTxPointer(blockHeight BlockHeight, txIndex uint16) TxPointer {
	return TxPointer{
		BlockHeight: blockHeight,
		TxIndex:     txIndex,
	}
}

func (p TxPointer) String() string {
	return fmt.Sprintf("%08x%04x", uint32(p.BlockHeight), p.TxIndex)
}

// UtxoId identifies an output of a previous transaction
type UtxoId struct {
	cbor.StructAsArray
	TxId        Blake2b256
	OutputIndex uint16
}

func NewUtxoId(txId Blake2b256, outputIndex uint16) UtxoId {
	return UtxoId{
		TxId:        txId,
		OutputIndex: outputIndex,
	}
}

func (u UtxoId) String() string {
	return fmt.Sprintf("%s#%d", u.TxId.String(), u.OutputIndex)
}

func unmarshalHexJSON(data []byte, dest []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(strings.TrimPrefix(tmp, "0x"))
	if err != nil {
		return err
	}
	if len(decoded) != len(dest) {
		return errors.Newf(
			"unexpected hex value length: %d, expected %d",
			len(decoded),
			len(dest),
		)
	}
	copy(dest, decoded)
	return nil
}
