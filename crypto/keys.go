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

package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
)

const (
	SecretKeySize = 32
	PublicKeySize = 64
)

// SecretKey is a secp256k1 private scalar
type SecretKey [SecretKeySize]byte

// NewSecretKey returns a SecretKey from its 32 byte big-endian encoding. The
// scalar must be non-zero and lower than the curve order
func NewSecretKey(data []byte) (SecretKey, error) {
	var ret SecretKey
	if len(data) != SecretKeySize {
		return ret, fmt.Errorf("invalid secret key size: %d", len(data))
	}
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(data); overflow {
		return ret, errors.New("secret key exceeds curve order")
	}
	if scalar.IsZero() {
		return ret, errors.New("secret key is zero")
	}
	copy(ret[:], data)
	return ret, nil
}

// NewSecretKeyFromHex decodes a hex encoded secret key
func NewSecretKeyFromHex(hexData string) (SecretKey, error) {
	data, err := hex.DecodeString(hexData)
	if err != nil {
		return SecretKey{}, fmt.Errorf("invalid secret key hex: %w", err)
	}
	return NewSecretKey(data)
}

// GenerateSecretKey reads candidate scalars from r until it finds a valid one
func GenerateSecretKey(r io.Reader) (SecretKey, error) {
	buf := make([]byte, SecretKeySize)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return SecretKey{}, err
		}
		sk, err := NewSecretKey(buf)
		if err == nil {
			return sk, nil
		}
	}
}

func (s SecretKey) Bytes() []byte {
	return s[:]
}

// String never reveals the key material
func (s SecretKey) String() string {
	return "SecretKey(redacted)"
}

// Compare orders secret keys by their byte representation
func (s SecretKey) Compare(other SecretKey) int {
	return bytes.Compare(s[:], other[:])
}

func (s SecretKey) privateKey() *btcec.PrivateKey {
	priv, _ := btcec.PrivKeyFromBytes(s[:])
	return priv
}

// PublicKey derives the public key for the secret key
func (s SecretKey) PublicKey() PublicKey {
	priv := s.privateKey()
	defer priv.Zero()
	return newPublicKey(priv.PubKey())
}

// PublicKey is an uncompressed secp256k1 point without the leading format byte
type PublicKey [PublicKeySize]byte

func newPublicKey(pub *btcec.PublicKey) PublicKey {
	var ret PublicKey
	// Strip the 0x04 uncompressed point prefix
	copy(ret[:], pub.SerializeUncompressed()[1:])
	return ret
}

// NewPublicKey parses a 64 byte public key and checks that it is on the curve
func NewPublicKey(data []byte) (PublicKey, error) {
	var ret PublicKey
	if len(data) != PublicKeySize {
		return ret, fmt.Errorf("invalid public key size: %d", len(data))
	}
	if _, err := btcec.ParsePubKey(append([]byte{0x04}, data...)); err != nil {
		return ret, fmt.Errorf("invalid public key: %w", err)
	}
	copy(ret[:], data)
	return ret, nil
}

func (p PublicKey) Bytes() []byte {
	return p[:]
}

func (p PublicKey) String() string {
	return hex.EncodeToString(p[:])
}
