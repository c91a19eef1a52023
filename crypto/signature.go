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
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

const (
	MessageSize   = 32
	SignatureSize = 65
)

// Message is the 32 byte digest that gets signed
type Message [MessageSize]byte

// Signature is a compact recoverable ECDSA signature: one recovery byte
// followed by R and S
type Signature [SignatureSize]byte

func NewSignature(data []byte) (Signature, error) {
	var ret Signature
	if len(data) != SignatureSize {
		return ret, fmt.Errorf("invalid signature size: %d", len(data))
	}
	copy(ret[:], data)
	return ret, nil
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

// Sign produces a deterministic (RFC6979) signature over msg
func Sign(key SecretKey, msg Message) Signature {
	priv := key.privateKey()
	defer priv.Zero()
	var ret Signature
	copy(ret[:], ecdsa.SignCompact(priv, msg[:], false))
	return ret
}

// Recover returns the public key that produced sig over msg
func Recover(sig Signature, msg Message) (PublicKey, error) {
	pub, _, err := ecdsa.RecoverCompact(sig[:], msg[:])
	if err != nil {
		return PublicKey{}, fmt.Errorf("recover public key: %w", err)
	}
	return newPublicKey(pub), nil
}

// Verify checks that sig over msg was produced by the secret key behind pk
func Verify(pk PublicKey, sig Signature, msg Message) error {
	recovered, err := Recover(sig, msg)
	if err != nil {
		return err
	}
	if recovered != pk {
		return errors.New("signature verification failed")
	}
	return nil
}
