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

	"github.com/blinklabs-io/fueltx/crypto"
)

// SignInputs signs txId with key and stores the signature in the witness slot
// of every signed input owned by the key. Slots that don't exist are skipped.
// It returns the number of slots written
func SignInputs(
	inputs []InputWrapper,
	witnesses []Witness,
	key crypto.SecretKey,
	txId Blake2b256,
) int {
	owner := InputOwner(key.PublicKey())
	sig := crypto.Sign(key, crypto.Message(txId))
	written := map[uint8]struct{}{}
	for _, w := range inputs {
		signed, ok := w.Input.(SignedInput)
		if !ok {
			continue
		}
		signer, witnessIdx := signed.Signer()
		if signer != owner {
			continue
		}
		if int(witnessIdx) >= len(witnesses) {
			continue
		}
		witnesses[witnessIdx] = Witness(bytes.Clone(sig.Bytes()))
		written[witnessIdx] = struct{}{}
	}
	return len(written)
}
