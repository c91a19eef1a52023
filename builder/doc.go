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

// Package builder assembles transactions and finalizes them into signed,
// canonical values.
//
// A TransactionBuilder owns a draft transaction, a snapshot of the consensus
// parameters and a ledger of signing keys. Each distinct signing key is given
// one witness slot the first time it is used, and every input it signs refers
// to that slot. Finalize clones the draft, signs it with every registered key
// in key-byte order and caches its canonical id and merkle roots. The builder
// is left untouched and can be mutated and finalized again.
//
// Mint transactions are produced by the block producer and use MintBuilder,
// which offers neither signing nor input, output or witness mutation.
package builder
