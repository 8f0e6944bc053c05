/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package crypto

// KeyAlgorithm is the closed set of signature algorithms the ledger accepts.
type KeyAlgorithm int

const (
	KeyAlgorithmEd25519 KeyAlgorithm = iota
	KeyAlgorithmEcdsaSecp256k1
)

func (k KeyAlgorithm) String() string {
	switch k {
	case KeyAlgorithmEd25519:
		return "ed25519"
	case KeyAlgorithmEcdsaSecp256k1:
		return "ecdsa-secp256k1"
	}
	return "unknown"
}

// Key is either the private or the public half of a key pair. Components that
// only need to tag data with a key, such as the batch assembler, accept a Key
// and extract the public half; actually signing requires a PrivateKey.
type Key interface {
	Public() PublicKey
}
