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

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/hiero-ledger/hiero-client-go/tools"
)

// ASN.1 DER prefixes used by the network for hex-encoded key material.
const (
	derPrefixEd25519Private = "302e020100300506032b657004220420"
	derPrefixEd25519Public  = "302a300506032b6570032100"
	derPrefixEcdsaPrivate   = "3030020100300706052b8104000a04220420"
	derPrefixEcdsaPublic    = "302d300706052b8104000a032200"
)

// PrivateKey is the private half of a key pair for one of the supported
// algorithms. The zero value is unusable; obtain one from a generator or
// parser.
type PrivateKey struct {
	algorithm KeyAlgorithm
	ed        ed25519.PrivateKey
	ec        []byte // 32-byte secp256k1 scalar
}

func GenerateEd25519PrivateKey() (PrivateKey, error) {
	_, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return PrivateKey{}, errors.Wrap(err, "failed to generate ed25519 key")
	}
	return PrivateKey{algorithm: KeyAlgorithmEd25519, ed: sk}, nil
}

func GenerateEcdsaPrivateKey() (PrivateKey, error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return PrivateKey{}, errors.Wrap(err, "failed to generate ecdsa key")
	}
	return PrivateKey{algorithm: KeyAlgorithmEcdsaSecp256k1, ec: ethcrypto.FromECDSA(key)}, nil
}

// PrivateKeyFromString parses a hex-encoded private key, with or without the
// network's DER prefix and with or without a 0x prefix. A bare 32-byte value is
// interpreted as an ed25519 seed; use the algorithm-specific parsers to force
// an interpretation.
func PrivateKeyFromString(s string) (PrivateKey, error) {
	raw, err := hex.DecodeString(tools.SafeRemoveHexPrefix(s))
	if err != nil {
		return PrivateKey{}, errors.Wrapf(err, "invalid private key %q", s)
	}

	switch {
	case matchDerPrefix(s, derPrefixEd25519Private):
		return PrivateKeyFromBytesEd25519(raw[len(derPrefixEd25519Private)/2:])
	case matchDerPrefix(s, derPrefixEcdsaPrivate):
		return PrivateKeyFromBytesEcdsa(raw[len(derPrefixEcdsaPrivate)/2:])
	case len(raw) == ed25519.SeedSize || len(raw) == ed25519.PrivateKeySize:
		return PrivateKeyFromBytesEd25519(raw)
	}
	return PrivateKey{}, errors.Errorf("invalid private key length %d", len(raw))
}

func PrivateKeyFromStringEcdsa(s string) (PrivateKey, error) {
	raw, err := hex.DecodeString(tools.SafeRemoveHexPrefix(s))
	if err != nil {
		return PrivateKey{}, errors.Wrapf(err, "invalid private key %q", s)
	}
	if matchDerPrefix(s, derPrefixEcdsaPrivate) {
		raw = raw[len(derPrefixEcdsaPrivate)/2:]
	}
	return PrivateKeyFromBytesEcdsa(raw)
}

func PrivateKeyFromBytesEd25519(raw []byte) (PrivateKey, error) {
	switch len(raw) {
	case ed25519.SeedSize:
		return PrivateKey{algorithm: KeyAlgorithmEd25519, ed: ed25519.NewKeyFromSeed(raw)}, nil
	case ed25519.PrivateKeySize:
		sk := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
		copy(sk, raw)
		return PrivateKey{algorithm: KeyAlgorithmEd25519, ed: sk}, nil
	}
	return PrivateKey{}, errors.Errorf("invalid ed25519 private key length %d", len(raw))
}

func PrivateKeyFromBytesEcdsa(raw []byte) (PrivateKey, error) {
	if len(raw) != 32 {
		return PrivateKey{}, errors.Errorf("invalid ecdsa private key length %d", len(raw))
	}
	// Round trip through the curve implementation to reject out-of-range scalars.
	key, err := ethcrypto.ToECDSA(raw)
	if err != nil {
		return PrivateKey{}, errors.Wrap(err, "invalid ecdsa private key")
	}
	return PrivateKey{algorithm: KeyAlgorithmEcdsaSecp256k1, ec: ethcrypto.FromECDSA(key)}, nil
}

func (sk PrivateKey) Algorithm() KeyAlgorithm {
	return sk.algorithm
}

// Sign signs the message. Ed25519 signs the message directly; ECDSA signs the
// keccak-256 digest and returns the 64-byte compact r||s form the network
// expects.
func (sk PrivateKey) Sign(message []byte) []byte {
	switch sk.algorithm {
	case KeyAlgorithmEd25519:
		return ed25519.Sign(sk.ed, message)
	case KeyAlgorithmEcdsaSecp256k1:
		key, err := ethcrypto.ToECDSA(sk.ec)
		if err != nil {
			panic(err)
		}
		sig, err := ethcrypto.Sign(ethcrypto.Keccak256(message), key)
		if err != nil {
			panic(err)
		}
		return sig[:64] // drop the recovery byte
	}
	panic("sign with uninitialized private key")
}

func (sk PrivateKey) Public() PublicKey {
	return sk.PublicKey()
}

func (sk PrivateKey) PublicKey() PublicKey {
	switch sk.algorithm {
	case KeyAlgorithmEd25519:
		pub := make([]byte, ed25519.PublicKeySize)
		copy(pub, sk.ed.Public().(ed25519.PublicKey))
		return PublicKey{algorithm: KeyAlgorithmEd25519, raw: pub}
	case KeyAlgorithmEcdsaSecp256k1:
		key, err := ethcrypto.ToECDSA(sk.ec)
		if err != nil {
			panic(err)
		}
		return PublicKey{algorithm: KeyAlgorithmEcdsaSecp256k1, raw: ethcrypto.CompressPubkey(&key.PublicKey)}
	}
	panic("public key of uninitialized private key")
}

// BytesRaw returns the 32-byte seed (ed25519) or scalar (ecdsa).
func (sk PrivateKey) BytesRaw() []byte {
	switch sk.algorithm {
	case KeyAlgorithmEd25519:
		return append([]byte(nil), sk.ed.Seed()...)
	case KeyAlgorithmEcdsaSecp256k1:
		return append([]byte(nil), sk.ec...)
	}
	return nil
}

// String renders the DER-prefixed hex form accepted by PrivateKeyFromString.
func (sk PrivateKey) String() string {
	switch sk.algorithm {
	case KeyAlgorithmEd25519:
		return derPrefixEd25519Private + hex.EncodeToString(sk.ed.Seed())
	case KeyAlgorithmEcdsaSecp256k1:
		return derPrefixEcdsaPrivate + hex.EncodeToString(sk.ec)
	}
	return ""
}

func matchDerPrefix(s string, prefix string) bool {
	stripped := tools.SafeRemoveHexPrefix(s)
	return len(stripped) >= len(prefix) && stripped[:len(prefix)] == prefix
}
