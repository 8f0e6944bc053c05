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
	"bytes"
	"crypto/ed25519"
	"encoding/hex"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"

	"github.com/hiero-ledger/hiero-client-go/tools"
)

const (
	Ed25519PublicKeySize        = 32
	EcdsaSecp256k1PublicKeySize = 33 // compressed point
)

// PublicKey is the public half of a key pair. ECDSA keys are held in
// compressed form, the network's canonical representation.
type PublicKey struct {
	algorithm KeyAlgorithm
	raw       []byte
}

// PublicKeyFromBytes infers the algorithm from the raw key length.
func PublicKeyFromBytes(raw []byte) (PublicKey, error) {
	switch len(raw) {
	case Ed25519PublicKeySize:
		return PublicKey{algorithm: KeyAlgorithmEd25519, raw: append([]byte(nil), raw...)}, nil
	case EcdsaSecp256k1PublicKeySize:
		if _, err := ethcrypto.DecompressPubkey(raw); err != nil {
			return PublicKey{}, errors.Wrap(err, "invalid ecdsa public key")
		}
		return PublicKey{algorithm: KeyAlgorithmEcdsaSecp256k1, raw: append([]byte(nil), raw...)}, nil
	}
	return PublicKey{}, errors.Errorf("invalid public key length %d", len(raw))
}

func PublicKeyFromString(s string) (PublicKey, error) {
	raw, err := hex.DecodeString(tools.SafeRemoveHexPrefix(s))
	if err != nil {
		return PublicKey{}, errors.Wrapf(err, "invalid public key %q", s)
	}
	switch {
	case matchDerPrefix(s, derPrefixEd25519Public):
		raw = raw[len(derPrefixEd25519Public)/2:]
	case matchDerPrefix(s, derPrefixEcdsaPublic):
		raw = raw[len(derPrefixEcdsaPublic)/2:]
	}
	return PublicKeyFromBytes(raw)
}

// PublicKeyFromProto converts a wire Key message holding a primitive public
// key. Key lists and threshold keys are not primitive keys and are rejected.
func PublicKeyFromProto(pb *services.Key) (PublicKey, error) {
	switch key := pb.GetKey().(type) {
	case *services.Key_Ed25519:
		return PublicKeyFromBytes(key.Ed25519)
	case *services.Key_ECDSASecp256K1:
		return PublicKeyFromBytes(key.ECDSASecp256K1)
	}
	return PublicKey{}, errors.Errorf("unsupported key type in Key message")
}

// PublicKeyFromAliasBytes decodes a serialized Key message, the wire form used
// for account aliases.
func PublicKeyFromAliasBytes(alias []byte) (PublicKey, error) {
	if len(alias) == 0 {
		return PublicKey{}, errors.Errorf("empty alias")
	}
	var key services.Key
	if err := proto.Unmarshal(alias, &key); err != nil {
		return PublicKey{}, errors.Wrap(err, "failed to unmarshal alias Key")
	}
	return PublicKeyFromProto(&key)
}

func (pk PublicKey) Algorithm() KeyAlgorithm {
	return pk.algorithm
}

func (pk PublicKey) IsEmpty() bool {
	return len(pk.raw) == 0
}

func (pk PublicKey) Public() PublicKey {
	return pk
}

// BytesRaw returns the raw key bytes without any DER framing.
func (pk PublicKey) BytesRaw() []byte {
	return append([]byte(nil), pk.raw...)
}

func (pk PublicKey) Equals(other PublicKey) bool {
	return pk.algorithm == other.algorithm && bytes.Equal(pk.raw, other.raw)
}

func (pk PublicKey) Verify(message, signature []byte) bool {
	switch pk.algorithm {
	case KeyAlgorithmEd25519:
		return ed25519.Verify(ed25519.PublicKey(pk.raw), message, signature)
	case KeyAlgorithmEcdsaSecp256k1:
		if len(signature) != 64 {
			return false
		}
		return ethcrypto.VerifySignature(pk.raw, ethcrypto.Keccak256(message), signature)
	}
	return false
}

func (pk PublicKey) ToProto() *services.Key {
	switch pk.algorithm {
	case KeyAlgorithmEd25519:
		return &services.Key{Key: &services.Key_Ed25519{Ed25519: pk.BytesRaw()}}
	case KeyAlgorithmEcdsaSecp256k1:
		return &services.Key{Key: &services.Key_ECDSASecp256K1{ECDSASecp256K1: pk.BytesRaw()}}
	}
	return &services.Key{}
}

// ToAliasBytes returns the serialized Key message form used as an account
// alias on the wire.
func (pk PublicKey) ToAliasBytes() ([]byte, error) {
	alias, err := proto.Marshal(pk.ToProto())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal alias Key")
	}
	return alias, nil
}

// ToEvmAddress derives the 20-byte EVM address for an ECDSA key: the last 20
// bytes of the keccak-256 digest of the uncompressed public point. Ed25519
// keys have no EVM address.
func (pk PublicKey) ToEvmAddress() (string, error) {
	if pk.algorithm != KeyAlgorithmEcdsaSecp256k1 {
		return "", errors.Errorf("EVM address derivation requires an ecdsa key, have %s", pk.algorithm)
	}
	key, err := ethcrypto.DecompressPubkey(pk.raw)
	if err != nil {
		return "", errors.Wrap(err, "invalid ecdsa public key")
	}
	return ethcrypto.PubkeyToAddress(*key).Hex(), nil
}

// String renders the DER-prefixed hex form accepted by PublicKeyFromString.
func (pk PublicKey) String() string {
	switch pk.algorithm {
	case KeyAlgorithmEd25519:
		return derPrefixEd25519Public + hex.EncodeToString(pk.raw)
	case KeyAlgorithmEcdsaSecp256k1:
		return derPrefixEcdsaPublic + hex.EncodeToString(pk.raw)
	}
	return ""
}
