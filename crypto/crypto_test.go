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
	"strings"
	"testing"

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSignVerifyEd25519(t *testing.T) {
	sk, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)
	assert.Equal(t, KeyAlgorithmEd25519, sk.Algorithm())

	message := []byte("ledger payload")
	signature := sk.Sign(message)
	assert.Len(t, signature, 64)
	assert.True(t, sk.PublicKey().Verify(message, signature))
	assert.False(t, sk.PublicKey().Verify([]byte("other payload"), signature))
}

func TestGenerateSignVerifyEcdsa(t *testing.T) {
	sk, err := GenerateEcdsaPrivateKey()
	require.NoError(t, err)
	assert.Equal(t, KeyAlgorithmEcdsaSecp256k1, sk.Algorithm())

	message := []byte("ledger payload")
	signature := sk.Sign(message)
	assert.Len(t, signature, 64)
	assert.True(t, sk.PublicKey().Verify(message, signature))
	assert.False(t, sk.PublicKey().Verify([]byte("other payload"), signature))
}

func TestPrivateKeyStringRoundTrip(t *testing.T) {
	for _, generate := range []func() (PrivateKey, error){GenerateEd25519PrivateKey, GenerateEcdsaPrivateKey} {
		sk, err := generate()
		require.NoError(t, err)

		parsed, err := PrivateKeyFromString(sk.String())
		require.NoError(t, err)
		assert.Equal(t, sk.Algorithm(), parsed.Algorithm())
		assert.Equal(t, sk.BytesRaw(), parsed.BytesRaw())
	}
}

func TestPrivateKeyFromStringBareHex(t *testing.T) {
	sk, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)

	bare := strings.TrimPrefix(sk.String(), "302e020100300506032b657004220420")
	parsed, err := PrivateKeyFromString("0x" + bare)
	require.NoError(t, err)
	assert.Equal(t, sk.BytesRaw(), parsed.BytesRaw())
}

func TestPrivateKeyFromStringInvalid(t *testing.T) {
	_, err := PrivateKeyFromString("not-a-key")
	assert.Error(t, err)

	_, err = PrivateKeyFromString("abcd")
	assert.Error(t, err)
}

func TestPublicKeyStringRoundTrip(t *testing.T) {
	for _, generate := range []func() (PrivateKey, error){GenerateEd25519PrivateKey, GenerateEcdsaPrivateKey} {
		sk, err := generate()
		require.NoError(t, err)
		pk := sk.PublicKey()

		parsed, err := PublicKeyFromString(pk.String())
		require.NoError(t, err)
		assert.True(t, pk.Equals(parsed))
	}
}

func TestPublicKeyProtoRoundTrip(t *testing.T) {
	sk, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)
	pk := sk.PublicKey()

	parsed, err := PublicKeyFromProto(pk.ToProto())
	require.NoError(t, err)
	assert.True(t, pk.Equals(parsed))
}

func TestPublicKeyAliasRoundTrip(t *testing.T) {
	sk, err := GenerateEcdsaPrivateKey()
	require.NoError(t, err)
	pk := sk.PublicKey()

	alias, err := pk.ToAliasBytes()
	require.NoError(t, err)

	parsed, err := PublicKeyFromAliasBytes(alias)
	require.NoError(t, err)
	assert.True(t, pk.Equals(parsed))
}

func TestPublicKeyFromProtoUnsupported(t *testing.T) {
	keyList := &services.Key{Key: &services.Key_KeyList{KeyList: &services.KeyList{}}}
	_, err := PublicKeyFromProto(keyList)
	assert.Error(t, err)
}

func TestEvmAddress(t *testing.T) {
	ecdsaKey, err := GenerateEcdsaPrivateKey()
	require.NoError(t, err)

	address, err := ecdsaKey.PublicKey().ToEvmAddress()
	require.NoError(t, err)
	assert.Len(t, address, 42) // 0x + 20 bytes
	assert.True(t, strings.HasPrefix(address, "0x"))

	ed25519Key, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)
	_, err = ed25519Key.PublicKey().ToEvmAddress()
	assert.Error(t, err)
}

func TestPublicKeyFromBytesInvalidLength(t *testing.T) {
	_, err := PublicKeyFromBytes(make([]byte, 31))
	assert.Error(t, err)
}

func TestKeyInterface(t *testing.T) {
	sk, err := GenerateEd25519PrivateKey()
	require.NoError(t, err)

	var key Key = sk
	assert.True(t, key.Public().Equals(sk.PublicKey()))

	key = sk.PublicKey()
	assert.True(t, key.Public().Equals(sk.PublicKey()))
}
