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

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTransactionID(t *testing.T) {
	payer := AccountID{Account: 7}

	before := time.Now()
	transactionId := GenerateTransactionID(payer)
	after := time.Now()

	assert.True(t, transactionId.AccountID.Equals(payer))
	assert.False(t, transactionId.ValidStart.After(after))
	assert.True(t, transactionId.ValidStart.After(before.Add(-6*time.Second)))
	assert.False(t, transactionId.Scheduled)
	assert.Zero(t, transactionId.Nonce)
}

func TestGenerateTransactionIDUnique(t *testing.T) {
	payer := AccountID{Account: 7}
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateTransactionID(payer).String()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestTransactionIDProtoRoundTrip(t *testing.T) {
	transactionId := TransactionID{
		AccountID:  AccountID{Account: 7},
		ValidStart: time.Unix(1700000000, 123).UTC(),
		Scheduled:  true,
		Nonce:      2,
	}

	actual, err := TransactionIDFromProto(transactionId.ToProto())
	require.NoError(t, err)
	assert.True(t, transactionId.Equals(actual))
}

func TestTransactionIDFromProtoNil(t *testing.T) {
	_, err := TransactionIDFromProto(nil)
	assert.Error(t, err)
}

func TestTransactionIDAdvance(t *testing.T) {
	base := TransactionID{AccountID: AccountID{Account: 7}, ValidStart: time.Unix(1700000000, 0).UTC()}

	derived := base.Advance(3)

	assert.True(t, derived.AccountID.Equals(base.AccountID))
	assert.Equal(t, base.ValidStart.Add(3*time.Nanosecond), derived.ValidStart)
	// the base id is untouched
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), base.ValidStart)
	assert.True(t, base.Advance(0).Equals(base))
}

func TestTransactionIDString(t *testing.T) {
	transactionId := TransactionID{
		AccountID:  AccountID{Account: 7},
		ValidStart: time.Unix(1700000000, 123).UTC(),
	}
	assert.Equal(t, "0.0.7@1700000000.000000123", transactionId.String())

	transactionId.Scheduled = true
	assert.Equal(t, "0.0.7@1700000000.000000123?scheduled", transactionId.String())

	transactionId.Nonce = 4
	assert.Equal(t, "0.0.7@1700000000.000000123?scheduled/4", transactionId.String())
}

func TestTransactionIDIsZero(t *testing.T) {
	assert.True(t, TransactionID{}.IsZero())
	assert.False(t, GenerateTransactionID(AccountID{Account: 7}).IsZero())
}
