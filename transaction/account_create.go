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

package transaction

import (
	"context"
	"time"

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"google.golang.org/grpc"

	"github.com/hiero-ledger/hiero-client-go/crypto"
	"github.com/hiero-ledger/hiero-client-go/types"
)

const defaultAutoRenewPeriod = 7890000 * time.Second // ~90 days, the network default

// AccountCreateTransaction creates an account controlled by the given key.
// The created account's id arrives in the receipt.
type AccountCreateTransaction struct {
	Transaction
	key                 *crypto.PublicKey
	initialBalance      types.Hbar
	receiverSigRequired bool
	autoRenewPeriod     time.Duration
	accountMemo         string
	alias               []byte
}

func NewAccountCreateTransaction() *AccountCreateTransaction {
	tx := &AccountCreateTransaction{autoRenewPeriod: defaultAutoRenewPeriod}
	tx.Transaction = newTransaction(tx)
	return tx
}

func (t *AccountCreateTransaction) SetKey(key crypto.PublicKey) *AccountCreateTransaction {
	if t.requireDraft() {
		t.key = &key
	}
	return t
}

func (t *AccountCreateTransaction) SetInitialBalance(balance types.Hbar) *AccountCreateTransaction {
	if t.requireDraft() {
		t.initialBalance = balance
	}
	return t
}

func (t *AccountCreateTransaction) SetReceiverSignatureRequired(required bool) *AccountCreateTransaction {
	if t.requireDraft() {
		t.receiverSigRequired = required
	}
	return t
}

func (t *AccountCreateTransaction) SetAutoRenewPeriod(period time.Duration) *AccountCreateTransaction {
	if t.requireDraft() {
		t.autoRenewPeriod = period
	}
	return t
}

func (t *AccountCreateTransaction) SetAccountMemo(memo string) *AccountCreateTransaction {
	if t.requireDraft() {
		t.accountMemo = memo
	}
	return t
}

// SetAlias sets the account's alias to the key's serialized wire form, making
// the account addressable by key before its numeric id is known.
func (t *AccountCreateTransaction) SetAlias(key crypto.PublicKey) *AccountCreateTransaction {
	if t.requireDraft() {
		alias, err := key.ToAliasBytes()
		if err != nil {
			if t.deferredErr == nil {
				t.deferredErr = err
			}
			return t
		}
		t.alias = alias
	}
	return t
}

func (t *AccountCreateTransaction) applyTo(body *services.TransactionBody) {
	create := &services.CryptoCreateTransactionBody{
		InitialBalance:      uint64(t.initialBalance.Tinybar()),
		ReceiverSigRequired: t.receiverSigRequired,
		AutoRenewPeriod:     &services.Duration{Seconds: int64(t.autoRenewPeriod / time.Second)},
		Memo:                t.accountMemo,
		Alias:               t.alias,
	}
	if t.key != nil {
		create.Key = t.key.ToProto()
	}
	body.Data = &services.TransactionBody_CryptoCreateAccount{CryptoCreateAccount: create}
}

func (t *AccountCreateTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewCryptoServiceClient(conn).CreateAccount(ctx, request)
}
