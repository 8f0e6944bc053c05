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

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"google.golang.org/grpc"

	"github.com/hiero-ledger/hiero-client-go/types"
)

// AccountDeleteTransaction deletes an account, sweeping its remaining balance
// to the transfer account. Must be signed by the deleted account's key.
type AccountDeleteTransaction struct {
	Transaction
	accountId         types.AccountID
	transferAccountId types.AccountID
}

func NewAccountDeleteTransaction() *AccountDeleteTransaction {
	tx := &AccountDeleteTransaction{}
	tx.Transaction = newTransaction(tx)
	return tx
}

func (t *AccountDeleteTransaction) SetAccountID(accountId types.AccountID) *AccountDeleteTransaction {
	if t.requireDraft() {
		t.accountId = accountId
	}
	return t
}

func (t *AccountDeleteTransaction) SetTransferAccountID(accountId types.AccountID) *AccountDeleteTransaction {
	if t.requireDraft() {
		t.transferAccountId = accountId
	}
	return t
}

func (t *AccountDeleteTransaction) applyTo(body *services.TransactionBody) {
	body.Data = &services.TransactionBody_CryptoDelete{
		CryptoDelete: &services.CryptoDeleteTransactionBody{
			DeleteAccountID:   t.accountId.ToProto(),
			TransferAccountID: t.transferAccountId.ToProto(),
		},
	}
}

func (t *AccountDeleteTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewCryptoServiceClient(conn).CryptoDelete(ctx, request)
}
