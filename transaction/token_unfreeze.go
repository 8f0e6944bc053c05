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

// TokenUnfreezeTransaction lifts a token freeze from an account. Must be
// signed by the token's freeze key.
type TokenUnfreezeTransaction struct {
	Transaction
	tokenId   types.TokenID
	accountId types.AccountID
}

func NewTokenUnfreezeTransaction() *TokenUnfreezeTransaction {
	tx := &TokenUnfreezeTransaction{}
	tx.Transaction = newTransaction(tx)
	return tx
}

func (t *TokenUnfreezeTransaction) SetTokenID(tokenId types.TokenID) *TokenUnfreezeTransaction {
	if t.requireDraft() {
		t.tokenId = tokenId
	}
	return t
}

func (t *TokenUnfreezeTransaction) SetAccountID(accountId types.AccountID) *TokenUnfreezeTransaction {
	if t.requireDraft() {
		t.accountId = accountId
	}
	return t
}

func (t *TokenUnfreezeTransaction) applyTo(body *services.TransactionBody) {
	body.Data = &services.TransactionBody_TokenUnfreeze{
		TokenUnfreeze: &services.TokenUnfreezeAccountTransactionBody{
			Token:   t.tokenId.ToProto(),
			Account: t.accountId.ToProto(),
		},
	}
}

func (t *TokenUnfreezeTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewTokenServiceClient(conn).UnfreezeTokenAccount(ctx, request)
}
