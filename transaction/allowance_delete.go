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

// AccountAllowanceDeleteTransaction revokes NFT allowances previously granted
// by an owner. Fungible and hbar allowances are revoked by approving a zero
// amount instead.
type AccountAllowanceDeleteTransaction struct {
	Transaction
	nftRemovals []nftRemoveAllowance
}

type nftRemoveAllowance struct {
	tokenId       types.TokenID
	owner         types.AccountID
	serialNumbers []int64
}

func NewAccountAllowanceDeleteTransaction() *AccountAllowanceDeleteTransaction {
	tx := &AccountAllowanceDeleteTransaction{}
	tx.Transaction = newTransaction(tx)
	return tx
}

func (t *AccountAllowanceDeleteTransaction) DeleteAllTokenNftAllowances(
	tokenId types.TokenID, owner types.AccountID, serialNumbers []int64,
) *AccountAllowanceDeleteTransaction {
	if t.requireDraft() {
		t.nftRemovals = append(t.nftRemovals, nftRemoveAllowance{
			tokenId:       tokenId,
			owner:         owner,
			serialNumbers: append([]int64(nil), serialNumbers...),
		})
	}
	return t
}

func (t *AccountAllowanceDeleteTransaction) applyTo(body *services.TransactionBody) {
	remove := &services.CryptoDeleteAllowanceTransactionBody{}
	for _, removal := range t.nftRemovals {
		remove.NftAllowances = append(remove.NftAllowances, &services.NftRemoveAllowance{
			TokenId:       removal.tokenId.ToProto(),
			Owner:         removal.owner.ToProto(),
			SerialNumbers: removal.serialNumbers,
		})
	}
	body.Data = &services.TransactionBody_CryptoDeleteAllowance{CryptoDeleteAllowance: remove}
}

func (t *AccountAllowanceDeleteTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewCryptoServiceClient(conn).DeleteAllowances(ctx, request)
}
