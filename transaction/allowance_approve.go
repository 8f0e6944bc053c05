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

// AccountAllowanceApproveTransaction grants spenders the right to transfer
// hbar or tokens out of an owner's account. Must be signed by each owner.
type AccountAllowanceApproveTransaction struct {
	Transaction
	hbarAllowances  []hbarAllowance
	tokenAllowances []tokenAllowance
	nftAllowances   []nftAllowance
}

type hbarAllowance struct {
	owner   types.AccountID
	spender types.AccountID
	amount  types.Hbar
}

type tokenAllowance struct {
	tokenId types.TokenID
	owner   types.AccountID
	spender types.AccountID
	amount  int64
}

type nftAllowance struct {
	tokenId       types.TokenID
	owner         types.AccountID
	spender       types.AccountID
	serialNumbers []int64
}

func NewAccountAllowanceApproveTransaction() *AccountAllowanceApproveTransaction {
	tx := &AccountAllowanceApproveTransaction{}
	tx.Transaction = newTransaction(tx)
	return tx
}

func (t *AccountAllowanceApproveTransaction) ApproveHbarAllowance(
	owner, spender types.AccountID, amount types.Hbar,
) *AccountAllowanceApproveTransaction {
	if t.requireDraft() {
		t.hbarAllowances = append(t.hbarAllowances, hbarAllowance{owner: owner, spender: spender, amount: amount})
	}
	return t
}

func (t *AccountAllowanceApproveTransaction) ApproveTokenAllowance(
	tokenId types.TokenID, owner, spender types.AccountID, amount int64,
) *AccountAllowanceApproveTransaction {
	if t.requireDraft() {
		t.tokenAllowances = append(t.tokenAllowances, tokenAllowance{
			tokenId: tokenId, owner: owner, spender: spender, amount: amount,
		})
	}
	return t
}

// ApproveNftAllowance grants the spender the right to transfer specific
// serial numbers of the token out of the owner's account.
func (t *AccountAllowanceApproveTransaction) ApproveNftAllowance(
	tokenId types.TokenID, owner, spender types.AccountID, serialNumbers []int64,
) *AccountAllowanceApproveTransaction {
	if t.requireDraft() {
		t.nftAllowances = append(t.nftAllowances, nftAllowance{
			tokenId: tokenId, owner: owner, spender: spender,
			serialNumbers: append([]int64(nil), serialNumbers...),
		})
	}
	return t
}

func (t *AccountAllowanceApproveTransaction) applyTo(body *services.TransactionBody) {
	approve := &services.CryptoApproveAllowanceTransactionBody{}
	for _, allowance := range t.hbarAllowances {
		approve.CryptoAllowances = append(approve.CryptoAllowances, &services.CryptoAllowance{
			Owner:   allowance.owner.ToProto(),
			Spender: allowance.spender.ToProto(),
			Amount:  allowance.amount.Tinybar(),
		})
	}
	for _, allowance := range t.tokenAllowances {
		approve.TokenAllowances = append(approve.TokenAllowances, &services.TokenAllowance{
			TokenId: allowance.tokenId.ToProto(),
			Owner:   allowance.owner.ToProto(),
			Spender: allowance.spender.ToProto(),
			Amount:  allowance.amount,
		})
	}
	for _, allowance := range t.nftAllowances {
		approve.NftAllowances = append(approve.NftAllowances, &services.NftAllowance{
			TokenId:       allowance.tokenId.ToProto(),
			Owner:         allowance.owner.ToProto(),
			Spender:       allowance.spender.ToProto(),
			SerialNumbers: allowance.serialNumbers,
		})
	}
	body.Data = &services.TransactionBody_CryptoApproveAllowance{CryptoApproveAllowance: approve}
}

func (t *AccountAllowanceApproveTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewCryptoServiceClient(conn).ApproveAllowances(ctx, request)
}
