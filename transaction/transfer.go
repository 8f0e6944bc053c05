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

// TransferTransaction moves hbar and fungible token balances between
// accounts. Every list must sum to zero; the network rejects unbalanced
// transfers at precheck.
type TransferTransaction struct {
	Transaction
	hbarTransfers  []hbarTransfer
	tokenTransfers []tokenTransferList
}

type hbarTransfer struct {
	accountId types.AccountID
	amount    types.Hbar
	approved  bool
}

type tokenTransferList struct {
	tokenId   types.TokenID
	transfers []tokenTransfer
}

type tokenTransfer struct {
	accountId types.AccountID
	amount    int64
	approved  bool
}

func NewTransferTransaction() *TransferTransaction {
	tx := &TransferTransaction{}
	tx.Transaction = newTransaction(tx)
	return tx
}

// AddHbarTransfer adds a debit (negative) or credit (positive) for the
// account. Repeated calls for the same account accumulate as separate
// entries.
func (t *TransferTransaction) AddHbarTransfer(accountId types.AccountID, amount types.Hbar) *TransferTransaction {
	if t.requireDraft() {
		t.hbarTransfers = append(t.hbarTransfers, hbarTransfer{accountId: accountId, amount: amount})
	}
	return t
}

// AddApprovedHbarTransfer adds a debit spent out of an allowance the account's
// owner granted to the operator, rather than out of the operator's own
// balance.
func (t *TransferTransaction) AddApprovedHbarTransfer(
	accountId types.AccountID, amount types.Hbar,
) *TransferTransaction {
	if t.requireDraft() {
		t.hbarTransfers = append(t.hbarTransfers, hbarTransfer{accountId: accountId, amount: amount, approved: true})
	}
	return t
}

// AddTokenTransfer adds a fungible token debit or credit in the token's
// smallest denomination.
func (t *TransferTransaction) AddTokenTransfer(
	tokenId types.TokenID, accountId types.AccountID, amount int64,
) *TransferTransaction {
	return t.addTokenTransfer(tokenId, tokenTransfer{accountId: accountId, amount: amount})
}

// AddApprovedTokenTransfer adds a token debit spent out of an allowance.
func (t *TransferTransaction) AddApprovedTokenTransfer(
	tokenId types.TokenID, accountId types.AccountID, amount int64,
) *TransferTransaction {
	return t.addTokenTransfer(tokenId, tokenTransfer{accountId: accountId, amount: amount, approved: true})
}

func (t *TransferTransaction) addTokenTransfer(tokenId types.TokenID, transfer tokenTransfer) *TransferTransaction {
	if !t.requireDraft() {
		return t
	}

	for i := range t.tokenTransfers {
		if t.tokenTransfers[i].tokenId == tokenId {
			t.tokenTransfers[i].transfers = append(t.tokenTransfers[i].transfers, transfer)
			return t
		}
	}
	t.tokenTransfers = append(t.tokenTransfers, tokenTransferList{
		tokenId:   tokenId,
		transfers: []tokenTransfer{transfer},
	})
	return t
}

func (t *TransferTransaction) applyTo(body *services.TransactionBody) {
	transfer := &services.CryptoTransferTransactionBody{}

	if len(t.hbarTransfers) > 0 {
		transferList := &services.TransferList{}
		for _, entry := range t.hbarTransfers {
			transferList.AccountAmounts = append(transferList.AccountAmounts, &services.AccountAmount{
				AccountID:  entry.accountId.ToProto(),
				Amount:     entry.amount.Tinybar(),
				IsApproval: entry.approved,
			})
		}
		transfer.Transfers = transferList
	}

	for _, list := range t.tokenTransfers {
		pbList := &services.TokenTransferList{Token: list.tokenId.ToProto()}
		for _, entry := range list.transfers {
			pbList.Transfers = append(pbList.Transfers, &services.AccountAmount{
				AccountID:  entry.accountId.ToProto(),
				Amount:     entry.amount,
				IsApproval: entry.approved,
			})
		}
		transfer.TokenTransfers = append(transfer.TokenTransfers, pbList)
	}

	body.Data = &services.TransactionBody_CryptoTransfer{CryptoTransfer: transfer}
}

func (t *TransferTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewCryptoServiceClient(conn).CryptoTransfer(ctx, request)
}
