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

// Package query implements the read-side requests of the protocol engine.
package query

import (
	"context"

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"google.golang.org/grpc"

	"github.com/hiero-ledger/hiero-client-go/client"
	"github.com/hiero-ledger/hiero-client-go/hierr"
	"github.com/hiero-ledger/hiero-client-go/types"
)

// ReceiptQuery polls a node for the receipt of a submitted transaction. A
// receipt that is not yet available (the transaction has not reached
// consensus) classifies as retryable, so Execute keeps polling inside the
// client's retry budget until the network commits an outcome.
type ReceiptQuery struct {
	transactionId     types.TransactionID
	nodeAccountIds    []types.AccountID
	includeChildren   bool
	includeDuplicates bool
	receipt           types.Receipt
}

func NewReceiptQuery(transactionId types.TransactionID) *ReceiptQuery {
	return &ReceiptQuery{transactionId: transactionId}
}

func (q *ReceiptQuery) SetNodeAccountIDs(nodeAccountIds []types.AccountID) *ReceiptQuery {
	q.nodeAccountIds = append([]types.AccountID(nil), nodeAccountIds...)
	return q
}

func (q *ReceiptQuery) SetIncludeChildren(include bool) *ReceiptQuery {
	q.includeChildren = include
	return q
}

func (q *ReceiptQuery) SetIncludeDuplicates(include bool) *ReceiptQuery {
	q.includeDuplicates = include
	return q
}

func (q *ReceiptQuery) TransactionID() types.TransactionID {
	return q.transactionId
}

func (q *ReceiptQuery) NodeAccountIDs() []types.AccountID {
	return q.nodeAccountIds
}

// SubmitTo performs one poll against the given node.
func (q *ReceiptQuery) SubmitTo(
	ctx context.Context, conn *grpc.ClientConn, node types.AccountID,
) (client.ExecutionState, error) {
	pbQuery := &services.Query{
		Query: &services.Query_TransactionGetReceipt{
			TransactionGetReceipt: &services.TransactionGetReceiptQuery{
				Header:               &services.QueryHeader{ResponseType: services.ResponseType_ANSWER_ONLY},
				TransactionID:        q.transactionId.ToProto(),
				IncludeChildReceipts: q.includeChildren,
				IncludeDuplicates:    q.includeDuplicates,
			},
		},
	}

	response, err := services.NewCryptoServiceClient(conn).GetTransactionReceipts(ctx, pbQuery)
	if err != nil {
		if client.TransportRetryable(err) {
			return client.ExecutionStateRetry, err
		}
		return client.ExecutionStateError, err
	}

	receiptResponse := response.GetTransactionGetReceipt()
	precheck := types.Status(receiptResponse.GetHeader().GetNodeTransactionPrecheckCode())
	precheckErr := &hierr.PrecheckError{
		Status:        precheck,
		TransactionID: q.transactionId,
		NodeAccountID: node,
	}
	switch precheck.Class() {
	case types.StatusClassRetryable, types.StatusClassUnknown:
		return client.ExecutionStateRetry, precheckErr
	case types.StatusClassFatal:
		return client.ExecutionStateError, precheckErr
	}

	receipt := types.ReceiptFromResponse(receiptResponse)
	switch receipt.Status.Class() {
	case types.StatusClassRetryable, types.StatusClassUnknown:
		return client.ExecutionStateRetry, &hierr.PrecheckError{
			Status:        receipt.Status,
			TransactionID: q.transactionId,
			NodeAccountID: node,
		}
	}

	q.receipt = receipt
	return client.ExecutionStateFinished, nil
}

// Execute polls until the network commits an outcome. The receipt is returned
// even when the committed status is a failure; in that case the error is a
// ReceiptStatusError carrying the same receipt.
func (q *ReceiptQuery) Execute(ctx context.Context, c *client.Client) (types.Receipt, error) {
	if err := c.Execute(ctx, q); err != nil {
		return types.Receipt{}, err
	}

	receipt := q.receipt
	if receipt.Status.Class() == types.StatusClassFatal {
		return receipt, &hierr.ReceiptStatusError{
			Status:        receipt.Status,
			TransactionID: q.transactionId,
			Receipt:       receipt,
		}
	}
	return receipt, nil
}
