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
	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
)

// Receipt is the network-reported terminal outcome of a submitted
// transaction: its status plus the identifiers of entities the transaction
// created or affected. Receipts are never mutated after construction.
type Receipt struct {
	Status              Status
	AccountID           *AccountID
	FileID              *FileID
	TopicID             *TopicID
	TokenID             *TokenID
	TopicSequenceNumber uint64
	TopicRunningHash    []byte
	TotalSupply         uint64
	SerialNumbers       []int64
	Children            []Receipt
	Duplicates          []Receipt
}

// ReceiptFromProto converts a single wire receipt without child or duplicate
// lists; those travel alongside the receipt in the query response.
func ReceiptFromProto(pb *services.TransactionReceipt) Receipt {
	if pb == nil {
		return Receipt{}
	}

	receipt := Receipt{
		Status:              Status(pb.GetStatus()),
		TopicSequenceNumber: pb.GetTopicSequenceNumber(),
		TopicRunningHash:    append([]byte(nil), pb.GetTopicRunningHash()...),
		TotalSupply:         pb.GetNewTotalSupply(),
		SerialNumbers:       append([]int64(nil), pb.GetSerialNumbers()...),
	}

	if pb.GetAccountID() != nil {
		if accountId, err := AccountIDFromProto(pb.GetAccountID()); err == nil {
			receipt.AccountID = &accountId
		}
	}
	if pb.GetFileID() != nil {
		fileId := FileIDFromProto(pb.GetFileID())
		receipt.FileID = &fileId
	}
	if pb.GetTopicID() != nil {
		topicId := TopicIDFromProto(pb.GetTopicID())
		receipt.TopicID = &topicId
	}
	if pb.GetTokenID() != nil {
		tokenId := TokenIDFromProto(pb.GetTokenID())
		receipt.TokenID = &tokenId
	}
	return receipt
}

// ReceiptFromResponse converts a receipt query response, attaching child and
// duplicate receipts in network order.
func ReceiptFromResponse(pb *services.TransactionGetReceiptResponse) Receipt {
	if pb == nil {
		return Receipt{}
	}

	receipt := ReceiptFromProto(pb.GetReceipt())
	for _, child := range pb.GetChildTransactionReceipts() {
		receipt.Children = append(receipt.Children, ReceiptFromProto(child))
	}
	for _, duplicate := range pb.GetDuplicateTransactionReceipts() {
		receipt.Duplicates = append(receipt.Duplicates, ReceiptFromProto(duplicate))
	}
	return receipt
}
