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

// TopicDeleteTransaction deletes a topic. Only topics with an admin key can
// be deleted, signed by that key.
type TopicDeleteTransaction struct {
	Transaction
	topicId types.TopicID
}

func NewTopicDeleteTransaction() *TopicDeleteTransaction {
	tx := &TopicDeleteTransaction{}
	tx.Transaction = newTransaction(tx)
	return tx
}

func (t *TopicDeleteTransaction) SetTopicID(topicId types.TopicID) *TopicDeleteTransaction {
	if t.requireDraft() {
		t.topicId = topicId
	}
	return t
}

func (t *TopicDeleteTransaction) applyTo(body *services.TransactionBody) {
	body.Data = &services.TransactionBody_ConsensusDeleteTopic{
		ConsensusDeleteTopic: &services.ConsensusDeleteTopicTransactionBody{
			TopicID: t.topicId.ToProto(),
		},
	}
}

func (t *TopicDeleteTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewConsensusServiceClient(conn).DeleteTopic(ctx, request)
}
