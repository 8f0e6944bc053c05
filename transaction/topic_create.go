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

// TopicCreateTransaction creates a consensus topic. Without a submit key the
// topic is open for anyone to message; without an admin key it is immutable.
type TopicCreateTransaction struct {
	Transaction
	topicMemo          string
	adminKey           *crypto.PublicKey
	submitKey          *crypto.PublicKey
	autoRenewPeriod    time.Duration
	autoRenewAccountId *types.AccountID
}

func NewTopicCreateTransaction() *TopicCreateTransaction {
	tx := &TopicCreateTransaction{autoRenewPeriod: defaultAutoRenewPeriod}
	tx.Transaction = newTransaction(tx)
	return tx
}

func (t *TopicCreateTransaction) SetTopicMemo(memo string) *TopicCreateTransaction {
	if t.requireDraft() {
		t.topicMemo = memo
	}
	return t
}

func (t *TopicCreateTransaction) SetAdminKey(key crypto.PublicKey) *TopicCreateTransaction {
	if t.requireDraft() {
		t.adminKey = &key
	}
	return t
}

func (t *TopicCreateTransaction) SetSubmitKey(key crypto.PublicKey) *TopicCreateTransaction {
	if t.requireDraft() {
		t.submitKey = &key
	}
	return t
}

func (t *TopicCreateTransaction) SetAutoRenewPeriod(period time.Duration) *TopicCreateTransaction {
	if t.requireDraft() {
		t.autoRenewPeriod = period
	}
	return t
}

func (t *TopicCreateTransaction) SetAutoRenewAccountID(accountId types.AccountID) *TopicCreateTransaction {
	if t.requireDraft() {
		t.autoRenewAccountId = &accountId
	}
	return t
}

func (t *TopicCreateTransaction) applyTo(body *services.TransactionBody) {
	create := &services.ConsensusCreateTopicTransactionBody{
		Memo:            t.topicMemo,
		AutoRenewPeriod: &services.Duration{Seconds: int64(t.autoRenewPeriod / time.Second)},
	}
	if t.adminKey != nil {
		create.AdminKey = t.adminKey.ToProto()
	}
	if t.submitKey != nil {
		create.SubmitKey = t.submitKey.ToProto()
	}
	if t.autoRenewAccountId != nil {
		create.AutoRenewAccount = t.autoRenewAccountId.ToProto()
	}
	body.Data = &services.TransactionBody_ConsensusCreateTopic{ConsensusCreateTopic: create}
}

func (t *TopicCreateTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewConsensusServiceClient(conn).CreateTopic(ctx, request)
}
