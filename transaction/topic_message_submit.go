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

	"github.com/hiero-ledger/hiero-client-go/client"
	"github.com/hiero-ledger/hiero-client-go/hierr"
	"github.com/hiero-ledger/hiero-client-go/types"
)

// TopicMessageSubmitTransaction publishes a message to a topic. A message
// larger than the chunk size is split across sequential transactions; every
// submission carries chunk info, even a single-chunk one, so the network can
// reassemble the message regardless of size.
type TopicMessageSubmitTransaction struct {
	Transaction
	topicId   types.TopicID
	message   []byte
	chunkSize int
	maxChunks int

	// set on the per-chunk transactions minted by ExecuteAll
	chunkInfo *chunkInfo
}

type chunkInfo struct {
	initial types.TransactionID
	total   int
	number  int
}

func NewTopicMessageSubmitTransaction() *TopicMessageSubmitTransaction {
	tx := &TopicMessageSubmitTransaction{}
	tx.Transaction = newTransaction(tx)
	return tx
}

func (t *TopicMessageSubmitTransaction) SetTopicID(topicId types.TopicID) *TopicMessageSubmitTransaction {
	if t.requireDraft() {
		t.topicId = topicId
	}
	return t
}

func (t *TopicMessageSubmitTransaction) SetMessage(message []byte) *TopicMessageSubmitTransaction {
	if t.requireDraft() {
		t.message = append([]byte(nil), message...)
	}
	return t
}

// SetChunkSize overrides the client's configured chunk size for this message.
func (t *TopicMessageSubmitTransaction) SetChunkSize(size int) *TopicMessageSubmitTransaction {
	if t.requireDraft() {
		t.chunkSize = size
	}
	return t
}

// SetMaxChunks overrides the client's configured chunk count limit.
func (t *TopicMessageSubmitTransaction) SetMaxChunks(maxChunks int) *TopicMessageSubmitTransaction {
	if t.requireDraft() {
		t.maxChunks = maxChunks
	}
	return t
}

// Execute submits the message and returns the first chunk's response. For
// multi-chunk messages all chunks are executed; use ExecuteAll to get every
// chunk's response.
func (t *TopicMessageSubmitTransaction) Execute(
	ctx context.Context, c *client.Client,
) (*TransactionResponse, error) {
	responses, err := t.ExecuteAll(ctx, c)
	if err != nil {
		return nil, err
	}
	return responses[0], nil
}

// ExecuteAll splits the message, then executes one transaction per chunk
// sequentially, awaiting each receipt before submitting the next. On failure
// the chunks already committed stay committed; the error reports the failing
// chunk's index.
func (t *TopicMessageSubmitTransaction) ExecuteAll(
	ctx context.Context, c *client.Client,
) ([]*TransactionResponse, error) {
	if t.deferredErr != nil {
		return nil, t.deferredErr
	}
	if t.state == stateExecuted {
		return nil, hierr.ErrTransactionExecuted
	}

	chunkSize := t.chunkSize
	if chunkSize == 0 {
		chunkSize = c.ChunkSize()
	}
	maxChunks := t.maxChunks
	if maxChunks == 0 {
		maxChunks = c.MaxChunks()
	}

	baseId := t.transactionId
	if baseId.IsZero() {
		if c.Operator() == nil {
			return nil, hierr.ErrNoOperator
		}
		baseId = types.GenerateTransactionID(c.Operator().AccountID)
	}

	t.state = stateExecuted
	nodes := t.nodeAccountIds
	return executeChunks(ctx, c, t.message, chunkSize, maxChunks, baseId,
		func(chunk []byte, number, total int, transactionId types.TransactionID) *Transaction {
			sub := NewTopicMessageSubmitTransaction().SetTopicID(t.topicId).SetMessage(chunk)
			sub.chunkInfo = &chunkInfo{initial: baseId, total: total, number: number}
			sub.Transaction.SetTransactionID(transactionId)
			sub.Transaction.SetNodeAccountIDs(nodes)
			sub.Transaction.SetTransactionMemo(t.memo)
			sub.Transaction.SetMaxTransactionFee(t.maxFee)
			sub.Transaction.SetTransactionValidDuration(t.validDuration)
			return &sub.Transaction
		})
}

func (t *TopicMessageSubmitTransaction) applyTo(body *services.TransactionBody) {
	submit := &services.ConsensusSubmitMessageTransactionBody{
		TopicID: t.topicId.ToProto(),
		Message: t.message,
	}

	// chunk info is always present; a directly frozen transaction is its own
	// single chunk
	info := t.chunkInfo
	if info == nil {
		info = &chunkInfo{initial: t.transactionId, total: 1, number: 1}
	}
	submit.ChunkInfo = &services.ConsensusMessageChunkInfo{
		InitialTransactionID: info.initial.ToProto(),
		Total:                int32(info.total),
		Number:               int32(info.number),
	}

	body.Data = &services.TransactionBody_ConsensusSubmitMessage{ConsensusSubmitMessage: submit}
}

func (t *TopicMessageSubmitTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewConsensusServiceClient(conn).SubmitMessage(ctx, request)
}
