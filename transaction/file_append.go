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

// FileAppendTransaction appends contents to an existing file. Large contents
// are split across sequential append transactions; unlike topic messages the
// wire body carries no chunk bookkeeping, the file simply grows with each
// append.
type FileAppendTransaction struct {
	Transaction
	fileId    types.FileID
	contents  []byte
	chunkSize int
	maxChunks int
}

func NewFileAppendTransaction() *FileAppendTransaction {
	tx := &FileAppendTransaction{}
	tx.Transaction = newTransaction(tx)
	return tx
}

func (t *FileAppendTransaction) SetFileID(fileId types.FileID) *FileAppendTransaction {
	if t.requireDraft() {
		t.fileId = fileId
	}
	return t
}

func (t *FileAppendTransaction) SetContents(contents []byte) *FileAppendTransaction {
	if t.requireDraft() {
		t.contents = append([]byte(nil), contents...)
	}
	return t
}

func (t *FileAppendTransaction) SetChunkSize(size int) *FileAppendTransaction {
	if t.requireDraft() {
		t.chunkSize = size
	}
	return t
}

func (t *FileAppendTransaction) SetMaxChunks(maxChunks int) *FileAppendTransaction {
	if t.requireDraft() {
		t.maxChunks = maxChunks
	}
	return t
}

// Execute appends the contents and returns the first chunk's response; use
// ExecuteAll for per-chunk responses.
func (t *FileAppendTransaction) Execute(ctx context.Context, c *client.Client) (*TransactionResponse, error) {
	responses, err := t.ExecuteAll(ctx, c)
	if err != nil {
		return nil, err
	}
	return responses[0], nil
}

// ExecuteAll appends the contents chunk by chunk, awaiting each receipt
// before the next append so the file grows in order.
func (t *FileAppendTransaction) ExecuteAll(ctx context.Context, c *client.Client) ([]*TransactionResponse, error) {
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
	return executeChunks(ctx, c, t.contents, chunkSize, maxChunks, baseId,
		func(chunk []byte, number, total int, transactionId types.TransactionID) *Transaction {
			sub := NewFileAppendTransaction().SetFileID(t.fileId).SetContents(chunk)
			sub.Transaction.SetTransactionID(transactionId)
			sub.Transaction.SetNodeAccountIDs(nodes)
			sub.Transaction.SetTransactionMemo(t.memo)
			sub.Transaction.SetMaxTransactionFee(t.maxFee)
			sub.Transaction.SetTransactionValidDuration(t.validDuration)
			return &sub.Transaction
		})
}

func (t *FileAppendTransaction) applyTo(body *services.TransactionBody) {
	body.Data = &services.TransactionBody_FileAppend{
		FileAppend: &services.FileAppendTransactionBody{
			FileID:   t.fileId.ToProto(),
			Contents: t.contents,
		},
	}
}

func (t *FileAppendTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewFileServiceClient(conn).AppendContent(ctx, request)
}
