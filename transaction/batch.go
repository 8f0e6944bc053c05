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
	"github.com/pkg/errors"
	"google.golang.org/grpc"

	"github.com/hiero-ledger/hiero-client-go/client"
	"github.com/hiero-ledger/hiero-client-go/crypto"
	"github.com/hiero-ledger/hiero-client-go/hierr"
	"github.com/hiero-ledger/hiero-client-go/types"
)

// Batchable is any transaction that can travel inside an atomic batch.
type Batchable interface {
	base() *Transaction
}

func (t *Transaction) base() *Transaction {
	return t
}

// Batchify prepares a draft transaction for inclusion in an atomic batch: it
// binds the batch key (either half of the pair works, only the public half is
// needed here), freezes against the placeholder node and signs with the
// client's operator. The result is ready for AddInnerTransaction.
func (t *Transaction) Batchify(c *client.Client, batchKey crypto.Key) error {
	if t.deferredErr != nil {
		return t.deferredErr
	}
	if t.state != stateDraft {
		return hierr.ErrTransactionFrozen
	}

	t.SetBatchKey(batchKey)
	if err := t.FreezeWith(c); err != nil {
		return err
	}
	return t.SignWithOperator(c)
}

// BatchTransaction submits a set of inner transactions that the network
// commits atomically: all reach consensus and succeed together, or the whole
// batch fails. Inner transactions must be frozen, carry a batch key and at
// least one signature before they can be added.
type BatchTransaction struct {
	Transaction
	innerBytes [][]byte
	innerIds   []types.TransactionID
}

func NewBatchTransaction() *BatchTransaction {
	tx := &BatchTransaction{}
	tx.Transaction = newTransaction(tx)
	return tx
}

// AddInnerTransaction validates and captures the inner transaction's signed
// wire bytes. The inner transaction itself is not executed; its bytes travel
// inside the batch.
func (t *BatchTransaction) AddInnerTransaction(inner Batchable) error {
	if t.deferredErr != nil {
		return t.deferredErr
	}
	if t.state != stateDraft {
		return hierr.ErrTransactionFrozen
	}

	innerBase := inner.base()
	if _, ok := innerBase.body.(*BatchTransaction); ok {
		return errors.Errorf("a batch transaction cannot contain another batch")
	}
	if !innerBase.IsFrozen() {
		return errors.Wrap(hierr.ErrTransactionNotFrozen, "inner transaction")
	}
	if innerBase.BatchKey() == nil {
		return errors.Errorf("inner transaction must have a batch key")
	}
	if innerBase.signatureCount() == 0 {
		return errors.Errorf("inner transaction must carry at least one signature")
	}

	signedBytes, err := innerBase.signedTransactionFor(types.AccountID{})
	if err != nil {
		return err
	}

	t.innerBytes = append(t.innerBytes, signedBytes)
	t.innerIds = append(t.innerIds, innerBase.TransactionID())
	return nil
}

// InnerTransactionIDs returns the captured inner ids in batch order, for
// querying per-transaction receipts after the batch commits.
func (t *BatchTransaction) InnerTransactionIDs() []types.TransactionID {
	return append([]types.TransactionID(nil), t.innerIds...)
}

// Execute submits the batch. The batch itself retries and polls like any
// other transaction; the inner outcomes are read through their own receipts.
func (t *BatchTransaction) Execute(ctx context.Context, c *client.Client) (*TransactionResponse, error) {
	if len(t.innerBytes) == 0 {
		return nil, errors.Errorf("batch contains no inner transactions")
	}
	if len(t.innerBytes) > c.MaxBatchSize() {
		return nil, errors.Errorf(
			"batch of %d inner transactions exceeds the limit of %d", len(t.innerBytes), c.MaxBatchSize())
	}
	return t.Transaction.Execute(ctx, c)
}

func (t *BatchTransaction) applyTo(body *services.TransactionBody) {
	body.Data = &services.TransactionBody_AtomicBatch{
		AtomicBatch: &services.AtomicBatchTransactionBody{Transactions: t.innerBytes},
	}
}

func (t *BatchTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewUtilServiceClient(conn).AtomicBatch(ctx, request)
}
