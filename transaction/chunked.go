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

	"github.com/pkg/errors"

	"github.com/hiero-ledger/hiero-client-go/client"
	"github.com/hiero-ledger/hiero-client-go/hierr"
	"github.com/hiero-ledger/hiero-client-go/types"
)

// requiredChunks returns how many chunks a payload needs. An empty payload
// still takes one chunk, carrying no data.
func requiredChunks(dataLen, chunkSize int) int {
	if dataLen == 0 {
		return 1
	}
	return (dataLen + chunkSize - 1) / chunkSize
}

// executeChunks splits the payload and drives one transaction per chunk,
// sequentially. Chunk i gets the base transaction id advanced by i-1
// nanoseconds, so the first chunk carries the base id itself and the ids stay
// unique per (payer, valid start). Each chunk's receipt is awaited before the
// next chunk is submitted; a failure aborts the remainder and reports the
// failing index, with earlier chunks already committed.
func executeChunks(
	ctx context.Context,
	c *client.Client,
	data []byte,
	chunkSize, maxChunks int,
	baseId types.TransactionID,
	build func(chunk []byte, number, total int, transactionId types.TransactionID) *Transaction,
) ([]*TransactionResponse, error) {
	if chunkSize <= 0 {
		return nil, errors.Errorf("chunk size must be positive, have %d", chunkSize)
	}

	total := requiredChunks(len(data), chunkSize)
	if total > maxChunks {
		return nil, errors.Errorf(
			"payload of %d bytes requires %d chunks, only %d allowed", len(data), total, maxChunks)
	}

	responses := make([]*TransactionResponse, 0, total)
	for i := 1; i <= total; i++ {
		start := (i - 1) * chunkSize
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		}

		chunk := build(data[start:end], i, total, baseId.Advance(i-1))
		response, err := chunk.Execute(ctx, c)
		if err != nil {
			return responses, &hierr.ChunkError{Index: i, Total: total, Err: err}
		}
		if _, err := response.GetReceipt(ctx, c); err != nil {
			return responses, &hierr.ChunkError{Index: i, Total: total, Err: err}
		}
		responses = append(responses, response)
	}
	return responses, nil
}
