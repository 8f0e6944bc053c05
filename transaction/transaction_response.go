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

	"github.com/hiero-ledger/hiero-client-go/client"
	"github.com/hiero-ledger/hiero-client-go/query"
	"github.com/hiero-ledger/hiero-client-go/types"
)

// TransactionResponse is the handle to a submission the network accepted:
// which node took it, under which id, and the sha-384 hash of the submitted
// wire bytes. Acceptance is not outcome; poll the receipt for that.
type TransactionResponse struct {
	TransactionID types.TransactionID
	NodeAccountID types.AccountID
	Hash          []byte
}

// GetReceipt polls the accepting node until the network commits an outcome.
// A committed failure status is returned as a ReceiptStatusError alongside
// the receipt itself.
func (r *TransactionResponse) GetReceipt(ctx context.Context, c *client.Client) (types.Receipt, error) {
	return query.NewReceiptQuery(r.TransactionID).
		SetNodeAccountIDs([]types.AccountID{r.NodeAccountID}).
		Execute(ctx, c)
}
