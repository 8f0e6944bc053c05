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

// Package hierr defines the error taxonomy surfaced by the client: typed
// errors for network-adjudicated failures and sentinel errors for local
// lifecycle misuse. Callers distinguish them with errors.As and errors.Is.
package hierr

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hiero-ledger/hiero-client-go/types"
)

var (
	// ErrTransactionFrozen is returned when a mutating setter is called on a
	// frozen transaction.
	ErrTransactionFrozen = errors.New("transaction is frozen and can no longer be modified")

	// ErrTransactionNotFrozen is returned when an operation that requires a
	// frozen transaction, such as signing, is attempted on a draft.
	ErrTransactionNotFrozen = errors.New("transaction must be frozen first")

	// ErrTransactionExecuted is returned when a transaction that already
	// entered execution is submitted or mutated again.
	ErrTransactionExecuted = errors.New("transaction has already been executed")

	// ErrNoOperator is returned when an operation needs the client operator
	// (fee payer and default signer) and none is configured.
	ErrNoOperator = errors.New("client has no operator configured")

	// ErrEmptyNetwork is returned when execution is attempted against a client
	// whose network has no nodes.
	ErrEmptyNetwork = errors.New("client network has no nodes")
)

// PrecheckError reports that a node rejected a submission before consensus.
// The status is the node's precheck response code.
type PrecheckError struct {
	Status        types.Status
	TransactionID types.TransactionID
	NodeAccountID types.AccountID
}

func (e *PrecheckError) Error() string {
	return fmt.Sprintf("transaction %s failed precheck with status %s at node %s",
		e.TransactionID, e.Status, e.NodeAccountID)
}

// ReceiptStatusError reports that a transaction reached consensus but the
// network committed a failure outcome. The receipt carries the full detail.
type ReceiptStatusError struct {
	Status        types.Status
	TransactionID types.TransactionID
	Receipt       types.Receipt
}

func (e *ReceiptStatusError) Error() string {
	return fmt.Sprintf("receipt for transaction %s reported status %s", e.TransactionID, e.Status)
}

// MaxAttemptsError reports that the retry loop exhausted its attempt budget.
// Last is the error from the final attempt and is exposed through Unwrap.
type MaxAttemptsError struct {
	Attempts int
	Last     error
}

func (e *MaxAttemptsError) Error() string {
	if e.Last == nil {
		return fmt.Sprintf("exceeded maximum attempts (%d)", e.Attempts)
	}
	return fmt.Sprintf("exceeded maximum attempts (%d), last error: %v", e.Attempts, e.Last)
}

func (e *MaxAttemptsError) Unwrap() error {
	return e.Last
}

// ChunkError reports a failure while executing one chunk of a chunked
// transaction. Index is 1-based; chunks before it have already committed.
type ChunkError struct {
	Index int
	Total int
	Err   error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("chunk %d of %d failed: %v", e.Index, e.Total, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}
