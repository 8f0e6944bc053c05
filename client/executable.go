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

package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hiero-ledger/hiero-client-go/types"
)

// ExecutionState is a single attempt's verdict, reported by the executable so
// the retry engine stays agnostic of request semantics.
type ExecutionState int

const (
	// ExecutionStateFinished means the attempt succeeded; stop.
	ExecutionStateFinished ExecutionState = iota
	// ExecutionStateRetry means a transient failure; try the next node after a
	// backoff delay.
	ExecutionStateRetry
	// ExecutionStateError means a permanent failure; stop and surface the
	// error.
	ExecutionStateError
)

// Executable is a request the client's retry engine can drive: it names the
// nodes it may be submitted to and performs one submission attempt at a time.
type Executable interface {
	// NodeAccountIDs returns the nodes the request is bound to, in rotation
	// order. An empty slice lets the engine use the whole network.
	NodeAccountIDs() []types.AccountID

	// SubmitTo performs one attempt against the given node and classifies the
	// outcome. The returned error accompanies ExecutionStateRetry and
	// ExecutionStateError.
	SubmitTo(ctx context.Context, conn *grpc.ClientConn, node types.AccountID) (ExecutionState, error)
}

// TransportRetryable reports whether a gRPC transport error warrants trying
// another node. Only node-local conditions qualify; anything the network
// adjudicated travels as a response status, not a transport code.
func TransportRetryable(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.ResourceExhausted:
		return true
	}
	return false
}
