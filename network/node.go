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

package network

import (
	"crypto/tls"
	"sync"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/hiero-ledger/hiero-client-go/types"
)

// node is one consensus node the network can submit to. The gRPC channel is
// dialed lazily on first use and reused for the node's lifetime.
type node struct {
	accountId types.AccountID
	address   string
	secure    bool

	mu   sync.Mutex
	conn *grpc.ClientConn
}

func newNode(accountId types.AccountID, address string, secure bool) *node {
	return &node{accountId: accountId, address: address, secure: secure}
}

func (n *node) channel() (*grpc.ClientConn, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn != nil {
		return n.conn, nil
	}

	creds := insecure.NewCredentials()
	if n.secure {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	conn, err := grpc.NewClient(n.address, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create channel to node %s at %s", n.accountId, n.address)
	}

	n.conn = conn
	return conn, nil
}

func (n *node) close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.conn == nil {
		return nil
	}

	err := n.conn.Close()
	n.conn = nil
	return err
}
