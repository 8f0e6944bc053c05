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

// Package network tracks the set of consensus nodes a client submits to and
// owns their gRPC channels.
package network

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/hiero-ledger/hiero-client-go/logger"
	"github.com/hiero-ledger/hiero-client-go/types"
)

const (
	MainnetName    = "mainnet"
	TestnetName    = "testnet"
	PreviewnetName = "previewnet"
)

var (
	mainnetNodes = map[string]types.AccountID{
		"35.237.200.180:50211": {Account: 3},
		"35.186.191.247:50211": {Account: 4},
		"35.192.2.25:50211":    {Account: 5},
		"35.199.161.108:50211": {Account: 6},
	}
	testnetNodes = map[string]types.AccountID{
		"0.testnet.hedera.com:50211": {Account: 3},
		"1.testnet.hedera.com:50211": {Account: 4},
		"2.testnet.hedera.com:50211": {Account: 5},
		"3.testnet.hedera.com:50211": {Account: 6},
	}
	previewnetNodes = map[string]types.AccountID{
		"0.previewnet.hedera.com:50211": {Account: 3},
		"1.previewnet.hedera.com:50211": {Account: 4},
		"2.previewnet.hedera.com:50211": {Account: 5},
		"3.previewnet.hedera.com:50211": {Account: 6},
	}
)

// Network is the mutable node set. Replacing the node set retires the old
// nodes but keeps their channels open; in-flight submissions finish on the
// channel they started with, and retired channels close with the network.
type Network struct {
	mu      sync.RWMutex
	nodes   map[string]*node // keyed by node account id string
	retired []*node
	secure  bool
	logger  *log.Entry
}

// ForNetwork builds a network from an explicit address to node account id map.
func ForNetwork(nodeMap map[string]types.AccountID) *Network {
	network := &Network{
		nodes:  make(map[string]*node),
		logger: logger.New("network"),
	}
	for address, accountId := range nodeMap {
		network.nodes[accountId.String()] = newNode(accountId, address, false)
	}
	return network
}

// ForName returns the named public network.
func ForName(name string) (*Network, error) {
	switch name {
	case MainnetName:
		return ForMainnet(), nil
	case TestnetName:
		return ForTestnet(), nil
	case PreviewnetName:
		return ForPreviewnet(), nil
	}
	return nil, errors.Errorf("unknown network name %q", name)
}

func ForMainnet() *Network {
	return ForNetwork(mainnetNodes)
}

func ForTestnet() *Network {
	return ForNetwork(testnetNodes)
}

func ForPreviewnet() *Network {
	return ForNetwork(previewnetNodes)
}

// SetTransportSecurity switches the credentials used for channels dialed from
// now on. Existing channels are unaffected.
func (n *Network) SetTransportSecurity(secure bool) *Network {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.secure = secure
	for _, node := range n.nodes {
		node.secure = secure
	}
	return n
}

// NodeAccountIDs returns the current node account ids in a stable order.
func (n *Network) NodeAccountIDs() []types.AccountID {
	n.mu.RLock()
	defer n.mu.RUnlock()

	accountIds := make([]types.AccountID, 0, len(n.nodes))
	for _, node := range n.nodes {
		accountIds = append(accountIds, node.accountId)
	}
	sort.Slice(accountIds, func(i, j int) bool {
		a, b := accountIds[i], accountIds[j]
		if a.Shard != b.Shard {
			return a.Shard < b.Shard
		}
		if a.Realm != b.Realm {
			return a.Realm < b.Realm
		}
		return a.Account < b.Account
	})
	return accountIds
}

// ChannelFor returns the gRPC channel to the given node, dialing it if needed.
func (n *Network) ChannelFor(accountId types.AccountID) (*grpc.ClientConn, error) {
	n.mu.RLock()
	node, ok := n.nodes[accountId.String()]
	n.mu.RUnlock()

	if !ok {
		return nil, errors.Errorf("node %s is not part of the network", accountId)
	}
	return node.channel()
}

// SetNetworkFromAddressBook replaces the node set with the address book's
// entries. Entries without a node account id or without a usable endpoint are
// skipped. The previous nodes are retired, not closed, so submissions already
// running against them can finish.
func (n *Network) SetNetworkFromAddressBook(nodeAddresses []*types.NodeAddress) error {
	nodes := make(map[string]*node)
	for _, nodeAddress := range nodeAddresses {
		if nodeAddress.AccountID == nil {
			n.logger.Warnf("skipping address book entry for node id %d without a node account id", nodeAddress.NodeID)
			continue
		}

		var address string
		for _, endpoint := range nodeAddress.Endpoints {
			if connectString, err := endpoint.ConnectString(); err == nil {
				address = connectString
				break
			}
		}
		if address == "" {
			n.logger.Warnf("skipping address book entry for node %s without a usable endpoint", nodeAddress.AccountID)
			continue
		}

		nodes[nodeAddress.AccountID.String()] = newNode(*nodeAddress.AccountID, address, n.secure)
	}

	if len(nodes) == 0 {
		return errors.Errorf("address book contains no usable nodes")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, old := range n.nodes {
		n.retired = append(n.retired, old)
	}
	n.nodes = nodes
	return nil
}

// Close closes every channel, including those of retired nodes.
func (n *Network) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	var firstErr error
	for _, node := range n.nodes {
		if err := node.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, node := range n.retired {
		if err := node.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	n.retired = nil
	return firstErr
}
