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

package types

import (
	"encoding/hex"
	"fmt"

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/hiero-ledger/hiero-client-go/tools"
)

// NodeAddress is one consensus node's entry in the network address book.
// AccountID is nil when the address book record carries no node account; the
// absence round-trips through the wire form.
type NodeAddress struct {
	PublicKey   string
	AccountID   *AccountID
	NodeID      int64
	CertHash    []byte
	Endpoints   []*Endpoint
	Description string
}

func NodeAddressFromProto(pb *services.NodeAddress) (*NodeAddress, error) {
	if pb == nil {
		return nil, errors.Errorf("nil NodeAddress message")
	}

	node := &NodeAddress{
		PublicKey:   pb.GetRSA_PubKey(),
		NodeID:      pb.GetNodeId(),
		CertHash:    append([]byte(nil), pb.GetNodeCertHash()...),
		Description: pb.GetDescription(),
	}

	if pb.GetNodeAccountId() != nil {
		accountId, err := AccountIDFromProto(pb.GetNodeAccountId())
		if err != nil {
			return nil, err
		}
		node.AccountID = &accountId
	}

	for _, endpoint := range pb.GetServiceEndpoint() {
		node.Endpoints = append(node.Endpoints, EndpointFromProto(endpoint))
	}
	return node, nil
}

type nodeAddressRecord struct {
	PublicKey        string                   `mapstructure:"public_key"`
	NodeAccountId    string                   `mapstructure:"node_account_id"`
	NodeId           int64                    `mapstructure:"node_id"`
	NodeCertHash     string                   `mapstructure:"node_cert_hash"`
	Description      string                   `mapstructure:"description"`
	ServiceEndpoints []map[string]interface{} `mapstructure:"service_endpoints"`
}

// NodeAddressFromMap builds a NodeAddress from a structured address-book
// record. The cert hash is hex, with an optional 0x prefix.
func NodeAddressFromMap(data map[string]interface{}) (*NodeAddress, error) {
	var record nodeAddressRecord
	if err := mapstructure.Decode(data, &record); err != nil {
		return nil, errors.Wrap(err, "failed to decode node address record")
	}

	node := &NodeAddress{
		PublicKey:   record.PublicKey,
		NodeID:      record.NodeId,
		Description: record.Description,
	}

	if record.NodeAccountId != "" {
		accountId, err := AccountIDFromString(record.NodeAccountId)
		if err != nil {
			return nil, err
		}
		node.AccountID = &accountId
	}

	if record.NodeCertHash != "" {
		certHash, err := hex.DecodeString(tools.SafeRemoveHexPrefix(record.NodeCertHash))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid node cert hash %q", record.NodeCertHash)
		}
		node.CertHash = certHash
	}

	for _, endpointData := range record.ServiceEndpoints {
		endpoint, err := EndpointFromMap(endpointData)
		if err != nil {
			return nil, err
		}
		node.Endpoints = append(node.Endpoints, endpoint)
	}
	return node, nil
}

// ToProto encodes the node entry. An absent account id leaves the field unset
// rather than encoding 0.0.0.
func (n *NodeAddress) ToProto() *services.NodeAddress {
	pb := &services.NodeAddress{
		RSA_PubKey:   n.PublicKey,
		NodeId:       n.NodeID,
		NodeCertHash: append([]byte(nil), n.CertHash...),
		Description:  n.Description,
	}
	if n.AccountID != nil {
		pb.NodeAccountId = n.AccountID.ToProto()
	}
	for _, endpoint := range n.Endpoints {
		pb.ServiceEndpoint = append(pb.ServiceEndpoint, endpoint.ToProto())
	}
	return pb
}

func (n *NodeAddress) String() string {
	accountId := ""
	if n.AccountID != nil {
		accountId = n.AccountID.String()
	}

	endpoints := ""
	for _, endpoint := range n.Endpoints {
		if address, err := endpoint.ConnectString(); err == nil {
			endpoints += address + " "
		}
	}

	return fmt.Sprintf(
		"NodeAccountId: %s Addresses: %sCertHash: %s NodeId: %d PubKey: %s",
		accountId, endpoints, hex.EncodeToString(n.CertHash), n.NodeID, n.PublicKey)
}
