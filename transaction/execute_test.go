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
	"net"
	"sync"
	"testing"
	"time"

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"

	"github.com/hiero-ledger/hiero-client-go/client"
	"github.com/hiero-ledger/hiero-client-go/crypto"
	"github.com/hiero-ledger/hiero-client-go/hierr"
	"github.com/hiero-ledger/hiero-client-go/network"
	"github.com/hiero-ledger/hiero-client-go/types"
)

// fakeNode serves the crypto and consensus services on a loopback listener,
// recording the decoded body of every submission. Receipt polls always
// succeed; precheck codes follow the per-service script, sticking to the last
// entry once it runs out.
type fakeNode struct {
	services.UnimplementedCryptoServiceServer
	services.UnimplementedConsensusServiceServer

	mu                sync.Mutex
	transferPrechecks []services.ResponseCodeEnum
	submitPrechecks   []services.ResponseCodeEnum
	transferBodies    []*services.TransactionBody
	submitBodies      []*services.TransactionBody
}

func decodeRequest(request *services.Transaction) (*services.TransactionBody, error) {
	var signed services.SignedTransaction
	if err := proto.Unmarshal(request.GetSignedTransactionBytes(), &signed); err != nil {
		return nil, err
	}
	var body services.TransactionBody
	if err := proto.Unmarshal(signed.GetBodyBytes(), &body); err != nil {
		return nil, err
	}
	return &body, nil
}

func nextPrecheck(script []services.ResponseCodeEnum, call int) services.ResponseCodeEnum {
	if len(script) == 0 {
		return services.ResponseCodeEnum_OK
	}
	if call >= len(script) {
		call = len(script) - 1
	}
	return script[call]
}

func (n *fakeNode) CryptoTransfer(
	ctx context.Context, request *services.Transaction,
) (*services.TransactionResponse, error) {
	body, err := decodeRequest(request)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	precheck := nextPrecheck(n.transferPrechecks, len(n.transferBodies))
	n.transferBodies = append(n.transferBodies, body)
	return &services.TransactionResponse{NodeTransactionPrecheckCode: precheck}, nil
}

func (n *fakeNode) SubmitMessage(
	ctx context.Context, request *services.Transaction,
) (*services.TransactionResponse, error) {
	body, err := decodeRequest(request)
	if err != nil {
		return nil, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	precheck := nextPrecheck(n.submitPrechecks, len(n.submitBodies))
	n.submitBodies = append(n.submitBodies, body)
	return &services.TransactionResponse{NodeTransactionPrecheckCode: precheck}, nil
}

func (n *fakeNode) GetTransactionReceipts(
	ctx context.Context, query *services.Query,
) (*services.Response, error) {
	return &services.Response{
		Response: &services.Response_TransactionGetReceipt{
			TransactionGetReceipt: &services.TransactionGetReceiptResponse{
				Header:  &services.ResponseHeader{NodeTransactionPrecheckCode: services.ResponseCodeEnum_OK},
				Receipt: &services.TransactionReceipt{Status: services.ResponseCodeEnum_SUCCESS},
			},
		},
	}, nil
}

func (n *fakeNode) transfers() []*services.TransactionBody {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]*services.TransactionBody(nil), n.transferBodies...)
}

func (n *fakeNode) submissions() []*services.TransactionBody {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]*services.TransactionBody(nil), n.submitBodies...)
}

// startNode runs the fake node on loopback and returns a client with an
// operator, bound to it as node 0.0.3.
func startNode(t *testing.T, node *fakeNode) *client.Client {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := grpc.NewServer()
	services.RegisterCryptoServiceServer(server, node)
	services.RegisterConsensusServiceServer(server, node)
	go server.Serve(listener)
	t.Cleanup(server.Stop)

	sk, err := crypto.GenerateEd25519PrivateKey()
	require.NoError(t, err)

	nodeNetwork := network.ForNetwork(map[string]types.AccountID{
		listener.Addr().String(): {Account: 3},
	})
	c := client.NewClient(nodeNetwork).
		SetOperator(types.AccountID{Account: 1001}, sk).
		SetBackoff(time.Millisecond, 2*time.Millisecond)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestTransferExecuteAndReceipt(t *testing.T) {
	// given
	node := &fakeNode{}
	c := startNode(t, node)
	tx := NewTransferTransaction().
		AddHbarTransfer(types.AccountID{Account: 7}, types.NewHbar(-1)).
		AddHbarTransfer(types.AccountID{Account: 8}, types.NewHbar(1))

	// when
	response, err := tx.Execute(context.Background(), c)

	// then the draft was auto-frozen, operator-signed and accepted
	require.NoError(t, err)
	assert.True(t, response.TransactionID.AccountID.Equals(types.AccountID{Account: 1001}))
	assert.True(t, response.NodeAccountID.Equals(types.AccountID{Account: 3}))
	assert.Len(t, response.Hash, 48)

	receipt, err := response.GetReceipt(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, types.StatusSuccess, receipt.Status)

	transfers := node.transfers()
	require.Len(t, transfers, 1)
	assert.Equal(t, int64(3), transfers[0].GetNodeAccountID().GetAccountNum())
	assert.NotNil(t, transfers[0].GetCryptoTransfer())
}

func TestExecuteRetriesBusyPrecheck(t *testing.T) {
	node := &fakeNode{transferPrechecks: []services.ResponseCodeEnum{
		services.ResponseCodeEnum_BUSY,
		services.ResponseCodeEnum_OK,
	}}
	c := startNode(t, node)
	tx := NewTransferTransaction().
		AddHbarTransfer(types.AccountID{Account: 7}, types.NewHbar(-1)).
		AddHbarTransfer(types.AccountID{Account: 8}, types.NewHbar(1))

	_, err := tx.Execute(context.Background(), c)

	require.NoError(t, err)
	assert.Len(t, node.transfers(), 2)
}

func TestExecuteFatalPrecheck(t *testing.T) {
	node := &fakeNode{transferPrechecks: []services.ResponseCodeEnum{
		services.ResponseCodeEnum_INSUFFICIENT_PAYER_BALANCE,
	}}
	c := startNode(t, node)
	tx := NewTransferTransaction().
		AddHbarTransfer(types.AccountID{Account: 7}, types.NewHbar(-1)).
		AddHbarTransfer(types.AccountID{Account: 8}, types.NewHbar(1))

	_, err := tx.Execute(context.Background(), c)

	var precheckErr *hierr.PrecheckError
	require.True(t, errors.As(err, &precheckErr))
	assert.Equal(t, types.StatusInsufficientPayerBalance, precheckErr.Status)
	assert.Len(t, node.transfers(), 1)

	// the instance counts as executed even though submission failed
	_, err = tx.Execute(context.Background(), c)
	assert.True(t, errors.Is(err, hierr.ErrTransactionExecuted))
}

func TestTopicMessageChunkedSubmission(t *testing.T) {
	// given a 10-byte message forced into 4-byte chunks
	node := &fakeNode{}
	c := startNode(t, node)
	tx := NewTopicMessageSubmitTransaction().
		SetTopicID(types.TopicID{Topic: 777}).
		SetMessage([]byte("0123456789")).
		SetChunkSize(4)
	tx.SetTransactionID(fixedTransactionID())

	// when
	responses, err := tx.ExecuteAll(context.Background(), c)

	// then three chunks arrive in order, reassembling the message
	require.NoError(t, err)
	require.Len(t, responses, 3)

	submissions := node.submissions()
	require.Len(t, submissions, 3)

	baseId := fixedTransactionID()
	var reassembled []byte
	for i, body := range submissions {
		submit := body.GetConsensusSubmitMessage()
		require.NotNil(t, submit)
		assert.Equal(t, int64(777), submit.GetTopicID().GetTopicNum())

		info := submit.GetChunkInfo()
		require.NotNil(t, info)
		assert.Equal(t, int32(3), info.GetTotal())
		assert.Equal(t, int32(i+1), info.GetNumber())
		assert.Equal(t, baseId.ToProto().String(), info.GetInitialTransactionID().String())

		// chunk i carries the base id advanced by i-1 nanoseconds
		expectedId := baseId.Advance(i)
		assert.Equal(t, expectedId.ToProto().String(), body.GetTransactionID().String())

		reassembled = append(reassembled, submit.GetMessage()...)
	}
	assert.Equal(t, []byte("0123456789"), reassembled)
}

func TestChunkFailureReportsIndex(t *testing.T) {
	// the second chunk is rejected outright
	node := &fakeNode{submitPrechecks: []services.ResponseCodeEnum{
		services.ResponseCodeEnum_OK,
		services.ResponseCodeEnum_INVALID_TOPIC_ID,
	}}
	c := startNode(t, node)
	tx := NewTopicMessageSubmitTransaction().
		SetTopicID(types.TopicID{Topic: 777}).
		SetMessage([]byte("0123456789")).
		SetChunkSize(4)

	responses, err := tx.ExecuteAll(context.Background(), c)

	var chunkErr *hierr.ChunkError
	require.True(t, errors.As(err, &chunkErr))
	assert.Equal(t, 2, chunkErr.Index)
	assert.Equal(t, 3, chunkErr.Total)
	var precheckErr *hierr.PrecheckError
	assert.True(t, errors.As(chunkErr.Err, &precheckErr))

	// the first chunk was committed before the failure
	assert.Len(t, responses, 1)
}
