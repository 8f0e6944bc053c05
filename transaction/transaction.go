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

// Package transaction implements the write-side requests of the protocol
// engine. Every transaction moves through the same lifecycle: build (draft
// setters), freeze (bind payer, nodes and per-node wire bodies), sign
// (accumulate signature pairs over the frozen bodies), execute (submit through
// the client's retry loop), then poll the receipt.
package transaction

import (
	"bytes"
	"context"
	"crypto/sha512"
	"time"

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"

	"github.com/hiero-ledger/hiero-client-go/client"
	"github.com/hiero-ledger/hiero-client-go/crypto"
	"github.com/hiero-ledger/hiero-client-go/hierr"
	"github.com/hiero-ledger/hiero-client-go/types"
)

const defaultValidDuration = 120 * time.Second

var defaultMaxTransactionFee = types.NewHbar(2)

type txState int

const (
	stateDraft txState = iota
	stateFrozen
	stateExecuted
)

// txBody is the per-type part of a transaction: it fills the body's data
// field and knows which gRPC service method carries it.
type txBody interface {
	applyTo(body *services.TransactionBody)
	submit(ctx context.Context, conn *grpc.ClientConn, request *services.Transaction) (*services.TransactionResponse, error)
}

// Transaction is the shared lifecycle core embedded by every transaction
// type. The frozen form holds one marshaled body per candidate node, differing
// only in the node account id, so a signature set covers every node the
// request may rotate to.
type Transaction struct {
	body txBody

	state       txState
	deferredErr error

	transactionId  types.TransactionID
	nodeAccountIds []types.AccountID
	validDuration  time.Duration
	maxFee         types.Hbar
	memo           string
	batchKey       *crypto.PublicKey

	bodyBytes    map[string][]byte
	signatures   map[string][]*services.SignaturePair
	frozenClient *client.Client

	submittedNode types.AccountID
	submittedHash []byte
}

func newTransaction(body txBody) Transaction {
	return Transaction{
		body:          body,
		validDuration: defaultValidDuration,
		maxFee:        defaultMaxTransactionFee,
	}
}

// requireDraft guards mutating setters. Mutation after freeze is recorded as
// a deferred error instead of failing the fluent chain; the error surfaces
// from Err, FreezeWith and Execute.
func (t *Transaction) requireDraft() bool {
	if t.state == stateDraft {
		return true
	}

	err := hierr.ErrTransactionFrozen
	if t.state == stateExecuted {
		err = hierr.ErrTransactionExecuted
	}
	if t.deferredErr == nil {
		t.deferredErr = err
	}
	return false
}

// Err returns the first lifecycle violation recorded by a setter, or nil.
func (t *Transaction) Err() error {
	return t.deferredErr
}

func (t *Transaction) SetTransactionID(transactionId types.TransactionID) *Transaction {
	if t.requireDraft() {
		t.transactionId = transactionId
	}
	return t
}

func (t *Transaction) TransactionID() types.TransactionID {
	return t.transactionId
}

func (t *Transaction) SetNodeAccountIDs(nodeAccountIds []types.AccountID) *Transaction {
	if t.requireDraft() {
		t.nodeAccountIds = append([]types.AccountID(nil), nodeAccountIds...)
	}
	return t
}

func (t *Transaction) NodeAccountIDs() []types.AccountID {
	return append([]types.AccountID(nil), t.nodeAccountIds...)
}

func (t *Transaction) SetTransactionValidDuration(duration time.Duration) *Transaction {
	if t.requireDraft() {
		t.validDuration = duration
	}
	return t
}

func (t *Transaction) SetMaxTransactionFee(fee types.Hbar) *Transaction {
	if t.requireDraft() {
		t.maxFee = fee
	}
	return t
}

func (t *Transaction) MaxTransactionFee() types.Hbar {
	return t.maxFee
}

func (t *Transaction) SetTransactionMemo(memo string) *Transaction {
	if t.requireDraft() {
		t.memo = memo
	}
	return t
}

func (t *Transaction) TransactionMemo() string {
	return t.memo
}

// SetBatchKey marks the transaction as an inner transaction of an atomic
// batch, to be co-signed by the holder of the given key. Either half of the
// pair is accepted; only the public half is tagged onto the body. Inner
// transactions are frozen against the placeholder node 0.0.0; the outer batch
// carries them to a real node.
func (t *Transaction) SetBatchKey(key crypto.Key) *Transaction {
	if t.requireDraft() {
		publicKey := key.Public()
		t.batchKey = &publicKey
	}
	return t
}

func (t *Transaction) BatchKey() *crypto.PublicKey {
	return t.batchKey
}

func (t *Transaction) IsFrozen() bool {
	return t.state != stateDraft
}

// Freeze binds the transaction using only what is already set; it fails if no
// transaction id was set since there is no operator to derive one from.
func (t *Transaction) Freeze() error {
	return t.FreezeWith(nil)
}

// FreezeWith binds the payer, the candidate node list and the per-node wire
// bodies, ending the build phase. A nil client requires the transaction id
// and node list to have been set explicitly. Freezing again is a no-op with
// the same client, an error with a different one: the frozen bodies are bound
// to the first client's operator and node set.
func (t *Transaction) FreezeWith(c *client.Client) error {
	if t.deferredErr != nil {
		return t.deferredErr
	}
	switch t.state {
	case stateExecuted:
		return hierr.ErrTransactionExecuted
	case stateFrozen:
		if c != nil && t.frozenClient != nil && c != t.frozenClient {
			return errors.Errorf("transaction is already frozen with a different client")
		}
		return nil
	}

	if t.transactionId.IsZero() {
		if c == nil || c.Operator() == nil {
			return hierr.ErrNoOperator
		}
		t.transactionId = types.GenerateTransactionID(c.Operator().AccountID)
	}

	if len(t.nodeAccountIds) == 0 {
		if t.batchKey != nil {
			// inner batch transactions are addressed to no real node
			t.nodeAccountIds = []types.AccountID{{}}
		} else {
			if c == nil {
				return errors.Errorf("no node account ids set and no client to take them from")
			}
			t.nodeAccountIds = c.Network().NodeAccountIDs()
			if len(t.nodeAccountIds) == 0 {
				return hierr.ErrEmptyNetwork
			}
		}
	}

	t.bodyBytes = make(map[string][]byte, len(t.nodeAccountIds))
	t.signatures = make(map[string][]*services.SignaturePair, len(t.nodeAccountIds))
	for _, node := range t.nodeAccountIds {
		raw, err := proto.Marshal(t.buildBody(node))
		if err != nil {
			return errors.Wrap(err, "failed to marshal transaction body")
		}
		t.bodyBytes[node.String()] = raw
	}

	t.state = stateFrozen
	t.frozenClient = c
	return nil
}

func (t *Transaction) buildBody(node types.AccountID) *services.TransactionBody {
	body := &services.TransactionBody{
		TransactionID:            t.transactionId.ToProto(),
		NodeAccountID:            node.ToProto(),
		TransactionFee:           uint64(t.maxFee.Tinybar()),
		TransactionValidDuration: &services.Duration{Seconds: int64(t.validDuration / time.Second)},
		Memo:                     t.memo,
	}
	if t.batchKey != nil {
		body.BatchKey = t.batchKey.ToProto()
	}
	t.body.applyTo(body)
	return body
}

// Sign signs every per-node body with the key. Signing again with the same
// key replaces the earlier signature instead of appending a duplicate.
func (t *Transaction) Sign(privateKey crypto.PrivateKey) error {
	if t.deferredErr != nil {
		return t.deferredErr
	}
	switch t.state {
	case stateDraft:
		return hierr.ErrTransactionNotFrozen
	case stateExecuted:
		return hierr.ErrTransactionExecuted
	}

	publicKey := privateKey.PublicKey()
	prefix := publicKey.BytesRaw()
	for node, raw := range t.bodyBytes {
		pair := signaturePair(privateKey, publicKey, raw)

		replaced := false
		for i, existing := range t.signatures[node] {
			if bytes.Equal(existing.PubKeyPrefix, prefix) {
				t.signatures[node][i] = pair
				replaced = true
				break
			}
		}
		if !replaced {
			t.signatures[node] = append(t.signatures[node], pair)
		}
	}
	return nil
}

// SignWithOperator freezes with the client if needed and signs with the
// client's operator key.
func (t *Transaction) SignWithOperator(c *client.Client) error {
	if c == nil || c.Operator() == nil {
		return hierr.ErrNoOperator
	}
	if t.state == stateDraft {
		if err := t.FreezeWith(c); err != nil {
			return err
		}
	}
	return t.Sign(c.Operator().PrivateKey)
}

func signaturePair(privateKey crypto.PrivateKey, publicKey crypto.PublicKey, message []byte) *services.SignaturePair {
	signature := privateKey.Sign(message)
	pair := &services.SignaturePair{PubKeyPrefix: publicKey.BytesRaw()}
	if publicKey.Algorithm() == crypto.KeyAlgorithmEd25519 {
		pair.Signature = &services.SignaturePair_Ed25519{Ed25519: signature}
	} else {
		pair.Signature = &services.SignaturePair_ECDSASecp256K1{ECDSASecp256K1: signature}
	}
	return pair
}

// signatureCount returns how many distinct keys have signed.
func (t *Transaction) signatureCount() int {
	for _, node := range t.nodeAccountIds {
		return len(t.signatures[node.String()])
	}
	return 0
}

// signedTransactionFor assembles the frozen body and accumulated signatures
// for one node into the signed wire form.
func (t *Transaction) signedTransactionFor(node types.AccountID) ([]byte, error) {
	raw, ok := t.bodyBytes[node.String()]
	if !ok {
		return nil, errors.Errorf("transaction is not frozen for node %s", node)
	}

	signed := &services.SignedTransaction{
		BodyBytes: raw,
		SigMap:    &services.SignatureMap{SigPair: t.signatures[node.String()]},
	}
	signedBytes, err := proto.Marshal(signed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal signed transaction")
	}
	return signedBytes, nil
}

// SubmitTo performs one submission attempt against the given node.
func (t *Transaction) SubmitTo(
	ctx context.Context, conn *grpc.ClientConn, node types.AccountID,
) (client.ExecutionState, error) {
	signedBytes, err := t.signedTransactionFor(node)
	if err != nil {
		return client.ExecutionStateError, err
	}

	request := &services.Transaction{SignedTransactionBytes: signedBytes}
	requestBytes, err := proto.Marshal(request)
	if err != nil {
		return client.ExecutionStateError, errors.Wrap(err, "failed to marshal transaction")
	}

	response, err := t.body.submit(ctx, conn, request)
	if err != nil {
		if client.TransportRetryable(err) {
			return client.ExecutionStateRetry, err
		}
		return client.ExecutionStateError, err
	}

	precheck := types.Status(response.GetNodeTransactionPrecheckCode())
	switch precheck.Class() {
	case types.StatusClassSuccess:
		hash := sha512.Sum384(requestBytes)
		t.submittedNode = node
		t.submittedHash = hash[:]
		return client.ExecutionStateFinished, nil
	case types.StatusClassRetryable, types.StatusClassUnknown:
		return client.ExecutionStateRetry, &hierr.PrecheckError{
			Status:        precheck,
			TransactionID: t.transactionId,
			NodeAccountID: node,
		}
	}
	return client.ExecutionStateError, &hierr.PrecheckError{
		Status:        precheck,
		TransactionID: t.transactionId,
		NodeAccountID: node,
	}
}

// Execute submits through the client's retry loop. A draft is frozen with the
// client first, and an unsigned transaction is signed with the operator. The
// transaction counts as executed whatever the outcome; re-executing the same
// instance is a lifecycle error, not a resubmission.
func (t *Transaction) Execute(ctx context.Context, c *client.Client) (*TransactionResponse, error) {
	if t.deferredErr != nil {
		return nil, t.deferredErr
	}
	if t.state == stateExecuted {
		return nil, hierr.ErrTransactionExecuted
	}

	if t.state == stateDraft {
		if err := t.FreezeWith(c); err != nil {
			return nil, err
		}
	}
	if t.signatureCount() == 0 {
		if err := t.SignWithOperator(c); err != nil {
			return nil, err
		}
	}

	t.state = stateExecuted
	if err := c.Execute(ctx, t); err != nil {
		return nil, err
	}

	return &TransactionResponse{
		TransactionID: t.transactionId,
		NodeAccountID: t.submittedNode,
		Hash:          append([]byte(nil), t.submittedHash...),
	}, nil
}
