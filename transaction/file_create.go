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
	"time"

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"google.golang.org/grpc"

	"github.com/hiero-ledger/hiero-client-go/crypto"
)

const defaultFileExpiration = 7890000 * time.Second

// FileCreateTransaction creates a file holding the initial contents. Contents
// beyond a single transaction's capacity are added with FileAppendTransaction
// afterwards.
type FileCreateTransaction struct {
	Transaction
	keys           []crypto.PublicKey
	contents       []byte
	expirationTime time.Time
	fileMemo       string
}

func NewFileCreateTransaction() *FileCreateTransaction {
	tx := &FileCreateTransaction{expirationTime: time.Now().Add(defaultFileExpiration)}
	tx.Transaction = newTransaction(tx)
	return tx
}

// SetKeys sets the keys that must all sign file modifications. A file created
// without keys is immutable.
func (t *FileCreateTransaction) SetKeys(keys ...crypto.PublicKey) *FileCreateTransaction {
	if t.requireDraft() {
		t.keys = append([]crypto.PublicKey(nil), keys...)
	}
	return t
}

func (t *FileCreateTransaction) SetContents(contents []byte) *FileCreateTransaction {
	if t.requireDraft() {
		t.contents = append([]byte(nil), contents...)
	}
	return t
}

func (t *FileCreateTransaction) SetExpirationTime(expirationTime time.Time) *FileCreateTransaction {
	if t.requireDraft() {
		t.expirationTime = expirationTime
	}
	return t
}

func (t *FileCreateTransaction) SetFileMemo(memo string) *FileCreateTransaction {
	if t.requireDraft() {
		t.fileMemo = memo
	}
	return t
}

func (t *FileCreateTransaction) applyTo(body *services.TransactionBody) {
	create := &services.FileCreateTransactionBody{
		ExpirationTime: &services.Timestamp{
			Seconds: t.expirationTime.Unix(),
			Nanos:   int32(t.expirationTime.Nanosecond()),
		},
		Contents: t.contents,
		Memo:     t.fileMemo,
	}
	if len(t.keys) > 0 {
		keyList := &services.KeyList{}
		for _, key := range t.keys {
			keyList.Keys = append(keyList.Keys, key.ToProto())
		}
		create.Keys = keyList
	}
	body.Data = &services.TransactionBody_FileCreate{FileCreate: create}
}

func (t *FileCreateTransaction) submit(
	ctx context.Context, conn *grpc.ClientConn, request *services.Transaction,
) (*services.TransactionResponse, error) {
	return services.NewFileServiceClient(conn).CreateFile(ctx, request)
}
