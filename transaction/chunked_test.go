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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiero-ledger/hiero-client-go/client"
	"github.com/hiero-ledger/hiero-client-go/hierr"
	"github.com/hiero-ledger/hiero-client-go/network"
	"github.com/hiero-ledger/hiero-client-go/types"
)

func TestRequiredChunks(t *testing.T) {
	tests := []struct {
		name      string
		dataLen   int
		chunkSize int
		expected  int
	}{
		{name: "empty payload takes one chunk", dataLen: 0, chunkSize: 1024, expected: 1},
		{name: "below chunk size", dataLen: 100, chunkSize: 1024, expected: 1},
		{name: "exact chunk size", dataLen: 1024, chunkSize: 1024, expected: 1},
		{name: "one byte over", dataLen: 1025, chunkSize: 1024, expected: 2},
		{name: "exact multiple", dataLen: 3072, chunkSize: 1024, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, requiredChunks(tt.dataLen, tt.chunkSize))
		})
	}
}

func TestExecuteAllRejectsNonPositiveChunkSize(t *testing.T) {
	c := offlineClient(t)
	tx := NewTopicMessageSubmitTransaction().
		SetTopicID(types.TopicID{Topic: 777}).
		SetMessage([]byte("hello")).
		SetChunkSize(-1)

	_, err := tx.ExecuteAll(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chunk size must be positive")
}

func TestExecuteAllRejectsOversizedMessage(t *testing.T) {
	c := offlineClient(t)
	tx := NewTopicMessageSubmitTransaction().
		SetTopicID(types.TopicID{Topic: 777}).
		SetMessage(make([]byte, 50)).
		SetChunkSize(10).
		SetMaxChunks(2)

	_, err := tx.ExecuteAll(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only 2 allowed")
}

func TestExecuteAllWithoutOperatorOrID(t *testing.T) {
	c := client.NewClient(network.ForTestnet())
	defer c.Close()
	tx := NewTopicMessageSubmitTransaction().
		SetTopicID(types.TopicID{Topic: 777}).
		SetMessage([]byte("hello"))

	_, err := tx.ExecuteAll(context.Background(), c)
	assert.True(t, errors.Is(err, hierr.ErrNoOperator))
}

func TestExecuteAllTwiceFails(t *testing.T) {
	c := offlineClient(t)
	tx := NewTopicMessageSubmitTransaction().
		SetTopicID(types.TopicID{Topic: 777}).
		SetMessage([]byte("hello"))
	tx.state = stateExecuted

	_, err := tx.ExecuteAll(context.Background(), c)
	assert.True(t, errors.Is(err, hierr.ErrTransactionExecuted))
}

func TestFileAppendChunkLimits(t *testing.T) {
	c := offlineClient(t)
	tx := NewFileAppendTransaction().
		SetFileID(types.FileID{File: 111}).
		SetContents(make([]byte, 50)).
		SetChunkSize(10).
		SetMaxChunks(2)

	_, err := tx.ExecuteAll(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only 2 allowed")
}
