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

package config

import (
	"time"

	"github.com/hiero-ledger/hiero-client-go/types"
)

type Config struct {
	Backoff        Backoff
	Batch          Batch
	Chunk          Chunk
	Log            Log
	MaxAttempts    int `yaml:"maxAttempts" validate:"gt=0"`
	Metrics        Metrics
	Network        string `validate:"required"`
	Nodes          NodeMap
	Operator       Operator
	RequestTimeout time.Duration `yaml:"requestTimeout" validate:"gt=0"`
	Tls            Tls
}

type Backoff struct {
	Max time.Duration `validate:"gt=0"`
	Min time.Duration `validate:"gt=0,ltefield=Max"`
}

type Batch struct {
	MaxSize int `yaml:"maxSize" validate:"gt=0"`
}

type Chunk struct {
	MaxChunks int `yaml:"maxChunks" validate:"gt=0"`
	Size      int `validate:"gt=0"`
}

type Log struct {
	Level string
}

type Metrics struct {
	Enabled bool
}

// NodeMap maps a node's "host:port" connect string to its account id. A
// non-empty map replaces the named network entirely.
type NodeMap map[string]types.AccountID

type Operator struct {
	Id  string
	Key string
}

type Tls struct {
	Enabled bool
}
