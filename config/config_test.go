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
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiero-ledger/hiero-client-go/types"
)

const (
	invalidYaml                   = "this is invalid"
	invalidYamlIncorrectAccountId = `
hiero:
  client:
    nodes:
      "192.168.0.1:50211": 0.3`
	testConfigFilename = "application.yml"
	yml1               = `
hiero:
  client:
    maxAttempts: 15
    operator:
      id: 0.0.1001
    requestTimeout: 30s`
	yml2 = `
hiero:
  client:
    backoff:
      min: 500ms
    network: MAINNET`
	serviceEndpoint = "192.168.0.1:50211"
)

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "testnet", config.Network)
	assert.Equal(t, 10, config.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, config.Backoff.Min)
	assert.Equal(t, 8*time.Second, config.Backoff.Max)
	assert.Equal(t, 2*time.Minute, config.RequestTimeout)
	assert.Equal(t, 1024, config.Chunk.Size)
	assert.Equal(t, 20, config.Chunk.MaxChunks)
	assert.Equal(t, 25, config.Batch.MaxSize)
	assert.False(t, config.Metrics.Enabled)
	assert.False(t, config.Tls.Enabled)
	assert.Empty(t, config.Operator.Id)
	assert.Empty(t, config.Nodes)
}

func TestLoadDefaultConfigInvalidYamlString(t *testing.T) {
	original := defaultConfig
	defaultConfig = "foobar"

	config, err := LoadConfig()

	defaultConfig = original
	assert.Error(t, err)
	assert.Nil(t, config)
}

func TestLoadCustomConfig(t *testing.T) {
	tests := []struct {
		name    string
		fromCwd bool
	}{
		{name: "from current directory", fromCwd: true},
		{name: "from env var"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir, filePath := createYamlConfigFile(yml1, t)
			defer os.RemoveAll(tempDir)

			if tt.fromCwd {
				os.Chdir(tempDir)
			} else {
				em := envManager{}
				em.SetEnv(clientConfigEnvKey, filePath)
				t.Cleanup(em.Cleanup)
			}

			config, err := LoadConfig()

			require.NoError(t, err)
			require.NotNil(t, config)
			assert.Equal(t, 15, config.MaxAttempts)
			assert.Equal(t, "0.0.1001", config.Operator.Id)
			assert.Equal(t, 30*time.Second, config.RequestTimeout)
			// untouched keys keep their defaults
			assert.Equal(t, "testnet", config.Network)
			assert.Equal(t, 1024, config.Chunk.Size)
		})
	}
}

func TestLoadCustomConfigFromCwdAndEnvVar(t *testing.T) {
	// given
	tempDir1, _ := createYamlConfigFile(yml1, t)
	defer os.RemoveAll(tempDir1)
	os.Chdir(tempDir1)

	tempDir2, filePath2 := createYamlConfigFile(yml2, t)
	defer os.RemoveAll(tempDir2)

	em := envManager{}
	em.SetEnv(clientConfigEnvKey, filePath2)
	t.Cleanup(em.Cleanup)

	// when
	config, err := LoadConfig()

	// then
	require.NoError(t, err)
	assert.Equal(t, 15, config.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, config.Backoff.Min)
	assert.Equal(t, "mainnet", config.Network)
}

func TestLoadCustomConfigFromEnvVar(t *testing.T) {
	// given
	em := envManager{}
	em.SetEnv("HIERO_CLIENT_OPERATOR_ID", "0.0.1001")
	em.SetEnv("HIERO_CLIENT_NETWORK", "PREVIEWNET")
	t.Cleanup(em.Cleanup)

	// when
	config, err := LoadConfig()

	// then
	require.NoError(t, err)
	assert.Equal(t, "0.0.1001", config.Operator.Id)
	assert.Equal(t, "previewnet", config.Network)
}

func TestLoadCustomConfigInvalidYaml(t *testing.T) {
	tests := []struct {
		name    string
		content string
		fromCwd bool
	}{
		{name: "invalid yaml", content: invalidYaml},
		{name: "invalid yaml from cwd", content: invalidYaml, fromCwd: true},
		{name: "incorrect account id", content: invalidYamlIncorrectAccountId},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir, filePath := createYamlConfigFile(tt.content, t)
			defer os.RemoveAll(tempDir)

			if tt.fromCwd {
				os.Chdir(tempDir)
			}

			em := envManager{}
			em.SetEnv(clientConfigEnvKey, filePath)
			t.Cleanup(em.Cleanup)

			config, err := LoadConfig()

			assert.Error(t, err)
			assert.Nil(t, config)
		})
	}
}

func TestLoadCustomConfigByEnvVarFileNotFound(t *testing.T) {
	// given
	em := envManager{}
	em.SetEnv(clientConfigEnvKey, "/foo/bar/not_found.yml")
	t.Cleanup(em.Cleanup)

	// when
	config, err := LoadConfig()

	// then
	assert.Error(t, err)
	assert.Nil(t, config)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "non-positive max attempts",
			content: `
hiero:
  client:
    maxAttempts: 0`,
		},
		{
			name: "min backoff above max",
			content: `
hiero:
  client:
    backoff:
      min: 10s`,
		},
		{
			name: "empty network",
			content: `
hiero:
  client:
    network: ""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir, filePath := createYamlConfigFile(tt.content, t)
			defer os.RemoveAll(tempDir)

			em := envManager{}
			em.SetEnv(clientConfigEnvKey, filePath)
			t.Cleanup(em.Cleanup)

			config, err := LoadConfig()

			assert.Error(t, err)
			assert.Nil(t, config)
		})
	}
}

func TestLoadNodeMapFromEnv(t *testing.T) {
	tests := []struct {
		value    string
		expected NodeMap
	}{
		{
			value:    "192.168.0.1:50211:0.0.3",
			expected: NodeMap{"192.168.0.1:50211": types.AccountID{Account: 3}},
		},
		{
			value: "192.168.0.1:50211:0.0.3,192.168.15.8:50211:0.0.4",
			expected: NodeMap{
				"192.168.0.1:50211":  types.AccountID{Account: 3},
				"192.168.15.8:50211": types.AccountID{Account: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			em := envManager{}
			em.SetEnv(nodesEnvKey, tt.value)
			t.Cleanup(em.Cleanup)

			// when
			config, err := LoadConfig()

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, config.Nodes)
		})
	}
}

func TestLoadNodeMapFromEnvError(t *testing.T) {
	values := []string{"192.168.0.1:0.0.3", "192.168.0.1:50211:0.3", "192.168.0.1"}
	for _, value := range values {
		t.Run(value, func(t *testing.T) {
			em := envManager{}
			em.SetEnv(nodesEnvKey, value)
			t.Cleanup(em.Cleanup)

			// when
			config, err := LoadConfig()

			// then
			assert.Error(t, err)
			assert.Nil(t, config)
		})
	}
}

func TestNodeMapDecodeHookFunc(t *testing.T) {
	nodeMapType := reflect.TypeOf(NodeMap{})
	tests := []struct {
		name        string
		from        reflect.Type
		data        interface{}
		expected    NodeMap
		expectError bool
	}{
		{
			name:     "valid data",
			from:     reflect.TypeOf(map[string]interface{}{}),
			data:     map[string]interface{}{serviceEndpoint: "0.0.3"},
			expected: NodeMap{serviceEndpoint: types.AccountID{Account: 3}},
		},
		{
			name:        "invalid data type",
			from:        reflect.TypeOf(map[int]string{}),
			data:        map[int]interface{}{1: "0.0.3"},
			expectError: true,
		},
		{
			name:        "invalid node account id",
			from:        reflect.TypeOf(map[string]interface{}{}),
			data:        map[string]interface{}{serviceEndpoint: "3"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := nodeMapDecodeHookFunc(tt.from, nodeMapType, tt.data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, actual)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, actual)
			}
		})
	}
}

func createYamlConfigFile(content string, t *testing.T) (string, string) {
	tempDir, err := os.MkdirTemp("", "hiero")
	if err != nil {
		assert.Fail(t, "Unable to create temp dir", err)
	}

	customConfig := filepath.Join(tempDir, testConfigFilename)

	if err = os.WriteFile(customConfig, []byte(content), 0644); err != nil {
		assert.Fail(t, "Unable to create custom config", err)
	}

	return tempDir, customConfig
}

type envManager struct {
	keys []string
}

func (e *envManager) SetEnv(key, value string) {
	os.Setenv(key, value)
	e.keys = append(e.keys, key)
}

func (e *envManager) Cleanup() {
	for _, key := range e.keys {
		os.Unsetenv(key)
	}
}
