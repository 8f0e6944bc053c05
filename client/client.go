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

// Package client holds the protocol engine's execution core: the Client ties
// an operator identity to a node network and drives Executable requests
// through the retry loop.
package client

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/hiero-ledger/hiero-client-go/config"
	"github.com/hiero-ledger/hiero-client-go/crypto"
	"github.com/hiero-ledger/hiero-client-go/hierr"
	"github.com/hiero-ledger/hiero-client-go/logger"
	"github.com/hiero-ledger/hiero-client-go/network"
	"github.com/hiero-ledger/hiero-client-go/types"
)

const (
	DefaultMaxAttempts    = 10
	DefaultMinBackoff     = 250 * time.Millisecond
	DefaultMaxBackoff     = 8 * time.Second
	DefaultRequestTimeout = 2 * time.Minute
	DefaultChunkSize      = 1024
	DefaultMaxChunks      = 20
	DefaultMaxBatchSize   = 25
)

// Operator is the account that pays for and by default signs everything the
// client submits.
type Operator struct {
	AccountID  types.AccountID
	PrivateKey crypto.PrivateKey
}

// Client is the execution handle. It is safe for concurrent use; the node
// network and operator may be swapped between executions but not during one.
type Client struct {
	network        *network.Network
	operator       *Operator
	maxAttempts    int
	minBackoff     time.Duration
	maxBackoff     time.Duration
	requestTimeout time.Duration
	chunkSize      int
	maxChunks      int
	maxBatchSize   int
	logger         *log.Entry
	metrics        *clientMetrics
}

// NewClient wraps an existing network with default execution settings.
func NewClient(net *network.Network) *Client {
	return &Client{
		network:        net,
		maxAttempts:    DefaultMaxAttempts,
		minBackoff:     DefaultMinBackoff,
		maxBackoff:     DefaultMaxBackoff,
		requestTimeout: DefaultRequestTimeout,
		chunkSize:      DefaultChunkSize,
		maxChunks:      DefaultMaxChunks,
		maxBatchSize:   DefaultMaxBatchSize,
		logger:         logger.New("client"),
	}
}

func ForMainnet() *Client {
	return NewClient(network.ForMainnet())
}

func ForTestnet() *Client {
	return NewClient(network.ForTestnet())
}

func ForPreviewnet() *Client {
	return NewClient(network.ForPreviewnet())
}

// ForName returns a client for one of the named public networks.
func ForName(name string) (*Client, error) {
	net, err := network.ForName(name)
	if err != nil {
		return nil, err
	}
	return NewClient(net), nil
}

// FromConfig builds a client from a loaded configuration: the named or custom
// network, the operator if configured, and all execution settings.
func FromConfig(cfg *config.Config) (*Client, error) {
	if cfg.Log.Level != "" {
		if err := logger.SetLevel(cfg.Log.Level); err != nil {
			return nil, err
		}
	}

	var net *network.Network
	if len(cfg.Nodes) != 0 {
		nodeMap := make(map[string]types.AccountID, len(cfg.Nodes))
		for address, accountId := range cfg.Nodes {
			nodeMap[address] = accountId
		}
		net = network.ForNetwork(nodeMap)
	} else {
		var err error
		if net, err = network.ForName(cfg.Network); err != nil {
			return nil, err
		}
	}
	net.SetTransportSecurity(cfg.Tls.Enabled)

	client := NewClient(net)
	client.maxAttempts = cfg.MaxAttempts
	client.minBackoff = cfg.Backoff.Min
	client.maxBackoff = cfg.Backoff.Max
	client.requestTimeout = cfg.RequestTimeout
	client.chunkSize = cfg.Chunk.Size
	client.maxChunks = cfg.Chunk.MaxChunks
	client.maxBatchSize = cfg.Batch.MaxSize

	if cfg.Operator.Id != "" || cfg.Operator.Key != "" {
		if cfg.Operator.Id == "" || cfg.Operator.Key == "" {
			return nil, errors.Errorf("operator requires both id and key")
		}

		accountId, err := types.AccountIDFromString(cfg.Operator.Id)
		if err != nil {
			return nil, err
		}
		privateKey, err := crypto.PrivateKeyFromString(cfg.Operator.Key)
		if err != nil {
			return nil, err
		}
		client.SetOperator(accountId, privateKey)
	}

	if cfg.Metrics.Enabled {
		client.EnableMetrics(prometheus.DefaultRegisterer)
	}
	return client, nil
}

// FromEnv builds a client from configuration files and environment variables.
func FromEnv() (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg)
}

func (c *Client) SetOperator(accountId types.AccountID, privateKey crypto.PrivateKey) *Client {
	c.operator = &Operator{AccountID: accountId, PrivateKey: privateKey}
	return c
}

func (c *Client) Operator() *Operator {
	return c.operator
}

func (c *Client) Network() *network.Network {
	return c.network
}

func (c *Client) SetMaxAttempts(maxAttempts int) *Client {
	c.maxAttempts = maxAttempts
	return c
}

func (c *Client) MaxAttempts() int {
	return c.maxAttempts
}

func (c *Client) SetBackoff(minBackoff, maxBackoff time.Duration) *Client {
	c.minBackoff = minBackoff
	c.maxBackoff = maxBackoff
	return c
}

func (c *Client) SetRequestTimeout(timeout time.Duration) *Client {
	c.requestTimeout = timeout
	return c
}

func (c *Client) RequestTimeout() time.Duration {
	return c.requestTimeout
}

func (c *Client) SetChunkSize(size int) *Client {
	c.chunkSize = size
	return c
}

func (c *Client) ChunkSize() int {
	return c.chunkSize
}

func (c *Client) SetMaxChunks(maxChunks int) *Client {
	c.maxChunks = maxChunks
	return c
}

func (c *Client) MaxChunks() int {
	return c.maxChunks
}

func (c *Client) SetMaxBatchSize(maxBatchSize int) *Client {
	c.maxBatchSize = maxBatchSize
	return c
}

func (c *Client) MaxBatchSize() int {
	return c.maxBatchSize
}

func (c *Client) Logger() *log.Entry {
	return c.logger
}

// EnableMetrics registers the client's prometheus collectors with the given
// registerer and starts recording.
func (c *Client) EnableMetrics(registerer prometheus.Registerer) *Client {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	c.metrics = newClientMetrics(registerer)
	return c
}

// Close releases the network's channels. The client is unusable afterwards.
func (c *Client) Close() error {
	return c.network.Close()
}

// Execute drives the executable through the retry loop: rotate through its
// nodes, back off exponentially between attempts, and stop on the first
// finished or permanently failed attempt. When every attempt is spent the
// caller gets a MaxAttemptsError wrapping the last attempt's error.
func (c *Client) Execute(ctx context.Context, executable Executable) error {
	nodes := executable.NodeAccountIDs()
	if len(nodes) == 0 {
		nodes = c.network.NodeAccountIDs()
	}
	if len(nodes) == 0 {
		return hierr.ErrEmptyNetwork
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.minBackoff
	policy.MaxInterval = c.maxBackoff
	policy.MaxElapsedTime = 0
	policy.Reset()

	start := time.Now()
	defer c.metrics.observeDuration(start)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		node := nodes[(attempt-1)%len(nodes)]

		state, err := c.submitOnce(ctx, executable, node)
		c.metrics.observeAttempt(state)

		switch state {
		case ExecutionStateFinished:
			return nil
		case ExecutionStateError:
			return err
		}

		lastErr = err
		c.logger.WithField("node", node.String()).
			Debugf("attempt %d/%d failed, will retry: %v", attempt, c.maxAttempts, err)

		if attempt == c.maxAttempts {
			break
		}

		timer := time.NewTimer(policy.NextBackOff())
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}

	return &hierr.MaxAttemptsError{Attempts: c.maxAttempts, Last: lastErr}
}

func (c *Client) submitOnce(ctx context.Context, executable Executable, node types.AccountID) (ExecutionState, error) {
	conn, err := c.network.ChannelFor(node)
	if err != nil {
		// a node missing from the network is a topology race after an address
		// book refresh, not a permanent failure
		return ExecutionStateRetry, err
	}

	attemptCtx := ctx
	if c.requestTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	return executable.SubmitTo(attemptCtx, conn, node)
}
