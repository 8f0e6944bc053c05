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

package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// clientMetrics instruments the retry engine. Metrics are off unless the
// caller opts in with EnableMetrics.
type clientMetrics struct {
	attempts *prometheus.CounterVec
	duration prometheus.Histogram
}

func newClientMetrics(registerer prometheus.Registerer) *clientMetrics {
	m := &clientMetrics{
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hiero",
				Subsystem: "client",
				Name:      "attempts_total",
				Help:      "Submission attempts by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hiero",
			Subsystem: "client",
			Name:      "execution_duration_seconds",
			Help:      "End to end execution duration including retries",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
		}),
	}
	registerer.MustRegister(m.attempts, m.duration)
	return m
}

func (m *clientMetrics) observeAttempt(state ExecutionState) {
	if m == nil {
		return
	}

	outcome := "retry"
	switch state {
	case ExecutionStateFinished:
		outcome = "finished"
	case ExecutionStateError:
		outcome = "error"
	}
	m.attempts.WithLabelValues(outcome).Inc()
}

func (m *clientMetrics) observeDuration(start time.Time) {
	if m == nil {
		return
	}
	m.duration.Observe(time.Since(start).Seconds())
}
