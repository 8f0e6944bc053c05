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
	"fmt"
	"math/rand"
	"time"

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"github.com/pkg/errors"
)

// TransactionID identifies a transaction for network-side deduplication: the
// network accepts at most one transaction per (payer, valid start) pair.
type TransactionID struct {
	AccountID  AccountID
	ValidStart time.Time
	Scheduled  bool
	Nonce      int32
}

// GenerateTransactionID derives a fresh id for the payer. The valid start is
// backdated by a small random offset so that ids generated on hosts with
// drifting clocks are still inside the network's receive window.
func GenerateTransactionID(payer AccountID) TransactionID {
	jitter := time.Duration(rand.Int63n(int64(5 * time.Second)))
	return TransactionID{
		AccountID:  payer,
		ValidStart: time.Now().Add(-jitter),
	}
}

func TransactionIDFromProto(pb *services.TransactionID) (TransactionID, error) {
	if pb == nil {
		return TransactionID{}, errors.Errorf("nil TransactionID message")
	}

	payer, err := AccountIDFromProto(pb.GetAccountID())
	if err != nil {
		return TransactionID{}, err
	}

	validStart := time.Time{}
	if start := pb.GetTransactionValidStart(); start != nil {
		validStart = time.Unix(start.Seconds, int64(start.Nanos)).UTC()
	}

	return TransactionID{
		AccountID:  payer,
		ValidStart: validStart,
		Scheduled:  pb.Scheduled,
		Nonce:      pb.Nonce,
	}, nil
}

func (id TransactionID) ToProto() *services.TransactionID {
	return &services.TransactionID{
		TransactionValidStart: &services.Timestamp{
			Seconds: id.ValidStart.Unix(),
			Nanos:   int32(id.ValidStart.Nanosecond()),
		},
		AccountID: id.AccountID.ToProto(),
		Scheduled: id.Scheduled,
		Nonce:     id.Nonce,
	}
}

// Advance returns a derived id whose valid start is offset by the given number
// of nanoseconds. Chunked and batched submissions use it to mint sub-ids that
// keep the (payer, valid start) pair unique while preserving submission order.
func (id TransactionID) Advance(nanos int) TransactionID {
	derived := id
	derived.ValidStart = id.ValidStart.Add(time.Duration(nanos) * time.Nanosecond)
	return derived
}

func (id TransactionID) IsZero() bool {
	return id.AccountID.IsZero() && id.ValidStart.IsZero()
}

func (id TransactionID) Equals(other TransactionID) bool {
	return id.AccountID.Equals(other.AccountID) &&
		id.ValidStart.Equal(other.ValidStart) &&
		id.Scheduled == other.Scheduled &&
		id.Nonce == other.Nonce
}

// String renders payer@seconds.nanos, with ?scheduled and /nonce markers when
// set, e.g. "0.0.7@1700000000.000000123".
func (id TransactionID) String() string {
	s := fmt.Sprintf("%s@%d.%09d", id.AccountID, id.ValidStart.Unix(), id.ValidStart.Nanosecond())
	if id.Scheduled {
		s += "?scheduled"
	}
	if id.Nonce != 0 {
		s += fmt.Sprintf("/%d", id.Nonce)
	}
	return s
}
