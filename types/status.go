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

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
)

// Status is a network response code, either from the submission precheck or
// from the polled receipt.
type Status uint32

const (
	StatusOK                          = Status(services.ResponseCodeEnum_OK)
	StatusInvalidTransaction          = Status(services.ResponseCodeEnum_INVALID_TRANSACTION)
	StatusInvalidNodeAccount          = Status(services.ResponseCodeEnum_INVALID_NODE_ACCOUNT)
	StatusTransactionExpired          = Status(services.ResponseCodeEnum_TRANSACTION_EXPIRED)
	StatusInvalidTransactionStart     = Status(services.ResponseCodeEnum_INVALID_TRANSACTION_START)
	StatusInvalidSignature            = Status(services.ResponseCodeEnum_INVALID_SIGNATURE)
	StatusInsufficientTxFee           = Status(services.ResponseCodeEnum_INSUFFICIENT_TX_FEE)
	StatusInsufficientPayerBalance    = Status(services.ResponseCodeEnum_INSUFFICIENT_PAYER_BALANCE)
	StatusDuplicateTransaction        = Status(services.ResponseCodeEnum_DUPLICATE_TRANSACTION)
	StatusBusy                        = Status(services.ResponseCodeEnum_BUSY)
	StatusReceiptNotFound             = Status(services.ResponseCodeEnum_RECEIPT_NOT_FOUND)
	StatusRecordNotFound              = Status(services.ResponseCodeEnum_RECORD_NOT_FOUND)
	StatusUnknown                     = Status(services.ResponseCodeEnum_UNKNOWN)
	StatusSuccess                     = Status(services.ResponseCodeEnum_SUCCESS)
	StatusPlatformNotActive           = Status(services.ResponseCodeEnum_PLATFORM_NOT_ACTIVE)
	StatusPlatformTransactionNotCreated = Status(services.ResponseCodeEnum_PLATFORM_TRANSACTION_NOT_CREATED)
	StatusAccountFrozenForToken       = Status(services.ResponseCodeEnum_ACCOUNT_FROZEN_FOR_TOKEN)
	StatusSpenderDoesNotHaveAllowance = Status(services.ResponseCodeEnum_SPENDER_DOES_NOT_HAVE_ALLOWANCE)
)

// StatusClass is the engine-side classification of a Status that drives the
// retry loop and error taxonomy.
type StatusClass int

const (
	// StatusClassSuccess means the request was accepted or the effect
	// committed.
	StatusClassSuccess StatusClass = iota
	// StatusClassRetryable means a transient node or consensus condition; the
	// request may be resubmitted.
	StatusClassRetryable
	// StatusClassFatal means the network adjudicated the request and rejected
	// it; resubmitting an identical request cannot succeed.
	StatusClassFatal
	// StatusClassUnknown means the code is not in the known enumeration,
	// typically a newer network talking to an older client.
	StatusClassUnknown
)

func (c StatusClass) String() string {
	switch c {
	case StatusClassSuccess:
		return "success"
	case StatusClassRetryable:
		return "retryable"
	case StatusClassFatal:
		return "fatal"
	}
	return "unknown"
}

// Class classifies the status. Codes outside the known enumeration classify as
// StatusClassUnknown rather than success or failure.
func (s Status) Class() StatusClass {
	if _, known := services.ResponseCodeEnum_name[int32(s)]; !known {
		return StatusClassUnknown
	}

	switch s {
	case StatusOK, StatusSuccess:
		return StatusClassSuccess
	case StatusBusy, StatusPlatformNotActive, StatusPlatformTransactionNotCreated,
		StatusReceiptNotFound, StatusRecordNotFound, StatusUnknown:
		return StatusClassRetryable
	}
	return StatusClassFatal
}

func (s Status) String() string {
	if name, known := services.ResponseCodeEnum_name[int32(s)]; known {
		return name
	}
	return fmt.Sprintf("UNKNOWN_STATUS(%d)", uint32(s))
}
