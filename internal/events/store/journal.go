/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package store persists committed ledger events in an append-only journal.
package store

import (
	"context"

	"github.com/wso2/research-consent-ledger/internal/events/model"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 100

// Journal is an append-only, sequence-ordered event log.
type Journal interface {
	// Append stores events. Sequences are strictly increasing across calls.
	Append(ctx context.Context, events []model.Event) error
	// List returns up to limit events with Sequence >= from, in sequence order.
	List(ctx context.Context, from uint64, limit int) ([]model.Event, error)
	// LastSequence returns the highest stored sequence, or 0 when the journal is empty.
	LastSequence(ctx context.Context) (uint64, error)
	Ping(ctx context.Context) error
	Close() error
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

func journalError(msg errors2.ErrorMessage, description string, cause error) error {

	log.GetLogger().Debug(description, log.Error(cause))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        msg.Code,
		Message:     msg.Message,
		Description: description,
	}, cause)
}
