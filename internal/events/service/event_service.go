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

package service

import (
	"context"

	"github.com/wso2/research-consent-ledger/internal/events/model"
	"github.com/wso2/research-consent-ledger/internal/events/store"
)

// MaxListLimit bounds a single page of journal events.
const MaxListLimit = 500

type EventsServiceInterface interface {
	GetEvents(ctx context.Context, from uint64, limit int) ([]model.Event, error)
	Ping(ctx context.Context) error
}

// EventsService reads committed ledger events from the journal.
type EventsService struct {
	journal store.Journal
}

func NewEventsService(journal store.Journal) EventsServiceInterface {

	return &EventsService{journal: journal}
}

// GetEvents returns up to limit events starting at sequence from.
func (es *EventsService) GetEvents(ctx context.Context, from uint64, limit int) ([]model.Event, error) {

	if limit <= 0 {
		limit = store.DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return es.journal.List(ctx, from, limit)
}

func (es *EventsService) Ping(ctx context.Context) error {

	return es.journal.Ping(ctx)
}
