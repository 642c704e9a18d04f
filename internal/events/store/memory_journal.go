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

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/wso2/research-consent-ledger/internal/events/model"
)

// MemoryJournal keeps events in process memory.
type MemoryJournal struct {
	mu     sync.RWMutex
	events []model.Event
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

func (j *MemoryJournal) Append(_ context.Context, events []model.Event) error {

	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, events...)
	return nil
}

func (j *MemoryJournal) List(_ context.Context, from uint64, limit int) ([]model.Event, error) {

	j.mu.RLock()
	defer j.mu.RUnlock()

	start := sort.Search(len(j.events), func(i int) bool { return j.events[i].Sequence >= from })
	end := start + normalizeLimit(limit)
	if end > len(j.events) {
		end = len(j.events)
	}
	events := make([]model.Event, end-start)
	copy(events, j.events[start:end])
	return events, nil
}

func (j *MemoryJournal) LastSequence(context.Context) (uint64, error) {

	j.mu.RLock()
	defer j.mu.RUnlock()
	if len(j.events) == 0 {
		return 0, nil
	}
	return j.events[len(j.events)-1].Sequence, nil
}

func (j *MemoryJournal) Ping(context.Context) error {
	return nil
}

func (j *MemoryJournal) Close() error {
	return nil
}
