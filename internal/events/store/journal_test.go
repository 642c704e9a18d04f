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
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

func TestMain(m *testing.M) {
	log.Init("ERROR")
	os.Exit(m.Run())
}

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func sequencedEvents(from, count int) []model.Event {
	events := make([]model.Event, 0, count)
	for i := from; i < from+count; i++ {
		event := model.NewEvent(model.IdentityRegistered, t0.Add(time.Duration(i)*time.Second),
			map[string]interface{}{"wallet": fmt.Sprintf("0x%040d", i)})
		event.Sequence = uint64(i)
		events = append(events, event)
	}
	return events
}

// exerciseJournal runs the behaviour every journal shares.
func exerciseJournal(t *testing.T, journal Journal) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, journal.Ping(ctx))
	last, err := journal.LastSequence(ctx)
	require.NoError(t, err)
	assert.Zero(t, last)

	require.NoError(t, journal.Append(ctx, sequencedEvents(1, 3)))
	require.NoError(t, journal.Append(ctx, sequencedEvents(4, 9)))
	require.NoError(t, journal.Append(ctx, nil))

	last, err = journal.LastSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), last)

	all, err := journal.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 12)
	for i, event := range all {
		assert.Equal(t, uint64(i+1), event.Sequence)
	}
	assert.Equal(t, model.IdentityRegistered, all[0].EventType)
	assert.True(t, t0.Add(time.Second).Equal(all[0].OccurredAt))
	assert.Equal(t, fmt.Sprintf("0x%040d", 1), all[0].Properties["wallet"])

	page, err := journal.List(ctx, 5, 3)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, uint64(5), page[0].Sequence)
	assert.Equal(t, uint64(7), page[2].Sequence)

	tail, err := journal.List(ctx, 100, 10)
	require.NoError(t, err)
	assert.Empty(t, tail)
}

func TestMemoryJournal(t *testing.T) {
	exerciseJournal(t, NewMemoryJournal())
}

func TestLevelDBJournal(t *testing.T) {
	journal, err := OpenLevelDBJournal(t.TempDir())
	require.NoError(t, err)
	defer journal.Close()

	exerciseJournal(t, journal)
}

func TestLevelDBJournal_ReopenKeepsEvents(t *testing.T) {
	dir := t.TempDir()
	journal, err := OpenLevelDBJournal(dir)
	require.NoError(t, err)
	require.NoError(t, journal.Append(context.Background(), sequencedEvents(1, 2)))
	require.NoError(t, journal.Close())

	reopened, err := OpenLevelDBJournal(dir)
	require.NoError(t, err)
	defer reopened.Close()

	events, err := reopened.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	last, err := reopened.LastSequence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), last)
}

func TestEventKey_OrdersNumerically(t *testing.T) {
	assert.Less(t, string(eventKey(9)), string(eventKey(10)))
	assert.Equal(t, "event:00000000000000000042", string(eventKey(42)))
}
