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

package workers

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	"github.com/wso2/research-consent-ledger/internal/events/store"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

func TestMain(m *testing.M) {
	log.Init("ERROR")
	os.Exit(m.Run())
}

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Name() string {
	return "mock"
}

func (m *mockSink) Deliver(ctx context.Context, events []model.Event) error {
	return m.Called(events).Error(0)
}

func batch(sequences ...uint64) []model.Event {
	events := make([]model.Event, 0, len(sequences))
	for _, sequence := range sequences {
		event := model.NewEvent(model.TokensMinted, time.Now(), nil)
		event.Sequence = sequence
		events = append(events, event)
	}
	return events
}

func TestEventWorker_DeliversInOrderToEverySink(t *testing.T) {
	journal := store.NewMemoryJournal()
	failing := new(mockSink)
	failing.On("Deliver", mock.Anything).Return(assert.AnError)

	worker := NewEventWorker(2, failing, JournalSink{Journal: journal})
	worker.Start()
	worker.Enqueue(batch(1, 2))
	worker.Enqueue(batch(3))
	worker.Enqueue(nil)
	worker.Enqueue(batch(4, 5, 6))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, worker.Stop(ctx))

	events, err := journal.List(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 6)
	for i, event := range events {
		assert.Equal(t, uint64(i+1), event.Sequence)
	}
	failing.AssertNumberOfCalls(t, "Deliver", 3)
}

func TestEventWorker_DropsAfterStop(t *testing.T) {
	journal := store.NewMemoryJournal()
	worker := NewEventWorker(1, JournalSink{Journal: journal})
	worker.Start()

	require.NoError(t, worker.Stop(context.Background()))
	require.NoError(t, worker.Stop(context.Background()))
	worker.Enqueue(batch(1))

	events, err := journal.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

type blockingSink struct {
	release chan struct{}
}

func (s blockingSink) Name() string {
	return "blocking"
}

func (s blockingSink) Deliver(ctx context.Context, events []model.Event) error {
	<-s.release
	return nil
}

func TestEventWorker_EnqueueNeverBlocksOnSlowSink(t *testing.T) {
	sink := blockingSink{release: make(chan struct{})}
	journal := store.NewMemoryJournal()
	worker := NewEventWorker(1, sink, JournalSink{Journal: journal})
	worker.Start()

	enqueued := make(chan struct{})
	go func() {
		defer close(enqueued)
		for sequence := uint64(1); sequence <= 50; sequence++ {
			worker.Enqueue(batch(sequence))
		}
	}()
	select {
	case <-enqueued:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked behind a slow sink")
	}
	delivered, err := journal.List(context.Background(), 0, 100)
	require.NoError(t, err)
	assert.Empty(t, delivered)

	close(sink.release)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, worker.Stop(ctx))
	assert.Zero(t, worker.Backlog())

	events, err := journal.List(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 50)
	for i, event := range events {
		assert.Equal(t, uint64(i+1), event.Sequence)
	}
}

func TestEventWorker_StopBeforeStartDrainsBacklog(t *testing.T) {
	journal := store.NewMemoryJournal()
	worker := NewEventWorker(0, JournalSink{Journal: journal})
	worker.Enqueue(batch(1, 2))
	worker.Enqueue(batch(3))

	require.NoError(t, worker.Stop(context.Background()))

	events, err := journal.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}
