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
	"fmt"
	"sync"

	"github.com/wso2/research-consent-ledger/internal/events/model"
	"github.com/wso2/research-consent-ledger/internal/events/store"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

const defaultBacklogWarning = 1000

// EventSink receives committed event batches in commit order.
type EventSink interface {
	Name() string
	Deliver(ctx context.Context, events []model.Event) error
}

// EventQueue accepts committed event batches for asynchronous delivery.
// Enqueue must not block: the ledger calls it while holding its write lock.
type EventQueue interface {
	Enqueue(events []model.Event)
}

// EventWorker buffers batches in memory and drains them on a single goroutine, fanning every
// batch out to its sinks. The buffer is unbounded; a slow sink grows the backlog instead of
// stalling the caller.
type EventWorker struct {
	mu             sync.Mutex
	pending        [][]model.Event
	backlogWarning int
	warned         bool
	stopped        bool
	signal         chan struct{}
	sinks          []EventSink
	done           chan struct{}
	once           sync.Once
}

// NewEventWorker builds a worker. backlogWarning is the number of pending batches above which a
// warning is logged.
func NewEventWorker(backlogWarning int, sinks ...EventSink) *EventWorker {

	if backlogWarning <= 0 {
		backlogWarning = defaultBacklogWarning
	}
	return &EventWorker{
		backlogWarning: backlogWarning,
		signal:         make(chan struct{}, 1),
		sinks:          sinks,
		done:           make(chan struct{}),
	}
}

// Start launches the delivery goroutine. Calling it more than once has no effect.
func (w *EventWorker) Start() {

	w.once.Do(func() {
		go w.run()
	})
}

func (w *EventWorker) run() {

	defer close(w.done)
	for {
		batches, stopped := w.take()
		for _, batch := range batches {
			w.deliver(batch)
		}
		if len(batches) > 0 {
			continue
		}
		if stopped {
			return
		}
		<-w.signal
	}
}

// take removes every pending batch.
func (w *EventWorker) take() ([][]model.Event, bool) {

	w.mu.Lock()
	defer w.mu.Unlock()
	batches := w.pending
	w.pending = nil
	w.warned = false
	return batches, w.stopped
}

func (w *EventWorker) notify() {
	select {
	case w.signal <- struct{}{}:
	default:
	}
}

// Enqueue appends a batch to the backlog and returns immediately.
// Batches enqueued after Stop are dropped.
func (w *EventWorker) Enqueue(events []model.Event) {

	if len(events) == 0 {
		return
	}
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		log.GetLogger().Warn(fmt.Sprintf("Event worker stopped; dropping %d ledger events", len(events)),
			log.Uint64("first_sequence", events[0].Sequence))
		return
	}
	w.pending = append(w.pending, events)
	backlog := len(w.pending)
	warn := backlog > w.backlogWarning && !w.warned
	if warn {
		w.warned = true
	}
	w.mu.Unlock()

	if warn {
		log.GetLogger().Warn(fmt.Sprintf("Event delivery is lagging; %d batches pending", backlog),
			log.Uint64("first_sequence", events[0].Sequence))
	}
	w.notify()
}

// Backlog returns the number of batches waiting for delivery.
func (w *EventWorker) Backlog() int {

	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// Stop rejects further batches and waits for the backlog to drain or ctx to end.
func (w *EventWorker) Stop(ctx context.Context) error {

	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
	w.notify()

	w.Start()
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *EventWorker) deliver(batch []model.Event) {

	logger := log.GetLogger()
	for _, sink := range w.sinks {
		if err := sink.Deliver(context.Background(), batch); err != nil {
			logger.Error(fmt.Sprintf("Failed to deliver %d ledger events to %s", len(batch), sink.Name()),
				log.Uint64("first_sequence", batch[0].Sequence), log.Error(err))
		}
	}
}

// JournalSink appends batches to a journal.
type JournalSink struct {
	Journal store.Journal
}

func (s JournalSink) Name() string {
	return "journal"
}

func (s JournalSink) Deliver(ctx context.Context, events []model.Event) error {
	return s.Journal.Append(ctx, events)
}
