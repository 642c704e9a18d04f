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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

const eventKeyPrefix = "event:"

// LevelDBJournal stores events as JSON values under zero-padded sequence keys.
type LevelDBJournal struct {
	db *leveldb.DB
}

// OpenLevelDBJournal opens or creates the database at path.
func OpenLevelDBJournal(path string) (*LevelDBJournal, error) {

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, journalError(errors2.JOURNAL_INIT,
			fmt.Sprintf("Failed to open leveldb journal at %s.", path), err)
	}
	return &LevelDBJournal{db: db}, nil
}

func eventKey(sequence uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", eventKeyPrefix, sequence))
}

func (j *LevelDBJournal) Append(_ context.Context, events []model.Event) error {

	batch := new(leveldb.Batch)
	for _, event := range events {
		value, err := json.Marshal(event)
		if err != nil {
			return journalError(errors2.APPEND_EVENT,
				fmt.Sprintf("Failed to encode ledger event %d.", event.Sequence), err)
		}
		batch.Put(eventKey(event.Sequence), value)
	}
	if err := j.db.Write(batch, nil); err != nil {
		return journalError(errors2.APPEND_EVENT, "Failed to write ledger events to leveldb.", err)
	}
	return nil
}

func (j *LevelDBJournal) List(_ context.Context, from uint64, limit int) ([]model.Event, error) {

	scope := util.BytesPrefix([]byte(eventKeyPrefix))
	iter := j.db.NewIterator(&util.Range{Start: eventKey(from), Limit: scope.Limit}, nil)
	defer iter.Release()

	limit = normalizeLimit(limit)
	events := make([]model.Event, 0)
	for len(events) < limit && iter.Next() {
		var event model.Event
		if err := json.Unmarshal(iter.Value(), &event); err != nil {
			return nil, journalError(errors2.FETCH_EVENTS, "Failed to decode a ledger event.",
				errors.Wrapf(err, "key %s", iter.Key()))
		}
		events = append(events, event)
	}
	if err := iter.Error(); err != nil {
		return nil, journalError(errors2.FETCH_EVENTS, "Failed to iterate the leveldb journal.", err)
	}
	return events, nil
}

func (j *LevelDBJournal) LastSequence(context.Context) (uint64, error) {

	iter := j.db.NewIterator(util.BytesPrefix([]byte(eventKeyPrefix)), nil)
	defer iter.Release()

	if !iter.Last() {
		if err := iter.Error(); err != nil {
			return 0, journalError(errors2.FETCH_EVENTS, "Failed to read the last leveldb journal key.", err)
		}
		return 0, nil
	}
	sequence, err := strconv.ParseUint(strings.TrimPrefix(string(iter.Key()), eventKeyPrefix), 10, 64)
	if err != nil {
		return 0, journalError(errors2.FETCH_EVENTS, "Failed to parse the last leveldb journal key.",
			errors.Wrapf(err, "key %s", iter.Key()))
	}
	return sequence, nil
}

func (j *LevelDBJournal) Ping(context.Context) error {

	snapshot, err := j.db.GetSnapshot()
	if err != nil {
		return errors.Wrap(err, "leveldb journal unavailable")
	}
	snapshot.Release()
	return nil
}

func (j *LevelDBJournal) Close() error {
	return j.db.Close()
}
