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
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	"github.com/wso2/research-consent-ledger/internal/system/database/client"
	"github.com/wso2/research-consent-ledger/internal/system/database/scripts"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

const dbType = "postgres"

// PostgresJournal stores events in the ledger_events table.
type PostgresJournal struct {
	dbClient client.DBClientInterface
}

func NewPostgresJournal(dbClient client.DBClientInterface) *PostgresJournal {
	return &PostgresJournal{dbClient: dbClient}
}

// Helper to marshal JSONB fields, handling nil maps
func marshalJsonb(data map[string]interface{}) (sql.NullString, error) {
	if data == nil {
		return sql.NullString{Valid: false}, nil
	}
	bytes, err := json.Marshal(data)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(bytes), Valid: true}, nil
}

// Append inserts events in a single transaction.
func (j *PostgresJournal) Append(ctx context.Context, events []model.Event) error {

	switch len(events) {
	case 0:
		return nil
	case 1:
		return j.appendOne(ctx, events[0])
	}
	tx, err := j.dbClient.BeginTx(ctx)
	if err != nil {
		return journalError(errors2.APPEND_EVENT, "Failed to begin transaction for appending ledger events.", err)
	}

	for _, event := range events {
		properties, err := marshalJsonb(event.Properties)
		if err == nil {
			_, err = tx.ExecContext(ctx, scripts.InsertLedgerEvent[dbType],
				int64(event.Sequence), event.EventId, event.EventType, event.OccurredAt.UTC(), properties)
		}
		if err != nil {
			_ = tx.Rollback()
			return journalError(errors2.APPEND_EVENT,
				fmt.Sprintf("Failed to append ledger event %d of type %s.", event.Sequence, event.EventType), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return journalError(errors2.APPEND_EVENT, "Failed to commit ledger events.", err)
	}
	log.GetLogger().Debug(fmt.Sprintf("Appended %d ledger events to postgres journal", len(events)))
	return nil
}

func (j *PostgresJournal) appendOne(ctx context.Context, event model.Event) error {

	properties, err := marshalJsonb(event.Properties)
	if err == nil {
		_, err = j.dbClient.ExecuteStatement(ctx, scripts.InsertLedgerEvent[dbType],
			int64(event.Sequence), event.EventId, event.EventType, event.OccurredAt.UTC(), properties)
	}
	if err != nil {
		return journalError(errors2.APPEND_EVENT,
			fmt.Sprintf("Failed to append ledger event %d of type %s.", event.Sequence, event.EventType), err)
	}
	return nil
}

func (j *PostgresJournal) List(ctx context.Context, from uint64, limit int) ([]model.Event, error) {

	results, err := j.dbClient.ExecuteQuery(ctx, scripts.ListLedgerEvents[dbType], int64(from), normalizeLimit(limit))
	if err != nil {
		return nil, journalError(errors2.FETCH_EVENTS, "Failed to list ledger events.", err)
	}

	events := make([]model.Event, 0, len(results))
	for _, row := range results {
		event, err := eventFromRow(row)
		if err != nil {
			return nil, journalError(errors2.FETCH_EVENTS, "Failed to decode a ledger event row.", err)
		}
		events = append(events, event)
	}
	return events, nil
}

func (j *PostgresJournal) LastSequence(ctx context.Context) (uint64, error) {

	results, err := j.dbClient.ExecuteQuery(ctx, scripts.LastLedgerSequence[dbType])
	if err != nil {
		return 0, journalError(errors2.FETCH_EVENTS, "Failed to read the last ledger sequence.", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	sequence, ok := results[0]["last_sequence"].(int64)
	if !ok {
		return 0, journalError(errors2.FETCH_EVENTS, "Failed to read the last ledger sequence.",
			errors.Errorf("unexpected sequence value %v", results[0]["last_sequence"]))
	}
	return uint64(sequence), nil
}

func (j *PostgresJournal) Ping(ctx context.Context) error {
	return j.dbClient.Ping(ctx)
}

func (j *PostgresJournal) Close() error {
	return j.dbClient.Close()
}

func eventFromRow(row map[string]interface{}) (model.Event, error) {

	var event model.Event
	sequence, ok := row["sequence"].(int64)
	if !ok {
		return event, errors.Errorf("unexpected sequence value %v", row["sequence"])
	}
	event.Sequence = uint64(sequence)
	event.EventId = stringValue(row["event_id"])
	event.EventType = stringValue(row["event_type"])
	if occurredAt, ok := row["occurred_at"].(time.Time); ok {
		event.OccurredAt = occurredAt.UTC()
	}
	if raw := stringValue(row["properties"]); raw != "" {
		if err := json.Unmarshal([]byte(raw), &event.Properties); err != nil {
			return event, errors.Wrapf(err, "properties of event %d", sequence)
		}
	}
	return event, nil
}

func stringValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}
