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
	"time"

	"github.com/pkg/errors"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoJournal stores events as documents ordered by sequence.
type MongoJournal struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// ConnectMongoJournal connects to uri and ensures a unique sequence index on the collection.
func ConnectMongoJournal(ctx context.Context, uri, database, collection string) (*MongoJournal, error) {

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, journalError(errors2.JOURNAL_INIT, "Failed to connect to MongoDB.", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, journalError(errors2.JOURNAL_INIT, "Failed to ping MongoDB.", err)
	}

	coll := client.Database(database).Collection(collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sequence", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, journalError(errors2.JOURNAL_INIT,
			fmt.Sprintf("Failed to index collection %s.", collection), err)
	}
	return &MongoJournal{client: client, collection: coll}, nil
}

func (j *MongoJournal) Append(ctx context.Context, events []model.Event) error {

	if len(events) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(events))
	for _, event := range events {
		docs = append(docs, event)
	}
	if _, err := j.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return journalError(errors2.APPEND_EVENT, "Failed to insert ledger events into MongoDB.", err)
	}
	return nil
}

func (j *MongoJournal) List(ctx context.Context, from uint64, limit int) ([]model.Event, error) {

	findOptions := options.Find().
		SetSort(bson.D{{Key: "sequence", Value: 1}}).
		SetLimit(int64(normalizeLimit(limit)))
	cursor, err := j.collection.Find(ctx, bson.M{"sequence": bson.M{"$gte": from}}, findOptions)
	if err != nil {
		return nil, journalError(errors2.FETCH_EVENTS, "Failed to query ledger events from MongoDB.", err)
	}
	defer cursor.Close(ctx)

	events := make([]model.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, journalError(errors2.FETCH_EVENTS, "Failed to decode ledger events from MongoDB.",
			errors.Wrap(err, "cursor"))
	}
	for i := range events {
		events[i].OccurredAt = events[i].OccurredAt.UTC()
	}
	return events, nil
}

func (j *MongoJournal) LastSequence(ctx context.Context) (uint64, error) {

	var last model.Event
	err := j.collection.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "sequence", Value: -1}})).
		Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, journalError(errors2.FETCH_EVENTS, "Failed to read the last ledger sequence from MongoDB.", err)
	}
	return last.Sequence, nil
}

func (j *MongoJournal) Ping(ctx context.Context) error {
	return j.client.Ping(ctx, nil)
}

func (j *MongoJournal) Close() error {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return j.client.Disconnect(ctx)
}
