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

package publisher

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

func TestMain(m *testing.M) {
	log.Init("ERROR")
	os.Exit(m.Run())
}

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(msgs)
	return args.Error(0)
}

func (m *mockWriter) Close() error {
	return m.Called().Error(0)
}

func TestDeliver_KeysMessagesByEventType(t *testing.T) {
	writer := new(mockWriter)
	var written []kafka.Message
	writer.On("WriteMessages", mock.Anything).Run(func(args mock.Arguments) {
		written = args.Get(0).([]kafka.Message)
	}).Return(nil)

	occurredAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	first := model.NewEvent(model.ConsentGranted, occurredAt, map[string]interface{}{"consent_id": 1})
	first.Sequence = 7
	second := model.NewEvent(model.TokensMinted, occurredAt, nil)
	second.Sequence = 8

	require.NoError(t, NewPublisherWithWriter(writer).Deliver(context.Background(), []model.Event{first, second}))

	require.Len(t, written, 2)
	assert.Equal(t, model.ConsentGranted, string(written[0].Key))
	assert.Equal(t, model.TokensMinted, string(written[1].Key))

	var decoded model.Event
	require.NoError(t, json.Unmarshal(written[0].Value, &decoded))
	assert.Equal(t, uint64(7), decoded.Sequence)
	assert.Equal(t, first.EventId, decoded.EventId)
	writer.AssertExpectations(t)
}

func TestDeliver_WrapsWriterFailure(t *testing.T) {
	writer := new(mockWriter)
	writer.On("WriteMessages", mock.Anything).Return(assert.AnError)

	err := NewPublisherWithWriter(writer).Deliver(context.Background(),
		[]model.Event{model.NewEvent(model.Paused, time.Now(), nil)})

	assert.True(t, errors2.HasCode(err, errors2.PUBLISH_EVENT))
}

func TestDeliver_EmptyBatchSkipsWriter(t *testing.T) {
	writer := new(mockWriter)
	assert.NoError(t, NewPublisherWithWriter(writer).Deliver(context.Background(), nil))
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything)
}
