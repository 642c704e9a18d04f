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

// Package publisher forwards committed ledger events to Kafka.
package publisher

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	"github.com/wso2/research-consent-ledger/internal/system/config"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes each event as a JSON message keyed by its event type.
type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaPublisher builds a synchronous writer for the configured brokers and topic.
// SASL/PLAIN over TLS is used when a username is configured.
func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 10 * time.Second,
	}
	if cfg.Username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{
				Username: cfg.Username,
				Password: cfg.Password,
			},
			TLS: &tls.Config{},
		}
	}
	return NewPublisherWithWriter(writer)
}

func NewPublisherWithWriter(writer MessageWriter) *KafkaPublisher {

	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Name() string {
	return "kafka"
}

// Deliver publishes events in order.
func (p *KafkaPublisher) Deliver(ctx context.Context, events []model.Event) error {

	if p == nil || p.writer == nil || len(events) == 0 {
		return nil
	}
	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		value, err := json.Marshal(event)
		if err != nil {
			return errors2.NewServerError(errors2.PUBLISH_EVENT, errors.Wrapf(err, "encode event %d", event.Sequence))
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(event.EventType),
			Value: value,
			Time:  event.OccurredAt,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		log.GetLogger().Debug("Failed to publish ledger events to Kafka.", log.Error(err))
		return errors2.NewServerError(errors2.PUBLISH_EVENT, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
