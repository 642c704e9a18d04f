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

package model

import (
	"time"

	"github.com/google/uuid"
)

// Ledger event types.
const (
	IdentityRegistered          = "identity-registered"
	StudyAuthorized             = "study-authorized"
	StudyRevoked                = "study-revoked"
	ConsentGranted              = "consent-granted"
	ConsentRevoked              = "consent-revoked"
	TokensMinted                = "tokens-minted"
	TokensBurned                = "tokens-burned"
	DownloadRewarded            = "download-rewarded"
	RewardRedeemed              = "reward-redeemed"
	PatientAuthorizationChanged = "patient-authorization-changed"
	Paused                      = "paused"
	Unpaused                    = "unpaused"
	OwnershipTransferred        = "ownership-transferred"
)

// Event is a committed ledger state change. Sequence is assigned by the ledger in commit order.
type Event struct {
	EventId    string                 `json:"event_id" bson:"event_id"`
	Sequence   uint64                 `json:"sequence" bson:"sequence"`
	EventType  string                 `json:"event_type" bson:"event_type"`
	OccurredAt time.Time              `json:"occurred_at" bson:"occurred_at"`
	Properties map[string]interface{} `json:"properties,omitempty" bson:"properties,omitempty"`
}

// NewEvent builds an unsequenced event with a fresh id.
func NewEvent(eventType string, occurredAt time.Time, properties map[string]interface{}) Event {
	return Event{
		EventId:    uuid.New().String(),
		EventType:  eventType,
		OccurredAt: occurredAt,
		Properties: properties,
	}
}
