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

	"github.com/ethereum/go-ethereum/common"
)

// Consent is a patient's time-bounded grant for one dataset to one study.
// Records are never deleted; revocation is terminal.
type Consent struct {
	ConsentID   uint64      `json:"consent_id" bson:"consent_id"`
	OwnerID     uint64      `json:"owner_id" bson:"owner_id"`
	DatasetHash common.Hash `json:"dataset_hash" bson:"dataset_hash"`
	StudyID     common.Hash `json:"study_id" bson:"study_id"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	ValidUntil  time.Time   `json:"valid_until" bson:"valid_until"`
	RevokedAt   *time.Time  `json:"revoked_at,omitempty" bson:"revoked_at,omitempty"`
	IsActive    bool        `json:"is_active" bson:"is_active"`
}

// ValidAt reports whether the consent is usable at now. Expiry is exclusive of ValidUntil.
func (c Consent) ValidAt(now time.Time) bool {
	return c.IsActive && c.RevokedAt == nil && now.Before(c.ValidUntil)
}

// ConsentView is a consent record plus its validity at read time.
type ConsentView struct {
	Consent
	Valid bool `json:"is_valid"`
}
