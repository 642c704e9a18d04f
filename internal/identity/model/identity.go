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

// Identity is a registered patient. Only Active may change after creation.
type Identity struct {
	ID           uint64         `json:"id" bson:"id"`
	Wallet       common.Address `json:"wallet_address" bson:"wallet_address"`
	RegisteredAt time.Time      `json:"registered_at" bson:"registered_at"`
	Active       bool           `json:"is_active" bson:"is_active"`
}

// PatientInfo is the read model returned for an identity together with its active consents.
type PatientInfo struct {
	Identity
	ConsentIDs []uint64 `json:"consent_ids"`
}
