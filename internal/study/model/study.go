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
	"github.com/ethereum/go-ethereum/crypto"
)

// Study is a research study identified by a caller-supplied 256-bit id.
type Study struct {
	ID           common.Hash `json:"study_id" bson:"study_id"`
	Name         string      `json:"name" bson:"name"`
	Authorized   bool        `json:"is_authorized" bson:"is_authorized"`
	AuthorizedAt time.Time   `json:"authorized_at" bson:"authorized_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}

// StudyIDFromName derives the conventional study id, keccak256 of the study name.
func StudyIDFromName(name string) common.Hash {
	return crypto.Keccak256Hash([]byte(name))
}
