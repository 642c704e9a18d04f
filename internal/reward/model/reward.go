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

// Settings are the reward policy parameters.
type Settings struct {
	MonthlyMintLimit uint64
	RewardAmount     uint64
	MintWindow       time.Duration
}

// DefaultSettings: 50 per download, at most 200 per 30-day window.
func DefaultSettings() Settings {
	return Settings{
		MonthlyMintLimit: 200,
		RewardAmount:     50,
		MintWindow:       2592000 * time.Second,
	}
}

// Window tracks how much has been minted to a holder since WindowStart.
type Window struct {
	Minted uint64    `json:"minted_this_window" bson:"minted_this_window"`
	Start  time.Time `json:"window_start" bson:"window_start"`
}

// Account is the read model of a reward holder.
type Account struct {
	Holder           common.Address `json:"holder"`
	Balance          uint64         `json:"balance"`
	MintedThisWindow uint64         `json:"minted_this_window"`
	WindowStart      time.Time      `json:"window_start"`
	Authorized       bool           `json:"is_authorized"`
}

// DownloadReward is the outcome of a rewarded dataset download.
type DownloadReward struct {
	Patient          common.Address `json:"patient"`
	DatasetHash      common.Hash    `json:"dataset_hash"`
	Amount           uint64         `json:"amount"`
	Balance          uint64         `json:"balance"`
	MintedThisWindow uint64         `json:"minted_this_window"`
}

// Receipt records a redemption. Code is unique through the monotonically increasing Sequence.
type Receipt struct {
	Code       string         `json:"code" bson:"code"`
	Patient    common.Address `json:"patient" bson:"patient"`
	Amount     uint64         `json:"amount" bson:"amount"`
	RewardType string         `json:"reward_type" bson:"reward_type"`
	Sequence   uint64         `json:"sequence" bson:"sequence"`
	RedeemedAt time.Time      `json:"redeemed_at" bson:"redeemed_at"`
}
