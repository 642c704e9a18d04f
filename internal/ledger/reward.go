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

package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	rewardModel "github.com/wso2/research-consent-ledger/internal/reward/model"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

// RewardForDownload mints the configured reward to target for downloading datasetHash.
func (l *Ledger) RewardForDownload(caller, target common.Address, datasetHash common.Hash) (*rewardModel.DownloadReward, error) {

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.access.RequireNotPaused(); err != nil {
		return nil, l.rejected(log.ActionRewardDownload, caller, err)
	}
	now := l.clock.Now()
	reward, err := l.rewards.RewardForDownload(caller, target, datasetHash, now)
	if err != nil {
		return nil, l.rejected(log.ActionRewardDownload, caller, err)
	}

	l.commit(
		model.NewEvent(model.TokensMinted, now, map[string]interface{}{
			"holder": target.Hex(),
			"amount": reward.Amount,
		}),
		model.NewEvent(model.DownloadRewarded, now, map[string]interface{}{
			"patient":      target.Hex(),
			"dataset_hash": datasetHash.Hex(),
			"amount":       reward.Amount,
		}),
	)
	l.audit(log.ActionRewardDownload, caller, log.TargetTypeReward, target.Hex(),
		map[string]interface{}{"dataset_hash": datasetHash.Hex(), "amount": reward.Amount})
	return reward, nil
}

// RedeemReward burns tokenCost from the caller and issues a receipt. Allowed while paused.
func (l *Ledger) RedeemReward(caller common.Address, tokenCost uint64, rewardType string) (*rewardModel.Receipt, error) {

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	receipt, err := l.rewards.Redeem(caller, tokenCost, rewardType, now)
	if err != nil {
		return nil, l.rejected(log.ActionRedeemReward, caller, err)
	}

	l.commit(
		model.NewEvent(model.TokensBurned, now, map[string]interface{}{
			"holder": caller.Hex(),
			"amount": tokenCost,
		}),
		model.NewEvent(model.RewardRedeemed, now, map[string]interface{}{
			"patient":     caller.Hex(),
			"amount":      tokenCost,
			"reward_type": rewardType,
			"code":        receipt.Code,
		}),
	)
	l.audit(log.ActionRedeemReward, caller, log.TargetTypeReward, caller.Hex(),
		map[string]interface{}{"code": receipt.Code, "amount": tokenCost})
	return receipt, nil
}

// SetAuthorizedPatient enables or disables download rewards for patient. Owner only.
func (l *Ledger) SetAuthorizedPatient(caller, patient common.Address, enabled bool) error {

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.access.RequireOwner(caller); err != nil {
		return l.rejected(log.ActionAuthorizePatient, caller, err)
	}
	if err := l.rewards.SetAuthorizedPatient(patient, enabled); err != nil {
		return l.rejected(log.ActionAuthorizePatient, caller, err)
	}

	l.commit(model.NewEvent(model.PatientAuthorizationChanged, l.clock.Now(), map[string]interface{}{
		"patient": patient.Hex(),
		"enabled": enabled,
	}))
	l.audit(log.ActionAuthorizePatient, caller, log.TargetTypeReward, patient.Hex(),
		map[string]bool{"enabled": enabled})
	return nil
}

func (l *Ledger) GetRewardAccount(holder common.Address) rewardModel.Account {

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rewards.Account(holder, l.clock.Now())
}

func (l *Ledger) GetReceipt(code string) (*rewardModel.Receipt, error) {

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rewards.Receipt(code)
}

func (l *Ledger) GetReceipts(holder common.Address) []rewardModel.Receipt {

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rewards.Receipts(holder)
}
