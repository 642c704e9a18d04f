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

package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wso2/research-consent-ledger/internal/reward/model"
	"github.com/wso2/research-consent-ledger/internal/soulbound"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

// RewardLedgerInterface defines the reward ledger operations.
type RewardLedgerInterface interface {
	RewardForDownload(caller, target common.Address, datasetHash common.Hash, now time.Time) (*model.DownloadReward, error)
	Redeem(caller common.Address, tokenCost uint64, rewardType string, now time.Time) (*model.Receipt, error)
	SetAuthorizedPatient(patient common.Address, enabled bool) error
	IsAuthorizedPatient(patient common.Address) bool
	BalanceOf(holder common.Address) uint64
	MonthlyMinted(holder common.Address, now time.Time) uint64
	Account(holder common.Address, now time.Time) model.Account
	Receipt(code string) (*model.Receipt, error)
	Receipts(holder common.Address) []model.Receipt
	Settings() model.Settings
	Points() soulbound.PointsView
}

// RewardLedger mints capped, soul-bound reward points for downloads and burns them on redemption.
// It is not safe for concurrent use; the ledger serializes access.
type RewardLedger struct {
	settings   model.Settings
	points     *soulbound.Points
	windows    map[common.Address]model.Window
	authorized map[common.Address]bool
	receipts   map[string]*model.Receipt
	byHolder   map[common.Address][]string
	sequence   uint64
}

func NewRewardLedger(settings model.Settings, points *soulbound.Points) *RewardLedger {

	return &RewardLedger{
		settings:   settings,
		points:     points,
		windows:    make(map[common.Address]model.Window),
		authorized: make(map[common.Address]bool),
		receipts:   make(map[string]*model.Receipt),
		byHolder:   make(map[common.Address][]string),
	}
}

// RewardForDownload credits RewardAmount to target for downloading datasetHash.
// Callers may only reward themselves, and only while authorized.
func (l *RewardLedger) RewardForDownload(caller, target common.Address, datasetHash common.Hash,
	now time.Time) (*model.DownloadReward, error) {

	if caller != target || !l.authorized[target] {
		return nil, errors2.NewClientErrorf(errors2.NOT_AUTHORIZED_PATIENT, http.StatusForbidden,
			"%s is not an authorized patient.", target.Hex())
	}

	window := l.currentWindow(target, now)
	if window.Minted+l.settings.RewardAmount > l.settings.MonthlyMintLimit {
		return nil, errors2.NewClientErrorf(errors2.MONTHLY_MINT_LIMIT_REACHED, http.StatusTooManyRequests,
			"Minted %d of %d in the window starting %s.", window.Minted, l.settings.MonthlyMintLimit,
			window.Start.Format(time.RFC3339))
	}
	if err := l.points.Mint(target, l.settings.RewardAmount); err != nil {
		return nil, err
	}
	window.Minted += l.settings.RewardAmount
	l.windows[target] = window

	return &model.DownloadReward{
		Patient:          target,
		DatasetHash:      datasetHash,
		Amount:           l.settings.RewardAmount,
		Balance:          l.points.BalanceOf(target),
		MintedThisWindow: window.Minted,
	}, nil
}

// Redeem burns tokenCost from the caller and issues a receipt.
func (l *RewardLedger) Redeem(caller common.Address, tokenCost uint64, rewardType string,
	now time.Time) (*model.Receipt, error) {

	if tokenCost == 0 {
		return nil, errors2.NewClientErrorf(errors2.INVALID_REWARD_COST, http.StatusBadRequest,
			"Token cost must be positive.")
	}
	if err := l.points.Burn(caller, tokenCost); err != nil {
		return nil, err
	}

	l.sequence++
	receipt := &model.Receipt{
		Code:       redemptionCode(l.points.Symbol(), l.sequence, tokenCost, caller),
		Patient:    caller,
		Amount:     tokenCost,
		RewardType: rewardType,
		Sequence:   l.sequence,
		RedeemedAt: now,
	}
	l.receipts[receipt.Code] = receipt
	l.byHolder[caller] = append(l.byHolder[caller], receipt.Code)
	issued := *receipt
	return &issued, nil
}

func (l *RewardLedger) SetAuthorizedPatient(patient common.Address, enabled bool) error {

	if patient == (common.Address{}) {
		return errors2.NewClientErrorf(errors2.INVALID_ADDRESS, http.StatusBadRequest,
			"The zero address cannot be authorized.")
	}
	if enabled {
		l.authorized[patient] = true
	} else {
		delete(l.authorized, patient)
	}
	return nil
}

func (l *RewardLedger) IsAuthorizedPatient(patient common.Address) bool {
	return l.authorized[patient]
}

func (l *RewardLedger) BalanceOf(holder common.Address) uint64 {
	return l.points.BalanceOf(holder)
}

// MonthlyMinted returns the amount minted to holder in the window current at now.
func (l *RewardLedger) MonthlyMinted(holder common.Address, now time.Time) uint64 {
	return l.currentWindow(holder, now).Minted
}

func (l *RewardLedger) Account(holder common.Address, now time.Time) model.Account {

	window := l.currentWindow(holder, now)
	return model.Account{
		Holder:           holder,
		Balance:          l.points.BalanceOf(holder),
		MintedThisWindow: window.Minted,
		WindowStart:      window.Start,
		Authorized:       l.authorized[holder],
	}
}

func (l *RewardLedger) Receipt(code string) (*model.Receipt, error) {

	receipt, ok := l.receipts[code]
	if !ok {
		return nil, errors2.NewClientErrorf(errors2.RECEIPT_NOT_FOUND, http.StatusNotFound,
			"No redemption with code %s.", code)
	}
	found := *receipt
	return &found, nil
}

// Receipts returns the redemptions of holder in issue order.
func (l *RewardLedger) Receipts(holder common.Address) []model.Receipt {

	receipts := make([]model.Receipt, 0, len(l.byHolder[holder]))
	for _, code := range l.byHolder[holder] {
		receipts = append(receipts, *l.receipts[code])
	}
	return receipts
}

func (l *RewardLedger) Settings() model.Settings {
	return l.settings
}

func (l *RewardLedger) Points() soulbound.PointsView {
	return l.points
}

// currentWindow returns a copy of holder's window, reset when it has elapsed at now.
func (l *RewardLedger) currentWindow(holder common.Address, now time.Time) model.Window {

	window := l.windows[holder]
	if windowExpired(window.Start, now, l.settings.MintWindow) {
		return model.Window{Start: now}
	}
	return window
}

func windowExpired(start, now time.Time, length time.Duration) bool {
	return !now.Before(start.Add(length))
}

// redemptionCode formats SYMBOL-sequence-amount-patient.
func redemptionCode(symbol string, sequence, amount uint64, patient common.Address) string {
	return fmt.Sprintf("%s-%d-%d-%s", strings.ToUpper(symbol), sequence, amount, strings.ToLower(patient.Hex()))
}
