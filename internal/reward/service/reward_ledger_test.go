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
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/research-consent-ledger/internal/reward/model"
	"github.com/wso2/research-consent-ledger/internal/soulbound"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

var (
	patient = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	other   = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	dataset = crypto.Keccak256Hash([]byte("dataset-1"))
	t0      = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

func newAuthorizedLedger(t *testing.T) *RewardLedger {
	t.Helper()
	ledger := NewRewardLedger(model.DefaultSettings(), soulbound.NewPoints("CercleToken", "CERCLE"))
	require.NoError(t, ledger.SetAuthorizedPatient(patient, true))
	return ledger
}

func TestRewardForDownload_MintsRewardAmount(t *testing.T) {
	ledger := newAuthorizedLedger(t)

	reward, err := ledger.RewardForDownload(patient, patient, dataset, t0)
	require.NoError(t, err)

	assert.Equal(t, uint64(50), reward.Amount)
	assert.Equal(t, uint64(50), reward.Balance)
	assert.Equal(t, uint64(50), reward.MintedThisWindow)
	assert.Equal(t, dataset, reward.DatasetHash)
	assert.Equal(t, uint64(50), ledger.Points().TotalSupply())
}

func TestRewardForDownload_RequiresAuthorizedSelf(t *testing.T) {
	ledger := newAuthorizedLedger(t)

	_, err := ledger.RewardForDownload(other, other, dataset, t0)
	assert.True(t, errors2.HasCode(err, errors2.NOT_AUTHORIZED_PATIENT))

	_, err = ledger.RewardForDownload(other, patient, dataset, t0)
	assert.True(t, errors2.HasCode(err, errors2.NOT_AUTHORIZED_PATIENT), "rewarding someone else")

	require.NoError(t, ledger.SetAuthorizedPatient(patient, false))
	_, err = ledger.RewardForDownload(patient, patient, dataset, t0)
	assert.True(t, errors2.HasCode(err, errors2.NOT_AUTHORIZED_PATIENT))
	assert.Zero(t, ledger.BalanceOf(patient))
}

func TestRewardForDownload_MonthlyLimitAndRollover(t *testing.T) {
	ledger := newAuthorizedLedger(t)

	for i := 0; i < 4; i++ {
		_, err := ledger.RewardForDownload(patient, patient, dataset, t0.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
	}
	assert.Equal(t, uint64(200), ledger.BalanceOf(patient))

	_, err := ledger.RewardForDownload(patient, patient, dataset, t0.Add(5*time.Hour))
	assert.True(t, errors2.HasCode(err, errors2.MONTHLY_MINT_LIMIT_REACHED))
	assert.Equal(t, uint64(200), ledger.BalanceOf(patient))
	assert.Equal(t, uint64(200), ledger.MonthlyMinted(patient, t0.Add(5*time.Hour)))

	later := t0.Add(31 * 24 * time.Hour)
	reward, err := ledger.RewardForDownload(patient, patient, dataset, later)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), reward.Balance)
	assert.Equal(t, uint64(50), reward.MintedThisWindow)

	account := ledger.Account(patient, later)
	assert.Equal(t, later, account.WindowStart)
	assert.True(t, account.Authorized)
}

func TestRewardForDownload_WindowBoundary(t *testing.T) {
	ledger := newAuthorizedLedger(t)
	window := ledger.Settings().MintWindow

	for i := 0; i < 4; i++ {
		_, err := ledger.RewardForDownload(patient, patient, dataset, t0)
		require.NoError(t, err)
	}
	_, err := ledger.RewardForDownload(patient, patient, dataset, t0.Add(window-time.Second))
	assert.True(t, errors2.HasCode(err, errors2.MONTHLY_MINT_LIMIT_REACHED))

	_, err = ledger.RewardForDownload(patient, patient, dataset, t0.Add(window))
	assert.NoError(t, err)
}

func TestRedeem(t *testing.T) {
	ledger := newAuthorizedLedger(t)
	for i := 0; i < 2; i++ {
		_, err := ledger.RewardForDownload(patient, patient, dataset, t0)
		require.NoError(t, err)
	}

	first, err := ledger.Redeem(patient, 30, "coffee", t0)
	require.NoError(t, err)
	second, err := ledger.Redeem(patient, 30, "coffee", t0)
	require.NoError(t, err)

	assert.NotEqual(t, first.Code, second.Code)
	assert.Equal(t, "CERCLE-1-30-0x70997970c51812dc3a010c7d01b50e0d17dc79c8", first.Code)
	assert.Equal(t, uint64(2), second.Sequence)
	assert.Equal(t, uint64(40), ledger.BalanceOf(patient))
	assert.Equal(t, uint64(40), ledger.Points().TotalSupply())

	found, err := ledger.Receipt(first.Code)
	require.NoError(t, err)
	assert.Equal(t, "coffee", found.RewardType)
	assert.Len(t, ledger.Receipts(patient), 2)
	assert.Empty(t, ledger.Receipts(other))

	_, err = ledger.Receipt("CERCLE-9-1-0x0")
	assert.True(t, errors2.HasCode(err, errors2.RECEIPT_NOT_FOUND))
}

func TestRedeem_Failures(t *testing.T) {
	ledger := newAuthorizedLedger(t)
	_, err := ledger.RewardForDownload(patient, patient, dataset, t0)
	require.NoError(t, err)

	_, err = ledger.Redeem(patient, 0, "coffee", t0)
	assert.True(t, errors2.HasCode(err, errors2.INVALID_REWARD_COST))

	_, err = ledger.Redeem(patient, 51, "coffee", t0)
	assert.True(t, errors2.HasCode(err, errors2.INSUFFICIENT_BALANCE))

	_, err = ledger.Redeem(other, 1, "coffee", t0)
	assert.True(t, errors2.HasCode(err, errors2.INSUFFICIENT_BALANCE))

	assert.Equal(t, uint64(50), ledger.BalanceOf(patient))
	next, err := ledger.Redeem(patient, 50, "coffee", t0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), next.Sequence, "failed redemptions consume no sequence")
}

func TestSetAuthorizedPatient_ZeroAddress(t *testing.T) {
	ledger := newAuthorizedLedger(t)
	err := ledger.SetAuthorizedPatient(common.Address{}, true)
	assert.True(t, errors2.HasCode(err, errors2.INVALID_ADDRESS))
}

func TestWindowExpired(t *testing.T) {
	assert.True(t, windowExpired(time.Time{}, t0, time.Hour))
	assert.False(t, windowExpired(t0, t0.Add(59*time.Minute), time.Hour))
	assert.True(t, windowExpired(t0, t0.Add(time.Hour), time.Hour))
}
