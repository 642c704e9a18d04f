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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

var (
	walletA = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	walletB = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	t0      = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

func TestRegister_AssignsSequentialIDsFromOne(t *testing.T) {
	registry := NewIdentityRegistry()

	first, err := registry.Register(walletA, t0)
	require.NoError(t, err)
	second, err := registry.Register(walletB, t0.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)
	assert.True(t, first.Active)
	assert.Equal(t, t0, first.RegisteredAt)
	assert.Equal(t, 2, registry.Count())
}

func TestRegister_TwiceFailsAlreadyRegistered(t *testing.T) {
	registry := NewIdentityRegistry()
	_, err := registry.Register(walletA, t0)
	require.NoError(t, err)

	_, err = registry.Register(walletA, t0)
	assert.True(t, errors2.HasCode(err, errors2.ALREADY_REGISTERED))
	assert.Equal(t, 1, registry.Count(), "failed registration must not consume an id")

	next, err := registry.Register(walletB, t0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), next.ID)
}

func TestRegister_ZeroAddressRejected(t *testing.T) {
	registry := NewIdentityRegistry()
	_, err := registry.Register(common.Address{}, t0)
	assert.True(t, errors2.HasCode(err, errors2.INVALID_ADDRESS))
}

func TestIDOf(t *testing.T) {
	registry := NewIdentityRegistry()
	_, _ = registry.Register(walletA, t0)

	id, err := registry.IDOf(walletA)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	_, err = registry.IDOf(walletB)
	assert.True(t, errors2.HasCode(err, errors2.NOT_REGISTERED))

	assert.True(t, registry.IsRegistered(walletA))
	assert.False(t, registry.IsRegistered(walletB))
}

func TestInfo_UnknownIdentity(t *testing.T) {
	registry := NewIdentityRegistry()
	_, _ = registry.Register(walletA, t0)

	for _, id := range []uint64{0, 2, 999} {
		_, err := registry.Info(id)
		assert.True(t, errors2.HasCode(err, errors2.UNKNOWN_IDENTITY), "id %d", id)
	}

	info, err := registry.Info(1)
	require.NoError(t, err)
	assert.Equal(t, walletA, info.Wallet)
}

func TestInfo_ReturnsCopy(t *testing.T) {
	registry := NewIdentityRegistry()
	_, _ = registry.Register(walletA, t0)

	info, _ := registry.Info(1)
	info.Active = false

	again, _ := registry.Info(1)
	assert.True(t, again.Active)
}
