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

package access

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

var (
	owner    = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	stranger = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func TestRequireOwner(t *testing.T) {
	control := NewControl(owner)

	assert.NoError(t, control.RequireOwner(owner))
	assert.True(t, errors2.HasCode(control.RequireOwner(stranger), errors2.UNAUTHORIZED))
	assert.True(t, control.IsOwner(owner))
	assert.False(t, control.IsOwner(stranger))
}

func TestPauseUnpause(t *testing.T) {
	control := NewControl(owner)
	assert.NoError(t, control.RequireNotPaused())

	assert.True(t, errors2.HasCode(control.Pause(stranger), errors2.UNAUTHORIZED))
	assert.False(t, control.Paused())

	require.NoError(t, control.Pause(owner))
	assert.True(t, control.Paused())
	assert.True(t, errors2.HasCode(control.RequireNotPaused(), errors2.SYSTEM_PAUSED))
	assert.True(t, errors2.HasCode(control.Pause(owner), errors2.ALREADY_PAUSED))

	assert.True(t, errors2.HasCode(control.Unpause(stranger), errors2.UNAUTHORIZED))
	require.NoError(t, control.Unpause(owner))
	assert.False(t, control.Paused())
	assert.True(t, errors2.HasCode(control.Unpause(owner), errors2.NOT_PAUSED))
}

func TestTransferOwnership(t *testing.T) {
	control := NewControl(owner)

	_, err := control.TransferOwnership(stranger, stranger)
	assert.True(t, errors2.HasCode(err, errors2.UNAUTHORIZED))

	_, err = control.TransferOwnership(owner, common.Address{})
	assert.True(t, errors2.HasCode(err, errors2.INVALID_ADDRESS))

	previous, err := control.TransferOwnership(owner, stranger)
	require.NoError(t, err)
	assert.Equal(t, owner, previous)
	assert.Equal(t, stranger, control.Owner())
	assert.True(t, errors2.HasCode(control.RequireOwner(owner), errors2.UNAUTHORIZED))
}
