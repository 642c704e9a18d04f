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

package soulbound

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

var (
	owner   = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	patient = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	other   = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

// assertBound exercises every transfer and approval entry point for each principal.
func assertBound(t *testing.T, token Token) {
	t.Helper()
	for _, caller := range []common.Address{owner, patient, other} {
		assert.True(t, errors2.HasCode(token.Transfer(caller, other, 1), errors2.TRANSFERS_DISABLED))
		assert.True(t, errors2.HasCode(token.Transfer(caller, caller, 1), errors2.TRANSFERS_DISABLED))
		assert.True(t, errors2.HasCode(token.TransferFrom(caller, patient, other, 1), errors2.TRANSFERS_DISABLED))
		assert.True(t, errors2.HasCode(token.SafeTransferFrom(caller, patient, other, 1), errors2.TRANSFERS_DISABLED))
		assert.True(t, errors2.HasCode(token.SafeTransferFromWithData(caller, patient, other, 1, []byte("x")),
			errors2.TRANSFERS_DISABLED))
		assert.True(t, errors2.HasCode(token.Approve(caller, other, 1), errors2.APPROVALS_DISABLED))
		assert.True(t, errors2.HasCode(token.SetApprovalForAll(caller, other, true), errors2.APPROVALS_DISABLED))
		assert.Equal(t, common.Address{}, token.GetApproved(1))
		assert.False(t, token.IsApprovedForAll(caller, other))
	}
	assert.True(t, token.IsSoulBound())
	assert.False(t, token.CanTransfer())
}

func TestCertificate_MintAndOwnership(t *testing.T) {
	certificates := NewCertificate("CercleConsent", "CCONSENT")

	require.NoError(t, certificates.Mint(patient, 1))
	require.NoError(t, certificates.Mint(patient, 2))

	holder, err := certificates.OwnerOf(1)
	require.NoError(t, err)
	assert.Equal(t, patient, holder)
	assert.Equal(t, uint64(2), certificates.BalanceOf(patient))
	assert.Equal(t, uint64(2), certificates.TotalSupply())
	assert.True(t, certificates.Exists(2))

	_, err = certificates.OwnerOf(3)
	assert.True(t, errors2.HasCode(err, errors2.TOKEN_DOES_NOT_EXIST))

	assert.Error(t, certificates.Mint(other, 1), "token ids are minted once")
	assert.True(t, errors2.HasCode(certificates.Mint(common.Address{}, 9), errors2.INVALID_ADDRESS))
}

func TestCertificate_IsBound(t *testing.T) {
	certificates := NewCertificate("CercleConsent", "CCONSENT")
	require.NoError(t, certificates.Mint(patient, 1))

	assertBound(t, certificates)

	holder, _ := certificates.OwnerOf(1)
	assert.Equal(t, patient, holder)
	assert.Equal(t, uint64(1), certificates.BalanceOf(patient))
	assert.Zero(t, certificates.BalanceOf(other))
}

func TestCertificate_SupportsInterface(t *testing.T) {
	certificates := NewCertificate("CercleConsent", "CCONSENT")

	assert.True(t, certificates.SupportsInterface(InterfaceERC165))
	assert.True(t, certificates.SupportsInterface(InterfaceERC721))
	assert.True(t, certificates.SupportsInterface(InterfaceERC721Metadata))
	assert.False(t, certificates.SupportsInterface([4]byte{0xff, 0xff, 0xff, 0xff}))
	assert.Equal(t, "CercleConsent", certificates.Name())
	assert.Equal(t, "CCONSENT", certificates.Symbol())
}

func TestPoints_MintBurn(t *testing.T) {
	points := NewPoints("CercleToken", "CERCLE")

	require.NoError(t, points.Mint(patient, 50))
	require.NoError(t, points.Mint(patient, 50))
	assert.Equal(t, uint64(100), points.BalanceOf(patient))
	assert.Equal(t, uint64(100), points.TotalSupply())

	require.NoError(t, points.Burn(patient, 30))
	assert.Equal(t, uint64(70), points.BalanceOf(patient))
	assert.Equal(t, uint64(70), points.TotalSupply())

	err := points.Burn(patient, 71)
	assert.True(t, errors2.HasCode(err, errors2.INSUFFICIENT_BALANCE))
	assert.Equal(t, uint64(70), points.BalanceOf(patient))
	assert.Zero(t, points.Decimals())
}

func TestPoints_IsBound(t *testing.T) {
	points := NewPoints("CercleToken", "CERCLE")
	require.NoError(t, points.Mint(patient, 50))

	assertBound(t, points)

	_, err := points.Allowance(patient, other)
	assert.True(t, errors2.HasCode(err, errors2.ALLOWANCE_DISABLED))
	assert.Equal(t, uint64(50), points.BalanceOf(patient))
	assert.Zero(t, points.BalanceOf(other))
}
