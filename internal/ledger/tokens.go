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
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wso2/research-consent-ledger/internal/soulbound"
)

// lockedToken serialises reads of a token's balances with ledger commands.
type lockedToken struct {
	mu   *sync.RWMutex
	view soulbound.Token
}

func (t *lockedToken) Name() string {
	return t.view.Name()
}

func (t *lockedToken) Symbol() string {
	return t.view.Symbol()
}

func (t *lockedToken) BalanceOf(holder common.Address) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.view.BalanceOf(holder)
}

func (t *lockedToken) TotalSupply() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.view.TotalSupply()
}

func (t *lockedToken) IsSoulBound() bool {
	return t.view.IsSoulBound()
}

func (t *lockedToken) CanTransfer() bool {
	return t.view.CanTransfer()
}

func (t *lockedToken) Transfer(caller, to common.Address, value uint64) error {
	return t.view.Transfer(caller, to, value)
}

func (t *lockedToken) TransferFrom(caller, from, to common.Address, value uint64) error {
	return t.view.TransferFrom(caller, from, to, value)
}

func (t *lockedToken) SafeTransferFrom(caller, from, to common.Address, tokenID uint64) error {
	return t.view.SafeTransferFrom(caller, from, to, tokenID)
}

func (t *lockedToken) SafeTransferFromWithData(caller, from, to common.Address, tokenID uint64, data []byte) error {
	return t.view.SafeTransferFromWithData(caller, from, to, tokenID, data)
}

func (t *lockedToken) Approve(caller, spender common.Address, value uint64) error {
	return t.view.Approve(caller, spender, value)
}

func (t *lockedToken) SetApprovalForAll(caller, operator common.Address, approved bool) error {
	return t.view.SetApprovalForAll(caller, operator, approved)
}

func (t *lockedToken) GetApproved(tokenID uint64) common.Address {
	return t.view.GetApproved(tokenID)
}

func (t *lockedToken) IsApprovedForAll(owner, operator common.Address) bool {
	return t.view.IsApprovedForAll(owner, operator)
}

type lockedCertificate struct {
	lockedToken
	certificates soulbound.CertificateView
}

func newLockedCertificate(mu *sync.RWMutex, view soulbound.CertificateView) *lockedCertificate {
	return &lockedCertificate{lockedToken: lockedToken{mu: mu, view: view}, certificates: view}
}

func (c *lockedCertificate) OwnerOf(tokenID uint64) (common.Address, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.certificates.OwnerOf(tokenID)
}

func (c *lockedCertificate) SupportsInterface(interfaceID [4]byte) bool {
	return c.certificates.SupportsInterface(interfaceID)
}

type lockedPoints struct {
	lockedToken
	points soulbound.PointsView
}

func newLockedPoints(mu *sync.RWMutex, view soulbound.PointsView) *lockedPoints {
	return &lockedPoints{lockedToken: lockedToken{mu: mu, view: view}, points: view}
}

func (p *lockedPoints) Decimals() uint8 {
	return p.points.Decimals()
}

func (p *lockedPoints) Allowance(owner, spender common.Address) (uint64, error) {
	return p.points.Allowance(owner, spender)
}
