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

// Package soulbound implements ownable, non-transferable, non-approvable tokens.
//
// Guard carries the disabled transfer and approval surface and is embedded by both variants:
// Certificate (one non-fungible token per consent grant) and Points (one fungible balance per
// holder). Mint and Burn are only reachable by the ledger component that owns the token; the
// ledger hands callers the read-only Token view.
package soulbound

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

// Token is the caller-facing capability set shared by every soul-bound token.
type Token interface {
	Name() string
	Symbol() string
	BalanceOf(holder common.Address) uint64
	TotalSupply() uint64
	IsSoulBound() bool
	CanTransfer() bool

	Transfer(caller, to common.Address, value uint64) error
	TransferFrom(caller, from, to common.Address, value uint64) error
	SafeTransferFrom(caller, from, to common.Address, tokenID uint64) error
	SafeTransferFromWithData(caller, from, to common.Address, tokenID uint64, data []byte) error
	Approve(caller, spender common.Address, value uint64) error
	SetApprovalForAll(caller, operator common.Address, approved bool) error
	GetApproved(tokenID uint64) common.Address
	IsApprovedForAll(owner, operator common.Address) bool
}

// Guard rejects every transfer and approval regardless of who calls it.
type Guard struct {
	name   string
	symbol string
}

func NewGuard(name, symbol string) Guard {
	return Guard{name: name, symbol: symbol}
}

func (g Guard) Name() string {
	return g.name
}

func (g Guard) Symbol() string {
	return g.symbol
}

func (Guard) IsSoulBound() bool {
	return true
}

func (Guard) CanTransfer() bool {
	return false
}

func (Guard) Transfer(caller, to common.Address, value uint64) error {
	return transfersDisabled()
}

func (Guard) TransferFrom(caller, from, to common.Address, value uint64) error {
	return transfersDisabled()
}

func (Guard) SafeTransferFrom(caller, from, to common.Address, tokenID uint64) error {
	return transfersDisabled()
}

func (Guard) SafeTransferFromWithData(caller, from, to common.Address, tokenID uint64, data []byte) error {
	return transfersDisabled()
}

func (Guard) Approve(caller, spender common.Address, value uint64) error {
	return approvalsDisabled()
}

func (Guard) SetApprovalForAll(caller, operator common.Address, approved bool) error {
	return approvalsDisabled()
}

// GetApproved always reports that nobody is approved.
func (Guard) GetApproved(tokenID uint64) common.Address {
	return common.Address{}
}

// IsApprovedForAll always reports false.
func (Guard) IsApprovedForAll(owner, operator common.Address) bool {
	return false
}

func transfersDisabled() error {
	return errors2.NewClientError(errors2.TRANSFERS_DISABLED, http.StatusForbidden)
}

func approvalsDisabled() error {
	return errors2.NewClientError(errors2.APPROVALS_DISABLED, http.StatusForbidden)
}
