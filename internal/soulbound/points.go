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
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

// PointsView is the read-only surface of a Points ledger.
type PointsView interface {
	Token
	Decimals() uint8
	Allowance(owner, spender common.Address) (uint64, error)
}

// Points is the fungible variant: a whole-unit balance per holder.
type Points struct {
	Guard
	balances map[common.Address]uint64
	supply   uint64
}

func NewPoints(name, symbol string) *Points {
	return &Points{
		Guard:    NewGuard(name, symbol),
		balances: make(map[common.Address]uint64),
	}
}

// Mint credits amount to holder.
func (p *Points) Mint(holder common.Address, amount uint64) error {
	if holder == (common.Address{}) {
		return errors2.NewClientErrorf(errors2.INVALID_ADDRESS, http.StatusBadRequest,
			"Points cannot be minted to the zero address.")
	}
	p.balances[holder] += amount
	p.supply += amount
	return nil
}

// Burn debits amount from holder.
func (p *Points) Burn(holder common.Address, amount uint64) error {
	if p.balances[holder] < amount {
		return errors2.NewClientErrorf(errors2.INSUFFICIENT_BALANCE, http.StatusBadRequest,
			"Balance %d is lower than %d.", p.balances[holder], amount)
	}
	p.balances[holder] -= amount
	p.supply -= amount
	return nil
}

func (p *Points) BalanceOf(holder common.Address) uint64 {
	return p.balances[holder]
}

func (p *Points) TotalSupply() uint64 {
	return p.supply
}

// Decimals is zero: rewards are whole units only.
func (p *Points) Decimals() uint8 {
	return 0
}

// Allowance fails: soul-bound balances have no allowances to report.
func (p *Points) Allowance(owner, spender common.Address) (uint64, error) {
	return 0, errors2.NewClientError(errors2.ALLOWANCE_DISABLED, http.StatusForbidden)
}
