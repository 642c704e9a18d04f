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
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

// ERC-165 interface ids reported by SupportsInterface.
var (
	InterfaceERC165         = [4]byte{0x01, 0xff, 0xc9, 0xa7}
	InterfaceERC721         = [4]byte{0x80, 0xac, 0x58, 0xcd}
	InterfaceERC721Metadata = [4]byte{0x5b, 0x5e, 0x13, 0x9f}
)

// CertificateView is the read-only surface of a Certificate.
type CertificateView interface {
	Token
	OwnerOf(tokenID uint64) (common.Address, error)
	SupportsInterface(interfaceID [4]byte) bool
}

// Certificate is the non-fungible variant: one token per id, never moved once minted.
type Certificate struct {
	Guard
	owners   map[uint64]common.Address
	balances map[common.Address]uint64
	supply   uint64
}

func NewCertificate(name, symbol string) *Certificate {
	return &Certificate{
		Guard:    NewGuard(name, symbol),
		owners:   make(map[uint64]common.Address),
		balances: make(map[common.Address]uint64),
	}
}

// Mint issues tokenID to holder.
func (c *Certificate) Mint(holder common.Address, tokenID uint64) error {
	if holder == (common.Address{}) {
		return errors2.NewClientErrorf(errors2.INVALID_ADDRESS, http.StatusBadRequest,
			"Certificates cannot be minted to the zero address.")
	}
	if _, exists := c.owners[tokenID]; exists {
		return fmt.Errorf("certificate %d already minted", tokenID)
	}
	c.owners[tokenID] = holder
	c.balances[holder]++
	c.supply++
	return nil
}

// Exists reports whether tokenID has been minted.
func (c *Certificate) Exists(tokenID uint64) bool {
	_, ok := c.owners[tokenID]
	return ok
}

func (c *Certificate) OwnerOf(tokenID uint64) (common.Address, error) {
	holder, ok := c.owners[tokenID]
	if !ok {
		return common.Address{}, errors2.NewClientErrorf(errors2.TOKEN_DOES_NOT_EXIST, http.StatusNotFound,
			"Certificate %d does not exist.", tokenID)
	}
	return holder, nil
}

func (c *Certificate) BalanceOf(holder common.Address) uint64 {
	return c.balances[holder]
}

func (c *Certificate) TotalSupply() uint64 {
	return c.supply
}

func (c *Certificate) SupportsInterface(interfaceID [4]byte) bool {
	switch interfaceID {
	case InterfaceERC165, InterfaceERC721, InterfaceERC721Metadata:
		return true
	}
	return false
}
