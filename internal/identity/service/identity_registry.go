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
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wso2/research-consent-ledger/internal/identity/model"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

// IdentityRegistryInterface defines the identity registry operations.
type IdentityRegistryInterface interface {
	Register(wallet common.Address, now time.Time) (*model.Identity, error)
	IDOf(wallet common.Address) (uint64, error)
	IsRegistered(wallet common.Address) bool
	Info(id uint64) (*model.Identity, error)
	Count() int
}

// IdentityRegistry maps wallets to sequential identity ids. Id 0 is reserved for "no identity".
// It is not safe for concurrent use; the ledger serializes access.
type IdentityRegistry struct {
	byWallet map[common.Address]uint64
	records  []model.Identity
}

// NewIdentityRegistry returns an empty registry whose first assigned id is 1.
func NewIdentityRegistry() *IdentityRegistry {

	return &IdentityRegistry{
		byWallet: make(map[common.Address]uint64),
	}
}

// Register assigns the next identity id to wallet.
func (r *IdentityRegistry) Register(wallet common.Address, now time.Time) (*model.Identity, error) {

	if wallet == (common.Address{}) {
		return nil, errors2.NewClientErrorf(errors2.INVALID_ADDRESS, http.StatusBadRequest,
			"The zero address cannot be registered.")
	}
	if _, exists := r.byWallet[wallet]; exists {
		return nil, errors2.NewClientErrorf(errors2.ALREADY_REGISTERED, http.StatusConflict,
			"Wallet %s is already registered.", wallet.Hex())
	}

	identity := model.Identity{
		ID:           uint64(len(r.records)) + 1,
		Wallet:       wallet,
		RegisteredAt: now,
		Active:       true,
	}
	r.records = append(r.records, identity)
	r.byWallet[wallet] = identity.ID
	return &identity, nil
}

// IDOf returns the identity id registered for wallet.
func (r *IdentityRegistry) IDOf(wallet common.Address) (uint64, error) {

	id, ok := r.byWallet[wallet]
	if !ok {
		return 0, errors2.NewClientErrorf(errors2.NOT_REGISTERED, http.StatusNotFound,
			"Wallet %s is not registered.", wallet.Hex())
	}
	return id, nil
}

func (r *IdentityRegistry) IsRegistered(wallet common.Address) bool {
	_, ok := r.byWallet[wallet]
	return ok
}

// Info returns a copy of the identity record for id.
func (r *IdentityRegistry) Info(id uint64) (*model.Identity, error) {

	if id == 0 || id > uint64(len(r.records)) {
		return nil, errors2.NewClientErrorf(errors2.UNKNOWN_IDENTITY, http.StatusNotFound,
			"Identity %d does not exist.", id)
	}
	identity := r.records[id-1]
	return &identity, nil
}

func (r *IdentityRegistry) Count() int {
	return len(r.records)
}
