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

package handler

import (
	"net/http"

	"github.com/wso2/research-consent-ledger/internal/ledger"
	"github.com/wso2/research-consent-ledger/internal/system/utils"
)

type IdentityHandler struct {
	ledger ledger.Service
}

func NewIdentityHandler(service ledger.Service) *IdentityHandler {
	return &IdentityHandler{ledger: service}
}

// Register handles POST /identities
func (h *IdentityHandler) Register(w http.ResponseWriter, r *http.Request) {

	caller, err := utils.Caller(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	identity, err := h.ledger.Register(caller)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, identity)
}

// GetIdentity handles GET /identities/{id}
func (h *IdentityHandler) GetIdentity(w http.ResponseWriter, r *http.Request) {

	identityID, err := utils.PathUint(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	info, err := h.ledger.GetPatientInfo(identityID)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, info)
}

// GetIdentityByWallet handles GET /wallets/{address}/identity
func (h *IdentityHandler) GetIdentityByWallet(w http.ResponseWriter, r *http.Request) {

	wallet, err := utils.PathAddress(r, "address")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	identityID, err := h.ledger.IdentityOf(wallet)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"wallet_address": wallet,
		"id":             identityID,
	})
}

// GetPatientConsents handles GET /identities/{id}/consents
func (h *IdentityHandler) GetPatientConsents(w http.ResponseWriter, r *http.Request) {

	identityID, err := utils.PathUint(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	consentIDs, err := h.ledger.GetPatientConsents(identityID)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"identity_id": identityID,
		"consent_ids": consentIDs,
	})
}
