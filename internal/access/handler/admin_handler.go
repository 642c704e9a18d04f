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

	"github.com/ethereum/go-ethereum/common"
	"github.com/wso2/research-consent-ledger/internal/ledger"
	"github.com/wso2/research-consent-ledger/internal/system/utils"
	"github.com/wso2/research-consent-ledger/internal/system/validation"
)

type AdminHandler struct {
	ledger ledger.Service
}

func NewAdminHandler(service ledger.Service) *AdminHandler {
	return &AdminHandler{ledger: service}
}

type transferOwnershipRequest struct {
	NewOwner string `json:"new_owner"`
}

type statusResponse struct {
	Owner common.Address `json:"owner"`
	ledger.Stats
}

func (h *AdminHandler) status() statusResponse {
	return statusResponse{Owner: h.ledger.Owner(), Stats: h.ledger.Stats()}
}

// Pause handles POST /admin/pause
func (h *AdminHandler) Pause(w http.ResponseWriter, r *http.Request) {

	caller, err := utils.Caller(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	if err := h.ledger.Pause(caller); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.status())
}

// Unpause handles POST /admin/unpause
func (h *AdminHandler) Unpause(w http.ResponseWriter, r *http.Request) {

	caller, err := utils.Caller(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	if err := h.ledger.Unpause(caller); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.status())
}

// TransferOwnership handles POST /admin/ownership
func (h *AdminHandler) TransferOwnership(w http.ResponseWriter, r *http.Request) {

	caller, err := utils.Caller(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var req transferOwnershipRequest
	if err := validation.Decode(r, validation.TransferOwnershipSchema, "ownership transfer", &req); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	if err := h.ledger.TransferOwnership(caller, common.HexToAddress(req.NewOwner)); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.status())
}

// GetStatus handles GET /admin/status
func (h *AdminHandler) GetStatus(w http.ResponseWriter, r *http.Request) {

	utils.WriteJSON(w, http.StatusOK, h.status())
}
