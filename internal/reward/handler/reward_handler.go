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

type RewardHandler struct {
	ledger ledger.Service
}

func NewRewardHandler(service ledger.Service) *RewardHandler {
	return &RewardHandler{ledger: service}
}

type rewardDownloadRequest struct {
	Patient     string `json:"patient"`
	DatasetHash string `json:"dataset_hash"`
}

type redeemRewardRequest struct {
	TokenCost  uint64 `json:"token_cost"`
	RewardType string `json:"reward_type"`
}

type authorizePatientRequest struct {
	Enabled bool `json:"enabled"`
}

// RewardForDownload handles POST /rewards/downloads
func (h *RewardHandler) RewardForDownload(w http.ResponseWriter, r *http.Request) {

	caller, err := utils.Caller(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var req rewardDownloadRequest
	if err := validation.Decode(r, validation.RewardDownloadSchema, "download reward", &req); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	datasetHash, err := utils.ParseHash(req.DatasetHash, "dataset_hash")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	reward, err := h.ledger.RewardForDownload(caller, common.HexToAddress(req.Patient), datasetHash)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, reward)
}

// RedeemReward handles POST /rewards/redemptions
func (h *RewardHandler) RedeemReward(w http.ResponseWriter, r *http.Request) {

	caller, err := utils.Caller(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var req redeemRewardRequest
	if err := validation.Decode(r, validation.RedeemRewardSchema, "redemption", &req); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	receipt, err := h.ledger.RedeemReward(caller, req.TokenCost, req.RewardType)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, receipt)
}

// GetAccount handles GET /rewards/{address}
func (h *RewardHandler) GetAccount(w http.ResponseWriter, r *http.Request) {

	holder, err := utils.PathAddress(r, "address")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.ledger.GetRewardAccount(holder))
}

// GetReceipts handles GET /rewards/{address}/receipts
func (h *RewardHandler) GetReceipts(w http.ResponseWriter, r *http.Request) {

	holder, err := utils.PathAddress(r, "address")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.ledger.GetReceipts(holder))
}

// GetReceipt handles GET /receipts/{code}
func (h *RewardHandler) GetReceipt(w http.ResponseWriter, r *http.Request) {

	receipt, err := h.ledger.GetReceipt(r.PathValue("code"))
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, receipt)
}

// SetAuthorizedPatient handles PUT /admin/patients/{address}
func (h *RewardHandler) SetAuthorizedPatient(w http.ResponseWriter, r *http.Request) {

	caller, err := utils.Caller(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	patient, err := utils.PathAddress(r, "address")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var req authorizePatientRequest
	if err := validation.Decode(r, validation.AuthorizePatientSchema, "patient authorization", &req); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	if err := h.ledger.SetAuthorizedPatient(caller, patient, req.Enabled); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.ledger.GetRewardAccount(patient))
}
