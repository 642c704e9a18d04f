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
	"strconv"
	"time"

	"github.com/wso2/research-consent-ledger/internal/ledger"
	"github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/utils"
	"github.com/wso2/research-consent-ledger/internal/system/validation"
)

type ConsentHandler struct {
	ledger ledger.Service
}

func NewConsentHandler(service ledger.Service) *ConsentHandler {
	return &ConsentHandler{ledger: service}
}

type grantConsentRequest struct {
	DatasetHash     string `json:"dataset_hash"`
	StudyID         string `json:"study_id"`
	ValiditySeconds int64  `json:"validity_seconds"`
}

type revokeConsentRequest struct {
	OwnerID uint64 `json:"owner_id"`
}

// GrantConsent handles POST /consents
func (h *ConsentHandler) GrantConsent(w http.ResponseWriter, r *http.Request) {

	caller, err := utils.Caller(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var req grantConsentRequest
	if err := validation.Decode(r, validation.GrantConsentSchema, "consent", &req); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	datasetHash, err := utils.ParseHash(req.DatasetHash, "dataset_hash")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	studyID, err := utils.ParseHash(req.StudyID, "study_id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	consent, err := h.ledger.GrantConsent(caller, datasetHash, studyID,
		time.Duration(req.ValiditySeconds)*time.Second)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, consent)
}

// RevokeConsent handles POST /consents/{id}/revoke
func (h *ConsentHandler) RevokeConsent(w http.ResponseWriter, r *http.Request) {

	caller, err := utils.Caller(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	consentID, err := utils.PathUint(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var req revokeConsentRequest
	if err := validation.Decode(r, validation.RevokeConsentSchema, "consent revocation", &req); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	consent, err := h.ledger.RevokeConsent(caller, consentID, req.OwnerID)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, consent)
}

// GetConsent handles GET /consents/{id}?owner={identityId}
func (h *ConsentHandler) GetConsent(w http.ResponseWriter, r *http.Request) {

	consentID, err := utils.PathUint(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		utils.HandleError(w, r, errors.NewClientErrorf(errors.BAD_REQUEST, http.StatusBadRequest,
			"Query parameter owner is required."))
		return
	}
	ownerID, err := strconv.ParseUint(owner, 10, 64)
	if err != nil {
		utils.HandleError(w, r, errors.NewClientErrorf(errors.BAD_REQUEST, http.StatusBadRequest,
			"Query parameter owner must be an identity id."))
		return
	}
	view, err := h.ledger.GetConsentDetails(consentID, ownerID)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}
