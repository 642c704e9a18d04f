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
	studyModel "github.com/wso2/research-consent-ledger/internal/study/model"
	"github.com/wso2/research-consent-ledger/internal/system/utils"
	"github.com/wso2/research-consent-ledger/internal/system/validation"
)

type StudyHandler struct {
	ledger ledger.Service
}

func NewStudyHandler(service ledger.Service) *StudyHandler {
	return &StudyHandler{ledger: service}
}

type authorizeStudyRequest struct {
	StudyID string `json:"study_id"`
	Name    string `json:"name"`
}

// AuthorizeStudy handles POST /studies. The id defaults to keccak256 of the name.
func (h *StudyHandler) AuthorizeStudy(w http.ResponseWriter, r *http.Request) {

	caller, err := utils.Caller(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	var req authorizeStudyRequest
	if err := validation.Decode(r, validation.AuthorizeStudySchema, "study", &req); err != nil {
		utils.HandleError(w, r, err)
		return
	}
	studyID := studyModel.StudyIDFromName(req.Name)
	if req.StudyID != "" {
		if studyID, err = utils.ParseHash(req.StudyID, "study_id"); err != nil {
			utils.HandleError(w, r, err)
			return
		}
	}
	study, err := h.ledger.AuthorizeStudy(caller, studyID, req.Name)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, study)
}

// RevokeStudy handles DELETE /studies/{id}
func (h *StudyHandler) RevokeStudy(w http.ResponseWriter, r *http.Request) {

	caller, err := utils.Caller(r)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	studyID, err := utils.PathHash(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	study, err := h.ledger.RevokeStudyAuthorization(caller, studyID, r.URL.Query().Get("name"))
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, study)
}

// ListStudies handles GET /studies
func (h *StudyHandler) ListStudies(w http.ResponseWriter, r *http.Request) {

	utils.WriteJSON(w, http.StatusOK, h.ledger.ListStudies())
}

// GetStudy handles GET /studies/{id}
func (h *StudyHandler) GetStudy(w http.ResponseWriter, r *http.Request) {

	studyID, err := utils.PathHash(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	study, err := h.ledger.GetStudy(studyID)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, study)
}

// GetStudyConsents handles GET /studies/{id}/consents
func (h *StudyHandler) GetStudyConsents(w http.ResponseWriter, r *http.Request) {

	studyID, err := utils.PathHash(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	consents, err := h.ledger.GetConsentsByStudy(studyID)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, consents)
}
