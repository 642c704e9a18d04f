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
	"github.com/wso2/research-consent-ledger/internal/soulbound"
	"github.com/wso2/research-consent-ledger/internal/system/utils"
)

type TokenHandler struct {
	ledger ledger.Service
}

func NewTokenHandler(service ledger.Service) *TokenHandler {
	return &TokenHandler{ledger: service}
}

type tokenMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	TotalSupply uint64 `json:"total_supply"`
	SoulBound   bool   `json:"soul_bound"`
	Decimals    *uint8 `json:"decimals,omitempty"`
}

func metadataOf(token soulbound.Token) tokenMetadata {
	return tokenMetadata{
		Name:        token.Name(),
		Symbol:      token.Symbol(),
		TotalSupply: token.TotalSupply(),
		SoulBound:   token.IsSoulBound() && !token.CanTransfer(),
	}
}

// GetTokens handles GET /tokens
func (h *TokenHandler) GetTokens(w http.ResponseWriter, r *http.Request) {

	points := h.ledger.Points()
	pointsMetadata := metadataOf(points)
	decimals := points.Decimals()
	pointsMetadata.Decimals = &decimals

	utils.WriteJSON(w, http.StatusOK, map[string]tokenMetadata{
		"points":       pointsMetadata,
		"certificates": metadataOf(h.ledger.Certificates()),
	})
}

// GetCertificate handles GET /certificates/{id}
func (h *TokenHandler) GetCertificate(w http.ResponseWriter, r *http.Request) {

	tokenID, err := utils.PathUint(r, "id")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	owner, err := h.ledger.Certificates().OwnerOf(tokenID)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token_id": tokenID,
		"owner":    owner,
	})
}

// GetBalances handles GET /tokens/{address}
func (h *TokenHandler) GetBalances(w http.ResponseWriter, r *http.Request) {

	holder, err := utils.PathAddress(r, "address")
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"holder":       holder,
		"points":       h.ledger.Points().BalanceOf(holder),
		"certificates": h.ledger.Certificates().BalanceOf(holder),
	})
}
