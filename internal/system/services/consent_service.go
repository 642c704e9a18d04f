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

package services

import (
	"fmt"
	"net/http"

	"github.com/wso2/research-consent-ledger/internal/consent/handler"
	"github.com/wso2/research-consent-ledger/internal/ledger"
	"github.com/wso2/research-consent-ledger/internal/system/config"
	"github.com/wso2/research-consent-ledger/internal/system/security"
)

type ConsentService struct {
	handler *handler.ConsentHandler
}

func NewConsentService(mux *http.ServeMux, apiBasePath string, service ledger.Service,
	authConfig config.AuthConfig) *ConsentService {

	instance := &ConsentService{
		handler: handler.NewConsentHandler(service),
	}
	instance.RegisterRoutes(mux, apiBasePath, authConfig)
	return instance
}

func (s *ConsentService) RegisterRoutes(mux *http.ServeMux, apiBasePath string, authConfig config.AuthConfig) {
	mux.HandleFunc(fmt.Sprintf("POST %s/consents", apiBasePath), security.Authenticate(authConfig, s.handler.GrantConsent))
	mux.HandleFunc(fmt.Sprintf("POST %s/consents/{id}/revoke", apiBasePath), security.Authenticate(authConfig, s.handler.RevokeConsent))
	mux.HandleFunc(fmt.Sprintf("GET %s/consents/{id}", apiBasePath), s.handler.GetConsent)
}
