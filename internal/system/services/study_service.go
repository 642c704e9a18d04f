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

	"github.com/wso2/research-consent-ledger/internal/ledger"
	"github.com/wso2/research-consent-ledger/internal/study/handler"
	"github.com/wso2/research-consent-ledger/internal/system/config"
	"github.com/wso2/research-consent-ledger/internal/system/security"
)

type StudyService struct {
	handler *handler.StudyHandler
}

func NewStudyService(mux *http.ServeMux, apiBasePath string, service ledger.Service,
	authConfig config.AuthConfig) *StudyService {

	instance := &StudyService{
		handler: handler.NewStudyHandler(service),
	}
	instance.RegisterRoutes(mux, apiBasePath, authConfig)
	return instance
}

func (s *StudyService) RegisterRoutes(mux *http.ServeMux, apiBasePath string, authConfig config.AuthConfig) {
	mux.HandleFunc(fmt.Sprintf("POST %s/studies", apiBasePath), security.Authenticate(authConfig, s.handler.AuthorizeStudy))
	mux.HandleFunc(fmt.Sprintf("DELETE %s/studies/{id}", apiBasePath), security.Authenticate(authConfig, s.handler.RevokeStudy))
	mux.HandleFunc(fmt.Sprintf("GET %s/studies", apiBasePath), s.handler.ListStudies)
	mux.HandleFunc(fmt.Sprintf("GET %s/studies/{id}", apiBasePath), s.handler.GetStudy)
	mux.HandleFunc(fmt.Sprintf("GET %s/studies/{id}/consents", apiBasePath), s.handler.GetStudyConsents)
}
