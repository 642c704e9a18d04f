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

package managers

import (
	"net/http"

	eventsService "github.com/wso2/research-consent-ledger/internal/events/service"
	"github.com/wso2/research-consent-ledger/internal/ledger"
	"github.com/wso2/research-consent-ledger/internal/system/config"
	"github.com/wso2/research-consent-ledger/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux        *http.ServeMux
	ledger     ledger.Service
	events     eventsService.EventsServiceInterface
	authConfig config.AuthConfig
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, ledgerService ledger.Service,
	events eventsService.EventsServiceInterface, authConfig config.AuthConfig) ServiceManagerInterface {

	return &ServiceManager{
		mux:        mux,
		ledger:     ledgerService,
		events:     events,
		authConfig: authConfig,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	services.NewIdentityService(sm.mux, apiBasePath, sm.ledger, sm.authConfig)
	services.NewStudyService(sm.mux, apiBasePath, sm.ledger, sm.authConfig)
	services.NewConsentService(sm.mux, apiBasePath, sm.ledger, sm.authConfig)
	services.NewRewardService(sm.mux, apiBasePath, sm.ledger, sm.authConfig)
	services.NewAdminService(sm.mux, apiBasePath, sm.ledger, sm.authConfig)
	services.NewTokenService(sm.mux, apiBasePath, sm.ledger)
	services.NewEventService(sm.mux, apiBasePath, sm.events)
	services.NewHealthService(sm.mux)
	return nil
}
