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

	"github.com/wso2/research-consent-ledger/internal/events/model"
	"github.com/wso2/research-consent-ledger/internal/events/service"
	"github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/pagination"
	"github.com/wso2/research-consent-ledger/internal/system/utils"
)

type EventHandler struct {
	service service.EventsServiceInterface
}

func NewEventHandler(eventsService service.EventsServiceInterface) *EventHandler {

	return &EventHandler{service: eventsService}
}

type eventPage struct {
	Events   []model.Event `json:"events"`
	NextFrom uint64        `json:"next_from,omitempty"`
}

// GetEvents handles GET /events?from={sequence}&limit={n}
func (eh *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {

	from, err := pagination.ParseFrom(r)
	if err != nil {
		utils.HandleError(w, r, errors.NewClientErrorf(errors.BAD_REQUEST, http.StatusBadRequest,
			"Query parameter from must be an unsigned integer."))
		return
	}
	limit, err := pagination.ParseLimit(r)
	if err != nil {
		utils.HandleError(w, r, errors.NewClientErrorf(errors.BAD_REQUEST, http.StatusBadRequest,
			"Query parameter limit must be a positive integer."))
		return
	}

	events, err := eh.service.GetEvents(r.Context(), from, limit)
	if err != nil {
		utils.HandleError(w, r, err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	page := eventPage{Events: events}
	if len(events) > 0 {
		page.NextFrom = pagination.Next(events[len(events)-1].Sequence, len(events), limit)
	}
	utils.WriteJSON(w, http.StatusOK, page)
}
