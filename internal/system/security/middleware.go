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

package security

import (
	"net/http"
	"strings"

	"github.com/wso2/research-consent-ledger/internal/system/authn"
	"github.com/wso2/research-consent-ledger/internal/system/config"
	"github.com/wso2/research-consent-ledger/internal/system/constants"
	ctx "github.com/wso2/research-consent-ledger/internal/system/context"
	"github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/log"
	"github.com/wso2/research-consent-ledger/internal/system/utils"
)

// WithTrace tags every request with a trace id, reusing the caller's X-Trace-Id when present.
func WithTrace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(constants.TraceIDHeader)
		if traceID == "" {
			traceID = ctx.GenerateTraceID()
		}
		w.Header().Set(constants.TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx.WithTraceID(r.Context(), traceID)))
	})
}

// Authenticate requires a valid bearer token and puts its wallet on the request context.
func Authenticate(authConfig config.AuthConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.HandleError(w, r, errors.NewClientError(errors.UN_AUTHENTICATED, http.StatusUnauthorized))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		caller, err := authn.ValidateToken(token, authConfig)
		logger := log.GetLogger()
		if err != nil {
			logger.Audit(log.AuditEvent{
				InitiatorType: log.InitiatorTypeSystem,
				TargetType:    log.TargetTypeLedger,
				TargetID:      r.URL.Path,
				ActionID:      log.ActionAuthenticationFailure,
				TraceID:       ctx.GetTraceID(r.Context()),
			})
			utils.HandleError(w, r, err)
			return
		}

		logger.Debug("Request authenticated.", log.String("caller", caller.Hex()),
			log.String("traceId", ctx.GetTraceID(r.Context())))
		next(w, r.WithContext(ctx.WithCaller(r.Context(), caller)))
	}
}
