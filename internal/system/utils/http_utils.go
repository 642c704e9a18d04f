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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ctx "github.com/wso2/research-consent-ledger/internal/system/context"
	customerrors "github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

// HandleError sends an HTTP error response based on the provided error
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	traceID := ctx.GetTraceID(r.Context())
	w.Header().Set("Content-Type", "application/json")

	var clientError *customerrors.ClientError
	if ok := errors.As(err, &clientError); ok {
		w.WriteHeader(clientError.StatusCode)
		_ = json.NewEncoder(w).Encode(struct {
			Code        string `json:"code"`
			Message     string `json:"message"`
			Description string `json:"description"`
			TraceID     string `json:"trace_id,omitempty"`
		}{
			Code:        clientError.ErrorMessage.Code,
			Message:     clientError.ErrorMessage.Message,
			Description: clientError.ErrorMessage.Description,
			TraceID:     traceID,
		})
		return
	}

	logger := log.GetLogger()
	logger.Error(err.Error(), log.String("traceId", traceID))
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":    "Internal server error",
		"trace_id": traceID,
	})
}

// WriteJSON writes body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Caller returns the authenticated wallet set by the authentication middleware.
func Caller(r *http.Request) (common.Address, error) {

	caller, ok := ctx.GetCaller(r.Context())
	if !ok {
		return common.Address{}, customerrors.NewClientError(customerrors.UN_AUTHENTICATED, http.StatusUnauthorized)
	}
	return caller, nil
}

// PathAddress parses the named path value as a hex wallet address.
func PathAddress(r *http.Request, name string) (common.Address, error) {

	value := r.PathValue(name)
	if !common.IsHexAddress(value) {
		return common.Address{}, customerrors.NewClientErrorf(customerrors.INVALID_PATH_PARAM, http.StatusBadRequest,
			"%s must be a hex address.", name)
	}
	return common.HexToAddress(value), nil
}

// PathHash parses the named path value as a 32-byte hex hash.
func PathHash(r *http.Request, name string) (common.Hash, error) {

	return ParseHash(r.PathValue(name), name)
}

// PathUint parses the named path value as an unsigned integer.
func PathUint(r *http.Request, name string) (uint64, error) {

	return ParseUint(r.PathValue(name), name)
}

// ParseHash accepts 0x-prefixed 64 hex digit strings.
func ParseHash(value, name string) (common.Hash, error) {

	raw := strings.TrimPrefix(value, "0x")
	if len(raw) != 64 || !isHex(raw) {
		return common.Hash{}, customerrors.NewClientErrorf(customerrors.INVALID_PATH_PARAM, http.StatusBadRequest,
			"%s must be a 32-byte hex value.", name)
	}
	return common.HexToHash(value), nil
}

func ParseUint(value, name string) (uint64, error) {

	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, customerrors.NewClientErrorf(customerrors.INVALID_PATH_PARAM, http.StatusBadRequest,
			"%s must be an unsigned integer.", name)
	}
	return parsed, nil
}

func isHex(value string) bool {
	for _, c := range value {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}
