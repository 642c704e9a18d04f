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

package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// ParseLimit reads ?limit=, falling back to DefaultLimit and clamping to MaxLimit.
func ParseLimit(r *http.Request) (int, error) {
	limit := DefaultLimit

	if l := r.URL.Query().Get("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v <= 0 {
			return 0, fmt.Errorf("invalid limit")
		}
		if v > MaxLimit {
			v = MaxLimit
		}
		limit = v
	}

	return limit, nil
}

// ParseFrom reads ?from=, the first sequence number of the page. Sequences start at 1.
func ParseFrom(r *http.Request) (uint64, error) {

	raw := r.URL.Query().Get("from")
	if raw == "" {
		return 1, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid from")
	}
	if v == 0 {
		v = 1
	}
	return v, nil
}

// Next returns the from value of the page after one ending at lastSequence, or 0 when
// the page was short and no more events are known.
func Next(lastSequence uint64, pageLen, limit int) uint64 {
	if pageLen < limit || pageLen == 0 {
		return 0
	}
	return lastSequence + 1
}
