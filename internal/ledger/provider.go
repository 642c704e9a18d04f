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

package ledger

import (
	"sync"

	"github.com/wso2/research-consent-ledger/internal/system/clock"
	"github.com/wso2/research-consent-ledger/internal/system/workers"
)

var (
	instance *Ledger
	once     sync.Once
)

// Initialize creates the process-wide ledger. Later calls return the existing instance.
func Initialize(settings Settings, clk clock.Clock, queue workers.EventQueue) *Ledger {

	once.Do(func() {
		instance = New(settings, clk, queue)
	})
	return instance
}

// GetLedger returns the process-wide ledger.
func GetLedger() Service {

	if instance == nil {
		panic("ledger is not initialized")
	}
	return instance
}
