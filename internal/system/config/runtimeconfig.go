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

package config

import "sync"

// LedgerRuntime holds the runtime configuration for the ledger server.
type LedgerRuntime struct {
	LedgerHome string `yaml:"ledger_home"`
	Config     Config `yaml:"config"`
}

var (
	runtimeConfig *LedgerRuntime
	once          sync.Once
)

// InitializeRuntime initializes the LedgerRuntime configuration.
func InitializeRuntime(ledgerHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &LedgerRuntime{
			LedgerHome: ledgerHome,
			Config:     *config,
		}
	})

	return nil
}

// GetRuntime returns the LedgerRuntime configuration.
func GetRuntime() *LedgerRuntime {

	if runtimeConfig == nil {
		panic("LedgerRuntime is not initialized")
	}
	return runtimeConfig
}
