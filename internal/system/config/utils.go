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

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	JournalMemory   = "memory"
	JournalPostgres = "postgres"
	JournalLevelDB  = "leveldb"
	JournalMongoDB  = "mongodb"
)

// LoadConfig reads filePath under ledgerHome, expands environment variables and applies defaults.
func LoadConfig(ledgerHome, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(ledgerHome, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset values.
func (c *Config) ApplyDefaults() {

	if c.Addr.Port == 0 {
		c.Addr.Port = 8900
	}
	if c.Log.LogLevel == "" {
		c.Log.LogLevel = "INFO"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Auth.Issuer == "" {
		c.Auth.Issuer = "research-consent-ledger"
	}
	if c.Auth.Audience == "" {
		c.Auth.Audience = "research-consent-ledger"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = time.Hour
	}
	if c.Ledger.MonthlyMintLimit == 0 {
		c.Ledger.MonthlyMintLimit = 200
	}
	if c.Ledger.RewardAmount == 0 {
		c.Ledger.RewardAmount = 50
	}
	if c.Ledger.MintWindow == 0 {
		c.Ledger.MintWindow = 2592000 * time.Second
	}
	if c.Ledger.TokenName == "" {
		c.Ledger.TokenName = "CercleToken"
	}
	if c.Ledger.TokenSymbol == "" {
		c.Ledger.TokenSymbol = "CERCLE"
	}
	if c.Ledger.CertificateName == "" {
		c.Ledger.CertificateName = "CercleConsent"
	}
	if c.Ledger.CertificateSymbol == "" {
		c.Ledger.CertificateSymbol = "CCONSENT"
	}
	if c.Journal.Driver == "" {
		c.Journal.Driver = JournalMemory
	}
	if c.MongoDB.Collection == "" {
		c.MongoDB.Collection = "ledger_events"
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "ledger-events"
	}
	if c.Worker.QueueSize == 0 {
		c.Worker.QueueSize = 1000
	}
}

// OverrideRuntime replaces the runtime configuration. Used by tests.
func OverrideRuntime(conf Config) {
	runtimeConfig = &LedgerRuntime{
		Config: conf,
	}
}
