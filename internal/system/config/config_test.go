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
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deployment = `
addr:
  host: "0.0.0.0"
  port: 9443
auth:
  jwt_secret: "${LEDGER_TEST_SECRET}"
  token_ttl: 30m
ledger:
  owner: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
  reward_amount: 25
  mint_window: 720h
journal:
  driver: leveldb
leveldb:
  path: /tmp/journal
`

func TestLoadConfig_ExpandsEnvAndAppliesDefaults(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "repository", "conf"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "repository", "conf", "deployment.yaml"),
		[]byte(deployment), 0o600))
	t.Setenv("LEDGER_TEST_SECRET", "s3cret")

	cfg, err := LoadConfig(home, "repository/conf/deployment.yaml")
	require.NoError(t, err)

	assert.Equal(t, 9443, cfg.Addr.Port)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, uint64(25), cfg.Ledger.RewardAmount)
	assert.Equal(t, uint64(200), cfg.Ledger.MonthlyMintLimit)
	assert.Equal(t, 720*time.Hour, cfg.Ledger.MintWindow)
	assert.Equal(t, "CERCLE", cfg.Ledger.TokenSymbol)
	assert.Equal(t, JournalLevelDB, cfg.Journal.Driver)
	assert.Equal(t, "INFO", cfg.Log.LogLevel)
	assert.Equal(t, 1000, cfg.Worker.QueueSize)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir(), "repository/conf/deployment.yaml")
	assert.Error(t, err)
}
