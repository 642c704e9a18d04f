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

import "time"

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
}

type AuthConfig struct {
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	JWTSecret          string        `yaml:"jwt_secret"`
	Issuer             string        `yaml:"issuer"`
	Audience           string        `yaml:"audience"`
	TokenTTL           time.Duration `yaml:"token_ttl"`
}

type LedgerConfig struct {
	Owner             string        `yaml:"owner"`
	MonthlyMintLimit  uint64        `yaml:"monthly_mint_limit"`
	RewardAmount      uint64        `yaml:"reward_amount"`
	MintWindow        time.Duration `yaml:"mint_window"`
	TokenName         string        `yaml:"token_name"`
	TokenSymbol       string        `yaml:"token_symbol"`
	CertificateName   string        `yaml:"certificate_name"`
	CertificateSymbol string        `yaml:"certificate_symbol"`
}

type JournalConfig struct {
	Driver string `yaml:"driver"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type MongoDBConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type LevelDBConfig struct {
	Path string `yaml:"path"`
}

type KafkaConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Brokers  []string `yaml:"brokers"`
	Topic    string   `yaml:"topic"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
}

type WorkerConfig struct {
	// QueueSize is the pending batch count above which delivery lag is logged.
	QueueSize int `yaml:"queue_size"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	Auth       AuthConfig       `yaml:"auth"`
	Ledger     LedgerConfig     `yaml:"ledger"`
	Journal    JournalConfig    `yaml:"journal"`
	DataSource DataSourceConfig `yaml:"datasource"`
	MongoDB    MongoDBConfig    `yaml:"mongodb"`
	LevelDB    LevelDBConfig    `yaml:"leveldb"`
	Kafka      KafkaConfig      `yaml:"kafka"`
	Worker     WorkerConfig     `yaml:"worker"`
}
