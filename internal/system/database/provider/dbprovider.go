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

package provider

import (
	"database/sql"
	"fmt"

	"github.com/wso2/research-consent-ledger/internal/system/config"
	"github.com/wso2/research-consent-ledger/internal/system/database/client"
)

// DBConfig represents the local database configuration.
type DBConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	dataSource config.DataSourceConfig
}

// NewDBProvider creates a provider for the configured data source.
func NewDBProvider() DBProviderInterface {

	return &DBProvider{dataSource: config.GetRuntime().Config.DataSource}
}

// NewDBProviderFor creates a provider for an explicit data source.
func NewDBProviderFor(dataSource config.DataSourceConfig) DBProviderInterface {

	return &DBProvider{dataSource: dataSource}
}

// GetDBClient opens and pings a connection to the data source.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {

	dbConfig := getDBConfig(d.dataSource)

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Test the database connection.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	return client.NewDBClient(db), nil
}

// getDBConfig returns the database configuration based on the provided data source.
func getDBConfig(dataSource config.DataSourceConfig) DBConfig {

	var dbConfig DBConfig

	sslMode := dataSource.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dbConfig.driverName = "postgres"
	dbConfig.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
		dataSource.Name, sslMode)

	return dbConfig
}
