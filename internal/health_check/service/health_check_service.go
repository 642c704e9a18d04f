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

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/wso2/research-consent-ledger/internal/ledger"
	"github.com/wso2/research-consent-ledger/internal/system/cache"
	"github.com/wso2/research-consent-ledger/internal/system/constants"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

// HostSampleTTL is how long a host resource reading is reused.
const HostSampleTTL = 5 * time.Second

// Pinger is a dependency whose reachability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HostSample is a reading of host resource usage.
type HostSample struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
}

// Report is the readiness view of the service.
type Report struct {
	Status  string       `json:"status"`
	Journal string       `json:"journal"`
	Host    *HostSample  `json:"host,omitempty"`
	Ledger  ledger.Stats `json:"ledger"`
}

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) (Report, error)
}

// HealthCheckService is the default implementation.
type HealthCheckService struct {
	journal Pinger
	ledger  ledger.Service
	host    *cache.Cache[HostSample]
	sample  func(ctx context.Context) (HostSample, error)
}

// NewHealthCheckService returns a service probing journal and reporting ledger state.
func NewHealthCheckService(journal Pinger, ledgerService ledger.Service) *HealthCheckService {
	return &HealthCheckService{
		journal: journal,
		ledger:  ledgerService,
		host:    cache.NewCache[HostSample](HostSampleTTL, nil),
		sample:  sampleHost,
	}
}

func (h *HealthCheckService) CheckReadiness(ctx context.Context) (Report, error) {

	logger := log.GetLogger()
	report := Report{Status: "ready", Journal: "ok", Ledger: h.ledger.Stats()}

	host, err := h.host.GetOrLoad(constants.HostCPUCacheKey, func() (HostSample, error) {
		return h.sample(ctx)
	})
	if err != nil {
		logger.Warn("Unable to sample host resources.", log.Error(err))
	} else {
		report.Host = &host
	}

	if err := h.journal.Ping(ctx); err != nil {
		report.Status = "not ready"
		report.Journal = err.Error()
		return report, fmt.Errorf("event journal is unreachable: %w", err)
	}
	return report, nil
}

func sampleHost(ctx context.Context) (HostSample, error) {

	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return HostSample{}, err
	}
	sample := HostSample{}
	if len(percents) > 0 {
		sample.CPUPercent = percents[0]
	}
	memory, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return HostSample{}, err
	}
	sample.MemoryPercent = memory.UsedPercent
	return sample, nil
}
