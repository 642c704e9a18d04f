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
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/research-consent-ledger/internal/ledger"
	"github.com/wso2/research-consent-ledger/internal/system/clock"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

func TestMain(m *testing.M) {
	log.Init("ERROR")
	os.Exit(m.Run())
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestService(pingErr error) (*HealthCheckService, *int) {
	owner := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	l := ledger.New(ledger.DefaultSettings(owner), clock.NewManual(time.Unix(1_700_000_000, 0)), nil)
	svc := NewHealthCheckService(stubPinger{err: pingErr}, l)
	samples := 0
	svc.sample = func(context.Context) (HostSample, error) {
		samples++
		return HostSample{CPUPercent: 12, MemoryPercent: 40}, nil
	}
	return svc, &samples
}

func TestCheckReadiness_Ready(t *testing.T) {
	svc, samples := newTestService(nil)

	report, err := svc.CheckReadiness(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ready", report.Status)
	require.NotNil(t, report.Host)
	assert.Equal(t, 12.0, report.Host.CPUPercent)

	_, err = svc.CheckReadiness(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, *samples, "host reading should be cached")
}

func TestCheckReadiness_JournalDown(t *testing.T) {
	svc, _ := newTestService(errors.New("connection refused"))

	report, err := svc.CheckReadiness(context.Background())
	require.Error(t, err)
	assert.Equal(t, "not ready", report.Status)
	assert.Contains(t, report.Journal, "connection refused")
}

func TestCheckReadiness_HostSampleFailureIsNotFatal(t *testing.T) {
	svc, _ := newTestService(nil)
	svc.sample = func(context.Context) (HostSample, error) {
		return HostSample{}, errors.New("unsupported")
	}

	report, err := svc.CheckReadiness(context.Background())
	require.NoError(t, err)
	assert.Nil(t, report.Host)
}
