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
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wso2/research-consent-ledger/internal/system/clock"
)

func benchWallet(i int) common.Address {
	return common.BigToAddress(big.NewInt(int64(i) + 1_000))
}

// Benchmark_GrantConsent benchmarks granting one consent per registered patient
func Benchmark_GrantConsent(b *testing.B) {
	l := New(DefaultSettings(owner), clock.NewManual(t0), nil)
	if _, err := l.AuthorizeStudy(owner, study1, "Study1"); err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		if _, err := l.Register(benchWallet(i)); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.GrantConsent(benchWallet(i), dataset, study1, 24*time.Hour); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark_GetConsentsByStudy benchmarks the study scan over a thousand consents
func Benchmark_GetConsentsByStudy(b *testing.B) {
	l := New(DefaultSettings(owner), clock.NewManual(t0), nil)
	if _, err := l.AuthorizeStudy(owner, study1, "Study1"); err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1_000; i++ {
		wallet := benchWallet(i)
		if _, err := l.Register(wallet); err != nil {
			b.Fatal(err)
		}
		if _, err := l.GrantConsent(wallet, dataset, study1, 24*time.Hour); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.GetConsentsByStudy(study1); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark_RewardForDownload benchmarks rewarded downloads under the monthly cap
func Benchmark_RewardForDownload(b *testing.B) {
	clk := clock.NewManual(t0)
	l := New(DefaultSettings(owner), clk, nil)
	if err := l.SetAuthorizedPatient(owner, patient1, true); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Four rewards fill a window.
		if i%4 == 0 {
			clk.Advance(month)
		}
		if _, err := l.RewardForDownload(patient1, patient1, dataset); err != nil {
			b.Fatal(err)
		}
	}
}
