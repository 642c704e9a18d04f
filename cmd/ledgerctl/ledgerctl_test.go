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

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/research-consent-ledger/internal/system/authn"
	"github.com/wso2/research-consent-ledger/internal/system/config"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestStudyID(t *testing.T) {
	out, err := run(t, "study-id", "cardio-2026")
	require.NoError(t, err)
	assert.Regexp(t, `^0x[0-9a-f]{64}\n$`, out)
}

func TestToken(t *testing.T) {
	_ = log.Init("ERROR")
	wallet := "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"

	out, err := run(t, "token", wallet, "--secret", "s3cret")
	require.NoError(t, err)

	caller, err := authn.ValidateToken(strings.TrimSpace(out), config.AuthConfig{
		JWTSecret: "s3cret",
		Issuer:    "research-consent-ledger",
		Audience:  "research-consent-ledger",
		TokenTTL:  time.Hour,
	})
	require.NoError(t, err)
	assert.Equal(t, wallet, caller.Hex())

	_, err = run(t, "token", "not-a-wallet", "--secret", "s3cret")
	assert.Error(t, err)
}

func TestConsentsAndHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/consents"):
			_, _ = w.Write([]byte(`[{"consent_id":3,"owner_id":1,"dataset_hash":"0x00000000000000000000000000000000000000000000000000000000000000ab","valid_until":"2026-01-01T00:00:00Z"}]`))
		case r.URL.Path == "/health/readiness":
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"not ready","journal":"connection refused","ledger":{"identities":2}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	out, err := run(t, "--server", server.URL, "consents", "cardio-2026")
	require.NoError(t, err)
	assert.Contains(t, out, "3\towner=1")

	out, err = run(t, "--server", server.URL, "health")
	assert.Error(t, err)
	assert.Contains(t, out, "Status: not ready")
	assert.Contains(t, out, "Identities: 2")
}
