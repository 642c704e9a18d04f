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

package authn

import (
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wso2/research-consent-ledger/internal/system/config"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

func TestMain(m *testing.M) {
	log.Init("ERROR")
	os.Exit(m.Run())
}

var (
	wallet  = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	authCfg = config.AuthConfig{
		JWTSecret: "test-secret",
		Issuer:    "research-consent-ledger",
		Audience:  "research-consent-ledger",
		TokenTTL:  time.Hour,
	}
)

func TestIssueAndValidate(t *testing.T) {
	token, err := IssueToken(wallet, authCfg, time.Now())
	require.NoError(t, err)

	caller, err := ValidateToken(token, authCfg)
	require.NoError(t, err)
	assert.Equal(t, wallet, caller)
}

func TestValidateToken_Rejections(t *testing.T) {
	expired, err := IssueToken(wallet, authCfg, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	otherAudience := authCfg
	otherAudience.Audience = "someone-else"
	wrongAudience, err := IssueToken(wallet, otherAudience, time.Now())
	require.NoError(t, err)

	otherSecret := authCfg
	otherSecret.JWTSecret = "another-secret"
	wrongSecret, err := IssueToken(wallet, otherSecret, time.Now())
	require.NoError(t, err)

	noWallet, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    authCfg.Issuer,
			Audience:  jwt.ClaimStrings{authCfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(authCfg.JWTSecret))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Wallet: wallet.Hex()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":        expired,
		"wrong audience": wrongAudience,
		"wrong secret":   wrongSecret,
		"no wallet":      noWallet,
		"none algorithm": noneAlg,
		"garbage":        "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateToken(token, authCfg)
			assert.True(t, errors2.HasCode(err, errors2.UN_AUTHENTICATED))
		})
	}
}

func TestValidateToken_NoSecretConfigured(t *testing.T) {
	token, err := IssueToken(wallet, authCfg, time.Now())
	require.NoError(t, err)

	_, err = ValidateToken(token, config.AuthConfig{})
	assert.True(t, errors2.HasCode(err, errors2.UN_AUTHENTICATED))
}
