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
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wso2/research-consent-ledger/internal/system/config"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

// Claims are the access token claims. Wallet is the calling principal.
type Claims struct {
	Wallet string `json:"wallet"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 access token for wallet.
func IssueToken(wallet common.Address, cfg config.AuthConfig, now time.Time) (string, error) {

	if cfg.JWTSecret == "" {
		return "", errors2.NewServerError(errors2.PARSING_ERROR, jwt.ErrInvalidKey)
	}
	claims := Claims{
		Wallet: wallet.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   wallet.Hex(),
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
}

// ValidateToken verifies signature, expiry, issuer and audience and returns the wallet claim.
func ValidateToken(token string, cfg config.AuthConfig) (common.Address, error) {

	logger := log.GetLogger()
	if cfg.JWTSecret == "" {
		logger.Debug("No JWT secret configured; rejecting token.")
		return common.Address{}, unauthenticatedError()
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		logger.Debug("Access token rejected.", log.Error(err))
		return common.Address{}, unauthenticatedError()
	}

	if !common.IsHexAddress(claims.Wallet) {
		logger.Debug("Access token does not carry a valid wallet claim.", log.String("wallet", claims.Wallet))
		return common.Address{}, unauthenticatedError()
	}
	return common.HexToAddress(claims.Wallet), nil
}

func unauthenticatedError() error {
	return errors2.NewClientError(errors2.UN_AUTHENTICATED, http.StatusUnauthorized)
}
