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
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	studyModel "github.com/wso2/research-consent-ledger/internal/study/model"
	"github.com/wso2/research-consent-ledger/internal/system/authn"
	"github.com/wso2/research-consent-ledger/internal/system/config"
)

func newTokenCmd() *cobra.Command {

	authConfig := config.AuthConfig{}
	cmd := &cobra.Command{
		Use:   "token <wallet>",
		Short: "Issue a development access token for a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !common.IsHexAddress(args[0]) {
				return fmt.Errorf("%q is not a wallet address", args[0])
			}
			if authConfig.JWTSecret == "" {
				authConfig.JWTSecret = os.Getenv("LEDGER_JWT_SECRET")
			}
			if authConfig.JWTSecret == "" {
				return fmt.Errorf("a signing secret is required (--secret or LEDGER_JWT_SECRET)")
			}
			token, err := authn.IssueToken(common.HexToAddress(args[0]), authConfig, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&authConfig.JWTSecret, "secret", "", "HS256 signing secret")
	cmd.Flags().StringVar(&authConfig.Issuer, "issuer", "research-consent-ledger", "Token issuer")
	cmd.Flags().StringVar(&authConfig.Audience, "audience", "research-consent-ledger", "Token audience")
	cmd.Flags().DurationVar(&authConfig.TokenTTL, "ttl", time.Hour, "Token lifetime")
	return cmd
}

func newStudyIDCmd() *cobra.Command {

	return &cobra.Command{
		Use:   "study-id <name>",
		Short: "Print the study id derived from a study name",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), studyModel.StudyIDFromName(args[0]).Hex())
		},
	}
}
