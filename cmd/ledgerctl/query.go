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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	consentModel "github.com/wso2/research-consent-ledger/internal/consent/model"
	studyModel "github.com/wso2/research-consent-ledger/internal/study/model"
	"github.com/wso2/research-consent-ledger/internal/system/constants"
)

func getJSON(ctx context.Context, opts *options, path string, out interface{}) (int, error) {

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(opts.server, "/")+path, nil)
	if err != nil {
		return 0, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusServiceUnavailable {
		return resp.StatusCode, fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return resp.StatusCode, json.Unmarshal(body, out)
}

func newHealthCmd(opts *options) *cobra.Command {

	return &cobra.Command{
		Use:   "health",
		Short: "Query server readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			var report struct {
				Status  string `json:"status"`
				Journal string `json:"journal"`
				Host    *struct {
					CPUPercent    float64 `json:"cpu_percent"`
					MemoryPercent float64 `json:"memory_percent"`
				} `json:"host"`
				Ledger struct {
					Identities   int    `json:"identities"`
					Consents     int    `json:"consents"`
					LastSequence uint64 `json:"last_sequence"`
					Paused       bool   `json:"paused"`
				} `json:"ledger"`
			}
			status, err := getJSON(cmd.Context(), opts, "/health/readiness", &report)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status: %s\n", report.Status)
			fmt.Fprintf(out, "Journal: %s\n", report.Journal)
			if report.Host != nil {
				fmt.Fprintf(out, "CPU Load: %.2f%%\n", report.Host.CPUPercent)
				fmt.Fprintf(out, "Memory Usage: %.2f%%\n", report.Host.MemoryPercent)
			}
			fmt.Fprintf(out, "Identities: %d\n", report.Ledger.Identities)
			fmt.Fprintf(out, "Consents: %d\n", report.Ledger.Consents)
			fmt.Fprintf(out, "Last Sequence: %d\n", report.Ledger.LastSequence)
			fmt.Fprintf(out, "Paused: %v\n", report.Ledger.Paused)
			if status != http.StatusOK {
				return fmt.Errorf("server is not ready")
			}
			return nil
		},
	}
}

func newConsentsCmd(opts *options) *cobra.Command {

	return &cobra.Command{
		Use:   "consents <studyId|studyName>",
		Short: "List the currently valid consents of a study",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			studyID := args[0]
			if !strings.HasPrefix(studyID, "0x") {
				studyID = studyModel.StudyIDFromName(studyID).Hex()
			}
			var consents []consentModel.Consent
			if _, err := getJSON(cmd.Context(), opts,
				fmt.Sprintf("%s/studies/%s/consents", constants.ApiBasePath, studyID), &consents); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(consents) == 0 {
				fmt.Fprintln(out, "No valid consents.")
				return nil
			}
			for _, c := range consents {
				fmt.Fprintf(out, "%d\towner=%d\tdataset=%s\tvalid_until=%s\n",
					c.ConsentID, c.OwnerID, c.DatasetHash.Hex(), c.ValidUntil.Format("2006-01-02T15:04:05Z07:00"))
			}
			return nil
		},
	}
}
