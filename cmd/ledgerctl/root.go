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
	"os"
	"time"

	"github.com/spf13/cobra"
)

type options struct {
	server  string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {

	opts := &options{}
	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Research consent ledger CLI",
		Long:          "A command-line tool for operating and querying a research consent ledger server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	defaultServer := os.Getenv("LEDGER_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8900"
	}
	root.PersistentFlags().StringVar(&opts.server, "server", defaultServer, "Base URL of the ledger server")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "HTTP request timeout")

	root.AddCommand(newTokenCmd())
	root.AddCommand(newStudyIDCmd())
	root.AddCommand(newHealthCmd(opts))
	root.AddCommand(newConsentsCmd(opts))
	return root
}
