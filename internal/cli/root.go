// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the litedoc command-line front end: a parse
// subcommand that emits canonical JSON, a validate subcommand that reports
// diagnostics, and a stats subcommand that summarizes a document's shape.
// It is an external collaborator of the litedoc package : it
// only calls litedoc's public contract.
package cli

import (
	"github.com/spf13/cobra"

	"go.litedoc.dev/litedoc/internal/logging"
)

var debugFlag bool

// NewRootCommand builds the litedoc command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "litedoc",
		Short: "Parse and inspect LiteDoc documents",
	}
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debugFlag {
			logging.SetLevel("debug")
		}
	}

	root.AddCommand(newParseCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newStatsCommand())
	return root
}
