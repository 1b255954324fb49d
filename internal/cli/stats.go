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

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"go.litedoc.dev/litedoc"
)

var statsProfileFlag string

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize the node kinds present in a document",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
	cmd.Flags().StringVar(&statsProfileFlag, "profile", "", "profile to parse with (litedoc, md, md-strict); inferred from the file extension if unset")
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	source, profile, err := readSourceAndProfile(args[0], statsProfileFlag)
	if err != nil {
		return err
	}
	result := litedoc.ParseWithRecovery(source, profile)

	counts := map[string]int{}
	litedoc.Walk(result.Document, litedoc.WalkOptions{
		Pre: func(c *litedoc.Cursor) bool {
			counts[fmt.Sprintf("%T", c.Node())]++
			return true
		},
	})

	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	out := cmd.OutOrStdout()
	for _, k := range kinds {
		fmt.Fprintf(out, "%s\t%d\n", k, counts[k])
	}
	fmt.Fprintf(out, "diagnostics\t%d\n", len(result.Diagnostics))
	return nil
}
