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

	"github.com/spf13/cobra"

	"go.litedoc.dev/litedoc"
)

var validateProfileFlag string

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Report every diagnostic recorded while parsing a document",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	cmd.Flags().StringVar(&validateProfileFlag, "profile", "", "profile to parse with (litedoc, md, md-strict); inferred from the file extension if unset")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	source, profile, err := readSourceAndProfile(args[0], validateProfileFlag)
	if err != nil {
		return err
	}
	result := litedoc.ParseWithRecovery(source, profile)
	out := cmd.OutOrStdout()
	for _, d := range result.Diagnostics {
		fmt.Fprintf(out, "%s %s: %s\n", d.Span, d.Kind, d.Message)
	}
	if !result.OK {
		return fmt.Errorf("litedoc: %d diagnostic(s)", len(result.Diagnostics))
	}
	fmt.Fprintln(out, "ok")
	return nil
}
