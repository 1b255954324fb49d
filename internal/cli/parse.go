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
	"os"

	"github.com/spf13/cobra"

	"go.litedoc.dev/litedoc"
	"go.litedoc.dev/litedoc/encoding"
	"go.litedoc.dev/litedoc/internal/logging"
)

var parseProfileFlag string

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a document and print its canonical JSON encoding",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().StringVar(&parseProfileFlag, "profile", "", "profile to parse with (litedoc, md, md-strict); inferred from the file extension if unset")
	return cmd
}

func readSourceAndProfile(path, profileFlag string) ([]byte, litedoc.Profile, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("litedoc: %w", err)
	}
	profile := litedoc.ProfileFromFilename(path)
	if profileFlag != "" {
		p, ok := litedoc.ParseProfile(profileFlag)
		if !ok {
			return nil, 0, fmt.Errorf("litedoc: unrecognized profile %q", profileFlag)
		}
		profile = p
	}
	return source, profile, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	source, profile, err := readSourceAndProfile(args[0], parseProfileFlag)
	if err != nil {
		return err
	}
	result := litedoc.ParseWithRecovery(source, profile)
	for _, d := range result.Diagnostics {
		logging.Default().Warn(d.Message, "kind", d.Kind.String(), "span", d.Span.String())
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoding.EncodeDocument(result.Document)))
	return nil
}
