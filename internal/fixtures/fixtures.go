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

// Package fixtures embeds small LiteDoc example documents used by this
// module's own tests, the way zombiezen.com/go/commonmark/internal/spec
// embeds CommonMark's spec test data.
package fixtures

import "embed"

//go:embed testdata/*.litedoc
var files embed.FS

// Load returns the contents of the named fixture (e.g. "basic.litedoc").
func Load(name string) ([]byte, error) {
	return files.ReadFile("testdata/" + name)
}

// Names returns the base names of every embedded fixture.
func Names() ([]string, error) {
	entries, err := files.ReadDir("testdata")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
