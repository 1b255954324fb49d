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

package litedoc

import "testing"

func TestWalkVisitsEveryNode(t *testing.T) {
	doc := mustParse(t, "# H\n\n**bold *em* text**\n", Litedoc)

	var kinds []string
	Walk(doc, WalkOptions{
		Pre: func(c *Cursor) bool {
			switch c.Node().(type) {
			case *Document:
				kinds = append(kinds, "document")
			case *Heading:
				kinds = append(kinds, "heading")
			case *Paragraph:
				kinds = append(kinds, "paragraph")
			case *Strong:
				kinds = append(kinds, "strong")
			case *Emphasis:
				kinds = append(kinds, "emphasis")
			case *Text:
				kinds = append(kinds, "text")
			}
			return true
		},
	})

	want := []string{"document", "heading", "text", "paragraph", "strong", "text", "emphasis", "text", "text"}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %q, want %q", i, kinds[i], want[i])
		}
	}
}

func TestWalkSkipsChildrenWhenPreReturnsFalse(t *testing.T) {
	doc := mustParse(t, "# H\n\nbody\n", Litedoc)
	var visited int
	Walk(doc, WalkOptions{
		Pre: func(c *Cursor) bool {
			visited++
			if _, ok := c.Node().(*Heading); ok {
				return false
			}
			return true
		},
	})
	// document, heading (children skipped), paragraph, text(body) = 4
	if visited != 4 {
		t.Errorf("visited = %d, want 4", visited)
	}
}
