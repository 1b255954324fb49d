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

import (
	"testing"

	"go.litedoc.dev/litedoc/internal/htmltest"
)

func TestParseHTMLBlockIsWellFormed(t *testing.T) {
	src := "@modules html\n\n<div class=\"note\">\n<p>hi</p>\n</div>\n"
	doc := mustParse(t, src, Litedoc)

	block, ok := doc.Blocks[0].(*HtmlBlock)
	if !ok {
		t.Fatalf("Blocks[0] is %T, want *HtmlBlock", doc.Blocks[0])
	}
	if !htmltest.WellFormed(block.Content) {
		t.Errorf("HtmlBlock content is not well-formed HTML: %q", block.Content)
	}
	tags := htmltest.TagSequence(block.Content)
	want := []string{"div", "p", "p", "div"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestIsKnownHTMLTag(t *testing.T) {
	if !isKnownHTMLTag("div") {
		t.Error("isKnownHTMLTag(div) = false, want true")
	}
	if !isKnownHTMLTag("DIV") {
		t.Error("isKnownHTMLTag(DIV) = false, want true")
	}
	if isKnownHTMLTag("frobnicate") {
		t.Error("isKnownHTMLTag(frobnicate) = true, want false")
	}
}
