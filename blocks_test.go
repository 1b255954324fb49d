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

func mustParse(t *testing.T, src string, profile Profile) *Document {
	t.Helper()
	doc, err := Parse([]byte(src), profile)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return doc
}

func TestParseCodeBlock(t *testing.T) {
	doc := mustParse(t, "```go\nfmt.Println(1)\n```\n", Litedoc)
	cb, ok := doc.Blocks[0].(*CodeBlock)
	if !ok {
		t.Fatalf("Blocks[0] is %T, want *CodeBlock", doc.Blocks[0])
	}
	if cb.Lang != "go" {
		t.Errorf("cb.Lang = %q, want %q", cb.Lang, "go")
	}
	if cb.Content != "fmt.Println(1)\n" {
		t.Errorf("cb.Content = %q, want %q", cb.Content, "fmt.Println(1)\n")
	}
}

func TestParseCodeBlockMissingLanguageLitedocProfile(t *testing.T) {
	result := ParseWithRecovery([]byte("```\nx\n```\n"), Litedoc)
	if result.OK {
		t.Fatal("result.OK = true, want false (missing language)")
	}
	found := false
	for _, d := range result.Diagnostics {
		if d.Kind == MissingLanguage {
			found = true
		}
	}
	if !found {
		t.Error("expected a MissingLanguage diagnostic")
	}
}

func TestParseQuote(t *testing.T) {
	doc := mustParse(t, "::quote\nInside.\n::\n", Litedoc)
	q, ok := doc.Blocks[0].(*Quote)
	if !ok {
		t.Fatalf("Blocks[0] is %T, want *Quote", doc.Blocks[0])
	}
	if len(q.Blocks) != 1 {
		t.Fatalf("len(q.Blocks) = %d, want 1", len(q.Blocks))
	}
	para := q.Blocks[0].(*Paragraph)
	if got := textOf(t, para.Content[0]); got != "Inside." {
		t.Errorf("quote content = %q, want %q", got, "Inside.")
	}
}

func TestParseCallout(t *testing.T) {
	doc := mustParse(t, "::callout type=warning title=\"Careful\"\nBody.\n::\n", Litedoc)
	c, ok := doc.Blocks[0].(*Callout)
	if !ok {
		t.Fatalf("Blocks[0] is %T, want *Callout", doc.Blocks[0])
	}
	if c.Kind != "warning" {
		t.Errorf("c.Kind = %q, want %q", c.Kind, "warning")
	}
	if c.Title != "Careful" {
		t.Errorf("c.Title = %q, want %q", c.Title, "Careful")
	}
}

func TestParseFigure(t *testing.T) {
	doc := mustParse(t, "::figure src=\"a.png\" alt=\"A\" caption=\"Cap\"\n::\n", Litedoc)
	f, ok := doc.Blocks[0].(*Figure)
	if !ok {
		t.Fatalf("Blocks[0] is %T, want *Figure", doc.Blocks[0])
	}
	if f.Src != "a.png" || f.Alt != "A" || f.Caption != "Cap" {
		t.Errorf("figure = %+v, want src=a.png alt=A caption=Cap", f)
	}
}

func TestParseMathBlock(t *testing.T) {
	doc := mustParse(t, "::math display\nx^2\n::\n", Litedoc)
	m, ok := doc.Blocks[0].(*MathBlock)
	if !ok {
		t.Fatalf("Blocks[0] is %T, want *MathBlock", doc.Blocks[0])
	}
	if !m.Display {
		t.Error("m.Display = false, want true")
	}
	if m.Content != "x^2\n" {
		t.Errorf("m.Content = %q, want %q", m.Content, "x^2\n")
	}
}

func TestParseTable(t *testing.T) {
	src := "::table\n| A | B |\n| - | - |\n| 1 | 2 |\n::\n"
	doc := mustParse(t, src, Litedoc)
	tbl, ok := doc.Blocks[0].(*Table)
	if !ok {
		t.Fatalf("Blocks[0] is %T, want *Table", doc.Blocks[0])
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("len(tbl.Rows) = %d, want 2", len(tbl.Rows))
	}
	if !tbl.Rows[0].Header {
		t.Error("Rows[0].Header = false, want true")
	}
	if len(tbl.Rows[0].Cells) != 2 {
		t.Fatalf("len(Rows[0].Cells) = %d, want 2", len(tbl.Rows[0].Cells))
	}
	if got := textOf(t, tbl.Rows[0].Cells[0].Content[0]); got != "A" {
		t.Errorf("header cell 0 = %q, want %q", got, "A")
	}
	if tbl.Rows[1].Header {
		t.Error("Rows[1].Header = true, want false")
	}
}

func TestParseFootnotesBlock(t *testing.T) {
	src := "::footnotes\n[^a]: Note text.\n::\n"
	doc := mustParse(t, src, Litedoc)
	fn, ok := doc.Blocks[0].(*Footnotes)
	if !ok {
		t.Fatalf("Blocks[0] is %T, want *Footnotes", doc.Blocks[0])
	}
	if len(fn.Defs) != 1 {
		t.Fatalf("len(fn.Defs) = %d, want 1", len(fn.Defs))
	}
	if fn.Defs[0].Label != "a" {
		t.Errorf("Defs[0].Label = %q, want %q", fn.Defs[0].Label, "a")
	}
}

func TestParseThematicBreak(t *testing.T) {
	doc := mustParse(t, "text\n\n---\n\nmore\n", Litedoc)
	if len(doc.Blocks) != 3 {
		t.Fatalf("len(doc.Blocks) = %d, want 3", len(doc.Blocks))
	}
	if _, ok := doc.Blocks[1].(*ThematicBreak); !ok {
		t.Fatalf("Blocks[1] is %T, want *ThematicBreak", doc.Blocks[1])
	}
}
