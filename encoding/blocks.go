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

package encoding

import (
	"bytes"
	"strconv"

	"go.litedoc.dev/litedoc"
)

func writeBlock(w *bytes.Buffer, b litedoc.Block) {
	switch b := b.(type) {
	case *litedoc.Heading:
		w.WriteString(`{"type":"heading","level":`)
		w.WriteString(strconv.Itoa(b.Level))
		w.WriteString(`,"content":`)
		writeInlines(w, b.Content)
		closeWithSpan(w, b.Span())
	case *litedoc.Paragraph:
		w.WriteString(`{"type":"paragraph","content":`)
		writeInlines(w, b.Content)
		closeWithSpan(w, b.Span())
	case *litedoc.List:
		w.WriteString(`{"type":"list","kind":`)
		writeString(w, listKindName(b.Kind))
		w.WriteString(`,"start":`)
		if b.Start != nil {
			w.WriteString(strconv.FormatUint(*b.Start, 10))
		} else {
			w.WriteString("null")
		}
		w.WriteString(`,"items":[`)
		for i, item := range b.Items {
			if i > 0 {
				w.WriteByte(',')
			}
			w.WriteString(`{"type":"list_item","blocks":`)
			writeBlocks(w, item.Blocks)
			closeWithSpan(w, item.Span())
		}
		w.WriteByte(']')
		closeWithSpan(w, b.Span())
	case *litedoc.CodeBlock:
		w.WriteString(`{"type":"code_block","lang":`)
		writeString(w, b.Lang)
		w.WriteString(`,"content":`)
		writeString(w, b.Content)
		closeWithSpan(w, b.Span())
	case *litedoc.Callout:
		w.WriteString(`{"type":"callout","kind":`)
		writeString(w, b.Kind)
		w.WriteString(`,"title":`)
		writeString(w, b.Title)
		w.WriteString(`,"blocks":`)
		writeBlocks(w, b.Blocks)
		closeWithSpan(w, b.Span())
	case *litedoc.Quote:
		w.WriteString(`{"type":"quote","blocks":`)
		writeBlocks(w, b.Blocks)
		closeWithSpan(w, b.Span())
	case *litedoc.Figure:
		w.WriteString(`{"type":"figure","src":`)
		writeString(w, b.Src)
		w.WriteString(`,"alt":`)
		writeString(w, b.Alt)
		w.WriteString(`,"caption":`)
		writeString(w, b.Caption)
		closeWithSpan(w, b.Span())
	case *litedoc.Table:
		w.WriteString(`{"type":"table","rows":[`)
		for i, row := range b.Rows {
			if i > 0 {
				w.WriteByte(',')
			}
			w.WriteString(`{"type":"table_row","cells":[`)
			for j, cell := range row.Cells {
				if j > 0 {
					w.WriteByte(',')
				}
				w.WriteString(`{"type":"table_cell","content":`)
				writeInlines(w, cell.Content)
				closeWithSpan(w, cell.Span())
			}
			w.WriteString(`],"header":`)
			writeBool(w, row.Header)
			closeWithSpan(w, row.Span())
		}
		w.WriteString(`]`)
		closeWithSpan(w, b.Span())
	case *litedoc.Footnotes:
		w.WriteString(`{"type":"footnotes","defs":[`)
		for i, def := range b.Defs {
			if i > 0 {
				w.WriteByte(',')
			}
			w.WriteString(`{"type":"footnote_def","label":`)
			writeString(w, def.Label)
			w.WriteString(`,"blocks":`)
			writeBlocks(w, def.Blocks)
			closeWithSpan(w, def.Span())
		}
		w.WriteString(`]`)
		closeWithSpan(w, b.Span())
	case *litedoc.MathBlock:
		w.WriteString(`{"type":"math_block","display":`)
		writeBool(w, b.Display)
		w.WriteString(`,"content":`)
		writeString(w, b.Content)
		closeWithSpan(w, b.Span())
	case *litedoc.ThematicBreak:
		w.WriteString(`{"type":"thematic_break"`)
		closeWithSpan(w, b.Span())
	case *litedoc.HtmlBlock:
		w.WriteString(`{"type":"html_block","content":`)
		writeString(w, b.Content)
		closeWithSpan(w, b.Span())
	case *litedoc.RawBlock:
		w.WriteString(`{"type":"raw_block","content":`)
		writeString(w, b.Content)
		closeWithSpan(w, b.Span())
	}
}

func listKindName(k litedoc.ListKind) string {
	if k == litedoc.Ordered {
		return "ordered"
	}
	return "unordered"
}

func writeBool(w *bytes.Buffer, b bool) {
	if b {
		w.WriteString("true")
	} else {
		w.WriteString("false")
	}
}

func closeWithSpan(w *bytes.Buffer, s litedoc.Span) {
	w.WriteString(`,"span":`)
	writeSpan(w, s)
	w.WriteByte('}')
}
