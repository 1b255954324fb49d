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

	"go.litedoc.dev/litedoc"
)

func writeInline(w *bytes.Buffer, n litedoc.Inline) {
	switch n := n.(type) {
	case *litedoc.Text:
		w.WriteString(`{"type":"text","content":`)
		writeString(w, n.Content)
		closeWithSpan(w, n.Span())
	case *litedoc.Emphasis:
		w.WriteString(`{"type":"emphasis","content":`)
		writeInlines(w, n.Content)
		closeWithSpan(w, n.Span())
	case *litedoc.Strong:
		w.WriteString(`{"type":"strong","content":`)
		writeInlines(w, n.Content)
		closeWithSpan(w, n.Span())
	case *litedoc.Strikethrough:
		w.WriteString(`{"type":"strikethrough","content":`)
		writeInlines(w, n.Content)
		closeWithSpan(w, n.Span())
	case *litedoc.CodeSpan:
		w.WriteString(`{"type":"code_span","content":`)
		writeString(w, n.Content)
		closeWithSpan(w, n.Span())
	case *litedoc.Link:
		w.WriteString(`{"type":"link","label":`)
		writeInlines(w, n.Label)
		w.WriteString(`,"url":`)
		writeString(w, n.URL)
		w.WriteString(`,"title":`)
		writeString(w, n.Title)
		closeWithSpan(w, n.Span())
	case *litedoc.AutoLink:
		w.WriteString(`{"type":"autolink","url":`)
		writeString(w, n.URL)
		closeWithSpan(w, n.Span())
	case *litedoc.FootnoteRef:
		w.WriteString(`{"type":"footnote_ref","label":`)
		writeString(w, n.Label)
		closeWithSpan(w, n.Span())
	case *litedoc.HardBreak:
		w.WriteString(`{"type":"hard_break"`)
		closeWithSpan(w, n.Span())
	case *litedoc.SoftBreak:
		w.WriteString(`{"type":"soft_break"`)
		closeWithSpan(w, n.Span())
	}
}
