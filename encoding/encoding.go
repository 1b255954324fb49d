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

// Package encoding serializes a litedoc AST to the canonical JSON form: a
// stable field order per node type ("type" first, then semantic fields,
// then "span"). It is an external collaborator of the litedoc package: it
// only calls exported accessors and never reaches into parser internals.
package encoding

import (
	"bytes"
	"strconv"

	"go.litedoc.dev/litedoc"
)

// EncodeDocument returns the canonical JSON encoding of doc.
func EncodeDocument(doc *litedoc.Document) []byte {
	var buf bytes.Buffer
	writeDocument(&buf, doc)
	return buf.Bytes()
}

func writeDocument(w *bytes.Buffer, doc *litedoc.Document) {
	w.WriteString(`{"type":"document","profile":`)
	writeString(w, doc.Profile.String())
	w.WriteString(`,"modules":`)
	writeModuleList(w, doc.Modules)
	w.WriteString(`,"metadata":`)
	if doc.Metadata == nil {
		w.WriteString("null")
	} else {
		writeMetadata(w, doc.Metadata)
	}
	w.WriteString(`,"blocks":[`)
	for i, b := range doc.Blocks {
		if i > 0 {
			w.WriteByte(',')
		}
		writeBlock(w, b)
	}
	w.WriteString(`],"span":`)
	writeSpan(w, doc.Span())
	w.WriteByte('}')
}

func writeModuleList(w *bytes.Buffer, m litedoc.Module) {
	names := []string{"tables", "footnotes", "math", "tasks", "strikethrough", "autolink", "html"}
	bits := []litedoc.Module{
		litedoc.ModuleTables, litedoc.ModuleFootnotes, litedoc.ModuleMath,
		litedoc.ModuleTasks, litedoc.ModuleStrikethrough, litedoc.ModuleAutolink,
		litedoc.ModuleHTML,
	}
	w.WriteByte('[')
	first := true
	for i, bit := range bits {
		if m.Has(bit) {
			if !first {
				w.WriteByte(',')
			}
			writeString(w, names[i])
			first = false
		}
	}
	w.WriteByte(']')
}

func writeMetadata(w *bytes.Buffer, m *litedoc.Metadata) {
	w.WriteString(`{"type":"metadata","attrs":{`)
	seen := map[string]bool{}
	first := true
	for i := len(m.Attrs.Pairs) - 1; i >= 0; i-- {
		pair := m.Attrs.Pairs[i]
		if seen[pair.Key] {
			continue
		}
		seen[pair.Key] = true
		if !first {
			w.WriteByte(',')
		}
		writeString(w, pair.Key)
		w.WriteByte(':')
		writeAttrValue(w, pair.Value)
		first = false
	}
	w.WriteString(`},"span":`)
	writeSpan(w, m.Span())
	w.WriteByte('}')
}

func writeAttrValue(w *bytes.Buffer, v litedoc.AttrValue) {
	switch v.Kind() {
	case litedoc.AttrString:
		writeString(w, v.String())
	case litedoc.AttrBool:
		if v.Bool() {
			w.WriteString("true")
		} else {
			w.WriteString("false")
		}
	case litedoc.AttrInt:
		w.WriteString(strconv.FormatInt(v.Int(), 10))
	case litedoc.AttrFloat:
		w.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case litedoc.AttrList:
		w.WriteByte('[')
		for i, item := range v.List() {
			if i > 0 {
				w.WriteByte(',')
			}
			writeAttrValue(w, item)
		}
		w.WriteByte(']')
	}
}

func writeSpan(w *bytes.Buffer, s litedoc.Span) {
	w.WriteByte('[')
	w.WriteString(strconv.Itoa(s.Start))
	w.WriteByte(',')
	w.WriteString(strconv.Itoa(s.End))
	w.WriteByte(']')
}

func writeInlines(w *bytes.Buffer, items []litedoc.Inline) {
	w.WriteByte('[')
	for i, n := range items {
		if i > 0 {
			w.WriteByte(',')
		}
		writeInline(w, n)
	}
	w.WriteByte(']')
}

func writeBlocks(w *bytes.Buffer, items []litedoc.Block) {
	w.WriteByte('[')
	for i, n := range items {
		if i > 0 {
			w.WriteByte(',')
		}
		writeBlock(w, n)
	}
	w.WriteByte(']')
}
