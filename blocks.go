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
	"bytes"
	"strings"
)

// blockParser is the Block Parser component. It operates over
// a cursor positioned on a stream of lines and dispatches on the first
// non-blank line of each region, never rewinding across a dispatch
// decision.
type blockParser struct {
	c       *cursor
	profile Profile
	modules Module
	diags   *Diagnostics
	strict  bool
}

// parseAbort is used internally to unwind a recursive parse immediately
// when strict mode hits its first diagnostic. It never escapes the
// package: every exported entry point recovers it.
type parseAbort struct {
	diag *Diagnostic
}

// fail records a diagnostic and, in strict mode, aborts the parse.
func (p *blockParser) fail(d Diagnostic) {
	*p.diags = append(*p.diags, d)
	if p.strict {
		panic(parseAbort{diag: &d})
	}
}

// parseBlocks consumes blocks from p.c until EOF and returns them in
// source order. It is used both for the top-level document body and for
// every fenced block's recursively-parsed body.
func (p *blockParser) parseBlocks() []Block {
	var blocks []Block
	for {
		p.c.skipBlankLines()
		if p.c.isEOF() {
			return blocks
		}
		blocks = append(blocks, p.parseOneBlock())
	}
}

func (p *blockParser) parseOneBlock() Block {
	start := p.c.pos()
	line := trimLineEnding(p.c.peekLine())
	trimmed := bytes.TrimSpace(line)

	switch {
	case headingLevel(trimmed) > 0:
		return p.parseHeading(start)
	case bytes.HasPrefix(trimmed, []byte("```")):
		return p.parseCodeBlock(start)
	case bytes.HasPrefix(trimmed, []byte("::")) && fenceNameOf(trimmed) != "":
		return p.parseFencedBlock(start)
	case string(trimmed) == "---":
		p.c.advance(len(p.c.peekLine()))
		return &ThematicBreak{baseSpan{p.c.span(start)}}
	case p.modules.Has(ModuleHTML) && looksLikeHTMLBlockStart(trimmed):
		return p.parseHTMLBlock(start)
	default:
		return p.parseParagraph(start)
	}
}

func headingLevel(trimmed []byte) int {
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' && n < 6 {
		n++
	}
	if n == 0 || n > 6 {
		return 0
	}
	if n < len(trimmed) && trimmed[n] == ' ' {
		return n
	}
	return 0
}

func (p *blockParser) parseHeading(start int) Block {
	raw := trimLineEnding(p.c.nextLine())
	trimmed := bytes.TrimSpace(raw)
	level := headingLevel(trimmed)
	content := bytes.TrimSpace(trimmed[level:])
	contentStart := start + bytes.Index(raw, content)
	return &Heading{
		baseSpan: baseSpan{p.c.span(start)},
		Level:    level,
		Content:  parseInlineContent(content, contentStart, p.modules),
	}
}

func (p *blockParser) parseParagraph(start int) Block {
	var lines [][]byte
	var lineStarts []int
	for {
		if p.c.isEOF() {
			break
		}
		peek := trimLineEnding(p.c.peekLine())
		trimmed := bytes.TrimSpace(peek)
		if len(trimmed) == 0 {
			break
		}
		if headingLevel(trimmed) > 0 ||
			bytes.HasPrefix(trimmed, []byte("```")) ||
			(bytes.HasPrefix(trimmed, []byte("::")) && fenceNameOf(trimmed) != "") ||
			string(trimmed) == "---" {
			break
		}
		lineStart := p.c.pos()
		raw := p.c.nextLine()
		lines = append(lines, raw)
		lineStarts = append(lineStarts, lineStart)
	}
	content := buildParagraphInlines(lines, lineStarts, p.modules)
	return &Paragraph{baseSpan: baseSpan{p.c.span(start)}, Content: content}
}

func buildParagraphInlines(lines [][]byte, starts []int, modules Module) []Inline {
	var out []Inline
	for i, raw := range lines {
		line := trimLineEnding(raw)
		hard := bytes.HasSuffix(line, []byte("  "))
		text := bytes.TrimRight(line, " ")
		out = append(out, parseInlineContent(text, starts[i], modules)...)
		if i != len(lines)-1 {
			end := starts[i] + len(raw)
			if hard {
				out = append(out, &HardBreak{baseSpan{Span{Start: end - 1, End: end}}})
			} else {
				out = append(out, &SoftBreak{baseSpan{Span{Start: end - 1, End: end}}})
			}
		}
	}
	return coalesceText(out)
}

func (p *blockParser) parseCodeBlock(start int) Block {
	opener := trimLineEnding(p.c.nextLine())
	lang := strings.TrimSpace(string(bytes.TrimPrefix(bytes.TrimSpace(opener), []byte("```"))))
	if lang == "" && p.profile == Litedoc {
		p.fail(Diagnostic{Kind: MissingLanguage, Span: p.c.span(start), Message: "code block missing language tag"})
	}
	bodyStartOffset := p.c.offset
	for {
		if p.c.isEOF() {
			content := string(p.c.src[bodyStartOffset:p.c.offset])
			p.fail(Diagnostic{Kind: UnterminatedCodeFence, Span: p.c.span(start), Message: "code block missing closing fence"})
			return &CodeBlock{baseSpan: baseSpan{p.c.span(start)}, Lang: lang, Content: content}
		}
		lineStart := p.c.offset
		raw := p.c.nextLine()
		if string(bytes.TrimSpace(trimLineEnding(raw))) == "```" {
			content := string(p.c.src[bodyStartOffset:lineStart])
			return &CodeBlock{baseSpan: baseSpan{p.c.span(start)}, Lang: lang, Content: content}
		}
	}
}

// fenceNameOf returns the fenced-block name token of a trimmed "::NAME …"
// opener line, or "" if trimmed is not a recognized fence opener.
func fenceNameOf(trimmed []byte) string {
	if !bytes.HasPrefix(trimmed, []byte("::")) {
		return ""
	}
	rest := bytes.TrimSpace(trimmed[2:])
	if len(rest) == 0 {
		return ""
	}
	end := bytes.IndexByte(rest, ' ')
	var name string
	if end < 0 {
		name = string(rest)
	} else {
		name = string(rest[:end])
	}
	switch name {
	case "list", "table", "callout", "quote", "figure", "math", "footnotes":
		return name
	default:
		return ""
	}
}

func (p *blockParser) parseFencedBlock(start int) Block {
	localStart := p.c.offset
	openerLine := trimLineEnding(p.c.nextLine())
	trimmed := bytes.TrimSpace(openerLine)
	rest := bytes.TrimSpace(trimmed[2:])
	name := fenceNameOf(trimmed)
	var attrStr string
	if idx := bytes.IndexByte(rest, ' '); idx >= 0 {
		attrStr = string(bytes.TrimSpace(rest[idx+1:]))
	}
	attrs := parseFenceAttrs(attrStr)

	bodySrc, bodyBase, closed := p.extractFenceBody(name == "math")
	if !closed {
		content := string(p.c.src[localStart:p.c.offset])
		p.fail(Diagnostic{Kind: UnterminatedFence, Span: p.c.span(start), Message: "\"::" + name + "\" block missing closing \"::\""})
		return &RawBlock{baseSpan: baseSpan{p.c.span(start)}, Content: content}
	}

	switch name {
	case "list":
		return p.buildList(start, attrs, bodySrc, bodyBase)
	case "table":
		return p.buildTable(start, bodySrc, bodyBase)
	case "callout":
		return p.buildCallout(start, attrs, bodySrc, bodyBase)
	case "quote":
		return p.buildQuote(start, bodySrc, bodyBase)
	case "figure":
		return p.buildFigure(start, attrs)
	case "math":
		return p.buildMath(start, attrs, bodySrc)
	case "footnotes":
		return p.buildFootnotes(start, bodySrc, bodyBase)
	default:
		// unreachable: fenceNameOf already filtered the name set.
		return &RawBlock{baseSpan: baseSpan{p.c.span(start)}, Content: string(bodySrc)}
	}
}

// extractFenceBody scans forward from the cursor (positioned just after a
// fence opener line) for the matching bare "::" closer, tracking nesting
// depth so a fenced block may itself contain fenced blocks in its body. It
// returns the body bytes (a borrowed slice), the absolute offset of the
// first body byte, and whether a closer was found before EOF. On success
// the cursor is left positioned just after the closer line; on failure it
// is left at EOF.
//
// verbatim disables nested-opener depth tracking: a "::math" body is
// captured with no inline parsing or escape processing per spec.md §4.4, so
// a "::"-prefixed line inside it is body content, not a nested fence
// opener, and only a bare "::" line at depth 1 closes the block.
func (p *blockParser) extractFenceBody(verbatim bool) (body []byte, bodyBase int, closed bool) {
	bodyBase = p.c.pos()
	bodyStartOffset := p.c.offset
	depth := 1
	for {
		if p.c.isEOF() {
			return p.c.src[bodyStartOffset:p.c.offset], bodyBase, false
		}
		lineStart := p.c.offset
		raw := p.c.nextLine()
		trimmed := bytes.TrimSpace(trimLineEnding(raw))
		if len(trimmed) == 0 {
			continue
		}
		if bytes.HasPrefix(trimmed, []byte("::")) {
			rest := bytes.TrimSpace(trimmed[2:])
			if len(rest) == 0 {
				depth--
				if depth == 0 {
					return p.c.src[bodyStartOffset:lineStart], bodyBase, true
				}
				continue
			}
			if !verbatim {
				depth++
			}
		}
	}
}

// parseFenceAttrs tokenizes a fence opener's attribute string: space
// separated "key=value" pairs (value optionally quoted) or bare flag
// words, which are recorded as booleans keyed by their own name.
func parseFenceAttrs(s string) AttrMap {
	var attrs AttrMap
	for _, tok := range tokenizeAttrs(s) {
		if tok == "" {
			continue
		}
		if idx := strings.IndexByte(tok, '='); idx >= 0 {
			key := tok[:idx]
			raw := tok[idx+1:]
			value, err := classifyMetadataValue(raw)
			if err != nil {
				value = NewAttrString(strings.Trim(raw, `"`))
			}
			attrs.Set(key, value)
			continue
		}
		attrs.Set(tok, NewAttrBool(true))
	}
	return attrs
}

func tokenizeAttrs(s string) []string {
	var toks []string
	var cur strings.Builder
	inQuote := false
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == ' ' && !inQuote:
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return toks
}

func (p *blockParser) subParser(src []byte, base int) *blockParser {
	return &blockParser{
		c:       newCursor(src, base),
		profile: p.profile,
		modules: p.modules,
		diags:   p.diags,
		strict:  p.strict,
	}
}

func (p *blockParser) buildQuote(start int, bodySrc []byte, bodyBase int) Block {
	sp := p.subParser(bodySrc, bodyBase)
	blocks := sp.parseBlocks()
	return &Quote{baseSpan: baseSpan{p.c.span(start)}, Blocks: blocks}
}

func (p *blockParser) buildCallout(start int, attrs AttrMap, bodySrc []byte, bodyBase int) Block {
	kind, _ := attrs.Get("type")
	title, _ := attrs.Get("title")
	sp := p.subParser(bodySrc, bodyBase)
	blocks := sp.parseBlocks()
	return &Callout{
		baseSpan: baseSpan{p.c.span(start)},
		Kind:     kind.String(),
		Title:    title.String(),
		Blocks:   blocks,
	}
}

func (p *blockParser) buildFigure(start int, attrs AttrMap) Block {
	src, ok := attrs.Get("src")
	if !ok {
		p.fail(Diagnostic{Kind: MalformedAttribute, Span: p.c.span(start), Message: "\"::figure\" missing required \"src\" attribute"})
	}
	alt, _ := attrs.Get("alt")
	caption, _ := attrs.Get("caption")
	return &Figure{
		baseSpan: baseSpan{p.c.span(start)},
		Src:      src.String(),
		Alt:      alt.String(),
		Caption:  caption.String(),
	}
}

func (p *blockParser) buildMath(start int, attrs AttrMap, bodySrc []byte) Block {
	display := attrs.Has("display")
	return &MathBlock{baseSpan: baseSpan{p.c.span(start)}, Display: display, Content: string(bodySrc)}
}

func (p *blockParser) buildFootnotes(start int, bodySrc []byte, bodyBase int) Block {
	sp := p.subParser(bodySrc, bodyBase)
	blocks := sp.parseBlocks()
	defs := make([]FootnoteDef, 0, len(blocks))
	for _, b := range blocks {
		para, ok := b.(*Paragraph)
		label := ""
		if ok && len(para.Content) > 0 {
			if t, ok := para.Content[0].(*Text); ok {
				if l, body, found := splitFootnoteDefMarker(t.Content); found {
					label = l
					t.Content = body
				}
			} else if ref, isRef := para.Content[0].(*FootnoteRef); isRef && len(para.Content) > 1 {
				// With ModuleFootnotes active, "[^label]" is already a
				// FootnoteRef and the ":" starts the following Text.
				if t, isText := para.Content[1].(*Text); isText && strings.HasPrefix(t.Content, ":") {
					label = ref.Label
					t.Content = strings.TrimPrefix(t.Content[1:], " ")
					para.Content = para.Content[1:]
				}
			}
		}
		defs = append(defs, FootnoteDef{
			baseSpan: baseSpan{b.Span()},
			Label:    label,
			Blocks:   []Block{b},
		})
	}
	return &Footnotes{baseSpan: baseSpan{p.c.span(start)}, Defs: defs}
}

func splitFootnoteDefMarker(s string) (label string, rest string, ok bool) {
	if !strings.HasPrefix(s, "[^") {
		return "", s, false
	}
	idx := strings.Index(s, "]:")
	if idx < 0 {
		return "", s, false
	}
	label = s[2:idx]
	rest = strings.TrimPrefix(s[idx+2:], " ")
	return label, rest, true
}

func (p *blockParser) buildTable(start int, bodySrc []byte, bodyBase int) Block {
	lines := splitLines(bodySrc, bodyBase)
	var rows []TableRow
	for i, ln := range lines {
		trimmed := bytes.TrimSpace(trimLineEnding(ln.bytes))
		if len(trimmed) == 0 {
			continue
		}
		if isTableSeparatorRow(trimmed) {
			continue
		}
		cells := splitTableCells(trimmed, ln.start)
		header := i == 0 && len(lines) > 1 && isTableSeparatorRow(bytes.TrimSpace(trimLineEnding(lines[1].bytes)))
		rows = append(rows, TableRow{
			baseSpan: baseSpan{Span{Start: ln.start, End: ln.start + len(trimLineEnding(ln.bytes))}},
			Cells:    cells,
			Header:   header,
		})
	}
	if len(rows) == 0 {
		p.fail(Diagnostic{Kind: BadTable, Span: p.c.span(start), Message: "\"::table\" has no rows"})
	}
	return &Table{baseSpan: baseSpan{p.c.span(start)}, Rows: rows}
}

func isTableSeparatorRow(trimmed []byte) bool {
	cells := bytes.Split(bytes.Trim(trimmed, "|"), []byte("|"))
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		c = bytes.TrimSpace(c)
		if len(c) == 0 {
			return false
		}
		for i, b := range c {
			switch {
			case b == ':' && (i == 0 || i == len(c)-1):
			case b == '-':
			default:
				return false
			}
		}
	}
	return true
}

func splitTableCells(trimmed []byte, lineStart int) []TableCell {
	inner := bytes.Trim(trimmed, "|")
	offset := bytes.Index(trimmed, inner)
	if offset < 0 {
		offset = 0
	}
	parts := bytes.Split(inner, []byte("|"))
	cells := make([]TableCell, 0, len(parts))
	pos := lineStart + offset
	for _, part := range parts {
		trimmedPart := bytes.TrimSpace(part)
		contentStart := pos + bytes.Index(part, trimmedPart)
		if bytes.Index(part, trimmedPart) < 0 {
			contentStart = pos
		}
		cells = append(cells, TableCell{
			baseSpan: baseSpan{Span{Start: contentStart, End: contentStart + len(trimmedPart)}},
			Content:  parseInlineContent(trimmedPart, contentStart, 0),
		})
		pos += len(part) + 1
	}
	return cells
}

type sourceLine struct {
	bytes []byte
	start int
}

func splitLines(src []byte, base int) []sourceLine {
	var out []sourceLine
	offset := 0
	for offset < len(src) {
		idx := bytes.IndexByte(src[offset:], '\n')
		var line []byte
		if idx < 0 {
			line = src[offset:]
		} else {
			line = src[offset : offset+idx+1]
		}
		out = append(out, sourceLine{bytes: line, start: base + offset})
		offset += len(line)
	}
	return out
}

func (p *blockParser) buildList(start int, attrs AttrMap, bodySrc []byte, bodyBase int) Block {
	kind := Unordered
	if attrs.Has("ordered") {
		kind = Ordered
	}
	var startNum *uint64
	if kind == Ordered {
		if v, ok := attrs.Get("start"); ok {
			n := uint64(v.Int())
			startNum = &n
		}
	}
	items := p.splitListItems(bodySrc, bodyBase)
	return &List{baseSpan: baseSpan{p.c.span(start)}, Kind: kind, Start: startNum, Items: items}
}

// splitListItems groups a list's body lines into items at "- " openers,
// absorbing "| "-prefixed continuation lines into the current item and
// recursively block-parsing each item's de-prefixed content.
func (p *blockParser) splitListItems(bodySrc []byte, bodyBase int) []*ListItem {
	lines := splitLines(bodySrc, bodyBase)
	var items []*ListItem
	var curLines [][]byte
	var curStarts []int
	var itemStart, itemEnd int

	flush := func() {
		if curLines == nil {
			return
		}
		items = append(items, p.buildListItem(curLines, curStarts, itemStart, itemEnd))
		curLines, curStarts = nil, nil
	}

	for _, ln := range lines {
		trimmed := bytes.TrimSpace(trimLineEnding(ln.bytes))
		switch {
		case bytes.HasPrefix(trimmed, []byte("- ")) || string(trimmed) == "-":
			flush()
			itemStart = ln.start
			itemEnd = ln.start + len(trimLineEnding(ln.bytes))
			markerEnd := 1
			if markerEnd < len(ln.bytes) && ln.bytes[markerEnd] == ' ' {
				markerEnd++
			}
			curLines = append(curLines, ln.bytes[markerEnd:])
			curStarts = append(curStarts, ln.start+markerEnd)
		case bytes.HasPrefix(trimmed, []byte("| ")) || string(trimmed) == "|":
			if curLines == nil {
				continue
			}
			markerEnd := bytes.Index(ln.bytes, []byte("|")) + 1
			if markerEnd < len(ln.bytes) && ln.bytes[markerEnd] == ' ' {
				markerEnd++
			}
			curLines = append(curLines, ln.bytes[markerEnd:])
			curStarts = append(curStarts, ln.start+markerEnd)
			itemEnd = ln.start + len(trimLineEnding(ln.bytes))
		case len(trimmed) == 0:
			curLines = append(curLines, ln.bytes)
			curStarts = append(curStarts, ln.start)
		default:
			if curLines != nil {
				curLines = append(curLines, ln.bytes)
				curStarts = append(curStarts, ln.start)
				itemEnd = ln.start + len(trimLineEnding(ln.bytes))
			}
		}
	}
	flush()
	return items
}

func (p *blockParser) buildListItem(lines [][]byte, starts []int, itemStart, itemEnd int) *ListItem {
	buf, segments := buildTranslatedBuffer(lines, starts)
	translate := buildTranslator(segments)
	c := newCursor(buf, 0)
	c.translate = translate
	sp := &blockParser{c: c, profile: p.profile, modules: p.modules, diags: p.diags, strict: p.strict}
	blocks := sp.parseBlocks()
	return &ListItem{baseSpan: baseSpan{Span{Start: itemStart, End: itemEnd}}, Blocks: blocks}
}

// translationSegment maps a contiguous run of local offsets [localStart,
// localEnd) in a synthetic buffer back to the original buffer, where the
// original offset is absStart + (local - localStart).
type translationSegment struct {
	localStart int
	localEnd   int
	absStart   int
}

// buildTranslatedBuffer concatenates lines (each already stripped of its
// "- "/"| " marker) into a single owned buffer, recording the segment
// table needed to translate local offsets back to absolute source
// offsets.
func buildTranslatedBuffer(lines [][]byte, starts []int) ([]byte, []translationSegment) {
	var buf bytes.Buffer
	segments := make([]translationSegment, 0, len(lines))
	for i, line := range lines {
		localStart := buf.Len()
		buf.Write(line)
		segments = append(segments, translationSegment{
			localStart: localStart,
			localEnd:   buf.Len(),
			absStart:   starts[i],
		})
	}
	return buf.Bytes(), segments
}

func buildTranslator(segments []translationSegment) func(int) int {
	return func(local int) int {
		for _, seg := range segments {
			if local >= seg.localStart && local <= seg.localEnd {
				return seg.absStart + (local - seg.localStart)
			}
		}
		if len(segments) == 0 {
			return local
		}
		last := segments[len(segments)-1]
		return last.absStart + (local - last.localStart)
	}
}

func looksLikeHTMLBlockStart(trimmed []byte) bool {
	if len(trimmed) < 2 || trimmed[0] != '<' {
		return false
	}
	rest := trimmed[1:]
	if len(rest) > 0 && rest[0] == '/' {
		rest = rest[1:]
	}
	end := 0
	for end < len(rest) && isTagNameByte(rest[end]) {
		end++
	}
	if end == 0 {
		return false
	}
	return isKnownHTMLTag(string(rest[:end]))
}

func isTagNameByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func (p *blockParser) parseHTMLBlock(start int) Block {
	bodyStartOffset := p.c.offset
	for {
		if p.c.isEOF() {
			break
		}
		peek := p.c.peekLine()
		if len(bytes.TrimSpace(trimLineEnding(peek))) == 0 {
			break
		}
		p.c.advance(len(peek))
	}
	content := string(p.c.src[bodyStartOffset:p.c.offset])
	return &HtmlBlock{baseSpan: baseSpan{p.c.span(start)}, Content: content}
}
