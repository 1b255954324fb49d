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
	"unicode"
	"unicode/utf8"
)

// inlineParser is the Inline Parser component: a single
// forward pass over a block's content, with a stack of open emphasis
// markers standing in for recursion over alternatives.
type inlineParser struct {
	src          []byte
	base         int
	pos          int
	modules      Module
	noLinks      bool // true while parsing a Link's label; forbids nested links
	out          []Inline
	delims       []delimRun
	textStart    int // absolute offset; -1 when no pending text run
}

type delimRun struct {
	marker   byte
	length   int
	outIndex int
	absStart int
}

// parseInlineContent parses content (a slice starting at absolute offset
// base in the original source) into a coalesced inline sequence.
func parseInlineContent(content []byte, base int, modules Module) []Inline {
	p := &inlineParser{src: content, base: base, modules: modules, textStart: -1}
	p.run()
	return coalesceText(p.out)
}

func (p *inlineParser) abs(localOffset int) int {
	return p.base + localOffset
}

func (p *inlineParser) flushText(end int) {
	if p.textStart < 0 {
		return
	}
	if end > p.textStart {
		p.out = append(p.out, &Text{
			baseSpan: baseSpan{Span{Start: p.textStart, End: end}},
			Content:  string(p.src[p.textStart-p.base : end-p.base]),
		})
	}
	p.textStart = -1
}

func (p *inlineParser) markTextStart() {
	if p.textStart < 0 {
		p.textStart = p.abs(p.pos)
	}
}

func (p *inlineParser) run() {
	for p.pos < len(p.src) {
		idx := indexDelimiter(p.src[p.pos:])
		if idx < 0 {
			p.markTextStart()
			p.pos = len(p.src)
			break
		}
		if idx > 0 {
			p.markTextStart()
			p.pos += idx
			continue
		}
		p.flushText(p.abs(p.pos))
		switch p.src[p.pos] {
		case '`':
			p.parseCodeSpan()
		case '~':
			p.parseTilde()
		case '[':
			p.parseBracket()
		case '<':
			p.parseAngle()
		case '\\':
			p.parseEscape()
		case '*':
			p.parseStar()
		default:
			p.markTextStart()
			p.pos++
		}
	}
	p.flushText(p.abs(p.pos))
	// Unmatched openers need no further action: each was already appended
	// to p.out as a literal Text node when pushed, and
	// is only ever removed from p.out when it is actually matched.
}

func (p *inlineParser) parseEscape() {
	start := p.abs(p.pos)
	if p.pos+1 >= len(p.src) {
		p.out = append(p.out, &Text{baseSpan: baseSpan{Span{Start: start, End: start + 1}}, Content: "\\"})
		p.pos++
		return
	}
	b := p.src[p.pos+1]
	p.out = append(p.out, &Text{
		baseSpan: baseSpan{Span{Start: start, End: start + 2}},
		Content:  string(b),
	})
	p.pos += 2
}

func (p *inlineParser) parseCodeSpan() {
	start := p.pos
	absStart := p.abs(start)
	n := runLength(p.src, start, '`')
	openEnd := start + n
	closeStart := findClosingRun(p.src, openEnd, '`', n)
	if closeStart < 0 {
		p.out = append(p.out, &Text{
			baseSpan: baseSpan{Span{Start: absStart, End: p.abs(openEnd)}},
			Content:  string(p.src[start:openEnd]),
		})
		p.pos = openEnd
		return
	}
	content := p.src[openEnd:closeStart]
	end := closeStart + n
	p.out = append(p.out, &CodeSpan{
		baseSpan: baseSpan{Span{Start: absStart, End: p.abs(end)}},
		Content:  string(content),
	})
	p.pos = end
}

// findClosingRun returns the offset of the first run of exactly n copies
// of marker starting at or after from, where the run is not itself part of
// a longer run. Returns -1 if none exists.
func findClosingRun(src []byte, from int, marker byte, n int) int {
	i := from
	for i < len(src) {
		idx := bytes.IndexByte(src[i:], marker)
		if idx < 0 {
			return -1
		}
		runStart := i + idx
		runLen := runLength(src, runStart, marker)
		if runLen == n {
			return runStart
		}
		i = runStart + runLen
	}
	return -1
}

func runLength(src []byte, start int, marker byte) int {
	n := 0
	for start+n < len(src) && src[start+n] == marker {
		n++
	}
	return n
}

func (p *inlineParser) parseTilde() {
	if !p.modules.Has(ModuleStrikethrough) || p.pos+1 >= len(p.src) || p.src[p.pos+1] != '~' {
		p.markTextStart()
		p.pos++
		return
	}
	p.handleDelimiterRun('~', 2)
}

func (p *inlineParser) parseStar() {
	n := runLength(p.src, p.pos, '*')
	length := n
	if length > 2 {
		length = 2
	}
	p.handleDelimiterRun('*', length)
}

// handleDelimiterRun implements the flanking/open/close logic of spec
// §4.5 for a marker run of the given length starting at p.pos.
func (p *inlineParser) handleDelimiterRun(marker byte, length int) {
	start := p.pos
	end := start + length
	before := byteBefore(p.src, start)
	after := byteAfter(p.src, end)

	left := isLeftFlanking(before, after)
	right := isRightFlanking(before, after)

	absStart := p.abs(start)

	if right {
		if i := p.findMatchingOpener(marker, length); i >= 0 {
			opener := p.delims[i]
			innerStart := opener.outIndex + 1
			inner := append([]Inline(nil), p.out[innerStart:]...)
			p.out = p.out[:opener.outIndex]
			var wrapped Inline
			span := Span{Start: opener.absStart, End: p.abs(end)}
			switch {
			case marker == '~':
				wrapped = &Strikethrough{baseSpan: baseSpan{span}, Content: inner}
			case length == 2:
				wrapped = &Strong{baseSpan: baseSpan{span}, Content: inner}
			default:
				wrapped = &Emphasis{baseSpan: baseSpan{span}, Content: inner}
			}
			p.out = append(p.out, wrapped)
			p.delims = p.delims[:i]
			p.pos = end
			return
		}
	}
	if left {
		p.out = append(p.out, &Text{
			baseSpan: baseSpan{Span{Start: absStart, End: p.abs(end)}},
			Content:  string(p.src[start:end]),
		})
		p.delims = append(p.delims, delimRun{marker: marker, length: length, outIndex: len(p.out) - 1, absStart: absStart})
		p.pos = end
		return
	}
	// Neither flanking: literal text.
	p.out = append(p.out, &Text{
		baseSpan: baseSpan{Span{Start: absStart, End: p.abs(end)}},
		Content:  string(p.src[start:end]),
	})
	p.pos = end
}

func (p *inlineParser) findMatchingOpener(marker byte, length int) int {
	for i := len(p.delims) - 1; i >= 0; i-- {
		if p.delims[i].marker == marker && p.delims[i].length == length {
			return i
		}
	}
	return -1
}

func byteBefore(src []byte, pos int) (r rune) {
	if pos == 0 {
		return ' '
	}
	r, _ = utf8.DecodeLastRune(src[:pos])
	return r
}

func byteAfter(src []byte, pos int) (r rune) {
	if pos >= len(src) {
		return ' '
	}
	r, _ = utf8.DecodeRune(src[pos:])
	return r
}

func isSpaceOrPunct(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isLeftFlanking left-flanking delimiter rule: preceded by space/punctuation/start, not followed by space.
func isLeftFlanking(before, after rune) bool {
	if unicode.IsSpace(after) {
		return false
	}
	return isSpaceOrPunct(before) || (isAlnum(after) && !isAlnum(before))
}

// isRightFlanking right-flanking delimiter rule, symmetric to isLeftFlanking.
func isRightFlanking(before, after rune) bool {
	if unicode.IsSpace(before) {
		return false
	}
	return isSpaceOrPunct(after) || (isAlnum(before) && !isAlnum(after))
}

func (p *inlineParser) parseBracket() {
	if p.pos+1 < len(p.src) && p.src[p.pos+1] == '[' && !p.noLinks {
		p.parseLink()
		return
	}
	if p.pos+1 < len(p.src) && p.src[p.pos+1] == '^' && p.modules.Has(ModuleFootnotes) {
		p.parseFootnoteRef()
		return
	}
	p.markTextStart()
	p.pos++
}

func (p *inlineParser) parseLink() {
	start := p.pos
	absStart := p.abs(start)
	closeIdx := bytes.Index(p.src[start+2:], []byte("]]"))
	if closeIdx < 0 {
		p.out = append(p.out, &Text{baseSpan: baseSpan{Span{Start: absStart, End: p.abs(start + 2)}}, Content: "[["})
		p.pos = start + 2
		return
	}
	bodyStart := start + 2
	bodyEnd := bodyStart + closeIdx
	body := p.src[bodyStart:bodyEnd]
	end := bodyEnd + 2

	var label []Inline
	var url, title string
	if pipe := bytes.IndexByte(body, '|'); pipe >= 0 {
		labelSrc := body[:pipe]
		url = string(body[pipe+1:])
		sub := &inlineParser{src: labelSrc, base: p.abs(bodyStart), modules: p.modules, noLinks: true, textStart: -1}
		sub.run()
		label = coalesceText(sub.out)
	} else {
		url = string(body)
		label = []Inline{&Text{
			baseSpan: baseSpan{Span{Start: p.abs(bodyStart), End: p.abs(bodyEnd)}},
			Content:  url,
		}}
	}
	p.out = append(p.out, &Link{
		baseSpan: baseSpan{Span{Start: absStart, End: p.abs(end)}},
		Label:    label,
		URL:      url,
		Title:    title,
	})
	p.pos = end
}

func (p *inlineParser) parseFootnoteRef() {
	start := p.pos
	absStart := p.abs(start)
	closeIdx := bytes.IndexByte(p.src[start+2:], ']')
	if closeIdx < 0 {
		p.out = append(p.out, &Text{baseSpan: baseSpan{Span{Start: absStart, End: p.abs(start + 2)}}, Content: "[^"})
		p.pos = start + 2
		return
	}
	labelEnd := start + 2 + closeIdx
	label := string(p.src[start+2 : labelEnd])
	end := labelEnd + 1
	p.out = append(p.out, &FootnoteRef{
		baseSpan: baseSpan{Span{Start: absStart, End: p.abs(end)}},
		Label:    label,
	})
	p.pos = end
}

func (p *inlineParser) parseAngle() {
	start := p.pos
	absStart := p.abs(start)
	if !p.modules.Has(ModuleAutolink) {
		p.markTextStart()
		p.pos++
		return
	}
	closeIdx := bytes.IndexByte(p.src[start+1:], '>')
	if closeIdx < 0 {
		p.markTextStart()
		p.pos++
		return
	}
	body := p.src[start+1 : start+1+closeIdx]
	if !looksLikeAutolinkBody(body) {
		p.markTextStart()
		p.pos++
		return
	}
	end := start + 1 + closeIdx + 1
	p.out = append(p.out, &AutoLink{
		baseSpan: baseSpan{Span{Start: absStart, End: p.abs(end)}},
		URL:      string(body),
	})
	p.pos = end
}

func looksLikeAutolinkBody(body []byte) bool {
	colon := bytes.IndexByte(body, ':')
	if colon <= 0 {
		return false
	}
	scheme := body[:colon]
	if !isAlpha(scheme[0]) {
		return false
	}
	for _, b := range scheme[1:] {
		if !isAlpha(b) && !isDigit(b) && b != '+' && b != '.' && b != '-' {
			return false
		}
	}
	rest := body[colon+1:]
	if len(rest) == 0 {
		return false
	}
	for _, b := range rest {
		if b == ' ' || b == '\t' {
			return false
		}
	}
	return true
}

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// coalesceText merges adjacent Text nodes so no two consecutive elements
// of an inline sequence are both *Text.
func coalesceText(in []Inline) []Inline {
	if len(in) == 0 {
		return in
	}
	out := make([]Inline, 0, len(in))
	for _, n := range in {
		if t, ok := n.(*Text); ok {
			if len(out) > 0 {
				if prev, ok := out[len(out)-1].(*Text); ok {
					prev.Content += t.Content
					prev.baseSpan.span.End = t.baseSpan.span.End
					continue
				}
			}
		}
		out = append(out, n)
	}
	return out
}
