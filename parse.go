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
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parser is a reusable handle carrying a default Profile. Parsing is
// otherwise stateless between invocations: a Parser may be used
// concurrently from multiple goroutines.
type Parser struct {
	Profile Profile
}

// NewParser returns a Parser defaulting to profile.
func NewParser(profile Profile) *Parser {
	return &Parser{Profile: profile}
}

// Result is the outcome of ParseWithRecovery: a Document that is always
// populated, the diagnostics recorded along the way, and OK reporting
// whether there were none.
type Result struct {
	Document    *Document
	Diagnostics Diagnostics
	OK          bool
}

// Parse parses source in strict mode: the first recoverable error aborts
// the parse and is returned as the error.
func (ps *Parser) Parse(source []byte) (*Document, error) {
	doc, diags, err := parseDocument(source, ps.Profile, true)
	if err != nil {
		return nil, err
	}
	if !diags.IsEmpty() {
		d := diags[0]
		return nil, &d
	}
	return doc, nil
}

// ParseWithRecovery parses source in recovery mode: it never fails. Errors
// are captured as diagnostics and as RawBlock nodes in the returned
// Document.
func (ps *Parser) ParseWithRecovery(source []byte) *Result {
	doc, diags, err := parseDocument(source, ps.Profile, false)
	if err != nil {
		// Only a fatal, non-recoverable condition (invalid UTF-8) reaches
		// here; surface it as a single diagnostic rather than failing.
		diags = append(diags, Diagnostic{Kind: UnexpectedEof, Span: Span{}, Message: err.Error()})
		doc = &Document{baseSpan: baseSpan{Span{Start: 0, End: len(source)}}, Profile: ps.Profile}
	}
	return &Result{Document: doc, Diagnostics: diags, OK: diags.IsEmpty()}
}

// Parse parses source under profile in strict mode. It is a convenience
// wrapper around Parser.Parse.
func Parse(source []byte, profile Profile) (*Document, error) {
	return NewParser(profile).Parse(source)
}

// ParseWithRecovery parses source under profile in recovery mode. It is a
// convenience wrapper around Parser.ParseWithRecovery.
func ParseWithRecovery(source []byte, profile Profile) *Result {
	return NewParser(profile).ParseWithRecovery(source)
}

func parseDocument(source []byte, profile Profile, strict bool) (doc *Document, diags Diagnostics, err error) {
	if !utf8.Valid(source) {
		return nil, nil, fmt.Errorf("litedoc: source is not valid UTF-8")
	}

	defer func() {
		if r := recover(); r != nil {
			abort, ok := r.(parseAbort)
			if !ok {
				panic(r)
			}
			err = abort.diag
		}
	}()

	c := newCursor(source, 0)
	bp := &blockParser{c: c, profile: profile, diags: &diags, strict: strict}
	bp.modules = profile.DefaultModules()

	bp.parseDirectives()
	meta, metaDiag := bp.parseMetadata()
	if metaDiag != nil {
		bp.fail(*metaDiag)
	}
	blocks := bp.parseBlocks()

	doc = &Document{
		baseSpan: baseSpan{Span{Start: 0, End: len(source)}},
		Profile:  bp.profile,
		Modules:  bp.modules,
		Metadata: meta,
		Blocks:   blocks,
	}
	return doc, diags, nil
}

// parseDirectives consumes leading "@profile" and "@modules" directive
// lines, in either order and any number of times, before the metadata
// block.
func (p *blockParser) parseDirectives() {
	for {
		p.c.skipBlankLines()
		if p.c.isEOF() {
			return
		}
		line := trimLineEnding(p.c.peekLine())
		trimmed := bytes.TrimSpace(line)
		switch {
		case bytes.HasPrefix(trimmed, []byte("@profile")):
			start := p.c.pos()
			rest := strings.TrimSpace(string(trimmed[len("@profile"):]))
			if pr, ok := ParseProfile(rest); ok {
				p.profile = pr
				p.modules = pr.DefaultModules()
			} else {
				p.fail(Diagnostic{Kind: MalformedAttribute, Span: p.c.span(start), Message: "unrecognized profile \"" + rest + "\""})
			}
			p.c.advance(len(p.c.peekLine()))
		case bytes.HasPrefix(trimmed, []byte("@modules")):
			start := p.c.pos()
			rest := strings.TrimSpace(string(trimmed[len("@modules"):]))
			var mods Module
			for _, name := range strings.Split(rest, ",") {
				name = strings.TrimSpace(name)
				if name == "" {
					continue
				}
				if m, ok := ParseModuleName(name); ok {
					mods |= m
				} else {
					p.fail(Diagnostic{Kind: UnknownModule, Span: p.c.span(start), Message: "unknown module \"" + name + "\""})
				}
			}
			p.modules = effectiveModules(p.profile, mods)
			p.c.advance(len(p.c.peekLine()))
		default:
			return
		}
	}
}
