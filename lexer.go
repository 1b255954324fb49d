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

import "bytes"

// delimiterBytes is the fixed set of ASCII bytes that can start inline
// syntax. Every byte outside this set is plain text and can be skipped in
// bulk by the cursor's scanning primitive.
const delimiterBytes = "*`~[<\\"

// cursor is the Source Cursor component: it walks a UTF-8 byte
// buffer line by line, minting Spans from remembered offsets. Line and
// column are tracked only for diagnostics; no grammar decision consults
// them.
type cursor struct {
	src    []byte
	base   int // offset of src[0] within the original source buffer
	offset int
	line   int
	column int

	// translate, when non-nil, maps a local offset into src to an absolute
	// offset into the original source buffer. Used for synthetic buffers
	// built by stripping list-item continuation markers, where local byte
	// layout no longer matches the original source 1:1.
	translate func(localOffset int) int
}

// newCursor returns a cursor over src, where src is itself a sub-slice of
// the original source buffer starting at absolute offset base. This lets
// recursive block parsing of fenced bodies report Spans in terms of the
// original buffer without copying. List items instead parse a copied,
// marker-stripped buffer and set translate.
func newCursor(src []byte, base int) *cursor {
	return &cursor{src: src, base: base, line: 1, column: 1}
}

func (c *cursor) isEOF() bool {
	return c.offset >= len(c.src)
}

// pos returns the current absolute offset into the original source buffer.
func (c *cursor) pos() int {
	if c.translate != nil {
		return c.translate(c.offset)
	}
	return c.base + c.offset
}

// span mints a Span from an absolute start offset to the current position.
func (c *cursor) span(start int) Span {
	return Span{Start: start, End: c.pos()}
}

func (c *cursor) peekByte() (byte, bool) {
	if c.isEOF() {
		return 0, false
	}
	return c.src[c.offset], true
}

func (c *cursor) advance(n int) {
	for i := 0; i < n && c.offset < len(c.src); i++ {
		if c.src[c.offset] == '\n' {
			c.line++
			c.column = 1
		} else {
			c.column++
		}
		c.offset++
	}
}

// nextLine returns the bytes from the current offset up to and including
// the terminating '\n', or to EOF if no '\n' remains, and advances past it.
// The returned slice is a borrowed view of src.
func (c *cursor) nextLine() []byte {
	rest := c.src[c.offset:]
	idx := bytes.IndexByte(rest, '\n')
	var line []byte
	if idx < 0 {
		line = rest
	} else {
		line = rest[:idx+1]
	}
	c.advance(len(line))
	return line
}

// peekLine returns the next line without advancing the cursor.
func (c *cursor) peekLine() []byte {
	rest := c.src[c.offset:]
	idx := bytes.IndexByte(rest, '\n')
	if idx < 0 {
		return rest
	}
	return rest[:idx+1]
}

// skipBlankLines advances past consecutive lines that are empty once
// trailing newline and whitespace are trimmed.
func (c *cursor) skipBlankLines() {
	for !c.isEOF() {
		line := c.peekLine()
		if len(bytes.TrimSpace(line)) != 0 {
			return
		}
		c.advance(len(line))
	}
}

// trimLineEnding strips a trailing "\r\n" or "\n" from a line slice.
func trimLineEnding(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line
}

// indexDelimiter returns the offset of the next byte in s belonging to
// delimiterBytes, or -1 if none remains. This is the byte-search primitive
// the inline parser uses to extend Text runs in bulk instead of scanning
// byte by byte.
func indexDelimiter(s []byte) int {
	return bytes.IndexAny(s, delimiterBytes)
}

// looksLikeFenceClose reports whether line, once trimmed, is exactly "::".
func looksLikeFenceClose(line []byte) bool {
	return string(bytes.TrimSpace(line)) == "::"
}
