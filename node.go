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

// Node is implemented by every Block and Inline. A shared interface that
// can report its Span and be walked is all callers outside this package
// need; there is no separate visitor hierarchy.
type Node interface {
	Span() Span
}

// Block is implemented by every block-level node: Heading, Paragraph, List,
// ListItem, CodeBlock, Callout, Quote, Figure, Table, Footnotes, MathBlock,
// ThematicBreak, HtmlBlock, and RawBlock.
type Block interface {
	Node
	blockNode()
}

// Inline is implemented by every inline node: Text, Emphasis, Strong,
// Strikethrough, CodeSpan, Link, AutoLink, FootnoteRef, HardBreak, and
// SoftBreak.
type Inline interface {
	Node
	inlineNode()
}

type baseSpan struct {
	span Span
}

func (b baseSpan) Span() Span { return b.span }

// ListKind discriminates List.Kind.
type ListKind uint8

const (
	Unordered ListKind = iota
	Ordered
)

// Heading is a "#" through "######" block.
type Heading struct {
	baseSpan
	Level   int
	Content []Inline
}

func (*Heading) blockNode() {}

// Paragraph is a run of consecutive non-blank lines that classify as
// nothing else.
type Paragraph struct {
	baseSpan
	Content []Inline
}

func (*Paragraph) blockNode() {}

// List is a "::list" fenced block.
type List struct {
	baseSpan
	Kind  ListKind
	Start *uint64
	Items []*ListItem
}

func (*List) blockNode() {}

// ListItem is one "- " entry of a List.
type ListItem struct {
	baseSpan
	Blocks []Block
}

func (*ListItem) blockNode() {}

// CodeBlock is a fenced "```" region.
type CodeBlock struct {
	baseSpan
	Lang    string
	Content string
}

func (*CodeBlock) blockNode() {}

// Callout is a "::callout" fenced block.
type Callout struct {
	baseSpan
	Kind   string
	Title  string
	Blocks []Block
}

func (*Callout) blockNode() {}

// Quote is a "::quote" fenced block.
type Quote struct {
	baseSpan
	Blocks []Block
}

func (*Quote) blockNode() {}

// Figure is a "::figure" fenced block.
type Figure struct {
	baseSpan
	Src     string
	Alt     string
	Caption string
}

func (*Figure) blockNode() {}

// TableCell is one cell of a TableRow.
type TableCell struct {
	baseSpan
	Content []Inline
}

// TableRow is one row of a Table.
type TableRow struct {
	baseSpan
	Cells  []TableCell
	Header bool
}

// Table is a "::table" fenced block.
type Table struct {
	baseSpan
	Rows []TableRow
}

func (*Table) blockNode() {}

// FootnoteDef is one "[^label]:" entry of a Footnotes block.
type FootnoteDef struct {
	baseSpan
	Label  string
	Blocks []Block
}

// Footnotes is a "::footnotes" fenced block.
type Footnotes struct {
	baseSpan
	Defs []FootnoteDef
}

func (*Footnotes) blockNode() {}

// MathBlock is a "::math" fenced block.
type MathBlock struct {
	baseSpan
	Display bool
	Content string
}

func (*MathBlock) blockNode() {}

// ThematicBreak is a "---" line outside the metadata-first position.
type ThematicBreak struct {
	baseSpan
}

func (*ThematicBreak) blockNode() {}

// HtmlBlock is a block of raw HTML, present only when ModuleHTML is active.
type HtmlBlock struct {
	baseSpan
	Content string
}

func (*HtmlBlock) blockNode() {}

// RawBlock carries a region the parser could not make sense of. It only
// ever appears as a product of error recovery.
type RawBlock struct {
	baseSpan
	Content string
}

func (*RawBlock) blockNode() {}

// Text is a run of plain inline content.
type Text struct {
	baseSpan
	Content string
}

func (*Text) inlineNode() {}

// Emphasis is a single-marker-width "*…*" run.
type Emphasis struct {
	baseSpan
	Content []Inline
}

func (*Emphasis) inlineNode() {}

// Strong is a double-marker-width "**…**" run.
type Strong struct {
	baseSpan
	Content []Inline
}

func (*Strong) inlineNode() {}

// Strikethrough is a "~~…~~" run, present only when ModuleStrikethrough is
// active.
type Strikethrough struct {
	baseSpan
	Content []Inline
}

func (*Strikethrough) inlineNode() {}

// CodeSpan is a backtick-delimited inline code run.
type CodeSpan struct {
	baseSpan
	Content string
}

func (*CodeSpan) inlineNode() {}

// Link is a "[[label|url]]" inline.
type Link struct {
	baseSpan
	Label []Inline
	URL   string
	Title string
}

func (*Link) inlineNode() {}

// AutoLink is a "<scheme:…>" inline, present only when ModuleAutolink is
// active.
type AutoLink struct {
	baseSpan
	URL string
}

func (*AutoLink) inlineNode() {}

// FootnoteRef is a "[^label]" inline reference, present only when
// ModuleFootnotes is active.
type FootnoteRef struct {
	baseSpan
	Label string
}

func (*FootnoteRef) inlineNode() {}

// HardBreak is a line break forced by a trailing two-space sequence.
type HardBreak struct {
	baseSpan
}

func (*HardBreak) inlineNode() {}

// SoftBreak is an ordinary line break within a paragraph.
type SoftBreak struct {
	baseSpan
}

func (*SoftBreak) inlineNode() {}

// Metadata is the parsed "--- meta ---" block, if present. It is always the
// first child of Document when non-nil.
type Metadata struct {
	baseSpan
	Attrs AttrMap
}

// Document is the root of a parsed source buffer.
type Document struct {
	baseSpan
	Profile  Profile
	Modules  Module
	Metadata *Metadata
	Blocks   []Block
}

// children returns the direct descendants of n for traversal purposes. It
// is the single place that understands every concrete node type, so Walk
// never needs type-specific Child/ChildCount methods.
func children(n Node) []Node {
	switch n := n.(type) {
	case *Document:
		out := make([]Node, 0, len(n.Blocks)+1)
		if n.Metadata != nil {
			out = append(out, n.Metadata)
		}
		for _, b := range n.Blocks {
			out = append(out, b)
		}
		return out
	case *Heading:
		return inlinesToNodes(n.Content)
	case *Paragraph:
		return inlinesToNodes(n.Content)
	case *List:
		out := make([]Node, len(n.Items))
		for i, it := range n.Items {
			out[i] = it
		}
		return out
	case *ListItem:
		return blocksToNodes(n.Blocks)
	case *Callout:
		return blocksToNodes(n.Blocks)
	case *Quote:
		return blocksToNodes(n.Blocks)
	case *Table:
		out := make([]Node, 0, len(n.Rows))
		for i := range n.Rows {
			out = append(out, &n.Rows[i])
		}
		return out
	case *TableRow:
		out := make([]Node, 0, len(n.Cells))
		for i := range n.Cells {
			out = append(out, &n.Cells[i])
		}
		return out
	case *TableCell:
		return inlinesToNodes(n.Content)
	case *Footnotes:
		out := make([]Node, 0, len(n.Defs))
		for i := range n.Defs {
			out = append(out, &n.Defs[i])
		}
		return out
	case *FootnoteDef:
		return blocksToNodes(n.Blocks)
	case *Emphasis:
		return inlinesToNodes(n.Content)
	case *Strong:
		return inlinesToNodes(n.Content)
	case *Strikethrough:
		return inlinesToNodes(n.Content)
	case *Link:
		return inlinesToNodes(n.Label)
	default:
		return nil
	}
}

func blocksToNodes(bs []Block) []Node {
	out := make([]Node, len(bs))
	for i, b := range bs {
		out[i] = b
	}
	return out
}

func inlinesToNodes(is []Inline) []Node {
	out := make([]Node, len(is))
	for i, n := range is {
		out[i] = n
	}
	return out
}
