// Package htmltest provides a test-only helper for checking that the raw
// byte content LiteDoc captures for an HtmlBlock still tokenizes the way a
// real HTML parser expects, standing in for the renderer-side consumer a
// pass-through HTML module does not otherwise have in this repository.
package htmltest

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
)

// TagSequence tokenizes content with a real HTML tokenizer and returns the
// sequence of start/end tag names it finds, lowercased. It stops at the
// first ErrorToken (including a clean EOF).
func TagSequence(content string) []string {
	tok := html.NewTokenizer(bytes.NewReader([]byte(content)))
	var tags []string
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return tags
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := tok.TagName()
			tags = append(tags, string(name))
		}
	}
}

// WellFormed reports whether content tokenizes without the tokenizer
// reporting a syntax error partway through (as opposed to a clean EOF).
func WellFormed(content string) bool {
	tok := html.NewTokenizer(bytes.NewReader([]byte(content)))
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			err := tok.Err()
			return err == nil || err == io.EOF
		}
	}
}
