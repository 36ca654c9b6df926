// Package html provides a permissive, streaming HTML tokenizer and
// parser. It does not implement the full HTML5 tree construction
// automaton: it emulates the parts that govern void elements,
// <script> raw-text content, and implied end tags, and never fails
// on malformed input.
//
// Spec references:
// - HTML5 §12.2.5 Tokenization: https://html.spec.whatwg.org/multipage/parsing.html#tokenization
// - HTML5 §12.1.2 Elements (void elements, optional tags)
package html

import (
	"github.com/dlclark/regexp2"
)

// chunk is the result of a chunker matching at a specific position:
// the number of bytes consumed and the regex's numbered capture
// groups (group 0 is always the whole match).
type chunk struct {
	length   int
	captures []string
}

// group returns the text captured by group n, or "" if the group did
// not participate in the match.
func (c chunk) group(n int) string {
	if n < 0 || n >= len(c.captures) {
		return ""
	}
	return c.captures[n]
}

// chunker is a position-anchored pattern matcher: it matches only at
// the given offset into s, never searching forward. Implemented with
// dlclark/regexp2's `\G` ("contiguous match") anchor, the sticky/
// position-anchored primitive spec.md §9 calls for — something Go's
// standard RE2-based regexp package has no equivalent of.
type chunker struct {
	re *regexp2.Regexp
}

func newChunker(pattern string, opts regexp2.RegexOptions) *chunker {
	return &chunker{re: regexp2.MustCompile(`\G`+pattern, opts)}
}

// match attempts to match the chunker's pattern starting exactly at
// pos. It returns ok=false if the pattern does not match there.
func (c *chunker) match(s string, pos int) (chunk, bool) {
	m, err := c.re.FindStringMatchStartingAt(s, pos)
	if err != nil || m == nil {
		return chunk{}, false
	}
	// \G anchors the match to pos, but guard against a library-level
	// surprise rather than trust the anchor blindly.
	if m.Index != pos {
		return chunk{}, false
	}
	groups := m.Groups()
	captures := make([]string, len(groups))
	for i, g := range groups {
		captures[i] = g.String()
	}
	return chunk{length: m.Length, captures: captures}, true
}

// Chunkers, one per lexical class named in spec.md §4.1. Tag names
// and attribute names are captured with their original case: the
// patterns match case-insensitively, but nothing downstream
// normalizes case (see the void/closed-by-parent/closed-by-sibling
// table lookups in parser.go).
var (
	chunkOpeningTagStart = newChunker(`<((?:[a-zA-Z0-9-]+:)?[a-zA-Z0-9-]+)`, regexp2.IgnoreCase)
	chunkClosingTag      = newChunker(`</((?:[a-zA-Z0-9-]+:)?[a-zA-Z0-9-]+)>`, regexp2.IgnoreCase)
	chunkCommentOpen     = newChunker(`<!--`, regexp2.None)
	chunkCommentBody     = newChunker(`([\s\S]*?)-->`, regexp2.None)
	// Matching on </script> is deliberately case-sensitive: per
	// spec.md §4.1, only the literal lowercase closing tag ends the
	// raw-text body.
	chunkScriptBody   = newChunker(`([\s\S]*?)</script>`, regexp2.None)
	chunkText         = newChunker(`[^<]+`, regexp2.None)
	chunkTagEnd       = newChunker(`\s*(/?>)`, regexp2.None)
	chunkAttributeName = newChunker(`\s+((?:[a-zA-Z0-9_-]+:)?[a-zA-Z0-9_-]+)(\s*=\s*)?`, regexp2.IgnoreCase)
)
