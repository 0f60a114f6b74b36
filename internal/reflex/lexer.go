// Copyright 2024 The Djot Scanner Authors
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

// Package reflex is a standalone implementation of djot.dev/scanner's
// Lexer interface, driven directly off a plain string rather than a real
// host parser's input buffer. It exists so this package's tests can run
// djotscan.Scanner end to end without tree-sitter present.
package reflex

import (
	"unicode/utf8"

	"go4.org/bytereplacer"
	"golang.org/x/text/width"

	"djot.dev/scanner"
)

// nulReplacer mirrors how a real host parser is required to present its
// input: the NUL byte is never a valid lookahead value (spec.md's host
// contract reserves 0 for EOF), so any embedded NUL is substituted with
// U+FFFD before scanning ever sees it.
var nulReplacer = bytereplacer.New("\x00", "�")

// Token is one emitted token, recorded for test assertions.
type Token struct {
	Kind       djotscan.TokenKind
	Start, End int
}

// Lexer is a djotscan.Lexer over an in-memory string.
type Lexer struct {
	input  []byte
	pos    int
	col    uint32
	endPos int
	result djotscan.TokenKind

	Tokens []Token
}

// New returns a Lexer positioned at the start of input.
func New(input string) *Lexer {
	return &Lexer{
		input: nulReplacer.Replace([]byte(input)),
	}
}

// Lookahead returns the rune at the current position, or 0 at EOF.
func (l *Lexer) Lookahead() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return r
}

// EOF reports whether the lexer has reached the end of input.
func (l *Lexer) EOF() bool {
	return l.pos >= len(l.input)
}

// Column reports the current tab-expanded, wide-rune-aware column on the
// current line. Tabs advance to the next multiple of 4; East-Asian wide
// runes (spec.md does not mandate this, but a faithful host lexer tracks
// display column, not byte or rune count) count as 2 columns.
func (l *Lexer) Column() uint32 {
	return l.col
}

// Advance consumes the current lookahead rune. skipWhitespace only
// affects a real host's error-recovery heuristics and has no observable
// effect on this in-memory lexer.
func (l *Lexer) Advance(skipWhitespace bool) {
	if l.pos >= len(l.input) {
		return
	}
	r, size := utf8.DecodeRune(l.input[l.pos:])
	l.pos += size
	switch {
	case r == '\n':
		l.col = 0
	case r == '\t':
		l.col += 4 - (l.col % 4)
	case runeWidth(r) == 2:
		l.col += 2
	default:
		l.col++
	}
}

// runeWidth reports the display column width of r: 2 for East-Asian wide
// and fullwidth runes, 1 otherwise.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// MarkEnd snapshots the current byte position as the pending token's end.
func (l *Lexer) MarkEnd() {
	l.endPos = l.pos
}

// SetResultSymbol records which token the scanner emitted.
func (l *Lexer) SetResultSymbol(kind djotscan.TokenKind) {
	l.result = kind
}

// Scan drives s.Scan at the lexer's current position, appending the
// resulting token to l.Tokens on success and advancing past it. It
// reports whether a token was produced.
//
// A false return reverts the cursor to where the call started, regardless
// of how far s.Scan advanced it while exploring: this mirrors a real host,
// which discards the lexer state of any alternative the generated grammar
// ends up not taking, and it is what lets dispatchers in this package
// consume speculatively without tracking their own rewind point.
func (l *Lexer) Scan(s *djotscan.Scanner, valid djotscan.TokenSet) bool {
	start := l.pos
	startCol := l.col
	l.endPos = l.pos
	if !s.Scan(l, valid) {
		l.pos = start
		l.col = startCol
		return false
	}
	l.Tokens = append(l.Tokens, Token{Kind: l.result, Start: start, End: l.endPos})
	if l.pos != l.endPos {
		// Rewind to the token's end and recompute Column for it by
		// replaying that position's line from its start.
		lineStart := l.endPos
		for lineStart > 0 && l.input[lineStart-1] != '\n' {
			lineStart--
		}
		l.pos, l.col = lineStart, 0
		for l.pos < l.endPos {
			l.Advance(false)
		}
	}
	return true
}
