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

package djotscan

// Lexer is the cursor the host parser supplies (spec.md §6). It is the only
// collaborator interface this package requires: the host owns the input
// buffer, the scanner only ever looks at lookahead and asks for advances.
//
// Implementations are read/write exactly the way tree-sitter's TSLexer is:
// Lookahead and Column are read-only views of the current position, Advance
// moves it forward, MarkEnd snapshots it as the pending token's end, and
// ResultSymbol is the only thing the scanner ever writes.
type Lexer interface {
	// Lookahead returns the current UTF-8 scalar value, or 0 at EOF.
	Lookahead() rune
	// EOF reports whether the lexer has reached the end of input.
	EOF() bool
	// Column returns the current column (tab-expanded) on the current line.
	Column() uint32
	// Advance consumes the current lookahead rune. If skipWhitespace is
	// true, the host is told this byte may be treated as insignificant
	// whitespace for error-recovery purposes; it does not change what
	// Advance consumes.
	Advance(skipWhitespace bool)
	// MarkEnd snapshots the current position as the end of the token being
	// built. Scan must call this before returning true.
	MarkEnd()
	// SetResultSymbol records which token the scanner is emitting.
	SetResultSymbol(TokenKind)
}

// lexWrapper adds the CR-swallowing behavior spec.md §4.A requires ("a
// wrapper so all higher code sees LF-only") and the small counting helpers
// every dispatcher needs, without requiring every call site to duplicate
// the \r-skipping logic.
type lexWrapper struct {
	Lexer
}

// advance consumes one rune, transparently swallowing a following '\r' so
// the rest of the scanner only ever observes '\n' as a line ending.
func (l lexWrapper) advance() {
	l.Advance(false)
	if l.Lookahead() == '\r' {
		l.Advance(false)
	}
}

// advanceSkip is advance, but marks the consumed byte as insignificant
// whitespace for the host's error-recovery heuristics.
func (l lexWrapper) advanceSkip() {
	l.Advance(true)
	if l.Lookahead() == '\r' {
		l.Advance(true)
	}
}

// countRun consumes and counts a run of consecutive c runes.
func (l lexWrapper) countRun(c rune) int {
	n := 0
	for !l.EOF() && l.Lookahead() == c {
		l.advance()
		n++
	}
	return n
}

// countWhitespace consumes a run of spaces and tabs, returning the column
// delta (tabs advance to the next multiple of 4 columns).
func (l lexWrapper) countWhitespace() uint32 {
	start := l.Column()
	for !l.EOF() && (l.Lookahead() == ' ' || l.Lookahead() == '\t') {
		l.advanceSkip()
	}
	return l.Column() - start
}

// matchLiteral consumes exactly the given byte sequence if the upcoming
// input matches it rune-for-rune and reports true. Otherwise it reports
// false, leaving the lexer advanced past whatever prefix of s did match.
// s must contain only ASCII bytes.
func (l lexWrapper) matchLiteral(s string) bool {
	// Tree-sitter lexers expose no lookahead beyond one rune, so matching a
	// literal can only ever consume speculatively; failing a later rune in
	// the host's model still leaves input advanced. Dispatchers therefore
	// only call matchLiteral in positions where a partial, failed match is
	// already a scan failure for the caller (see frontmatter.go).
	for i := 0; i < len(s); i++ {
		if l.EOF() || l.Lookahead() != rune(s[i]) {
			return false
		}
		l.advance()
	}
	return true
}

// isBlank reports whether the rest of the current line is empty: the lexer
// is at EOF or its lookahead is a newline.
func (l lexWrapper) isBlank() bool {
	return l.EOF() || l.Lookahead() == '\n'
}
