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

// scanBlockQuote implements the block-quote marker family (spec.md §4.D).
// A marker is "> " or ">\n". At most one marker is consumed per
// invocation; nested markers ("> > >" on one line) are consumed by
// successive invocations, using blockQuoteLevel as the memo of how many
// have already been accounted for on the current line.
func (s *Scanner) scanBlockQuote(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if l.Lookahead() != '>' {
		return false
	}
	if !valid.HasAny(BLOCK_QUOTE_BEGIN, BLOCK_QUOTE_CONTINUATION, CLOSE_PARAGRAPH) {
		return false
	}

	l.advance() // consume '>'
	if l.Lookahead() == ' ' {
		l.advance()
	} else if l.Lookahead() != '\n' && !l.EOF() {
		// Not a valid marker shape ("> " or ">\n"); the '>' was plain text.
		return false
	}

	newLevel := s.blockQuoteLevel + 1

	if l.isBlank() && valid.Has(CLOSE_PARAGRAPH) && s.openInline.Len() == 0 {
		// An empty quoted line closes any open paragraph inside the quote,
		// without changing the stack; blockQuoteLevel still counts the
		// marker just consumed.
		s.blockQuoteLevel = newLevel
		return emit(lexer, CLOSE_PARAGRAPH)
	}

	if d, ok := s.openBlocks.FindWithDatum(BlockQuoteKind, newLevel); ok && d == 1 {
		// Continuation of the innermost already-open quote at this depth.
		s.blockQuoteLevel = newLevel
		return emit(lexer, BLOCK_QUOTE_CONTINUATION)
	}

	s.openBlocks.Push(BlockQuoteKind, newLevel)
	s.blockQuoteLevel = newLevel
	return emit(lexer, BLOCK_QUOTE_BEGIN)
}

// blockQuoteDemoted reports whether the current line, having contributed
// blockQuoteLevel markers so far, supplies fewer markers than some open
// BlockQuote frame requires — the lazy-continuation trigger for
// CLOSE_PARAGRAPH (spec.md §4.D, §4.F).
func (s *Scanner) blockQuoteDemoted() bool {
	for _, f := range s.openBlocks.Frames() {
		if f.Kind == BlockQuoteKind && f.Datum > s.blockQuoteLevel {
			return true
		}
	}
	return false
}

// resetLine is called by the newline dispatcher at every line boundary:
// block_quote_level always resets to 0 on a newline (spec.md §4.D).
func (s *Scanner) resetLine() {
	s.blockQuoteLevel = 0
	s.indent = 0
}
