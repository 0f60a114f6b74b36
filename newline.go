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

// closeParagraphImminent reports whether the upcoming line looks like it
// will present some other block-closing construct, so the currently open
// paragraph (with no open inline spans) should be closed first rather than
// continuing as a lazy continuation line (spec.md §4.D, §4.F).
func (s *Scanner) closeParagraphImminent(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if l.isBlank() {
		return true
	}
	if s.blockQuoteDemoted() {
		return true
	}
	if b, _, ok := s.openBlocks.FindList(); ok && uint8(l.Column()) < b.Datum {
		return true
	}
	switch l.Lookahead() {
	case '#', ':', '{', '>':
		return true
	}
	return false
}

// scanHardLineBreak recognizes a backslash immediately before a newline
// (spec.md §4.E), the one inline construct that reaches all the way to
// the line ending itself.
func (s *Scanner) scanHardLineBreak(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if l.Lookahead() != '\\' || !valid.Has(HARD_LINE_BREAK) {
		return false
	}
	lexer.MarkEnd()
	l.advance()
	if l.Lookahead() != '\n' {
		return false
	}
	l.advance()
	return emit(lexer, HARD_LINE_BREAK)
}

// scanNewline is the last-resort dispatch-order step (spec.md §4.I step
// 12): pick whichever of the end-of-line tokens the grammar currently
// offers, in the precedence order TABLE_ROW_END_NEWLINE (closing an open
// table row/caption), NEWLINE_INLINE (a soft break inside a paragraph),
// NEWLINE (an ordinary block-level line boundary), and EOF_OR_NEWLINE
// (accepted as either, used at constructs that tolerate running straight
// into EOF without a trailing blank line).
func (s *Scanner) scanNewline(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	top := s.openBlocks.Peek()

	if (top.Kind == TableRowKind || top.Kind == TableCaptionKind) && valid.Has(TABLE_ROW_END_NEWLINE) {
		if l.Lookahead() != '\n' && !l.EOF() {
			return false
		}
		lexer.MarkEnd()
		if l.Lookahead() == '\n' {
			l.advance()
		}
		s.resetLine()
		return emit(lexer, TABLE_ROW_END_NEWLINE)
	}

	if l.Lookahead() != '\n' {
		if valid.Has(EOF_OR_NEWLINE) && l.EOF() {
			lexer.MarkEnd()
			s.resetLine()
			return emit(lexer, EOF_OR_NEWLINE)
		}
		return false
	}

	if valid.Has(NEWLINE_INLINE) && s.openInline.Len() > 0 {
		lexer.MarkEnd()
		l.advance()
		s.resetLine()
		return emit(lexer, NEWLINE_INLINE)
	}

	if valid.Has(NEWLINE) {
		lexer.MarkEnd()
		l.advance()
		s.resetLine()
		return emit(lexer, NEWLINE)
	}

	if valid.Has(EOF_OR_NEWLINE) {
		lexer.MarkEnd()
		l.advance()
		s.resetLine()
		return emit(lexer, EOF_OR_NEWLINE)
	}

	return false
}
