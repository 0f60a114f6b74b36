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

// scanTableRowStart recognizes the leading '|' of a pipe-table row
// (spec.md §4.D). The Column() == 0 guard is what tells a row-opening '|'
// apart from an ordinary mid-row cell separator (scanTableCellEnd handles
// those); a real host's grammar never offers this production except at a
// genuine line start, so this mirrors that rather than leaning on the
// valid set to rule out every mid-row pipe. Row classification itself is
// the scanner's own forward-looking state, not something the valid set
// hands it (spec.md §4.I's note): a row classified TABLE_HEADER_BEGIN sets
// flagTableSeparatorNext, which forces the very next row to classify as
// TABLE_SEPARATOR_BEGIN regardless of what else might be valid there, and
// the flag is cleared once that separator row actually commits.
func (s *Scanner) scanTableRowStart(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if l.Lookahead() != '|' || l.Column() != 0 {
		return false
	}

	if s.flags.has(flagTableSeparatorNext) {
		if !valid.Has(TABLE_SEPARATOR_BEGIN) {
			return false
		}
		l.advance()
		lexer.MarkEnd()
		if !s.looksLikeTableSeparator(l) {
			return false
		}
		s.flags.clear(flagTableSeparatorNext)
		return emitZeroWidth(lexer, TABLE_SEPARATOR_BEGIN)
	}

	l.advance()
	if valid.Has(TABLE_HEADER_BEGIN) {
		s.openBlocks.Push(TableRowKind, 0)
		s.flags.set(flagTableSeparatorNext)
		return emit(lexer, TABLE_HEADER_BEGIN)
	}
	if valid.Has(TABLE_ROW_BEGIN) {
		return emit(lexer, TABLE_ROW_BEGIN)
	}
	return false
}

// looksLikeTableSeparator reports whether the rest of the current line
// contains only the characters a separator row ("|---|:--:|") may use.
func (s *Scanner) looksLikeTableSeparator(l lexWrapper) bool {
	for {
		switch l.Lookahead() {
		case '-', ':', ' ', '\t', '|':
			l.advance()
		default:
			return l.isBlank()
		}
	}
}

// scanTableCaption recognizes "^ " opening a table caption (spec.md §4.D).
func (s *Scanner) scanTableCaption(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if l.Lookahead() != '^' || !valid.Has(TABLE_CAPTION_BEGIN) {
		return false
	}
	lexer.MarkEnd()
	l.advance()
	if l.Lookahead() != ' ' {
		return false
	}
	l.advance()
	s.openBlocks.Push(TableCaptionKind, 0)
	return emit(lexer, TABLE_CAPTION_BEGIN)
}

// scanTableCellEnd marks the boundary between two cells of an open table
// row or caption; the pipe character itself is left for the grammar's own
// literal token, matching the zero-width-delimiter convention used
// throughout this package.
func (s *Scanner) scanTableCellEnd(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	top := s.openBlocks.Peek()
	if top.Kind != TableRowKind && top.Kind != TableCaptionKind {
		return false
	}
	if l.Lookahead() != '|' || !valid.Has(TABLE_CELL_END) || s.openInline.Len() != 0 {
		return false
	}
	lexer.MarkEnd()
	return emitZeroWidth(lexer, TABLE_CELL_END)
}
