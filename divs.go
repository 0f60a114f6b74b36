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

// scanColon recognizes the two colon-led constructs spec.md §4.D groups
// together: a run of 3+ colons opening or closing a Div, and a single
// colon marking a definition-list item ("term\n: definition"). Line-start
// positioning is the declarative grammar's job (spec.md §1); this function
// only judges the character content once the grammar has already arrived
// at a block-start position.
func (s *Scanner) scanColon(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if l.Lookahead() != ':' {
		return false
	}

	lexer.MarkEnd()
	count := l.countRun(':')

	if count >= 3 {
		if d, ok := s.openBlocks.FindWithDatum(DivKind, uint8(count)); ok {
			if !valid.HasAny(DIV_END, BLOCK_CLOSE) {
				return false
			}
			tok := s.closeBlocks(d, DIV_END)
			return emit(lexer, tok)
		}
		if !valid.Has(DIV_BEGIN) {
			return false
		}
		s.openBlocks.Push(DivKind, uint8(count))
		return emit(lexer, DIV_BEGIN)
	}

	if count == 1 && l.Lookahead() == ' ' && valid.Has(LIST_MARKER_DEFINITION) {
		return s.dispatchListMarker(lexer, valid, DefinitionListKind, LIST_MARKER_DEFINITION, func() (uint8, bool) {
			startColumn := l.Column() - 1 // the colon already counted above
			l.advance()                   // the single space just checked
			width := l.countWhitespace()
			datum := startColumn + 2
			if width > 0 {
				datum = l.Column()
			}
			if datum > 255 {
				datum = 255
			}
			return uint8(datum), true
		})
	}

	return false
}
