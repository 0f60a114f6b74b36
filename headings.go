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

// scanHeading implements spec.md §4.D's heading algorithm. This package
// picks the consolidated design spec.md's open questions call for: a
// single HEADING_BEGIN/HEADING_CONTINUATION pair carrying the level as
// Block.Datum, rather than six historical per-level tokens.
func (s *Scanner) scanHeading(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	top := s.openBlocks.Peek()
	lexer.MarkEnd() // zero-width fallback position, see emitZeroWidth.

	if l.Lookahead() == '#' {
		level := l.countRun('#')
		hasSpace := l.Lookahead() == ' '
		if level < 1 || level > 6 || !hasSpace {
			return false
		}

		switch {
		case top.Kind == HeadingKind && int(top.Datum) == level:
			// 1. Continuing a heading of the same level.
			if !valid.Has(HEADING_CONTINUATION) {
				return false
			}
			l.advance()
			return emit(lexer, HEADING_CONTINUATION)

		case top.Kind == HeadingKind && int(top.Datum) != level && s.openInline.Len() == 0:
			// 2. A heading of a different level: close it, re-enter next pass.
			if !valid.Has(BLOCK_CLOSE) {
				return false
			}
			s.openBlocks.Pop()
			s.openInline.Reset()
			return emitZeroWidth(lexer, BLOCK_CLOSE)

		case top.Kind == SectionKind && int(top.Datum) >= level:
			// 3. The enclosing section is too deep for this level; unwind
			// it before opening a new one.
			if !valid.Has(BLOCK_CLOSE) {
				return false
			}
			s.openBlocks.Pop()
			return emitZeroWidth(lexer, BLOCK_CLOSE)

		default:
			// 3. Open a new heading, wrapping it in a fresh section. Any
			// section still on top here is shallower than level (the case
			// above unwound deeper ones), so the new section nests inside it.
			if !valid.Has(HEADING_BEGIN) {
				return false
			}
			l.advance() // consume the separating space
			if top.Kind != SectionKind || int(top.Datum) < level {
				s.openBlocks.Push(SectionKind, uint8(level))
			}
			s.openBlocks.Push(HeadingKind, uint8(level))
			return emit(lexer, HEADING_BEGIN)
		}
	}

	// 4. No '#' scanned: lazy continuation, or close on blankline/EOF.
	if top.Kind == HeadingKind {
		if l.isBlank() {
			if !valid.Has(BLOCK_CLOSE) {
				return false
			}
			s.openBlocks.Pop()
			s.openInline.Reset()
			return emitZeroWidth(lexer, BLOCK_CLOSE)
		}
		if valid.Has(HEADING_CONTINUATION) {
			return emitZeroWidth(lexer, HEADING_CONTINUATION)
		}
	}
	return false
}
