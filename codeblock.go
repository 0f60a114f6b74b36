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

// scanBacktick is the single entry point for every backtick-led construct
// (spec.md §4.D, §4.G): fenced code block open/close, and inline verbatim
// open/close. All four share one rule — a run of N backticks only closes
// a construct opened by a run of exactly N — so they are handled together
// here rather than split across codeblock.go/verbatim.go dispatch points.
func (s *Scanner) scanBacktick(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if l.Lookahead() != '`' {
		return false
	}

	lexer.MarkEnd()
	count := l.countRun('`')
	if count > 255 {
		count = 255
	}

	if top := s.openBlocks.Peek(); top.Kind == CodeBlockKind {
		if count != int(top.Datum) || !l.isBlank() {
			return false
		}
		if !valid.Has(CODE_BLOCK_END) {
			return false
		}
		s.openBlocks.Pop()
		return emit(lexer, CODE_BLOCK_END)
	}

	if valid.Has(CODE_BLOCK_BEGIN) && count >= 3 {
		s.openBlocks.Push(CodeBlockKind, uint8(count))
		return emit(lexer, CODE_BLOCK_BEGIN)
	}

	if top := s.openInline.Peek(); top.Kind == VerbatimKind && count == int(top.Datum) {
		if !valid.Has(VERBATIM_END) {
			return false
		}
		s.openInline.Pop()
		return emit(lexer, VERBATIM_END)
	}

	if valid.Has(VERBATIM_BEGIN) {
		s.openInline.Push(VerbatimKind, uint8(count))
		return emit(lexer, VERBATIM_BEGIN)
	}

	return false
}
