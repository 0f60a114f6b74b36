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

// scanVerbatimContent consumes the literal text of an open inline verbatim
// span up to (but not including) the next run of exactly as many backticks
// as opened it, or a newline. Shorter and longer runs are content. The host's VERBATIM_END production (scanBacktick,
// in codeblock.go) owns the delimiter itself; this rule only owns the
// plain bytes between delimiters, mirroring how the real tree-sitter-djot
// inline scanner keeps a dedicated content token distinct from the
// delimiters around it.
//
// The lexer only exposes one rune of lookahead (spec.md §2), so a
// shorter-than-closing backtick run can only be told apart from the real
// closer by actually advancing through it. This rule locks its end
// position with MarkEnd after every rune it commits to as content; when it
// finally finds a long-enough run it stops extending that mark, so the
// run itself stays unconsumed for the next Scan call even though the
// lexer cursor briefly ran past where the token ends.
func (s *Scanner) scanVerbatimContent(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	top := s.openInline.Peek()
	if top.Kind != VerbatimKind || !valid.Has(VERBATIM_CONTENT) {
		return false
	}
	if l.EOF() || l.Lookahead() == '\n' {
		return false
	}

	lexer.MarkEnd()
	consumedAny := false
	for {
		if l.EOF() || l.Lookahead() == '\n' {
			break
		}
		if l.Lookahead() == '`' {
			run := l.countRun('`')
			if run == int(top.Datum) {
				break
			}
			consumedAny = true
			lexer.MarkEnd()
			continue
		}
		l.advance()
		consumedAny = true
		lexer.MarkEnd()
	}
	if !consumedAny {
		return false
	}
	return emitZeroWidth(lexer, VERBATIM_CONTENT)
}
