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

// scanAttributeOrComment distinguishes the two '{'-led constructs spec.md
// §4.D groups together: a block attribute, "{...}", whose body the
// declarative grammar parses token by token, and an inline comment,
// "{%...%}", whose body is opaque text the parser never looks inside. The
// difference only shows up at the second character, so both share one
// entry point the way the colon-led constructs share scanColon.
func (s *Scanner) scanAttributeOrComment(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if l.Lookahead() != '{' {
		return false
	}
	lexer.MarkEnd()
	l.advance()

	if l.Lookahead() == '%' {
		if !valid.Has(INLINE_COMMENT_BEGIN) {
			return false
		}
		l.advance()
		for {
			if l.EOF() {
				return false
			}
			if l.Lookahead() == '%' {
				l.advance()
				if l.Lookahead() == '}' {
					l.advance()
					return emit(lexer, INLINE_COMMENT_BEGIN)
				}
				continue
			}
			l.advance()
		}
	}

	if !valid.Has(BLOCK_ATTRIBUTE_BEGIN) {
		return false
	}
	return emit(lexer, BLOCK_ATTRIBUTE_BEGIN)
}

// scanCommentEnd exists for symmetry with the other dispatch-order rules
// (spec.md §4.I); scanAttributeOrComment consumes an inline comment in its
// entirety (there is no content the parser needs split out), so there is
// never a separate closing delimiter left for this to find.
func (s *Scanner) scanCommentEnd(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	return false
}
