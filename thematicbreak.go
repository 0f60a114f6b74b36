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

// scanThematicBreak recognizes a line made up of 3 or more of the same
// marker character, each optionally separated by single spaces, and
// nothing else (e.g. "---", "- - -", "***"). It is tried before
// scanListMarkerFamily for '-'/'*' so a thematic break always wins over a
// list marker at the same lookahead (spec.md §8 scenario 6): the whole
// line must be read before either can commit, so scanning it here first
// and letting the marker path run on ordinary failure is the only way to
// honor that precedence without re-reading the line twice.
func (s *Scanner) scanThematicBreak(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	marker := l.Lookahead()
	var tok TokenKind
	switch marker {
	case '-':
		tok = THEMATIC_BREAK_DASH
	case '*':
		tok = THEMATIC_BREAK_STAR
	default:
		return false
	}
	if !valid.Has(tok) {
		return false
	}

	lexer.MarkEnd()
	count := 0
	for {
		if l.Lookahead() != marker {
			return false
		}
		l.advance()
		count++
		if l.Lookahead() == ' ' {
			l.advance()
			continue
		}
		break
	}
	if count < 3 {
		return false
	}
	if !l.isBlank() {
		return false
	}
	return emit(lexer, tok)
}
