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

// scanFrontmatter recognizes the "---" that opens a YAML-ish frontmatter
// block at the very start of a document, and the "---" or "..." that
// closes one. Both directions use the same FRONTMATTER_MARKER token; which
// one is meant is implied entirely by flagFrontmatterOpen, a single bit of
// state that never needs to survive past the matching close (it starts
// clear on NewScanner and on Deserialize of an empty buffer; otherwise it
// travels in the serialized flags byte).
func (s *Scanner) scanFrontmatter(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if !valid.Has(FRONTMATTER_MARKER) || l.Column() != 0 {
		return false
	}

	if s.flags.has(flagFrontmatterOpen) {
		if !l.matchLiteral("---") && !l.matchLiteral("...") {
			return false
		}
		if !l.isBlank() {
			return false
		}
		s.flags.clear(flagFrontmatterOpen)
		return emit(lexer, FRONTMATTER_MARKER)
	}

	if s.openBlocks.Len() != 0 {
		return false
	}
	if !l.matchLiteral("---") || !l.isBlank() {
		return false
	}
	s.flags.set(flagFrontmatterOpen)
	return emit(lexer, FRONTMATTER_MARKER)
}
