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

//go:generate stringer -type=TokenKind -output=tokens_string.go

// TokenKind is a flat enumeration of the token codes this scanner can emit.
// Numeric values have no meaning outside this package: a real host parser
// binds its own `externals` declaration to whatever values it generates, and
// TokenSet only ever indexes by TokenKind, never by the raw integer.
type TokenKind uint8

const (
	// ERROR signals that the grammar is in error recovery; see errors.go.
	ERROR TokenKind = iota

	// Block-close cascade and newline family (component F, I).
	BLOCK_CLOSE
	CLOSE_PARAGRAPH
	NEWLINE
	NEWLINE_INLINE
	EOF_OR_NEWLINE

	// Block quote.
	BLOCK_QUOTE_BEGIN
	BLOCK_QUOTE_CONTINUATION

	// Headings.
	HEADING_BEGIN
	HEADING_CONTINUATION

	// Divs.
	DIV_BEGIN
	DIV_END

	// Code blocks.
	CODE_BLOCK_BEGIN
	CODE_BLOCK_END

	// Lists: family markers, task variant, and the shared item/list closers.
	LIST_MARKER_DASH
	LIST_MARKER_STAR
	LIST_MARKER_PLUS
	LIST_MARKER_TASK_BEGIN
	LIST_MARKER_DEFINITION
	LIST_MARKER_DECIMAL_PERIOD
	LIST_MARKER_DECIMAL_PAREN
	LIST_MARKER_DECIMAL_PARENS
	LIST_MARKER_LOWER_ALPHA_PERIOD
	LIST_MARKER_LOWER_ALPHA_PAREN
	LIST_MARKER_LOWER_ALPHA_PARENS
	LIST_MARKER_UPPER_ALPHA_PERIOD
	LIST_MARKER_UPPER_ALPHA_PAREN
	LIST_MARKER_UPPER_ALPHA_PARENS
	LIST_MARKER_LOWER_ROMAN_PERIOD
	LIST_MARKER_LOWER_ROMAN_PAREN
	LIST_MARKER_LOWER_ROMAN_PARENS
	LIST_MARKER_UPPER_ROMAN_PERIOD
	LIST_MARKER_UPPER_ROMAN_PAREN
	LIST_MARKER_UPPER_ROMAN_PARENS
	LIST_ITEM_END

	// Thematic break.
	THEMATIC_BREAK_DASH
	THEMATIC_BREAK_STAR

	// Frontmatter.
	FRONTMATTER_MARKER

	// Footnotes.
	FOOTNOTE_MARK_BEGIN
	FOOTNOTE_END

	// Link reference definitions.
	LINK_REF_DEF_MARK_BEGIN
	LINK_REF_DEF_LABEL_END

	// Tables.
	TABLE_HEADER_BEGIN
	TABLE_SEPARATOR_BEGIN
	TABLE_ROW_BEGIN
	TABLE_CELL_END
	TABLE_ROW_END_NEWLINE
	TABLE_CAPTION_BEGIN
	TABLE_CAPTION_END

	// Attributes & comments.
	BLOCK_ATTRIBUTE_BEGIN
	INLINE_COMMENT_BEGIN

	// Hard line break.
	HARD_LINE_BREAK

	// Inline spans: one BEGIN/END pair per kind (component E).
	EMPHASIS_MARK_BEGIN
	EMPHASIS_END
	STRONG_MARK_BEGIN
	STRONG_END
	SUPERSCRIPT_MARK_BEGIN
	SUPERSCRIPT_END
	SUBSCRIPT_MARK_BEGIN
	SUBSCRIPT_END
	HIGHLIGHTED_MARK_BEGIN
	HIGHLIGHTED_END
	INSERT_MARK_BEGIN
	INSERT_END
	DELETE_MARK_BEGIN
	DELETE_END
	PARENS_SPAN_MARK_BEGIN
	PARENS_SPAN_END
	CURLY_BRACKET_SPAN_MARK_BEGIN
	CURLY_BRACKET_SPAN_END
	SQUARE_BRACKET_SPAN_MARK_BEGIN
	SQUARE_BRACKET_SPAN_END

	// Verbatim (component G), shared by inline spans and fenced code.
	VERBATIM_BEGIN
	VERBATIM_CONTENT
	VERBATIM_END

	// tokenCount is a sentinel, not a real token; it sizes TokenSet.
	tokenCount
)

// listMarkerTokens maps each of the 20 list marker tokens to the list
// BlockKind it opens. This is the total function spec.md's design notes
// (§9) require: every list marker token has exactly one corresponding list
// block kind, and vice versa.
var listMarkerTokens = map[TokenKind]BlockKind{
	LIST_MARKER_DASH:               DashListKind,
	LIST_MARKER_STAR:               StarListKind,
	LIST_MARKER_PLUS:               PlusListKind,
	LIST_MARKER_TASK_BEGIN:         TaskListKind,
	LIST_MARKER_DEFINITION:         DefinitionListKind,
	LIST_MARKER_DECIMAL_PERIOD:     DecimalPeriodListKind,
	LIST_MARKER_DECIMAL_PAREN:      DecimalParenListKind,
	LIST_MARKER_DECIMAL_PARENS:     DecimalParensListKind,
	LIST_MARKER_LOWER_ALPHA_PERIOD: LowerAlphaPeriodListKind,
	LIST_MARKER_LOWER_ALPHA_PAREN:  LowerAlphaParenListKind,
	LIST_MARKER_LOWER_ALPHA_PARENS: LowerAlphaParensListKind,
	LIST_MARKER_UPPER_ALPHA_PERIOD: UpperAlphaPeriodListKind,
	LIST_MARKER_UPPER_ALPHA_PAREN:  UpperAlphaParenListKind,
	LIST_MARKER_UPPER_ALPHA_PARENS: UpperAlphaParensListKind,
	LIST_MARKER_LOWER_ROMAN_PERIOD: LowerRomanPeriodListKind,
	LIST_MARKER_LOWER_ROMAN_PAREN:  LowerRomanParenListKind,
	LIST_MARKER_LOWER_ROMAN_PARENS: LowerRomanParensListKind,
	LIST_MARKER_UPPER_ROMAN_PERIOD: UpperRomanPeriodListKind,
	LIST_MARKER_UPPER_ROMAN_PAREN:  UpperRomanParenListKind,
	LIST_MARKER_UPPER_ROMAN_PARENS: UpperRomanParensListKind,
}

// TokenSet is the host parser's bit-set of currently-valid tokens (spec.md
// §6). It is sized at compile time from the TokenKind enumeration, rather
// than a fixed word count, so adding a token can never silently truncate it.
type TokenSet [(tokenCount + 63) / 64]uint64

// NewTokenSet builds a TokenSet containing exactly the given tokens.
func NewTokenSet(tokens ...TokenKind) TokenSet {
	var s TokenSet
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// AllTokens returns a TokenSet containing every token this scanner knows
// about except ERROR, which a real grammar only ever offers during error
// recovery, never alongside a normal token set. Test harnesses that don't
// model the generated grammar's actual valid-symbol computation use this
// as a permissive stand-in. Many choices in Scan are gated on the valid
// set, so with every token offered the earliest rule in dispatch order
// wins: CLOSE_PARAGRAPH, for example, is emitted before any '#', ':', '{'
// or '>' and at every line end, since the scanner keeps no paragraph
// state of its own.
func AllTokens() TokenSet {
	var s TokenSet
	for t := TokenKind(1); t < tokenCount; t++ {
		s.Add(t)
	}
	return s
}

// Add puts t in the set.
func (s *TokenSet) Add(t TokenKind) {
	s[t/64] |= 1 << (t % 64)
}

// Has reports whether t is a member of the set.
func (s TokenSet) Has(t TokenKind) bool {
	return s[t/64]&(1<<(t%64)) != 0
}

// HasAny reports whether any of the given tokens is a member of the set.
func (s TokenSet) HasAny(tokens ...TokenKind) bool {
	for _, t := range tokens {
		if s.Has(t) {
			return true
		}
	}
	return false
}
