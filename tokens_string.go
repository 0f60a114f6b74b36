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

import "strconv"

// _TokenKind_name holds one entry per TokenKind, in declaration order.
//
// This is a hand-maintained stand-in for `stringer -type=TokenKind`: the
// go:generate directive in tokens.go documents the intent, but nothing in
// this exercise ever runs the generator, and stringer's packed
// name-plus-offset-table form is too easy to get byte-perfectly wrong by
// hand. A plain parallel slice keeps the same public API (TokenKind.String)
// without that risk.
var _TokenKind_name = [...]string{
	"ERROR",
	"BLOCK_CLOSE",
	"CLOSE_PARAGRAPH",
	"NEWLINE",
	"NEWLINE_INLINE",
	"EOF_OR_NEWLINE",
	"BLOCK_QUOTE_BEGIN",
	"BLOCK_QUOTE_CONTINUATION",
	"HEADING_BEGIN",
	"HEADING_CONTINUATION",
	"DIV_BEGIN",
	"DIV_END",
	"CODE_BLOCK_BEGIN",
	"CODE_BLOCK_END",
	"LIST_MARKER_DASH",
	"LIST_MARKER_STAR",
	"LIST_MARKER_PLUS",
	"LIST_MARKER_TASK_BEGIN",
	"LIST_MARKER_DEFINITION",
	"LIST_MARKER_DECIMAL_PERIOD",
	"LIST_MARKER_DECIMAL_PAREN",
	"LIST_MARKER_DECIMAL_PARENS",
	"LIST_MARKER_LOWER_ALPHA_PERIOD",
	"LIST_MARKER_LOWER_ALPHA_PAREN",
	"LIST_MARKER_LOWER_ALPHA_PARENS",
	"LIST_MARKER_UPPER_ALPHA_PERIOD",
	"LIST_MARKER_UPPER_ALPHA_PAREN",
	"LIST_MARKER_UPPER_ALPHA_PARENS",
	"LIST_MARKER_LOWER_ROMAN_PERIOD",
	"LIST_MARKER_LOWER_ROMAN_PAREN",
	"LIST_MARKER_LOWER_ROMAN_PARENS",
	"LIST_MARKER_UPPER_ROMAN_PERIOD",
	"LIST_MARKER_UPPER_ROMAN_PAREN",
	"LIST_MARKER_UPPER_ROMAN_PARENS",
	"LIST_ITEM_END",
	"THEMATIC_BREAK_DASH",
	"THEMATIC_BREAK_STAR",
	"FRONTMATTER_MARKER",
	"FOOTNOTE_MARK_BEGIN",
	"FOOTNOTE_END",
	"LINK_REF_DEF_MARK_BEGIN",
	"LINK_REF_DEF_LABEL_END",
	"TABLE_HEADER_BEGIN",
	"TABLE_SEPARATOR_BEGIN",
	"TABLE_ROW_BEGIN",
	"TABLE_CELL_END",
	"TABLE_ROW_END_NEWLINE",
	"TABLE_CAPTION_BEGIN",
	"TABLE_CAPTION_END",
	"BLOCK_ATTRIBUTE_BEGIN",
	"INLINE_COMMENT_BEGIN",
	"HARD_LINE_BREAK",
	"EMPHASIS_MARK_BEGIN",
	"EMPHASIS_END",
	"STRONG_MARK_BEGIN",
	"STRONG_END",
	"SUPERSCRIPT_MARK_BEGIN",
	"SUPERSCRIPT_END",
	"SUBSCRIPT_MARK_BEGIN",
	"SUBSCRIPT_END",
	"HIGHLIGHTED_MARK_BEGIN",
	"HIGHLIGHTED_END",
	"INSERT_MARK_BEGIN",
	"INSERT_END",
	"DELETE_MARK_BEGIN",
	"DELETE_END",
	"PARENS_SPAN_MARK_BEGIN",
	"PARENS_SPAN_END",
	"CURLY_BRACKET_SPAN_MARK_BEGIN",
	"CURLY_BRACKET_SPAN_END",
	"SQUARE_BRACKET_SPAN_MARK_BEGIN",
	"SQUARE_BRACKET_SPAN_END",
	"VERBATIM_BEGIN",
	"VERBATIM_CONTENT",
	"VERBATIM_END",
}

func _() {
	// An "invalid array index" compiler error here signals that TokenKind's
	// constants and this table have drifted apart.
	var x [1]struct{}
	_ = x[int(tokenCount)-len(_TokenKind_name)]
}

func (k TokenKind) String() string {
	if int(k) >= len(_TokenKind_name) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return _TokenKind_name[k]
}
