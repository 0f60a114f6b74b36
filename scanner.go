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

// scannerFlags is the small bit-set carrying the §4.E/§4.6 lookahead
// memoization flags (spec.md §3).
type scannerFlags uint8

const (
	flagBracketStartsInlineLink scannerFlags = 1 << iota
	flagBracketStartsSpan
	flagTableSeparatorNext
	flagFrontmatterOpen
)

func (f *scannerFlags) set(bit scannerFlags)      { *f |= bit }
func (f *scannerFlags) clear(bit scannerFlags)    { *f &^= bit }
func (f scannerFlags) has(bit scannerFlags) bool  { return f&bit != 0 }

// Scanner is the whole of the persisted external-scanner state (spec.md
// §3). The zero value is a valid, empty scanner, matching tree-sitter's
// `create` returning a scanner with empty stacks.
//
// Scanner is not safe for concurrent use: the host drives it from a single
// thread, one call at a time (spec.md §5).
type Scanner struct {
	openBlocks BlockStack
	openInline InlineStack

	// blocksToClose is the pending-BLOCK_CLOSE counter (component I).
	blocksToClose uint8

	blockQuoteLevel uint8
	indent          uint8
	flags           scannerFlags
}

// NewScanner returns a fresh scanner with empty stacks, equivalent to
// tree-sitter's `create`.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Destroy releases any resources held by the scanner. Go's garbage
// collector makes this a no-op; the method exists so the exported surface
// mirrors the host ABI's create/destroy/scan/serialize/deserialize
// quintet (spec.md §6) one-to-one.
func (s *Scanner) Destroy() {}

// emit is the common tail of every successful dispatcher: mark the token's
// end and record which token was produced.
func emit(l Lexer, tok TokenKind) bool {
	l.MarkEnd()
	l.SetResultSymbol(tok)
	return true
}

// emitZeroWidth reports a synthetic, zero-width token (BLOCK_CLOSE,
// CLOSE_PARAGRAPH, and similar delimiters spec.md §2 calls out). Callers
// use this after having already called l.MarkEnd() *before* doing any
// exploratory lookahead, so the recorded end stays at the position where
// lookahead began even though the lexer cursor may have moved further
// while deciding. This is the same trick real tree-sitter external
// scanners use to probe ahead without committing those bytes to the
// emitted token.
func emitZeroWidth(l Lexer, tok TokenKind) bool {
	l.SetResultSymbol(tok)
	return true
}

// Scan attempts to produce exactly one token at the lexer's current
// position. It returns false, with the lexer position and Scanner state
// completely untouched, if no rule in this package can commit here; the
// host then tries another production from its generated table.
//
// The order below is load-bearing (spec.md §4.I): rearranging it changes
// which construct wins at genuinely ambiguous lookaheads (e.g. thematic
// break vs. list marker, or div-close vs. nested-div-open).
func (s *Scanner) Scan(lexer Lexer, valid TokenSet) bool {
	l := lexWrapper{lexer}

	// 1. Grammar recovery takes over unconditionally.
	if valid.Has(ERROR) {
		return emit(lexer, ERROR)
	}

	// 2. Deferred BLOCK_CLOSE cascade, or an eviction at EOF. An
	// under-indented line inside a list is not handled here; it ends the
	// item through scanListItemEnd in step 4.
	if valid.Has(BLOCK_CLOSE) {
		if ok := s.scanBlockClose(l, lexer, valid); ok {
			return true
		}
	}

	// 3. A container-closing marker is imminent and no inline span is open.
	// The scanner keeps no paragraph state: whether a paragraph is open is
	// judged only by CLOSE_PARAGRAPH being in valid.
	if valid.Has(CLOSE_PARAGRAPH) && s.openInline.Len() == 0 && s.closeParagraphImminent(l, lexer, valid) {
		return emit(lexer, CLOSE_PARAGRAPH)
	}

	// 4. Block-level handlers, in the order spec.md §4.I mandates.
	type blockRule func(lexWrapper, Lexer, TokenSet) bool
	blockRules := []blockRule{
		s.scanBacktick,            // code/verbatim begin or end
		s.scanColon,               // div begin/end
		s.scanIndentedContinuation, // indented-content spacer
		s.scanListContinuation,
		s.scanFootnoteContinuation,
		s.scanVerbatimContent,
		s.scanFootnoteEnd,
		s.scanLinkRefDefLabelEnd,
		s.scanListItemEnd,
		s.scanBlockQuote,
		s.scanHeading,
		s.scanCommentEnd,
	}
	for _, rule := range blockRules {
		if rule(l, lexer, valid) {
			return true
		}
	}

	// 5. Per-lookahead-character block starts.
	switch l.Lookahead() {
	case '[':
		if s.scanBracketStart(l, lexer, valid) {
			return true
		}
	case '-', '*', '+':
		if s.scanThematicBreak(l, lexer, valid) {
			return true
		}
		if s.scanListMarkerFamily(l, lexer, valid) {
			return true
		}
	case '|':
		if s.scanTableRowStart(l, lexer, valid) {
			return true
		}
	case '{':
		if s.scanAttributeOrComment(l, lexer, valid) {
			return true
		}
	}

	// 6. Non-whitespace check (frontmatter only fires at column 0 on a
	// line that is exactly "---", or "..." when closing).
	if s.scanFrontmatter(l, lexer, valid) {
		return true
	}

	// 7. Inline span dispatchers.
	if s.scanSpans(l, lexer, valid) {
		return true
	}

	// 8. Ordered-list marker scan (decimal/alpha/roman).
	if s.scanOrderedListMarker(l, lexer, valid) {
		return true
	}

	// 9. Table caption and cell-end.
	if s.scanTableCaption(l, lexer, valid) {
		return true
	}
	if s.scanTableCellEnd(l, lexer, valid) {
		return true
	}

	// 10. Hard line break.
	if s.scanHardLineBreak(l, lexer, valid) {
		return true
	}

	// 11. Close-open-list-if-needed cascade (an open list item meets a line
	// end or EOF that nothing else claimed).
	if s.scanListCloseCascade(l, lexer, valid) {
		return true
	}

	// 12. Newline & EOF.
	if s.scanNewline(l, lexer, valid) {
		return true
	}

	return false
}
