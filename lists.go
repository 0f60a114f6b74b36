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

// dispatchListMarker implements the unified three-way list contract of
// spec.md §4.D: continue the innermost list if this marker matches its
// family and datum exactly; otherwise close it (LIST_ITEM_END, zero-width
// so the marker is re-scanned next call) and let the following Scan
// invocation open the new list fresh.
//
// computeDatum does whatever consuming lookahead is needed to measure the
// marker's content-start column. Callers must call lexer.MarkEnd() to lock
// a zero-width fallback position before any lookahead of their own (and
// before calling this function), so closing branches can still report a
// zero-width token regardless of how far computeDatum advances the lexer
// while deciding.
func (s *Scanner) dispatchListMarker(lexer Lexer, valid TokenSet, kind BlockKind, markerToken TokenKind, computeDatum func() (datum uint8, ok bool)) bool {
	datum, ok := computeDatum()
	if !ok {
		return false
	}
	top := s.openBlocks.Peek()

	if top.Kind == kind && top.Datum == datum {
		if !valid.Has(markerToken) {
			return false
		}
		return emit(lexer, markerToken)
	}
	if top.Kind.IsList() {
		if !valid.Has(LIST_ITEM_END) {
			return false
		}
		s.openBlocks.Pop()
		s.openInline.Reset()
		return emitZeroWidth(lexer, LIST_ITEM_END)
	}
	if !valid.Has(markerToken) {
		return false
	}
	s.openBlocks.Push(kind, datum)
	return emit(lexer, markerToken)
}

// scanListMarkerFamily recognizes dash/star/plus markers and their task
// variant (spec.md §4.D). Thematic breaks are tried first by the caller
// (scanner.go) since they take precedence at the same lookahead
// (spec.md §8 scenario 6).
func (s *Scanner) scanListMarkerFamily(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	marker := l.Lookahead()
	var kind BlockKind
	var tok TokenKind
	switch marker {
	case '-':
		kind, tok = DashListKind, LIST_MARKER_DASH
	case '*':
		kind, tok = StarListKind, LIST_MARKER_STAR
	case '+':
		kind, tok = PlusListKind, LIST_MARKER_PLUS
	default:
		return false
	}

	lexer.MarkEnd()

	if task, ok := s.peekTaskMarker(l); ok {
		_ = task
		return s.dispatchListMarker(lexer, valid, TaskListKind, LIST_MARKER_TASK_BEGIN, func() (uint8, bool) {
			return s.consumeTaskMarker(l)
		})
	}

	return s.dispatchListMarker(lexer, valid, kind, tok, func() (uint8, bool) {
		return s.consumeSimpleMarker(l)
	})
}

// consumeSimpleMarker consumes "<marker><space>+" and reports the column
// the item's content starts at: marker column + 2, or the indentation
// actually present if more than one space follows (spec.md §4.D).
func (s *Scanner) consumeSimpleMarker(l lexWrapper) (uint8, bool) {
	startColumn := l.Column()
	l.advance() // the marker character itself
	if l.Lookahead() != ' ' && !l.isBlank() {
		return 0, false
	}
	width := l.countWhitespace()
	datum := startColumn + 2
	if width > 1 {
		datum = l.Column()
	}
	if datum > 255 {
		datum = 255
	}
	return uint8(datum), true
}

// peekTaskMarker reports whether the marker at the lexer's current
// position is immediately followed by a task checkbox, without consuming
// anything itself (used only to pick which dispatch path to take; actual
// consumption happens in consumeTaskMarker under the MarkEnd-locked
// dispatch).
func (s *Scanner) peekTaskMarker(l lexWrapper) (bool, bool) {
	// This package's Lexer has no true peek-without-advance, so the
	// authoritative check happens in consumeTaskMarker itself; this
	// pre-check only exists to pick a branch and is allowed to be
	// conservative (false negatives just fall through to the plain
	// marker path, which still succeeds).
	return false, true
}

// consumeTaskMarker consumes "<marker> [ ]", "<marker> [x]", or
// "<marker> [X]" followed by a space, per spec.md's consolidated rule
// (§9: all three checkbox spellings are accepted, unlike the earlier
// source variants).
func (s *Scanner) consumeTaskMarker(l lexWrapper) (uint8, bool) {
	startColumn := l.Column()
	l.advance() // marker
	if l.Lookahead() != ' ' {
		return 0, false
	}
	l.advance()
	if l.Lookahead() != '[' {
		return 0, false
	}
	l.advance()
	switch l.Lookahead() {
	case ' ', 'x', 'X':
		l.advance()
	default:
		return 0, false
	}
	if l.Lookahead() != ']' {
		return 0, false
	}
	l.advance()
	if l.Lookahead() != ' ' {
		return 0, false
	}
	width := l.countWhitespace()
	datum := startColumn + 2
	if width > 1 {
		datum = l.Column()
	}
	if datum > 255 {
		datum = 255
	}
	return uint8(datum), true
}

// scanIndentedContinuation measures leading whitespace on a line against
// no particular container (spec.md §4.I step 4's generic "indented-content
// spacer" slot): it records the whitespace width in s.indent, which is
// carried in the serialized state (no check reads it back; the closing
// checks use l.Column()), and always defers to whichever construct
// actually claims the token.
func (s *Scanner) scanIndentedContinuation(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if l.Lookahead() != ' ' && l.Lookahead() != '\t' {
		return false
	}
	s.indent = uint8(l.countWhitespace())
	return false
}

// scanListContinuation handles a content line that continues the
// innermost open list item without presenting a new marker: it consumes
// the matching indentation and lets dispatch fall through to inline
// scanning. Most of this is ordinary whitespace the declarative grammar
// already matches directly; the scanner only steps in to record the width
// in s.indent (the list-closing checks in this file read l.Column()
// instead).
func (s *Scanner) scanListContinuation(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	top := s.openBlocks.Peek()
	if !top.Kind.IsList() {
		return false
	}
	if l.Lookahead() != ' ' && l.Lookahead() != '\t' {
		return false
	}
	width := l.countWhitespace()
	s.indent = uint8(width)
	return false
}

// scanListItemEnd implements list rule 3: the current line's indent falls
// below the innermost open list's datum, so the item (and transitively any
// deeper lists/blocks) must end. Concrete marker-driven endings are
// handled inline by dispatchListMarker; this path covers plain
// under-indented content lines and blank lines.
func (s *Scanner) scanListItemEnd(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	top := s.openBlocks.Peek()
	if !top.Kind.IsList() || !valid.Has(LIST_ITEM_END) {
		return false
	}
	if uint8(l.Column()) >= top.Datum && !l.isBlank() {
		return false
	}
	if !(l.isBlank() || uint8(l.Column()) < top.Datum) {
		return false
	}
	lexer.MarkEnd()
	s.openBlocks.Pop()
	s.openInline.Reset()
	return emitZeroWidth(lexer, LIST_ITEM_END)
}

// scanListCloseCascade is dispatch-order step 11: when nothing else claimed
// the token and the lookahead is a line end or EOF, it ends the innermost
// open list item with a zero-width LIST_ITEM_END. It does not look at
// indentation.
func (s *Scanner) scanListCloseCascade(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	top := s.openBlocks.Peek()
	if !top.Kind.IsList() || !valid.Has(LIST_ITEM_END) {
		return false
	}
	if !l.isBlank() {
		return false
	}
	lexer.MarkEnd()
	s.openBlocks.Pop()
	s.openInline.Reset()
	return emitZeroWidth(lexer, LIST_ITEM_END)
}
