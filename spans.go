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

// openChars maps a literal opening bracket character to its singleOnly span
// kind, since a singleOnly span's "marker" in spec.md §4.E's table
// (spanInfo.marker) is the closer, not the opener.
// openChars covers the two singleOnly spans whose open character isn't
// '{' (CurlyBracketSpanKind's bare '{' open is handled directly in
// tryOpenSpan, since '{' is also the shared prefix of every braced form).
var openChars = map[rune]InlineKind{
	'(': ParensSpanKind,
	'[': SquareBracketSpanKind,
}

// scanSpans implements the unified 11-kind inline span contract of
// spec.md §4.E (verbatim is handled separately in codeblock.go/verbatim.go
// since its tick-counted matching rule does not fit this table). It always
// prefers closing the innermost open span over opening a new one, since a
// marker that can do either is only ever ambiguous with itself.
func (s *Scanner) scanSpans(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if top := s.openInline.Peek(); top.Kind != noInlineKind && top.Kind != VerbatimKind {
		if info, ok := spanTable[top.Kind]; ok && s.tryCloseSpan(l, lexer, valid, info) {
			return true
		}
	}
	return s.tryOpenSpan(l, lexer, valid)
}

// tryCloseSpan attempts to close the span described by info at the
// lexer's current position.
func (s *Scanner) tryCloseSpan(l lexWrapper, lexer Lexer, valid TokenSet, info spanInfo) bool {
	if !valid.Has(info.endToken) {
		return false
	}

	switch info.style {
	case singleOnly:
		if l.Lookahead() != rune(info.marker) {
			return false
		}
		if s.rejectAmbiguousClose() {
			return false
		}
		lexer.MarkEnd()
		l.advance()
		s.openInline.Pop()
		if info.kind == SquareBracketSpanKind {
			s.flags.clear(flagBracketStartsInlineLink)
			s.flags.clear(flagBracketStartsSpan)
		}
		return emit(lexer, info.endToken)

	case bracketedOnly:
		if l.Lookahead() != rune(info.marker) {
			return false
		}
		if s.rejectAmbiguousClose() {
			return false
		}
		lexer.MarkEnd()
		l.advance()
		if l.Lookahead() != '}' {
			return false
		}
		l.advance()
		s.openInline.Pop()
		return emit(lexer, info.endToken)

	default: // bracketedOrSingle
		if l.Lookahead() != rune(info.marker) {
			return false
		}
		if s.rejectAmbiguousClose() {
			return false
		}
		lexer.MarkEnd()
		l.advance()
		if l.Lookahead() == '}' {
			l.advance()
		}
		s.openInline.Pop()
		return emit(lexer, info.endToken)
	}
}

// rejectAmbiguousClose implements the closing half of spec.md §4.E's
// ambiguity pruning: if the innermost open span's fallback counter is
// nonzero (a same-kind open was suppressed in its favor while it was
// already open), this particular close is rejected and one unit of the
// counter is consumed, so a nested pairing gets a chance to resolve before
// the containing span is allowed to close. The mutation is deliberate even
// though the call reports false — unlike an ordinary recoverable failure,
// this counter is exactly the persisted signal the fallback scheme relies
// on to collapse a speculative branch over repeated attempts.
func (s *Scanner) rejectAmbiguousClose() bool {
	top := s.openInline.PeekPtr()
	if top == nil || top.Datum == 0 {
		return false
	}
	top.Datum--
	return true
}

// tryOpenSpan attempts to open a new innermost span at the lexer's current
// position, trying the braced form (which disambiguates on a second
// character) before the bare marker form.
func (s *Scanner) tryOpenSpan(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	if l.Lookahead() == '{' {
		lexer.MarkEnd()
		l.advance()
		for kind, info := range spanTable {
			if info.style == singleOnly {
				continue
			}
			if l.Lookahead() != rune(info.marker) {
				continue
			}
			if !valid.Has(info.beginToken) {
				continue
			}
			if s.suppressSameKindOpen(kind) {
				return false
			}
			l.advance()
			lexer.MarkEnd()
			if s.wouldCrossOpenSpan(l, info) {
				return false
			}
			s.openInline.Push(kind, 0)
			return emitZeroWidth(lexer, info.beginToken)
		}
		// Not a recognized braced span marker; fall back to a bare
		// CurlyBracketSpan open (the '{' already consumed above serves
		// as that span's own opening character).
		if info, ok := spanTable[CurlyBracketSpanKind]; ok && valid.Has(info.beginToken) {
			if s.flags.has(flagBracketStartsSpan) {
				return false
			}
			s.openInline.Push(info.kind, 0)
			return emit(lexer, info.beginToken)
		}
		return false
	}

	for kind, info := range spanTable {
		if info.style == singleOnly {
			continue
		}
		if l.Lookahead() != rune(info.marker) {
			continue
		}
		if !valid.Has(info.beginToken) {
			continue
		}
		if s.suppressSameKindOpen(kind) {
			return false
		}
		lexer.MarkEnd()
		l.advance()
		if info.whitespaceGuard && (l.Lookahead() == ' ' || l.Lookahead() == '\n' || l.EOF()) {
			return false
		}
		lexer.MarkEnd()
		if s.wouldCrossOpenSpan(l, info) {
			return false
		}
		s.openInline.Push(kind, 0)
		return emitZeroWidth(lexer, info.beginToken)
	}

	if kind, ok := openChars[l.Lookahead()]; ok {
		if info, ok := spanTable[kind]; ok && info.style == singleOnly && valid.Has(info.beginToken) {
			if kind == ParensSpanKind && s.flags.has(flagBracketStartsInlineLink) {
				return false
			}
			lexer.MarkEnd()
			l.advance()
			if kind == SquareBracketSpanKind {
				lexer.MarkEnd()
				s.scanBracketLookaheadMemo(l)
			}
			s.openInline.Push(kind, 0)
			return emitZeroWidth(lexer, info.beginToken)
		}
	}

	return false
}

// suppressSameKindOpen implements the opening half of spec.md §4.E's
// ambiguity pruning: if a span of kind is already open somewhere in the
// stack, a second same-kind open is not stacked on top of it. Instead the
// containing frame's fallback counter is incremented and this marker is
// left for the grammar to treat as plain text, so the original opener gets
// the chance to pair with a later, unambiguous close. Like
// rejectAmbiguousClose, the mutation on a false-returning path is
// intentional here — it is the persisted signal the scheme is built on.
func (s *Scanner) suppressSameKindOpen(kind InlineKind) bool {
	_, ptr, ok := s.openInline.Find(kind)
	if !ok {
		return false
	}
	ptr.Datum++
	return true
}

// wouldCrossOpenSpan implements spec.md §8 scenario 5's crossing guard: a
// new span must not open if an already-open span would need to close
// before this candidate's own closer is reached, since that would require
// an improperly nested (crossing) pair of spans. It scans forward,
// unwound-on-reject, from just past the candidate's opening marker: every
// byte it consumes here is discarded once the caller returns false (the
// same full-call-discard convention every other speculative dispatcher in
// this package relies on), and is irrelevant on the non-crossing path too,
// since the caller reports a zero-width token at the position MarkEnd
// already locked.
func (s *Scanner) wouldCrossOpenSpan(l lexWrapper, candidate spanInfo) bool {
	outer := s.openInline.Frames()
	for {
		if l.EOF() || l.Lookahead() == '\n' {
			return false
		}
		if l.Lookahead() == '`' {
			l.countRun('`')
			continue
		}
		if l.Lookahead() == rune(candidate.marker) {
			return false
		}
		for _, f := range outer {
			info, ok := spanTable[f.Kind]
			if ok && l.Lookahead() == rune(info.marker) {
				return true
			}
		}
		l.advance()
	}
}

// scanBracketLookaheadMemo implements spec.md §4.E's bracket/link
// lookahead memo: having just opened a SquareBracketSpan, scan forward
// (respecting open verbatim) for its matching ']' and record whether a
// trailing '(...)' or '{...}' follows. tryOpenSpan consults the resulting
// flags to reject a nested ParensSpan/CurlyBracketSpan open inside the
// brackets, so the link or attribute-span parse wins instead. As with
// wouldCrossOpenSpan, every byte consumed here is thrown away once the
// caller reports its zero-width token at the already-locked end position.
func (s *Scanner) scanBracketLookaheadMemo(l lexWrapper) {
	s.flags.clear(flagBracketStartsInlineLink)
	s.flags.clear(flagBracketStartsSpan)

	depth := 1
	for {
		if l.EOF() || l.Lookahead() == '\n' {
			return
		}
		switch l.Lookahead() {
		case '`':
			l.countRun('`')
			continue
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				l.advance()
				switch l.Lookahead() {
				case '(':
					if scanBalancedPair(l, '(', ')') {
						s.flags.set(flagBracketStartsInlineLink)
					}
				case '{':
					if scanBalancedPair(l, '{', '}') {
						s.flags.set(flagBracketStartsSpan)
					}
				}
				return
			}
		}
		l.advance()
	}
}

// scanBalancedPair consumes open, then content up to and including a
// matching close on the same line, reporting whether one was found.
func scanBalancedPair(l lexWrapper, open, closeRune rune) bool {
	if l.Lookahead() != open {
		return false
	}
	l.advance()
	depth := 1
	for {
		if l.EOF() || l.Lookahead() == '\n' {
			return false
		}
		switch l.Lookahead() {
		case open:
			depth++
		case closeRune:
			depth--
			if depth == 0 {
				l.advance()
				return true
			}
		}
		l.advance()
	}
}
