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

// orderedNumbering is which of the five numeral systems an ordered list
// marker uses.
type orderedNumbering int

const (
	decimalNumbering orderedNumbering = iota
	lowerAlphaNumbering
	upperAlphaNumbering
	lowerRomanNumbering
	upperRomanNumbering
)

// orderedSuffix is how the marker is delimited: "1.", "1)", or "(1)".
type orderedSuffix int

const (
	periodSuffix orderedSuffix = iota
	parenSuffix
	parensSuffix
)

var orderedKind = map[orderedNumbering][3]BlockKind{
	decimalNumbering:    {DecimalPeriodListKind, DecimalParenListKind, DecimalParensListKind},
	lowerAlphaNumbering: {LowerAlphaPeriodListKind, LowerAlphaParenListKind, LowerAlphaParensListKind},
	upperAlphaNumbering: {UpperAlphaPeriodListKind, UpperAlphaParenListKind, UpperAlphaParensListKind},
	lowerRomanNumbering: {LowerRomanPeriodListKind, LowerRomanParenListKind, LowerRomanParensListKind},
	upperRomanNumbering: {UpperRomanPeriodListKind, UpperRomanParenListKind, UpperRomanParensListKind},
}

var orderedToken = map[orderedNumbering][3]TokenKind{
	decimalNumbering:    {LIST_MARKER_DECIMAL_PERIOD, LIST_MARKER_DECIMAL_PAREN, LIST_MARKER_DECIMAL_PARENS},
	lowerAlphaNumbering: {LIST_MARKER_LOWER_ALPHA_PERIOD, LIST_MARKER_LOWER_ALPHA_PAREN, LIST_MARKER_LOWER_ALPHA_PARENS},
	upperAlphaNumbering: {LIST_MARKER_UPPER_ALPHA_PERIOD, LIST_MARKER_UPPER_ALPHA_PAREN, LIST_MARKER_UPPER_ALPHA_PARENS},
	lowerRomanNumbering: {LIST_MARKER_LOWER_ROMAN_PERIOD, LIST_MARKER_LOWER_ROMAN_PAREN, LIST_MARKER_LOWER_ROMAN_PARENS},
	upperRomanNumbering: {LIST_MARKER_UPPER_ROMAN_PERIOD, LIST_MARKER_UPPER_ROMAN_PAREN, LIST_MARKER_UPPER_ROMAN_PARENS},
}

// isRomanNumeral reports whether s consists only of roman numeral letters,
// case-insensitively.
func isRomanNumeral(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch c | 0x20 {
		case 'i', 'v', 'x', 'l', 'c', 'd', 'm':
		default:
			return false
		}
	}
	return true
}

// readOrderedNumeral consumes a run of digits or letters and classifies
// it. Ambiguous single letters like "i" or "v" are classified as roman
// rather than alphabetic: decimal beats roman beats single-letter alpha,
// the precedence spec.md's open questions call for.
func readOrderedNumeral(l lexWrapper) (string, orderedNumbering, bool) {
	var b []rune
	switch c := l.Lookahead(); {
	case c >= '0' && c <= '9':
		for c := l.Lookahead(); c >= '0' && c <= '9'; c = l.Lookahead() {
			b = append(b, c)
			l.advance()
		}
		return string(b), decimalNumbering, true

	case c >= 'a' && c <= 'z':
		for c := l.Lookahead(); c >= 'a' && c <= 'z'; c = l.Lookahead() {
			b = append(b, c)
			l.advance()
		}
		text := string(b)
		if isRomanNumeral(text) {
			return text, lowerRomanNumbering, true
		}
		if len(text) == 1 {
			return text, lowerAlphaNumbering, true
		}
		return "", 0, false

	case c >= 'A' && c <= 'Z':
		for c := l.Lookahead(); c >= 'A' && c <= 'Z'; c = l.Lookahead() {
			b = append(b, c)
			l.advance()
		}
		text := string(b)
		if isRomanNumeral(text) {
			return text, upperRomanNumbering, true
		}
		if len(text) == 1 {
			return text, upperAlphaNumbering, true
		}
		return "", 0, false
	}
	return "", 0, false
}

// scanOrderedListMarker recognizes "1.", "1)", "(1)" and their alphabetic
// and roman-numeral equivalents (spec.md §4.D), then defers to the same
// three-way continue/close/open contract every other list family uses.
func (s *Scanner) scanOrderedListMarker(l lexWrapper, lexer Lexer, valid TokenSet) bool {
	startColumn := l.Column()
	lexer.MarkEnd()

	hasOpenParen := l.Lookahead() == '('
	if hasOpenParen {
		l.advance()
	}

	_, numbering, ok := readOrderedNumeral(l)
	if !ok {
		return false
	}

	var suffix orderedSuffix
	switch {
	case hasOpenParen && l.Lookahead() == ')':
		l.advance()
		suffix = parensSuffix
	case !hasOpenParen && l.Lookahead() == ')':
		l.advance()
		suffix = parenSuffix
	case !hasOpenParen && l.Lookahead() == '.':
		l.advance()
		suffix = periodSuffix
	default:
		return false
	}

	if l.Lookahead() != ' ' {
		return false
	}
	l.advance()
	width := l.countWhitespace() + 1
	datum := startColumn + width
	if datum > 255 {
		datum = 255
	}

	kind := orderedKind[numbering][suffix]
	tok := orderedToken[numbering][suffix]
	return s.dispatchListMarker(lexer, valid, kind, tok, func() (uint8, bool) {
		return uint8(datum), true
	})
}
