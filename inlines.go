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

// InlineKind is the closed set of open-span variants an Inline frame can
// hold (spec.md §3).
type InlineKind uint8

const (
	noInlineKind InlineKind = iota

	VerbatimKind
	EmphasisKind
	StrongKind
	SuperscriptKind
	SubscriptKind
	HighlightedKind
	InsertKind
	DeleteKind
	ParensSpanKind
	CurlyBracketSpanKind
	SquareBracketSpanKind

	inlineKindCount
)

func (k InlineKind) String() string {
	switch k {
	case noInlineKind:
		return "<none>"
	case VerbatimKind:
		return "Verbatim"
	case EmphasisKind:
		return "Emphasis"
	case StrongKind:
		return "Strong"
	case SuperscriptKind:
		return "Superscript"
	case SubscriptKind:
		return "Subscript"
	case HighlightedKind:
		return "Highlighted"
	case InsertKind:
		return "Insert"
	case DeleteKind:
		return "Delete"
	case ParensSpanKind:
		return "ParensSpan"
	case CurlyBracketSpanKind:
		return "CurlyBracketSpan"
	case SquareBracketSpanKind:
		return "SquareBracketSpan"
	default:
		return "InlineKind(?)"
	}
}

// spanStyle classifies how an inline span's closer may be written (the
// "Style" column of spec.md §4.E's span table).
type spanStyle uint8

const (
	// bracketedOrSingle spans close on either the bare marker or marker+'}'.
	bracketedOrSingle spanStyle = iota
	// bracketedOnly spans close only on marker+'}'.
	bracketedOnly
	// singleOnly spans close only on the bare marker (no curly form).
	singleOnly
)

// spanInfo is the static per-kind metadata driving the unified span
// contract in spans.go.
type spanInfo struct {
	kind             InlineKind
	marker           byte
	style            spanStyle
	beginToken       TokenKind
	endToken         TokenKind
	whitespaceGuard  bool // true for Emphasis/Strong: a marker followed by whitespace, a newline or EOF does not open; closers are not checked for preceding whitespace
}

// spanTable is indexed by InlineKind and holds every non-verbatim span's
// metadata, grounded directly on the table in spec.md §4.E.
var spanTable = map[InlineKind]spanInfo{
	EmphasisKind: {
		kind: EmphasisKind, marker: '_', style: bracketedOrSingle,
		beginToken: EMPHASIS_MARK_BEGIN, endToken: EMPHASIS_END, whitespaceGuard: true,
	},
	StrongKind: {
		kind: StrongKind, marker: '*', style: bracketedOrSingle,
		beginToken: STRONG_MARK_BEGIN, endToken: STRONG_END, whitespaceGuard: true,
	},
	SuperscriptKind: {
		kind: SuperscriptKind, marker: '^', style: bracketedOrSingle,
		beginToken: SUPERSCRIPT_MARK_BEGIN, endToken: SUPERSCRIPT_END,
	},
	SubscriptKind: {
		kind: SubscriptKind, marker: '~', style: bracketedOrSingle,
		beginToken: SUBSCRIPT_MARK_BEGIN, endToken: SUBSCRIPT_END,
	},
	HighlightedKind: {
		kind: HighlightedKind, marker: '=', style: bracketedOnly,
		beginToken: HIGHLIGHTED_MARK_BEGIN, endToken: HIGHLIGHTED_END,
	},
	InsertKind: {
		kind: InsertKind, marker: '+', style: bracketedOnly,
		beginToken: INSERT_MARK_BEGIN, endToken: INSERT_END,
	},
	DeleteKind: {
		kind: DeleteKind, marker: '-', style: bracketedOnly,
		beginToken: DELETE_MARK_BEGIN, endToken: DELETE_END,
	},
	ParensSpanKind: {
		kind: ParensSpanKind, marker: ')', style: singleOnly,
		beginToken: PARENS_SPAN_MARK_BEGIN, endToken: PARENS_SPAN_END,
	},
	CurlyBracketSpanKind: {
		kind: CurlyBracketSpanKind, marker: '}', style: singleOnly,
		beginToken: CURLY_BRACKET_SPAN_MARK_BEGIN, endToken: CURLY_BRACKET_SPAN_END,
	},
	SquareBracketSpanKind: {
		kind: SquareBracketSpanKind, marker: ']', style: singleOnly,
		beginToken: SQUARE_BRACKET_SPAN_MARK_BEGIN, endToken: SQUARE_BRACKET_SPAN_END,
	},
}

// Inline is one frame in the open-inline-span stack (spec.md §3). Datum
// holds the opening tick count for Verbatim, or the fallback-character
// counter used to suppress ambiguous closures (spec.md §4.E) for every
// other kind.
type Inline struct {
	Kind  InlineKind
	Datum uint8
}

// InlineStack is the LIFO stack of open inline spans (component C). Unlike
// BlockStack, it carries no nesting-order invariants beyond LIFO: any span
// kind may nest inside any other.
type InlineStack struct {
	frames []Inline
}

// Len reports the number of open spans.
func (s *InlineStack) Len() int {
	return len(s.frames)
}

// Push opens a new innermost span.
func (s *InlineStack) Push(kind InlineKind, datum uint8) {
	s.frames = append(s.frames, Inline{Kind: kind, Datum: datum})
}

// Pop closes the innermost open span.
func (s *InlineStack) Pop() (Inline, bool) {
	n := len(s.frames)
	if n == 0 {
		return Inline{}, false
	}
	f := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return f, true
}

// Peek returns the innermost open span, or the zero Inline if none is open.
func (s *InlineStack) Peek() Inline {
	if n := len(s.frames); n > 0 {
		return s.frames[n-1]
	}
	return Inline{}
}

// PeekPtr returns a pointer to the innermost open span's frame so callers
// can mutate its fallback-counter datum in place, or nil if none is open.
func (s *InlineStack) PeekPtr() *Inline {
	if n := len(s.frames); n > 0 {
		return &s.frames[n-1]
	}
	return nil
}

// Find searches top-down for the first open frame of the given kind.
func (s *InlineStack) Find(kind InlineKind) (f Inline, ptr *Inline, ok bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].Kind == kind {
			return s.frames[i], &s.frames[i], true
		}
	}
	return Inline{}, nil, false
}

// Frames exposes the stack bottom-to-top, for the serializer and tests.
func (s *InlineStack) Frames() []Inline {
	return s.frames
}

// SetFrames replaces the stack wholesale (used by Deserialize).
func (s *InlineStack) SetFrames(frames []Inline) {
	s.frames = frames
}

// Reset empties the stack. Block boundaries (invariant 4 of spec.md §3)
// require this: paragraph close, list-item end, table-cell end, footnote
// end, div end, and heading end all leave open_inline empty.
func (s *InlineStack) Reset() {
	s.frames = s.frames[:0]
}
