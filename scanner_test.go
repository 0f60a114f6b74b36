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

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"djot.dev/scanner/internal/reflex"
)

// scanAll drives a fresh Scanner over input with every token always
// considered valid, recording each emitted kind in order. Bytes no rule
// claims are stepped over one at a time, the same way a real host's
// generated grammar consumes ordinary literal text itself and re-invokes
// the scanner at the next position; this is what lets a scan covering
// tokens on either side of plain text (an emphasis pair around a word, a
// heading's level marker before its title) actually reach the far side. A
// genuinely zero-width token (TABLE_CELL_END and the like, which leave
// their delimiter character for the grammar's own literal terminal) gets
// the same one-byte step, since nothing else in this harness plays the
// part of that literal terminal.
func scanAll(t *testing.T, input string) []TokenKind {
	t.Helper()
	s := NewScanner()
	l := reflex.New(input)
	valid := AllTokens()
	var kinds []TokenKind
	for i := 0; i < 10000 && !l.EOF(); i++ {
		if l.Scan(s, valid) {
			tok := l.Tokens[len(l.Tokens)-1]
			kinds = append(kinds, tok.Kind)
			if tok.Start == tok.End && !l.EOF() {
				l.Advance(false)
			}
			continue
		}
		l.Advance(false)
	}
	return kinds
}

func hasKind(kinds []TokenKind, want TokenKind) bool {
	for _, k := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

func TestScanHeadingBeginAndContinuation(t *testing.T) {
	kinds := scanAll(t, "## a\n## b\n")
	if !hasKind(kinds, HEADING_BEGIN) {
		t.Errorf("scan(%q) = %v; want HEADING_BEGIN present", "## a\n## b\n", kinds)
	}
	if !hasKind(kinds, HEADING_CONTINUATION) {
		t.Errorf("scan(%q) = %v; want HEADING_CONTINUATION present", "## a\n## b\n", kinds)
	}
}

func TestScanDivBeginAndEnd(t *testing.T) {
	kinds := scanAll(t, ":::\ntext\n:::\n")
	if !hasKind(kinds, DIV_BEGIN) {
		t.Errorf("scan div = %v; want DIV_BEGIN", kinds)
	}
	if !hasKind(kinds, DIV_END) {
		t.Errorf("scan div = %v; want DIV_END", kinds)
	}
}

func TestScanThematicBreakPreferredOverListMarker(t *testing.T) {
	kinds := scanAll(t, "- - -\n")
	if !hasKind(kinds, THEMATIC_BREAK_DASH) {
		t.Errorf("scan(%q) = %v; want THEMATIC_BREAK_DASH", "- - -\n", kinds)
	}
	if hasKind(kinds, LIST_MARKER_DASH) {
		t.Errorf("scan(%q) = %v; list marker should not win over thematic break", "- - -\n", kinds)
	}
}

func TestScanListMarkerDash(t *testing.T) {
	kinds := scanAll(t, "- one\n- two\n")
	if !hasKind(kinds, LIST_MARKER_DASH) {
		t.Errorf("scan(%q) = %v; want LIST_MARKER_DASH", "- one\n- two\n", kinds)
	}
}

func TestScanVerbatimTickCounting(t *testing.T) {
	kinds := scanAll(t, "``a ` b``\n")
	if !hasKind(kinds, VERBATIM_BEGIN) || !hasKind(kinds, VERBATIM_END) {
		t.Errorf("scan(%q) = %v; want VERBATIM_BEGIN and VERBATIM_END", "``a ` b``\n", kinds)
	}
}

func TestScanBlockQuoteNesting(t *testing.T) {
	kinds := scanAll(t, "> > nested\n")
	if !hasKind(kinds, BLOCK_QUOTE_BEGIN) {
		t.Errorf("scan(%q) = %v; want at least one BLOCK_QUOTE_BEGIN", "> > nested\n", kinds)
	}
}

func TestScanEmphasisVsStrongAmbiguity(t *testing.T) {
	kinds := scanAll(t, "_em_ *strong*\n")
	if !hasKind(kinds, EMPHASIS_MARK_BEGIN) || !hasKind(kinds, EMPHASIS_END) {
		t.Errorf("scan(%q) = %v; want emphasis pair", "_em_ *strong*\n", kinds)
	}
	if !hasKind(kinds, STRONG_MARK_BEGIN) || !hasKind(kinds, STRONG_END) {
		t.Errorf("scan(%q) = %v; want strong pair", "_em_ *strong*\n", kinds)
	}
}

func TestScanEmphasisBlockedByStrongCrossing(t *testing.T) {
	input := "_a *b_ c*\n"
	kinds := scanAll(t, input)
	if !hasKind(kinds, EMPHASIS_MARK_BEGIN) || !hasKind(kinds, EMPHASIS_END) {
		t.Errorf("scan(%q) = %v; want emphasis pair", input, kinds)
	}
	if hasKind(kinds, STRONG_MARK_BEGIN) || hasKind(kinds, STRONG_END) {
		t.Errorf("scan(%q) = %v; strong must not open across the emphasis close", input, kinds)
	}
}

func TestScanBracedSpans(t *testing.T) {
	kinds := scanAll(t, "{=hl=} {+ins+} {-del-}\n")
	for _, want := range []TokenKind{
		HIGHLIGHTED_MARK_BEGIN, HIGHLIGHTED_END,
		INSERT_MARK_BEGIN, INSERT_END,
		DELETE_MARK_BEGIN, DELETE_END,
	} {
		if !hasKind(kinds, want) {
			t.Errorf("scan(%q) = %v; want %v present", "{=hl=} {+ins+} {-del-}\n", kinds, want)
		}
	}
}

func TestScanOrderedListRomanBeatsAlpha(t *testing.T) {
	kinds := scanAll(t, "i. one\n")
	if !hasKind(kinds, LIST_MARKER_LOWER_ROMAN_PERIOD) {
		t.Errorf("scan(%q) = %v; want roman numeral marker to win over alpha", "i. one\n", kinds)
	}
	if hasKind(kinds, LIST_MARKER_LOWER_ALPHA_PERIOD) {
		t.Errorf("scan(%q) = %v; alpha marker should not win for a roman-valid letter", "i. one\n", kinds)
	}
}

func TestScanTaskListAllCheckboxSpellings(t *testing.T) {
	for _, line := range []string{"- [ ] todo\n", "- [x] done\n", "- [X] done\n"} {
		kinds := scanAll(t, line)
		if !hasKind(kinds, LIST_MARKER_TASK_BEGIN) {
			t.Errorf("scan(%q) = %v; want LIST_MARKER_TASK_BEGIN", line, kinds)
		}
	}
}

func TestScanFrontmatterMarker(t *testing.T) {
	kinds := scanAll(t, "---\ntitle: x\n---\n")
	n := 0
	for _, k := range kinds {
		if k == FRONTMATTER_MARKER {
			n++
		}
	}
	if n != 2 {
		t.Errorf("scan(%q) produced %d FRONTMATTER_MARKER tokens, want 2", "---\ntitle: x\n---\n", n)
	}
}

func TestScanTableRowAndSeparator(t *testing.T) {
	valid := NewTokenSet(TABLE_HEADER_BEGIN, TABLE_SEPARATOR_BEGIN, TABLE_ROW_BEGIN,
		TABLE_CELL_END, TABLE_ROW_END_NEWLINE, EOF_OR_NEWLINE, NEWLINE, NEWLINE_INLINE,
		BLOCK_CLOSE)
	s := NewScanner()
	l := reflex.New("|a|b|\n|-|-|\n")
	var kinds []TokenKind
	for i := 0; i < 100 && !l.EOF(); i++ {
		if l.Scan(s, valid) {
			tok := l.Tokens[len(l.Tokens)-1]
			kinds = append(kinds, tok.Kind)
			if tok.Start == tok.End && !l.EOF() {
				l.Advance(false)
			}
			continue
		}
		l.Advance(false)
	}
	if !hasKind(kinds, TABLE_HEADER_BEGIN) {
		t.Errorf("scan table = %v; want TABLE_HEADER_BEGIN", kinds)
	}
	if !hasKind(kinds, TABLE_SEPARATOR_BEGIN) {
		t.Errorf("scan table = %v; want TABLE_SEPARATOR_BEGIN", kinds)
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	s := NewScanner()
	l := reflex.New(":::\nfoo\n")
	valid := AllTokens()
	for i := 0; i < 10 && l.Scan(s, valid); i++ {
	}

	buf := s.Serialize(nil)
	restored := NewScanner()
	restored.Deserialize(buf)

	if diff := cmp.Diff(s.openBlocks.Frames(), restored.openBlocks.Frames()); diff != "" {
		t.Errorf("Deserialize: block frames mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(s.openInline.Frames(), restored.openInline.Frames()); diff != "" {
		t.Errorf("Deserialize: inline frames mismatch (-want +got):\n%s", diff)
	}
	if !cmp.Equal(s, restored, cmp.AllowUnexported(Scanner{}, BlockStack{}, InlineStack{})) {
		t.Errorf("Deserialize: restored scanner = %+v; want %+v", restored, s)
	}
}

func TestDeserializeEmptyResetsState(t *testing.T) {
	s := NewScanner()
	s.openBlocks.Push(DivKind, 3)
	s.blocksToClose = 2
	s.Deserialize(nil)
	if s.openBlocks.Len() != 0 {
		t.Errorf("Deserialize(nil): openBlocks.Len() = %d; want 0", s.openBlocks.Len())
	}
	if s.blocksToClose != 0 {
		t.Errorf("Deserialize(nil): blocksToClose = %d; want 0", s.blocksToClose)
	}
}
