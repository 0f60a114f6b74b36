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

// Serialize packs the scanner's entire state into the byte buffer the host
// persists between edits (spec.md §6, component H). The layout is the 5
// fixed header bytes spec.md §6 specifies, followed by the two stacks:
//
//	blocksToClose, blockQuoteLevel, indent, flags, openBlockCount,
//	[blockKind, blockDatum]*openBlockCount,
//	[inlineKind, inlineDatum]*(remaining bytes / 2)
//
// There is no count byte for the inline stack: its length is implicit in
// how much of the buffer is left once the header and block frames are
// written, which is also how Deserialize recovers it. Stack depth beyond
// 255 frames is truncated from the bottom (the document root end, which
// matters least for resuming an incremental edit) rather than overflowing
// the count byte; spec.md does not bound nesting depth, but tree-sitter's
// own serialization buffer is itself bounded, so a pathologically deep
// document degrades gracefully instead of corrupting the buffer.
func (s *Scanner) Serialize(buf []byte) []byte {
	blockFrames := s.openBlocks.Frames()
	if len(blockFrames) > 255 {
		blockFrames = blockFrames[len(blockFrames)-255:]
	}
	inlineFrames := s.openInline.Frames()
	if len(inlineFrames) > 255 {
		inlineFrames = inlineFrames[len(inlineFrames)-255:]
	}

	buf = append(buf[:0],
		s.blocksToClose,
		s.blockQuoteLevel,
		s.indent,
		byte(s.flags),
		byte(len(blockFrames)),
	)
	for _, f := range blockFrames {
		buf = append(buf, byte(f.Kind), f.Datum)
	}
	for _, f := range inlineFrames {
		buf = append(buf, byte(f.Kind), f.Datum)
	}
	return buf
}

// Deserialize restores a scanner's state from a buffer Serialize produced.
// An empty buffer (the state tree-sitter hands a freshly created scanner,
// and what it hands back after a full re-parse) resets every field to its
// NewScanner zero value. A buffer too short for the block frames its count
// byte declares is refused the same way; a trailing odd byte after the
// inline frames is ignored.
func (s *Scanner) Deserialize(buf []byte) {
	s.openBlocks.Reset()
	s.openInline.Reset()
	s.blocksToClose = 0
	s.blockQuoteLevel = 0
	s.indent = 0
	s.flags = 0

	if len(buf) == 0 {
		return
	}

	i := 0
	read := func() byte {
		if i >= len(buf) {
			return 0
		}
		b := buf[i]
		i++
		return b
	}

	s.blocksToClose = read()
	s.blockQuoteLevel = read()
	s.indent = read()
	s.flags = scannerFlags(read())

	blockCount := int(read())
	if len(buf) < i+2*blockCount {
		// A buffer cut off inside its block frames is refused: the
		// scanner stays in its reset state.
		s.blocksToClose, s.blockQuoteLevel, s.indent, s.flags = 0, 0, 0, 0
		return
	}
	var blocks []Block
	for n := 0; n < blockCount; n++ {
		kind := BlockKind(read())
		datum := read()
		blocks = append(blocks, Block{Kind: kind, Datum: datum})
	}
	s.openBlocks.SetFrames(blocks)

	inlineCount := (len(buf) - i) / 2
	var inlines []Inline
	for n := 0; n < inlineCount; n++ {
		kind := InlineKind(read())
		datum := read()
		inlines = append(inlines, Inline{Kind: kind, Datum: datum})
	}
	s.openInline.SetFrames(inlines)
}
