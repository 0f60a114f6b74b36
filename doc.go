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

// Package djotscan implements the hand-written external scanner of an
// incremental [Djot] parser.
//
// A surrounding parser driven by a generated LR/GLR table (out of scope for
// this package) owns the declarative grammar. This package only emits the
// context-sensitive tokens that grammar cannot express on its own: block
// structure markers (headings, divs, lists, block quotes, code blocks,
// footnotes, tables, link reference definitions, comments), inline span
// boundaries (emphasis, strong, sub/superscript, highlight, insert, delete,
// bracketed spans, verbatim), and the synthetic delimiters that bracket them.
//
// [Scanner] is the whole of the persisted state. A host parser drives it by
// repeatedly calling [Scanner.Scan] with a [Lexer] cursor and the [TokenSet]
// of tokens that would be syntactically valid at the current position; the
// scanner either consumes some input and reports the token it produced, or
// returns false to let the generated table try another production. State
// survives across calls only through the two stacks and the few scalar
// registers on Scanner and can be
// captured at any token boundary with [Scanner.Serialize] and restored with
// [Scanner.Deserialize], exactly as tree-sitter's external scanner ABI
// requires.
//
// [Djot]: https://djot.net/
package djotscan
